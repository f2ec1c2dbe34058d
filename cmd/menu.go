package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kamusis/advising-cli/internal/catalog"
	"github.com/kamusis/advising-cli/internal/loader"
	"github.com/spf13/cobra"
)

const (
	menuLoad   = "1"
	menuList   = "2"
	menuShow   = "3"
	menuExit   = "9"
	menuPrompt = "Enter your choice: "
)

// session is one run of the interactive menu. It owns the index and the
// data-loaded flag; queries are refused until a load accepts a course.
type session struct {
	opts        *runtimeOptions
	idx         *catalog.Index
	loaded      bool
	in          *bufio.Scanner
	p           *printer
	interactive bool
}

func newSession(opts *runtimeOptions, in io.Reader, p *printer) *session {
	return &session{
		opts: opts,
		idx:  catalog.NewIndex(),
		in:   bufio.NewScanner(in),
		p:    p,
	}
}

func runMenu(cmd *cobra.Command, _ []string) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}
	in := cmd.InOrStdin()
	s := newSession(opts, in, newPrinter(cmd))
	if f, ok := in.(*os.File); ok {
		s.interactive = isTerminal(f)
	}
	return s.run(cmd.Context())
}

// run loops until the user exits or input ends.
func (s *session) run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if s.interactive {
		s.p.section("Advising")
		s.p.info("", fmt.Sprintf("catalog: %s", s.opts.catalogPath))
	}
	for {
		choice, ok := s.readChoice()
		if !ok {
			fmt.Fprintln(s.p.out)
			return nil
		}
		switch choice {
		case menuLoad:
			s.load(ctx)
		case menuList:
			if s.requireLoaded() {
				s.list()
			}
		case menuShow:
			if s.requireLoaded() {
				if !s.show() {
					fmt.Fprintln(s.p.out)
					return nil
				}
			}
		case menuExit:
			fmt.Fprintln(s.p.out, "Exiting program.")
			return nil
		}
	}
}

func (s *session) printMenu() {
	fmt.Fprintln(s.p.out)
	fmt.Fprintln(s.p.out, "Course Management System")
	fmt.Fprintln(s.p.out, "  1. Load course data")
	fmt.Fprintf(s.p.out, "  2. Print %s courses\n", strings.Join(s.opts.subjects, " and "))
	fmt.Fprintln(s.p.out, "  3. Print course information")
	fmt.Fprintln(s.p.out, "  9. Exit")
	fmt.Fprint(s.p.out, menuPrompt)
}

// readChoice shows the menu and reads until a valid entry arrives. It
// returns false when input is exhausted.
func (s *session) readChoice() (string, bool) {
	s.printMenu()
	for {
		word, ok := s.readWord()
		if !ok {
			return "", false
		}
		switch word {
		case "":
			continue
		case menuLoad, menuList, menuShow, menuExit:
			return word, true
		default:
			fmt.Fprint(s.p.out, "Invalid input. Please enter 1, 2, 3, or 9: ")
		}
	}
}

// readWord returns the first whitespace-separated word of the next input line.
func (s *session) readWord() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	fields := strings.Fields(s.in.Text())
	if len(fields) == 0 {
		return "", true
	}
	return fields[0], true
}

func (s *session) requireLoaded() bool {
	if !s.loaded {
		s.p.fail("", "Please load course data first.")
	}
	return s.loaded
}

func (s *session) load(ctx context.Context) {
	s.p.section("Load")
	s.p.info("", fmt.Sprintf("reading %s", s.opts.catalogPath))

	res, err := loader.LoadFile(ctx, s.opts.catalogPath, s.idx, s.opts.loaderOptions())
	if err != nil {
		s.p.fail("", err.Error())
		s.loaded = false
		return
	}

	for _, o := range res.Outcomes {
		switch o.Status {
		case loader.StatusInserted:
			s.p.ok(o.Course.ID, o.Course.Title)
		case loader.StatusDuplicate:
			s.p.warn(o.Course.ID, fmt.Sprintf("line %d: duplicate course number ignored", o.Line))
		case loader.StatusMalformed:
			s.p.fail("", fmt.Sprintf("line %d: skipping malformed line: %s", o.Line, o.Text))
		}
	}

	s.loaded = res.Loaded()
	if !s.loaded {
		s.p.miss("", fmt.Sprintf("no courses found in %s", s.opts.catalogPath))
		return
	}
	fmt.Fprintf(s.p.out, "\n  %d courses loaded (%d new, %d duplicate, %d malformed)\n",
		res.Accepted, res.Inserted, res.Duplicates, res.Malformed)
}

func (s *session) list() {
	s.p.section(strings.Join(s.opts.subjects, " / ") + " Courses")
	courses, err := catalog.FilterBySubject(s.idx, s.opts.subjects...)
	switch {
	case errors.Is(err, catalog.ErrEmptyCatalog):
		s.p.miss("", "The catalog is empty.")
	case errors.Is(err, catalog.ErrNoMatches):
		s.p.miss("", fmt.Sprintf("No %s courses found.", strings.Join(s.opts.subjects, " or ")))
	default:
		s.p.courseTable(courses)
	}
}

// show prompts for a course number and prints it. It returns false when
// input ends before a number is entered.
func (s *session) show() bool {
	fmt.Fprint(s.p.out, "Enter course number: ")
	for {
		id, ok := s.readWord()
		if !ok {
			return false
		}
		if id == "" {
			continue
		}
		c, err := catalog.Lookup(s.idx, id)
		if err != nil {
			s.p.miss(id, "course not found")
			return true
		}
		s.p.courseDetail(c)
		return true
	}
}
