package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/kamusis/advising-cli/internal/catalog"
	"github.com/spf13/cobra"
)

// ── Unified output helpers ────────────────────────────────────────────────────
// Every command and the interactive menu print through a printer so icon usage
// and indentation stay consistent.
//
// Icon semantics:
//   ✓  success
//   ✗  error / failure          (written to the error stream)
//   ⚠  warning
//   ○  skipped / not applicable
//   -  not found / no match
//   ~  neutral info

type printer struct {
	out io.Writer
	err io.Writer
}

func newPrinter(cmd *cobra.Command) *printer {
	return &printer{out: cmd.OutOrStdout(), err: cmd.ErrOrStderr()}
}

func iconLine(w io.Writer, icon, name, msg string) {
	if name == "" {
		fmt.Fprintf(w, "  %s  %s\n", icon, msg)
	} else {
		fmt.Fprintf(w, "  %s  [%s] %s\n", icon, name, msg)
	}
}

// section prints a top-level section header, e.g. "=== Courses ===".
func (p *printer) section(title string) {
	fmt.Fprintf(p.out, "\n=== %s ===\n", title)
}

func (p *printer) ok(name, msg string)   { iconLine(p.out, "✓", name, msg) }
func (p *printer) fail(name, msg string) { iconLine(p.err, "✗", name, msg) }
func (p *printer) warn(name, msg string) { iconLine(p.out, "⚠", name, msg) }
func (p *printer) skip(name, msg string) { iconLine(p.out, "○", name, msg) }
func (p *printer) miss(name, msg string) { iconLine(p.out, "-", name, msg) }
func (p *printer) info(name, msg string) { iconLine(p.out, "~", name, msg) }

// courseTable prints one aligned "number  title" row per course.
func (p *printer) courseTable(courses []catalog.Course) {
	w := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	for _, c := range courses {
		fmt.Fprintf(w, "  %s\t%s\n", c.ID, c.Title)
	}
	_ = w.Flush()
}

// courseDetail prints a course title and its prerequisites.
func (p *printer) courseDetail(c catalog.Course) {
	fmt.Fprintf(p.out, "\n%s: %s\n", c.ID, c.Title)
	if !c.HasPrerequisites() {
		fmt.Fprintln(p.out, "  No prerequisites required.")
		return
	}
	fmt.Fprint(p.out, "  Prerequisites: ")
	for i, id := range c.Prerequisites {
		if i > 0 {
			fmt.Fprint(p.out, ", ")
		}
		fmt.Fprint(p.out, id)
	}
	fmt.Fprintln(p.out)
}

// subjectTable prints one aligned "subject  count" row per subject.
func (p *printer) subjectTable(subjects []catalog.SubjectCount) {
	w := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	for _, s := range subjects {
		fmt.Fprintf(w, "  %s\t%d\n", s.Subject, s.Courses)
	}
	_ = w.Flush()
}
