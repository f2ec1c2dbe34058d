package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kamusis/advising-cli/internal/catalog"
	"github.com/spf13/cobra"
)

var (
	flagListSubjects []string
	flagListAll      bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog courses for one or more subjects",
	Long: `Load the catalog and list the courses whose number contains any of the
given subject markers, sorted by course number.

  advising list                      Subjects from advising.yaml (default CSCI, MATH)
  advising list --subject ENGL       Only ENGL courses
  advising list --all                Every course in the catalog`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringSliceVarP(&flagListSubjects, "subject", "s", nil, "Subject marker to match (repeatable)")
	listCmd.Flags().BoolVar(&flagListAll, "all", false, "List every course regardless of subject")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}
	p := newPrinter(cmd)
	idx, err := loadCatalog(cmd, opts, p)
	if err != nil {
		return err
	}

	if flagListAll {
		printCourseList(p, "All Courses", idx.All())
		return nil
	}
	subjects := opts.subjects
	if len(flagListSubjects) > 0 {
		subjects = flagListSubjects
	}
	return listSubjects(p, idx, subjects)
}

// listSubjects prints the courses matching subjects. No match is reported,
// not treated as a failure.
func listSubjects(p *printer, idx *catalog.Index, subjects []string) error {
	title := strings.Join(subjects, " / ") + " Courses"
	courses, err := catalog.FilterBySubject(idx, subjects...)
	switch {
	case errors.Is(err, catalog.ErrNoMatches):
		p.section(title)
		p.miss("", fmt.Sprintf("No %s courses found.", strings.Join(subjects, " or ")))
		return nil
	case err != nil:
		return err
	}
	printCourseList(p, title, courses)
	return nil
}

func printCourseList(p *printer, title string, courses []catalog.Course) {
	p.section(title)
	p.courseTable(courses)
	fmt.Fprintf(p.out, "\n  %d courses\n", len(courses))
}
