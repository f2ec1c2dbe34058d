package cmd

import (
	"github.com/kamusis/advising-cli/internal/catalog"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <course-number>",
	Short: "Show a course title and its prerequisites",
	Long: `Load the catalog and print one course with its prerequisites.
Course numbers are matched exactly, including case.

Example:
  advising show CSCI300`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}
	p := newPrinter(cmd)
	idx, err := loadCatalog(cmd, opts, p)
	if err != nil {
		return err
	}
	return showCourse(p, idx, args[0])
}

func showCourse(p *printer, idx *catalog.Index, id string) error {
	c, err := catalog.Lookup(idx, id)
	if err != nil {
		return err
	}
	p.courseDetail(c)
	return nil
}
