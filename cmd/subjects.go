package cmd

import (
	"fmt"

	"github.com/kamusis/advising-cli/internal/catalog"
	"github.com/spf13/cobra"
)

var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "Summarize catalog courses per subject",
	Args:  cobra.NoArgs,
	RunE:  runSubjects,
}

func init() {
	rootCmd.AddCommand(subjectsCmd)
}

func runSubjects(cmd *cobra.Command, _ []string) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}
	p := newPrinter(cmd)
	idx, err := loadCatalog(cmd, opts, p)
	if err != nil {
		return err
	}
	printSubjects(p, idx)
	return nil
}

func printSubjects(p *printer, idx *catalog.Index) {
	subjects := catalog.Subjects(idx)
	p.section("Subjects")
	p.subjectTable(subjects)
	fmt.Fprintf(p.out, "\n  %d subjects / %d courses\n", len(subjects), idx.Len())
}
