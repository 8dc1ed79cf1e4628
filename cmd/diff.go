package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zjrosen/nacre/internal/diff"
	"github.com/zjrosen/nacre/internal/presentation"
)

var diffJSON bool

var diffCmd = &cobra.Command{
	Use:   "diff <before> <after>",
	Short: "Compare two definition files",
	Long: `Compare the enums defined by two source files and report added,
removed, and changed enums, including per-value format changes.

Exits non-zero when the files differ.

Examples:
  nacre diff enums.yml enums.new.yml
  nacre diff enums.yml enums.new.yml --json`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
	diffCmd.Flags().BoolVar(&diffJSON, "json", false, "output JSON instead of rendered diff")
}

func runDiff(cmd *cobra.Command, args []string) error {
	report, err := diff.CompareSources(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}

	if diffJSON {
		if err := presentation.NewFormatter(os.Stdout).FormatResult(report); err != nil {
			return err
		}
	} else {
		fmt.Print(diff.Render(report))
	}

	if !report.Empty() {
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		return fmt.Errorf("definitions differ")
	}
	return nil
}
