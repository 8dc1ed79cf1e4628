package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zjrosen/nacre/internal/lint"
	"github.com/zjrosen/nacre/internal/ui/styles"
)

var lintCmd = &cobra.Command{
	Use:   "lint [paths...]",
	Short: "Validate enum definition sources",
	Long: `Parse and validate definition sources, reporting every finding
instead of stopping at the first. With no arguments the configured sources
are checked. Exits non-zero when any finding is reported.

Examples:
  nacre lint
  nacre lint enums.yml extra.toml`,
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		paths = cfg.Sources
	}
	if len(paths) == 0 {
		return fmt.Errorf("no sources to lint: pass paths or configure sources")
	}

	if err := lint.Run(cmd.Context(), paths); err != nil {
		fmt.Fprint(os.Stderr, styles.ErrorStyle.Render(err.Error())+"\n")
		// The findings were already printed; keep the exit-status error terse.
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		return fmt.Errorf("lint failed")
	}

	fmt.Println(styles.SuccessStyle.Render(fmt.Sprintf("%d source(s) clean", len(paths))))
	return nil
}
