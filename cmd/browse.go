package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/zjrosen/nacre/internal/ui/browser"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse enums interactively",
	Long: `Open the interactive browser: an enum list pane on the left and the
selected enum's values on the right. This is also what plain 'nacre' runs.`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	reg, cleanup, err := buildRegistry()
	if err != nil {
		return err
	}
	defer cleanup()

	opts := []browser.Option{}
	if cfg.UI.ShowCounts {
		opts = append(opts, browser.WithCounts())
	}
	model := browser.New(reg, buildLocalizer(""), opts...)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
