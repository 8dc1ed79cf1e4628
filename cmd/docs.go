package cmd

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed docs/usage.md
var usageGuide string

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show the usage guide",
	Long:  `Render the built-in usage guide: source formats, lookup semantics, translations, and the command surface.`,
	RunE:  runDocs,
}

func init() {
	rootCmd.AddCommand(docsCmd)
}

func runDocs(cmd *cobra.Command, args []string) error {
	style := glamour.WithAutoStyle()
	switch cfg.UI.DocsStyle {
	case "light":
		style = glamour.WithStandardStyle("light")
	case "dark":
		style = glamour.WithStandardStyle("dark")
	}

	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(100))
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}

	out, err := renderer.Render(usageGuide)
	if err != nil {
		return fmt.Errorf("rendering guide: %w", err)
	}
	fmt.Print(out)
	return nil
}
