package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zjrosen/nacre/internal/presentation"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List enums from the configured sources",
	Long: `List every enum the configured sources define, with member values.

Examples:
  # Styled table
  nacre list

  # JSON for scripting
  nacre list --json
  nacre list --json | jq '.[].name'

  # Ad-hoc source
  nacre list -s enums.yml`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output JSON instead of a table")
}

func runList(cmd *cobra.Command, args []string) error {
	reg, cleanup, err := buildRegistry()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := reg.Populate(cmd.Context()); err != nil {
		return fmt.Errorf("loading sources: %w", err)
	}

	dtos := presentation.FromEnums(reg.Enums(), nil)

	if listJSON {
		return presentation.NewFormatter(os.Stdout).FormatEnums(dtos)
	}

	opts := []presentation.TableOption{}
	if !cfg.UI.ShowFormats {
		opts = append(opts, presentation.WithoutFormats())
	}
	fmt.Print(presentation.NewTableRenderer(opts...).RenderEnums(dtos))
	return nil
}
