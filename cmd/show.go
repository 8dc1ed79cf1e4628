package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zjrosen/nacre/internal/flags"
	"github.com/zjrosen/nacre/internal/presentation"
)

var (
	showJSON   bool
	showLocale string
)

var showCmd = &cobra.Command{
	Use:   "show <enum>",
	Short: "Show the values of one enum",
	Long: `Show the values of a single enum with its formats and, when
translations are configured, localized labels.

Examples:
  nacre show statuses
  nacre show statuses --locale de
  nacre show statuses --json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output JSON instead of a table")
	showCmd.Flags().StringVar(&showLocale, "locale", "", "label locale (default from config)")
}

func runShow(cmd *cobra.Command, args []string) error {
	reg, cleanup, err := buildRegistry()
	if err != nil {
		return err
	}
	defer cleanup()

	e, err := reg.Lookup(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	loc := buildLocalizer(showLocale)
	if featureFlags().Enabled(flags.FlagStrictLabels) {
		for _, v := range e.Values() {
			if _, err := loc.LabelStrict(v); err != nil {
				return fmt.Errorf("enum %q: %w", e.Name(), err)
			}
		}
	}

	dto := presentation.FromEnum(e, loc)

	if showJSON {
		return presentation.NewFormatter(os.Stdout).FormatEnum(dto)
	}

	opts := []presentation.TableOption{}
	if !cfg.UI.ShowFormats {
		opts = append(opts, presentation.WithoutFormats())
	}
	fmt.Print(presentation.NewTableRenderer(opts...).RenderEnum(dto))
	return nil
}
