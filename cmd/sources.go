package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/nacre/internal/config"
	"github.com/zjrosen/nacre/internal/store/sqlite"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Manage configured definition sources",
}

var sourcesAddCmd = &cobra.Command{
	Use:   "add <path>",
	Short: "Add a source to the config",
	Long: `Append a definition source to the config file's sources list.
Comments and other sections of the config are preserved.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.AddSource(configFilePath(), args[0], cfg.Sources); err != nil {
			return err
		}
		fmt.Printf("Added %s to %s\n", args[0], configFilePath())
		return nil
	},
}

var sourcesRemoveCmd = &cobra.Command{
	Use:   "remove <path>",
	Short: "Remove a source from the config",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.RemoveSource(configFilePath(), args[0], cfg.Sources); err != nil {
			return err
		}
		fmt.Printf("Removed %s from %s\n", args[0], configFilePath())
		return nil
	},
}

var sourcesImportCmd = &cobra.Command{
	Use:   "import <db-path>",
	Short: "Import the loaded enums into a SQLite database",
	Long: `Load the configured sources and write every enum into a SQLite
database that can itself be used as a source (with the sqlite-sources
flag enabled).

Examples:
  nacre sources import enums.db
  nacre -s enums.yml sources import enums.db`,
	Args: cobra.ExactArgs(1),
	RunE: runSourcesImport,
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
	sourcesCmd.AddCommand(sourcesAddCmd)
	sourcesCmd.AddCommand(sourcesRemoveCmd)
	sourcesCmd.AddCommand(sourcesImportCmd)
}

func runSourcesImport(cmd *cobra.Command, args []string) error {
	reg, cleanup, err := buildRegistry()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()
	if err := reg.Populate(ctx); err != nil {
		return fmt.Errorf("loading sources: %w", err)
	}
	if reg.Len() == 0 {
		return fmt.Errorf("nothing to import: no enums defined")
	}

	db, err := sqlite.NewDB(args[0])
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	store := sqlite.NewStore(db)
	defer func() { _ = store.Close() }()

	for _, e := range reg.Enums() {
		if err := store.Save(ctx, e); err != nil {
			return fmt.Errorf("saving %q: %w", e.Name(), err)
		}
	}

	fmt.Printf("Imported %d enum(s) into %s\n", reg.Len(), args[0])
	return nil
}
