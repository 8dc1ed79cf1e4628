package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zjrosen/nacre/internal/lint"
	"github.com/zjrosen/nacre/internal/log"
	"github.com/zjrosen/nacre/internal/ui/styles"
	"github.com/zjrosen/nacre/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reload and re-lint sources on change",
	Long: `Watch the configured sources in the foreground. Each time a source
changes, the registry reloads and the sources are re-linted, printing any
findings. Stop with Ctrl+C.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if len(cfg.Sources) == 0 {
		return fmt.Errorf("no sources to watch: configure sources or pass --source")
	}
	if !cfg.AutoReload {
		return fmt.Errorf("auto_reload is disabled in config")
	}

	reg, cleanup, err := buildRegistry()
	if err != nil {
		return err
	}
	defer cleanup()

	w, err := watcher.New(watcher.Config{
		Paths:       cfg.Sources,
		DebounceDur: cfg.Debounce(),
	})
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}

	ctx := cmd.Context()
	reloadAndLint := func() {
		if err := reg.Populate(ctx); err != nil {
			fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("reload failed: "+err.Error()))
			return
		}
		if err := lint.Run(ctx, cfg.Sources); err != nil {
			fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render(err.Error()))
			return
		}
		fmt.Println(styles.SuccessStyle.Render(
			fmt.Sprintf("reloaded %d enum(s) from %d source(s)", reg.Len(), len(cfg.Sources))))
	}

	fmt.Printf("Watching %d source(s), debounce %s. Ctrl+C to stop.\n",
		len(cfg.Sources), cfg.Debounce())
	reloadAndLint()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case <-onChange:
			log.Debug(log.CatWatcher, "Source change detected")
			// Reset first so enums removed from a source do not linger.
			reg.Reset()
			reloadAndLint()
		case <-sig:
			fmt.Println("\nStopping.")
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}
