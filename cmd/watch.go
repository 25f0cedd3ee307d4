package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nyonicai/squirrel-core/internal/presentation"
)

var watchJSON bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch catalog directories and report changes",
	Long: `Watch the configured catalog directories and print a diff whenever
the composed catalog changes. Runs until interrupted.

Example:
  squirrel watch -d ./catalogs`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(cfg.Catalog.Dirs) == 0 {
			return fmt.Errorf("watch requires at least one catalog directory (--dir)")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		provider, cleanup, err := setup(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		events, err := newService(provider).Watch(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		formatter := presentation.NewFormatter(out)
		fmt.Fprintf(out, "watching %v\n", cfg.Catalog.Dirs)

		for event := range events {
			summary := event.Payload
			if watchJSON {
				if err := formatter.FormatJSON(presentation.FromDiff(summary.Diff)); err != nil {
					return err
				}
				continue
			}
			fmt.Fprintf(out, "%s reloaded: %d identifiers\n",
				event.Timestamp.Format("15:04:05"), summary.Catalog.Len())
			for _, k := range summary.Diff.Added {
				fmt.Fprintf(out, "  + %s\n", k)
			}
			for _, k := range summary.Diff.Removed {
				fmt.Fprintf(out, "  - %s\n", k)
			}
			for _, k := range summary.Diff.Modified {
				fmt.Fprintf(out, "  ~ %s\n", k)
			}
		}
		return nil
	},
}

func init() {
	watchCmd.Flags().BoolVar(&watchJSON, "json", false, "print diffs as JSON")
	rootCmd.AddCommand(watchCmd)
}
