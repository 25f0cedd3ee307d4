package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nyonicai/squirrel-core/internal/catalog"
)

var (
	mergeOut      string
	mergeStrategy string
)

var mergeCmd = &cobra.Command{
	Use:   "merge <file>...",
	Short: "Merge catalog files into one document",
	Long: `Merge two or more catalog files and write the result.

Strategies:
  join   (default) inputs must be disjoint on (identifier, version);
         any overlap is an error
  union  later files win on overlapping pairs

Examples:
  squirrel merge -o merged.yaml defaults.yaml team.yaml
  squirrel merge --strategy union -o merged.yaml base.yaml override.yaml`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cleanup, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		var merged *catalog.Catalog
		switch mergeStrategy {
		case "join":
			merged, err = catalog.FromFiles(args)
			if err != nil {
				return err
			}
		case "union":
			merged = catalog.New()
			for _, path := range args {
				next, err := catalog.FromFiles([]string{path})
				if err != nil {
					return err
				}
				merged = merged.Union(next)
			}
		default:
			return fmt.Errorf("unknown merge strategy %q (want join or union)", mergeStrategy)
		}

		if err := merged.ToFile(mergeOut); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d identifiers to %s\n", merged.Len(), mergeOut)
		return nil
	},
}

func init() {
	mergeCmd.Flags().StringVarP(&mergeOut, "out", "o", "", "output file (required)")
	mergeCmd.Flags().StringVar(&mergeStrategy, "strategy", "join", "merge strategy: join or union")
	_ = mergeCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(mergeCmd)
}
