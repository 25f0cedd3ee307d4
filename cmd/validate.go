package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nyonicai/squirrel-core/internal/catalog"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check catalog files for conflicts",
	Long: `Validate that catalog files decode cleanly and are mutually disjoint
on (identifier, version) pairs. Overlapping pairs with identical
payloads are reported as duplicates; overlapping pairs with diverging
payloads are reported as conflicts. Either fails validation.

Example:
  squirrel validate catalogs/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cleanup, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		cats := make([]*catalog.Catalog, len(args))
		for i, path := range args {
			cats[i], err = catalog.FromFiles([]string{path})
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}

		failed := false
		for i := range cats {
			for j := i + 1; j < len(cats); j++ {
				common, err := cats[i].Intersection(cats[j])
				switch {
				case errors.Is(err, catalog.ErrConflictingSource):
					failed = true
					fmt.Fprintf(cmd.OutOrStdout(), "CONFLICT  %s vs %s: %v\n", args[i], args[j], err)
				case err != nil:
					return err
				case common.Len() > 0:
					failed = true
					fmt.Fprintf(cmd.OutOrStdout(), "DUPLICATE %s vs %s: %v\n", args[i], args[j], common.Keys())
				}
			}
		}

		if failed {
			return fmt.Errorf("validation failed")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "OK: %d files, mutually disjoint\n", len(args))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
