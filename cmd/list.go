package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nyonicai/squirrel-core/internal/catalog"
	"github.com/nyonicai/squirrel-core/internal/presentation"
)

var (
	listDriver string
	listJSON   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every source in the composed catalog",
	Long: `List every (identifier, version) pair in the catalog composed from the
configured plugin defaults, directories and files.

Examples:
  # List all sources from one file
  squirrel list -f catalog.yaml

  # List sources from a directory, csv drivers only
  squirrel list -d ./catalogs --driver csv

  # JSON output for scripting
  squirrel list -f catalog.yaml --json | jq '.sources[].identifier'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		provider, cleanup, err := setup(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		cat, err := newService(provider).Load(ctx)
		if err != nil {
			return err
		}

		if listDriver != "" {
			cat = cat.Filter(func(cs *catalog.CatalogSource) bool {
				return cs.Driver == listDriver
			})
		}

		formatter := presentation.NewFormatter(os.Stdout)
		dto := presentation.FromCatalog(cat)
		if listJSON {
			return formatter.FormatJSON(dto)
		}
		return formatter.FormatCatalogTable(dto)
	},
}

func init() {
	listCmd.Flags().StringVar(&listDriver, "driver", "", "only sources using this driver")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output JSON instead of a table")
	rootCmd.AddCommand(listCmd)
}
