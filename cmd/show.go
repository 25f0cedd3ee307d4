package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nyonicai/squirrel-core/internal/catalog"
	"github.com/nyonicai/squirrel-core/internal/presentation"
)

var showAll bool

var showCmd = &cobra.Command{
	Use:   "show <identifier>[@version]",
	Short: "Show one source from the composed catalog",
	Long: `Show a single source as JSON. A bare identifier resolves to its
greatest version; identifier@N addresses version N exactly.

Examples:
  squirrel show ds1 -f catalog.yaml
  squirrel show ds1@2 -f catalog.yaml
  squirrel show ds1 --all-versions -f catalog.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		provider, cleanup, err := setup(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		key, err := catalog.ParseKey(args[0])
		if err != nil {
			return err
		}

		cat, err := newService(provider).Load(ctx)
		if err != nil {
			return err
		}

		formatter := presentation.NewFormatter(os.Stdout)

		if showAll {
			sliced, err := cat.Slice([]string{key.Identifier})
			if err != nil {
				return err
			}
			return formatter.FormatJSON(presentation.FromCatalog(sliced).Sources)
		}

		cs, ok := cat.GetKey(key)
		if !ok {
			return fmt.Errorf("%w: %s", catalog.ErrNotFound, key)
		}
		return formatter.FormatJSON(presentation.FromCatalogSource(cs))
	},
}

func init() {
	showCmd.Flags().BoolVar(&showAll, "all-versions", false, "show every version of the identifier")
	rootCmd.AddCommand(showCmd)
}
