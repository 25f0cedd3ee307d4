package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nyonicai/squirrel-core/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented default config file",
	Long: `Write the default configuration to .squirrel/config.yaml in the
current directory (or to --config if set). Refuses to overwrite an
existing file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = filepath.Join(".squirrel", "config.yaml")
		}
		if err := config.WriteDefaultConfig(path); err != nil {
			return err
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", abs)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
