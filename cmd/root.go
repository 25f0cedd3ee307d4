// Package cmd implements the squirrel command-line interface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nyonicai/squirrel-core/internal/config"
	"github.com/nyonicai/squirrel-core/internal/log"
	"github.com/nyonicai/squirrel-core/internal/tracing"
)

var (
	version = "dev"
	cfgFile string
	cfg     config.Config

	flagFiles []string
	flagDirs  []string
	flagDebug bool
	flagTrace bool
)

var rootCmd = &cobra.Command{
	Use:   "squirrel",
	Short: "Inspect and compose versioned source catalogs",
	Long: `squirrel works with versioned source catalogs: YAML documents mapping
identifiers to numbered versions of a driver-backed source. Catalogs
compose through set algebra (union, intersection, difference, join),
which the subcommands expose for listing, merging, validating and
watching catalog files.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// SetVersion overrides the version string shown by --version.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/squirrel/config.yaml)")
	rootCmd.PersistentFlags().StringArrayVarP(&flagFiles, "file", "f", nil,
		"catalog file to load (repeatable)")
	rootCmd.PersistentFlags().StringArrayVarP(&flagDirs, "dir", "d", nil,
		"directory of catalog files to load (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"enable debug logging (also via SQUIRREL_DEBUG)")
	rootCmd.PersistentFlags().BoolVar(&flagTrace, "trace", false,
		"enable tracing for this invocation")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("catalog.use_plugins", defaults.Catalog.UsePlugins)
	viper.SetDefault("watch.debounce_ms", defaults.Watch.DebounceMs)
	viper.SetDefault("cache.ttl_seconds", defaults.Cache.TTLSeconds)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)
	viper.SetDefault("tracing.service_name", defaults.Tracing.ServiceName)
	viper.SetDefault("log_path", defaults.LogPath)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .squirrel/config.yaml (current directory)
		// 2. ~/.config/squirrel/config.yaml (user config)
		if _, err := os.Stat(".squirrel/config.yaml"); err == nil {
			viper.SetConfigFile(".squirrel/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "squirrel"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	// Missing config files are fine, squirrel runs from flags alone.
	_ = viper.ReadInConfig()
	_ = viper.Unmarshal(&cfg)

	cfg.Catalog.Files = append(cfg.Catalog.Files, flagFiles...)
	cfg.Catalog.Dirs = append(cfg.Catalog.Dirs, flagDirs...)
	if flagTrace {
		cfg.Tracing.Enabled = true
	}
}

// setup validates the config and initializes logging and tracing.
// The returned cleanup flushes both.
func setup(ctx context.Context) (*tracing.Provider, func(), error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	var cleanups []func()

	if flagDebug || os.Getenv("SQUIRREL_DEBUG") != "" {
		closeLog, err := log.Init(cfg.LogPath)
		if err != nil {
			return nil, nil, fmt.Errorf("initializing log: %w", err)
		}
		cleanups = append(cleanups, closeLog)
	}

	tcfg := cfg.Tracing
	if tcfg.Enabled && tcfg.Exporter == "file" && tcfg.FilePath == "" {
		tcfg.FilePath = ".squirrel/traces/traces.jsonl"
	}
	provider, err := tracing.NewProvider(tcfg)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing tracing: %w", err)
	}
	cleanups = append(cleanups, func() {
		_ = provider.Shutdown(ctx)
	})

	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}
	return provider, cleanup, nil
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
