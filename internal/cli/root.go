// internal/cli/root.go
// Package prodsight wires the cobra command tree for the prodsight CLI.
package prodsight

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/prodsight/internal/appconfig"
	"github.com/mwiater/prodsight/internal/dashboard"
	"github.com/mwiater/prodsight/internal/fixtures"
	"github.com/mwiater/prodsight/internal/logging"
	"github.com/mwiater/prodsight/internal/theme"
)

// Version is stamped at build time with -ldflags "-X ...Version=...".
var Version = "dev"

var (
	cfgFile       string
	currentConfig *appconfig.Config
)

var (
	successText = color.New(color.FgGreen).SprintFunc()
	failedText  = color.New(color.FgRed).SprintFunc()
)

var rootCmd = &cobra.Command{
	Use:           "prodsight",
	Short:         "prodsight: product success prediction dashboard generator",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 1) Load config (file or defaults)
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		// 2) If user did NOT set a flag, copy the config value into the flag so
		//    both pflags and viper reflect the same, final value.
		if !cmd.Flags().Changed("debug") {
			_ = cmd.Flags().Set("debug", strconv.FormatBool(viper.GetBool("debug")))
		}
		for _, name := range []string{"seed", "logFile"} {
			if !cmd.Flags().Changed(name) {
				_ = cmd.Flags().Set(name, viper.GetString(name))
			}
		}

		// 3) Materialize the merged configuration (flags > config > defaults).
		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		cfg.ConfigPath = viper.ConfigFileUsed()
		currentConfig = &cfg

		if err := logging.Init(cfg.LogFilePath(), cfg.Debug); err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
		logging.LogDebug("command %q starting with seed %d", cmd.CommandPath(), cfg.SeedValue())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.Close()
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, failedText("Error:"), err)
		logging.LogEvent("command failed: %v", err)
		_ = logging.Close()
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	rootCmd.PersistentFlags().Int64("seed", fixtures.DefaultSeed, "seed for the synthetic scatter data")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("logFile", "prodsight.log", "log file path")

	// Bind flags to Viper keys (flags override config)
	_ = viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("logFile", rootCmd.PersistentFlags().Lookup("logFile"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// ensureConfigLoaded reads the config and sets safe defaults.
func ensureConfigLoaded() error {
	viper.SetDefault("seed", fixtures.DefaultSeed)
	viper.SetDefault("debug", false)
	viper.SetDefault("logFile", "prodsight.log")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			// No file: fine, we'll use defaults/flags
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// getConfig returns the merged configuration, or defaults before PersistentPreRunE has run.
func getConfig() appconfig.Config {
	if currentConfig == nil {
		return appconfig.Config{}
	}
	return *currentConfig
}

// buildDashboard produces the dataset and render tree for cfg.
func buildDashboard(cfg appconfig.Config) (fixtures.Dataset, dashboard.Dashboard, error) {
	t := theme.Default().WithTitle(cfg.Title)
	ds, err := fixtures.Build(fixtures.Options{Seed: cfg.SeedValue(), Palette: t.Palette})
	if err != nil {
		return fixtures.Dataset{}, dashboard.Dashboard{}, fmt.Errorf("build fixtures: %w", err)
	}
	return ds, dashboard.Build(ds, t), nil
}
