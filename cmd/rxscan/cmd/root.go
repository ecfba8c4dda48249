package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rxscan/rxscan/internal/config"
	"github.com/rxscan/rxscan/internal/decode"
	"github.com/rxscan/rxscan/internal/gs1"
	"github.com/rxscan/rxscan/internal/version"
)

var (
	// Global configuration loader.
	configLoader *config.Loader
	// Global configuration.
	globalConfig *config.Config
	// Configuration file path.
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "rxscan",
	Short: "Decode GS1 Data Matrix pharmaceutical labels",
	Long: `rxscan reads a GS1-encoded Data Matrix symbol from a photograph and
turns the payload into a structured pharmaceutical record (GTIN, NDC,
expiration date, lot number).

Degraded captures are handled by a fixed cascade of preprocessing
recipes and rotations, stopping at the first strategy that yields a
valid decode.

Examples:
  rxscan decode vial.jpg
  rxscan scan vial.jpg --format json --lookup
  rxscan parse 010034928158905817131028100U42275AA
  rxscan serve --port 8080`,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, _ := cmd.PersistentFlags().GetBool("version")
		if v {
			ver, commit, date := version.Info()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "rxscan version %s\n", ver)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Commit: %s\n", commit)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", date)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the root command and maps errors to process exit codes:
// 1 for usage problems, 2 for decode failures and processing errors.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode classifies an error per the CLI contract. A decode
// exhaustion, an unreadable image or a malformed identifier is exit 2;
// everything else (bad invocation, unknown flags, missing files) is
// the usage exit 1.
func exitCode(err error) int {
	if errors.Is(err, decode.ErrNoSymbol) {
		return 2
	}
	var pe *decode.ProcessingError
	if errors.As(err, &pe) {
		return 2
	}
	var ife *gs1.InvalidFormatError
	if errors.As(err, &ife) {
		return 2
	}
	var ide *gs1.InvalidDateError
	if errors.As(err, &ide) {
		return 2
	}
	return 1
}

// GetRootCommand returns the root command for testing purposes.
func GetRootCommand() *cobra.Command {
	return rootCmd
}

// GetConfig returns the loaded configuration, loading it on demand.
func GetConfig() *config.Config {
	if globalConfig == nil {
		initConfig()
	}
	return globalConfig
}

// GetConfigLoader returns the configuration loader.
func GetConfigLoader() *config.Loader {
	if configLoader == nil {
		configLoader = config.NewLoader()
	}
	return configLoader
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is search in ., $HOME, $HOME/.config/rxscan, /etc/rxscan)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output (equivalent to --log-level=debug)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("version", false, "print version information and exit")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if globalConfig == nil {
			initConfig()
		}

		var logLevel slog.Level
		if globalConfig.Verbose {
			logLevel = slog.LevelDebug
		} else {
			switch globalConfig.LogLevel {
			case "debug":
				logLevel = slog.LevelDebug
			case "warn":
				logLevel = slog.LevelWarn
			case "error":
				logLevel = slog.LevelError
			default:
				logLevel = slog.LevelInfo
			}
		}

		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
		slog.SetDefault(slog.New(handler))
	}
}

// initConfig loads configuration from file, environment and flags.
func initConfig() {
	loader := GetConfigLoader()

	cfg, err := loader.LoadWithFile(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	globalConfig = cfg
}

// decodeConfig translates the loaded configuration into pipeline knobs.
func decodeConfig() decode.Config {
	cfg := GetConfig()
	return decode.Config{
		TryHarder:  cfg.Decode.TryHarder,
		MaxSymbols: cfg.Decode.MaxSymbols,
	}
}
