package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/dynurl"
	"github.com/aretw0/dynurl/internal/cli"
	"github.com/aretw0/dynurl/internal/logging"
	"github.com/aretw0/dynurl/pkg/config"
	"github.com/aretw0/dynurl/pkg/domain"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dynurl",
	Short: "dynurl rewrites {placeholder} tokens in URL path templates",
	Long: `dynurl resolves {name} tokens in request paths through a resolver chain
(static variables, element attributes) with an optional namespace fallback.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Settings file (YAML or JSON)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error); overrides the settings file")
}

// loadSettings reads --config when given and applies the persistent overrides.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	settings := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return settings, err
		}
		settings = loaded
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		settings.LogLevel = level
	}
	return settings, nil
}

func newLogger(settings config.Settings) *slog.Logger {
	return logging.New(logging.ParseLevel(settings.LogLevel))
}

// engineHooks adds debug tracing on top of extra when the log level asks for it.
func engineHooks(settings config.Settings, logger *slog.Logger, extra ...domain.LifecycleHooks) []dynurl.Option {
	var opts []dynurl.Option
	if logging.ParseLevel(settings.LogLevel) <= slog.LevelDebug {
		opts = append(opts, dynurl.WithLifecycleHooks(cli.DebugHooks(logger)))
	}
	for _, h := range extra {
		opts = append(opts, dynurl.WithLifecycleHooks(h))
	}
	return opts
}
