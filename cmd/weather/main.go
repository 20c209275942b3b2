// Weather is a terminal weather application.
//
// Running without arguments opens the full-screen interface showing hourly,
// daily and detailed conditions for the saved location. Subcommands print
// one-shot reports for scripting and quick checks.
//
// Usage:
//
//	weather [command] [flags]
//
// See 'weather --help' for available commands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/muurk/weather/internal/logging"
	"github.com/muurk/weather/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "weather",
	Short: "Terminal weather forecasts",
	Long: `A terminal weather application backed by Open-Meteo forecasts and
OpenStreetMap place search.

If no command is specified, the interactive interface launches. Settings
changed there are saved to the config directory and picked up by the
other commands.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runApp,
}

var configDir string

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Config directory (default: $XDG_CONFIG_HOME/com.muurk.Weather)")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "weather %s\n", version.Full())
	},
}
