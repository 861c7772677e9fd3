// Luxtap reads the ambient light sensors exposed by the host's hardware
// service registry.
//
// It enumerates registered hardware services, filters for entries that
// expose a current-illuminance property, and reads them as lux values.
// Running without arguments prints a one-line-per-sensor report.
//
// Usage:
//
//	luxtap [command] [flags]
//
// See 'luxtap --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/luxtap/luxtap/internal/logging"
	"github.com/luxtap/luxtap/internal/version"
)

func main() {
	defer logging.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "luxtap",
	Short: "Ambient Light Sensor Utility",
	Long: `A utility for reading the host's ambient light sensors.

Enumerates the hardware service registry for entries exposing a
current-illuminance property and reads them as lux values.

If no command is specified, a report of every sensor is printed.`,
	Version: version.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Initialize(logLevel)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: print the sensor report
		return runReport(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("luxtap %s (commit: %s)\n", version.Version, version.Commit)
	},
}
