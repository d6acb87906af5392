// Package main provides the hapbadge CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// configFile is set by the --config flag.
	configFile string

	// cfg holds the loaded configuration, initialized on startup.
	cfg *viper.Viper
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hapbadge",
	Short: "hapbadge derives HomeKit pairing codes and badges",
	Long: `hapbadge works with HomeKit setup payloads ("X-HM://" URIs). It extracts
the 8-digit pairing code from a payload, renders the SVG pairing badge that
combines the code with a scannable QR version of the payload, and composes
new payloads for testing.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig()
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: ~/.hapbadge/config.yaml)")

	rootCmd.AddCommand(codeCmd)
	rootCmd.AddCommand(badgeCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("hapbadge v0.1.0")
	},
}
