package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hanoi",
	Short: "Hanoi is an interactive Tower of Hanoi game",
	Long: `Move a stack of disks from rod A to rod C, one disk at a time,
never placing a larger disk on a smaller one.

Run without arguments to open the main menu.`,
	Run: runMenu,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (default ./hanoi.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "Log game events to stderr")
	rootCmd.PersistentFlags().String("color", "", "Color mode: auto, always or never")
	rootCmd.PersistentFlags().Int("max-disks", 0, "Largest disk count allowed")
	rootCmd.PersistentFlags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")
	rootCmd.PersistentFlags().Bool("headless", false, "Run in headless mode (no banner, no pauses)")
	rootCmd.PersistentFlags().Bool("metrics", false, "Print game metrics to stderr on exit")
}
