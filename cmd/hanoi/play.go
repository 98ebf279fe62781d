package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/hanoi/internal/cli"
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the main menu",
	Run:   runMenu,
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game right away",
	Long:  `Starts a game with the given number of disks, skipping the main menu. The game ends when it is won or when you enter Q.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := readRunOptions(cmd)
		opts.Disks, _ = cmd.Flags().GetInt("disks")
		execute(opts)
	},
}

func runMenu(cmd *cobra.Command, args []string) {
	opts := readRunOptions(cmd)
	opts.Menu = true
	execute(opts)
}

func readRunOptions(cmd *cobra.Command) cli.RunOptions {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")
	debug, _ := flags.GetBool("debug")
	color, _ := flags.GetString("color")
	maxDisks, _ := flags.GetInt("max-disks")
	jsonMode, _ := flags.GetBool("json")
	headless, _ := flags.GetBool("headless")
	metrics, _ := flags.GetBool("metrics")

	return cli.RunOptions{
		ConfigPath: configPath,
		Debug:      debug,
		Color:      color,
		MaxDisks:   maxDisks,
		JSON:       jsonMode,
		Headless:   headless,
		Metrics:    metrics,
	}
}

func execute(opts cli.RunOptions) {
	if err := cli.Execute(context.Background(), opts); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().IntP("disks", "n", 0, "Number of disks (default from config, 4)")
}
