package main

import (
	"fmt"
	"os"

	"github.com/aretw0/hanoi/internal/cli"
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:     "rules",
	Aliases: []string{"instructions"},
	Short:   "Print the rules of the game",
	Run: func(cmd *cobra.Command, args []string) {
		color, _ := cmd.Flags().GetString("color")
		if err := cli.ShowRules(os.Stdout, color); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
