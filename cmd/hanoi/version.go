package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/hanoi"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of hanoi",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hanoi version %s\n", strings.TrimSpace(hanoi.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
