// Package main is the entry point for the weapon generation server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "aeon-generator",
	Short: "AEON weapon generation server",
	Long:  `AEON generates arena weapons from player personalities: names, descriptions, stats, and 3D meshes.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
