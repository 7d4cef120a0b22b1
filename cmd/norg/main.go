package main

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "norg",
		Short: "An Org mode outline toolchain",
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a .norg.yaml config file")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newOutlineCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
