package main

import (
	"github.com/dhamidi/norg/org/workspace"
	"github.com/spf13/cobra"
)

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			server := workspace.NewLSPServer(cfg, "0.1.0")
			return server.RunStdio()
		},
	}
}
