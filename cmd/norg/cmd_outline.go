package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/norg/format"
	"github.com/dhamidi/norg/org"
	"github.com/spf13/cobra"
)

func newOutlineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "outline <file>",
		Short: "Print the headline outline of an Org file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read org file: %w", err)
			}

			doc, err := org.ParseBytes(data, org.WithConfig(cfg), org.WithRawTitles())
			if err != nil {
				return fmt.Errorf("parse org file: %w", err)
			}

			encoder := format.NewOutlineEncoder(os.Stdout)
			if err := encoder.Encode(doc); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}
}
