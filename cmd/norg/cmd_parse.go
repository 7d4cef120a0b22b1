package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/norg/format"
	"github.com/dhamidi/norg/org"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var rawTitles bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse an Org file and dump the syntax tree",
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

			opts := []org.Option{org.WithConfig(cfg)}
			if rawTitles {
				opts = append(opts, org.WithRawTitles())
			}
			doc, err := org.ParseBytes(data, opts...)
			if err != nil {
				return fmt.Errorf("parse org file: %w", err)
			}

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "outline":
				encoder = format.NewOutlineEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(doc); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			if outputFormat == "json" {
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outputFormat, "format", "json", "output format (json, outline)")
	cmd.Flags().BoolVar(&rawTitles, "raw-titles", false, "keep titles as plain strings")

	return cmd
}
