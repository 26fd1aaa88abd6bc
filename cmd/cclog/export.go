package main

import (
	"fmt"
	"os"

	"github.com/Zuo-Peng/cclog/internal/config"
	"github.com/Zuo-Peng/cclog/internal/export"
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var output string
	var filtered bool

	cmd := &cobra.Command{
		Use:   "export <session.jsonl>",
		Short: "Export one session log to a markdown transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if output == "" {
				output = cfg.ExportDir
			}

			if !export.ExportSession(args[0], output, filtered) {
				return fmt.Errorf("export failed: %s", args[0])
			}
			fmt.Fprintf(os.Stderr, "Exported %s to %s\n", args[0], output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default from config)")
	cmd.Flags().BoolVar(&filtered, "filtered", false, "Drop messages with no body content")

	return cmd
}
