package main

import (
	"fmt"
	"os"

	"github.com/Zuo-Peng/cclog/internal/display"
	"github.com/Zuo-Peng/cclog/internal/parse"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <session.jsonl>",
		Short: "Print a session one line per message, colored by role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, _, err := parse.ReadSession(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			color := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

			for _, rec := range records {
				if line, ok := display.RecordLine(rec, color); ok {
					fmt.Println(line)
				}
			}
			return nil
		},
	}
}
