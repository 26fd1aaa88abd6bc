package main

import (
	"fmt"

	"github.com/Zuo-Peng/cclog/internal/display"
	"github.com/Zuo-Peng/cclog/internal/parse"
	"github.com/spf13/cobra"
)

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <session.jsonl>",
		Short: "Show summary details for one session log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := parse.Summarize(args[0])
			if err != nil {
				return fmt.Errorf("summarize %s: %w", args[0], err)
			}

			label := func(s string) string {
				return display.StyleLabel.Render(fmt.Sprintf("%-10s", s))
			}

			fmt.Printf("%s %s\n", label("Session:"), sum.SessionID)
			fmt.Printf("%s %d\n", label("Messages:"), sum.LineCount)
			fmt.Printf("%s %s\n", label("Started:"), sum.StartTime.Format("2006-01-02 15:04:05"))
			if !sum.EndTime.Equal(sum.StartTime) {
				fmt.Printf("%s %s\n", label("Finished:"), sum.EndTime.Format("2006-01-02 15:04:05"))
			}
			if sum.DurationSeconds() > 0 {
				fmt.Printf("%s %s\n", label("Duration:"), sum.Duration())
			}
			return nil
		},
	}
}
