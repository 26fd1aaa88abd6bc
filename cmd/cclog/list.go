package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Zuo-Peng/cclog/internal/config"
	"github.com/Zuo-Peng/cclog/internal/display"
	"github.com/Zuo-Peng/cclog/internal/parse"
	"github.com/Zuo-Peng/cclog/internal/project"
	"github.com/Zuo-Peng/cclog/internal/scan"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// columns taken by timestamp(19) + duration(8) + messages(8) + spacing(6)
const listFixedWidth = 41

func listCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List session logs for the current project, newest first",
		Long: `Prints one row per session: start time, duration, line count and the
first user message, truncated to the terminal width. Each row carries the
session ID after a unit separator (0x1F) so fzf can return it while only
showing the visible part:

  cclog list | fzf --header-lines=4 --delimiter=$'\x1f' --with-nth=1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			if dir == "" {
				dir = project.LogDir(cfg.ProjectsRoot, cwd)
			}

			files, err := scan.ListSessions(dir)
			if err != nil {
				return fmt.Errorf("list sessions in %s: %w", dir, err)
			}

			fmt.Printf("Claude Code Sessions for: %s\n", cwd)
			fmt.Println("Enter: Return session ID, Ctrl-v: View log")
			fmt.Println("Ctrl-p: Return path, Ctrl-r: Resume conversation")
			fmt.Println("TIMESTAMP           Duration Messages  FIRST_MESSAGE")

			avail := terminalWidth() - listFixedWidth - 2
			if avail < 20 {
				avail = 20
			}

			for _, fi := range files {
				sum, err := parse.Summarize(fi.Path)
				if err != nil {
					continue // not a session, or unreadable
				}
				msg := display.Truncate(display.EscapeNewlines(sum.FirstUserMessage), avail)
				fmt.Printf("%-19s %8s %8d  %s\x1f%s\n",
					sum.StartTime.Format("2006-01-02 15:04:05"),
					sum.Duration(),
					sum.LineCount,
					msg,
					sum.SessionID,
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Session log directory (default: current project)")

	return cmd
}

func terminalWidth() int {
	// COLUMNS wins, for tests and terminals that export it
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if n, err := strconv.Atoi(cols); err == nil && n > 0 {
			return n
		}
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}
