package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "cclog",
		Short:   "Browse Claude Code session logs and export them as markdown transcripts",
		Version: version,
	}

	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(exportAllCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(infoCmd())
	rootCmd.AddCommand(viewCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
