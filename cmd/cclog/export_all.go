package main

import (
	"fmt"
	"os"

	"github.com/Zuo-Peng/cclog/internal/config"
	"github.com/Zuo-Peng/cclog/internal/export"
	"github.com/Zuo-Peng/cclog/internal/project"
	"github.com/spf13/cobra"
)

func exportAllCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export-all [sessionsDir]",
		Short: "Export every session log in a directory as filtered markdown",
		Long: `Runs the filtered exporter over every session log in a directory.
Without an argument the current project's log directory under the
projects root is used. Individual files that fail to export are
skipped; the batch succeeds as long as the directory itself is valid.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if output == "" {
				output = cfg.ExportDir
			}

			var sessionsDir string
			if len(args) == 1 {
				sessionsDir = args[0]
			} else {
				cwd, err := os.Getwd()
				if err != nil {
					return err
				}
				sessionsDir = project.LogDir(cfg.ProjectsRoot, cwd)
			}

			if !export.ExportAll(sessionsDir, output) {
				return fmt.Errorf("export-all failed: %s", sessionsDir)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default from config)")

	return cmd
}
