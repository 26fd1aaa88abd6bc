package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	ProjectsRoot string `toml:"projects_root"`
	ExportDir    string `toml:"export_dir"`
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ProjectsRoot: filepath.Join(home, ".claude", "projects"),
		ExportDir:    "claude_chat",
	}

	cfgPath := filepath.Join(home, ".config", "cclog", "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	// expand ~ in paths
	cfg.ProjectsRoot = expandHome(cfg.ProjectsRoot, home)
	cfg.ExportDir = expandHome(cfg.ExportDir, home)

	return cfg, nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
