// Package project maps working directories to Claude Code log directories.
package project

import (
	"path/filepath"
	"strings"
)

var dirEncoder = strings.NewReplacer("/", "-", ".", "-", "_", "-")

// EncodeDir converts a working-directory path into the directory name Claude
// Code uses under its projects root: every "/", "." and "_" becomes "-".
func EncodeDir(path string) string {
	return dirEncoder.Replace(path)
}

// LogDir returns the session-log directory for the given working directory.
func LogDir(projectsRoot, cwd string) string {
	return filepath.Join(projectsRoot, EncodeDir(cwd))
}
