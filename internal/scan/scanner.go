// Package scan enumerates session logs inside a project's log directory.
package scan

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileInfo describes one session log found in a project directory.
type FileInfo struct {
	Path  string
	Mtime int64
	Size  int64
}

// SessionFiles returns the session logs directly inside dir, in
// directory-listing order. It does not recurse: each project directory is
// flat, and subdirectories (e.g. subagent logs) are not sessions of this
// project.
func SessionFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !isSessionFile(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}

// ListSessions returns the session logs in dir sorted newest-first by
// modification time, for the list view.
func ListSessions(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() || !isSessionFile(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue // file disappeared mid-listing
		}
		files = append(files, FileInfo{
			Path:  filepath.Join(dir, e.Name()),
			Mtime: info.ModTime().Unix(),
			Size:  info.Size(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Mtime > files[j].Mtime
	})
	return files, nil
}

func isSessionFile(name string) bool {
	if filepath.Ext(name) != ".jsonl" {
		return false
	}
	return !strings.Contains(name, "sessions-index")
}
