// Package export writes rendered session transcripts to disk, singly or for
// a whole directory of logs at once.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Zuo-Peng/cclog/internal/markdown"
	"github.com/Zuo-Peng/cclog/internal/parse"
	"github.com/Zuo-Peng/cclog/internal/scan"
)

// Stats aggregates batch export results.
type Stats struct {
	Exported int
	Failed   int
}

func (s Stats) String() string {
	return fmt.Sprintf("exported=%d failed=%d", s.Exported, s.Failed)
}

// ExportSession renders one session log to a markdown file in outputDir.
// Individual undecodable lines are skipped; the export as a whole fails only
// when the source cannot be read, yields no valid records at all, or the
// output cannot be written. Nothing is written on failure.
func ExportSession(sessionPath, outputDir string, filtered bool) bool {
	records, skipped, err := parse.ReadSession(sessionPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "  WARN: read %s: %v\n", sessionPath, err)
		return false
	}
	if skipped > 0 {
		fmt.Fprintf(os.Stderr, "  WARN: %s: skipped %d malformed lines\n", sessionPath, skipped)
	}
	if len(records) == 0 {
		fmt.Fprintf(os.Stderr, "  WARN: %s: no valid records\n", sessionPath)
		return false
	}

	base := strings.TrimSuffix(filepath.Base(sessionPath), filepath.Ext(sessionPath))
	title := base
	if filtered {
		title += " (Filtered)"
	}

	lines := markdown.BuildTranscript(title, records)
	if filtered {
		lines = markdown.Filter(lines)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "  WARN: create %s: %v\n", outputDir, err)
		return false
	}

	name := base + ".md"
	if filtered {
		// stamp keeps repeated filtered exports from colliding
		name = fmt.Sprintf("%s_filtered_%s.md", base, time.Now().Format("20060102_150405"))
	}

	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(outputDir, name), []byte(content), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "  WARN: write %s: %v\n", name, err)
		return false
	}
	return true
}

// ExportAll runs the filtered exporter over every session log directly
// inside sessionsDir. Per-file failures are reported and skipped; the batch
// itself fails only when sessionsDir is missing, not a directory, not
// listable, or the output directory cannot be created. An empty directory is
// a successful batch that writes nothing.
func ExportAll(sessionsDir, outputDir string) bool {
	info, err := os.Stat(sessionsDir)
	if err != nil || !info.IsDir() {
		fmt.Fprintf(os.Stderr, "sessions directory not found: %s\n", sessionsDir)
		return false
	}

	files, err := scan.SessionFiles(sessionsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "list %s: %v\n", sessionsDir, err)
		return false
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create %s: %v\n", outputDir, err)
		return false
	}

	var stats Stats
	for _, f := range files {
		if ExportSession(f, outputDir, true) {
			stats.Exported++
		} else {
			stats.Failed++
		}
	}

	fmt.Fprintf(os.Stderr, "Done. %s\n", stats)
	return true
}
