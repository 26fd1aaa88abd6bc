package parse

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// first user message is only looked for this deep into the file
const firstMessageWindow = 20

// Summary holds the lightweight per-session data used by the list and info
// views. It is built from a single pass over the file without keeping
// records in memory.
type Summary struct {
	SessionID        string
	FilePath         string
	StartTime        time.Time
	EndTime          time.Time
	FirstUserMessage string
	LineCount        int
	Mtime            time.Time
	Size             int64
}

// DurationSeconds is the whole-second span between the first and last
// timestamped records.
func (s *Summary) DurationSeconds() int {
	if s.EndTime.IsZero() || s.StartTime.IsZero() {
		return 0
	}
	return int(s.EndTime.Sub(s.StartTime).Seconds())
}

// Duration formats the session span for display.
func (s *Summary) Duration() string {
	return FormatDuration(s.DurationSeconds())
}

// Summarize scans a session log once and extracts the first timestamp, the
// first user message near the top of the file, the total line count and the
// last line's timestamp. A file with no timestamped record at all is not a
// session and yields an error.
func Summarize(path string) (*Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	sum := &Summary{
		SessionID: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		FilePath:  path,
		Mtime:     info.ModTime(),
		Size:      info.Size(),
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lastLine []byte
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		sum.LineCount = lineNum

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		lastLine = append(lastLine[:0], line...)

		rec, err := DecodeRecord(line)
		if err != nil {
			continue
		}
		if sum.StartTime.IsZero() && !rec.Timestamp.IsZero() {
			sum.StartTime = rec.Timestamp
		}
		if lineNum <= firstMessageWindow && sum.FirstUserMessage == "" && rec.Type == "user" {
			sum.FirstUserMessage = rec.Text()
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if sum.StartTime.IsZero() {
		return nil, fmt.Errorf("no timestamped records in %s", path)
	}

	sum.EndTime = sum.StartTime
	if len(lastLine) > 0 {
		if rec, err := DecodeRecord(lastLine); err == nil && !rec.Timestamp.IsZero() {
			sum.EndTime = rec.Timestamp
		}
	}

	if sum.FirstUserMessage == "" {
		sum.FirstUserMessage = "no user message"
	}
	return sum, nil
}

// FormatDuration renders a second count in a compact human form: "45s",
// "12m", "2h 30m", "1d 4h".
func FormatDuration(seconds int) string {
	switch {
	case seconds < 60:
		return fmt.Sprintf("%ds", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%dm", seconds/60)
	case seconds < 86400:
		hours := seconds / 3600
		minutes := (seconds % 3600) / 60
		if minutes > 0 {
			return fmt.Sprintf("%dh %dm", hours, minutes)
		}
		return fmt.Sprintf("%dh", hours)
	default:
		days := seconds / 86400
		hours := (seconds % 86400) / 3600
		if hours > 0 {
			return fmt.Sprintf("%dd %dh", days, hours)
		}
		return fmt.Sprintf("%dd", days)
	}
}
