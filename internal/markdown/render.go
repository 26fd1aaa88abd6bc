// Package markdown renders decoded session records into markdown transcript
// documents, represented throughout as line slices.
package markdown

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Zuo-Peng/cclog/internal/parse"
)

// FormatClock renders the time-of-day portion of a record timestamp.
// A missing or malformed timestamp renders as the zero clock instead of
// failing the message.
func FormatClock(t time.Time) string {
	if t.IsZero() {
		return "00:00:00"
	}
	return t.Format("15:04:05")
}

// RenderMessage converts one record into a self-contained markdown section:
// a "## Role (HH:MM:SS)" header, a blank line, then zero or more body
// paragraphs each followed by a blank line.
func RenderMessage(rec parse.Record) []string {
	lines := []string{fmt.Sprintf("## %s (%s)", roleHeading(rec), FormatClock(rec.Timestamp)), ""}

	for _, b := range rec.Blocks {
		switch b.Kind {
		case parse.BlockText:
			if strings.TrimSpace(b.Text) == "" {
				continue
			}
			lines = append(lines, strings.Split(b.Text, "\n")...)
			lines = append(lines, "")
		case parse.BlockToolUse:
			lines = append(lines, "### Tool: "+b.ToolName, "", "```json")
			lines = append(lines, marshalInput(b.ToolInput)...)
			lines = append(lines, "```", "")
		case parse.BlockToolResult:
			// the top-level toolUseResult is authoritative when present;
			// the inline block content is the fallback
			text := blocksText(rec.ToolResult)
			if text == "" {
				text = blocksText(b.Result)
			}
			lines = append(lines, "### Tool Result", "", "```")
			if text != "" {
				lines = append(lines, strings.Split(text, "\n")...)
			}
			lines = append(lines, "```", "")
		}
	}

	return lines
}

// BuildTranscript assembles the full document for one session: title line,
// metadata block, then every record's section in input order. The message
// count reflects the records given, not the lines emitted.
func BuildTranscript(title string, records []parse.Record) []string {
	lines := []string{
		"# Claude Code Session " + title,
		"",
		"**Date**: " + sessionDate(records),
		fmt.Sprintf("**Messages**: %d", len(records)),
		"",
	}
	for _, rec := range records {
		lines = append(lines, RenderMessage(rec)...)
	}
	return lines
}

func roleHeading(rec parse.Record) string {
	switch rec.Type {
	case "user":
		return "User"
	case "assistant":
		return "Assistant"
	case "":
		return "Unknown"
	default:
		// unrecognized record types get a generic header from the raw value
		return strings.ToUpper(rec.Type[:1]) + rec.Type[1:]
	}
}

func sessionDate(records []parse.Record) string {
	for _, rec := range records {
		if !rec.Timestamp.IsZero() {
			return rec.Timestamp.Format("2006-01-02")
		}
	}
	return "unknown"
}

func marshalInput(input map[string]any) []string {
	if input == nil {
		input = map[string]any{}
	}
	data, err := json.MarshalIndent(input, "", "  ")
	if err != nil {
		return []string{"{}"}
	}
	return strings.Split(string(data), "\n")
}

func blocksText(blocks []parse.Block) string {
	var parts []string
	for _, b := range blocks {
		if b.Kind == parse.BlockText && b.Text != "" {
			parts = append(parts, b.Text)
		}
	}
	return strings.Join(parts, "\n")
}
