package display

import (
	"github.com/Zuo-Peng/cclog/internal/markdown"
	"github.com/Zuo-Peng/cclog/internal/parse"
)

// RecordLine formats one record as a single view row: role label, clock,
// flattened text. Tool traffic is summarized and dimmed. Records that are
// neither user nor assistant produce no row.
func RecordLine(rec parse.Record, color bool) (string, bool) {
	if rec.Type != "user" && rec.Type != "assistant" {
		return "", false
	}

	label := "Assistant "
	if rec.Type == "user" {
		label = "User      "
	}

	isTool, text := summarize(rec)
	line := label + markdown.FormatClock(rec.Timestamp) + "  " + Flatten(text)
	if !color {
		return line, true
	}

	switch {
	case isTool:
		return StyleTool.Render(line), true
	case rec.Type == "user":
		return StyleUser.Render(line), true
	default:
		return StyleAssistant.Render(line), true
	}
}

// summarize picks the one-line text for a record and reports whether it is
// tool traffic rather than conversation.
func summarize(rec parse.Record) (bool, string) {
	if len(rec.Blocks) == 0 {
		return false, ""
	}
	first := rec.Blocks[0]
	switch {
	case rec.Type == "user" && first.Kind == parse.BlockToolResult:
		id := first.ToolUseID
		if id == "" {
			id = "unknown"
		}
		return true, "Tool: " + id
	case rec.Type == "assistant" && first.Kind == parse.BlockToolUse:
		name := first.ToolName
		if name == "" {
			name = "unknown"
		}
		return true, "Tool: " + name
	case first.Kind == parse.BlockText:
		return false, first.Text
	}
	return false, ""
}
