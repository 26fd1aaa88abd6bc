package parse

import (
	"encoding/json"
	"strings"
	"time"
)

// Block kinds. The content field of a record arrives either as a plain
// string or as an array of typed blocks; both shapes normalize to []Block.
const (
	BlockText       = "text"
	BlockToolUse    = "tool_use"
	BlockToolResult = "tool_result"
	BlockUnknown    = "unknown"
)

// Block is one typed fragment of a message's content.
type Block struct {
	Kind      string
	Text      string         // BlockText
	ToolName  string         // BlockToolUse
	ToolInput map[string]any // BlockToolUse
	ToolUseID string         // BlockToolUse, BlockToolResult
	Result    []Block        // BlockToolResult nested output
}

// Record is one decoded line of a session log.
type Record struct {
	Type       string
	Role       string
	Timestamp  time.Time // zero when missing or malformed
	Blocks     []Block
	ToolResult []Block // top-level toolUseResult; authoritative tool output
	UUID       string
	SessionID  string
}

type rawRecord struct {
	Type          string          `json:"type"`
	Message       json.RawMessage `json:"message"`
	ToolUseResult json.RawMessage `json:"toolUseResult"`
	Timestamp     string          `json:"timestamp"`
	UUID          string          `json:"uuid"`
	SessionID     string          `json:"sessionId"`
}

type rawMessage struct {
	Role    string          `json:"role"`
	Content json.RawMessage `json:"content"`
}

type rawBlock struct {
	Type      string          `json:"type"`
	Text      string          `json:"text"`
	Name      string          `json:"name"`
	Input     map[string]any  `json:"input"`
	Content   json.RawMessage `json:"content"`
	ToolUseID string          `json:"tool_use_id"`
}

// DecodeRecord decodes one session-log line into a Record.
func DecodeRecord(line []byte) (*Record, error) {
	var raw rawRecord
	if err := json.Unmarshal(line, &raw); err != nil {
		return nil, err
	}

	rec := &Record{
		Type:      raw.Type,
		Timestamp: ParseTimestamp(raw.Timestamp),
		UUID:      raw.UUID,
		SessionID: raw.SessionID,
	}

	if len(raw.Message) > 0 {
		var msg rawMessage
		if err := json.Unmarshal(raw.Message, &msg); err == nil {
			rec.Role = msg.Role
			rec.Blocks = decodeContent(msg.Content)
		}
	}

	if len(raw.ToolUseResult) > 0 {
		rec.ToolResult = decodeContent(raw.ToolUseResult)
	}

	return rec, nil
}

// Text returns the first non-empty text block of the message.
func (r *Record) Text() string {
	for _, b := range r.Blocks {
		if b.Kind == BlockText && strings.TrimSpace(b.Text) != "" {
			return b.Text
		}
	}
	return ""
}

func decodeContent(raw json.RawMessage) []Block {
	if len(raw) == 0 {
		return nil
	}

	// try string first
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return []Block{{Kind: BlockText, Text: s}}
	}

	// try array of content blocks
	var items []rawBlock
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	blocks := make([]Block, 0, len(items))
	for _, it := range items {
		switch it.Type {
		case "text":
			blocks = append(blocks, Block{Kind: BlockText, Text: it.Text})
		case "tool_use":
			blocks = append(blocks, Block{
				Kind:      BlockToolUse,
				ToolName:  it.Name,
				ToolInput: it.Input,
				ToolUseID: it.ToolUseID,
			})
		case "tool_result":
			blocks = append(blocks, Block{
				Kind:      BlockToolResult,
				ToolUseID: it.ToolUseID,
				Result:    decodeContent(it.Content),
			})
		default:
			blocks = append(blocks, Block{Kind: BlockUnknown, Text: it.Text})
		}
	}
	return blocks
}

// ParseTimestamp parses an ISO-8601 instant string. Returns the zero time
// when the string is empty or unparseable.
func ParseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	// try RFC3339
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	// try RFC3339Nano
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t
	}
	// try ISO8601 without timezone
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t
	}
	return time.Time{}
}
