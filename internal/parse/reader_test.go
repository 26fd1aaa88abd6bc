package parse

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadSession(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "session.jsonl",
		`{"type":"user","message":{"role":"user","content":"hi"},"timestamp":"2025-01-15T10:30:00Z"}
not valid json

{"type":"assistant","message":{"role":"assistant","content":[{"type":"text","text":"hello"}]},"timestamp":"2025-01-15T10:30:05Z"}
`)

	records, skipped, err := ReadSession(path)
	if err != nil {
		t.Fatalf("ReadSession: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("got %d records, want 2", len(records))
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
	if records[0].Type != "user" || records[1].Type != "assistant" {
		t.Errorf("record order changed: %q, %q", records[0].Type, records[1].Type)
	}
}

func TestReadSessionEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "empty.jsonl", "")

	records, skipped, err := ReadSession(path)
	if err != nil {
		t.Fatalf("ReadSession: %v", err)
	}
	if len(records) != 0 || skipped != 0 {
		t.Errorf("records=%d skipped=%d, want 0/0", len(records), skipped)
	}
}

func TestReadSessionMissingFile(t *testing.T) {
	if _, _, err := ReadSession(filepath.Join(t.TempDir(), "nope.jsonl")); err == nil {
		t.Error("expected error for missing file")
	}
}
