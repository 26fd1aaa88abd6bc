package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validSession = `{"type":"user","message":{"role":"user","content":"Hello, can you help me?"},"timestamp":"2025-01-15T10:30:00.000Z","uuid":"u1","sessionId":"s1"}
{"type":"assistant","message":{"role":"assistant","content":[{"type":"text","text":"Hello! I'd be happy to help you."}]},"timestamp":"2025-01-15T10:30:05.000Z","uuid":"a1","sessionId":"s1"}
{"type":"assistant","message":{"role":"assistant","content":[{"type":"tool_use","id":"toolu_123","name":"bash","input":{"command":"ls -la"}}]},"timestamp":"2025-01-15T10:30:10.000Z","uuid":"a2","sessionId":"s1"}
{"type":"user","message":{"role":"user","content":[{"tool_use_id":"toolu_123","type":"tool_result","content":[{"type":"text","text":"total 8"}]}]},"toolUseResult":[{"type":"text","text":"total 8"}],"timestamp":"2025-01-15T10:30:12.000Z","uuid":"u2","sessionId":"s1"}
`

func writeSession(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestExportSessionCreatesFile(t *testing.T) {
	tmp := t.TempDir()
	session := writeSession(t, tmp, "test_session.jsonl", validSession)
	outDir := filepath.Join(tmp, "out")

	if !ExportSession(session, outDir, false) {
		t.Fatal("ExportSession returned false")
	}

	names := listDir(t, outDir)
	if len(names) != 1 {
		t.Fatalf("got %d output files, want 1: %v", len(names), names)
	}
	if names[0] != "test_session.md" {
		t.Errorf("output name = %q", names[0])
	}

	data, err := os.ReadFile(filepath.Join(outDir, names[0]))
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	for _, want := range []string{
		"# Claude Code Session test_session",
		"**Date**: 2025-01-15",
		"**Messages**: 4",
		"## User (10:30:00)",
		"Hello, can you help me?",
		"## Assistant (10:30:05)",
		"Hello! I'd be happy to help you.",
		"### Tool: bash",
		"### Tool Result",
		"total 8",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(content, "(Filtered)") {
		t.Error("unfiltered export carries the filtered title suffix")
	}
}

func TestExportSessionFiltered(t *testing.T) {
	tmp := t.TempDir()
	// one real message, one vacuous assistant turn
	session := writeSession(t, tmp, "chat.jsonl",
		`{"type":"user","message":{"role":"user","content":"hello"},"timestamp":"2025-01-15T10:30:00Z"}
{"type":"assistant","message":{"role":"assistant","content":[]},"timestamp":"2025-01-15T10:30:05Z"}
`)
	outDir := filepath.Join(tmp, "out")

	if !ExportSession(session, outDir, true) {
		t.Fatal("ExportSession returned false")
	}

	names := listDir(t, outDir)
	if len(names) != 1 {
		t.Fatalf("got %d output files, want 1: %v", len(names), names)
	}
	if !strings.HasPrefix(names[0], "chat_filtered_") || !strings.HasSuffix(names[0], ".md") {
		t.Errorf("filtered output name = %q", names[0])
	}

	data, err := os.ReadFile(filepath.Join(outDir, names[0]))
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.Contains(content, "# Claude Code Session chat (Filtered)") {
		t.Errorf("missing filtered title:\n%s", content)
	}
	if !strings.Contains(content, "**Messages**: 2") {
		t.Errorf("message count must reflect records processed, not kept:\n%s", content)
	}
	if strings.Contains(content, "10:30:05") {
		t.Errorf("vacuous message survived filtering:\n%s", content)
	}
}

func TestExportSessionSkipsMalformedLines(t *testing.T) {
	tmp := t.TempDir()
	session := writeSession(t, tmp, "partial.jsonl",
		"garbage line\n"+validSession)
	outDir := filepath.Join(tmp, "out")

	if !ExportSession(session, outDir, false) {
		t.Fatal("export should tolerate individual malformed lines")
	}
	if names := listDir(t, outDir); len(names) != 1 {
		t.Fatalf("got %d output files, want 1", len(names))
	}
}

func TestExportSessionMissingFile(t *testing.T) {
	tmp := t.TempDir()
	outDir := filepath.Join(tmp, "out")

	if ExportSession(filepath.Join(tmp, "nope.jsonl"), outDir, false) {
		t.Error("ExportSession succeeded on a missing file")
	}
	if _, err := os.Stat(outDir); !os.IsNotExist(err) {
		t.Error("output directory created despite failed export")
	}
}

func TestExportSessionNoValidRecords(t *testing.T) {
	tmp := t.TempDir()
	session := writeSession(t, tmp, "junk.jsonl", "not json\nstill not json\n")
	outDir := filepath.Join(tmp, "out")

	if ExportSession(session, outDir, false) {
		t.Error("ExportSession succeeded with zero valid records")
	}
}

func TestExportSessionEmptyFile(t *testing.T) {
	tmp := t.TempDir()
	session := writeSession(t, tmp, "empty.jsonl", "")
	outDir := filepath.Join(tmp, "out")

	if ExportSession(session, outDir, false) {
		t.Error("ExportSession succeeded on an empty file")
	}
}

func TestExportAll(t *testing.T) {
	tmp := t.TempDir()
	sessions := filepath.Join(tmp, "sessions")
	if err := os.MkdirAll(sessions, 0o755); err != nil {
		t.Fatal(err)
	}
	writeSession(t, sessions, "valid.jsonl", validSession)
	writeSession(t, sessions, "empty.jsonl", "")
	writeSession(t, sessions, "malformed.jsonl", "{{{not json\n")
	writeSession(t, sessions, "notes.txt", "ignored, wrong extension\n")
	outDir := filepath.Join(tmp, "out")

	if !ExportAll(sessions, outDir) {
		t.Fatal("ExportAll returned false for a valid directory")
	}

	names := listDir(t, outDir)
	if len(names) != 1 {
		t.Fatalf("got %d output files, want 1: %v", len(names), names)
	}
	if !strings.HasPrefix(names[0], "valid_filtered_") {
		t.Errorf("output name = %q, want it derived from the valid session", names[0])
	}
}

func TestExportAllEmptyDirSucceeds(t *testing.T) {
	tmp := t.TempDir()
	sessions := filepath.Join(tmp, "sessions")
	if err := os.MkdirAll(sessions, 0o755); err != nil {
		t.Fatal(err)
	}
	outDir := filepath.Join(tmp, "out")

	if !ExportAll(sessions, outDir) {
		t.Fatal("ExportAll failed on an empty directory")
	}
	if names := listDir(t, outDir); len(names) != 0 {
		t.Errorf("empty batch wrote files: %v", names)
	}
}

func TestExportAllMissingDir(t *testing.T) {
	tmp := t.TempDir()
	outDir := filepath.Join(tmp, "out")

	if ExportAll(filepath.Join(tmp, "does-not-exist"), outDir) {
		t.Error("ExportAll succeeded on a missing directory")
	}
	if _, err := os.Stat(outDir); !os.IsNotExist(err) {
		t.Error("output directory created despite failed batch")
	}
}

func TestExportAllSessionsDirIsFile(t *testing.T) {
	tmp := t.TempDir()
	notADir := writeSession(t, tmp, "file.jsonl", validSession)

	if ExportAll(notADir, filepath.Join(tmp, "out")) {
		t.Error("ExportAll succeeded when sessionsDir is a regular file")
	}
}

func TestStatsString(t *testing.T) {
	s := Stats{Exported: 3, Failed: 1}
	if got := s.String(); got != "exported=3 failed=1" {
		t.Errorf("Stats.String() = %q", got)
	}
}
