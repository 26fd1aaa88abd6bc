package project

import (
	"path/filepath"
	"testing"
)

func TestEncodeDir(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"basic path", "/Users/username/project", "-Users-username-project"},
		{"hyphens kept", "/home/user/my-app", "-home-user-my-app"},
		{"underscores", "/Users/user/my_project", "-Users-user-my-project"},
		{"hidden dir", "/Users/user/.hidden", "-Users-user--hidden"},
		{"dots", "app.config.js", "app-config-js"},
		{"mixed", "/Users/user/my_app.config", "-Users-user-my-app-config"},
		{"consecutive", "__double__underscore", "--double--underscore"},
		{"all three", "/path/with.dots_and/slashes", "-path-with-dots-and-slashes"},
		{"single slash", "/", "-"},
		{"single dot", ".", "-"},
		{"single underscore", "_", "-"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodeDir(tt.path); got != tt.want {
				t.Errorf("EncodeDir(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestLogDir(t *testing.T) {
	got := LogDir("/home/u/.claude/projects", "/home/u/work/my_app")
	want := filepath.Join("/home/u/.claude/projects", "-home-u-work-my-app")
	if got != want {
		t.Errorf("LogDir = %q, want %q", got, want)
	}
}
