package util

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		name        string
		v, min, max int
		want        int
	}{
		{"below", -3, 0, 2, 0},
		{"inside", 1, 0, 2, 1},
		{"above", 9, 0, 2, 2},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := Clamp(tc.v, tc.min, tc.max); got != tc.want {
				t.Fatalf("Clamp(%d, %d, %d) = %d, want %d", tc.v, tc.min, tc.max, got, tc.want)
			}
		})
	}
}

func TestFilterKeepsOrder(t *testing.T) {
	got := Filter([]string{"a", "b", "a", "c"}, func(s string) bool { return s != "a" })
	if want := []string{"b", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Filter() = %v, want %v", got, want)
	}
}

func TestLookupUserDir(t *testing.T) {
	data := "# XDG_DOCUMENTS_DIR=\"$HOME/Old\"\n\nXDG_DESKTOP_DIR=\"$HOME/Desktop\"\nXDG_DOCUMENTS_DIR = \"$HOME/Docs\"\n"
	if got := lookupUserDir(strings.NewReader(data), "XDG_DOCUMENTS_DIR"); got != "$HOME/Docs" {
		t.Fatalf("lookupUserDir() = %q", got)
	}
	if got := lookupUserDir(strings.NewReader(data), "XDG_MUSIC_DIR"); got != "" {
		t.Fatalf("expected empty for missing key, got %q", got)
	}
}

func TestDataDirHonoursXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	if got := DataDir("countdown"); got != filepath.Join("/tmp/xdg", "countdown") {
		t.Fatalf("DataDir() = %q", got)
	}
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", "relative/dir")
	if got := DataDir("countdown"); got != filepath.Join(home, ".local", "share", "countdown") {
		t.Fatalf("relative XDG_DATA_HOME should be ignored, got %q", got)
	}
}

func TestDocumentsDirFromUserDirs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DOCUMENTS_DIR", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "cfg"))
	if got := DocumentsDir(); got != filepath.Join(home, "Documents") {
		t.Fatalf("default DocumentsDir() = %q", got)
	}

	if err := os.MkdirAll(filepath.Join(home, "cfg"), 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	dirs := "XDG_DOCUMENTS_DIR=\"$HOME/Papers\"\n"
	if err := os.WriteFile(filepath.Join(home, "cfg", "user-dirs.dirs"), []byte(dirs), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if got := DocumentsDir(); got != filepath.Join(home, "Papers") {
		t.Fatalf("DocumentsDir() = %q", got)
	}
	if got := ReportsDir("countdown"); got != filepath.Join(home, "Papers", "countdown-sheets") {
		t.Fatalf("ReportsDir() = %q", got)
	}

	t.Setenv("XDG_DOCUMENTS_DIR", "~/Exams")
	if got := DocumentsDir(); got != filepath.Join(home, "Exams") {
		t.Fatalf("XDG_DOCUMENTS_DIR with ~ = %q", got)
	}
}

func TestSetupLoggingWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "countdown.log")
	closer, err := SetupLogging(path, "debug")
	if err != nil {
		t.Fatalf("SetupLogging failed: %v", err)
	}
	t.Cleanup(func() { Log.SetOutput(io.Discard) })
	LogError("save config", errors.New("disk full"))
	LogError("ignored", nil)
	if err := closer.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "disk full") || !strings.Contains(string(data), "save config") {
		t.Fatalf("expected logged error, got %q", data)
	}
	if strings.Contains(string(data), "ignored") {
		t.Fatalf("nil error should not be logged")
	}
}
