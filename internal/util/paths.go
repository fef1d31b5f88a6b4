package util

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DataDir holds the log file. XDG_DATA_HOME wins when it is absolute.
func DataDir(app string) string {
	return filepath.Join(xdgBase("XDG_DATA_HOME", ".local", "share"), app)
}

// ConfigDir follows os.UserConfigDir and falls back to a directory next to
// the working directory when no home is known.
func ConfigDir(app string) string {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(base, app)
}

// ReportsDir is where exported countdown sheets are written.
func ReportsDir(app string) string {
	return filepath.Join(DocumentsDir(), app+"-sheets")
}

// DocumentsDir resolves the user's documents folder from XDG_DOCUMENTS_DIR,
// then user-dirs.dirs, then ~/Documents.
func DocumentsDir() string {
	if dir := strings.TrimSpace(os.Getenv("XDG_DOCUMENTS_DIR")); dir != "" {
		return expandHome(dir)
	}
	home := homeDir()
	if home == "" {
		return "."
	}
	if f, err := os.Open(filepath.Join(xdgBase("XDG_CONFIG_HOME", ".config"), "user-dirs.dirs")); err == nil {
		defer f.Close()
		if dir := lookupUserDir(f, "XDG_DOCUMENTS_DIR"); dir != "" {
			return expandHome(dir)
		}
	}
	return filepath.Join(home, "Documents")
}

func xdgBase(env string, fallback ...string) string {
	if base := strings.TrimSpace(os.Getenv(env)); base != "" && filepath.IsAbs(base) {
		return base
	}
	home := homeDir()
	if home == "" {
		return "."
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

// lookupUserDir returns key's unquoted value from a user-dirs.dirs stream.
func lookupUserDir(r io.Reader, key string) string {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, value, ok := strings.Cut(line, "=")
		if !ok || strings.TrimSpace(name) != key {
			continue
		}
		return strings.Trim(strings.TrimSpace(value), `"`)
	}
	return ""
}

func expandHome(path string) string {
	home := homeDir()
	switch {
	case path == "~":
		return home
	case strings.HasPrefix(path, "~/"):
		return filepath.Join(home, path[2:])
	}
	return strings.ReplaceAll(path, "$HOME", home)
}
