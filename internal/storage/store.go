// Package storage persists the widget configuration as a single JSON document.
package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/models"
)

// Store reads and writes the configuration document at a fixed path.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// LoadResult carries the configuration in use. Fallback is non-nil when the
// file was rejected and Config holds the defaults instead.
type LoadResult struct {
	Config   models.Config
	Fallback *ValidationError
}

func (r LoadResult) UsedDefault() bool { return r.Fallback != nil }

// EnsureExists writes the default document when nothing exists at the path.
func (s *Store) EnsureExists() error {
	_, err := os.Stat(s.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return &OpError{Op: "stat", Path: s.path, Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return &OpError{Op: "mkdir", Path: s.path, Err: err}
	}
	return s.Save(models.DefaultConfig())
}

// Load bootstraps, reads and validates the document. It never fails: any
// problem yields the default configuration and the reason in Fallback.
func (s *Store) Load() LoadResult {
	if err := s.EnsureExists(); err != nil {
		return fallback(&ValidationError{Check: CheckRead, Err: err})
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fallback(&ValidationError{Check: CheckRead, Err: err})
	}
	cfg, err := Decode(data)
	if err != nil {
		var verr *ValidationError
		if !errors.As(err, &verr) {
			verr = &ValidationError{Check: CheckJSON, Err: err}
		}
		return fallback(verr)
	}
	return LoadResult{Config: cfg}
}

func fallback(verr *ValidationError) LoadResult {
	return LoadResult{Config: models.DefaultConfig(), Fallback: verr}
}

// Save replaces the document atomically. On error the previous file is untouched.
func (s *Store) Save(cfg models.Config) error {
	data, err := Encode(cfg)
	if err != nil {
		return &OpError{Op: "encode", Path: s.path, Err: err}
	}
	if err := writeFileAtomic(s.path, data, config.FileMode); err != nil {
		return &OpError{Op: "save", Path: s.path, Err: err}
	}
	return nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		cleanup()
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return err
	}
	return nil
}
