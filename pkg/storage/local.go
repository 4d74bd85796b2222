package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// unsafeChars matches everything that is stripped from an uploaded file name
var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// LocalStore keeps uploaded resumes in a directory on disk.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &LocalStore{dir: dir}, nil
}

// Put writes data under a sanitized version of suggestedName and returns the
// stored path. An existing file with the same name is never overwritten; a
// short random suffix is appended instead.
func (s *LocalStore) Put(_ context.Context, data []byte, suggestedName string) (string, error) {
	name := SafeFilename(filepath.Base(suggestedName))
	path := filepath.Join(s.dir, name)

	if _, err := os.Stat(path); err == nil {
		ext := filepath.Ext(name)
		base := strings.TrimSuffix(name, ext)
		path = filepath.Join(s.dir, fmt.Sprintf("%s_%s%s", base, uuid.NewString()[:8], ext))
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// Delete removes a stored file. A missing file is not an error; the caller
// only cares that the bytes are gone.
func (s *LocalStore) Delete(_ context.Context, storedPath string) error {
	if err := os.Remove(storedPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", storedPath, err)
	}
	return nil
}

// SafeFilename strips characters outside [a-zA-Z0-9._-] so the name is safe
// for any backing store.
func SafeFilename(name string) string {
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "_")
	if name == "" {
		return "resume"
	}
	return name
}
