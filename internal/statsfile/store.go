// Package statsfile is a directory-backed key-value store: one JSON file per key.
package statsfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
)

const (
	defaultFileMode = 0644
	defaultDirMode  = 0755
)

// Store keeps each key in <dir>/<key>.json and replaces files atomically.
type Store struct {
	dir string
}

// Open creates dir if needed and returns a store rooted there.
func Open(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("statsfile: dir is empty")
	}
	if err := os.MkdirAll(dir, defaultDirMode); err != nil {
		return nil, fmt.Errorf("statsfile: mkdir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Path returns the file backing key.
func (s *Store) Path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get reads key. A missing file is reported as found=false.
func (s *Store) Get(key string) ([]byte, bool, error) {
	if err := validKey(key); err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(s.Path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("statsfile: read: %w", err)
	}
	return data, true, nil
}

// Put replaces key with value.
func (s *Store) Put(key string, value []byte) error {
	if err := validKey(key); err != nil {
		return err
	}
	path := s.Path(key)
	if err := atomic.WriteFile(path, bytes.NewReader(value)); err != nil {
		return fmt.Errorf("statsfile: write: %w", err)
	}
	// atomic.WriteFile leaves the temp file's 0600 mode on new files.
	if err := os.Chmod(path, defaultFileMode); err != nil {
		return fmt.Errorf("statsfile: chmod: %w", err)
	}
	return nil
}

func validKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("statsfile: invalid key %q", key)
	}
	return nil
}
