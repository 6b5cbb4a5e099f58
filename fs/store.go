// Package fs stores rendered novels in a local data directory.
package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/novelfetch"
)

// FilePrefix starts the name of every file written for a novel.
const FilePrefix = "honeyfeed_"

// Store writes rendered novels to a data directory. Files are named
// honeyfeed_<novel-id>.<ext>.
type Store struct {
	dir string
}

// NewStore creates a new Store rooted at dir. The directory is created on
// first write.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the data directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the path of the file holding novelID in format.
// Returns EINVALID if novelID could escape the data directory.
func (s *Store) Path(novelID string, format novelfetch.OutputFormat) (string, error) {
	if novelID == "" || novelID == "." || novelID == ".." || strings.ContainsAny(novelID, `/\`) {
		return "", novelfetch.Errorf(novelfetch.EINVALID, "invalid novel ID %q", novelID)
	}
	return filepath.Join(s.dir, FilePrefix+novelID+format.Ext()), nil
}

// Exists reports whether a file exists at path.
func (s *Store) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Read returns the content of the file at path.
func (s *Store) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// EnsureDir creates the data directory if it does not exist.
func (s *Store) EnsureDir() error {
	return os.MkdirAll(s.dir, 0755)
}

// Write atomically replaces the file at path with content.
func (s *Store) Write(path, content string) error {
	return WriteFile(path, []byte(content))
}

// WriteFile writes data to a temporary file beside path and renames it
// into place, so readers never observe a partial file.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
