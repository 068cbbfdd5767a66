package simulation

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DefaultIndexFile is the offset file used when none is configured.
const DefaultIndexFile = "sim_index.txt"

// FileBackend stores the offset as a decimal integer in a text file.
type FileBackend struct {
	path string
}

// NewFileBackend returns a backend for the file at path. The file is created
// on the first Save.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Path returns the file the backend reads and writes.
func (b *FileBackend) Path() string {
	return b.path
}

// Load parses the file content, ignoring surrounding whitespace.
func (b *FileBackend) Load() (int, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to read %s", b.path)
	}

	value, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, errors.Wrapf(err, "invalid offset in %s", b.path)
	}
	return value, nil
}

// Save overwrites the file with value.
func (b *FileBackend) Save(value int) error {
	if dir := filepath.Dir(b.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "failed to create %s", dir)
		}
	}
	if err := os.WriteFile(b.path, []byte(strconv.Itoa(value)), 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", b.path)
	}
	return nil
}
