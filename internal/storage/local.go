// Package storage keeps uploaded product images on local disk.
package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

var ErrBadFilename = errors.New("bad filename")

type LocalStore struct {
	baseDir string
}

func NewLocalStore(baseDir string) *LocalStore {
	return &LocalStore{baseDir: baseDir}
}

// Save writes the upload under the base directory, preserving the original
// filename. Each upload gets its own random subdirectory so that two files
// with the same name never collide.
func (s *LocalStore) Save(filename string, r io.Reader) (string, error) {
	name := filepath.Base(filepath.Clean(filename))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", ErrBadFilename
	}

	sub := uuid.NewString()
	dir := filepath.Join(s.baseDir, sub)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", err
	}

	// path stored on the product record, relative to the base directory
	return filepath.ToSlash(filepath.Join(sub, name)), nil
}
