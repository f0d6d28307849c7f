// Package uploads stores avatar and image files on local disk.
package uploads

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrExtension is returned for files whose extension is not an allowed image type.
var ErrExtension = errors.New("extensión de imagen no permitida")

var allowed = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".gif": true}

// Allowed reports whether filename has an accepted image extension.
func Allowed(filename string) bool {
	return allowed[strings.ToLower(filepath.Ext(filename))]
}

// Store writes files under Dir. File names are random so clients cannot
// choose where a file lands.
type Store struct {
	Dir string
}

// New returns a store rooted at dir; the directory is created on first Save.
func New(dir string) *Store { return &Store{Dir: dir} }

// Save copies r into a new file named after a fresh UUID with filename's extension.
// It returns the stored name, which is what records keep.
func (s *Store) Save(filename string, r io.Reader) (string, error) {
	if !Allowed(filename) {
		return "", ErrExtension
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	name := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	f, err := os.OpenFile(filepath.Join(s.Dir, name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("close upload: %w", err)
	}
	return name, nil
}

// Path returns the on-disk path of a stored name, or false if name could
// escape Dir.
func (s *Store) Path(name string) (string, bool) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", false
	}
	return filepath.Join(s.Dir, name), true
}

// Remove deletes a stored file. Missing files are ignored.
func (s *Store) Remove(name string) error {
	p, ok := s.Path(name)
	if !ok {
		return nil
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
