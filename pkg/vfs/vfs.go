// Package vfs is the minimal file/folder surface the editing and sync layers
// consume. It adapts a go-billy filesystem so production code runs against the
// OS and tests run against an in-memory filesystem.
package vfs

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrReadFailure means a file could not be read, or its bytes are not
	// valid text where text was required.
	ErrReadFailure = errors.Base("read failure")

	// ErrWriteFailure means a file could not be written.
	ErrWriteFailure = errors.Base("write failure")
)

// FS wraps a billy filesystem with the operations the rest of the module needs.
type FS struct {
	fs billy.Filesystem
}

// New wraps an existing billy filesystem.
func New(fsys billy.Filesystem) *FS {
	return &FS{fs: fsys}
}

// NewOS creates a filesystem rooted at the given OS path.
func NewOS(root string) *FS {
	return &FS{fs: osfs.New(root)}
}

// NewMem creates an in-memory filesystem.
func NewMem() *FS {
	return &FS{fs: memfs.New()}
}

// Raw returns the underlying billy filesystem.
func (f *FS) Raw() billy.Filesystem {
	return f.fs
}

// ReadBytes reads the whole file.
func (f *FS) ReadBytes(path string) ([]byte, error) {
	data, err := util.ReadFile(f.fs, path)
	if err != nil {
		return nil, errors.Errorf("reading %s: %w: %w", path, err, ErrReadFailure)
	}
	return data, nil
}

// ReadText reads the whole file and requires it to be valid UTF-8.
func (f *FS) ReadText(path string) (string, error) {
	data, err := f.ReadBytes(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", errors.Errorf("%s is not valid UTF-8 text: %w", path, ErrReadFailure)
	}
	return string(data), nil
}

// Write replaces the file's content, creating parent directories as needed.
func (f *FS) Write(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := f.fs.MkdirAll(dir, 0o755); err != nil {
			return errors.Errorf("creating parent directories for %s: %w: %w", path, err, ErrWriteFailure)
		}
	}
	if err := util.WriteFile(f.fs, path, data, 0o644); err != nil {
		return errors.Errorf("writing %s: %w: %w", path, err, ErrWriteFailure)
	}
	return nil
}

// Exists reports whether a file or directory exists at path.
func (f *FS) Exists(path string) (bool, error) {
	_, err := f.fs.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, errors.Errorf("stat %s: %w", path, err)
	}
}

// MkdirAll creates a directory and all missing parents. Creating an existing
// directory is a no-op.
func (f *FS) MkdirAll(path string) error {
	if err := f.fs.MkdirAll(path, 0o755); err != nil {
		return errors.Errorf("creating directory %s: %w", path, err)
	}
	return nil
}

// Copy copies src into destDir under its base name and returns the new path.
func (f *FS) Copy(src, destDir string) (string, error) {
	data, err := f.ReadBytes(src)
	if err != nil {
		return "", err
	}
	dest := filepath.Join(destDir, filepath.Base(src))
	if err := f.Write(dest, data); err != nil {
		return "", err
	}
	return dest, nil
}

// Rename changes the base name of path within its directory and returns the
// new path. Renaming to the current name is a no-op.
func (f *FS) Rename(path, newName string) (string, error) {
	if newName == filepath.Base(path) {
		return path, nil
	}
	dest := filepath.Join(filepath.Dir(path), newName)
	if err := f.fs.Rename(path, dest); err != nil {
		return "", errors.Errorf("renaming %s to %s: %w", path, newName, err)
	}
	return dest, nil
}

// ContentsEqual compares the full byte content of two files.
func (f *FS) ContentsEqual(a, b string) (bool, error) {
	dataA, err := f.ReadBytes(a)
	if err != nil {
		return false, err
	}
	dataB, err := f.ReadBytes(b)
	if err != nil {
		return false, err
	}
	return bytes.Equal(dataA, dataB), nil
}

// Parent returns the directory holding path. The second return is false for
// bare names and filesystem roots, which have no usable parent.
func Parent(path string) (string, bool) {
	if !strings.ContainsRune(path, '/') && !strings.ContainsRune(path, filepath.Separator) {
		return "", false
	}
	dir := filepath.Dir(path)
	if dir == path {
		return "", false
	}
	return dir, true
}

// RelativeTo computes path relative to base.
func RelativeTo(path, base string) (string, error) {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return "", errors.Errorf("computing %s relative to %s: %w", path, base, err)
	}
	return rel, nil
}
