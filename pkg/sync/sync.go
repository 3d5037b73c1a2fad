// Package sync copies files into destination folders, deciding per file
// whether the copy is a fresh create, an overwrite, or a content-identical
// no-op. Decisions compare actual bytes, never timestamps or sizes.
package sync

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/tagsync/pkg/status"
	"github.com/walteh/tagsync/pkg/vfs"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrNoParent means a relative-path computation was requested but the
	// source has no parent folder and no override was supplied.
	ErrNoParent = errors.Base("no parent folder")

	// ErrInvalidName means the computed relative path yields no usable final
	// path component.
	ErrInvalidName = errors.Base("invalid destination name")

	// ErrCopyFailed wraps any underlying read, write, copy, or rename failure
	// during CopyIfDifferent. The original cause stays attached.
	ErrCopyFailed = errors.Base("copy failed")
)

// Synchronizer copies files through the vfs collaborator. The source file is
// never mutated; destination bytes are fully owned by the synchronizer once a
// copy or overwrite is decided.
type Synchronizer struct {
	fs *vfs.FS
}

// New creates a Synchronizer over fs.
func New(fs *vfs.FS) *Synchronizer {
	return &Synchronizer{fs: fs}
}

// CopyOrWrite copies src into destDir under its base name. When a same-named
// file already exists its bytes are replaced unconditionally, without a
// content comparison. This is the simplest always-write policy.
func (s *Synchronizer) CopyOrWrite(ctx context.Context, src, destDir string) (string, status.FileStatus, error) {
	destPath := filepath.Join(destDir, filepath.Base(src))

	exists, err := s.fs.Exists(destPath)
	if err != nil {
		return "", status.StatusUnknown, err
	}

	if !exists {
		copied, err := s.fs.Copy(src, destDir)
		if err != nil {
			return "", status.StatusUnknown, err
		}
		zerolog.Ctx(ctx).Debug().Str("src", src).Str("dest", copied).Msg("copied new file")
		return copied, status.StatusNew, nil
	}

	data, err := s.fs.ReadBytes(src)
	if err != nil {
		return "", status.StatusUnknown, err
	}
	if err := s.fs.Write(destPath, data); err != nil {
		return "", status.StatusUnknown, err
	}
	zerolog.Ctx(ctx).Debug().Str("src", src).Str("dest", destPath).Msg("overwrote existing file")
	return destPath, status.StatusModified, nil
}

// CopyOrWritePreservingSubPath recreates the source's directory structure
// relative to root under destDir, then behaves as CopyOrWrite against the
// recreated sub-folder. Sources without a parent land in destDir itself.
func (s *Synchronizer) CopyOrWritePreservingSubPath(ctx context.Context, src, root, destDir string) (string, status.FileStatus, error) {
	target := destDir

	if parent, ok := vfs.Parent(src); ok {
		rel, err := vfs.RelativeTo(parent, root)
		if err != nil {
			return "", status.StatusUnknown, err
		}
		if rel != "." {
			target = filepath.Join(destDir, rel)
		}
	}

	if err := s.fs.MkdirAll(target); err != nil {
		return "", status.StatusUnknown, err
	}

	return s.CopyOrWrite(ctx, src, target)
}

// CopyIfDifferentOptions tunes CopyIfDifferent.
type CopyIfDifferentOptions struct {
	// RenameTo substitutes the destination base filename.
	RenameTo string

	// RelativeTo overrides the parent the source path is computed relative
	// to. Defaults to the source's own parent.
	RelativeTo string
}

// CopyIfDifferent mirrors src under destDir, writing only when the content
// actually differs:
//
//   - no file at the derived relative path: copy, then rename if requested
//     (written straight to the final name when an unrelated file already
//     occupies the intermediate path)
//   - existing file with identical bytes: return it untouched
//   - existing file with different bytes: overwrite its content
//
// Underlying read/copy/rename failures come back wrapped as ErrCopyFailed
// with the original cause attached.
func (s *Synchronizer) CopyIfDifferent(ctx context.Context, src, destDir string, opts CopyIfDifferentOptions) (string, status.FileStatus, error) {
	logger := zerolog.Ctx(ctx)

	parent := opts.RelativeTo
	if parent == "" {
		p, ok := vfs.Parent(src)
		if !ok {
			return "", status.StatusUnknown, errors.Errorf("source %s has no parent and no relative override was given: %w", src, ErrNoParent)
		}
		parent = p
	}

	rel, err := vfs.RelativeTo(src, parent)
	if err != nil {
		return "", status.StatusUnknown, s.wrapCopyFailed(src, destDir, err)
	}

	name := filepath.Base(rel)
	if opts.RenameTo != "" {
		name = opts.RenameTo
	}
	if !validName(name) {
		return "", status.StatusUnknown, errors.Errorf("relative path %q yields no usable file name %q: %w", rel, name, ErrInvalidName)
	}

	relDir := filepath.Dir(rel)
	destPath := filepath.Join(destDir, relDir, name)

	exists, err := s.fs.Exists(destPath)
	if err != nil {
		return "", status.StatusUnknown, s.wrapCopyFailed(src, destDir, err)
	}

	if !exists {
		if name != filepath.Base(src) {
			occupied, err := s.fs.Exists(filepath.Join(destDir, relDir, filepath.Base(src)))
			if err != nil {
				return "", status.StatusUnknown, s.wrapCopyFailed(src, destDir, err)
			}
			if occupied {
				// an unrelated file already holds the source's base name, so
				// the renamed copy is written straight to its final path and
				// that file stays untouched
				data, err := s.fs.ReadBytes(src)
				if err != nil {
					return "", status.StatusUnknown, s.wrapCopyFailed(src, destDir, err)
				}
				if err := s.fs.Write(destPath, data); err != nil {
					return "", status.StatusUnknown, s.wrapCopyFailed(src, destDir, err)
				}
				logger.Debug().Str("src", src).Str("dest", destPath).Msg("created destination file")
				return destPath, status.StatusNew, nil
			}
		}

		copied, err := s.fs.Copy(src, filepath.Join(destDir, relDir))
		if err != nil {
			return "", status.StatusUnknown, s.wrapCopyFailed(src, destDir, err)
		}
		if filepath.Base(copied) != name {
			copied, err = s.fs.Rename(copied, name)
			if err != nil {
				return "", status.StatusUnknown, s.wrapCopyFailed(src, destDir, err)
			}
		}
		logger.Debug().Str("src", src).Str("dest", copied).Msg("created destination file")
		return copied, status.StatusNew, nil
	}

	equal, err := s.fs.ContentsEqual(src, destPath)
	if err != nil {
		return "", status.StatusUnknown, s.wrapCopyFailed(src, destDir, err)
	}
	if equal {
		logger.Debug().Str("src", src).Str("dest", destPath).Msg("content identical, skipping")
		return destPath, status.StatusUnchanged, nil
	}

	data, err := s.fs.ReadBytes(src)
	if err != nil {
		return "", status.StatusUnknown, s.wrapCopyFailed(src, destDir, err)
	}
	if err := s.fs.Write(destPath, data); err != nil {
		return "", status.StatusUnknown, s.wrapCopyFailed(src, destDir, err)
	}
	logger.Debug().Str("src", src).Str("dest", destPath).Msg("content differed, overwrote")
	return destPath, status.StatusModified, nil
}

func (s *Synchronizer) wrapCopyFailed(src, destDir string, err error) error {
	return errors.Errorf("copying %s into %s: %w: %w", src, destDir, err, ErrCopyFailed)
}

func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsRune(name, '/') && !strings.ContainsRune(name, filepath.Separator)
}
