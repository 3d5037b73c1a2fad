// Package tagfile applies tag-region edits to files. Every operation is a
// whole-file read, transform, write: the full text is held in memory, which is
// the accepted model here, not an oversight. Streaming edits of very large
// files are out of scope.
package tagfile

import (
	"context"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/walteh/tagsync/pkg/tag"
	"github.com/walteh/tagsync/pkg/vfs"
	"gitlab.com/tozd/go/errors"
)

// ErrEncodingFailure means content cannot round-trip through UTF-8.
var ErrEncodingFailure = errors.Base("encoding failure")

// Operations edits tag regions inside a single file.
type Operations struct {
	fs   *vfs.FS
	path string
}

// New creates Operations for the file at path.
func New(fs *vfs.FS, path string) *Operations {
	return &Operations{fs: fs, path: path}
}

// Path returns the path this Operations edits.
func (o *Operations) Path() string {
	return o.path
}

// InsertBetween replaces the region of tagName with substitute and writes the
// file back. The write is skipped when the transform changes nothing.
func (o *Operations) InsertBetween(ctx context.Context, substitute, tagName string) error {
	return o.transform(ctx, "insert", func(lines []string) ([]string, error) {
		if !utf8.ValidString(substitute) {
			return nil, errors.Errorf("substitute for tag %q is not valid UTF-8: %w", tagName, ErrEncodingFailure)
		}
		return tag.Insert(lines, tagName, substitute)
	})
}

// InsertOrCreateTags behaves like InsertBetween, but when the tag's content
// cannot be extracted for any reason it appends a fresh marker pair (each
// marker line prefixed with tagPrefix, surrounded by blank lines) to the end
// of the file first. The extraction failure is deliberately not inspected:
// whatever went wrong, the fix is the same.
func (o *Operations) InsertOrCreateTags(ctx context.Context, substitute, tagName, tagPrefix string) error {
	text, err := o.fs.ReadText(o.path)
	if err != nil {
		return err
	}

	if _, err := tag.ExtractContent(tag.SplitLines(text), tagName); err != nil {
		zerolog.Ctx(ctx).Debug().
			Str("path", o.path).
			Str("tag", tagName).
			Err(err).
			Msg("tag region not usable, appending fresh markers")

		text += "\n\n" + tagPrefix + tag.BeginMarker(tagName) + "\n\n" + tagPrefix + tag.EndMarker(tagName) + "\n"
		if err := o.write(text); err != nil {
			return err
		}
	}

	return o.InsertBetween(ctx, substitute, tagName)
}

// RemoveBetween discards everything between the markers of tagName and writes
// the file back.
func (o *Operations) RemoveBetween(ctx context.Context, tagName string) error {
	return o.transform(ctx, "remove", func(lines []string) ([]string, error) {
		return tag.Remove(lines, tagName)
	})
}

// ExtractBetween returns the text between the markers of tagName.
func (o *Operations) ExtractBetween(ctx context.Context, tagName string) (string, error) {
	text, err := o.fs.ReadText(o.path)
	if err != nil {
		return "", err
	}
	return tag.ExtractContent(tag.SplitLines(text), tagName)
}

func (o *Operations) transform(ctx context.Context, op string, fn func([]string) ([]string, error)) error {
	text, err := o.fs.ReadText(o.path)
	if err != nil {
		return err
	}

	lines, err := fn(tag.SplitLines(text))
	if err != nil {
		return errors.Errorf("%s in %s: %w", op, o.path, err)
	}

	result := tag.JoinLines(lines)
	if result == text {
		zerolog.Ctx(ctx).Debug().Str("path", o.path).Str("op", op).Msg("content unchanged, skipping write")
		return nil
	}

	return o.write(result)
}

func (o *Operations) write(text string) error {
	if !utf8.ValidString(text) {
		return errors.Errorf("result for %s does not round-trip through UTF-8: %w", o.path, ErrEncodingFailure)
	}
	return o.fs.Write(o.path, []byte(text))
}
