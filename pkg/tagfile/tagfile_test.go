package tagfile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/tagsync/pkg/tag"
	"github.com/walteh/tagsync/pkg/vfs"
)

func writeFile(t *testing.T, fs *vfs.FS, path, content string) {
	t.Helper()
	require.NoError(t, fs.Write(path, []byte(content)))
}

func readFile(t *testing.T, fs *vfs.FS, path string) string {
	t.Helper()
	text, err := fs.ReadText(path)
	require.NoError(t, err)
	return text
}

func TestInsertBetween(t *testing.T) {
	ctx := context.Background()
	fs := vfs.NewMem()
	writeFile(t, fs, "doc.txt", "prefix\n// greet: say hello\nold text\n// greet:end\nsuffix")

	ops := New(fs, "doc.txt")
	require.NoError(t, ops.InsertBetween(ctx, "new line1\nnew line2", "greet"))

	assert.Equal(t,
		"prefix\n// greet: say hello\nnew line1\nnew line2\n// greet:end\nsuffix",
		readFile(t, fs, "doc.txt"))
}

func TestInsertBetween_MissingTag(t *testing.T) {
	ctx := context.Background()
	fs := vfs.NewMem()
	writeFile(t, fs, "doc.txt", "no markers here")

	err := New(fs, "doc.txt").InsertBetween(ctx, "x", "greet")
	require.Error(t, err)
	assert.ErrorIs(t, err, tag.ErrTagNotFound)

	// file is untouched on failure
	assert.Equal(t, "no markers here", readFile(t, fs, "doc.txt"))
}

func TestInsertBetween_MalformedPair(t *testing.T) {
	ctx := context.Background()
	fs := vfs.NewMem()
	writeFile(t, fs, "doc.txt", "before\n// greet:end\nafter")

	err := New(fs, "doc.txt").InsertBetween(ctx, "x", "greet")
	require.Error(t, err)
	assert.ErrorIs(t, err, tag.ErrMalformedTagPair)
}

func TestInsertBetween_InvalidSubstitute(t *testing.T) {
	ctx := context.Background()
	fs := vfs.NewMem()
	writeFile(t, fs, "doc.txt", "// x:\n// x:end")

	err := New(fs, "doc.txt").InsertBetween(ctx, string([]byte{0xff, 0xfe}), "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEncodingFailure)
}

func TestInsertBetween_MissingFile(t *testing.T) {
	ctx := context.Background()
	fs := vfs.NewMem()

	err := New(fs, "absent.txt").InsertBetween(ctx, "x", "greet")
	require.Error(t, err)
	assert.ErrorIs(t, err, vfs.ErrReadFailure)
}

func TestInsertOrCreateTags_CreatesMissingPair(t *testing.T) {
	ctx := context.Background()
	fs := vfs.NewMem()
	writeFile(t, fs, "notes.md", "# Notes")

	ops := New(fs, "notes.md")
	require.NoError(t, ops.InsertOrCreateTags(ctx, "body", "sect", "# "))

	got := readFile(t, fs, "notes.md")
	assert.Equal(t, "# Notes\n\n# // sect:\n  body\n# // sect:end\n", got)

	content, err := ops.ExtractBetween(ctx, "sect")
	require.NoError(t, err)
	assert.Equal(t, "  body", content)
}

func TestInsertOrCreateTags_ExistingPairIsReused(t *testing.T) {
	ctx := context.Background()
	fs := vfs.NewMem()
	writeFile(t, fs, "doc.txt", "// sect:\nstale\n// sect:end")

	ops := New(fs, "doc.txt")
	require.NoError(t, ops.InsertOrCreateTags(ctx, "fresh", "sect", ""))

	assert.Equal(t, "// sect:\nfresh\n// sect:end", readFile(t, fs, "doc.txt"))
}

func TestRemoveBetween(t *testing.T) {
	ctx := context.Background()
	fs := vfs.NewMem()
	writeFile(t, fs, "doc.txt", "a\n// x:\none\ntwo\n// x:end\nb")

	ops := New(fs, "doc.txt")
	require.NoError(t, ops.RemoveBetween(ctx, "x"))
	assert.Equal(t, "a\n// x:\n// x:end\nb", readFile(t, fs, "doc.txt"))

	// removing again changes nothing
	require.NoError(t, ops.RemoveBetween(ctx, "x"))
	assert.Equal(t, "a\n// x:\n// x:end\nb", readFile(t, fs, "doc.txt"))
}

func TestExtractBetween(t *testing.T) {
	ctx := context.Background()
	fs := vfs.NewMem()
	writeFile(t, fs, "doc.txt", "// x:\npayload\n// x:end")

	content, err := New(fs, "doc.txt").ExtractBetween(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "payload", content)
}
