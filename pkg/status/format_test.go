package status

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestFileStatus_String(t *testing.T) {
	tests := []struct {
		status FileStatus
		want   string
	}{
		{StatusNew, "new"},
		{StatusModified, "modified"},
		{StatusUnchanged, "unchanged"},
		{StatusUnknown, "unknown"},
		{FileStatus(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
		})
	}
}

func TestDefaultFileFormatter(t *testing.T) {
	f := NewDefaultFileFormatter()

	assert.Contains(t, f.FormatFileOperation("a.txt", StatusNew), "Created a.txt")
	assert.Contains(t, f.FormatFileOperation("a.txt", StatusModified), "Overwrote a.txt")
	assert.Contains(t, f.FormatFileOperation("a.txt", StatusUnchanged), "Unchanged a.txt")
	assert.Contains(t, f.FormatError(errors.New("boom")), "boom")
	assert.Empty(t, f.FormatError(nil))
}

func TestColorFormatter(t *testing.T) {
	f := NewColorFormatter()

	got := f.FormatFileOperation("a.txt", StatusNew)
	assert.Contains(t, got, "a.txt")
	assert.Contains(t, got, "new")

	assert.Empty(t, f.FormatError(nil))
}

func TestTracker(t *testing.T) {
	ctx := context.Background()
	tr := NewTracker(nil)

	tr.Track(ctx, FileInfo{Path: "a.txt", Status: StatusNew})
	tr.Track(ctx, FileInfo{Path: "b.txt", Status: StatusUnchanged})
	tr.Track(ctx, FileInfo{Path: "c.txt", Status: StatusUnchanged})

	info, err := tr.GetFileInfo("a.txt")
	require.NoError(t, err)
	assert.Equal(t, StatusNew, info.Status)

	_, err = tr.GetFileInfo("missing.txt")
	require.Error(t, err)

	assert.Len(t, tr.ListFiles(), 3)

	counts := tr.Counts()
	assert.Equal(t, 1, counts[StatusNew])
	assert.Equal(t, 2, counts[StatusUnchanged])
}

func TestChecksum(t *testing.T) {
	a := Checksum([]byte("content"))
	b := Checksum([]byte("content"))
	c := Checksum([]byte("other"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}
