package tag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestInsert(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		tag     string
		content string
		want    string
		wantErr error
	}{
		{
			name:    "replaces_existing_region",
			input:   "prefix\n// greet: say hello\nold text\n// greet:end\nsuffix",
			tag:     "greet",
			content: "new line1\nnew line2",
			want:    "prefix\n// greet: say hello\nnew line1\nnew line2\n// greet:end\nsuffix",
		},
		{
			name:    "fills_empty_region",
			input:   "// greet:\n// greet:end",
			tag:     "greet",
			content: "hello",
			want:    "// greet:\nhello\n// greet:end",
		},
		{
			name:    "preserves_marker_indentation",
			input:   "func x() {\n    // body:\n    // body:end\n}",
			tag:     "body",
			content: "a()\nb()",
			want:    "func x() {\n    // body:\n    a()\n    b()\n    // body:end\n}",
		},
		{
			name:    "empty_content_lines_stay_empty",
			input:   "  // body:\n  // body:end",
			tag:     "body",
			content: "one\n\ntwo",
			want:    "  // body:\n  one\n\n  two\n  // body:end",
		},
		{
			name:    "keeps_inline_comment_on_markers",
			input:   "// cfg: managed, do not edit\nstale\n// cfg:end trailing note",
			tag:     "cfg",
			content: "fresh",
			want:    "// cfg: managed, do not edit\nfresh\n// cfg:end trailing note",
		},
		{
			name:    "no_markers_at_all",
			input:   "nothing here\nstill nothing",
			tag:     "greet",
			content: "x",
			wantErr: ErrTagNotFound,
		},
		{
			name:    "missing_end_marker",
			input:   "// greet: hi\nbody",
			tag:     "greet",
			content: "x",
			wantErr: ErrTagNotFound,
		},
		{
			name:    "lone_end_marker_is_malformed",
			input:   "before\n// greet:end\nafter",
			tag:     "greet",
			content: "x",
			wantErr: ErrMalformedTagPair,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Insert(SplitLines(tt.input), tt.tag, tt.content)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, JoinLines(got))
		})
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		tag     string
		want    string
		wantErr error
	}{
		{
			name:  "discards_region_content",
			input: "a\n// x:\none\ntwo\n// x:end\nb",
			tag:   "x",
			want:  "a\n// x:\n// x:end\nb",
		},
		{
			name:  "noop_on_empty_region",
			input: "a\n// x:\n// x:end\nb",
			tag:   "x",
			want:  "a\n// x:\n// x:end\nb",
		},
		{
			name:    "missing_markers",
			input:   "a\nb",
			tag:     "x",
			wantErr: ErrTagNotFound,
		},
		{
			name:    "single_marker_line",
			input:   "// x:end",
			tag:     "x",
			wantErr: ErrMalformedTagPair,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Remove(SplitLines(tt.input), tt.tag)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, JoinLines(got))
		})
	}
}

func TestRemove_Idempotent(t *testing.T) {
	lines := SplitLines("head\n// x:\na\nb\nc\n// x:end\ntail")

	once, err := Remove(lines, "x")
	require.NoError(t, err)

	twice, err := Remove(once, "x")
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestExtractContent(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		tag     string
		want    string
		wantErr error
	}{
		{
			name:  "returns_interior_text",
			input: "a\n// x:\none\ntwo\n// x:end\nb",
			tag:   "x",
			want:  "one\ntwo",
		},
		{
			name:    "empty_region_reports_not_found",
			input:   "// x:\n// x:end",
			tag:     "x",
			wantErr: ErrTagNotFound,
		},
		{
			name:    "missing_markers",
			input:   "plain text",
			tag:     "x",
			wantErr: ErrTagNotFound,
		},
		{
			name:    "malformed_pair_reports_not_found",
			input:   "// x:end",
			tag:     "x",
			wantErr: ErrTagNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractContent(SplitLines(tt.input), tt.tag)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInsertThenExtract_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		indent  string
		content string
	}{
		{
			name:    "flat_file",
			input:   "start\n// r:\n// r:end\nfinish",
			content: "alpha\nbeta",
		},
		{
			name:    "indented_markers",
			input:   "start\n  // r:\n  // r:end\nfinish",
			indent:  "  ",
			content: "alpha\nbeta",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inserted, err := Insert(SplitLines(tt.input), "r", tt.content)
			require.NoError(t, err)

			got, err := ExtractContent(inserted, "r")
			require.NoError(t, err)

			var want []string
			for _, line := range SplitLines(tt.content) {
				if line == "" {
					want = append(want, line)
					continue
				}
				want = append(want, tt.indent+line)
			}
			assert.Equal(t, JoinLines(want), got)
		})
	}
}

func TestIsClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		tags  []string
		want  bool
	}{
		{
			name:  "empty_regions_are_clean",
			input: "// a:\n// a:end\n// b:\n// b:end",
			tags:  []string{"a", "b"},
			want:  true,
		},
		{
			name:  "single_content_line_is_clean",
			input: "// a:\nx\n// a:end",
			tags:  []string{"a"},
			want:  true,
		},
		{
			name:  "two_content_lines_are_dirty",
			input: "// a:\nx\ny\n// a:end",
			tags:  []string{"a"},
			want:  false,
		},
		{
			name:  "missing_tag_is_dirty",
			input: "// a:\n// a:end",
			tags:  []string{"a", "b"},
			want:  false,
		},
		{
			name:  "no_tags_is_clean",
			input: "anything",
			tags:  nil,
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsClean(SplitLines(tt.input), tt.tags))
		})
	}
}

func TestIsClean_AfterRemoveAndInsert(t *testing.T) {
	lines := SplitLines("// a:\none\ntwo\nthree\n// a:end")
	require.False(t, IsClean(lines, []string{"a"}))

	removed, err := Remove(lines, "a")
	require.NoError(t, err)
	assert.True(t, IsClean(removed, []string{"a"}))

	inserted, err := Insert(removed, "a", "one\ntwo\nthree")
	require.NoError(t, err)
	assert.False(t, IsClean(inserted, []string{"a"}))
}

func TestSplitJoinLines_TrailingNewline(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		lines []string
	}{
		{
			name:  "without_trailing_newline",
			text:  "a\nb",
			lines: []string{"a", "b"},
		},
		{
			name:  "with_trailing_newline",
			text:  "a\nb\n",
			lines: []string{"a", "b", ""},
		},
		{
			name:  "empty_text",
			text:  "",
			lines: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.text)
			assert.Equal(t, tt.lines, got)
			assert.Equal(t, tt.text, JoinLines(got))
		})
	}
}

func TestInsert_PreservesTrailingNewline(t *testing.T) {
	withNewline := "// x:\n// x:end\n"

	got, err := Insert(SplitLines(withNewline), "x", "body")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(JoinLines(got), "\n"))
	assert.Equal(t, "// x:\nbody\n// x:end\n", JoinLines(got))
}

func TestIndentation(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    int
		wantErr error
	}{
		{name: "no_indent", line: "// x:", want: 0},
		{name: "four_spaces", line: "    // x:", want: 4},
		{name: "tab_counts_as_one", line: "\t// x:", want: 1},
		{name: "hash_prefix", line: "# // x:", want: 2},
		{name: "no_slash", line: "plain", wantErr: ErrNoCommentMarker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Indentation(tt.line)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		tag     string
		want    Location
		wantErr error
	}{
		{
			name:  "simple_pair",
			input: "a\n// x:\nb\n// x:end\nc",
			tag:   "x",
			want:  Location{Begin: 1, End: 3},
		},
		{
			name:  "first_match_wins",
			input: "// x: one\n// x:end\n// x: two\n// x:end",
			tag:   "x",
			want:  Location{Begin: 0, End: 1},
		},
		{
			name:  "markers_inside_longer_lines",
			input: "code() // x: keep\nbody\ncode() // x:end keep",
			tag:   "x",
			want:  Location{Begin: 0, End: 2},
		},
		{
			name:    "absent",
			input:   "a\nb",
			tag:     "x",
			wantErr: ErrTagNotFound,
		},
		{
			name:    "end_before_any_begin_degenerates",
			input:   "// x:end\n// x: later",
			tag:     "x",
			wantErr: ErrMalformedTagPair,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Locate(SplitLines(tt.input), tt.tag)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
