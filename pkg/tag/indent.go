package tag

import (
	"strings"

	"gitlab.com/tozd/go/errors"
)

// Indentation measures how many characters precede the first '/' on the begin
// marker line. A line matched by a begin marker always holds a '/', so the
// error only fires on lines that never came out of Locate.
func Indentation(beginLine string) (int, error) {
	idx := strings.IndexByte(beginLine, '/')
	if idx < 0 {
		return 0, errors.Errorf("line %q holds no comment marker: %w", beginLine, ErrNoCommentMarker)
	}
	return idx, nil
}

// indentLines prefixes every non-empty line of content with width spaces.
// Empty lines stay empty so no trailing whitespace is introduced.
func indentLines(content string, width int) []string {
	prefix := strings.Repeat(" ", width)
	lines := SplitLines(content)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			out = append(out, line)
			continue
		}
		out = append(out, prefix+line)
	}
	return out
}
