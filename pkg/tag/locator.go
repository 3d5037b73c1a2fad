// Package tag locates and rewrites tag-delimited regions in line-based text.
//
// A tag resolves to two literal marker fragments: "// <tag>:" begins a region
// and "// <tag>:end" closes it. Marker detection is substring containment, not
// exact-line equality, so marker lines may carry trailing comment text.
package tag

import (
	"strings"

	"gitlab.com/tozd/go/errors"
)

// BeginMarker returns the literal fragment that opens a region for tag.
func BeginMarker(tag string) string {
	return "// " + tag + ":"
}

// EndMarker returns the literal fragment that closes a region for tag.
// The begin marker is a prefix of the end marker.
func EndMarker(tag string) string {
	return BeginMarker(tag) + "end"
}

// Location holds the line indices of a located marker pair.
// Begin < End always holds for a successfully located pair.
type Location struct {
	Begin int // index of the line containing the begin marker
	End   int // index of the line containing the end marker
}

// Gap returns the number of lines strictly between the markers.
func (l Location) Gap() int {
	return l.End - l.Begin - 1
}

// Empty reports whether the region holds no content lines.
func (l Location) Empty() bool {
	return l.End-l.Begin <= 1
}

// Locate finds the begin and end marker lines for tag. The two searches are
// independent: each returns the first line whose text contains the literal.
// Since the begin literal is contained in the end literal, the begin index can
// never exceed the end index; when the two coincide only a single marker line
// exists and the pair is malformed.
func Locate(lines []string, tag string) (Location, error) {
	begin := firstIndexContaining(lines, BeginMarker(tag))
	if begin < 0 {
		return Location{}, errors.Errorf("no begin marker for tag %q, expected a line containing %q: %w",
			tag, BeginMarker(tag), ErrTagNotFound)
	}

	end := firstIndexContaining(lines, EndMarker(tag))
	if end < 0 {
		return Location{}, errors.Errorf("no end marker for tag %q, expected a line containing %q: %w",
			tag, EndMarker(tag), ErrTagNotFound)
	}

	if begin == end {
		return Location{}, errors.Errorf("begin and end markers for tag %q resolve to the same line %d, expected %q ... %q: %w",
			tag, begin, BeginMarker(tag), EndMarker(tag), ErrMalformedTagPair)
	}

	return Location{Begin: begin, End: end}, nil
}

func firstIndexContaining(lines []string, literal string) int {
	for i, line := range lines {
		if strings.Contains(line, literal) {
			return i
		}
	}
	return -1
}
