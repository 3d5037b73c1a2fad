package tag

import (
	"gitlab.com/tozd/go/errors"
)

// Insert replaces everything between the markers of tag with content. The
// marker lines themselves survive verbatim, inline trailing comments included.
// Every non-empty content line is re-indented to match the begin marker line.
func Insert(lines []string, tag, content string) ([]string, error) {
	loc, err := Locate(lines, tag)
	if err != nil {
		return nil, err
	}

	width, err := Indentation(lines[loc.Begin])
	if err != nil {
		return nil, err
	}

	body := indentLines(content, width)

	out := make([]string, 0, loc.Begin+len(body)+len(lines)-loc.End+1)
	out = append(out, lines[:loc.Begin]...)
	out = append(out, lines[loc.Begin])
	out = append(out, body...)
	out = append(out, lines[loc.End])
	out = append(out, lines[loc.End+1:]...)
	return out, nil
}

// Remove discards everything between the markers of tag, leaving the two
// marker lines back-to-back. Removing an already-empty region is a no-op.
func Remove(lines []string, tag string) ([]string, error) {
	loc, err := Locate(lines, tag)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(lines)-loc.Gap())
	out = append(out, lines[:loc.Begin+1]...)
	out = append(out, lines[loc.End:]...)
	return out, nil
}

// ExtractContent returns the text strictly between the markers of tag. An
// empty region reports ErrTagNotFound, same as absent markers; so does a
// malformed pair, which is just the degenerate empty region here.
func ExtractContent(lines []string, tag string) (string, error) {
	loc, err := Locate(lines, tag)
	if err != nil {
		if errors.Is(err, ErrMalformedTagPair) {
			return "", errors.Errorf("no content between markers %q and %q: %w",
				BeginMarker(tag), EndMarker(tag), ErrTagNotFound)
		}
		return "", err
	}
	if loc.Empty() {
		return "", errors.Errorf("no content between markers %q and %q: %w",
			BeginMarker(tag), EndMarker(tag), ErrTagNotFound)
	}
	return JoinLines(lines[loc.Begin+1 : loc.End]), nil
}

// IsClean reports whether every tag has a located marker pair holding at most
// one content line. It short-circuits on the first tag that fails.
func IsClean(lines []string, tags []string) bool {
	for _, t := range tags {
		loc, err := Locate(lines, t)
		if err != nil {
			return false
		}
		if loc.End-loc.Begin > 2 {
			return false
		}
	}
	return true
}
