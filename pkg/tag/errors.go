package tag

import (
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrTagNotFound means one or both marker lines are absent, or a region
	// that was required to hold content is empty.
	ErrTagNotFound = errors.Base("tag not found")

	// ErrMalformedTagPair means the begin and end markers resolved to the
	// same line index. Because the begin literal is a prefix of the end
	// literal, this usually means only one true marker line exists.
	ErrMalformedTagPair = errors.Base("malformed tag pair")

	// ErrNoCommentMarker means the begin marker line holds no '/' character,
	// so its indentation cannot be measured.
	ErrNoCommentMarker = errors.Base("no comment marker in line")
)
