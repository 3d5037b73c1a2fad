package tag

import "strings"

// SplitLines splits text on the newline character. The trailing empty element
// produced by a trailing newline is kept, so JoinLines(SplitLines(s)) == s for
// every input, with or without a final newline.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// JoinLines is the inverse of SplitLines.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
