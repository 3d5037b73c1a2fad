package status

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// FileFormatter defines how file outcomes should be formatted
type FileFormatter interface {
	// FormatFileOperation formats a file outcome message
	FormatFileOperation(path string, status FileStatus) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFileOperation formats a file outcome message with emojis
func (f *DefaultFileFormatter) FormatFileOperation(path string, status FileStatus) string {
	switch status {
	case StatusNew:
		return fmt.Sprintf("✨ Created %s", path)
	case StatusModified:
		return fmt.Sprintf("📝 Overwrote %s", path)
	case StatusUnchanged:
		return fmt.Sprintf("👍 Unchanged %s", path)
	default:
		return fmt.Sprintf("❓ Unknown %s", path)
	}
}

// FormatError formats an error message with emoji
func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // Base width for filename
	statusWidth = 12 // Width for status text
)

// ColorFormatter formats outcomes as aligned, colored console lines
type ColorFormatter struct{}

// NewColorFormatter creates a new ColorFormatter
func NewColorFormatter() *ColorFormatter {
	return &ColorFormatter{}
}

// FormatFileOperation formats a file outcome for display
func (f *ColorFormatter) FormatFileOperation(path string, status FileStatus) string {
	var prefix string
	switch status {
	case StatusNew:
		prefix = color.GreenString("✓")
	case StatusModified:
		prefix = color.YellowString("⟳")
	default:
		prefix = color.HiBlackString("-")
	}

	namePart := fmt.Sprintf("%-*s", nameWidth, path)
	statusPart := fmt.Sprintf("%-*s", statusWidth, status.String())

	return fmt.Sprintf("%s%s %s %s",
		strings.Repeat(" ", fileIndent),
		prefix,
		namePart,
		statusPart,
	)
}

// FormatError formats an error for display
func (f *ColorFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return color.RedString("✗ %v", err)
}
