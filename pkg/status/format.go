package status

import (
	"fmt"
)

// FileFormatter defines how per-file outcomes should be formatted
type FileFormatter interface {
	// FormatFileChange formats the outcome line for one processed file
	FormatFileChange(path string, changed bool, replacements int, err error) string

	// FormatSummary formats the end-of-run summary
	FormatSummary(processed, changed int) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFileChange formats the outcome line for one file with emoji markers
func (f *DefaultFileFormatter) FormatFileChange(path string, changed bool, replacements int, err error) string {
	switch {
	case err != nil:
		return fmt.Sprintf("❌ %s: Error - %v", path, err)
	case changed:
		return fmt.Sprintf("✅ %s: %d changes made", path, replacements)
	default:
		return fmt.Sprintf("⏭️  %s: No changes needed", path)
	}
}

// FormatSummary formats the end-of-run summary
func (f *DefaultFileFormatter) FormatSummary(processed, changed int) string {
	if processed == 0 {
		return "nothing to process"
	}
	return fmt.Sprintf("%d files processed, %d changed", processed, changed)
}

// FormatError formats an error message with emoji
func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}
