package status

import (
	"fmt"
)

// EntryFormatter defines how entry results and summaries should be formatted
type EntryFormatter interface {
	// FormatEntry formats a single entry result message
	FormatEntry(e Entry) string

	// FormatSummary formats a run summary message
	FormatSummary(s Summary) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultEntryFormatter provides a default implementation of EntryFormatter
type DefaultEntryFormatter struct{}

// NewDefaultEntryFormatter creates a new DefaultEntryFormatter
func NewDefaultEntryFormatter() *DefaultEntryFormatter {
	return &DefaultEntryFormatter{}
}

// FormatEntry formats an entry result message with emojis
func (f *DefaultEntryFormatter) FormatEntry(e Entry) string {
	switch e.Outcome {
	case OutcomeCopied:
		if e.Attrs > 0 {
			return fmt.Sprintf("✨ Copied %s (%d attrs)", e.Path, e.Attrs)
		}
		return fmt.Sprintf("✨ Copied %s", e.Path)
	case OutcomeLinked:
		return fmt.Sprintf("🔗 Linked %s", e.Path)
	case OutcomeSkipped:
		return fmt.Sprintf("⏭️  Skipped %s", e.Path)
	case OutcomeFailed:
		return fmt.Sprintf("❌ Failed %s", e.Path)
	default:
		return fmt.Sprintf("❔ Unknown %s", e.Path)
	}
}

// FormatSummary formats a run summary with emoji
func (f *DefaultEntryFormatter) FormatSummary(s Summary) string {
	if s.Failed > 0 {
		return fmt.Sprintf("❌ %d failed, %d copied, %d linked, %d skipped",
			s.Failed, s.Copied, s.Linked, s.Skipped)
	}
	return fmt.Sprintf("✅ %d copied, %d linked, %d skipped",
		s.Copied, s.Linked, s.Skipped)
}

// FormatError formats an error message with emoji
func (f *DefaultEntryFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}
