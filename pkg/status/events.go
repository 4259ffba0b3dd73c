package status

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback about copy events
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 📝 LogEntry logs a tree entry with appropriate emoji and formatting
func (u *UserLogger) LogEntry(e Entry) {
	// Base name keeps the output compact
	relPath := filepath.Base(e.Path)

	var prefix, action string
	var printer *pterm.PrefixPrinter
	switch e.Outcome {
	case OutcomeCopied:
		prefix = "✨"
		action = "Copied"
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: prefix})
	case OutcomeLinked:
		prefix = "🔗"
		action = "Linked"
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: prefix})
	case OutcomeSkipped:
		prefix = "⏭️"
		action = "Skipped"
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: prefix})
	case OutcomeFailed:
		prefix = "❌"
		action = "Failed"
		printer = pterm.Error.WithPrefix(pterm.Prefix{Text: prefix})
	default:
		prefix = "❔"
		action = "Unknown"
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: prefix})
	}

	msg := fmt.Sprintf("%s %s", action, relPath)
	if e.Attrs > 0 {
		msg += fmt.Sprintf(" (%d attrs)", e.Attrs)
	}

	if e.Err != nil {
		printer.Println(msg)
		pterm.Error.Println(e.Err)
		u.log.Error().Err(e.Err).Msg(msg) // Also log to zerolog for debugging
	} else {
		printer.Println(msg)
		u.log.Info().Msg(msg) // Also log to zerolog for debugging
	}
}

// 📊 LogStateChange logs a change to the overall run state
func (u *UserLogger) LogStateChange(description string) {
	printer := pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"})
	printer.Println(description)
	u.log.Info().Msg(description)
}

// 🔍 LogValidation logs validation results
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(description)
		u.log.Info().Msg(description)
	} else {
		if err != nil {
			pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
			pterm.Error.Println(err)
			u.log.Error().Err(err).Msg(description)
		} else {
			pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(description)
			u.log.Warn().Msg(description)
		}
	}
}
