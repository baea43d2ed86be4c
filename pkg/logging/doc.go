// Package logging provides structured logging configuration for fixturegen.
//
// This package wraps log/slog. Library packages accept a *slog.Logger and
// default to Nop; the CLI builds the real logger from its flags:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.ParseLevel("debug"),
//	    Format: logging.FormatText,
//	})
//
//	logger.Debug("resolved schema reference", "ref", "#/components/schemas/Pet")
//
// # Output Formats
//
//   - Text: Human-readable format for terminals
//   - JSON: Structured format for log files and CI
//
// A MultiHandler fans records out to several handlers, which is how the CLI
// writes to stderr and a JSON log file at the same time.
package logging
