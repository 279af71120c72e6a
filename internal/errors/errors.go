// Package errors provides sentinel errors and error types for kiaak.
// It defines the failure kinds of the move-notation grammar and a structured
// error type that preserves location context while allowing inspection with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error kinds.
var (
	// ErrUnexpectedSymbol indicates that the input at the current position
	// does not start any alternative of the expected grammar rule.
	ErrUnexpectedSymbol = errors.New("unexpected symbol")

	// ErrInvalidCoordinate indicates a lexically well-formed column and row
	// pair that does not name a square.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrMalformedStickThrow indicates a stick-throw run that is not one of
	// the legal combinations.
	ErrMalformedStickThrow = errors.New("malformed stick throw")

	// ErrNoMatchingShape indicates that no move shape matched the input.
	ErrNoMatchingShape = errors.New("no matching move shape")

	// ErrParseFailure indicates a general record parsing error.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ParseError represents a parsing error with location context.
type ParseError struct {
	Err      error  // The underlying error kind
	File     string // Source file name
	Line     int    // Line number (1-based)
	Column   int    // Column number in runes (1-based)
	Offset   int    // Byte offset into the parsed text
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	// Add file location
	if e.File != "" || e.Line > 0 {
		loc := e.File
		if e.Line > 0 {
			if loc != "" {
				loc += ":"
			}
			loc += fmt.Sprintf("%d", e.Line)
			if e.Column > 0 {
				loc += fmt.Sprintf(":%d", e.Column)
			}
		}
		parts = append(parts, loc)
	}

	// Add expected/got context
	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Kind returns a short name for the sentinel that err wraps, suitable for
// machine-readable output. It returns "" for nil and "error" for anything
// that wraps none of this package's sentinels.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoMatchingShape):
		return "NoMatchingShape"
	case errors.Is(err, ErrMalformedStickThrow):
		return "MalformedStickThrow"
	case errors.Is(err, ErrInvalidCoordinate):
		return "InvalidCoordinate"
	case errors.Is(err, ErrUnexpectedSymbol):
		return "UnexpectedSymbol"
	case errors.Is(err, ErrInvalidConfig):
		return "InvalidConfig"
	case errors.Is(err, ErrParseFailure):
		return "ParseFailure"
	}
	return "error"
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
