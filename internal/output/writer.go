// Package output formats decoded records and statistics.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/kiaak-go/internal/config"
	"github.com/lgbarn/kiaak-go/internal/processing"
	"github.com/lgbarn/kiaak-go/internal/record"
)

// RecordWriter is the interface for writing parsed records to output.
// Different implementations handle different output formats.
type RecordWriter interface {
	// WriteRecord writes the decoded moves of a record.
	WriteRecord(rec *record.Record) error

	// WriteStats writes aggregated statistics.
	WriteStats(st *processing.RecordStats) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer for cfg.Output.Format.
func NewWriter(w io.Writer, cfg *config.Config) (RecordWriter, error) {
	switch cfg.Output.Format {
	case config.FormatText:
		return NewTextWriter(w), nil
	case config.FormatJSON:
		return NewJSONWriter(w), nil
	case config.FormatTable:
		return NewTableWriter(w), nil
	}
	return nil, fmt.Errorf("output: unsupported format %v", cfg.Output.Format)
}

// location renders where an entry was found, prefixed by the record name
// when there is one.
func location(rec *record.Record, e record.Entry) string {
	if rec.Name == "" {
		return fmt.Sprintf("%d:%d", e.Line, e.Column)
	}
	return fmt.Sprintf("%s:%d:%d", rec.Name, e.Line, e.Column)
}
