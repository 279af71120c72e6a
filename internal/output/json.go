package output

import (
	"encoding/json"
	"io"

	errs "github.com/lgbarn/kiaak-go/internal/errors"
	"github.com/lgbarn/kiaak-go/internal/notation"
	"github.com/lgbarn/kiaak-go/internal/processing"
	"github.com/lgbarn/kiaak-go/internal/record"
)

// JSONEntry is one decoded move with its location.
type JSONEntry struct {
	Line   int           `json:"line"`
	Column int           `json:"column"`
	Text   string        `json:"text"`
	Move   notation.Move `json:"move"`
}

// JSONError is a failed move.
type JSONError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// JSONRecord represents a record in JSON format.
type JSONRecord struct {
	Name   string      `json:"name,omitempty"`
	Moves  []JSONEntry `json:"moves"`
	Errors []JSONError `json:"errors,omitempty"`
}

// JSONStats represents statistics in JSON format.
type JSONStats struct {
	Records    int                   `json:"records"`
	Moves      int                   `json:"moves"`
	Errors     int                   `json:"errors"`
	Duplicates int                   `json:"duplicates"`
	ByKind     map[notation.Kind]int `json:"byKind"`
	Wildcards  int                   `json:"wildcards"`
	Tam        int                   `json:"tam"`
	Parachutes int                   `json:"parachutes"`
	Water      processing.ThrowStats `json:"water"`
	Bridge     processing.ThrowStats `json:"bridge"`
	Sizes      map[int]int           `json:"sizes"`
	Unstated   int                   `json:"unstated"`
}

// JSONOutput holds everything written before Close.
type JSONOutput struct {
	Records []*JSONRecord `json:"records,omitempty"`
	Stats   *JSONStats    `json:"stats,omitempty"`
}

// RecordToJSON converts a record to its JSON form.
func RecordToJSON(rec *record.Record) *JSONRecord {
	jr := &JSONRecord{Name: rec.Name, Moves: make([]JSONEntry, 0, len(rec.Entries))}
	for _, e := range rec.Entries {
		jr.Moves = append(jr.Moves, JSONEntry{Line: e.Line, Column: e.Column, Text: e.Text, Move: e.Move})
	}
	for _, err := range rec.Errors {
		jr.Errors = append(jr.Errors, JSONError{Kind: errs.Kind(err), Message: err.Error()})
	}
	return jr
}

// StatsToJSON converts statistics to their JSON form. Kinds with no moves
// are left out.
func StatsToJSON(st *processing.RecordStats) *JSONStats {
	js := &JSONStats{
		Records:    st.Records,
		Moves:      st.Moves,
		Errors:     st.Errors,
		Duplicates: st.Duplicates,
		ByKind:     make(map[notation.Kind]int),
		Wildcards:  st.Wildcards,
		Tam:        st.Tam,
		Parachutes: st.Parachutes,
		Water:      st.Water,
		Bridge:     st.Bridge,
		Sizes:      make(map[int]int, len(st.Sizes)),
		Unstated:   st.Unstated,
	}
	for k, n := range st.ByKind {
		if n > 0 {
			js.ByKind[notation.Kind(k)] = n
		}
	}
	for size, n := range st.Sizes {
		js.Sizes[size] = n
	}
	return js
}

// JSONWriter writes records in JSON format.
// It buffers records and writes them as one document on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	output JSONOutput
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteRecord buffers a record for JSON output.
func (jw *JSONWriter) WriteRecord(rec *record.Record) error {
	jw.output.Records = append(jw.output.Records, RecordToJSON(rec))
	return nil
}

// WriteStats buffers statistics for JSON output.
func (jw *JSONWriter) WriteStats(st *processing.RecordStats) error {
	jw.output.Stats = StatsToJSON(st)
	return nil
}

// Flush writes everything buffered as one JSON document.
func (jw *JSONWriter) Flush() error {
	if len(jw.output.Records) == 0 && jw.output.Stats == nil {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&jw.output)

	// Clear buffer after writing
	jw.output = JSONOutput{}

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
