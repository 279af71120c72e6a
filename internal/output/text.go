package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lgbarn/kiaak-go/internal/notation"
	"github.com/lgbarn/kiaak-go/internal/processing"
	"github.com/lgbarn/kiaak-go/internal/record"
)

// TextWriter writes one line per move: location, kind and canonical
// notation separated by two spaces.
type TextWriter struct {
	w *bufio.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w)}
}

// WriteRecord writes the moves of rec.
func (tw *TextWriter) WriteRecord(rec *record.Record) error {
	for _, e := range rec.Entries {
		if _, err := fmt.Fprintf(tw.w, "%s  %s  %s\n", location(rec, e), e.Move.Kind, e.Move); err != nil {
			return err
		}
	}
	return nil
}

// WriteStats writes st as "name: value" lines.
func (tw *TextWriter) WriteStats(st *processing.RecordStats) error {
	fmt.Fprintf(tw.w, "records: %d\n", st.Records)
	fmt.Fprintf(tw.w, "moves: %d\n", st.Moves)
	fmt.Fprintf(tw.w, "errors: %d\n", st.Errors)
	fmt.Fprintf(tw.w, "duplicates: %d\n", st.Duplicates)
	for k := notation.Kind(0); k < notation.NumKinds; k++ {
		if st.ByKind[k] > 0 {
			fmt.Fprintf(tw.w, "kind %s: %d\n", k, st.ByKind[k])
		}
	}
	fmt.Fprintf(tw.w, "wildcards: %d\n", st.Wildcards)
	fmt.Fprintf(tw.w, "tam moves: %d\n", st.Tam)
	fmt.Fprintf(tw.w, "parachutes: %d\n", st.Parachutes)
	fmt.Fprintf(tw.w, "water: %d/%d successful\n", st.Water.Successful, st.Water.Attempted)
	fmt.Fprintf(tw.w, "bridge: %d/%d successful\n", st.Bridge.Successful, st.Bridge.Attempted)
	for _, size := range st.SizeKeys() {
		fmt.Fprintf(tw.w, "size %d: %d\n", size, st.Sizes[size])
	}
	_, err := fmt.Fprintf(tw.w, "size unstated: %d\n", st.Unstated)
	return err
}

// Flush flushes buffered lines.
func (tw *TextWriter) Flush() error {
	return tw.w.Flush()
}

// Close flushes the text writer.
func (tw *TextWriter) Close() error {
	return tw.Flush()
}
