package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/lgbarn/kiaak-go/internal/notation"
	"github.com/lgbarn/kiaak-go/internal/processing"
	"github.com/lgbarn/kiaak-go/internal/record"
)

// TableWriter renders a table per record and one for statistics.
type TableWriter struct {
	w io.Writer
}

// NewTableWriter creates a new table writer.
func NewTableWriter(w io.Writer) *TableWriter {
	return &TableWriter{w: w}
}

func (tw *TableWriter) newTable(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(tw.w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

// WriteRecord renders the moves of rec.
func (tw *TableWriter) WriteRecord(rec *record.Record) error {
	table := tw.newTable("Location", "Kind", "Move", "Piece", "Water", "Bridge")
	for _, e := range rec.Entries {
		m := e.Move
		table.Append([]string{
			location(rec, e),
			m.Kind.String(),
			m.String(),
			piece(m),
			throw(m.Water),
			throw(m.Bridge),
		})
	}
	table.Render()
	return nil
}

// WriteStats renders st.
func (tw *TableWriter) WriteStats(st *processing.RecordStats) error {
	table := tw.newTable("Statistic", "Count")
	add := func(name string, n int) {
		table.Append([]string{name, strconv.Itoa(n)})
	}

	add("records", st.Records)
	add("moves", st.Moves)
	add("errors", st.Errors)
	add("duplicates", st.Duplicates)
	for k := notation.Kind(0); k < notation.NumKinds; k++ {
		if st.ByKind[k] > 0 {
			add(k.String(), st.ByKind[k])
		}
	}
	add("wildcards", st.Wildcards)
	add("tam moves", st.Tam)
	add("parachutes", st.Parachutes)
	add("water attempted", st.Water.Attempted)
	add("water successful", st.Water.Successful)
	add("bridge attempted", st.Bridge.Attempted)
	add("bridge successful", st.Bridge.Successful)
	for _, size := range st.SizeKeys() {
		add(fmt.Sprintf("size %d", size), st.Sizes[size])
	}
	add("size unstated", st.Unstated)
	table.Render()
	return nil
}

// Flush is a no-op; tables are rendered as they are written.
func (tw *TableWriter) Flush() error {
	return nil
}

// Close closes the table writer.
func (tw *TableWriter) Close() error {
	return nil
}

func piece(m notation.Move) string {
	switch {
	case m.Kind.IsTam():
		return string(notation.TamMarker)
	case m.Prof == nil:
		return "?"
	case m.Kind == notation.Parachute:
		return m.Color.String() + " " + m.Prof.String()
	}
	return m.Prof.String()
}

func throw(s *notation.StickThrow) string {
	if s == nil {
		return ""
	}
	size := "?"
	if s.Size != nil {
		size = strconv.Itoa(*s.Size)
	}
	if s.Successful {
		return size + " ok"
	}
	return size + " failed"
}
