package cetkaik

import "strings"

// BoardSize is the number of rows and of columns.
const BoardSize = 9

// Column is a file of the board, from K on one side to P on the other.
type Column int

const (
	K Column = iota
	L
	N
	T
	Z
	X
	C
	M
	P
)

// Row is a rank of the board. The last three rows use two-letter names.
type Row int

const (
	A Row = iota
	E
	I
	U
	O
	Y
	AI
	AU
	IA
)

var columnNames = [BoardSize]string{"K", "L", "N", "T", "Z", "X", "C", "M", "P"}

var rowNames = [BoardSize]string{"A", "E", "I", "U", "O", "Y", "AI", "AU", "IA"}

// ColumnSymbols lists the single-letter column symbols in board order.
const ColumnSymbols = "KLNTZXCMP"

// RowLetters lists the letters that row names are spelled with.
const RowLetters = "AEIOUY"

// String returns the column letter.
func (c Column) String() string {
	if c >= 0 && c < BoardSize {
		return columnNames[c]
	}
	return "?"
}

// String returns the row name.
func (r Row) String() string {
	if r >= 0 && r < BoardSize {
		return rowNames[r]
	}
	return "?"
}

// Coord is an absolute square on the board.
type Coord struct {
	Row    Row
	Column Column
}

// String renders the coordinate the way records write it, column first.
func (c Coord) String() string {
	return c.Column.String() + c.Row.String()
}

// ParseColumn converts a column letter.
func ParseColumn(s string) (Column, bool) {
	if len(s) != 1 {
		return 0, false
	}
	i := strings.IndexByte(ColumnSymbols, s[0])
	if i < 0 {
		return 0, false
	}
	return Column(i), true
}

// ParseRow converts a one- or two-letter row name.
func ParseRow(s string) (Row, bool) {
	for i, name := range rowNames {
		if name == s {
			return Row(i), true
		}
	}
	return 0, false
}

// ParseCoord validates a column letter followed by a row name, e.g. "KE" or
// "PAU". Any other text, including a well-spelled but nonexistent row such as
// "KAA", is rejected.
func ParseCoord(s string) (Coord, bool) {
	if len(s) < 2 {
		return Coord{}, false
	}
	col, ok := ParseColumn(s[:1])
	if !ok {
		return Coord{}, false
	}
	row, ok := ParseRow(s[1:])
	if !ok {
		return Coord{}, false
	}
	return Coord{Row: row, Column: col}, true
}

// MustParseCoord is like ParseCoord but panics on invalid input.
// It is intended for tables and tests.
func MustParseCoord(s string) Coord {
	c, ok := ParseCoord(s)
	if !ok {
		panic("cetkaik: invalid coordinate " + s)
	}
	return c
}
