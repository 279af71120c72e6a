package notation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lgbarn/kiaak-go/internal/cetkaik"
	errs "github.com/lgbarn/kiaak-go/internal/errors"
)

// decodeError records a failure and the input left at the point of failure,
// so the caller can turn it into an offset into the text it was given.
type decodeError struct {
	kind     error
	rest     string
	expected string
	got      string
}

func (e *decodeError) Error() string {
	return e.kind.Error()
}

func (e *decodeError) Unwrap() error {
	return e.kind
}

// unexpected reports that rest does not start with what was expected.
func unexpected(rest, expected string) *decodeError {
	return &decodeError{kind: errs.ErrUnexpectedSymbol, rest: rest, expected: expected, got: describe(rest)}
}

// describe quotes the first symbol of s for diagnostics.
func describe(s string) string {
	if s == "" {
		return "end of input"
	}
	r, _ := utf8.DecodeRuneInString(s)
	return fmt.Sprintf("%q", r)
}

// toParseError converts a decode failure against input into the exported
// error type, with the offset measured from the start of input.
func toParseError(input string, err error) error {
	de, ok := err.(*decodeError)
	if !ok {
		return err
	}
	offset := len(input) - len(de.rest)
	return &errs.ParseError{
		Err:      de.kind,
		Offset:   offset,
		Column:   utf8.RuneCountInString(input[:offset]) + 1,
		Expected: de.expected,
		Got:      de.got,
	}
}

// nextRune returns the first rune of s and the rest of s. ok is false at the
// end of input; invalid UTF-8 decodes to utf8.RuneError, which no table holds.
func nextRune(s string) (r rune, rest string, ok bool) {
	if s == "" {
		return 0, s, false
	}
	r, n := utf8.DecodeRuneInString(s)
	return r, s[n:], true
}

// expectRune consumes want from the front of s.
func expectRune(s string, want rune) (string, error) {
	r, rest, ok := nextRune(s)
	if !ok || r != want {
		return s, unexpected(s, fmt.Sprintf("%q", want))
	}
	return rest, nil
}

// expectTag consumes the literal tag from the front of s.
func expectTag(s, tag string) (string, error) {
	if !strings.HasPrefix(s, tag) {
		return s, unexpected(s, fmt.Sprintf("%q", tag))
	}
	return s[len(tag):], nil
}

// parseSquare reads a column symbol and one or two row letters. The row run is
// greedy: if two letters are present they are both taken, and an invalid
// result is not retried with one.
func parseSquare(s string) (cetkaik.Coord, string, error) {
	col, rest, ok := nextRune(s)
	if !ok || !isColumn(col) {
		return cetkaik.Coord{}, s, unexpected(s, "column symbol")
	}

	text := string(col)
	for i := 0; i < 2; i++ {
		r, after, ok := nextRune(rest)
		if !ok || !isRowLetter(r) {
			break
		}
		text += string(r)
		rest = after
	}
	if len(text) == 1 {
		return cetkaik.Coord{}, s, unexpected(rest, "row symbol")
	}

	coord, ok := cetkaik.ParseCoord(text)
	if !ok {
		return cetkaik.Coord{}, s, &decodeError{
			kind:     errs.ErrInvalidCoordinate,
			rest:     rest,
			expected: "square",
			got:      fmt.Sprintf("%q", text),
		}
	}
	return coord, rest, nil
}

// parseProfession reads one profession logogram. The wildcard is not accepted.
func parseProfession(s string) (cetkaik.Profession, string, error) {
	r, rest, ok := nextRune(s)
	if ok {
		if p, found := professionSymbols[r]; found {
			return p, rest, nil
		}
	}
	return 0, s, unexpected(s, "profession")
}

// parseProfessionOrWildcard reads a profession logogram or the wildcard, which
// decodes to nil.
func parseProfessionOrWildcard(s string) (*cetkaik.Profession, string, error) {
	r, rest, ok := nextRune(s)
	if ok && r == Wildcard {
		return nil, rest, nil
	}
	p, rest, err := parseProfession(s)
	if err != nil {
		return nil, s, unexpected(s, "profession or wildcard")
	}
	return &p, rest, nil
}

func parseColor(s string) (cetkaik.Color, string, error) {
	r, rest, ok := nextRune(s)
	if ok {
		if c, found := colorSymbols[r]; found {
			return c, rest, nil
		}
	}
	return 0, s, unexpected(s, "colour")
}

// parseWaterStick reads the water marker and a run of one to three stick
// symbols, then looks the whole run up in the closed table of legal throws.
func parseWaterStick(s string) (StickThrow, string, error) {
	rest, err := expectRune(s, WaterMarker)
	if err != nil {
		return StickThrow{}, s, err
	}

	start := rest
	var run strings.Builder
	for i := 0; i < 3; i++ {
		r, after, ok := nextRune(rest)
		if !ok || !isWaterRunSymbol(r) {
			break
		}
		run.WriteRune(r)
		rest = after
	}
	if run.Len() == 0 {
		return StickThrow{}, s, unexpected(rest, "stick numeral")
	}

	outcome, ok := waterOutcomes[run.String()]
	if !ok {
		return StickThrow{}, s, &decodeError{
			kind:     errs.ErrMalformedStickThrow,
			rest:     start,
			expected: "water stick throw",
			got:      fmt.Sprintf("%q", run.String()),
		}
	}
	return outcome.clone(), rest, nil
}

// parseBridgeStickSize reads the bridge marker and exactly one size symbol.
// The outcome is decided by the caller.
func parseBridgeStickSize(s string) (*int, string, error) {
	rest, err := expectRune(s, BridgeMarker)
	if err != nil {
		return nil, s, err
	}
	r, after, ok := nextRune(rest)
	if ok {
		if n, found := bridgeSizes[r]; found {
			return copySize(n), after, nil
		}
	}
	return nil, s, unexpected(rest, "stick numeral")
}

// parseTamBracket reads "[square]" or "[或]". The latter decodes to nil.
func parseTamBracket(s string) (*cetkaik.Coord, string, error) {
	rest, err := expectRune(s, BracketOpen)
	if err != nil {
		return nil, s, err
	}

	var first *cetkaik.Coord
	if after, err := expectRune(rest, Unspecified); err == nil {
		rest = after
	} else {
		coord, after, err := parseSquare(rest)
		if err != nil {
			return nil, s, err
		}
		first = &coord
		rest = after
	}

	rest, err = expectRune(rest, BracketClose)
	if err != nil {
		return nil, s, err
	}
	return first, rest, nil
}

// ParseSquare decodes a square at the start of s and returns it with the
// unconsumed remainder.
func ParseSquare(s string) (cetkaik.Coord, string, error) {
	c, rest, err := parseSquare(s)
	if err != nil {
		return c, s, toParseError(s, err)
	}
	return c, rest, nil
}

// ParseProfession decodes a concrete profession logogram at the start of s.
func ParseProfession(s string) (cetkaik.Profession, string, error) {
	p, rest, err := parseProfession(s)
	if err != nil {
		return p, s, toParseError(s, err)
	}
	return p, rest, nil
}

// ParseProfessionOrWildcard decodes a profession logogram or the wildcard 片.
// A nil profession means the piece is unknown.
func ParseProfessionOrWildcard(s string) (*cetkaik.Profession, string, error) {
	p, rest, err := parseProfessionOrWildcard(s)
	if err != nil {
		return nil, s, toParseError(s, err)
	}
	return p, rest, nil
}

// ParseTamBracket decodes a coordinator hint such as "[TY]" or "[或]".
func ParseTamBracket(s string) (*cetkaik.Coord, string, error) {
	c, rest, err := parseTamBracket(s)
	if err != nil {
		return nil, s, toParseError(s, err)
	}
	return c, rest, nil
}
