// Package record parses the move list of a game record: a sequence of moves
// in logogram notation separated by whitespace.
package record

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"

	errs "github.com/lgbarn/kiaak-go/internal/errors"
	"github.com/lgbarn/kiaak-go/internal/notation"
)

// Separators are the characters allowed between moves.
const Separators = "\t\r\n \u00a0\u3000"

// Options controls how a record is read.
type Options struct {
	// File names the source in error messages.
	File string

	// NormalizeWidth folds full-width Latin letters and brackets to ASCII
	// and applies NFC before parsing, for records typed with an East Asian
	// input method. Reported columns refer to the normalised text.
	NormalizeWidth bool

	// KeepGoing skips a move that fails to parse and carries on from the
	// next separator, collecting every error instead of stopping.
	KeepGoing bool
}

// Entry is one decoded move and where it was found.
type Entry struct {
	Move   notation.Move
	Text   string // the notation exactly as written
	Line   int    // 1-based
	Column int    // 1-based, in runes
	Offset int    // byte offset into the (normalised) text
}

// Record is a parsed move list.
type Record struct {
	Name    string
	Entries []Entry
	Errors  []error
}

// Moves returns the decoded moves in order.
func (r *Record) Moves() []notation.Move {
	moves := make([]notation.Move, len(r.Entries))
	for i, e := range r.Entries {
		moves[i] = e.Move
	}
	return moves
}

// Err returns the collected errors joined, or nil.
func (r *Record) Err() error {
	return errors.Join(r.Errors...)
}

// Normalize applies the width folding and NFC composition used by
// Options.NormalizeWidth.
func Normalize(s string) string {
	return norm.NFC.String(width.Fold.String(s))
}

// Parse decodes every move in text. Without KeepGoing it stops at the first
// move that fails and returns that error; the moves read before it are still
// returned in the Record.
func Parse(text string, opts Options) (*Record, error) {
	if opts.NormalizeWidth {
		text = Normalize(text)
	}

	rec := &Record{Name: opts.File}
	pos := newPosition(text)

	for {
		pos.skip(Separators)
		if pos.done() {
			break
		}

		rest := pos.rest()
		m, after, err := notation.Parse(rest)
		if err == nil && after == rest {
			// Every shape consumes at least one symbol; guard the loop anyway.
			err = errs.ErrParseFailure
		}
		if err != nil {
			perr := pos.locate(err, opts.File)
			rec.Errors = append(rec.Errors, perr)
			if !opts.KeepGoing {
				return rec, perr
			}
			pos.skipUntil(Separators)
			continue
		}

		consumed := rest[:len(rest)-len(after)]
		rec.Entries = append(rec.Entries, Entry{
			Move:   m,
			Text:   consumed,
			Line:   pos.line,
			Column: pos.col,
			Offset: pos.offset,
		})
		pos.advance(len(consumed))
	}

	if len(rec.Errors) > 0 {
		return rec, rec.Err()
	}
	return rec, nil
}

// position tracks line and column while walking text.
type position struct {
	text   string
	offset int
	line   int
	col    int
}

func newPosition(text string) *position {
	return &position{text: text, line: 1, col: 1}
}

func (p *position) done() bool {
	return p.offset >= len(p.text)
}

func (p *position) rest() string {
	return p.text[p.offset:]
}

// advance moves forward n bytes, counting lines and columns.
func (p *position) advance(n int) {
	end := p.offset + n
	for p.offset < end {
		r, size := utf8.DecodeRuneInString(p.text[p.offset:])
		p.offset += size
		if r == '\n' {
			p.line++
			p.col = 1
		} else {
			p.col++
		}
	}
}

// skip advances past any runes in set.
func (p *position) skip(set string) {
	for !p.done() {
		r, size := utf8.DecodeRuneInString(p.rest())
		if !strings.ContainsRune(set, r) {
			return
		}
		p.advance(size)
	}
}

// skipUntil advances to the next rune in set.
func (p *position) skipUntil(set string) {
	for !p.done() {
		r, size := utf8.DecodeRuneInString(p.rest())
		if strings.ContainsRune(set, r) {
			return
		}
		p.advance(size)
	}
}

// locate rewrites the location of a move error, whose offsets are relative
// to the move, into line and column of the whole text.
func (p *position) locate(err error, file string) error {
	var pe *errs.ParseError
	if !errors.As(err, &pe) {
		return &errs.ParseError{Err: err, File: file, Line: p.line, Column: p.col, Offset: p.offset}
	}

	at := *p
	at.advance(pe.Offset)
	located := &errs.ParseError{
		Err:      pe.Err,
		File:     file,
		Line:     at.line,
		Column:   at.col,
		Offset:   at.offset,
		Expected: pe.Expected,
		Got:      pe.Got,
	}
	if errors.Is(err, errs.ErrNoMatchingShape) && !errors.Is(pe.Err, errs.ErrNoMatchingShape) {
		return fmt.Errorf("%w at %d:%d: %w", errs.ErrNoMatchingShape, p.line, p.col, located)
	}
	return located
}
