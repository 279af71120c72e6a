package testutil

import (
	"testing"

	"github.com/lgbarn/kiaak-go/internal/cetkaik"
	"github.com/lgbarn/kiaak-go/internal/notation"
)

// Prof returns a pointer to p, for building expected moves.
func Prof(p cetkaik.Profession) *cetkaik.Profession {
	return &p
}

// Sq parses a square such as "KE" and returns a pointer to it.
// It panics on an invalid square.
func Sq(s string) *cetkaik.Coord {
	c := cetkaik.MustParseCoord(s)
	return &c
}

// At parses a square such as "KE". It panics on an invalid square.
func At(s string) cetkaik.Coord {
	return cetkaik.MustParseCoord(s)
}

// Size returns a pointer to a stick size.
func Size(n int) *int {
	return &n
}

// Stick builds a stick-throw outcome. A negative size means unstated.
func Stick(size int, successful bool) *notation.StickThrow {
	st := &notation.StickThrow{Successful: successful}
	if size >= 0 {
		st.Size = Size(size)
	}
	return st
}

// MustParseMove decodes s as exactly one move.
// It calls t.Fatal if decoding fails or leaves input behind.
func MustParseMove(t *testing.T, s string) notation.Move {
	t.Helper()
	m, err := notation.ParseExact(s)
	if err != nil {
		t.Fatalf("failed to parse move %q: %v", s, err)
	}
	return m
}
