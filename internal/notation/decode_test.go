package notation

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/kiaak-go/internal/cetkaik"
	errs "github.com/lgbarn/kiaak-go/internal/errors"
)

func TestParseWaterStickTableIsNotShared(t *testing.T) {
	first, _, err := parseWaterStick("水三")
	if err != nil {
		t.Fatalf("parseWaterStick: %v", err)
	}
	*first.Size = 99

	second, _, err := parseWaterStick("水三")
	if err != nil {
		t.Fatalf("parseWaterStick: %v", err)
	}
	if *second.Size != 3 {
		t.Errorf("size = %d after mutating an earlier result, want 3", *second.Size)
	}
}

func TestParseWaterStickIsGreedy(t *testing.T) {
	// Three symbols are taken before the table lookup, so a legal prefix
	// does not rescue a longer run.
	_, rest, err := parseWaterStick("水五四")
	if !errors.Is(err, errs.ErrMalformedStickThrow) {
		t.Fatalf("err = %v, want malformed stick throw", err)
	}
	if rest != "水五四" {
		t.Errorf("rest = %q, want input back", rest)
	}

	// Anything past the third symbol is left alone.
	got, rest, err := parseWaterStick("水或此無此")
	if err != nil {
		t.Fatalf("parseWaterStick: %v", err)
	}
	if diff := cmp.Diff(StickThrow{Size: nil, Successful: false}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if rest != "此" {
		t.Errorf("rest = %q, want %q", rest, "此")
	}
}

func TestParseBridgeStickSize(t *testing.T) {
	tests := []struct {
		in   string
		want *int
		rest string
	}{
		{"橋或", nil, ""},
		{"橋無此無", size(0), "此無"},
		{"橋五水三", size(5), "水三"},
	}
	for _, tt := range tests {
		got, rest, err := parseBridgeStickSize(tt.in)
		if err != nil {
			t.Errorf("parseBridgeStickSize(%q): %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("parseBridgeStickSize(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
		if rest != tt.rest {
			t.Errorf("parseBridgeStickSize(%q) rest = %q, want %q", tt.in, rest, tt.rest)
		}
	}

	if _, _, err := parseBridgeStickSize("橋此"); !errors.Is(err, errs.ErrUnexpectedSymbol) {
		t.Errorf("橋此: err = %v, want unexpected symbol", err)
	}
}

func TestParseSquareDoesNotBacktrack(t *testing.T) {
	// "KAE" could be read as K+A followed by a stray E, but the row run is
	// greedy and the two-letter row AE does not exist.
	_, _, err := parseSquare("KAE")
	if !errors.Is(err, errs.ErrInvalidCoordinate) {
		t.Fatalf("err = %v, want invalid coordinate", err)
	}

	c, rest, err := parseSquare("KAIU")
	if err != nil {
		t.Fatalf("parseSquare: %v", err)
	}
	if c != (cetkaik.Coord{Row: cetkaik.AI, Column: cetkaik.K}) || rest != "U" {
		t.Errorf("parseSquare(KAIU) = %v, %q", c, rest)
	}
}

func TestParseColor(t *testing.T) {
	for sym, want := range colorSymbols {
		got, rest, err := parseColor(string(sym) + "弓")
		if err != nil || got != want || rest != "弓" {
			t.Errorf("parseColor(%q) = %v, %q, %v", string(sym), got, rest, err)
		}
	}
	if _, _, err := parseColor("K"); err == nil {
		t.Error("parseColor accepted a column symbol")
	}
}

func TestDeepestFailureWins(t *testing.T) {
	_, _, err := Parse("ZO馬ZIZ")
	var pe *errs.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want a ParseError inside", err)
	}
	// The step shapes reach the final, rowless square.
	if want := len("ZO馬ZIZ"); pe.Offset != want {
		t.Errorf("offset = %d, want %d", pe.Offset, want)
	}
	if pe.Expected != "row symbol" {
		t.Errorf("expected = %q, want %q", pe.Expected, "row symbol")
	}
}
