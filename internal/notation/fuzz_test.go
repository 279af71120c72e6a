package notation_test

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	fuzz "github.com/google/gofuzz"

	errs "github.com/lgbarn/kiaak-go/internal/errors"
	"github.com/lgbarn/kiaak-go/internal/notation"
)

// moveAlphabet is every symbol a move may contain plus a few strays.
var moveAlphabet = []rune("皇[]水橋或片此無撃裁一二三四五船兵弓車虎馬筆巫将王黒赤" +
	"KLNTZXCMP" + "AEIOUY" + "AUIY" + "Q 9")

// randomMove fills s with up to 12 symbols drawn from moveAlphabet.
func randomMove(s *string, c fuzz.Continue) {
	var b strings.Builder
	for n := c.Intn(13); n > 0; n-- {
		b.WriteRune(moveAlphabet[c.Intn(len(moveAlphabet))])
	}
	*s = b.String()
}

func TestParse_RandomInput(t *testing.T) {
	f := fuzz.NewWithSeed(20240611).NilChance(0).NumElements(200, 200).Funcs(randomMove)

	var inputs []string
	f.Fuzz(&inputs)

	for _, in := range inputs {
		m, rest, err := notation.Parse(in)
		if err != nil {
			if !errors.Is(err, errs.ErrNoMatchingShape) {
				t.Errorf("Parse(%q) err = %v, want ErrNoMatchingShape", in, err)
			}
			var pe *errs.ParseError
			if !errors.As(err, &pe) {
				t.Errorf("Parse(%q) err = %v, want a *ParseError", in, err)
			} else if pe.Offset < 0 || pe.Offset > len(in) {
				t.Errorf("Parse(%q) offset %d outside the input", in, pe.Offset)
			}
			if rest != in {
				t.Errorf("Parse(%q) failed but consumed input, rest %q", in, rest)
			}
			continue
		}
		if !strings.HasSuffix(in, rest) || len(rest) >= len(in) {
			t.Errorf("Parse(%q) = %v with rest %q, not a proper suffix", in, m.Kind, rest)
		}
		if m.Kind.String() == "" {
			t.Errorf("Parse(%q) returned a move without a kind", in)
		}
	}
}

// Random text built from real moves must split back into the same kinds.
// Moves ending in a square are left out: a following square would extend
// them.
func TestParse_ConcatenatedMoves(t *testing.T) {
	var pool []int
	for i, ex := range recordExamples {
		last, _ := utf8.DecodeLastRuneInString(ex.in)
		if last >= utf8.RuneSelf {
			pool = append(pool, i)
		}
	}
	f := fuzz.NewWithSeed(7).NilChance(0).NumElements(1, 6)

	for round := 0; round < 50; round++ {
		var picks []uint8
		f.Fuzz(&picks)

		var text strings.Builder
		var want []notation.Kind
		for _, p := range picks {
			ex := recordExamples[pool[int(p)%len(pool)]]
			text.WriteString(ex.in)
			want = append(want, ex.want.Kind)
		}

		rest := text.String()
		for i, kind := range want {
			m, r, err := notation.Parse(rest)
			if err != nil {
				t.Fatalf("round %d move %d: Parse(%q): %v", round, i, rest, err)
			}
			if m.Kind != kind {
				t.Errorf("round %d move %d: kind %v, want %v", round, i, m.Kind, kind)
			}
			rest = r
		}
		if rest != "" {
			t.Errorf("round %d: leftover %q", round, rest)
		}
	}
}
