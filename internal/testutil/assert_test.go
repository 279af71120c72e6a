package testutil

import (
	"errors"
	"fmt"
	"testing"
)

// Failure paths cannot be observed without mocking *testing.T, so these
// cover the passing paths and the message formatter.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "KE", "KE")
	AssertEqual(t, []int{3, 4, 5}, []int{3, 4, 5})
	AssertEqual(t, nil, nil)
	AssertEqual(t, Size(4), Size(4), "pointers compare by value")
}

func TestAssertErrors_Success(t *testing.T) {
	base := errors.New("base")
	AssertNoError(t, nil)
	AssertError(t, base, "expected error from %s", "decoder")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", base), base)
}

func TestAssertStrings_Success(t *testing.T) {
	AssertContains(t, "水或此無", "此無")
	AssertContains(t, "test", "")
	AssertNotContains(t, "橋四", "此無")
}

func TestAssertBool_Success(t *testing.T) {
	AssertTrue(t, len("皇") == 3)
	AssertFalse(t, len("KE") == 3)
}

func TestAssertNil_Success(t *testing.T) {
	var p *int
	AssertNil(t, p)
	AssertNil(t, nil)
	AssertNotNil(t, Size(0))
	AssertNotNil(t, []int{1})
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []any
		want string
	}{
		{"no args", nil, ""},
		{"empty args", []any{}, ""},
		{"single string", []any{"hello"}, "hello"},
		{"single int", []any{42}, "42"},
		{"format string", []any{"square %s", "KE"}, "square KE"},
		{"format multiple", []any{"%s %d %s", "test", 42, "end"}, "test 42 end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
