package config

import (
	"fmt"

	errs "github.com/lgbarn/kiaak-go/internal/errors"
)

// Format selects how decoded moves and statistics are printed.
type Format int

const (
	FormatText  Format = iota // line:col  Kind  notation
	FormatJSON                // one JSON document
	FormatTable               // aligned table
)

var formatNames = [...]string{"text", "json", "table"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat returns the Format called name.
func ParseFormat(name string) (Format, error) {
	for i, n := range formatNames {
		if n == name {
			return Format(i), nil
		}
	}
	return FormatText, fmt.Errorf("%w: unknown format %q", errs.ErrInvalidConfig, name)
}

// ColorMode controls coloured diagnostics.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // colour when the log is a terminal
	ColorAlways
	ColorNever
)

var colorModeNames = [...]string{"auto", "always", "never"}

func (m ColorMode) String() string {
	if m < 0 || int(m) >= len(colorModeNames) {
		return fmt.Sprintf("ColorMode(%d)", int(m))
	}
	return colorModeNames[m]
}

// ParseColorMode returns the ColorMode called name.
func ParseColorMode(name string) (ColorMode, error) {
	for i, n := range colorModeNames {
		if n == name {
			return ColorMode(i), nil
		}
	}
	return ColorAuto, fmt.Errorf("%w: unknown color mode %q", errs.ErrInvalidConfig, name)
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies how results are printed.
	Format Format

	// Color controls colouring of diagnostics on the log stream.
	Color ColorMode
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format: FormatText,
		Color:  ColorAuto,
	}
}
