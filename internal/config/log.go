package config

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Log levels for Logf. A message is written when its level is at most
// Verbosity.
const (
	LevelError = 0
	LevelInfo  = 1
	LevelDebug = 2
)

var levelPrefix = [...]struct {
	text  string
	color color.Attribute
}{
	LevelError: {"error", color.FgRed},
	LevelInfo:  {"info", color.FgCyan},
	LevelDebug: {"debug", color.FgHiBlack},
}

// Logf writes a diagnostic line to LogFile.
func (c *Config) Logf(level int, format string, args ...any) {
	if c.LogFile == nil || level > c.Verbosity {
		return
	}
	if level < LevelError {
		level = LevelError
	}
	if level > LevelDebug {
		level = LevelDebug
	}

	prefix := levelPrefix[level].text
	if c.UseColor() {
		p := color.New(levelPrefix[level].color)
		p.EnableColor()
		prefix = p.Sprint(prefix)
	}
	fmt.Fprintf(c.LogFile, "%s: %s\n", prefix, fmt.Sprintf(format, args...))
}

// UseColor reports whether diagnostics should be coloured.
func (c *Config) UseColor() bool {
	switch c.Output.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := c.LogFile.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
