package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	errs "github.com/lgbarn/kiaak-go/internal/errors"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.Format != FormatText {
		t.Errorf("Format = %v, want text", cfg.Format)
	}
	if cfg.Color != ColorAuto {
		t.Errorf("Color = %v, want auto", cfg.Color)
	}
}

func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.Workers != runtime.NumCPU() {
		t.Errorf("Workers = %d, want %d", cfg.Workers, runtime.NumCPU())
	}
	if cfg.Listen != ":8080" {
		t.Errorf("Listen = %q, want :8080", cfg.Listen)
	}
	if cfg.CacheSize != 1024 {
		t.Errorf("CacheSize = %d, want 1024", cfg.CacheSize)
	}
	if cfg.NormalizeWidth || cfg.KeepGoing {
		t.Error("record options should be off by default")
	}
	if cfg.OutputFile != os.Stdout || cfg.LogFile != os.Stderr {
		t.Error("default streams should be stdout and stderr")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range []Format{FormatText, FormatJSON, FormatTable} {
		got, err := ParseFormat(f.String())
		if err != nil || got != f {
			t.Errorf("ParseFormat(%q) = %v, %v", f.String(), got, err)
		}
	}
	if _, err := ParseFormat("pgn"); !errors.Is(err, errs.ErrInvalidConfig) {
		t.Errorf("ParseFormat(pgn) err = %v, want ErrInvalidConfig", err)
	}
}

func TestParseColorMode(t *testing.T) {
	for _, m := range []ColorMode{ColorAuto, ColorAlways, ColorNever} {
		got, err := ParseColorMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseColorMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseColorMode("sometimes"); !errors.Is(err, errs.ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"negative workers", func(c *Config) { c.Workers = -1 }},
		{"unknown format", func(c *Config) { c.Output.Format = Format(9) }},
		{"unknown color", func(c *Config) { c.Output.Color = ColorMode(-1) }},
		{"empty listen", func(c *Config) { c.Listen = "" }},
		{"negative cache size", func(c *Config) { c.CacheSize = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, errs.ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	src := `
Verbosity = 2
Workers = 3
KeepGoing = true
DetectDuplicates = true
Format = "json"
Color = "never"
`
	cfg := NewConfig()
	if err := Decode(strings.NewReader(src), "kiaak.toml", cfg); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if cfg.Verbosity != 2 || cfg.Workers != 3 || !cfg.KeepGoing || !cfg.DetectDuplicates {
		t.Errorf("decoded %+v", cfg)
	}
	if cfg.Output.Format != FormatJSON || cfg.Output.Color != ColorNever {
		t.Errorf("Output = %+v", cfg.Output)
	}
	// Absent keys keep their values.
	if cfg.Listen != ":8080" || cfg.NormalizeWidth {
		t.Errorf("absent keys changed: Listen=%q NormalizeWidth=%v", cfg.Listen, cfg.NormalizeWidth)
	}
}

func TestDecode_Rejects(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown key", "Depth = 4\n"},
		{"unknown format", "Format = \"pgn\"\n"},
		{"negative workers", "Workers = -2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Decode(strings.NewReader(tt.src), "bad.toml", NewConfig())
			if !errors.Is(err, errs.ErrInvalidConfig) {
				t.Errorf("Decode() = %v, want ErrInvalidConfig", err)
			}
			if err != nil && !strings.Contains(err.Error(), "bad.toml") {
				t.Errorf("error %q does not name the file", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kiaak.toml")
	if err := os.WriteFile(path, []byte("Listen = \"127.0.0.1:9000\"\nNormalizeWidth = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := NewConfig()
	if err := Load(path, cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Listen != "127.0.0.1:9000" || !cfg.NormalizeWidth {
		t.Errorf("loaded Listen=%q NormalizeWidth=%v", cfg.Listen, cfg.NormalizeWidth)
	}

	if err := Load(filepath.Join(t.TempDir(), "missing.toml"), cfg); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

func TestLogf(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfigBuilder().WithLog(&buf).WithVerbosity(LevelInfo).Build()

	cfg.Logf(LevelError, "bad %s", "move")
	cfg.Logf(LevelInfo, "%d files", 2)
	cfg.Logf(LevelDebug, "hidden")

	want := "error: bad move\ninfo: 2 files\n"
	if buf.String() != want {
		t.Errorf("log = %q, want %q", buf.String(), want)
	}
}

func TestLogf_Color(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfigBuilder().WithLog(&buf).WithColor(ColorAlways).Build()
	cfg.Logf(LevelError, "x")
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("log %q has no colour escape", buf.String())
	}

	buf.Reset()
	cfg.Output.Color = ColorAuto
	cfg.Logf(LevelError, "x")
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("a buffer is not a terminal, got %q", buf.String())
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	cfg := NewConfigBuilder().
		WithFormat(FormatTable).
		WithWorkers(2).
		WithNormalizeWidth(true).
		WithKeepGoing(true).
		WithListen(":9999").
		WithDetectDuplicates(true).
		Build()

	if cfg.Output.Format != FormatTable {
		t.Errorf("Format = %v, want table", cfg.Output.Format)
	}
	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, want 2", cfg.Workers)
	}
	if !cfg.NormalizeWidth || !cfg.KeepGoing {
		t.Error("record options not set")
	}
	if !cfg.DetectDuplicates {
		t.Error("DetectDuplicates not set")
	}
	if cfg.Listen != ":9999" {
		t.Errorf("Listen = %q", cfg.Listen)
	}
}
