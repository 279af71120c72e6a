// Package config provides configuration for kiaak.
package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"reflect"
	"runtime"

	"github.com/naoina/toml"

	errs "github.com/lgbarn/kiaak-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=errors only, 1=summary, 2=running commentary

	// Record parsing
	NormalizeWidth bool
	KeepGoing      bool

	// DetectDuplicates reports records whose moves repeat an earlier one.
	DetectDuplicates bool

	// Parallel processing
	Workers int

	// HTTP API
	Listen    string
	CacheSize int // decoded moves kept by the server; 0 disables the cache

	Output OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Workers:    runtime.NumCPU(),
		Listen:     ":8080",
		CacheSize:  1024,
		Output:     *NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer results are printed to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", errs.ErrInvalidConfig, c.Workers)
	}
	if _, err := ParseFormat(c.Output.Format.String()); err != nil {
		return err
	}
	if c.Output.Color < ColorAuto || c.Output.Color > ColorNever {
		return fmt.Errorf("%w: unknown color mode %d", errs.ErrInvalidConfig, c.Output.Color)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("%w: cache size must not be negative, got %d", errs.ErrInvalidConfig, c.CacheSize)
	}
	if c.Listen == "" {
		return fmt.Errorf("%w: listen address is empty", errs.ErrInvalidConfig)
	}
	return nil
}

// fileConfig is the TOML view of Config. Keys are the Go field names.
type fileConfig struct {
	Verbosity        int
	NormalizeWidth   bool
	KeepGoing        bool
	DetectDuplicates bool
	Workers          int
	Listen           string
	CacheSize        int
	Format           string
	Color            string
}

var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("%w: field '%s' is not defined", errs.ErrInvalidConfig, field)
	},
}

// Load reads the TOML file at path over cfg. Keys missing from the file keep
// their current values.
func Load(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return errs.Wrapf(err, "opening config %s", path)
	}
	defer f.Close()

	return Decode(f, path, cfg)
}

// Decode reads TOML from r over cfg. name is used in error messages.
func Decode(r io.Reader, name string, cfg *Config) error {
	fc := fileConfig{
		Verbosity:        cfg.Verbosity,
		NormalizeWidth:   cfg.NormalizeWidth,
		KeepGoing:        cfg.KeepGoing,
		DetectDuplicates: cfg.DetectDuplicates,
		Workers:          cfg.Workers,
		Listen:           cfg.Listen,
		CacheSize:        cfg.CacheSize,
		Format:           cfg.Output.Format.String(),
		Color:            cfg.Output.Color.String(),
	}
	if err := tomlSettings.NewDecoder(bufio.NewReader(r)).Decode(&fc); err != nil {
		// LineError does not unwrap; keep the sentinel reachable.
		return fmt.Errorf("%w: %s, %v", errs.ErrInvalidConfig, name, err)
	}

	format, err := ParseFormat(fc.Format)
	if err != nil {
		return errs.Wrap(err, name)
	}
	color, err := ParseColorMode(fc.Color)
	if err != nil {
		return errs.Wrap(err, name)
	}

	cfg.Verbosity = fc.Verbosity
	cfg.NormalizeWidth = fc.NormalizeWidth
	cfg.KeepGoing = fc.KeepGoing
	cfg.DetectDuplicates = fc.DetectDuplicates
	cfg.Workers = fc.Workers
	cfg.Listen = fc.Listen
	cfg.CacheSize = fc.CacheSize
	cfg.Output.Format = format
	cfg.Output.Color = color
	return errs.Wrap(cfg.Validate(), name)
}
