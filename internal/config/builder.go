package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithFormat sets the output format.
func (b *ConfigBuilder) WithFormat(format Format) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithColor sets the colour mode for diagnostics.
func (b *ConfigBuilder) WithColor(mode ColorMode) *ConfigBuilder {
	b.cfg.Output.Color = mode
	return b
}

// WithWorkers sets the number of parallel workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithNormalizeWidth enables width folding of record text.
func (b *ConfigBuilder) WithNormalizeWidth(enabled bool) *ConfigBuilder {
	b.cfg.NormalizeWidth = enabled
	return b
}

// WithKeepGoing makes record parsing continue past bad moves.
func (b *ConfigBuilder) WithKeepGoing(enabled bool) *ConfigBuilder {
	b.cfg.KeepGoing = enabled
	return b
}

// WithDetectDuplicates enables duplicate record detection.
func (b *ConfigBuilder) WithDetectDuplicates(enabled bool) *ConfigBuilder {
	b.cfg.DetectDuplicates = enabled
	return b
}

// WithListen sets the HTTP listen address.
func (b *ConfigBuilder) WithListen(addr string) *ConfigBuilder {
	b.cfg.Listen = addr
	return b
}

// WithCacheSize sets the number of decoded moves the server keeps.
func (b *ConfigBuilder) WithCacheSize(n int) *ConfigBuilder {
	b.cfg.CacheSize = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
