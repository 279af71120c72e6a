package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lgbarn/kiaak-go/internal/config"
	errs "github.com/lgbarn/kiaak-go/internal/errors"
)

// options holds the persistent flags.
type options struct {
	configFile     string
	format         string
	workers        int
	normalizeWidth bool
	keepGoing      bool
	dedupe         bool
	logFile        string
	verbose        int
	quiet          bool
	noColor        bool
}

func (o *options) register(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVar(&o.configFile, "config", "", "Read settings from a TOML file")
	f.StringVar(&o.format, "format", "text", "Output format: text, json or table")
	f.IntVar(&o.workers, "workers", 0, "Number of files parsed in parallel (default: number of CPUs)")
	f.BoolVar(&o.normalizeWidth, "normalize-width", false, "Fold full-width letters and brackets before parsing")
	f.BoolVar(&o.keepGoing, "keep-going", false, "Skip moves that fail to parse instead of stopping")
	f.BoolVar(&o.dedupe, "dedupe", false, "Report records whose moves repeat an earlier record")
	f.StringVar(&o.logFile, "log", "", "Write diagnostics to FILE instead of stderr")
	f.CountVarP(&o.verbose, "verbose", "v", "More diagnostics; repeat for running commentary")
	f.BoolVarP(&o.quiet, "quiet", "q", false, "Report errors only")
	f.BoolVar(&o.noColor, "no-color", false, "Disable coloured diagnostics")
}

// buildConfig layers defaults, the config file and the flags that were set
// on the command line, in that order.
func (a *app) buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.SetOutput(a.stdout)
	cfg.LogFile = a.stderr

	o := &a.opts
	if o.configFile != "" {
		if err := config.Load(o.configFile, cfg); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		format, err := config.ParseFormat(o.format)
		if err != nil {
			return nil, err
		}
		cfg.Output.Format = format
	}
	if flags.Changed("workers") {
		cfg.Workers = o.workers
	}
	if flags.Changed("normalize-width") {
		cfg.NormalizeWidth = o.normalizeWidth
	}
	if flags.Changed("keep-going") {
		cfg.KeepGoing = o.keepGoing
	}
	if flags.Changed("dedupe") {
		cfg.DetectDuplicates = o.dedupe
	}
	if o.verbose > 0 {
		cfg.Verbosity = config.LevelInfo + o.verbose
	}
	if o.quiet {
		cfg.Verbosity = config.LevelError
	}
	if o.noColor {
		cfg.Output.Color = config.ColorNever
	}

	if o.logFile != "" {
		file, err := os.OpenFile(o.logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			return nil, errs.Wrapf(err, "opening log file %s", o.logFile)
		}
		cfg.LogFile = file
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
