package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lgbarn/kiaak-go/internal/config"
	"github.com/lgbarn/kiaak-go/internal/notation"
	"github.com/lgbarn/kiaak-go/internal/output"
	"github.com/lgbarn/kiaak-go/internal/record"
	"github.com/lgbarn/kiaak-go/internal/server"
)

func (a *app) newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse MOVE...",
		Short: "Decode each argument as exactly one move",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.buildConfig(cmd)
			if err != nil {
				return err
			}
			return runParse(cfg, args)
		},
	}
}

// runParse decodes each argument. Entries are numbered by argument, so
// the location column of the output reads "argument:1".
func runParse(cfg *config.Config, args []string) error {
	rec := &record.Record{}
	for i, arg := range args {
		text := arg
		if cfg.NormalizeWidth {
			text = record.Normalize(text)
		}
		m, err := notation.ParseExact(text)
		if err != nil {
			cfg.Logf(config.LevelError, "argument %d: %v", i+1, err)
			rec.Errors = append(rec.Errors, err)
			continue
		}
		rec.Entries = append(rec.Entries, record.Entry{Move: m, Text: text, Line: i + 1, Column: 1})
	}

	if err := writeRecords(cfg, rec); err != nil {
		return err
	}
	if len(rec.Errors) > 0 {
		return errFailures
	}
	return nil
}

func (a *app) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [FILE...]",
		Short: "Parse record bodies and print their moves (stdin when no file is named)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.buildConfig(cmd)
			if err != nil {
				return err
			}
			ctx, stop := interruptContext(cmd)
			defer stop()
			results, err := processAllInputs(ctx, cfg, args, a.stdin)
			if err != nil {
				return err
			}

			recs := make([]*record.Record, len(results))
			for i, r := range results {
				recs[i] = r.Record
			}
			if err := writeRecords(cfg, recs...); err != nil {
				return err
			}

			st := totalStats(results)
			cfg.Logf(config.LevelInfo, "%d records, %d moves, %d errors", st.Records, st.Moves, st.Errors)
			if anyFailed(results) {
				return errFailures
			}
			return nil
		},
	}
}

func (a *app) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [FILE...]",
		Short: "Print aggregate statistics for record bodies",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.buildConfig(cmd)
			if err != nil {
				return err
			}
			ctx, stop := interruptContext(cmd)
			defer stop()
			results, err := processAllInputs(ctx, cfg, args, a.stdin)
			if err != nil {
				return err
			}

			w, err := output.NewWriter(cfg.OutputFile, cfg)
			if err != nil {
				return err
			}
			if err := w.WriteStats(totalStats(results)); err != nil {
				return err
			}
			if err := w.Close(); err != nil {
				return err
			}
			if anyFailed(results) {
				return errFailures
			}
			return nil
		},
	}
}

func (a *app) newServeCmd() *cobra.Command {
	var (
		listen    string
		cacheSize int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the parser over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.buildConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("listen") {
				cfg.Listen = listen
			}
			if cmd.Flags().Changed("cache-size") {
				cfg.CacheSize = cacheSize
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			ctx, stop := interruptContext(cmd)
			defer stop()
			return server.Run(ctx, cfg)
		},
	}
	cmd.Flags().StringVar(&listen, "listen", ":8080", "Address to listen on")
	cmd.Flags().IntVar(&cacheSize, "cache-size", 1024, "Parsed moves to cache, 0 to disable")
	return cmd
}

// interruptContext returns the command's context, cancelled on SIGINT or
// SIGTERM.
func interruptContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
}

func writeRecords(cfg *config.Config, recs ...*record.Record) error {
	w, err := output.NewWriter(cfg.OutputFile, cfg)
	if err != nil {
		return err
	}
	for _, rec := range recs {
		if err := w.WriteRecord(rec); err != nil {
			return err
		}
	}
	return w.Close()
}
