package main

import (
	"context"
	"io"
	"os"

	"github.com/lgbarn/kiaak-go/internal/config"
	errs "github.com/lgbarn/kiaak-go/internal/errors"
	"github.com/lgbarn/kiaak-go/internal/hashing"
	"github.com/lgbarn/kiaak-go/internal/processing"
	"github.com/lgbarn/kiaak-go/internal/record"
	"github.com/lgbarn/kiaak-go/internal/worker"
)

const stdinName = "-"

// readInputs loads every named file, or stdin when there are none.
func readInputs(files []string, stdin io.Reader) ([]worker.WorkItem, error) {
	if len(files) == 0 {
		files = []string{stdinName}
	}

	items := make([]worker.WorkItem, 0, len(files))
	for i, name := range files {
		var (
			data []byte
			err  error
		)
		if name == stdinName {
			data, err = io.ReadAll(stdin)
			name = "<stdin>"
		} else {
			data, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, errs.Wrapf(err, "reading %s", name)
		}
		items = append(items, worker.WorkItem{Source: string(data), Name: name, Index: i})
	}
	return items, nil
}

// processAllInputs parses every input in parallel and returns the results
// in input order, logging each failure. Inputs not yet started when ctx is
// done are skipped and ctx.Err() is returned.
func processAllInputs(ctx context.Context, cfg *config.Config, files []string, stdin io.Reader) ([]worker.ProcessResult, error) {
	items, err := readInputs(files, stdin)
	if err != nil {
		return nil, err
	}

	opts := record.Options{NormalizeWidth: cfg.NormalizeWidth, KeepGoing: cfg.KeepGoing}
	results, err := worker.Run(ctx, items, cfg.Workers, worker.ParseRecords(opts))
	if err != nil {
		cfg.Logf(config.LevelError, "stopped after %d of %d inputs: %v", len(results), len(items), err)
		return nil, err
	}

	var detector *hashing.DuplicateDetector
	if cfg.DetectDuplicates {
		detector = hashing.NewDuplicateDetector(true)
	}

	for _, r := range results {
		for _, e := range r.Record.Errors {
			cfg.Logf(config.LevelError, "%v", e)
		}
		cfg.Logf(config.LevelDebug, "%s: %d moves", r.Record.Name, len(r.Record.Entries))

		if detector == nil {
			continue
		}
		if first, dup := detector.CheckAndAdd(r.Record.Name, r.Record.Moves()); dup {
			r.Stats.Duplicates++
			cfg.Logf(config.LevelInfo, "%s repeats the moves of %s", r.Record.Name, first)
		}
	}
	if detector != nil {
		cfg.Logf(config.LevelInfo, "%d duplicate records, %d distinct move lists",
			detector.DuplicateCount(), detector.UniqueCount())
	}
	return results, nil
}

// totalStats merges the statistics of every result.
func totalStats(results []worker.ProcessResult) *processing.RecordStats {
	total := processing.NewRecordStats()
	for _, r := range results {
		total.Merge(r.Stats)
	}
	return total
}

func anyFailed(results []worker.ProcessResult) bool {
	for _, r := range results {
		if r.Error != nil {
			return true
		}
	}
	return false
}
