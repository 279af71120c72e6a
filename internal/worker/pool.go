// Package worker provides a worker pool for parsing records in parallel.
package worker

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/kiaak-go/internal/processing"
	"github.com/lgbarn/kiaak-go/internal/record"
)

// WorkItem represents a record body to be parsed.
type WorkItem struct {
	Source string // record text
	Name   string // file name for error messages
	Index  int    // Original index for tracking
}

// ProcessResult represents the result of parsing one record.
type ProcessResult struct {
	Record *record.Record
	Stats  *processing.RecordStats
	Index  int
	Error  error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a pool of workers for parallel record parsing. Items are
// queued with TrySubmit; Close waits for the workers and closes Results.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPoolWithOptions creates a pool that runs processFunc on every item.
// It starts with 1 worker and a buffer of 10 items.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// TrySubmit attempts to submit a work item without blocking.
// Returns false if the work channel is full or the pool is stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if atomic.LoadInt32(&p.stopFlag) != 0 {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// ParseRecords returns a ProcessFunc that parses each item as a record body
// and analyzes it.
func ParseRecords(opts record.Options) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		o := opts
		o.File = item.Name
		rec, err := record.Parse(item.Source, o)
		return ProcessResult{
			Record: rec,
			Stats:  processing.Analyze(rec),
			Index:  item.Index,
			Error:  err,
		}
	}
}

// Ordered drains results and returns them sorted by Index.
func Ordered(results <-chan ProcessResult) []ProcessResult {
	var out []ProcessResult
	for r := range results {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// Run processes items on numWorkers workers and returns the results in
// submission order. Once ctx is done no further item is started; Run then
// returns the results finished so far together with ctx.Err().
func Run(ctx context.Context, items []WorkItem, numWorkers int, processFunc ProcessFunc) ([]ProcessResult, error) {
	var pool *Pool
	pool = NewPoolWithOptions(func(item WorkItem) ProcessResult {
		res := processFunc(item)
		if ctx.Err() != nil {
			pool.Stop()
		}
		return res
	}, WithWorkers(numWorkers), WithBufferSize(len(items)))
	pool.Start()

	go func() {
		defer pool.Close()
		for _, item := range items {
			if ctx.Err() != nil {
				pool.Stop()
			}
			// The buffer holds every item, so only a stopped pool refuses one.
			if !pool.TrySubmit(item) {
				return
			}
		}
	}()

	results := Ordered(pool.Results())
	if pool.IsStopped() {
		return results, ctx.Err()
	}
	return results, nil
}
