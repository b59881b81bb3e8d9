// Package batch coalesces concurrently arriving single-item requests into
// bounded batches and drives exactly one backend call per batch.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
)

var (
	// ErrBackend marks a batch-level inference failure. Every submission in
	// the affected batch receives an error wrapping it.
	ErrBackend = errors.New("inference backend failed")

	// ErrClosed is returned by Submit after Close.
	ErrClosed = errors.New("coalescer is closed")
)

// Flush reasons reported to the OnFlush hook.
const (
	FlushReasonSize    = "size"
	FlushReasonTimeout = "timeout"
	FlushReasonClose   = "close"
)

// Backend runs one batched inference call. The output must be ordered:
// output[i] reports on inputs[i]. A length mismatch is treated as a
// batch-level failure by the Coalescer.
type Backend[I, R any] interface {
	Infer(ctx context.Context, inputs []I) ([]R, error)
}

// Config holds the tunable batching parameters.
type Config struct {
	// MaxBatchSize is the flush threshold. A window holding this many
	// submissions is dispatched immediately.
	MaxBatchSize int
	// BatchWait is how long the first submission in a window waits for
	// company before the window is dispatched anyway.
	BatchWait time.Duration
	// OnFlush, if set, is called after every dispatched batch.
	OnFlush func(size int, reason string, inferenceTime time.Duration, err error)
}

// Coalescer groups individual Submit calls into batches bounded by
// Config.MaxBatchSize and Config.BatchWait, and hands each batch to the
// backend as a single ordered call. One backend call is in flight at a time.
type Coalescer[I, R any] struct {
	backend Backend[I, R]
	cfg     Config

	mu         sync.Mutex // guards window and closed
	window     *window[I, R]
	closed     bool
	dispatchMu sync.Mutex // serializes backend calls
}

type submission[R any] struct {
	done chan outcome[R] // buffered, exactly one write
}

type outcome[R any] struct {
	result R
	err    error
}

// window is the currently accumulating batch plus its flush timer.
type window[I, R any] struct {
	inputs  []I
	subs    []*submission[R]
	timer   *time.Timer
	flushed bool
}

// New validates cfg and returns a Coalescer for the given backend.
func New[I, R any](backend Backend[I, R], cfg Config) (*Coalescer[I, R], error) {
	if backend == nil {
		return nil, errors.New("backend must not be nil")
	}
	if cfg.MaxBatchSize <= 0 {
		return nil, fmt.Errorf("max batch size must be positive, got %d", cfg.MaxBatchSize)
	}
	if cfg.MaxBatchSize > 1 && cfg.BatchWait <= 0 {
		return nil, fmt.Errorf("batch wait must be positive, got %v", cfg.BatchWait)
	}
	return &Coalescer[I, R]{backend: backend, cfg: cfg}, nil
}

// Submit appends input to the current window and blocks until the batch
// containing it has been dispatched and its result slot filled, or until ctx
// is done. When ctx expires first the submission is abandoned but its slot
// stays writable, so the dispatching goroutine never blocks on it.
func (c *Coalescer[I, R]) Submit(ctx context.Context, input I) (R, error) {
	var zero R

	sub := &submission[R]{
		done: make(chan outcome[R], 1),
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return zero, ErrClosed
	}
	w := c.window
	if w == nil {
		w = &window[I, R]{}
		c.window = w
		if c.cfg.MaxBatchSize > 1 {
			// The timer races with a size-triggered detach; the
			// flushed flag makes whichever loses a no-op.
			w.timer = time.AfterFunc(c.cfg.BatchWait, func() {
				c.flush(w, FlushReasonTimeout)
			})
		}
	}
	w.inputs = append(w.inputs, input)
	w.subs = append(w.subs, sub)

	// The filling submission must detach the window before releasing the
	// lock, or a racing Submit could append past MaxBatchSize.
	var inputs []I
	var subs []*submission[R]
	full := len(w.inputs) >= c.cfg.MaxBatchSize
	if full {
		inputs, subs = c.detachLocked(w)
	}
	c.mu.Unlock()

	if full {
		c.dispatch(inputs, subs, FlushReasonSize)
	}

	select {
	case out := <-sub.done:
		return out.result, out.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Close flushes the pending window and fails all subsequent Submit calls.
// Submissions already accepted are still dispatched, never dropped.
func (c *Coalescer[I, R]) Close() {
	c.mu.Lock()
	c.closed = true
	w := c.window
	c.mu.Unlock()

	if w != nil {
		c.flush(w, FlushReasonClose)
	}
}

// flush captures w atomically and dispatches it. It is safe to call multiple
// times for the same window; only the first call performs the dispatch. A
// submission arriving while flush is in progress lands in a fresh window.
func (c *Coalescer[I, R]) flush(w *window[I, R], reason string) {
	c.mu.Lock()
	if w.flushed {
		c.mu.Unlock()
		return
	}
	inputs, subs := c.detachLocked(w)
	c.mu.Unlock()

	c.dispatch(inputs, subs, reason)
}

// detachLocked marks w flushed, stops its timer, and unhooks it so later
// Submit calls open a fresh window. Callers must hold c.mu.
func (c *Coalescer[I, R]) detachLocked(w *window[I, R]) ([]I, []*submission[R]) {
	w.flushed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	if c.window == w {
		c.window = nil
	}
	return w.inputs, w.subs
}

// dispatch hands one detached batch to the backend and delivers the outcome
// to every member.
func (c *Coalescer[I, R]) dispatch(inputs []I, subs []*submission[R], reason string) {
	if len(inputs) == 0 {
		return
	}

	// One in-flight batch at a time bounds backend load.
	c.dispatchMu.Lock()
	defer c.dispatchMu.Unlock()

	start := time.Now()
	results, err := c.backend.Infer(context.Background(), inputs)
	elapsed := time.Since(start)

	if err == nil && len(results) != len(inputs) {
		err = fmt.Errorf("got %d results for %d inputs", len(results), len(inputs))
	}

	if c.cfg.OnFlush != nil {
		c.cfg.OnFlush(len(inputs), reason, elapsed, err)
	}

	if err != nil {
		log.Printf("batch dispatch failed: size=%d reason=%s err=%v", len(inputs), reason, err)
		for _, sub := range subs {
			sub.done <- outcome[R]{err: fmt.Errorf("%w: %v", ErrBackend, err)}
		}
		return
	}

	for i, sub := range subs {
		sub.done <- outcome[R]{result: results[i]}
	}
}
