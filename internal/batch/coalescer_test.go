package batch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

// echoBackend records every batch it receives and answers input i with
// "res:"+input[i], so each caller can verify index alignment.
type echoBackend struct {
	mu      sync.Mutex
	batches [][]string
	delay   time.Duration
	failOn  string // fail the whole batch if any input contains this
	block   chan struct{}
}

func (b *echoBackend) Infer(ctx context.Context, inputs []string) ([]string, error) {
	if b.block != nil {
		<-b.block
	}
	if b.delay > 0 {
		time.Sleep(b.delay)
	}
	b.mu.Lock()
	batch := make([]string, len(inputs))
	copy(batch, inputs)
	b.batches = append(b.batches, batch)
	b.mu.Unlock()

	results := make([]string, len(inputs))
	for i, in := range inputs {
		if b.failOn != "" && strings.Contains(in, b.failOn) {
			return nil, fmt.Errorf("bad input %q", in)
		}
		results[i] = "res:" + in
	}
	return results, nil
}

func (b *echoBackend) batchSizes() []int {
	b.mu.Lock()
	defer b.mu.Unlock()
	sizes := make([]int, len(b.batches))
	for i, batch := range b.batches {
		sizes[i] = len(batch)
	}
	return sizes
}

func TestNewRejectsBadConfig(t *testing.T) {
	if _, err := New[string, string](nil, Config{MaxBatchSize: 8, BatchWait: time.Millisecond}); err == nil {
		t.Error("expected error for nil backend")
	}
	if _, err := New[string, string](&echoBackend{}, Config{MaxBatchSize: 0, BatchWait: time.Millisecond}); err == nil {
		t.Error("expected error for zero max batch size")
	}
	if _, err := New[string, string](&echoBackend{}, Config{MaxBatchSize: 8}); err == nil {
		t.Error("expected error for zero batch wait")
	}
}

func TestFlushAtMaxBatchSize(t *testing.T) {
	backend := &echoBackend{}
	c, err := New[string, string](backend, Config{MaxBatchSize: 4, BatchWait: 5 * time.Second})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := fmt.Sprintf("item-%d", i)
			got, err := c.Submit(context.Background(), in)
			if err != nil {
				t.Errorf("Submit(%s) failed: %v", in, err)
				return
			}
			if got != "res:"+in {
				t.Errorf("Submit(%s) = %q, want %q", in, got, "res:"+in)
			}
		}(i)
	}
	wg.Wait()

	// Size trigger must fire well before the 5s wait timeout.
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("size-triggered flush took %v", elapsed)
	}
	sizes := backend.batchSizes()
	if len(sizes) != 1 || sizes[0] != 4 {
		t.Errorf("expected one batch of 4, got %v", sizes)
	}
}

func TestFlushOnTimeout(t *testing.T) {
	backend := &echoBackend{}
	c, err := New[string, string](backend, Config{MaxBatchSize: 8, BatchWait: 50 * time.Millisecond})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := fmt.Sprintf("item-%d", i)
			got, err := c.Submit(context.Background(), in)
			if err != nil {
				t.Errorf("Submit(%s) failed: %v", in, err)
				return
			}
			if got != "res:"+in {
				t.Errorf("Submit(%s) = %q, want %q", in, got, "res:"+in)
			}
		}(i)
	}
	wg.Wait()
	elapsed := time.Since(start)

	if elapsed < 40*time.Millisecond {
		t.Errorf("partial batch flushed after %v, before the wait timeout", elapsed)
	}
	if elapsed > time.Second {
		t.Errorf("timeout flush took %v", elapsed)
	}
	sizes := backend.batchSizes()
	if len(sizes) != 1 || sizes[0] != 3 {
		t.Errorf("expected one batch of 3, got %v", sizes)
	}
}

func TestNoLostSubmissions(t *testing.T) {
	const submissions = 1000

	backend := &echoBackend{}
	c, err := New[string, string](backend, Config{MaxBatchSize: 8, BatchWait: 10 * time.Millisecond})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var wg sync.WaitGroup
	outcomes := make([]error, submissions)
	results := make([]string, submissions)
	for i := 0; i < submissions; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], outcomes[i] = c.Submit(context.Background(), fmt.Sprintf("item-%d", i))
		}(i)
	}
	wg.Wait()

	for i := 0; i < submissions; i++ {
		if outcomes[i] != nil {
			t.Fatalf("submission %d failed: %v", i, outcomes[i])
		}
		want := fmt.Sprintf("res:item-%d", i)
		if results[i] != want {
			t.Fatalf("submission %d got %q, want %q", i, results[i], want)
		}
	}

	total := 0
	for _, size := range backend.batchSizes() {
		if size < 1 || size > 8 {
			t.Errorf("batch size %d outside [1, 8]", size)
		}
		total += size
	}
	if total != submissions {
		t.Errorf("backend saw %d items across batches, want %d", total, submissions)
	}
}

func TestBatchNeverExceedsMaxSize(t *testing.T) {
	const (
		submissions  = 4000
		maxBatchSize = 2
	)

	// A long wait makes nearly every flush size-triggered, which is where
	// contention on the filling submission is highest.
	backend := &echoBackend{}
	c, err := New[string, string](backend, Config{MaxBatchSize: maxBatchSize, BatchWait: time.Second})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < submissions; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := c.Submit(context.Background(), fmt.Sprintf("item-%d", i)); err != nil {
				t.Errorf("submission %d failed: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	total := 0
	for _, size := range backend.batchSizes() {
		if size > maxBatchSize {
			t.Errorf("batch of %d exceeds MaxBatchSize=%d", size, maxBatchSize)
		}
		if size < 1 {
			t.Errorf("empty batch reached the backend")
		}
		total += size
	}
	if total != submissions {
		t.Errorf("backend saw %d items across batches, want %d", total, submissions)
	}
}

func TestBackendFailureBroadcastAndIsolation(t *testing.T) {
	backend := &echoBackend{failOn: "poison"}
	c, err := New[string, string](backend, Config{MaxBatchSize: 4, BatchWait: 20 * time.Millisecond})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// Batch A contains the poison input; every member must see ErrBackend.
	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := fmt.Sprintf("item-%d", i)
			if i == 2 {
				in = "poison"
			}
			_, errs[i] = c.Submit(context.Background(), in)
		}(i)
	}
	wg.Wait()
	for i, err := range errs {
		if !errors.Is(err, ErrBackend) {
			t.Errorf("batch A member %d: got %v, want ErrBackend", i, err)
		}
	}

	// A later, independent window must be unaffected.
	got, err := c.Submit(context.Background(), "clean")
	if err != nil {
		t.Fatalf("batch B failed: %v", err)
	}
	if got != "res:clean" {
		t.Errorf("batch B got %q, want %q", got, "res:clean")
	}
}

func TestMaxBatchSizeOneDispatchesImmediately(t *testing.T) {
	backend := &echoBackend{}
	c, err := New[string, string](backend, Config{MaxBatchSize: 1})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	start := time.Now()
	got, err := c.Submit(context.Background(), "solo")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if got != "res:solo" {
		t.Errorf("got %q, want %q", got, "res:solo")
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("degenerate batch waited %v, want no added latency", elapsed)
	}
}

func TestSubmitHonorsContextCancellation(t *testing.T) {
	backend := &echoBackend{block: make(chan struct{})}
	c, err := New[string, string](backend, Config{MaxBatchSize: 1})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := c.Submit(ctx, "abandoned")
		done <- err
	}()

	// Give the submission time to reach the blocked backend, then give up.
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("got %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Submit did not return after cancellation")
	}

	// Releasing the backend must not panic: the abandoned submission's
	// buffered slot is still writable.
	close(backend.block)
	time.Sleep(20 * time.Millisecond)
}

type shortBackend struct{}

func (shortBackend) Infer(ctx context.Context, inputs []string) ([]string, error) {
	return inputs[:len(inputs)-1], nil // one result short
}

func TestResultCountMismatchIsBackendError(t *testing.T) {
	c, err := New[string, string](shortBackend{}, Config{MaxBatchSize: 2, BatchWait: 10 * time.Millisecond})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = c.Submit(context.Background(), fmt.Sprintf("item-%d", i))
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if !errors.Is(err, ErrBackend) {
			t.Errorf("member %d: got %v, want ErrBackend", i, err)
		}
	}
}

func TestSubmitAfterClose(t *testing.T) {
	backend := &echoBackend{}
	c, err := New[string, string](backend, Config{MaxBatchSize: 8, BatchWait: time.Hour})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// A pending submission must still be served when Close flushes.
	done := make(chan error, 1)
	go func() {
		_, err := c.Submit(context.Background(), "pending")
		done <- err
	}()
	time.Sleep(20 * time.Millisecond)
	c.Close()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("pending submission failed after Close: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("pending submission not served by Close")
	}

	if _, err := c.Submit(context.Background(), "late"); !errors.Is(err, ErrClosed) {
		t.Errorf("Submit after Close: got %v, want ErrClosed", err)
	}
}

func TestOnFlushHook(t *testing.T) {
	backend := &echoBackend{}
	var (
		mu      sync.Mutex
		reasons []string
		sizes   []int
	)
	c, err := New[string, string](backend, Config{
		MaxBatchSize: 2,
		BatchWait:    20 * time.Millisecond,
		OnFlush: func(size int, reason string, _ time.Duration, err error) {
			mu.Lock()
			defer mu.Unlock()
			sizes = append(sizes, size)
			reasons = append(reasons, reason)
		},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = c.Submit(context.Background(), fmt.Sprintf("a-%d", i))
		}(i)
	}
	wg.Wait()
	if _, err := c.Submit(context.Background(), "straggler"); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(reasons) != 2 {
		t.Fatalf("expected 2 flushes, got %d (%v)", len(reasons), reasons)
	}
	if reasons[0] != FlushReasonSize || sizes[0] != 2 {
		t.Errorf("first flush: got reason=%s size=%d, want size/2", reasons[0], sizes[0])
	}
	if reasons[1] != FlushReasonTimeout || sizes[1] != 1 {
		t.Errorf("second flush: got reason=%s size=%d, want timeout/1", reasons[1], sizes[1])
	}
}
