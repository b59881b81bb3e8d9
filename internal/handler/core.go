// Package handler implements the gRPC detector services on top of the
// fetch, batch, cache, and inference layers.
package handler

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/foden303/moderation/internal/batch"
	"github.com/foden303/moderation/internal/cache"
	"github.com/foden303/moderation/internal/fetch"
	"github.com/foden303/moderation/internal/metrics"
)

// probeTimeout bounds the canary inference used by health checks.
const probeTimeout = 5 * time.Second

// Service ties a fetcher, a coalescer, and the verdict cache together for one
// modality. It is the shared orchestration core behind both detector servers.
type Service[I, R any] struct {
	modality string
	fetcher  *fetch.Fetcher[I]
	coal     *batch.Coalescer[I, R]
	cache    *cache.Cache
	keyOf    func(I) string
}

// NewService creates a Service. keyOf must return a stable content digest for
// an input; it is used to build verdict cache keys. cache may be nil.
func NewService[I, R any](
	modality string,
	fetcher *fetch.Fetcher[I],
	coal *batch.Coalescer[I, R],
	c *cache.Cache,
	keyOf func(I) string,
) *Service[I, R] {
	return &Service[I, R]{
		modality: modality,
		fetcher:  fetcher,
		coal:     coal,
		cache:    c,
		keyOf:    keyOf,
	}
}

// Detect runs one resolved input through the verdict cache and the coalescer.
func (s *Service[I, R]) Detect(ctx context.Context, input I) (R, error) {
	var zero R

	key := cache.Key(s.modality, s.keyOf(input))

	var cached R
	hit, err := s.cache.GetVerdict(ctx, key, &cached)
	if err != nil {
		// Cache trouble must not fail the request.
		log.Printf("verdict cache lookup failed key=%s: %v", key, err)
	}
	metrics.RecordCacheLookup(s.modality, hit)
	if hit {
		return cached, nil
	}

	result, err := s.coal.Submit(ctx, input)
	if err != nil {
		return zero, err
	}

	if err := s.cache.SetVerdict(ctx, key, result); err != nil {
		log.Printf("verdict cache store failed key=%s: %v", key, err)
	}

	return result, nil
}

// DetectBytes decodes inline content and runs it through Detect.
func (s *Service[I, R]) DetectBytes(ctx context.Context, data []byte, contentType string) (R, error) {
	var zero R

	input, err := s.fetcher.FromBytes(data, contentType)
	if err != nil {
		s.recordFetchFailure(err)
		return zero, err
	}

	return s.Detect(ctx, input)
}

// DetectURL downloads and decodes a remote input and runs it through Detect.
func (s *Service[I, R]) DetectURL(ctx context.Context, url string) (R, error) {
	var zero R

	input, err := s.fetcher.FromURL(ctx, url)
	if err != nil {
		s.recordFetchFailure(err)
		return zero, err
	}

	return s.Detect(ctx, input)
}

// Outcome is the per-item result of a batch call. Exactly one of Result or
// Err is meaningful.
type Outcome[R any] struct {
	Result R
	Err    error
}

// DetectURLs resolves every URL concurrently and returns one outcome per URL
// in input order. A failing item never aborts the call; its outcome carries
// the error instead.
func (s *Service[I, R]) DetectURLs(ctx context.Context, urls []string) []Outcome[R] {
	outcomes := make([]Outcome[R], len(urls))

	var wg sync.WaitGroup
	for i, url := range urls {
		wg.Add(1)
		go func(i int, url string) {
			defer wg.Done()
			res, err := s.DetectURL(ctx, url)
			outcomes[i] = Outcome[R]{Result: res, Err: err}
		}(i, url)
	}
	wg.Wait()

	return outcomes
}

// DetectAll runs every resolved input through Detect concurrently, one
// outcome per input in order.
func (s *Service[I, R]) DetectAll(ctx context.Context, inputs []I) []Outcome[R] {
	outcomes := make([]Outcome[R], len(inputs))

	var wg sync.WaitGroup
	for i, input := range inputs {
		wg.Add(1)
		go func(i int, input I) {
			defer wg.Done()
			res, err := s.Detect(ctx, input)
			outcomes[i] = Outcome[R]{Result: res, Err: err}
		}(i, input)
	}
	wg.Wait()

	return outcomes
}

// Probe pushes a canary input through the live coalescer and backend. A
// healthy service answers within probeTimeout.
func (s *Service[I, R]) Probe(ctx context.Context, canary I) error {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	if _, err := s.coal.Submit(ctx, canary); err != nil {
		metrics.SetUnhealthy()
		return err
	}

	metrics.SetHealthy()
	return nil
}

func (s *Service[I, R]) recordFetchFailure(err error) {
	kind := "other"
	switch {
	case errors.Is(err, fetch.ErrInvalidContentType):
		kind = "content_type"
	case errors.Is(err, fetch.ErrDecode):
		kind = "decode"
	case errors.Is(err, fetch.ErrDownload):
		kind = "download"
	}
	metrics.RecordFetchFailure(s.modality, kind)
}
