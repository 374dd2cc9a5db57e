// ABOUTME: Bounded worker pool in front of the upstream search provider
// ABOUTME: Caps concurrent provider calls with ants while callers still honor their own deadlines

package pool

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"ai-search-api/core/domain"
	"ai-search-api/core/interfaces"
	"github.com/panjf2000/ants/v2"
	"golang.org/x/sync/semaphore"
)

// ErrPoolOverloaded is returned when too many callers are already waiting for a worker
var ErrPoolOverloaded = errors.New("search provider pool overloaded")

// Provider wraps a SearchProvider so that at most size calls run at once
type Provider struct {
	next interfaces.SearchProvider
	pool *ants.Pool

	// slots admits at most size callers to the pool; waiting for a slot honors ctx
	slots      *semaphore.Weighted
	waiting    atomic.Int64
	maxWaiting int64
}

type outcome struct {
	results []domain.RawResult
	err     error
}

// New creates a pooled provider with size workers. maxWaiting bounds how many
// callers may wait for a free worker; 0 means unbounded.
func New(next interfaces.SearchProvider, size, maxWaiting int) (*Provider, error) {
	if size < 1 {
		return nil, fmt.Errorf("provider pool size must be at least 1, got %d", size)
	}

	p, err := ants.NewPool(size, ants.WithExpiryDuration(time.Minute))
	if err != nil {
		return nil, fmt.Errorf("failed to create provider pool: %w", err)
	}

	return &Provider{
		next:       next,
		pool:       p,
		slots:      semaphore.NewWeighted(int64(size)),
		maxWaiting: int64(maxWaiting),
	}, nil
}

// FetchRawResults runs the wrapped provider on a pool worker and waits for the
// result or for ctx to finish, whichever comes first. Time spent queued for a
// worker counts against ctx.
func (p *Provider) FetchRawResults(ctx context.Context, req interfaces.ProviderRequest) ([]domain.RawResult, error) {
	if err := p.acquire(ctx); err != nil {
		return nil, err
	}

	done := make(chan outcome, 1)

	err := p.pool.Submit(func() {
		defer p.slots.Release(1)
		if ctx.Err() != nil {
			done <- outcome{err: ctx.Err()}
			return
		}
		results, err := p.next.FetchRawResults(ctx, req)
		done <- outcome{results: results, err: err}
	})
	if err != nil {
		p.slots.Release(1)
		if errors.Is(err, ants.ErrPoolOverload) {
			return nil, ErrPoolOverloaded
		}
		return nil, fmt.Errorf("failed to schedule provider call: %w", err)
	}

	select {
	case o := <-done:
		return o.results, o.err
	case <-ctx.Done():
		return nil, fmt.Errorf("search provider call abandoned: %w", ctx.Err())
	}
}

// acquire takes a worker slot, waiting at most until ctx is done
func (p *Provider) acquire(ctx context.Context) error {
	if p.slots.TryAcquire(1) {
		return nil
	}

	if n := p.waiting.Add(1); p.maxWaiting > 0 && n > p.maxWaiting {
		p.waiting.Add(-1)
		return ErrPoolOverloaded
	}
	defer p.waiting.Add(-1)

	if err := p.slots.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("search provider call abandoned while queued: %w", err)
	}
	return nil
}

// Running returns the number of busy workers
func (p *Provider) Running() int {
	return p.pool.Running()
}

// Release stops the pool, waiting up to timeout for in-flight calls
func (p *Provider) Release(timeout time.Duration) error {
	return p.pool.ReleaseTimeout(timeout)
}
