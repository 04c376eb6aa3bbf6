package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/medistaff/staffdir/internal/api/metrics"
)

const (
	defaultWorkers = 4
	queueBuffer    = 64
)

// HashPool runs bcrypt work on a fixed set of workers so that a burst of
// slow password comparisons cannot monopolize the process. Token checks and
// other requests keep flowing while logins queue here.
type HashPool struct {
	jobs    chan func()
	workers int
	cost    int
	log     zerolog.Logger
}

// NewHashPool creates a HashPool with numWorkers workers.
// If numWorkers <= 0, defaultWorkers is used. Start must be called before
// Hash or Compare.
func NewHashPool(numWorkers int, log zerolog.Logger) *HashPool {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	return &HashPool{
		jobs:    make(chan func(), queueBuffer),
		workers: numWorkers,
		cost:    bcrypt.DefaultCost,
		log:     log,
	}
}

// Start launches the worker goroutines. Workers stop when ctx is cancelled.
func (p *HashPool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		go p.runWorker(ctx, i)
	}
}

// Hash computes a bcrypt hash of the password on a pool worker.
func (p *HashPool) Hash(ctx context.Context, password string) (string, error) {
	type result struct {
		hash string
		err  error
	}
	done := make(chan result, 1)

	if err := p.submit(ctx, func() {
		b, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
		done <- result{hash: string(b), err: err}
	}); err != nil {
		return "", err
	}

	select {
	case r := <-done:
		if r.err != nil {
			return "", fmt.Errorf("hash password: %w", r.err)
		}
		return r.hash, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Compare checks the password against the stored hash on a pool worker.
// A mismatch is not an error; it returns (false, nil).
func (p *HashPool) Compare(ctx context.Context, hash, password string) (bool, error) {
	done := make(chan bool, 1)

	if err := p.submit(ctx, func() {
		start := time.Now()
		err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
		metrics.PasswordCompareDuration.Observe(time.Since(start).Seconds())
		done <- err == nil
	}); err != nil {
		return false, err
	}

	select {
	case ok := <-done:
		return ok, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

func (p *HashPool) submit(ctx context.Context, job func()) error {
	select {
	case p.jobs <- job:
		metrics.HashQueueDepth.Set(float64(len(p.jobs)))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *HashPool) runWorker(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			p.log.Debug().Int("worker_id", id).Msg("hash worker stopped")
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			job()
			metrics.HashQueueDepth.Set(float64(len(p.jobs)))
		}
	}
}
