package xbr

import "github.com/ajroetker/go-highway/hwy/contrib/workerpool"

// Option configures how Apply executes. The filter's output never depends on
// options; they only control scheduling.
//
// Example:
//
//	// One-shot parallel call:
//	xbr.Apply(dst, src, w, h, xbr.WithWorkers(8))
//
//	// Reusing a pool across frames (pipelines, emulators):
//	pool := workerpool.New(0)
//	defer pool.Close()
//	xbr.Apply(dst, src, w, h, xbr.WithPool(pool))
type Option func(*config)

// config holds the resolved execution options for one Apply call.
type config struct {
	parallel bool
	workers  int
	pool     *workerpool.Pool
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithWorkers processes the source in row bands on n worker goroutines.
// n <= 0 uses GOMAXPROCS. The pool is created for the call and closed before
// Apply returns; callers invoking Apply once per frame should prefer
// WithPool to avoid the spawn cost.
func WithWorkers(n int) Option {
	return func(cfg *config) {
		cfg.parallel = true
		cfg.workers = n
	}
}

// WithPool processes the source in row bands on a caller-owned worker pool.
// The pool is borrowed for the duration of the call; Apply never closes it.
// Takes precedence over WithWorkers when both are given.
func WithPool(p *workerpool.Pool) Option {
	return func(cfg *config) {
		cfg.pool = p
	}
}
