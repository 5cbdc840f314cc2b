package performance

import (
	"github.com/YuminosukeSato/goaccord/pkg/log"
)

type config struct {
	folds   int
	shuffle bool
	seed    uint64
	workers int
	logger  log.Logger
}

func defaultConfig() config {
	return config{
		folds:   5,
		workers: 1,
	}
}

// Option is a function that configures CrossValidation
type Option func(*config)

// WithFolds sets the number of folds
func WithFolds(k int) Option {
	return func(c *config) {
		c.folds = k
	}
}

// WithShuffle shuffles the samples with the given seed before splitting
func WithShuffle(seed uint64) Option {
	return func(c *config) {
		c.shuffle = true
		c.seed = seed
	}
}

// WithParallel evaluates up to workers folds concurrently.
// workers <= 0 uses GOMAXPROCS.
func WithParallel(workers int) Option {
	return func(c *config) {
		c.workers = workers
	}
}

// WithLogger sets the logger used to report fold progress
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
