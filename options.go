package kbc

import (
	"log/slog"

	"github.com/jamesainslie/go-kbc/prediction"
)

// Option configures an Evaluator.
type Option func(*config)

type config struct {
	filtering bool
	known     []prediction.Triple
	logger    *slog.Logger
}

func defaultConfig() config {
	return config{
		filtering: false,
		logger:    slog.Default(),
	}
}

// WithFiltering enables filtered evaluation (default: false). Other known-true
// answers are removed from each candidate list before scoring.
func WithFiltering(enabled bool) Option {
	return func(c *config) {
		c.filtering = enabled
	}
}

// WithKnownTriples adds triples, usually a dataset's train, valid and test
// splits, to the filter index on top of the truths read from the prediction
// file. Ignored unless filtering is enabled. The slice is only read.
func WithKnownTriples(triples []prediction.Triple) Option {
	return func(c *config) {
		c.known = triples
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
