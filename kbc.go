package kbc

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"slices"

	"github.com/jamesainslie/go-kbc/prediction"
)

// Evaluator computes link-prediction metrics for one prediction file.
type Evaluator struct {
	path      string
	filtering bool
	set       *prediction.Set
	logger    *slog.Logger
}

// New parses the prediction file at path. It fails only when the path is
// unset, missing, not a regular file or unreadable; malformed records are
// logged and evaluated best-effort.
func New(path string, opts ...Option) (*Evaluator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := checkFile(path); err != nil {
		return nil, err
	}

	var idx *prediction.Index
	if cfg.filtering {
		idx = prediction.NewIndex()
		idx.AddAll(cfg.known)
	}

	set, err := prediction.ParseFile(path, prediction.ParseOptions{
		Index:  idx,
		Logger: cfg.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}

	if cfg.filtering {
		set = prediction.Filter(set, idx)
	}

	cfg.logger.Debug("parsed prediction file",
		"path", path,
		"triples", set.Len(),
		"tasks", set.TotalTasks,
		"filtering", cfg.filtering)

	return &Evaluator{
		path:      path,
		filtering: cfg.filtering,
		set:       set,
		logger:    cfg.logger,
	}, nil
}

func checkFile(path string) error {
	if path == "" {
		return ErrPathUnset
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}
	return nil
}

// Path returns the evaluated file.
func (e *Evaluator) Path() string { return e.path }

// Filtering reports whether candidate lists were filtered.
func (e *Evaluator) Filtering() bool { return e.filtering }

// Predictions returns the parsed, possibly filtered, predictions.
func (e *Evaluator) Predictions() *prediction.Set { return e.set }

// Hits counts prediction tasks whose target was ranked within the cut-off.
type Hits struct {
	Heads int `json:"heads"`
	Tails int `json:"tails"`
	All   int `json:"all"`
}

// HitsAt counts, for heads and tails separately, the triples whose target is
// among the first n+1 candidates, so HitsAt(0) counts top-1 hits. Missing or
// empty candidate lists count as misses.
func (e *Evaluator) HitsAt(n int) Hits {
	limit := n
	if limit < math.MaxInt {
		limit++
	}

	var h Hits
	for _, entry := range e.set.Entries() {
		if within(entry.Heads, entry.Truth.Subject, limit) {
			h.Heads++
		}
		if within(entry.Tails, entry.Truth.Object, limit) {
			h.Tails++
		}
	}
	h.All = h.Heads + h.Tails

	e.logger.Info("hits@n",
		"n", n,
		"heads", h.Heads,
		"tails", h.Tails,
		"total", h.All,
		"filtering", e.filtering)

	return h
}

func within(candidates []string, target string, limit int) bool {
	limit = max(0, min(limit, len(candidates)))
	return slices.Contains(candidates[:limit], target)
}

// MeanRank holds the average 1-based rank of the target over the tasks where
// it was found. Heads, Tails and All are rounded half to even; the Raw fields
// keep the unrounded means.
type MeanRank struct {
	Heads int `json:"heads"`
	Tails int `json:"tails"`
	All   int `json:"all"`

	RawHeads float64 `json:"raw_heads"`
	RawTails float64 `json:"raw_tails"`
	RawAll   float64 `json:"raw_all"`

	// IgnoredHeads and IgnoredTails count tasks whose target was absent from
	// the candidate list. They are left out of the denominators.
	IgnoredHeads int `json:"ignored_heads"`
	IgnoredTails int `json:"ignored_tails"`
	TotalTasks   int `json:"total_tasks"`
}

// MeanRank computes the mean rank of the target for heads, tails and both.
// A slot whose every task was ignored has a mean rank of 0.
func (e *Evaluator) MeanRank() MeanRank {
	var sumHeads, sumTails, ignoredHeads, ignoredTails int

	for _, entry := range e.set.Entries() {
		if r := rank(entry.Heads, entry.Truth.Subject); r > 0 {
			sumHeads += r
		} else {
			ignoredHeads++
			e.logger.Error("target missing from head predictions", "triple", entry.Truth.String())
		}

		if r := rank(entry.Tails, entry.Truth.Object); r > 0 {
			sumTails += r
		} else {
			ignoredTails++
			e.logger.Error("target missing from tail predictions", "triple", entry.Truth.String())
		}
	}

	total := e.set.TotalTasks
	m := MeanRank{
		RawHeads:     average(sumHeads, total/2-ignoredHeads),
		RawTails:     average(sumTails, total/2-ignoredTails),
		RawAll:       average(sumHeads+sumTails, total-ignoredHeads-ignoredTails),
		IgnoredHeads: ignoredHeads,
		IgnoredTails: ignoredTails,
		TotalTasks:   total,
	}
	m.Heads = roundRank(m.RawHeads)
	m.Tails = roundRank(m.RawTails)
	m.All = roundRank(m.RawAll)

	e.logger.Info("mean rank",
		"heads", m.Heads,
		"tails", m.Tails,
		"all", m.All,
		"ignored_heads", ignoredHeads,
		"ignored_tails", ignoredTails,
		"filtering", e.filtering)

	return m
}

// rank returns the 1-based position of target, or 0 when absent.
func rank(candidates []string, target string) int {
	return slices.Index(candidates, target) + 1
}

func average(sum, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func roundRank(x float64) int {
	return int(math.RoundToEven(x))
}
