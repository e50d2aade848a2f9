package kbc

import "slices"

// Scores bundles the metrics of one scoring pass.
type Scores struct {
	HitsAtN  Hits     `json:"hits_at_n"`
	MeanRank MeanRank `json:"mean_rank"`
}

// Scores computes Hits@n and Mean Rank.
func (e *Evaluator) Scores(n int) Scores {
	return Scores{
		HitsAtN:  e.HitsAt(n),
		MeanRank: e.MeanRank(),
	}
}

// Results aggregates a non-filtered and a filtered pass over one file.
type Results struct {
	EvaluatedFile string `json:"evaluated_file"`
	N             int    `json:"n"`
	NonFiltered   Scores `json:"non_filtered"`
	Filtered      Scores `json:"filtered"`
}

// CalculateResults evaluates path twice, without and then with filtering, and
// returns both sets of scores. Any WithFiltering among opts is overridden.
func CalculateResults(path string, n int, opts ...Option) (Results, error) {
	opts = slices.Clip(opts)

	plain, err := New(path, append(opts, WithFiltering(false))...)
	if err != nil {
		return Results{}, err
	}
	nonFiltered := plain.Scores(n)

	filtered, err := New(path, append(opts, WithFiltering(true))...)
	if err != nil {
		return Results{}, err
	}

	return Results{
		EvaluatedFile: path,
		N:             n,
		NonFiltered:   nonFiltered,
		Filtered:      filtered.Scores(n),
	}, nil
}
