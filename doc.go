// Package kbc evaluates link-prediction output of knowledge-base completion
// models using Hits@N and Mean Rank, for head prediction, tail prediction and
// both combined.
//
// # Quick Start
//
//	res, err := kbc.CalculateResults("predictions.txt", 10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("filtered hits@10: %d\n", res.Filtered.HitsAtN.All)
//
// # Prediction Files
//
// A prediction file repeats three-line records: the held-out triple, the
// ranked head candidates and the ranked tail candidates.
//
//	/m/0f8l9c /location/country/form_of_government /m/06cx9
//		Heads: /m/0d060g /m/0f8l9c /m/03rk0
//		Tails: /m/018wl5 /m/06cx9
//
// Candidates may carry a "|<confidence>" suffix, which is ignored.
//
// # Filtering
//
// With WithFiltering, candidates known to form another true triple are
// removed before scoring, so a model is not penalized for ranking a different
// correct answer above the target. Known triples are the truths of the
// prediction file plus any passed through WithKnownTriples.
//
// # Thread Safety
//
// An Evaluator is read-only after New returns and may be shared. Each
// Evaluator owns its own parsed predictions and filter index.
package kbc
