package bench

import (
	"sort"

	kbc "github.com/jamesainslie/go-kbc"
)

// SweepResult holds hits for one cut-off.
type SweepResult struct {
	N     int
	Hits  kbc.Hits
	Rates Rates
}

// SweepNs generates cut-offs from min to max inclusive with the given step.
// A non-positive step is treated as 1. The range may end at math.MaxInt.
func SweepNs(min, max, step int) []int {
	if step <= 0 {
		step = 1
	}
	var ns []int
	for n := min; n <= max; n += step {
		ns = append(ns, n)
		if n > max-step {
			break
		}
	}
	return ns
}

// Sweep evaluates Hits@N for every n in ns and returns results sorted by N.
// Hits never decrease as N grows.
func Sweep(ev *kbc.Evaluator, ns []int) []SweepResult {
	tasks := ev.Predictions().TotalTasks

	results := make([]SweepResult, 0, len(ns))
	for _, n := range ns {
		hits := ev.HitsAt(n)
		results = append(results, SweepResult{
			N:     n,
			Hits:  hits,
			Rates: HitRate(hits, tasks),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].N < results[j].N
	})

	return results
}
