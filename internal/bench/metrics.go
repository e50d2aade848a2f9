package bench

import kbc "github.com/jamesainslie/go-kbc"

// Rates holds hits as fractions of the prediction tasks.
type Rates struct {
	Heads float64
	Tails float64
	All   float64
}

// HitRate converts hit counts to fractions. totalTasks counts head and tail
// tasks together, so each slot has totalTasks/2 tasks.
func HitRate(h kbc.Hits, totalTasks int) Rates {
	var r Rates
	perSlot := totalTasks / 2
	if perSlot > 0 {
		r.Heads = float64(h.Heads) / float64(perSlot)
		r.Tails = float64(h.Tails) / float64(perSlot)
	}
	if totalTasks > 0 {
		r.All = float64(h.All) / float64(totalTasks)
	}
	return r
}
