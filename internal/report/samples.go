package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jamesainslie/go-kbc/dataset"
	"github.com/jamesainslie/go-kbc/prediction"
)

// SampleOptions limits how much of a prediction set WriteSamples prints.
type SampleOptions struct {
	// Top is the Hits@N cut-off; Top+1 candidates are printed per slot,
	// matching what HitsAt(Top) inspects.
	Top int

	// Limit is the number of triples to print. Zero prints all of them.
	Limit int
}

// WriteSamples prints the top predictions for the first triples of set,
// translating identifiers through defs so a person can judge them.
func WriteSamples(w io.Writer, set *prediction.Set, defs dataset.Definitions, opts SampleOptions) error {
	bw := bufio.NewWriter(w)

	for i, e := range set.Entries() {
		if opts.Limit > 0 && i >= opts.Limit {
			break
		}

		t := e.Truth
		fmt.Fprintf(bw, "Triple: %s  %s  %s\n", t.Subject, t.Predicate, t.Object)
		fmt.Fprintf(bw, "Triple translated: %s  %s  %s\n",
			defs.Translate(t.Subject), defs.Translate(t.Predicate), defs.Translate(t.Object))

		fmt.Fprintln(bw, "\tHead Predictions:")
		writeCandidates(bw, top(e.Heads, opts.Top+1), defs)
		fmt.Fprintln(bw, "\tTail Predictions:")
		writeCandidates(bw, top(e.Tails, opts.Top+1), defs)
	}

	return bw.Flush()
}

func writeCandidates(w io.Writer, candidates []string, defs dataset.Definitions) {
	for _, c := range candidates {
		if def, ok := defs[c]; ok {
			fmt.Fprintf(w, "\t\t[%s] %s   (%s)\n", c, def.Label, def.Description)
			continue
		}
		fmt.Fprintf(w, "\t\t%s  (no concept link found)\n", c)
	}
}

func top(candidates []string, n int) []string {
	return candidates[:max(0, min(n, len(candidates)))]
}
