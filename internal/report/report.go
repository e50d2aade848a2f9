// Package report renders evaluation results for files and terminals.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"

	kbc "github.com/jamesainslie/go-kbc"
)

// WriteText writes a plain-text report of r.
func WriteText(w io.Writer, r kbc.Results) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Evaluated file: %s\n", r.EvaluatedFile)
	fmt.Fprintf(bw, "N: %d\n", r.N)
	writeScores(bw, "Filtered", r.N, r.Filtered)
	writeScores(bw, "Non-filtered", r.N, r.NonFiltered)

	return bw.Flush()
}

func writeScores(w io.Writer, title string, n int, s kbc.Scores) {
	fmt.Fprintf(w, "\n%s\n", title)
	fmt.Fprintf(w, "  Hits@%d heads: %d\n", n, s.HitsAtN.Heads)
	fmt.Fprintf(w, "  Hits@%d tails: %d\n", n, s.HitsAtN.Tails)
	fmt.Fprintf(w, "  Hits@%d all:   %d\n", n, s.HitsAtN.All)
	fmt.Fprintf(w, "  Mean rank heads: %d\n", s.MeanRank.Heads)
	fmt.Fprintf(w, "  Mean rank tails: %d\n", s.MeanRank.Tails)
	fmt.Fprintf(w, "  Mean rank all:   %d\n", s.MeanRank.All)
	if s.MeanRank.IgnoredHeads > 0 || s.MeanRank.IgnoredTails > 0 {
		fmt.Fprintf(w, "  Targets missing: %d heads, %d tails (of %d tasks)\n",
			s.MeanRank.IgnoredHeads, s.MeanRank.IgnoredTails, s.MeanRank.TotalTasks)
	}
}

// WriteFile writes the plain-text report of r to path.
func WriteFile(path string, r kbc.Results) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close report: %w", cerr)
		}
	}()

	return WriteText(f, r)
}
