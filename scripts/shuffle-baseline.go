//go:build ignore

// Write a random-ranking prediction file for a dataset's test split. Every
// head and tail slot gets the dataset's entities in a random order, which
// gives the Hits@N and mean rank a model has to beat.
// Usage: go run ./scripts/shuffle-baseline.go -dataset wn18 -out baseline.txt
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"slices"
	"strings"

	"github.com/jamesainslie/go-kbc/dataset"
	"github.com/jamesainslie/go-kbc/internal/cli"
)

func main() {
	name := flag.String("dataset", "wn18", "Dataset name")
	dataDir := flag.String("data-dir", os.Getenv(cli.DataDirEnv), "Dataset root")
	out := flag.String("out", "baseline.txt", "Output prediction file")
	top := flag.Int("top", 100, "Candidates per slot (0 for every entity)")
	seed := flag.Uint64("seed", 1, "Random seed")
	flag.Parse()

	data := cli.DatasetFlags{Name: *name, DataDir: *dataDir}
	ds, err := data.Lookup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	all, err := ds.AllTriples()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", ds.Name, err)
		os.Exit(1)
	}
	test, err := ds.TestSet()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s test split: %v\n", ds.Name, err)
		os.Exit(1)
	}

	seen := make(map[string]struct{})
	for _, t := range all {
		seen[t.Subject] = struct{}{}
		seen[t.Object] = struct{}{}
	}
	entities := make([]string, 0, len(seen))
	for e := range seen {
		entities = append(entities, e)
	}
	slices.Sort(entities)

	rng := rand.New(rand.NewPCG(*seed, *seed))
	shuffled := func() string {
		rng.Shuffle(len(entities), func(i, j int) {
			entities[i], entities[j] = entities[j], entities[i]
		})
		n := len(entities)
		if *top > 0 && *top < n {
			n = *top
		}
		return strings.Join(entities[:n], " ")
	}

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	w := bufio.NewWriter(f)
	for _, t := range test {
		fmt.Fprintf(w, "%s %s %s\n", t.Subject, t.Predicate, t.Object)
		fmt.Fprintf(w, "\tHeads: %s\n", shuffled())
		fmt.Fprintf(w, "\tTails: %s\n", shuffled())
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *out, err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing %s: %v\n", *out, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d records (%d entities) to %s\n", len(test), len(entities), *out)
}
