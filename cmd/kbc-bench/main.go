package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	kbc "github.com/jamesainslie/go-kbc"
	"github.com/jamesainslie/go-kbc/internal/bench"
	"github.com/jamesainslie/go-kbc/internal/cli"
	"github.com/jamesainslie/go-kbc/internal/history"
	"github.com/jamesainslie/go-kbc/prediction"
)

// Set by -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	root := &cobra.Command{
		Use:           "kbc-bench",
		Short:         "Benchmark link-prediction files",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSweepCmd(), newCompareCmd(), newHistoryCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newSweepCmd() *cobra.Command {
	var (
		file             string
		minN, maxN, step int
		filter           bool
		log              cli.LogFlags
		data             cli.DatasetFlags
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate Hits@N over a range of N",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, closeLog, err := log.NewLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			if !filter && data.Name != "" {
				logger.Warn("ignoring --dataset: known triples only apply with --filter", "dataset", data.Name)
			}

			opts := []kbc.Option{kbc.WithLogger(logger), kbc.WithFiltering(filter)}
			if filter && data.Name != "" {
				known, err := knownTriples(data, logger)
				if err != nil {
					return err
				}
				opts = append(opts, kbc.WithKnownTriples(known))
			}

			ev, err := kbc.New(file, opts...)
			if err != nil {
				return fmt.Errorf("loading %s: %w", file, err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Hits@N Sweep: %s (filtered=%v, tasks=%d)\n", file, filter, ev.Predictions().TotalTasks)
			fmt.Fprintln(w, strings.Repeat("-", 60))
			fmt.Fprintf(w, "%-6s %-8s %-8s %-8s %-8s %-8s\n", "N", "Heads", "Tails", "All", "Rate", "New")

			prev := 0
			for i, r := range bench.Sweep(ev, bench.SweepNs(minN, maxN, step)) {
				delta := 0
				if i > 0 {
					delta = r.Hits.All - prev
				}
				prev = r.Hits.All
				fmt.Fprintf(w, "%-6d %-8d %-8d %-8d %-8.3f %-8d\n",
					r.N, r.Hits.Heads, r.Hits.Tails, r.Hits.All, r.Rates.All, delta)
			}
			fmt.Fprintln(w, strings.Repeat("-", 60))
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&file, "file", "", "Prediction file (required)")
	fs.IntVar(&minN, "min", 1, "Smallest N")
	fs.IntVar(&maxN, "max", 10, "Largest N")
	fs.IntVar(&step, "step", 1, "N increment")
	fs.BoolVar(&filter, "filter", false, "Filter known triples before counting")
	log.Bind(fs)
	data.Bind(fs)
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newCompareCmd() *cobra.Command {
	var (
		dir     string
		files   []string
		n       int
		workers int
		log     cli.LogFlags
		data    cli.DatasetFlags
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Evaluate several prediction files side by side",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, closeLog, err := log.NewLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			if dir != "" {
				found, err := bench.LoadPredictionFiles(dir)
				if err != nil {
					return fmt.Errorf("loading %s: %w", dir, err)
				}
				files = append(files, found...)
			}
			if len(files) == 0 {
				return errors.New("--dir or --files required")
			}

			opts := []kbc.Option{kbc.WithLogger(logger)}
			if data.Name != "" {
				known, err := knownTriples(data, logger)
				if err != nil {
					return err
				}
				opts = append(opts, kbc.WithKnownTriples(known))
			}

			results, err := bench.Compare(cmd.Context(), files, n, workers, opts...)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Model Comparison (Hits@%d)\n", n)
			fmt.Fprintln(w, strings.Repeat("-", 76))
			fmt.Fprintf(w, "%-30s %-10s %-8s %-10s %-8s\n", "File", "Raw hits", "Raw MR", "Filt hits", "Filt MR")
			for _, r := range results {
				fmt.Fprintf(w, "%-30s %-10d %-8d %-10d %-8d\n",
					r.EvaluatedFile,
					r.NonFiltered.HitsAtN.All, r.NonFiltered.MeanRank.All,
					r.Filtered.HitsAtN.All, r.Filtered.MeanRank.All)
			}
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&dir, "dir", "", "Directory of .txt prediction files")
	fs.StringSliceVar(&files, "files", nil, "Comma-separated prediction files")
	fs.IntVar(&n, "n", 10, "Hits@N cut-off")
	fs.IntVar(&workers, "workers", 4, "Files evaluated concurrently (0 for all)")
	log.Bind(fs)
	data.Bind(fs)

	return cmd
}

func newHistoryCmd() *cobra.Command {
	var (
		db    string
		file  string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded evaluation runs, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := history.Open(db)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			runs, err := store.List(cmd.Context(), file, limit)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-20s %-8s %-30s %-4s %-10s %-8s\n", "Recorded", "Dataset", "File", "N", "Filt hits", "Filt MR")
			fmt.Fprintln(w, strings.Repeat("-", 86))
			for _, run := range runs {
				r := run.Results
				fmt.Fprintf(w, "%-20s %-8s %-30s %-4d %-10d %-8d\n",
					run.RecordedAt.Format("2006-01-02 15:04:05"), run.Dataset, r.EvaluatedFile, r.N,
					r.Filtered.HitsAtN.All, r.Filtered.MeanRank.All)
			}
			fmt.Fprintf(w, "%d run(s)\n", len(runs))
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&db, "db", "", "History database (required)")
	fs.StringVar(&file, "file", "", "Only show runs of this prediction file")
	fs.IntVar(&limit, "limit", 20, "Maximum runs to show (0 for all)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func knownTriples(data cli.DatasetFlags, logger *slog.Logger) ([]prediction.Triple, error) {
	ds, err := data.Lookup()
	if err != nil {
		return nil, err
	}
	ds.Logger = logger
	known, err := ds.AllTriples()
	if err != nil {
		return nil, fmt.Errorf("loading dataset %s: %w", ds.Name, err)
	}
	return known, nil
}
