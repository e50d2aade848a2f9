package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	kbc "github.com/jamesainslie/go-kbc"
	"github.com/jamesainslie/go-kbc/internal/cli"
	"github.com/jamesainslie/go-kbc/internal/history"
	"github.com/jamesainslie/go-kbc/internal/report"
)

type evaluateFlags struct {
	file    string
	n       int
	out     string
	json    bool
	history string
	log     cli.LogFlags
	data    cli.DatasetFlags
}

func newEvaluateCmd() *cobra.Command {
	var f evaluateFlags

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Compute Hits@N and mean rank, filtered and non-filtered",
		Long: `Evaluate a prediction file. With --dataset, the train, valid and test
triples of that dataset are also treated as known when filtering.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEvaluate(cmd.Context(), cmd, f)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.file, "file", "", "Prediction file to evaluate (required)")
	fs.IntVar(&f.n, "n", 10, "Hits@N cut-off")
	fs.StringVar(&f.out, "out", "", "Write the text report to this file instead of the console")
	fs.BoolVar(&f.json, "json", false, "Print results as JSON")
	fs.StringVar(&f.history, "history", "", "Record the run in this SQLite database")
	f.log.Bind(fs)
	f.data.Bind(fs)
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runEvaluate(ctx context.Context, cmd *cobra.Command, f evaluateFlags) error {
	logger, closeLog, err := f.log.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	opts := []kbc.Option{kbc.WithLogger(logger)}

	if f.data.Name != "" {
		ds, err := f.data.Lookup()
		if err != nil {
			return err
		}
		ds.Logger = logger
		known, err := ds.AllTriples()
		if err != nil {
			return fmt.Errorf("loading dataset %s: %w", ds.Name, err)
		}
		logger.Info("loaded known triples", "dataset", ds.Name, "triples", len(known))
		opts = append(opts, kbc.WithKnownTriples(known))
	}

	res, err := kbc.CalculateResults(f.file, f.n, opts...)
	if err != nil {
		return describeOpenError(f.file, err)
	}

	switch {
	case f.json:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return err
		}
	case f.out != "":
		if err := report.WriteFile(f.out, res); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		logger.Info("wrote report", "path", f.out)
	default:
		fmt.Fprintln(cmd.OutOrStdout(), report.Render(res))
	}

	if f.history != "" {
		store, err := history.Open(f.history)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		id, err := store.Save(ctx, res, f.data.Name)
		if err != nil {
			return err
		}
		logger.Info("recorded run", "id", id, "db", f.history)
	}
	return nil
}

// describeOpenError turns construction failures into a message naming path.
func describeOpenError(path string, err error) error {
	switch {
	case errors.Is(err, kbc.ErrPathUnset):
		return errors.New("no prediction file given")
	case errors.Is(err, kbc.ErrFileNotFound):
		return fmt.Errorf("prediction file %s does not exist", path)
	case errors.Is(err, kbc.ErrNotRegularFile):
		return fmt.Errorf("prediction file %s is not a regular file", path)
	default:
		return fmt.Errorf("reading prediction file %s: %w", path, err)
	}
}

// createOutput opens path for writing, or returns stdout when path is empty.
func createOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", path, err)
	}
	return file, file.Close, nil
}
