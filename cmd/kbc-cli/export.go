package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	kbc "github.com/jamesainslie/go-kbc"
	"github.com/jamesainslie/go-kbc/dataset"
	"github.com/jamesainslie/go-kbc/internal/cli"
	"github.com/jamesainslie/go-kbc/internal/report"
)

func newExportNTCmd() *cobra.Command {
	var (
		out  string
		log  cli.LogFlags
		data cli.DatasetFlags
	)

	cmd := &cobra.Command{
		Use:   "export-nt",
		Short: "Write a dataset's train and valid triples as N-Triples",
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			logger, closeLog, err := log.NewLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			ds, err := data.Lookup()
			if err != nil {
				return err
			}
			ds.Logger = logger

			w, closeOut, err := createOutput(cmd, out)
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, closeOut()) }()

			if err := dataset.WriteTrainingFileNT(ds, w); err != nil {
				return fmt.Errorf("exporting %s: %w", ds.Name, err)
			}
			logger.Info("exported training triples", "dataset", ds.Name, "out", out)
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&out, "out", "", "Output file (default stdout)")
	log.Bind(fs)
	data.Bind(fs)
	_ = cmd.MarkFlagRequired("dataset")

	return cmd
}

func newSamplesCmd() *cobra.Command {
	var (
		file   string
		out    string
		filter bool
		opts   report.SampleOptions
		log    cli.LogFlags
		data   cli.DatasetFlags
	)

	cmd := &cobra.Command{
		Use:   "samples",
		Short: "Print top predictions with entity labels for manual review",
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			logger, closeLog, err := log.NewLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			ds, err := data.Lookup()
			if err != nil {
				return err
			}
			ds.Logger = logger

			defs, err := ds.Definitions()
			if errors.Is(err, dataset.ErrNoDefinitions) {
				logger.Warn("dataset has no entity definitions, nothing to translate", "dataset", ds.Name)
				return nil
			}
			if err != nil {
				return err
			}

			evalOpts := []kbc.Option{kbc.WithLogger(logger), kbc.WithFiltering(filter)}
			if filter {
				known, err := ds.AllTriples()
				if err != nil {
					return fmt.Errorf("loading dataset %s: %w", ds.Name, err)
				}
				evalOpts = append(evalOpts, kbc.WithKnownTriples(known))
			}

			ev, err := kbc.New(file, evalOpts...)
			if err != nil {
				return describeOpenError(file, err)
			}

			w, closeOut, err := createOutput(cmd, out)
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, closeOut()) }()

			return report.WriteSamples(w, ev.Predictions(), defs, opts)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&file, "file", "", "Prediction file (required)")
	fs.StringVar(&out, "out", "", "Output file (default stdout)")
	fs.BoolVar(&filter, "filter", true, "Remove known triples from candidate lists first")
	fs.IntVar(&opts.Top, "top", 10, "Hits@N cut-off; N+1 candidates are printed per slot")
	fs.IntVar(&opts.Limit, "limit", 100, "Number of triples to print (0 for all)")
	log.Bind(fs)
	data.Bind(fs)
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("dataset")

	return cmd
}
