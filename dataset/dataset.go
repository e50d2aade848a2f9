package dataset

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jamesainslie/go-kbc/prediction"
)

// DataSet is a resolved benchmark: one tab-separated triple file per split
// and an optional entity definitions file.
type DataSet struct {
	Name            string
	TestPath        string
	TrainPath       string
	ValidPath       string
	DefinitionsPath string

	// Logger receives skipped-line warnings. Defaults to slog.Default().
	Logger *slog.Logger
}

// TestSet parses the test split.
func (d DataSet) TestSet() ([]prediction.Triple, error) {
	return readTriples(d.TestPath, d.Logger)
}

// TrainSet parses the training split.
func (d DataSet) TrainSet() ([]prediction.Triple, error) {
	return readTriples(d.TrainPath, d.Logger)
}

// ValidSet parses the validation split.
func (d DataSet) ValidSet() ([]prediction.Triple, error) {
	return readTriples(d.ValidPath, d.Logger)
}

// AllTriples returns test, train and valid triples concatenated, the usual
// known-true collection for filtered evaluation.
func (d DataSet) AllTriples() ([]prediction.Triple, error) {
	var all []prediction.Triple
	for _, read := range []func() ([]prediction.Triple, error){d.TestSet, d.TrainSet, d.ValidSet} {
		ts, err := read()
		if err != nil {
			return nil, err
		}
		all = append(all, ts...)
	}
	return all, nil
}

func readTriples(path string, logger *slog.Logger) ([]prediction.Triple, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open triples: %w", err)
	}
	defer func() { _ = f.Close() }()

	triples, err := ParseTabSeparated(f, logger)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return triples, nil
}

// ParseTabSeparated reads one "subject\tpredicate\tobject" triple per line.
// Blank lines are skipped; lines with a different field count are logged
// and skipped. A nil logger means slog.Default().
func ParseTabSeparated(r io.Reader, logger *slog.Logger) ([]prediction.Triple, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var triples []prediction.Triple

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			logger.Warn("skipping malformed triple line", "line", lineNo, "fields", len(fields))
			continue
		}
		triples = append(triples, prediction.Triple{
			Subject:   fields[0],
			Predicate: fields[1],
			Object:    fields[2],
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan triples: %w", err)
	}
	return triples, nil
}

// WriteTrainingFileNT writes the train and valid splits as N-Triples
// ("<s> <p> <o> ." per line), the input format of RDF2Vec-style walkers.
func WriteTrainingFileNT(d DataSet, w io.Writer) error {
	train, err := d.TrainSet()
	if err != nil {
		return err
	}
	valid, err := d.ValidSet()
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for _, t := range append(train, valid...) {
		if _, err := fmt.Fprintf(bw, "<%s> <%s> <%s> .\n", t.Subject, t.Predicate, t.Object); err != nil {
			return fmt.Errorf("write nt: %w", err)
		}
	}
	return bw.Flush()
}
