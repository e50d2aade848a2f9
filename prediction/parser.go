package prediction

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	headsPrefix = "\tHeads: "
	tailsPrefix = "\tTails: "
)

// ParseOptions controls how a prediction file is read.
type ParseOptions struct {
	// Index, when non-nil, receives every parsed truth triple so that the
	// set can be filtered afterwards.
	Index *Index

	// Logger receives per-record problems. Defaults to slog.Default().
	Logger *slog.Logger
}

// ParseFile opens path and parses it with Parse. The file is closed before
// ParseFile returns.
func ParseFile(path string, opts ParseOptions) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open prediction file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Parse(f, opts)
}

// Parse reads repeating three-line records:
//
//	<subject> <predicate> <object>[ <confidence>]
//	\tHeads: <cand1> <cand2> ...
//	\tTails: <cand1> <cand2> ...
//
// A partial record at the end of the input is dropped. Malformed lines are
// logged and parsed best-effort; only I/O failures are returned as errors.
func Parse(r io.Reader, opts ParseOptions) (*Set, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	br := bufio.NewReader(r)
	set := newSet(0)
	record := 0

	for {
		lines, err := readRecord(br)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record %d: %w", record+1, err)
		}
		record++

		truth := parseTruth(lines[0], record, logger)
		if opts.Index != nil {
			opts.Index.Add(truth)
		}

		entry := Entry{
			Truth: truth,
			Heads: parseCandidates(lines[1], headsPrefix, record, logger),
			Tails: parseCandidates(lines[2], tailsPrefix, record, logger),
		}
		if set.put(entry) {
			logger.Warn("duplicate truth triple, keeping later candidates",
				"record", record, "triple", truth.String())
		}
		set.TotalTasks += 2
	}

	return set, nil
}

// readRecord returns the next three lines. io.EOF is returned when fewer than
// three lines remain.
func readRecord(br *bufio.Reader) ([3]string, error) {
	var lines [3]string
	for i := range lines {
		line, err := br.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return lines, err
			}
			if line == "" {
				return lines, io.EOF
			}
		}
		lines[i] = line
	}
	return lines, nil
}

func parseTruth(line string, record int, logger *slog.Logger) Triple {
	tokens := strings.Split(trimEOL(line), " ")

	switch len(tokens) {
	case 3:
	case 4:
		logger.Debug("discarding confidence on truth line",
			"record", record, "confidence", tokens[3])
	default:
		logger.Error("problem evaluating triple",
			"record", record, "tokens", tokens)
	}

	var fields [3]string
	copy(fields[:], tokens)
	return Triple{Subject: fields[0], Predicate: fields[1], Object: fields[2]}
}

func parseCandidates(line, prefix string, record int, logger *slog.Logger) []string {
	rest, ok := strings.CutPrefix(line, prefix)
	if !ok {
		logger.Error("invalid candidate line",
			"record", record,
			"expected_prefix", strings.TrimSpace(prefix),
			"line", trimEOL(line))
		return nil
	}

	rest = trimEOL(rest)
	if rest == "" {
		return nil
	}

	candidates := strings.Split(rest, " ")
	for i, c := range candidates {
		candidates[i] = NormalizeCandidate(c)
	}
	return candidates
}
