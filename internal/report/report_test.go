package report

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kbc "github.com/jamesainslie/go-kbc"
	"github.com/jamesainslie/go-kbc/dataset"
	"github.com/jamesainslie/go-kbc/prediction"
)

func sampleResults() kbc.Results {
	return kbc.Results{
		EvaluatedFile: "wn_predictions.txt",
		N:             10,
		NonFiltered: kbc.Scores{
			HitsAtN:  kbc.Hits{Heads: 2, Tails: 2, All: 4},
			MeanRank: kbc.MeanRank{Heads: 2, Tails: 4, All: 3, IgnoredHeads: 1, IgnoredTails: 1, TotalTasks: 6},
		},
		Filtered: kbc.Scores{
			HitsAtN:  kbc.Hits{Heads: 3, Tails: 2, All: 5},
			MeanRank: kbc.MeanRank{Heads: 1, Tails: 3, All: 2, TotalTasks: 6},
		},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sampleResults()))

	want := `Evaluated file: wn_predictions.txt
N: 10

Filtered
  Hits@10 heads: 3
  Hits@10 tails: 2
  Hits@10 all:   5
  Mean rank heads: 1
  Mean rank tails: 3
  Mean rank all:   2

Non-filtered
  Hits@10 heads: 2
  Hits@10 tails: 2
  Hits@10 all:   4
  Mean rank heads: 2
  Mean rank tails: 4
  Mean rank all:   3
  Targets missing: 1 heads, 1 tails (of 6 tasks)
`
	assert.Equal(t, want, buf.String())
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, WriteFile(path, sampleResults()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Evaluated file: wn_predictions.txt\n"))

	assert.Error(t, WriteFile(filepath.Join(t.TempDir(), "missing", "report.txt"), sampleResults()))
}

func TestRender(t *testing.T) {
	out := Render(sampleResults())

	assert.Contains(t, out, "wn_predictions.txt")
	assert.Contains(t, out, "Filtered")
	assert.Contains(t, out, "Non-filtered")
	assert.Contains(t, out, "Hits@10 all")
	assert.Contains(t, out, "missing: 1 heads, 1 tails")
}

func TestWriteSamples(t *testing.T) {
	input := "06845599 _member_of_domain_usage 03754979\n" +
		"\tHeads: 02123242 06845599 00789138\n" +
		"\tTails: 03754979\n" +
		"00789448 _verb_group 01062739\n" +
		"\tHeads: 00789448\n" +
		"\tTails: 01062739\n"
	set, err := prediction.Parse(strings.NewReader(input), prediction.ParseOptions{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	defs := dataset.Definitions{
		"06845599": {Label: "__trigon_NN_2", Description: "a triangular lyre"},
		"03754979": {Label: "__methamphetamine_NN_1", Description: "an amphetamine derivative"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSamples(&buf, set, defs, SampleOptions{Top: 1, Limit: 1}))

	want := "Triple: 06845599  _member_of_domain_usage  03754979\n" +
		"Triple translated: __trigon_NN_2  _member_of_domain_usage  __methamphetamine_NN_1\n" +
		"\tHead Predictions:\n" +
		"\t\t02123242  (no concept link found)\n" +
		"\t\t[06845599] __trigon_NN_2   (a triangular lyre)\n" +
		"\tTail Predictions:\n" +
		"\t\t[03754979] __methamphetamine_NN_1   (an amphetamine derivative)\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteSamples_NoLimit(t *testing.T) {
	input := "a r b\n\tHeads: a\n\tTails: b\n" +
		"c r d\n\tHeads: c\n\tTails: d\n"
	set, err := prediction.Parse(strings.NewReader(input), prediction.ParseOptions{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSamples(&buf, set, nil, SampleOptions{Top: 10}))
	assert.Equal(t, 2, strings.Count(buf.String(), "Triple: "))
}
