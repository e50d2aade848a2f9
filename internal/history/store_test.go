package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kbc "github.com/jamesainslie/go-kbc"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// fixedClock returns successive timestamps one second apart.
func fixedClock(start time.Time) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(time.Second)
		return now
	}
}

func results(file string, hits int) kbc.Results {
	return kbc.Results{
		EvaluatedFile: file,
		N:             10,
		NonFiltered: kbc.Scores{
			HitsAtN:  kbc.Hits{Heads: hits, Tails: hits, All: 2 * hits},
			MeanRank: kbc.MeanRank{Heads: 3, Tails: 4, All: 4, RawHeads: 2.5, RawTails: 4.0 / 3.0, RawAll: 3.5, TotalTasks: 12},
		},
		Filtered: kbc.Scores{
			HitsAtN:  kbc.Hits{Heads: hits + 1, Tails: hits, All: 2*hits + 1},
			MeanRank: kbc.MeanRank{Heads: 2, Tails: 3, All: 2, TotalTasks: 12},
		},
	}
}

func TestStore_SaveAndList(t *testing.T) {
	s := openTestStore(t)
	start := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	s.now = fixedClock(start)
	ctx := context.Background()

	first, err := s.Save(ctx, results("transe.txt", 1), "wn18")
	require.NoError(t, err)
	_, err = uuid.Parse(first)
	assert.NoError(t, err)

	second, err := s.Save(ctx, results("transe.txt", 2), "wn18")
	require.NoError(t, err)
	_, err = s.Save(ctx, results("distmult.txt", 3), "")
	require.NoError(t, err)

	runs, err := s.List(ctx, "transe.txt", 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, second, runs[0].ID)
	assert.Equal(t, first, runs[1].ID)
	assert.Equal(t, start.Add(time.Second), runs[0].RecordedAt)
	assert.Equal(t, "wn18", runs[0].Dataset)
	assert.Equal(t, results("transe.txt", 2), runs[0].Results)
}

func TestStore_ListAllWithLimit(t *testing.T) {
	s := openTestStore(t)
	s.now = fixedClock(time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	for i, file := range []string{"a.txt", "b.txt", "c.txt"} {
		_, err := s.Save(ctx, results(file, i), "fb15k")
		require.NoError(t, err)
	}

	runs, err := s.List(ctx, "", 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "c.txt", runs[0].Results.EvaluatedFile)
	assert.Equal(t, "b.txt", runs[1].Results.EvaluatedFile)
}

func TestStore_ListEmpty(t *testing.T) {
	s := openTestStore(t)

	runs, err := s.List(context.Background(), "none.txt", 5)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestStore_ReopenKeepsRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.Save(ctx, results("transe.txt", 1), "wn18")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	runs, err := s.List(ctx, "transe.txt", 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
