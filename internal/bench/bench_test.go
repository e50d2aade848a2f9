package bench

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	kbc "github.com/jamesainslie/go-kbc"
)

const (
	testEvalFile   = "../../testdata/eval_test_file.txt"
	testFilterFile = "../../testdata/filter_test_file.txt"
)

func quiet() kbc.Option {
	return kbc.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLoadPredictionFiles(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"transe.txt", "distmult.txt", "notes.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(""), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested.txt"), 0755); err != nil {
		t.Fatal(err)
	}

	files, err := LoadPredictionFiles(dir)
	if err != nil {
		t.Fatalf("LoadPredictionFiles() error = %v", err)
	}

	want := []string{filepath.Join(dir, "distmult.txt"), filepath.Join(dir, "transe.txt")}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("LoadPredictionFiles() = %v, want %v", files, want)
	}

	if _, err := LoadPredictionFiles(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing dir")
	}
}

func TestSweepNs(t *testing.T) {
	tests := []struct {
		name           string
		min, max, step int
		want           []int
	}{
		{name: "inclusive", min: 1, max: 5, step: 2, want: []int{1, 3, 5}},
		{name: "zero step", min: 0, max: 2, step: 0, want: []int{0, 1, 2}},
		{name: "empty", min: 5, max: 1, step: 1, want: nil},
		{name: "ends at max int", min: math.MaxInt - 2, max: math.MaxInt, step: 1, want: []int{math.MaxInt - 2, math.MaxInt - 1, math.MaxInt}},
		{name: "step past max int", min: math.MaxInt - 3, max: math.MaxInt, step: 2, want: []int{math.MaxInt - 3, math.MaxInt - 1}},
		{name: "wide step", min: 1, max: 10, step: math.MaxInt, want: []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SweepNs(tt.min, tt.max, tt.step); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SweepNs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSweep(t *testing.T) {
	ev, err := kbc.New(testEvalFile, quiet())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	results := Sweep(ev, []int{10, 1, 3})
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	wantN := []int{1, 3, 10}
	wantAll := []int{2, 3, 4}
	for i, r := range results {
		if r.N != wantN[i] {
			t.Errorf("results[%d].N = %d, want %d", i, r.N, wantN[i])
		}
		if r.Hits.All != wantAll[i] {
			t.Errorf("results[%d].Hits.All = %d, want %d", i, r.Hits.All, wantAll[i])
		}
	}

	if got := results[2].Rates.All; got != 4.0/6.0 {
		t.Errorf("Rates.All = %v, want %v", got, 4.0/6.0)
	}
}

func TestHitRate(t *testing.T) {
	got := HitRate(kbc.Hits{Heads: 1, Tails: 2, All: 3}, 4)
	want := Rates{Heads: 0.5, Tails: 1, All: 0.75}
	if got != want {
		t.Errorf("HitRate() = %+v, want %+v", got, want)
	}

	if got := HitRate(kbc.Hits{}, 0); got != (Rates{}) {
		t.Errorf("HitRate() with no tasks = %+v, want zero", got)
	}
}

func TestCompare(t *testing.T) {
	files := []string{testFilterFile, testEvalFile, testFilterFile}

	results, err := Compare(context.Background(), files, 0, 2, quiet())
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if len(results) != len(files) {
		t.Fatalf("got %d results, want %d", len(results), len(files))
	}

	for i, r := range results {
		if r.EvaluatedFile != files[i] {
			t.Errorf("results[%d].EvaluatedFile = %q, want %q", i, r.EvaluatedFile, files[i])
		}
	}
	if results[0].Filtered.HitsAtN.All != 4 {
		t.Errorf("filter fixture filtered hits@0 = %d, want 4", results[0].Filtered.HitsAtN.All)
	}
	if results[1].NonFiltered.HitsAtN.All != 1 {
		t.Errorf("eval fixture hits@0 = %d, want 1", results[1].NonFiltered.HitsAtN.All)
	}
	if results[0] != results[2] {
		t.Error("same file evaluated twice gave different results")
	}
}

func TestCompare_MissingFile(t *testing.T) {
	files := []string{testEvalFile, filepath.Join(t.TempDir(), "missing.txt")}

	_, err := Compare(context.Background(), files, 10, 0, quiet())
	if !errors.Is(err, kbc.ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got: %v", err)
	}
}
