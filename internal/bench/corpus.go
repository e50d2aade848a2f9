// Package bench provides benchmarking utilities for comparing link-prediction
// files: Hits@N sweeps and side-by-side evaluation of several models.
package bench

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// LoadPredictionFiles returns the .txt prediction files in dir, sorted by
// name. Subdirectories are not searched.
func LoadPredictionFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) != ".txt" {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}

	slices.Sort(files)
	return files, nil
}
