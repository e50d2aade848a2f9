// Package cli holds the flag and logging setup shared by the kbc binaries.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/jamesainslie/go-kbc/dataset"
)

// DataDirEnv names the environment variable holding the default dataset root.
const DataDirEnv = "KBC_DATA_DIR"

// LogFlags configure the process logger.
type LogFlags struct {
	Level string
	File  string
}

// Bind registers --log-level and --log-file on fs.
func (f *LogFlags) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.Level, "log-level", "info", "Log level: debug, info, warn or error")
	fs.StringVar(&f.File, "log-file", "", "Also append log output to this file")
}

// NewLogger builds a text logger writing to w and, when f.File is set, to
// that file as well. The returned func closes the file.
func (f *LogFlags) NewLogger(w io.Writer) (*slog.Logger, func() error, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(f.Level)); err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", f.Level, err)
	}

	closeFn := func() error { return nil }
	if f.File != "" {
		file, err := os.OpenFile(f.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = io.MultiWriter(w, file)
		closeFn = file.Close
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return logger, closeFn, nil
}

// DatasetFlags select a dataset from a registry.
type DatasetFlags struct {
	Name     string
	Registry string
	DataDir  string
}

// Bind registers --dataset, --registry and --data-dir on fs.
func (f *DatasetFlags) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.Name, "dataset", "", "Dataset name, e.g. wn18 or fb15k")
	fs.StringVar(&f.Registry, "registry", "", "Dataset registry YAML (default: built-in registry)")
	fs.StringVar(&f.DataDir, "data-dir", os.Getenv(DataDirEnv), "Root directory of the built-in registry (env "+DataDirEnv+")")
}

// ErrNoDataset is returned by Lookup when no dataset was named.
var ErrNoDataset = errors.New("cli: no dataset selected")

// Lookup resolves the named dataset. A registry file takes precedence over
// the built-in registry rooted at DataDir.
func (f *DatasetFlags) Lookup() (dataset.DataSet, error) {
	if f.Name == "" {
		return dataset.DataSet{}, ErrNoDataset
	}

	var (
		reg *dataset.Registry
		err error
	)
	if f.Registry != "" {
		reg, err = dataset.LoadRegistry(f.Registry)
	} else {
		root := f.DataDir
		if root == "" {
			root = "data"
		}
		reg, err = dataset.DefaultRegistry(root)
	}
	if err != nil {
		return dataset.DataSet{}, err
	}
	return reg.Lookup(f.Name)
}
