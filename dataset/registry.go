// Package dataset resolves benchmark datasets (FB15K, WN18, or any
// configured set) to their test, train and validation triple files.
package dataset

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed registry.yaml
var defaultRegistry []byte

var (
	// ErrUnknownDataset indicates a lookup of a name that is not registered.
	ErrUnknownDataset = errors.New("dataset: unknown dataset")

	// ErrNoDefinitions indicates the dataset has no entity definitions file.
	ErrNoDefinitions = errors.New("dataset: no definitions configured")
)

// Config is the YAML form of a registry.
type Config struct {
	// Root is the directory relative paths resolve against. A relative Root
	// is itself resolved against the directory of the config file.
	Root     string           `yaml:"root"`
	Datasets map[string]Paths `yaml:"datasets"`
}

// Paths locates the files of one dataset.
type Paths struct {
	Test        string `yaml:"test"`
	Train       string `yaml:"train"`
	Valid       string `yaml:"valid"`
	Definitions string `yaml:"definitions,omitempty"`
}

// Registry maps dataset names to resolved file locations.
type Registry struct {
	root string
	sets map[string]Paths
}

// NewRegistry validates cfg and resolves it against root. Names are matched
// case-insensitively.
func NewRegistry(cfg Config, root string) (*Registry, error) {
	r := &Registry{
		root: root,
		sets: make(map[string]Paths, len(cfg.Datasets)),
	}

	for name, p := range cfg.Datasets {
		if p.Test == "" || p.Train == "" || p.Valid == "" {
			return nil, fmt.Errorf("dataset %q: test, train and valid paths are required", name)
		}
		key := strings.ToLower(name)
		if _, dup := r.sets[key]; dup {
			return nil, fmt.Errorf("dataset %q: registered twice", name)
		}
		r.sets[key] = p
	}

	return r, nil
}

// LoadRegistry reads a registry from a YAML file.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse registry %s: %w", path, err)
	}

	root := cfg.Root
	if !filepath.IsAbs(root) {
		root = filepath.Join(filepath.Dir(path), root)
	}

	return NewRegistry(cfg, root)
}

// DefaultRegistry returns the built-in FB15K and WN18 layout under root.
func DefaultRegistry(root string) (*Registry, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultRegistry, &cfg); err != nil {
		return nil, fmt.Errorf("parse default registry: %w", err)
	}
	return NewRegistry(cfg, root)
}

// Names returns the registered dataset names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.sets))
	for name := range r.sets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the dataset registered under name.
func (r *Registry) Lookup(name string) (DataSet, error) {
	key := strings.ToLower(name)
	p, ok := r.sets[key]
	if !ok {
		return DataSet{}, fmt.Errorf("%w: %s (known: %s)", ErrUnknownDataset, name, strings.Join(r.Names(), ", "))
	}

	ds := DataSet{
		Name:      key,
		TestPath:  r.resolve(p.Test),
		TrainPath: r.resolve(p.Train),
		ValidPath: r.resolve(p.Valid),
	}
	if p.Definitions != "" {
		ds.DefinitionsPath = r.resolve(p.Definitions)
	}
	return ds, nil
}

func (r *Registry) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(r.root, p)
}
