package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Definition is the human-readable form of an entity identifier.
type Definition struct {
	Label       string
	Description string
}

// Definitions maps entity identifiers to their definitions.
type Definitions map[string]Definition

// Definitions reads the dataset's definitions file. It returns
// ErrNoDefinitions when the dataset has none configured.
func (d DataSet) Definitions() (Definitions, error) {
	if d.DefinitionsPath == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoDefinitions, d.Name)
	}

	f, err := os.Open(d.DefinitionsPath)
	if err != nil {
		return nil, fmt.Errorf("open definitions: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseDefinitions(f)
}

// ParseDefinitions reads "id\tlabel[\tdescription]" lines.
func ParseDefinitions(r io.Reader) (Definitions, error) {
	defs := make(Definitions)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		id, rest, ok := strings.Cut(line, "\t")
		if !ok || id == "" {
			continue
		}
		label, desc, _ := strings.Cut(rest, "\t")
		defs[id] = Definition{Label: label, Description: desc}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan definitions: %w", err)
	}
	return defs, nil
}

// Translate returns the label of id, or id itself when unknown.
func (d Definitions) Translate(id string) string {
	if def, ok := d[id]; ok {
		return def.Label
	}
	return id
}
