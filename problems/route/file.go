package route

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the YAML form of a route problem:
//
//	start: A
//	goals: [D]
//	undirected: true
//	edges:
//	  - {from: A, to: B}
//	  - {from: B, to: D, cost: 2.5}
//
// An edge without cost costs 1.
type File struct {
	Start      string     `yaml:"start"`
	Goals      []string   `yaml:"goals"`
	Undirected bool       `yaml:"undirected"`
	Edges      []EdgeSpec `yaml:"edges"`
}

// EdgeSpec is one edge of a File.
type EdgeSpec struct {
	From string   `yaml:"from"`
	To   string   `yaml:"to"`
	Cost *float64 `yaml:"cost,omitempty"`
}

// Load reads a route File from path and builds its Problem.
func Load(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFile, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a route File from r and builds its Problem.
// Unknown keys are rejected.
func Decode(r io.Reader) (*Problem, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrBadFile)
		}
		return nil, fmt.Errorf("%w: %v", ErrBadFile, err)
	}

	return file.Build()
}

// Build turns f into a Problem.
func (f File) Build() (*Problem, error) {
	var opts []GraphOption
	if f.Undirected {
		opts = append(opts, WithUndirected())
	}
	g := NewGraph(opts...)
	for i, e := range f.Edges {
		cost := 1.0
		if e.Cost != nil {
			cost = *e.Cost
		}
		if err := g.AddEdge(e.From, e.To, cost); err != nil {
			return nil, fmt.Errorf("%w: edge #%d: %w", ErrBadFile, i, err)
		}
	}
	// A start with no edges is still a valid (if trivial) problem
	if f.Start != "" {
		_ = g.AddVertex(f.Start)
	}

	p, err := NewProblem(g, f.Start, f.Goals...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadFile, err)
	}

	return p, nil
}
