// Package report renders search outcomes for the command line.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsearch/search"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format selects how results are written.
type Format string

// Supported formats.
const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat validates s as a Format name (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Text, JSON, YAML:
		return f, nil
	}

	return "", fmt.Errorf("%w: %q (want text, json or yaml)", ErrUnknownFormat, s)
}

// Result is the printable outcome of one search run.
type Result struct {
	Problem     string   `json:"problem" yaml:"problem"`
	Strategy    string   `json:"strategy" yaml:"strategy"`
	Found       bool     `json:"found" yaml:"found"`
	Actions     []string `json:"actions,omitempty" yaml:"actions,omitempty"`
	States      []string `json:"states,omitempty" yaml:"states,omitempty"`
	Depth       int      `json:"depth" yaml:"depth"`
	PathCost    float64  `json:"path_cost" yaml:"path_cost"`
	Expanded    int      `json:"expanded" yaml:"expanded"`
	Generated   int      `json:"generated" yaml:"generated"`
	MaxFrontier int      `json:"max_frontier" yaml:"max_frontier"`
}

// FromNode builds a Result from a search outcome. A nil node means the
// search found no solution.
func FromNode[S comparable, A any](problem, strategy string, n *search.Node[S, A], stats search.Stats) Result {
	r := Result{
		Problem:     problem,
		Strategy:    strategy,
		Expanded:    stats.Expanded,
		Generated:   stats.Generated,
		MaxFrontier: stats.MaxFrontier,
	}
	if n == nil {
		return r
	}

	r.Found = true
	r.Depth = n.Depth()
	r.PathCost = n.PathCost()
	for _, a := range n.Solution() {
		r.Actions = append(r.Actions, fmt.Sprint(a))
	}
	for _, step := range n.Path() {
		r.States = append(r.States, fmt.Sprint(step.State()))
	}

	return r
}

// Write renders results to w in format f.
func Write(w io.Writer, f Format, results []Result) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	case Text:
		for _, r := range results {
			if _, err := fmt.Fprintln(w, r.line()); err != nil {
				return err
			}
		}
		return nil
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

func (r Result) line() string {
	if !r.Found {
		return fmt.Sprintf("%s (%s): no solution after %d expansions", r.Problem, r.Strategy, r.Expanded)
	}

	return fmt.Sprintf("%s (%s): [%s] depth=%d cost=%g expanded=%d",
		r.Problem, r.Strategy, strings.Join(r.Actions, " "), r.Depth, r.PathCost, r.Expanded)
}
