// Package route defines shortest-hop route finding over an explicit,
// edge-costed graph as a search.Problem. States and actions are vertex IDs:
// taking action "B" from "A" follows the edge A→B.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrVertexNotFound  - start or goal vertex does not exist.
//	ErrNegativeCost    - edge cost below zero (path costs must not decrease).
//	ErrGraphNil        - nil *Graph passed to NewProblem.
//	ErrBadFile         - route file cannot be decoded or is inconsistent.
package route

import (
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for route graphs and problems.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("route: vertex ID is empty")

	// ErrVertexNotFound indicates a start or goal vertex missing from the graph.
	ErrVertexNotFound = errors.New("route: vertex not found")

	// ErrNegativeCost indicates an edge with a cost below zero.
	ErrNegativeCost = errors.New("route: negative edge cost")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("route: graph is nil")

	// ErrBadFile indicates a route file that could not be turned into a Problem.
	ErrBadFile = errors.New("route: bad route file")
)

// Edge is a one-way connection From→To with a non-negative Cost.
type Edge struct {
	From string
	To   string
	Cost float64
}

// Graph is an adjacency list that remembers insertion order, so that
// Neighbors (and therefore the order actions are generated in) is stable.
type Graph struct {
	undirected bool
	vertices   []string
	adj        map[string][]Edge
}

// GraphOption configures a Graph at construction.
type GraphOption func(*Graph)

// WithUndirected makes AddEdge insert both directions.
func WithUndirected() GraphOption {
	return func(g *Graph) { g.undirected = true }
}

// NewGraph returns an empty directed graph, unless WithUndirected is given.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{adj: make(map[string][]Edge)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Undirected reports whether edges are inserted in both directions.
func (g *Graph) Undirected() bool { return g.undirected }

// AddVertex adds id if it is not present yet.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = nil
		g.vertices = append(g.vertices, id)
	}

	return nil
}

// HasVertex reports whether id is in the graph.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adj[id]

	return ok
}

// AddEdge inserts from→to with the given cost, creating missing vertices.
// In an undirected graph the reverse edge is inserted too (except for loops).
// Parallel edges are kept; the first one inserted prices the hop.
func (g *Graph) AddEdge(from, to string, cost float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if cost < 0 {
		return fmt.Errorf("%w: %s→%s costs %g", ErrNegativeCost, from, to, cost)
	}
	_ = g.AddVertex(from)
	_ = g.AddVertex(to)

	g.adj[from] = append(g.adj[from], Edge{From: from, To: to, Cost: cost})
	if g.undirected && from != to {
		g.adj[to] = append(g.adj[to], Edge{From: to, To: from, Cost: cost})
	}

	return nil
}

// Neighbors returns the edges leaving id in insertion order.
// It returns nil for unknown vertices.
func (g *Graph) Neighbors(id string) []Edge {
	return slices.Clone(g.adj[id])
}

// Cost returns the cost of the first edge from→to.
func (g *Graph) Cost(from, to string) (float64, bool) {
	for _, e := range g.adj[from] {
		if e.To == to {
			return e.Cost, true
		}
	}

	return 0, false
}

// Vertices returns all vertex IDs in insertion order.
func (g *Graph) Vertices() []string {
	return slices.Clone(g.vertices)
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }
