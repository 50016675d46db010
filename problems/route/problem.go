package route

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/search"
)

// Problem asks for a route from a start vertex to any of a set of goal
// vertices. With no goals at all the problem has no solution.
type Problem struct {
	graph *Graph
	start string
	goals map[string]struct{}
}

var _ search.Problem[string, string] = (*Problem)(nil)

// NewProblem returns a Problem over g. start and every goal must be vertices of g.
func NewProblem(g *Graph, start string, goals ...string) (*Problem, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: start %q", ErrVertexNotFound, start)
	}
	set := make(map[string]struct{}, len(goals))
	for _, id := range goals {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("%w: goal %q", ErrVertexNotFound, id)
		}
		set[id] = struct{}{}
	}

	return &Problem{graph: g, start: start, goals: set}, nil
}

// Graph returns the underlying graph.
func (p *Problem) Graph() *Graph { return p.graph }

// Initial implements search.Problem.
func (p *Problem) Initial() string { return p.start }

// GoalTest implements search.Problem.
func (p *Problem) GoalTest(state string) bool {
	_, ok := p.goals[state]

	return ok
}

// Actions implements search.Problem: the destinations of the edges leaving
// state, in insertion order.
func (p *Problem) Actions(state string) []string {
	edges := p.graph.adj[state]
	actions := make([]string, 0, len(edges))
	for _, e := range edges {
		actions = append(actions, e.To)
	}

	return actions
}

// Result implements search.Problem: following an edge lands on its destination.
func (p *Problem) Result(_ string, action string) string { return action }

// PathCost implements search.Problem by adding the cost of the edge from→to.
func (p *Problem) PathCost(c float64, from string, _ string, to string) float64 {
	cost, _ := p.graph.Cost(from, to)

	return c + cost
}
