package bfs_test

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/problems/route"
	"github.com/katalvlaran/lvsearch/search"
)

// buildProblem creates a directed route problem from "from>to" pairs.
func buildProblem(t *testing.T, start string, goals []string, edges ...string) *route.Problem {
	t.Helper()
	g := route.NewGraph()
	for _, e := range edges {
		from, to, ok := strings.Cut(e, ">")
		require.True(t, ok, e)
		require.NoError(t, g.AddEdge(from, to, 1))
	}
	_ = g.AddVertex(start)
	p, err := route.NewProblem(g, start, goals...)
	require.NoError(t, err)

	return p
}

func states(path []*search.Node[string, string]) []string {
	out := make([]string, len(path))
	for i, n := range path {
		out[i] = n.State()
	}

	return out
}

// naturals counts upwards forever; no goal is ever reached.
type naturals struct {
	search.UnitCost[int, int]
}

func (naturals) Initial() int               { return 0 }
func (naturals) GoalTest(int) bool          { return false }
func (naturals) Actions(int) []int          { return []int{1} }
func (naturals) Result(state, step int) int { return state + step }

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BreadthFirstGraphSearch[string, string](nil)
	require.ErrorIs(t, err, search.ErrNilProblem)

	p := buildProblem(t, "A", []string{"B"}, "A>B")
	_, err = bfs.BreadthFirstGraphSearch[string, string](p, search.WithMaxExpansions(-3))
	require.ErrorIs(t, err, search.ErrOptionViolation)
}

// TestBFS_GoalRoot: a goal root is returned without expanding anything.
func TestBFS_GoalRoot(t *testing.T) {
	p := buildProblem(t, "A", []string{"A"}, "A>B")
	var stats search.Stats
	node, err := bfs.BreadthFirstGraphSearch[string, string](p, search.WithStats(&stats))
	require.NoError(t, err)
	assert.True(t, node.IsRoot())
	assert.Empty(t, node.Solution())
	assert.Equal(t, search.Stats{}, stats)
}

// TestBFS_GoalOnGeneration: the goal child is returned as soon as it is
// generated, before its queued siblings are expanded.
func TestBFS_GoalOnGeneration(t *testing.T) {
	p := buildProblem(t, "A", []string{"G"}, "A>B", "A>G", "B>C")
	var expanded, admitted []string
	var stats search.Stats
	node, err := bfs.BreadthFirstGraphSearch[string, string](p,
		search.WithStats(&stats),
		search.WithOnExpand(func(n *search.Node[string, string]) { expanded = append(expanded, n.State()) }),
		search.WithOnGenerate(func(n *search.Node[string, string]) { admitted = append(admitted, n.State()) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"G"}, node.Solution())
	assert.Equal(t, []string{"A"}, expanded)
	assert.Equal(t, []string{"A", "B"}, admitted, "goal child is never enqueued")
	assert.Equal(t, search.Stats{Expanded: 1, Generated: 2, MaxFrontier: 1}, stats)
}

// TestBFS_ShallowestGoal: the deeper goal behind the first action loses.
func TestBFS_ShallowestGoal(t *testing.T) {
	p := buildProblem(t, "A", []string{"X", "Y"},
		"A>B", "B>C", "C>X", // X at depth 3
		"A>D", "D>Y", // Y at depth 2
	)
	node, err := bfs.BreadthFirstGraphSearch[string, string](p)
	require.NoError(t, err)
	assert.Equal(t, "Y", node.State())
	assert.Equal(t, 2, node.Depth())
	assert.Equal(t, []string{"A", "D", "Y"}, states(node.Path()))
}

// TestBFS_TieGoesToFirstGenerated: two goals at equal depth, first wins.
func TestBFS_TieGoesToFirstGenerated(t *testing.T) {
	p := buildProblem(t, "A", []string{"X", "Y"}, "A>B", "A>C", "C>Y", "B>X")
	node, err := bfs.BreadthFirstGraphSearch[string, string](p)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "X"}, node.Solution())
}

// TestBFS_FrontierDedup: C is queued from A, so B's edge to C is ignored
// and C keeps A as its parent.
func TestBFS_FrontierDedup(t *testing.T) {
	p := buildProblem(t, "A", []string{"D"}, "A>B", "A>C", "B>C", "C>D")
	var admitted []string
	node, err := bfs.BreadthFirstGraphSearch[string, string](p,
		search.WithOnGenerate(func(n *search.Node[string, string]) { admitted = append(admitted, n.State()) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D"}, states(node.Path()))
	assert.Equal(t, []string{"A", "B", "C"}, admitted)
}

// TestBFS_ExploredDedup: edges back to explored states never re-enqueue them.
func TestBFS_ExploredDedup(t *testing.T) {
	p := buildProblem(t, "A", nil, "A>B", "B>A", "B>C", "C>A", "C>B")
	var expanded []string
	_, err := bfs.BreadthFirstGraphSearch[string, string](p,
		search.WithOnExpand(func(n *search.Node[string, string]) { expanded = append(expanded, n.State()) }),
	)
	require.ErrorIs(t, err, search.ErrNoSolution)
	assert.Equal(t, []string{"A", "B", "C"}, expanded)
}

// TestBFS_NoSolution: an always-false goal on a finite space terminates.
func TestBFS_NoSolution(t *testing.T) {
	g := route.NewGraph(route.WithUndirected())
	for i := 0; i < 20; i++ {
		require.NoError(t, g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", (i+1)%20), 1))
	}
	p, err := route.NewProblem(g, "v0")
	require.NoError(t, err)

	var stats search.Stats
	node, err := bfs.BreadthFirstGraphSearch[string, string](p, search.WithStats(&stats))
	require.ErrorIs(t, err, search.ErrNoSolution)
	assert.Nil(t, node)
	assert.Equal(t, 20, stats.Expanded)
}

func TestBFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BreadthFirstGraphSearch[int, int](naturals{}, search.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestBFS_ExpansionLimit(t *testing.T) {
	var stats search.Stats
	_, err := bfs.BreadthFirstGraphSearch[int, int](naturals{},
		search.WithMaxExpansions(100), search.WithStats(&stats))
	require.ErrorIs(t, err, search.ErrExpansionLimit)
	assert.Equal(t, 100, stats.Expanded)
}

// levels computes hop distances from start with a plain level-by-level sweep.
func levels(g *route.Graph, start string) map[string]int {
	dist := map[string]int{start: 0}
	layer := []string{start}
	for len(layer) > 0 {
		var next []string
		for _, v := range layer {
			for _, e := range g.Neighbors(v) {
				if _, ok := dist[e.To]; !ok {
					dist[e.To] = dist[v] + 1
					next = append(next, e.To)
				}
			}
		}
		layer = next
	}

	return dist
}

// TestBFS_RandomGraphsShallowest checks the returned depth against the true
// minimum goal depth and replays every solution.
func TestBFS_RandomGraphsShallowest(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 200; round++ {
		const n = 12
		g := route.NewGraph()
		for i := 0; i < n; i++ {
			_ = g.AddVertex(fmt.Sprintf("v%d", i))
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if rng.Float64() < 0.15 {
					_ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", j), 1)
				}
			}
		}
		goals := []string{fmt.Sprintf("v%d", rng.Intn(n)), fmt.Sprintf("v%d", rng.Intn(n))}
		p, err := route.NewProblem(g, "v0", goals...)
		require.NoError(t, err)

		best := -1
		dist := levels(g, "v0")
		for _, goal := range goals {
			if d, ok := dist[goal]; ok && (best < 0 || d < best) {
				best = d
			}
		}

		node, err := bfs.BreadthFirstGraphSearch[string, string](p)
		if best < 0 {
			require.ErrorIs(t, err, search.ErrNoSolution, "round %d", round)
			continue
		}
		require.NoError(t, err, "round %d", round)
		require.True(t, p.GoalTest(node.State()))
		require.Equal(t, best, node.Depth(), "round %d", round)
		require.Equal(t, float64(best), node.PathCost())
		require.Equal(t, node.State(), search.Replay[string, string](p, node.Solution()))
	}
}
