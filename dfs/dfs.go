// Package dfs implements depth-first graph search over a search.Problem.
// The frontier is a stack; a state is never pushed twice nor pushed again
// once explored.
package dfs

import (
	"github.com/katalvlaran/lvsearch/search"
)

// walker encapsulates mutable DFS state.
type walker[S comparable, A any] struct {
	problem  search.Problem[S, A]
	cfg      *search.Config[S, A]
	stack    []*search.Node[S, A]
	frontier map[S]struct{} // states currently on the stack
	explored map[S]struct{}
}

// DepthFirstGraphSearch searches p, always expanding the most recently
// pushed node, and returns the first node popped whose state satisfies the
// goal. It returns search.ErrNoSolution once the stack empties,
// search.ErrNilProblem for a nil p, search.ErrOptionViolation for bad
// options, search.ErrExpansionLimit when the budget runs out, or the
// context error on cancellation.
func DepthFirstGraphSearch[S comparable, A any](p search.Problem[S, A], opts ...search.Option) (*search.Node[S, A], error) {
	if p == nil {
		return nil, search.ErrNilProblem
	}
	cfg, err := search.NewConfig[S, A](opts...)
	if err != nil {
		return nil, err
	}

	w := &walker[S, A]{
		problem:  p,
		cfg:      cfg,
		stack:    make([]*search.Node[S, A], 0, 16),
		frontier: make(map[S]struct{}),
		explored: make(map[S]struct{}),
	}
	w.push(search.NewRoot(p))

	return cfg.Finish(w.loop())
}

// loop pops, tests and expands nodes until a goal is popped, the stack
// empties, or the search is stopped.
func (w *walker[S, A]) loop() (*search.Node[S, A], error) {
	for len(w.stack) > 0 {
		node := w.pop()
		// 1. Goal test on pop
		if w.problem.GoalTest(node.State()) {
			return node, nil
		}
		// 2. Explored before expansion
		w.explored[node.State()] = struct{}{}

		if err := w.cfg.Expanding(node); err != nil {
			return nil, err
		}
		// 3. Push unseen children in action order; the last one is popped next
		children := node.Expand(w.problem)
		w.cfg.Generated(len(children))
		for _, child := range children {
			if w.seen(child.State()) {
				continue
			}
			w.push(child)
		}
	}

	return nil, search.ErrNoSolution
}

// push adds n on top of the stack.
func (w *walker[S, A]) push(n *search.Node[S, A]) {
	w.stack = append(w.stack, n)
	w.frontier[n.State()] = struct{}{}
	w.cfg.Admitted(n, len(w.stack))
}

// pop removes the top of the stack.
func (w *walker[S, A]) pop() *search.Node[S, A] {
	last := len(w.stack) - 1
	n := w.stack[last]
	w.stack[last] = nil
	w.stack = w.stack[:last]
	delete(w.frontier, n.State())

	return n
}

// seen reports whether state is already explored or on the stack.
func (w *walker[S, A]) seen(state S) bool {
	if _, ok := w.explored[state]; ok {
		return true
	}
	_, ok := w.frontier[state]

	return ok
}
