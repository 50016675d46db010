// Package bfs provides breadth-first graph search over a search.Problem.
//
// Goals are detected when a child is generated, not when it is dequeued,
// so the shallowest goal is returned for unit-cost problems.
package bfs

import (
	"github.com/katalvlaran/lvsearch/search"
)

// walker encapsulates mutable BFS state.
type walker[S comparable, A any] struct {
	problem  search.Problem[S, A]
	cfg      *search.Config[S, A]
	queue    []*search.Node[S, A]
	frontier map[S]struct{} // states currently queued
	explored map[S]struct{}
}

// BreadthFirstGraphSearch searches p layer by layer and returns the first
// goal node generated. It returns search.ErrNoSolution when every reachable
// state has been explored, search.ErrNilProblem for a nil p,
// search.ErrOptionViolation for bad options, search.ErrExpansionLimit when
// the budget runs out, or the context error on cancellation.
func BreadthFirstGraphSearch[S comparable, A any](p search.Problem[S, A], opts ...search.Option) (*search.Node[S, A], error) {
	if p == nil {
		return nil, search.ErrNilProblem
	}
	cfg, err := search.NewConfig[S, A](opts...)
	if err != nil {
		return nil, err
	}

	// A goal root never enters the frontier
	root := search.NewRoot(p)
	if p.GoalTest(root.State()) {
		return cfg.Finish(root, nil)
	}

	w := &walker[S, A]{
		problem:  p,
		cfg:      cfg,
		queue:    make([]*search.Node[S, A], 0, 16),
		frontier: make(map[S]struct{}),
		explored: make(map[S]struct{}),
	}
	w.enqueue(root)

	return cfg.Finish(w.loop())
}

// loop processes the queue until a goal child appears, the queue empties,
// or the search is stopped.
func (w *walker[S, A]) loop() (*search.Node[S, A], error) {
	for len(w.queue) > 0 {
		node := w.dequeue()
		w.explored[node.State()] = struct{}{}

		if err := w.cfg.Expanding(node); err != nil {
			return nil, err
		}
		children := node.Expand(w.problem)
		w.cfg.Generated(len(children))
		for _, child := range children {
			if w.seen(child.State()) {
				continue
			}
			if w.problem.GoalTest(child.State()) {
				return child, nil
			}
			w.enqueue(child)
		}
	}

	return nil, search.ErrNoSolution
}

// enqueue appends n to the queue and records its state as queued.
func (w *walker[S, A]) enqueue(n *search.Node[S, A]) {
	w.queue = append(w.queue, n)
	w.frontier[n.State()] = struct{}{}
	w.cfg.Admitted(n, len(w.queue))
}

// dequeue pops the oldest node.
func (w *walker[S, A]) dequeue() *search.Node[S, A] {
	n := w.queue[0]
	w.queue[0] = nil
	w.queue = w.queue[1:]
	delete(w.frontier, n.State())

	return n
}

// seen reports whether state is already explored or queued.
func (w *walker[S, A]) seen(state S) bool {
	if _, ok := w.explored[state]; ok {
		return true
	}
	_, ok := w.frontier[state]

	return ok
}
