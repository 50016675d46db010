// Package bfs provides breadth-first graph search over any search.Problem,
// returning the goal node from which the path and the action sequence can be
// reconstructed.
//
// What
//
//   - Expand nodes in first-in first-out order, starting from the root built
//     from Problem.Initial.
//   - Test the root before anything else; a goal root is returned at once.
//   - Test every other node when it is generated: a child whose state
//     satisfies the goal is returned without being enqueued.
//   - Suppress duplicates: a child is discarded when its state has already
//     been explored or is waiting in the queue.
//
// Why
//
//   - For unit-cost problems the returned node is at minimum depth among all
//     goal states (shallowest goal). Testing on generation instead of on
//     dequeue saves a whole layer of expansion.
//   - Graph search (explored set) terminates on every finite state space.
//
// Determinism
//
//	Children are generated in the order Problem.Actions returns them, and
//	among goals of equal depth the first one generated wins.
//
// Complexity (N = reachable states, B = branching factor)
//
//   - Time:   O(N·B) generated nodes, each checked in O(1) against two hash sets.
//   - Memory: O(N) for the queue, the queued-state set and the explored set.
//
// Usage
//
//	node, err := bfs.BreadthFirstGraphSearch[State, Action](problem)
//	if errors.Is(err, search.ErrNoSolution) {
//		// goal unreachable
//	}
//	actions := node.Solution()
//
//	// With options:
//	var stats search.Stats
//	node, err = bfs.BreadthFirstGraphSearch[State, Action](
//		problem,
//		search.WithContext(ctx),
//		search.WithMaxExpansions(10_000),
//		search.WithStats(&stats),
//		search.WithOnExpand(func(n *search.Node[State, Action]) { /* ... */ }),
//	)
//
// Errors
//
//   - search.ErrNilProblem       if problem is nil.
//   - search.ErrNoSolution       if the queue empties without a goal.
//   - search.ErrOptionViolation  if an Option is invalid.
//   - search.ErrExpansionLimit   if the WithMaxExpansions budget runs out.
//   - context.Canceled / context.DeadlineExceeded from WithContext.
package bfs
