// Package search provides the building blocks shared by the graph-search
// strategies in this module: the Problem contract, the search-tree Node,
// path reconstruction, functional options and sentinel errors.
//
// What
//
//   - Problem[S, A]: describes a state space (initial state, goal test,
//     successor actions, transition result, path cost).
//   - Node[S, A]: one point of the search tree: state, parent link, action,
//     accumulated path cost and depth.
//   - Path / Solution: root-to-node node sequence and the action sequence
//     that replays it.
//   - Option / Config: context, logger, hooks, expansion budget and stats
//     shared by bfs.BreadthFirstGraphSearch and dfs.DepthFirstGraphSearch.
//
// Node identity
//
//	Two nodes are Equal iff their states are equal; parent, action, cost and
//	depth are ignored. Key returns the state itself, which is what the
//	frontier and explored collections hash on. A graph search therefore never
//	holds two nodes with the same state, whatever action sequence produced them.
//
// Parent links
//
//	A child is only ever built from an existing parent, so the parent chain
//	is acyclic by construction and Path always terminates at the root.
//
// Errors
//
//   - ErrNilProblem       if a nil Problem is passed to a search.
//   - ErrNoSolution       if the frontier empties without reaching a goal.
//     This is a normal outcome, not a fault.
//   - ErrOptionViolation  if an Option is invalid (negative budget, hook of
//     the wrong node type).
//   - ErrExpansionLimit   if WithMaxExpansions was set and exhausted.
//   - context errors      returned as is when the WithContext context is done.
//
// Usage
//
//	node, err := bfs.BreadthFirstGraphSearch[wgc.Items, wgc.Items](wgc.Default())
//	switch {
//	case errors.Is(err, search.ErrNoSolution):
//		// unreachable goal
//	case err != nil:
//		// cancelled, budget exhausted, bad option...
//	default:
//		fmt.Println(node.Solution())
//	}
package search
