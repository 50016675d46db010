// Package dfs implements depth-first graph search on any search.Problem.
//
// What:
//
//   - DepthFirstGraphSearch(problem, opts...): explores as deep as possible
//     along the most recently generated branch before backtracking.
//   - The frontier is a last-in first-out stack seeded with the root.
//   - A popped node is goal-tested first, then its state is marked explored,
//     then it is expanded.
//   - A child is pushed only if its state is neither explored nor already on
//     the stack. Siblings are checked one by one, so two children sharing a
//     state are pushed once.
//
// Ordering:
//
//	Children are pushed in Problem.Actions order, so the child of the last
//	action is expanded next. The returned path is whatever that order yields;
//	it is not guaranteed to be the shortest.
//
// Termination:
//
//	Guaranteed on finite state spaces. Infinite spaces may never return; bound
//	them with search.WithMaxExpansions or search.WithContext.
//
// Complexity:
//
//   - Time:   O(N·B) generated nodes (N reachable states, B branching factor).
//   - Memory: O(N) for the stack, the stacked-state set and the explored set.
//
// Errors:
//
//   - search.ErrNilProblem       problem is nil
//   - search.ErrNoSolution       stack exhausted without a goal
//   - search.ErrOptionViolation  invalid Option
//   - search.ErrExpansionLimit   WithMaxExpansions budget exhausted
//   - context.Canceled           search cancelled via WithContext
//
// Functions:
//
//   - DepthFirstGraphSearch[S, A](p search.Problem[S, A], opts ...search.Option) (*search.Node[S, A], error)
package dfs
