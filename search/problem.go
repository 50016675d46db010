package search

// Problem describes a state space to be searched.
//
// S is the state type. It must be comparable: the engine hashes states to
// deduplicate the frontier and the explored set, and never mutates them.
// A is the action type and is passed through untouched.
type Problem[S comparable, A any] interface {
	// Initial returns the starting state.
	Initial() S

	// GoalTest reports whether state satisfies the goal.
	GoalTest(state S) bool

	// Actions returns the actions executable in state, possibly none.
	// Children are generated in the returned order.
	Actions(state S) []A

	// Result returns the state reached by applying action to state.
	// action is assumed to be one of Actions(state); it is not validated.
	Result(state S, action A) S

	// PathCost returns the cost of a path that arrives at to from from via
	// action, given cost c for the path up to from. It must be non-decreasing.
	PathCost(c float64, from S, action A, to S) float64
}

// UnitCost implements Problem.PathCost with a cost of 1 per step.
// Embed it in problems whose transitions all cost the same.
type UnitCost[S comparable, A any] struct{}

// PathCost returns c + 1.
func (UnitCost[S, A]) PathCost(c float64, _ S, _ A, _ S) float64 { return c + 1 }

// Replay applies actions in order starting from p.Initial() and returns the
// final state. Replaying a Node's Solution reproduces that Node's state.
func Replay[S comparable, A any](p Problem[S, A], actions []A) S {
	state := p.Initial()
	for _, a := range actions {
		state = p.Result(state, a)
	}

	return state
}
