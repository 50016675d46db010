package search

import (
	"fmt"
	"slices"
)

// Node is a node of the search tree. It holds a state, a link to the node it
// was generated from, the action that produced it, the accumulated path cost
// and its depth. Two nodes reaching the same state by different paths are
// distinct values, but Equal treats them as the same node.
//
// Nodes are immutable once built.
type Node[S comparable, A any] struct {
	state    S
	parent   *Node[S, A] // nil for root
	action   A           // zero value for root
	pathCost float64
	depth    int
}

// NewNode returns a root node holding state.
func NewNode[S comparable, A any](state S) *Node[S, A] {
	return &Node[S, A]{state: state}
}

// NewRoot returns the root node for p, built from p.Initial().
func NewRoot[S comparable, A any](p Problem[S, A]) *Node[S, A] {
	return NewNode[S, A](p.Initial())
}

// State returns the node's state.
func (n *Node[S, A]) State() S { return n.state }

// Parent returns the node this one was generated from, or nil for the root.
func (n *Node[S, A]) Parent() *Node[S, A] { return n.parent }

// Action returns the action that produced this node. For the root it
// returns the zero value of A; use IsRoot to tell the two apart.
func (n *Node[S, A]) Action() A { return n.action }

// PathCost returns the accumulated cost from the root.
func (n *Node[S, A]) PathCost() float64 { return n.pathCost }

// Depth returns the number of ancestors of the node. The root has depth 0.
func (n *Node[S, A]) Depth() int { return n.depth }

// IsRoot reports whether the node has no parent.
func (n *Node[S, A]) IsRoot() bool { return n.parent == nil }

// Key returns the value the node is hashed by: its state.
func (n *Node[S, A]) Key() S { return n.state }

// Equal reports whether n and other hold equal states. Parent, action,
// path cost and depth do not take part in the comparison.
func (n *Node[S, A]) Equal(other *Node[S, A]) bool {
	if n == nil || other == nil {
		return n == other
	}

	return n.state == other.state
}

// ChildNode builds the node reached from n by applying action.
func (n *Node[S, A]) ChildNode(p Problem[S, A], action A) *Node[S, A] {
	next := p.Result(n.state, action)

	return &Node[S, A]{
		state:    next,
		parent:   n,
		action:   action,
		pathCost: p.PathCost(n.pathCost, n.state, action, next),
		depth:    n.depth + 1,
	}
}

// Expand returns the nodes reachable in one step from n, one per action
// returned by p.Actions, in that order.
func (n *Node[S, A]) Expand(p Problem[S, A]) []*Node[S, A] {
	actions := p.Actions(n.state)
	children := make([]*Node[S, A], 0, len(actions))
	for _, a := range actions {
		children = append(children, n.ChildNode(p, a))
	}

	return children
}

// Path returns the nodes from the root to n, root first.
// len(n.Path()) == n.Depth()+1.
func (n *Node[S, A]) Path() []*Node[S, A] {
	path := make([]*Node[S, A], 0, n.depth+1)
	for cur := n; cur != nil; cur = cur.parent {
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path
}

// Solution returns the actions leading from the root to n.
// It is empty for the root.
func (n *Node[S, A]) Solution() []A {
	path := n.Path()
	actions := make([]A, 0, len(path)-1)
	for _, node := range path[1:] {
		actions = append(actions, node.action)
	}

	return actions
}

// String implements fmt.Stringer.
func (n *Node[S, A]) String() string {
	return fmt.Sprintf("<Node %v>", n.state)
}
