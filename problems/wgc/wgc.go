// Package wgc defines the wolf-goat-cabbage river crossing puzzle as a
// search.Problem.
//
// A state is the set of travellers still on the left bank; the right bank is
// its complement. An action is the set of travellers crossing together, and
// always includes the farmer. The puzzle starts with everyone on the left
// bank and is solved when the left bank is empty.
package wgc

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/katalvlaran/lvsearch/search"
)

// Items is a set of travellers, encoded as a bitmask.
type Items uint8

// Travellers.
const (
	Farmer Items = 1 << iota
	Wolf
	Goat
	Cabbage

	None Items = 0
	All        = Farmer | Wolf | Goat | Cabbage
)

// ErrUnknownItem is returned by ParseItems for letters other than F, W, G, C.
var ErrUnknownItem = errors.New("wgc: unknown item")

var (
	itemOrder   = [...]Items{Farmer, Wolf, Goat, Cabbage}
	itemLetters = map[Items]string{Farmer: "F", Wolf: "W", Goat: "G", Cabbage: "C"}
	itemNames   = map[Items]string{Farmer: "Farmer", Wolf: "Wolf", Goat: "Goat", Cabbage: "Cabbage"}
)

// Has reports whether every traveller in other is in s.
func (s Items) Has(other Items) bool { return s&other == other }

// Len returns the number of travellers in s.
func (s Items) Len() int { return bits.OnesCount8(uint8(s)) }

// Toggle moves the travellers in m to the other side of s.
func (s Items) Toggle(m Items) Items { return s ^ m }

// Names returns the full traveller names in F, W, G, C order.
func (s Items) Names() []string {
	names := make([]string, 0, s.Len())
	for _, it := range itemOrder {
		if s.Has(it) {
			names = append(names, itemNames[it])
		}
	}

	return names
}

// String renders s as {F,W,G,C}.
func (s Items) String() string {
	letters := make([]string, 0, s.Len())
	for _, it := range itemOrder {
		if s.Has(it) {
			letters = append(letters, itemLetters[it])
		}
	}

	return "{" + strings.Join(letters, ",") + "}"
}

// ParseItems reads a set from letters such as "FWGC" or "f,g".
// Commas, spaces and braces are ignored; the empty string is the empty set.
func ParseItems(s string) (Items, error) {
	var out Items
	for _, r := range strings.ToUpper(s) {
		switch r {
		case 'F':
			out |= Farmer
		case 'W':
			out |= Wolf
		case 'G':
			out |= Goat
		case 'C':
			out |= Cabbage
		case ',', ' ', '{', '}':
		default:
			return None, fmt.Errorf("%w: %q", ErrUnknownItem, r)
		}
	}

	return out, nil
}

// Safe reports whether neither bank leaves the goat alone with the wolf or
// the cabbage.
func Safe(left Items) bool {
	for _, bank := range []Items{left, All &^ left} {
		if bank.Has(Farmer) {
			continue
		}
		if bank.Has(Wolf|Goat) || bank.Has(Goat|Cabbage) {
			return false
		}
	}

	return true
}

// Problem is the wolf-goat-cabbage puzzle seen from the left bank.
type Problem struct {
	search.UnitCost[Items, Items]

	initial Items
	goal    Items
}

var _ search.Problem[Items, Items] = (*Problem)(nil)

// New returns a puzzle starting from initial and solved at goal.
func New(initial, goal Items) *Problem {
	return &Problem{initial: initial, goal: goal}
}

// Default returns the classic puzzle: everyone on the left bank, goal empty.
func Default() *Problem {
	return New(All, None)
}

// Initial implements search.Problem.
func (p *Problem) Initial() Items { return p.initial }

// Goal returns the goal left bank.
func (p *Problem) Goal() Items { return p.goal }

// GoalTest implements search.Problem.
func (p *Problem) GoalTest(state Items) bool { return state == p.goal }

// Actions implements search.Problem. The farmer always crosses, taking at
// most one passenger:
//
//	even count, farmer on the left:   {F,G}
//	even count, farmer on the right:  {F}
//	only the goat left:               {F}
//	any other single traveller:       {F,G}
//	three travellers:                 {C,F} then {W,F}
func (p *Problem) Actions(state Items) []Items {
	n := state.Len()
	switch {
	case n%2 == 0:
		if state.Has(Farmer) {
			return []Items{Farmer | Goat}
		}
		return []Items{Farmer}
	case n == 1:
		if state == Goat {
			return []Items{Farmer}
		}
		return []Items{Farmer | Goat}
	case n%3 == 0:
		return []Items{Cabbage | Farmer, Wolf | Farmer}
	}

	return nil
}

// Result implements search.Problem: every traveller in action changes bank.
func (p *Problem) Result(state, action Items) Items {
	return state.Toggle(action)
}
