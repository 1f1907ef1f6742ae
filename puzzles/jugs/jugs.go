// Package jugs is the two-jug water puzzle: measure Target units using jugs
// of capacity J1Max and J2Max that can be filled, emptied or poured into
// each other.
package jugs

import "fmt"

// State holds the current contents of both jugs.
type State struct {
	J1 uint32
	J2 uint32
}

func (s State) String() string {
	return fmt.Sprintf("(%d,%d)", s.J1, s.J2)
}

// Problem implements statesearch.Problem[State].
type Problem struct {
	J1Max  uint32
	J2Max  uint32
	Target uint32
}

// Expand lists successors in a fixed order: empty j1, empty j2, fill j1,
// fill j2, pour j1 into j2, pour j2 into j1.
func (p Problem) Expand(s State) []State {
	successors := make([]State, 0, 6)

	if s.J1 > 0 {
		successors = append(successors, State{J1: 0, J2: s.J2})
	}
	if s.J2 > 0 {
		successors = append(successors, State{J1: s.J1, J2: 0})
	}
	if s.J1 < p.J1Max {
		successors = append(successors, State{J1: p.J1Max, J2: s.J2})
	}
	if s.J2 < p.J2Max {
		successors = append(successors, State{J1: s.J1, J2: p.J2Max})
	}

	if s.J1 > 0 && s.J2 < p.J2Max {
		if space := p.J2Max - s.J2; s.J1 > space {
			successors = append(successors, State{J1: s.J1 - space, J2: p.J2Max})
		} else {
			successors = append(successors, State{J1: 0, J2: s.J1 + s.J2})
		}
	}
	if s.J2 > 0 && s.J1 < p.J1Max {
		if space := p.J1Max - s.J1; s.J2 > space {
			successors = append(successors, State{J1: p.J1Max, J2: s.J2 - space})
		} else {
			successors = append(successors, State{J1: s.J1 + s.J2, J2: 0})
		}
	}

	return successors
}

// GoalState holds once either jug contains exactly Target.
func (p Problem) GoalState(s State) bool {
	return s.J1 == p.Target || s.J2 == p.Target
}
