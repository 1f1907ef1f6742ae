package statesearch

import (
	"slices"

	"github.com/pdrpinto/statesearch/internal/tree"
)

// FrontierEntry pairs a scheduled state with its node in the search tree.
type FrontierEntry[StateType comparable] struct {
	State  StateType
	Handle tree.Handle
}

// Frontier is the open list. Entries are always appended; the strategy only
// decides which one is taken. The relative order of the remaining entries is
// kept for every strategy.
type Frontier[StateType comparable] struct {
	entries []FrontierEntry[StateType]
	head    int
	members map[StateType]int
}

func newFrontier[StateType comparable]() *Frontier[StateType] {
	return &Frontier[StateType]{members: make(map[StateType]int)}
}

func (frontier *Frontier[StateType]) Len() int { return len(frontier.entries) - frontier.head }

// Contains reports whether a state equal to state is waiting in the frontier.
func (frontier *Frontier[StateType]) Contains(state StateType) bool {
	return frontier.members[state] > 0
}

func (frontier *Frontier[StateType]) Push(entry FrontierEntry[StateType]) {
	frontier.entries = append(frontier.entries, entry)
	frontier.members[entry.State]++
}

// Take removes one entry according to strategy. rng is only consulted for Random.
// The frontier must not be empty.
func (frontier *Frontier[StateType]) Take(strategy Strategy, rng RandomSource) FrontierEntry[StateType] {
	var entry FrontierEntry[StateType]
	switch strategy {
	case DepthFirst:
		last := len(frontier.entries) - 1
		entry = frontier.entries[last]
		frontier.entries = frontier.entries[:last]
	case Random:
		i := frontier.head + rng.Intn(frontier.Len())
		entry = frontier.entries[i]
		frontier.entries = slices.Delete(frontier.entries, i, i+1)
	default:
		entry = frontier.entries[frontier.head]
		frontier.entries[frontier.head] = FrontierEntry[StateType]{}
		frontier.head++
		frontier.compact()
	}

	if frontier.members[entry.State] <= 1 {
		delete(frontier.members, entry.State)
	} else {
		frontier.members[entry.State]--
	}
	return entry
}

// States returns the waiting states in insertion order.
func (frontier *Frontier[StateType]) States() []StateType {
	states := make([]StateType, 0, frontier.Len())
	for _, entry := range frontier.entries[frontier.head:] {
		states = append(states, entry.State)
	}
	return states
}

// compact drops the consumed prefix once it dominates the backing slice.
func (frontier *Frontier[StateType]) compact() {
	if frontier.head < 64 || frontier.head*2 < len(frontier.entries) {
		return
	}
	n := copy(frontier.entries, frontier.entries[frontier.head:])
	clear(frontier.entries[n:])
	frontier.entries = frontier.entries[:n]
	frontier.head = 0
}
