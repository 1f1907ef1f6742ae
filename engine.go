package statesearch

import (
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/pdrpinto/statesearch/internal/tree"
)

type status int

const (
	running status = iota
	succeeded
	exhausted
)

// engine owns the bookkeeping of a single search invocation.
type engine[StateType comparable] struct {
	problem  Problem[StateType]
	start    StateType
	strategy Strategy
	rng      RandomSource
	logger   zerolog.Logger

	frontier *Frontier[StateType]
	closed   map[StateType]struct{}
	// closedOrder keeps the closed states in expansion order for snapshots.
	closedOrder []StateType
	searchTree  *tree.Tree[StateType]

	status   status
	current  StateType
	path     []StateType
	expanded int
	steps    int
}

func newEngine[StateType comparable](problem Problem[StateType], start StateType, options Options) *engine[StateType] {
	e := &engine[StateType]{
		problem:    problem,
		start:      start,
		strategy:   options.Strategy,
		rng:        options.Random,
		logger:     options.Logger,
		frontier:   newFrontier[StateType](),
		closed:     make(map[StateType]struct{}),
		searchTree: tree.New(start),
	}
	e.frontier.Push(FrontierEntry[StateType]{State: start, Handle: tree.Root})
	e.logger.Debug().Stringer("strategy", e.strategy).Msg("search-start")
	return e
}

// step removes one frontier entry and either finishes the search or expands it.
func (e *engine[StateType]) step() {
	if e.status != running {
		return
	}

	e.steps++
	entry := e.frontier.Take(e.strategy, e.rng)
	e.current = entry.State
	if _, seen := e.closed[entry.State]; !seen {
		e.closed[entry.State] = struct{}{}
		e.closedOrder = append(e.closedOrder, entry.State)
	}

	if e.problem.GoalState(entry.State) {
		e.status = succeeded
		e.path = e.searchTree.Backtrack(entry.Handle, e.start)
		e.logger.Debug().Int("steps", e.steps).Int("length", len(e.path)).Msg("goal-found")
		return
	}

	e.expanded++
	successors := e.newSuccessors(entry.State)
	for _, successor := range successors {
		handle := e.searchTree.Add(successor, entry.Handle)
		e.frontier.Push(FrontierEntry[StateType]{State: successor, Handle: handle})
	}
	e.logger.Debug().
		Int("step", e.steps).
		Int("new", len(successors)).
		Int("frontier", e.frontier.Len()).
		Msg("expand")

	// The frontier starts with the start state, so it can only run dry here.
	if e.frontier.Len() == 0 {
		e.status = exhausted
		e.logger.Debug().Int("steps", e.steps).Int("closed", len(e.closedOrder)).Msg("frontier-exhausted")
	}
}

// newSuccessors drops candidates already closed or already waiting in the
// frontier. Repeats within one expansion are scheduled once.
func (e *engine[StateType]) newSuccessors(state StateType) []StateType {
	return lo.Filter(lo.Uniq(e.problem.Expand(state)), func(successor StateType, _ int) bool {
		_, closed := e.closed[successor]
		return !closed && !e.frontier.Contains(successor)
	})
}

func (e *engine[StateType]) result() Result[StateType] {
	return Result[StateType]{
		Path:           e.path,
		Found:          e.status == succeeded,
		ExpandedStates: e.expanded,
		TreeSize:       e.searchTree.Len(),
	}
}
