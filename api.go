package statesearch

import (
	"github.com/rs/zerolog"
	"lukechampine.com/frand"
)

// Problem is generic over state type StateType.
// StateType must be comparable: two states are the same exactly when they compare equal.
type Problem[StateType comparable] interface {
	// Expand returns every state reachable from state in one transition.
	Expand(state StateType) []StateType
	// GoalState reports whether state terminates the search.
	GoalState(state StateType) bool
}

// ProblemFuncs adapts a pair of functions to Problem.
type ProblemFuncs[StateType comparable] struct {
	ExpandFunc func(StateType) []StateType
	GoalFunc   func(StateType) bool
}

func (p ProblemFuncs[StateType]) Expand(state StateType) []StateType { return p.ExpandFunc(state) }
func (p ProblemFuncs[StateType]) GoalState(state StateType) bool     { return p.GoalFunc(state) }

// RandomSource supplies the choices made by the Random strategy.
// *frand.RNG satisfies it.
type RandomSource interface {
	Intn(n int) int
}

type globalRandom struct{}

func (globalRandom) Intn(n int) int { return frand.Intn(n) }

// Result contains the outcome of a search
type Result[StateType comparable] struct {
	// Path runs from the state after the start up to and including the goal.
	// It is nil when no goal was reachable.
	Path  []StateType
	Found bool
	// ExpandedStates counts calls to Expand. No state is expanded twice.
	ExpandedStates int
	// TreeSize counts search tree nodes, the root included. A state repeated
	// within one Expand result is added to the tree once.
	TreeSize int
}

// Options defines parameters for the search.
type Options struct {
	Strategy Strategy
	Random   RandomSource
	Logger   zerolog.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithStrategy selects the traversal order. The default is BreadthFirst.
func WithStrategy(strategy Strategy) Option {
	return func(options *Options) { options.Strategy = strategy }
}

// WithRandom replaces the process-wide generator used by the Random strategy.
func WithRandom(source RandomSource) Option {
	return func(options *Options) { options.Random = source }
}

// WithLogger sets the logger receiving per-step debug events.
func WithLogger(logger zerolog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

func buildOptions(options []Option) Options {
	searchOptions := Options{
		Strategy: BreadthFirst,
		Random:   globalRandom{},
		Logger:   zerolog.Nop(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Random == nil {
		searchOptions.Random = globalRandom{}
	}
	return searchOptions
}

// Search explores the states reachable from startState until one satisfies
// the goal test or the frontier runs dry. Running out of states is reported
// through Result.Found, not as an error.
func Search[StateType comparable](
	problem Problem[StateType],
	startState StateType,
	options ...Option,
) Result[StateType] {
	e := newEngine(problem, startState, buildOptions(options))
	for e.status == running {
		e.step()
	}
	return e.result()
}
