package statesearch

import "slices"

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot[StateType comparable] struct {
	Current StateType
	// Open lists the frontier in insertion order.
	Open []StateType
	// Closed lists the expanded states in the order they were taken.
	Closed    []StateType
	Done      bool
	Found     bool
	Path      []StateType
	StepIndex int
}

// Stepper advances a search one frontier removal at a time.
type Stepper[StateType comparable] struct {
	engine *engine[StateType]
}

// NewStepper creates a stepper running the same engine as Search.
func NewStepper[StateType comparable](
	problem Problem[StateType],
	startState StateType,
	options ...Option,
) *Stepper[StateType] {
	return &Stepper[StateType]{engine: newEngine(problem, startState, buildOptions(options))}
}

// Step advances the search by one removal and returns a snapshot. Once the
// search is done it keeps returning the final snapshot.
func (s *Stepper[StateType]) Step() StepSnapshot[StateType] {
	s.engine.step()
	return s.snapshot()
}

// Result reports the outcome so far; Found stays false until a goal is taken.
func (s *Stepper[StateType]) Result() Result[StateType] {
	return s.engine.result()
}

func (s *Stepper[StateType]) snapshot() StepSnapshot[StateType] {
	e := s.engine
	return StepSnapshot[StateType]{
		Current:   e.current,
		Open:      e.frontier.States(),
		Closed:    slices.Clone(e.closedOrder),
		Done:      e.status != running,
		Found:     e.status == succeeded,
		Path:      slices.Clone(e.path),
		StepIndex: e.steps,
	}
}
