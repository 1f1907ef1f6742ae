package statesearch

import (
	"errors"
	"fmt"
	"strings"
)

// Strategy selects which frontier entry is removed next.
type Strategy int

const (
	// BreadthFirst removes the oldest entry. Paths found have the fewest transitions.
	BreadthFirst Strategy = iota
	// DepthFirst removes the newest entry.
	DepthFirst
	// Random removes a uniformly chosen entry.
	Random
)

// ErrUnknownStrategy is returned by ParseStrategy for names it does not know.
var ErrUnknownStrategy = errors.New("unknown strategy")

func (s Strategy) String() string {
	switch s {
	case BreadthFirst:
		return "breadth-first"
	case DepthFirst:
		return "depth-first"
	case Random:
		return "random"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy accepts the long names returned by String as well as bfs and dfs.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs", "breadth-first":
		return BreadthFirst, nil
	case "dfs", "depth-first":
		return DepthFirst, nil
	case "random", "rand":
		return Random, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}
