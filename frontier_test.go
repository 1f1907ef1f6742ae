package statesearch

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/pdrpinto/statesearch/internal/tree"
)

type fixedIndex int

func (f fixedIndex) Intn(int) int { return int(f) }

func fill(values ...string) *Frontier[string] {
	frontier := newFrontier[string]()
	for i, v := range values {
		frontier.Push(FrontierEntry[string]{State: v, Handle: tree.Handle(i)})
	}
	return frontier
}

func TestFrontierTakeOrder(t *testing.T) {
	is := is.New(t)

	bfs := fill("a", "b", "c")
	is.Equal(bfs.Take(BreadthFirst, nil).State, "a")
	is.Equal(bfs.States(), []string{"b", "c"})

	dfs := fill("a", "b", "c")
	is.Equal(dfs.Take(DepthFirst, nil).State, "c")
	is.Equal(dfs.States(), []string{"a", "b"})

	rnd := fill("a", "b", "c")
	entry := rnd.Take(Random, fixedIndex(1))
	is.Equal(entry.State, "b")
	is.Equal(entry.Handle, tree.Handle(1))
	is.Equal(rnd.States(), []string{"a", "c"}) // order of the rest is kept
}

func TestFrontierMembership(t *testing.T) {
	is := is.New(t)
	frontier := fill("a", "b")
	is.True(frontier.Contains("a"))
	is.True(!frontier.Contains("z"))

	frontier.Take(BreadthFirst, nil)
	is.True(!frontier.Contains("a"))
	is.Equal(frontier.Len(), 1)
}

func TestFrontierCompactsAfterManyTakes(t *testing.T) {
	is := is.New(t)
	frontier := newFrontier[int]()
	for i := range 200 {
		frontier.Push(FrontierEntry[int]{State: i})
	}
	for i := range 150 {
		is.Equal(frontier.Take(BreadthFirst, nil).State, i)
	}
	frontier.Push(FrontierEntry[int]{State: 1000})

	is.Equal(frontier.Len(), 51)
	states := frontier.States()
	is.Equal(states[0], 150)
	is.Equal(states[50], 1000)
	is.True(frontier.head < 150) // consumed prefix was dropped
	is.True(frontier.Contains(199))
	is.True(!frontier.Contains(0))
}

func TestParseStrategy(t *testing.T) {
	is := is.New(t)
	for name, want := range map[string]Strategy{
		"bfs":           BreadthFirst,
		"Breadth-First": BreadthFirst,
		"dfs":           DepthFirst,
		" depth-first ": DepthFirst,
		"random":        Random,
	} {
		got, err := ParseStrategy(name)
		is.NoErr(err)
		is.Equal(got, want)
	}

	_, err := ParseStrategy("a-star")
	is.True(errors.Is(err, ErrUnknownStrategy))
	is.Equal(Random.String(), "random")
}
