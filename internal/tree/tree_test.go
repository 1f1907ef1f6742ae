package tree

import (
	"testing"

	"github.com/matryer/is"
)

func TestAddAssignsStableHandles(t *testing.T) {
	is := is.New(t)
	tr := New("a")
	b := tr.Add("b", Root)
	c := tr.Add("c", b)

	is.Equal(b, Handle(1))
	is.Equal(c, Handle(2))
	is.Equal(tr.Len(), 3)
	is.Equal(tr.State(c), "c")

	p, ok := tr.Parent(c)
	is.True(ok)
	is.Equal(p, b)

	_, ok = tr.Parent(Root)
	is.True(!ok) // root has no parent
}

func TestBacktrackExcludesStart(t *testing.T) {
	is := is.New(t)
	tr := New("start")
	a := tr.Add("a", Root)
	tr.Add("x", Root)
	b := tr.Add("b", a)
	c := tr.Add("c", b)

	is.Equal(tr.Backtrack(c, "start"), []string{"a", "b", "c"})
}

func TestBacktrackFromRootIsEmpty(t *testing.T) {
	is := is.New(t)
	tr := New(7)
	is.Equal(len(tr.Backtrack(Root, 7)), 0)
}

// A non-root node carrying the start value ends the walk early. The engine
// never produces such a tree, but the stop rule is value based.
func TestBacktrackStopsAtFirstStartValue(t *testing.T) {
	is := is.New(t)
	tr := New("s")
	a := tr.Add("a", Root)
	again := tr.Add("s", a)
	b := tr.Add("b", again)

	is.Equal(tr.Backtrack(b, "s"), []string{"b"})
}
