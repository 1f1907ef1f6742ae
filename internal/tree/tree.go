// Package tree holds the search tree used to rebuild solution paths.
package tree

import "slices"

// Handle identifies a node in a Tree. Handles are assigned in creation order
// and are never reused.
type Handle int

// Root is the handle of the node every Tree is created with.
const Root Handle = 0

const noParent Handle = -1

type node[StateType comparable] struct {
	state  StateType
	parent Handle
}

// Tree is an append-only arena of states linked to the node that generated them.
type Tree[StateType comparable] struct {
	nodes []node[StateType]
}

// New creates a tree holding a single root node.
func New[StateType comparable](root StateType) *Tree[StateType] {
	return &Tree[StateType]{nodes: []node[StateType]{{state: root, parent: noParent}}}
}

// Add stores state as a child of parent and returns its handle.
func (t *Tree[StateType]) Add(state StateType, parent Handle) Handle {
	t.nodes = append(t.nodes, node[StateType]{state: state, parent: parent})
	return Handle(len(t.nodes) - 1)
}

func (t *Tree[StateType]) State(h Handle) StateType {
	return t.nodes[h].state
}

// Parent returns the handle of the node that generated h. The root has none.
func (t *Tree[StateType]) Parent(h Handle) (Handle, bool) {
	p := t.nodes[h].parent
	return p, p != noParent
}

func (t *Tree[StateType]) Len() int {
	return len(t.nodes)
}

// Backtrack rebuilds the path ending at from. It walks parent links and
// records every state until it reaches a node whose value equals start;
// that node is not recorded. The stop test compares values, not handles.
func (t *Tree[StateType]) Backtrack(from Handle, start StateType) []StateType {
	path := []StateType{}
	current := from
	for t.State(current) != start {
		path = append(path, t.State(current))
		parent, ok := t.Parent(current)
		if !ok {
			break
		}
		current = parent
	}
	slices.Reverse(path)
	return path
}
