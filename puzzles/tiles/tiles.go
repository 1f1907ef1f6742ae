// Package tiles is the 3x3 sliding-tile puzzle. Eight numbered tiles and one
// blank sit on a square board; a move slides a tile next to the blank into it.
package tiles

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the board width and height.
const Size = 3

// Blank marks the empty square on a Board.
const Blank uint8 = 0

// ErrInvalidBoard is returned by Parse for malformed boards.
var ErrInvalidBoard = errors.New("invalid board")

// Point addresses a square by row and column.
type Point struct {
	Row int
	Col int
}

// Board holds tiles by row then column.
type Board [Size][Size]uint8

// State is a board together with the position of its blank.
type State struct {
	Board Board
	Empty Point
}

// DefaultGoal is the ordered board with the blank in the bottom right corner.
var DefaultGoal = MustParse("12345678_")

// Parse reads a board row by row. Tiles are digits 1-8 and the blank is 0 or _.
// Whitespace and / separators are ignored.
func Parse(s string) (State, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '/':
			return -1
		}
		return r
	}, s)
	if len(cleaned) != Size*Size {
		return State{}, fmt.Errorf("%w: want %d squares, got %d", ErrInvalidBoard, Size*Size, len(cleaned))
	}

	var state State
	var seen [Size * Size]bool
	for i, r := range cleaned {
		var tile uint8
		switch {
		case r == '_':
			tile = Blank
		case r >= '0' && r <= '8':
			tile = uint8(r - '0')
		default:
			return State{}, fmt.Errorf("%w: unexpected %q", ErrInvalidBoard, r)
		}
		if seen[tile] {
			return State{}, fmt.Errorf("%w: tile %d appears twice", ErrInvalidBoard, tile)
		}
		seen[tile] = true

		p := Point{Row: i / Size, Col: i % Size}
		state.Board[p.Row][p.Col] = tile
		if tile == Blank {
			state.Empty = p
		}
	}
	return state, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) State {
	state, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return state
}

func (s State) String() string {
	var b strings.Builder
	for row := range Size {
		if row > 0 {
			b.WriteByte('/')
		}
		for col := range Size {
			if tile := s.Board[row][col]; tile == Blank {
				b.WriteByte('_')
			} else {
				b.WriteByte('0' + tile)
			}
		}
	}
	return b.String()
}

// slide returns the state after the tile at to moves into the blank.
func (s State) slide(to Point) State {
	next := s
	next.Board[s.Empty.Row][s.Empty.Col] = s.Board[to.Row][to.Col]
	next.Board[to.Row][to.Col] = Blank
	next.Empty = to
	return next
}

// inversions counts tile pairs out of order, ignoring the blank.
func (s State) inversions() int {
	tiles := make([]uint8, 0, Size*Size-1)
	for row := range Size {
		for col := range Size {
			if tile := s.Board[row][col]; tile != Blank {
				tiles = append(tiles, tile)
			}
		}
	}
	count := 0
	for i := range tiles {
		for j := i + 1; j < len(tiles); j++ {
			if tiles[i] > tiles[j] {
				count++
			}
		}
	}
	return count
}

// Problem implements statesearch.Problem[State].
type Problem struct {
	Goal State
}

// NewProblem targets DefaultGoal.
func NewProblem() Problem {
	return Problem{Goal: DefaultGoal}
}

// Expand moves the blank up, down, left and right, in that order, where the board allows.
func (p Problem) Expand(s State) []State {
	successors := make([]State, 0, 4)
	if s.Empty.Row > 0 {
		successors = append(successors, s.slide(Point{Row: s.Empty.Row - 1, Col: s.Empty.Col}))
	}
	if s.Empty.Row < Size-1 {
		successors = append(successors, s.slide(Point{Row: s.Empty.Row + 1, Col: s.Empty.Col}))
	}
	if s.Empty.Col > 0 {
		successors = append(successors, s.slide(Point{Row: s.Empty.Row, Col: s.Empty.Col - 1}))
	}
	if s.Empty.Col < Size-1 {
		successors = append(successors, s.slide(Point{Row: s.Empty.Row, Col: s.Empty.Col + 1}))
	}
	return successors
}

func (p Problem) GoalState(s State) bool {
	return s.Board == p.Goal.Board
}

// Solvable reports whether the goal can be reached from start. On an odd
// width board a move never changes the inversion parity.
func (p Problem) Solvable(start State) bool {
	return start.inversions()%2 == p.Goal.inversions()%2
}
