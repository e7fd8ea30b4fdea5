package tilegame

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// State is one arrangement of tiles. It is an immutable, comparable value and
// can be used directly as a map key. The zero State is a 0×0 board and is
// only useful as a sentinel.
type State struct {
	dim   uint8
	tiles string // row-major, one byte per tile
}

// NewState builds a State from rows of tiles. The board must be non-empty,
// square, at most MaxDim wide and hold each of 1..n² exactly once.
func NewState(rows [][]int) (State, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return State{}, ErrEmptyBoard
	}
	n := len(rows)
	if n > MaxDim {
		return State{}, fmt.Errorf("%w: %d (want 1..%d)", ErrBoardTooLarge, n, MaxDim)
	}
	flat := make([]int, 0, n*n)
	for _, row := range rows {
		if len(row) != n {
			return State{}, fmt.Errorf("%w: row of %d tiles on a %d-row board", ErrNonSquare, len(row), n)
		}
		flat = append(flat, row...)
	}

	return fromTiles(n, flat)
}

// fromTiles validates a row-major tile slice and packs it.
func fromTiles(n int, flat []int) (State, error) {
	seen := make([]bool, n*n+1)
	buf := make([]byte, len(flat))
	for i, t := range flat {
		if t < 1 || t > n*n || seen[t] {
			return State{}, fmt.Errorf("%w: tile %d at index %d", ErrNotPermutation, t, i)
		}
		seen[t] = true
		buf[i] = byte(t)
	}

	return State{dim: uint8(n), tiles: string(buf)}, nil
}

// MustState is NewState that panics on error, for fixtures and examples.
func MustState(rows [][]int) State {
	s, err := NewState(rows)
	if err != nil {
		panic(err)
	}

	return s
}

// ParseState reads a board written as rows separated by ';' and tiles by
// ',' or whitespace, e.g. "4,1,3; 7,2,6; 9,5,8".
func ParseState(text string) (State, error) {
	var rows [][]int
	for _, line := range strings.Split(strings.TrimSpace(text), ";") {
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return State{}, fmt.Errorf("%w: %q: %v", ErrParse, f, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}

	return NewState(rows)
}

// GoalState returns the canonical goal 1..n² in row-major order.
func GoalState(dim int) (State, error) {
	if dim < 1 || dim > MaxDim {
		return State{}, fmt.Errorf("%w: %d (want 1..%d)", ErrBoardTooLarge, dim, MaxDim)
	}
	flat := make([]int, dim*dim)
	for i := range flat {
		flat[i] = i + 1
	}

	return fromTiles(dim, flat)
}

// RandomState returns a uniformly shuffled dim×dim board drawn from rng.
func RandomState(dim int, rng *rand.Rand) (State, error) {
	if dim < 1 || dim > MaxDim {
		return State{}, fmt.Errorf("%w: %d (want 1..%d)", ErrBoardTooLarge, dim, MaxDim)
	}
	perm := rng.Perm(dim * dim)
	for i := range perm {
		perm[i]++
	}

	return fromTiles(dim, perm)
}

// Dim returns the board dimension n.
func (s State) Dim() int { return int(s.dim) }

// Tile returns the tile at (r,c).
func (s State) Tile(r, c int) int { return int(s.tiles[r*int(s.dim)+c]) }

// Tiles returns a row-major copy of the tiles.
func (s State) Tiles() []int {
	out := make([]int, len(s.tiles))
	for i := 0; i < len(s.tiles); i++ {
		out[i] = int(s.tiles[i])
	}

	return out
}

// Rows returns the board as a fresh slice of rows.
func (s State) Rows() [][]int {
	n := int(s.dim)
	rows := make([][]int, n)
	for r := 0; r < n; r++ {
		rows[r] = make([]int, n)
		for c := 0; c < n; c++ {
			rows[r][c] = s.Tile(r, c)
		}
	}

	return rows
}

// Swap returns a new State with the tiles at row-major indices i and j exchanged.
func (s State) Swap(i, j int) State {
	buf := []byte(s.tiles)
	buf[i], buf[j] = buf[j], buf[i]

	return State{dim: s.dim, tiles: string(buf)}
}

// Less orders states by dimension, then row-major tile by tile.
func (s State) Less(o State) bool {
	if s.dim != o.dim {
		return s.dim < o.dim
	}

	return s.tiles < o.tiles
}

// String renders the board in the form accepted by ParseState.
func (s State) String() string {
	var b strings.Builder
	n := int(s.dim)
	for r := 0; r < n; r++ {
		if r > 0 {
			b.WriteByte(';')
		}
		for c := 0; c < n; c++ {
			if c > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(s.Tile(r, c)))
		}
	}

	return b.String()
}

// Pretty draws the board inside a box:
//
//	+---+
//	|1 2|
//	|3 4|
//	+---+
func (s State) Pretty() string {
	n := int(s.dim)
	edge := "+" + strings.Repeat("-", max(2*n-1, 0)) + "+"
	var b strings.Builder
	b.WriteString(edge)
	b.WriteByte('\n')
	for r := 0; r < n; r++ {
		b.WriteByte('|')
		for c := 0; c < n; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(s.Tile(r, c)))
		}
		b.WriteString("|\n")
	}
	b.WriteString(edge)

	return b.String()
}

// MarshalYAML renders the state in its ParseState form.
func (s State) MarshalYAML() (interface{}, error) { return s.String(), nil }
