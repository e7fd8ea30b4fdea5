package tilegame

import "fmt"

// MaxDim is the largest supported board dimension; tiles are packed into
// single bytes, so n² must not exceed 255.
const MaxDim = 15

// Board describes the geometry of an n×n tile board. It is immutable once built.
// Cells are addressed by (row, col) and stored row-major.
type Board struct {
	Dim         int
	swapOffsets [][2]int
}

// NewBoard returns the geometry for a dim×dim board.
// Returns ErrBoardTooLarge unless 1 ≤ dim ≤ MaxDim.
func NewBoard(dim int) (*Board, error) {
	if dim < 1 || dim > MaxDim {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrBoardTooLarge, dim, MaxDim)
	}

	return &Board{
		Dim: dim,
		// right and down: every adjacent pair is covered exactly once
		swapOffsets: [][2]int{{0, 1}, {1, 0}},
	}, nil
}

// Cells returns the number of cells, n².
func (b *Board) Cells() int { return b.Dim * b.Dim }

// InBounds reports whether (r,c) lies on the board.
func (b *Board) InBounds(r, c int) bool {
	return r >= 0 && r < b.Dim && c >= 0 && c < b.Dim
}

// Index maps (r,c) to a row-major index.
func (b *Board) Index(r, c int) int { return r*b.Dim + c }

// Coordinate converts a row-major index back to (r,c).
func (b *Board) Coordinate(idx int) (r, c int) { return idx / b.Dim, idx % b.Dim }

// Home returns the cell tile belongs on in the canonical goal arrangement.
func (b *Board) Home(tile int) (r, c int) { return b.Coordinate(tile - 1) }

// SwapPairs calls fn for every pair of orthogonally adjacent cells, once per pair.
func (b *Board) SwapPairs(fn func(i, j int)) {
	for r := 0; r < b.Dim; r++ {
		for c := 0; c < b.Dim; c++ {
			for _, d := range b.swapOffsets {
				nr, nc := r+d[0], c+d[1]
				if !b.InBounds(nr, nc) {
					continue
				}
				fn(b.Index(r, c), b.Index(nr, nc))
			}
		}
	}
}
