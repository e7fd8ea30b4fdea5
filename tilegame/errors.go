package tilegame

import "errors"

var (
	// ErrEmptyBoard indicates the input board has no rows or no columns.
	ErrEmptyBoard = errors.New("tilegame: board must have at least one row and one column")
	// ErrNonSquare indicates a board whose rows differ in length from its row count.
	ErrNonSquare = errors.New("tilegame: board must be n×n")
	// ErrBoardTooLarge indicates a dimension above MaxDim.
	ErrBoardTooLarge = errors.New("tilegame: board dimension out of range")
	// ErrNotPermutation indicates the tiles are not exactly 1..n².
	ErrNotPermutation = errors.New("tilegame: tiles must be a permutation of 1..n²")
	// ErrDimensionMismatch indicates a start or goal state of another size than the game.
	ErrDimensionMismatch = errors.New("tilegame: state dimension does not match game")
	// ErrParse indicates a malformed textual board.
	ErrParse = errors.New("tilegame: cannot parse board")
)
