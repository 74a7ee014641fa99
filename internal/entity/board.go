package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tabletop/internal/apperror"
)

const (
	FirstPosition = 1
	LastPosition  = 9
)

// Line is a winning triple of board positions.
type Line [3]int

// Lines holds every winning triple: 3 rows, 3 columns and 2 diagonals.
var Lines = [8]Line{
	{1, 2, 3},
	{4, 5, 6},
	{7, 8, 9},
	{1, 4, 7},
	{2, 5, 8},
	{3, 6, 9},
	{1, 5, 9},
	{3, 5, 7},
}

// Board is a 3x3 tic-tac-toe grid addressed by positions 1..9, row by row.
type Board struct {
	squares [LastPosition]Marker
}

func NewBoard() *Board {
	return &Board{}
}

// Place writes marker into the square at position. A square can be written once per game.
func (that *Board) Place(position int, marker Marker) error {
	if !IsValidPosition(position) {
		return fmt.Errorf("%w: position %d is out of range", apperror.ErrInvalidMove, position)
	}

	if marker == MarkerEmpty {
		return fmt.Errorf("%w: cannot clear position %d", apperror.ErrInvalidMove, position)
	}

	if that.squares[position-1] != MarkerEmpty {
		return fmt.Errorf("%w: position %d is occupied", apperror.ErrInvalidMove, position)
	}

	that.squares[position-1] = marker

	return nil
}

// Square returns the marker at position, or MarkerEmpty for positions off the board.
func (that *Board) Square(position int) Marker {
	if !IsValidPosition(position) {
		return MarkerEmpty
	}

	return that.squares[position-1]
}

// EmptyPositions lists the empty positions in ascending order.
func (that *Board) EmptyPositions() []int {
	positions := make([]int, 0, len(that.squares))
	for i, square := range that.squares {
		if square == MarkerEmpty {
			positions = append(positions, i+1)
		}
	}

	return positions
}

func (that *Board) IsFull() bool {
	return len(that.EmptyPositions()) == 0
}

func (that *Board) LineMatches(line Line, marker Marker) bool {
	for _, position := range line {
		if that.Square(position) != marker {
			return false
		}
	}

	return true
}

func (that *Board) HasWinner(marker Marker) bool {
	if marker == MarkerEmpty {
		return false
	}

	for _, line := range Lines {
		if that.LineMatches(line, marker) {
			return true
		}
	}

	return false
}

// Winner returns the marker owning a full line, or MarkerEmpty when nobody does.
func (that *Board) Winner() Marker {
	switch {
	case that.HasWinner(MarkerX):
		return MarkerX
	case that.HasWinner(MarkerO):
		return MarkerO
	default:
		return MarkerEmpty
	}
}

func (that *Board) IsGameOver() bool {
	return that.IsFull() || that.Winner() != MarkerEmpty
}

// String renders the rows left to right separated by '|', with '.' for empty squares.
func (that *Board) String() string {
	var builder strings.Builder
	for i, square := range that.squares {
		if i > 0 && i%3 == 0 {
			builder.WriteByte('|')
		}

		if square == MarkerEmpty {
			builder.WriteByte('.')
		} else {
			builder.WriteString(square.String())
		}
	}

	return builder.String()
}

func IsValidPosition(position int) bool {
	return position >= FirstPosition && position <= LastPosition
}
