package service

import (
	"context"

	"github.com/rocketscienceinc/tabletop/internal/apperror"
	"github.com/rocketscienceinc/tabletop/internal/entity"
)

var ErrNoAvailableMoves = apperror.ErrNoAvailableMoves

type intner interface {
	Intn(n int) int
}

// ComputerPlayer picks uniformly at random from the shared generator.
type ComputerPlayer struct {
	marker entity.Marker
	rng    intner
}

func NewComputerPlayer(marker entity.Marker, rng intner) *ComputerPlayer {
	return &ComputerPlayer{
		marker: marker,
		rng:    rng,
	}
}

func (that *ComputerPlayer) Marker() entity.Marker {
	return that.marker
}

func (that *ComputerPlayer) ChooseSquare(_ context.Context, choices []int) (int, error) {
	if len(choices) == 0 {
		return 0, ErrNoAvailableMoves
	}

	return choices[that.rng.Intn(len(choices))], nil
}

func (that *ComputerPlayer) ChooseThrow(_ context.Context) (entity.Move, error) {
	return entity.Moves[that.rng.Intn(len(entity.Moves))], nil
}
