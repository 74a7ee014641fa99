package usecase

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tabletop/internal/entity"
)

// RoundState is where a round stands between two steps.
type RoundState int

const (
	StateAwaitingMove RoundState = iota
	StateEvaluating
	StateOver
)

func (that RoundState) String() string {
	switch that {
	case StateAwaitingMove:
		return "awaiting_move"
	case StateEvaluating:
		return "evaluating"
	case StateOver:
		return "over"
	default:
		return fmt.Sprintf("RoundState(%d)", int(that))
	}
}

type stepper interface {
	Step(ctx context.Context) error
	State() RoundState
	Outcome() entity.Outcome
}

// playOut steps a round until it is over.
func playOut(ctx context.Context, round stepper) (entity.Outcome, error) {
	for round.State() != StateOver {
		if err := round.Step(ctx); err != nil {
			return "", err
		}
	}

	return round.Outcome(), nil
}

func mustNotBeOver(state RoundState) {
	if state == StateOver {
		panic("usecase: step on a finished round")
	}
}
