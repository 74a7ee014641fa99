package usecase

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tabletop/internal/entity"
	"github.com/rocketscienceinc/tabletop/internal/service"
)

type throwView interface {
	Say(msg string)
}

// PlayRockPaperScissors asks the human first so the computer's pick cannot depend on it.
func PlayRockPaperScissors(ctx context.Context, view throwView, human, computer service.Thrower) (entity.Outcome, entity.Move, entity.Move, error) {
	humanMove, err := human.ChooseThrow(ctx)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to choose human throw: %w", err)
	}

	computerMove, err := computer.ChooseThrow(ctx)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to choose computer throw: %w", err)
	}

	view.Say(fmt.Sprintf("You chose: %s", humanMove))
	view.Say(fmt.Sprintf("The computer chose: %s", computerMove))

	outcome := entity.ResolveThrows(humanMove, computerMove)
	switch outcome {
	case entity.OutcomeHumanWin:
		view.Say("You win!")
	case entity.OutcomeComputerWin:
		view.Say("Computer wins!")
	default:
		view.Say("It's a tie")
	}

	return outcome, humanMove, computerMove, nil
}
