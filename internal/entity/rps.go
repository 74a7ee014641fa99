package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tabletop/internal/apperror"
)

// Move is a rock-paper-scissors throw.
type Move string

const (
	Rock     Move = "rock"
	Paper    Move = "paper"
	Scissors Move = "scissors"
)

var Moves = [3]Move{Rock, Paper, Scissors}

var beats = map[Move]Move{
	Rock:     Scissors,
	Paper:    Rock,
	Scissors: Paper,
}

func ParseMove(token string) (Move, error) {
	move := Move(strings.ToLower(strings.TrimSpace(token)))
	if _, ok := beats[move]; !ok {
		return "", fmt.Errorf("%w: %q is not rock, paper or scissors", apperror.ErrInvalidInput, token)
	}

	return move, nil
}

func (that Move) Beats(other Move) bool {
	return beats[that] == other
}

// ResolveThrows decides a rock-paper-scissors round from the human's point of view.
func ResolveThrows(human, computer Move) Outcome {
	switch {
	case human.Beats(computer):
		return OutcomeHumanWin
	case computer.Beats(human):
		return OutcomeComputerWin
	default:
		return OutcomeDraw
	}
}
