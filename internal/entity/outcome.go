package entity

import (
	"fmt"
	"time"
)

type Outcome string

const (
	OutcomeHumanWin    Outcome = "human_win"
	OutcomeComputerWin Outcome = "computer_win"
	OutcomeDealerWin   Outcome = "dealer_win"
	OutcomeDraw        Outcome = "draw"
	OutcomePush        Outcome = "push"
)

// IsWin reports a human win.
func (that Outcome) IsWin() bool {
	return that == OutcomeHumanWin
}

// IsLoss reports a win by the computer or the dealer.
func (that Outcome) IsLoss() bool {
	return that == OutcomeComputerWin || that == OutcomeDealerWin
}

// IsTie reports a draw or a push.
func (that Outcome) IsTie() bool {
	return that == OutcomeDraw || that == OutcomePush
}

type GameKind string

const (
	TicTacToe         GameKind = "tictactoe"
	TwentyOne         GameKind = "twentyone"
	RockPaperScissors GameKind = "rps"
)

func ParseGameKind(name string) (GameKind, error) {
	switch kind := GameKind(name); kind {
	case TicTacToe, TwentyOne, RockPaperScissors:
		return kind, nil
	default:
		return "", fmt.Errorf("unknown game %q", name)
	}
}

// Result is a finished game.
type Result struct {
	ID         string    `json:"id"`
	Kind       GameKind  `json:"kind"`
	Outcome    Outcome   `json:"outcome"`
	Summary    string    `json:"summary,omitempty"`
	FinishedAt time.Time `json:"finished_at"`
}

// Tally counts finished games of one kind from the human's point of view.
type Tally struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Draws  int `json:"draws"`
}

func (that *Tally) Add(outcome Outcome) {
	switch {
	case outcome.IsWin():
		that.Wins++
	case outcome.IsLoss():
		that.Losses++
	case outcome.IsTie():
		that.Draws++
	}
}

func (that Tally) Total() int {
	return that.Wins + that.Losses + that.Draws
}
