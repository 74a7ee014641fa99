package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tabletop/internal/apperror"
	"github.com/rocketscienceinc/tabletop/internal/entity"
	"github.com/rocketscienceinc/tabletop/internal/service"
)

type boardView interface {
	Say(msg string)
	ShowBoard(board *entity.Board)
}

// TicTacToeRound alternates the human and the computer on one board until a win or a draw.
type TicTacToeRound struct {
	logger *slog.Logger
	view   boardView

	board   *entity.Board
	players [2]service.BoardPlayer
	current int
	state   RoundState
	outcome entity.Outcome
}

// NewTicTacToeRound starts with the human to move.
func NewTicTacToeRound(logger *slog.Logger, view boardView, human, computer service.BoardPlayer) *TicTacToeRound {
	return &TicTacToeRound{
		logger:  logger,
		view:    view,
		board:   entity.NewBoard(),
		players: [2]service.BoardPlayer{human, computer},
		state:   StateAwaitingMove,
	}
}

func (that *TicTacToeRound) Step(ctx context.Context) error {
	mustNotBeOver(that.state)

	switch that.state {
	case StateAwaitingMove:
		return that.takeTurn(ctx)
	case StateEvaluating:
		that.evaluate()
	}

	return nil
}

func (that *TicTacToeRound) takeTurn(ctx context.Context) error {
	player := that.CurrentPlayer()
	if that.current == 0 {
		that.view.ShowBoard(that.board)
	}

	position, err := player.ChooseSquare(ctx, that.board.EmptyPositions())
	if err != nil {
		return fmt.Errorf("failed to choose square: %w", err)
	}

	if err = that.board.Place(position, player.Marker()); err != nil {
		if errors.Is(err, apperror.ErrInvalidMove) {
			that.logger.Debug("move rejected", "marker", player.Marker().String(), "position", position, "error", err)
			that.view.Say("Sorry, that's not an empty square.")

			return nil
		}

		return fmt.Errorf("failed to place marker: %w", err)
	}

	that.logger.Debug("marker placed", "marker", player.Marker().String(), "position", position)
	that.state = StateEvaluating

	return nil
}

// evaluate checks for a winner before checking for a full board.
func (that *TicTacToeRound) evaluate() {
	switch winner := that.board.Winner(); {
	case winner != entity.MarkerEmpty && winner == that.players[0].Marker():
		that.finish(entity.OutcomeHumanWin)
	case winner != entity.MarkerEmpty:
		that.finish(entity.OutcomeComputerWin)
	case that.board.IsFull():
		that.finish(entity.OutcomeDraw)
	default:
		that.current = 1 - that.current
		that.state = StateAwaitingMove
	}
}

func (that *TicTacToeRound) finish(outcome entity.Outcome) {
	that.outcome = outcome
	that.state = StateOver
}

func (that *TicTacToeRound) Play(ctx context.Context) (entity.Outcome, error) {
	outcome, err := playOut(ctx, that)
	if err != nil {
		return "", err
	}

	that.view.ShowBoard(that.board)
	switch outcome {
	case entity.OutcomeHumanWin:
		that.view.Say("You win!")
	case entity.OutcomeComputerWin:
		that.view.Say("The computer wins!")
	default:
		that.view.Say("It's a tie!")
	}

	return outcome, nil
}

func (that *TicTacToeRound) CurrentPlayer() service.BoardPlayer {
	return that.players[that.current]
}

func (that *TicTacToeRound) Board() *entity.Board {
	return that.board
}

func (that *TicTacToeRound) State() RoundState {
	return that.state
}

func (that *TicTacToeRound) Outcome() entity.Outcome {
	return that.outcome
}
