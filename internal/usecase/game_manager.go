package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tabletop/internal/entity"
	"github.com/rocketscienceinc/tabletop/internal/service"
)

type resultRepo interface {
	Save(ctx context.Context, result *entity.Result) error
	Tally(ctx context.Context, kind entity.GameKind) (entity.Tally, error)
}

type view interface {
	Say(msg string)
	Clear()
	ShowBoard(board *entity.Board)
	ShowHand(label string, hand *entity.Hand)
	ShowTally(kind entity.GameKind, tally entity.Tally)
}

type humanPlayer interface {
	service.BoardPlayer
	service.Thrower
	actionChooser
	PlayAgain(ctx context.Context) (bool, error)
}

type computerPlayer interface {
	service.BoardPlayer
	service.Thrower
}

// Bankroll is the money rule of a twenty-one session.
type Bankroll struct {
	Starting int
	RichAt   int
}

// GameManager runs sessions of one game kind and records every finished game.
type GameManager struct {
	logger     *slog.Logger
	resultRepo resultRepo
	view       view

	human    humanPlayer
	computer computerPlayer
	shuffler entity.Shuffler
	bankroll Bankroll

	now func() time.Time
}

func NewGameManager(
	logger *slog.Logger,
	resultRepo resultRepo,
	view view,
	human humanPlayer,
	computer computerPlayer,
	shuffler entity.Shuffler,
	bankroll Bankroll,
) *GameManager {
	return &GameManager{
		logger:     logger.With("component", "game_manager"),
		resultRepo: resultRepo,
		view:       view,
		human:      human,
		computer:   computer,
		shuffler:   shuffler,
		bankroll:   bankroll,
		now:        time.Now,
	}
}

func (that *GameManager) Run(ctx context.Context, kind entity.GameKind) error {
	log := that.logger.With("game", string(kind))
	log.Info("session started")

	var err error
	switch kind {
	case entity.TicTacToe:
		err = that.runTicTacToe(ctx)
	case entity.TwentyOne:
		err = that.runTwentyOne(ctx)
	case entity.RockPaperScissors:
		err = that.runRockPaperScissors(ctx)
	default:
		return fmt.Errorf("unknown game %q", kind)
	}

	if err != nil {
		return fmt.Errorf("%s session failed: %w", kind, err)
	}

	log.Info("session finished")

	return nil
}

func (that *GameManager) runTicTacToe(ctx context.Context) error {
	that.view.Say("Welcome to Tic Tac Toe!")

	for {
		gameID := uuid.NewString()
		round := NewTicTacToeRound(that.logger.With("game_id", gameID), that.view, that.human, that.computer)

		outcome, err := round.Play(ctx)
		if err != nil {
			return err
		}

		that.record(ctx, gameID, entity.TicTacToe, outcome, round.Board().String())

		again, err := that.playAgain(ctx)
		if err != nil || !again {
			return err
		}
	}
}

func (that *GameManager) runTwentyOne(ctx context.Context) error {
	that.view.Say("Welcome to Twenty-One!")

	money := that.bankroll.Starting
	for {
		that.view.Say(fmt.Sprintf("Your money: %d", money))

		switch {
		case money >= that.bankroll.RichAt:
			that.view.Say("You are rich!")
			return nil
		case money <= 0:
			that.view.Say("You are out of money!")
			return nil
		}

		gameID := uuid.NewString()
		round, err := NewTwentyOneRound(that.logger.With("game_id", gameID), that.view, that.human, entity.NewDeck(that.shuffler))
		if err != nil {
			return err
		}

		outcome, err := round.Play(ctx)
		if err != nil {
			return err
		}

		switch {
		case outcome.IsWin():
			money++
		case outcome.IsLoss():
			money--
		}

		summary := fmt.Sprintf("you %d, dealer %d", round.HumanHand().Score(), round.DealerHand().Score())
		that.record(ctx, gameID, entity.TwentyOne, outcome, summary)

		again, err := that.playAgain(ctx)
		if err != nil || !again {
			return err
		}
	}
}

func (that *GameManager) runRockPaperScissors(ctx context.Context) error {
	that.view.Say("Welcome to Rock, Paper, Scissors!")

	for {
		gameID := uuid.NewString()

		outcome, humanMove, computerMove, err := PlayRockPaperScissors(ctx, that.view, that.human, that.computer)
		if err != nil {
			return err
		}

		that.record(ctx, gameID, entity.RockPaperScissors, outcome, fmt.Sprintf("%s vs %s", humanMove, computerMove))

		again, err := that.playAgain(ctx)
		if err != nil {
			return err
		}

		if !again {
			that.view.Say("Thanks for playing Rock, Paper, Scissors. Goodbye!")
			return nil
		}
	}
}

func (that *GameManager) playAgain(ctx context.Context) (bool, error) {
	again, err := that.human.PlayAgain(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to ask to play again: %w", err)
	}

	that.view.Clear()

	return again, nil
}

// record stores a finished game and shows the running tally. Store failures do not stop the session.
func (that *GameManager) record(ctx context.Context, gameID string, kind entity.GameKind, outcome entity.Outcome, summary string) {
	log := that.logger.With("method", "record", "game_id", gameID)

	result := &entity.Result{
		ID:         gameID,
		Kind:       kind,
		Outcome:    outcome,
		Summary:    summary,
		FinishedAt: that.now().UTC(),
	}

	if err := that.resultRepo.Save(ctx, result); err != nil {
		log.Error("failed to save result", "error", err)
		return
	}

	log.Info("game finished", "outcome", string(outcome), "summary", summary)

	tally, err := that.resultRepo.Tally(ctx, kind)
	if err != nil {
		log.Error("failed to read tally", "error", err)
		return
	}

	that.view.ShowTally(kind, tally)
}
