package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tabletop/internal/entity"
)

// DealerStandScore is where the dealer must stop hitting.
const DealerStandScore = 17

const initialCards = 2

type handView interface {
	Say(msg string)
	ShowHand(label string, hand *entity.Hand)
}

type actionChooser interface {
	ChooseAction(ctx context.Context) (entity.Action, error)
}

type seat int

const (
	seatHuman seat = iota
	seatDealer
)

// TwentyOneRound plays one hand: the human hits or stays, then the dealer draws to 17.
type TwentyOneRound struct {
	logger *slog.Logger
	view   handView
	human  actionChooser

	deck        *entity.Deck
	humanHand   *entity.Hand
	dealerHand  *entity.Hand
	turn        seat
	dealerShown bool
	state       RoundState
	outcome     entity.Outcome
}

// NewTwentyOneRound deals two cards to the human, then two to the dealer.
func NewTwentyOneRound(logger *slog.Logger, view handView, human actionChooser, deck *entity.Deck) (*TwentyOneRound, error) {
	round := &TwentyOneRound{
		logger:     logger,
		view:       view,
		human:      human,
		deck:       deck,
		humanHand:  entity.NewHand(),
		dealerHand: entity.NewHand(),
		turn:       seatHuman,
		state:      StateAwaitingMove,
	}

	for _, hand := range []*entity.Hand{round.humanHand, round.dealerHand} {
		for range initialCards {
			if err := round.hit(hand); err != nil {
				return nil, err
			}
		}
	}

	return round, nil
}

func (that *TwentyOneRound) Step(ctx context.Context) error {
	mustNotBeOver(that.state)

	switch {
	case that.state == StateEvaluating:
		that.outcome = ResolveHands(that.humanHand, that.dealerHand)
		that.state = StateOver
	case that.turn == seatHuman:
		return that.humanTurn(ctx)
	default:
		return that.dealerTurn()
	}

	return nil
}

func (that *TwentyOneRound) humanTurn(ctx context.Context) error {
	that.view.ShowHand("Your hand", that.humanHand)

	if that.humanHand.IsBusted() {
		that.view.Say("You busted!")
		that.state = StateEvaluating

		return nil
	}

	action, err := that.human.ChooseAction(ctx)
	if err != nil {
		return fmt.Errorf("failed to choose action: %w", err)
	}

	that.logger.Debug("human decided", "action", string(action), "score", that.humanHand.Score())

	if action == entity.Stay {
		that.turn = seatDealer

		return nil
	}

	return that.hit(that.humanHand)
}

func (that *TwentyOneRound) dealerTurn() error {
	if !that.dealerShown {
		that.view.ShowHand("Dealer's hand", that.dealerHand)
		that.dealerShown = true
	}

	if !DealerMustHit(that.dealerHand) {
		if that.dealerHand.IsBusted() {
			that.view.Say("Dealer busted!")
		}

		that.state = StateEvaluating

		return nil
	}

	if err := that.hit(that.dealerHand); err != nil {
		return err
	}

	that.view.ShowHand("Dealer's hand", that.dealerHand)

	return nil
}

func (that *TwentyOneRound) hit(hand *entity.Hand) error {
	card, err := that.deck.Deal()
	if err != nil {
		return fmt.Errorf("failed to deal card: %w", err)
	}

	hand.AddCard(card)

	return nil
}

func (that *TwentyOneRound) Play(ctx context.Context) (entity.Outcome, error) {
	that.view.Say(fmt.Sprintf("Dealer's top card: %s", that.dealerHand.TopCard()))

	outcome, err := playOut(ctx, that)
	if err != nil {
		return "", err
	}

	that.view.Say(fmt.Sprintf("Your score: %d", that.humanHand.Score()))
	if !that.humanHand.IsBusted() {
		that.view.Say(fmt.Sprintf("Dealer score: %d", that.dealerHand.Score()))
	}

	switch outcome {
	case entity.OutcomeHumanWin:
		that.view.Say("You win!")
	case entity.OutcomeDealerWin:
		that.view.Say("Dealer wins!")
	default:
		that.view.Say("Push!")
	}

	return outcome, nil
}

func (that *TwentyOneRound) HumanHand() *entity.Hand {
	return that.humanHand
}

func (that *TwentyOneRound) DealerHand() *entity.Hand {
	return that.dealerHand
}

func (that *TwentyOneRound) State() RoundState {
	return that.state
}

func (that *TwentyOneRound) Outcome() entity.Outcome {
	return that.outcome
}

// DealerMustHit is the fixed house rule: hit below 17, stand from 17 up.
func DealerMustHit(hand *entity.Hand) bool {
	return hand.Score() < DealerStandScore
}

// ResolveHands checks busts before comparing scores. A human bust loses whatever the dealer holds.
func ResolveHands(human, dealer *entity.Hand) entity.Outcome {
	switch {
	case human.IsBusted():
		return entity.OutcomeDealerWin
	case dealer.IsBusted():
		return entity.OutcomeHumanWin
	case dealer.Score() > human.Score():
		return entity.OutcomeDealerWin
	case human.Score() > dealer.Score():
		return entity.OutcomeHumanWin
	default:
		return entity.OutcomePush
	}
}
