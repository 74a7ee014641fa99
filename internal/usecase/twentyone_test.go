package usecase

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/tabletop/internal/apperror"
	"github.com/rocketscienceinc/tabletop/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func card(suit entity.Suit, rank entity.Rank) entity.Card {
	return entity.NewCard(suit, rank)
}

func TestNewTwentyOneRound(t *testing.T) {
	// Given: a deck stacked with four known cards
	deck := stackedDeck(
		card(entity.Clubs, 2), card(entity.Clubs, 3),
		card(entity.Hearts, 4), card(entity.Hearts, 5),
	)

	// When: a round starts
	round, err := NewTwentyOneRound(discardLogger(), &recordingView{}, &scriptedActions{}, deck)
	require.NoError(t, err)

	// Then: the human got the first two cards and the dealer the next two
	assert.Equal(t, []entity.Card{card(entity.Clubs, 2), card(entity.Clubs, 3)}, round.HumanHand().Cards())
	assert.Equal(t, []entity.Card{card(entity.Hearts, 4), card(entity.Hearts, 5)}, round.DealerHand().Cards())
	assert.Equal(t, entity.DeckSize-4, deck.Len())
	assert.Equal(t, StateAwaitingMove, round.State())
}

func TestTwentyOneRound_Play(t *testing.T) {
	ctx := context.Background()

	t.Run("Dealer stops at exactly 17", func(t *testing.T) {
		// Given: human 10+9, dealer 10+5, then 2 and King on top of the deck
		deck := stackedDeck(
			card(entity.Clubs, 10), card(entity.Clubs, 9),
			card(entity.Diamonds, 10), card(entity.Diamonds, 5),
			card(entity.Hearts, 2), card(entity.Hearts, entity.King),
		)
		human := &scriptedActions{actions: []entity.Action{entity.Stay}}
		round, err := NewTwentyOneRound(discardLogger(), &recordingView{}, human, deck)
		require.NoError(t, err)

		// When: the hand is played
		outcome, err := round.Play(ctx)

		// Then: the dealer drew the 2 and stood on 17
		require.NoError(t, err)
		assert.Equal(t, 17, round.DealerHand().Score())
		assert.Equal(t, 3, round.DealerHand().Len())
		assert.Equal(t, entity.OutcomeHumanWin, outcome)
	})

	t.Run("Ace and ten is not forced to hit", func(t *testing.T) {
		// Given: human Ace+10, dealer 10+7
		deck := stackedDeck(
			card(entity.Spades, entity.Ace), card(entity.Spades, 10),
			card(entity.Hearts, 10), card(entity.Hearts, 7),
		)
		human := &scriptedActions{actions: []entity.Action{entity.Stay}}
		round, err := NewTwentyOneRound(discardLogger(), &recordingView{}, human, deck)
		require.NoError(t, err)

		// When: the hand is played
		outcome, err := round.Play(ctx)

		// Then: the human was asked once, kept 21 and won
		require.NoError(t, err)
		assert.Equal(t, 1, human.calls)
		assert.Equal(t, 21, round.HumanHand().Score())
		assert.False(t, round.HumanHand().IsBusted())
		assert.Equal(t, 2, round.DealerHand().Len())
		assert.Equal(t, entity.OutcomeHumanWin, outcome)
	})

	t.Run("Human bust loses without the dealer drawing", func(t *testing.T) {
		// Given: human 10+6 who hits into a King
		deck := stackedDeck(
			card(entity.Clubs, 10), card(entity.Clubs, 6),
			card(entity.Hearts, 2), card(entity.Hearts, 3),
			card(entity.Spades, entity.King),
		)
		human := &scriptedActions{actions: []entity.Action{entity.Hit}}
		view := &recordingView{}
		round, err := NewTwentyOneRound(discardLogger(), view, human, deck)
		require.NoError(t, err)

		// When: the hand is played
		outcome, err := round.Play(ctx)

		// Then: the human busted and the dealer kept two cards
		require.NoError(t, err)
		assert.True(t, round.HumanHand().IsBusted())
		assert.Equal(t, 2, round.DealerHand().Len())
		assert.Equal(t, entity.OutcomeDealerWin, outcome)
		assert.Contains(t, view.said, "You busted!")
	})

	t.Run("Dealer bust wins for the human", func(t *testing.T) {
		// Given: human 10+8, dealer 10+6 who draws a 9
		deck := stackedDeck(
			card(entity.Clubs, 10), card(entity.Clubs, 8),
			card(entity.Hearts, 10), card(entity.Hearts, 6),
			card(entity.Spades, 9),
		)
		view := &recordingView{}
		round, err := NewTwentyOneRound(discardLogger(), view, &scriptedActions{actions: []entity.Action{entity.Stay}}, deck)
		require.NoError(t, err)

		// When: the hand is played
		outcome, err := round.Play(ctx)

		// Then: the dealer busted at 25
		require.NoError(t, err)
		assert.Equal(t, 25, round.DealerHand().Score())
		assert.Equal(t, entity.OutcomeHumanWin, outcome)
		assert.Contains(t, view.said, "Dealer busted!")
	})

	t.Run("Equal scores push", func(t *testing.T) {
		// Given: both hands at 18
		deck := stackedDeck(
			card(entity.Clubs, 10), card(entity.Clubs, 8),
			card(entity.Hearts, 10), card(entity.Hearts, 8),
		)
		round, err := NewTwentyOneRound(discardLogger(), &recordingView{}, &scriptedActions{actions: []entity.Action{entity.Stay}}, deck)
		require.NoError(t, err)

		// When: the hand is played
		outcome, err := round.Play(ctx)

		// Then: it is a push
		require.NoError(t, err)
		assert.Equal(t, entity.OutcomePush, outcome)
	})

	t.Run("Input errors stop the hand", func(t *testing.T) {
		// Given: a human with no answers
		deck := stackedDeck(card(entity.Clubs, 2), card(entity.Clubs, 3))
		round, err := NewTwentyOneRound(discardLogger(), &recordingView{}, &scriptedActions{}, deck)
		require.NoError(t, err)

		// When: the hand is played
		_, err = round.Play(ctx)

		// Then: the error is returned
		assert.ErrorIs(t, err, apperror.ErrInputClosed)
	})
}

func TestDealerMustHit(t *testing.T) {
	assert.True(t, DealerMustHit(entity.NewHand(card(entity.Clubs, 10), card(entity.Clubs, 6))))
	assert.False(t, DealerMustHit(entity.NewHand(card(entity.Clubs, 10), card(entity.Clubs, 7))))
	assert.False(t, DealerMustHit(entity.NewHand(card(entity.Clubs, entity.Ace), card(entity.Clubs, 6))))
}

func TestResolveHands(t *testing.T) {
	hand := func(ranks ...entity.Rank) *entity.Hand {
		h := entity.NewHand()
		for _, rank := range ranks {
			h.AddCard(card(entity.Spades, rank))
		}

		return h
	}

	tests := []struct {
		name    string
		human   *entity.Hand
		dealer  *entity.Hand
		outcome entity.Outcome
	}{
		{"human bust beats dealer bust", hand(10, 10, 5), hand(10, 10, 5), entity.OutcomeDealerWin},
		{"human bust against a low dealer", hand(entity.King, entity.Queen, 5), hand(2, 3), entity.OutcomeDealerWin},
		{"dealer bust", hand(10, 2), hand(10, 6, 9), entity.OutcomeHumanWin},
		{"dealer higher", hand(10, 7), hand(10, 9), entity.OutcomeDealerWin},
		{"human higher", hand(10, 9), hand(10, 7), entity.OutcomeHumanWin},
		{"equal", hand(entity.Ace, entity.King), hand(entity.Ace, 10), entity.OutcomePush},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.outcome, ResolveHands(tt.human, tt.dealer))
		})
	}
}
