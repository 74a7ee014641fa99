package usecase

import (
	"context"
	"io"
	"log/slog"
	"slices"

	"github.com/rocketscienceinc/tabletop/internal/apperror"
	"github.com/rocketscienceinc/tabletop/internal/entity"
	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// scriptedSquares plays the listed positions in order.
type scriptedSquares struct {
	marker entity.Marker
	moves  []int
	asked  [][]int
}

func (that *scriptedSquares) Marker() entity.Marker {
	return that.marker
}

func (that *scriptedSquares) ChooseSquare(_ context.Context, choices []int) (int, error) {
	that.asked = append(that.asked, choices)
	if len(that.moves) == 0 {
		return 0, apperror.ErrInputClosed
	}

	move := that.moves[0]
	that.moves = that.moves[1:]

	return move, nil
}

type scriptedActions struct {
	actions []entity.Action
	calls   int
}

func (that *scriptedActions) ChooseAction(context.Context) (entity.Action, error) {
	that.calls++
	if len(that.actions) == 0 {
		return "", apperror.ErrInputClosed
	}

	action := that.actions[0]
	that.actions = that.actions[1:]

	return action, nil
}

type recordingView struct {
	said   []string
	boards int
	hands  []string
}

func (that *recordingView) Say(msg string) {
	that.said = append(that.said, msg)
}

func (that *recordingView) ShowBoard(*entity.Board) {
	that.boards++
}

func (that *recordingView) ShowHand(label string, hand *entity.Hand) {
	that.hands = append(that.hands, label+": "+hand.String())
}

// stackedShuffler moves the listed cards to the top of a fresh deck in order.
type stackedShuffler struct {
	top []entity.Card
}

func (that stackedShuffler) Shuffle(_ int, swap func(i, j int)) {
	order := make([]entity.Card, 0, entity.DeckSize)
	for _, suit := range entity.Suits {
		for rank := entity.Ace; rank <= entity.King; rank++ {
			order = append(order, entity.NewCard(suit, rank))
		}
	}

	for i, want := range that.top {
		j := slices.Index(order, want)
		swap(i, j)
		order[i], order[j] = order[j], order[i]
	}
}

func stackedDeck(cards ...entity.Card) *entity.Deck {
	return entity.NewDeck(stackedShuffler{top: cards})
}

// highestPick always takes the last choice.
type highestPick struct{}

func (highestPick) Intn(n int) int {
	return n - 1
}

type mockResultRepo struct {
	mock.Mock
}

func (that *mockResultRepo) Save(ctx context.Context, result *entity.Result) error {
	args := that.Called(ctx, result)

	return args.Error(0)
}

func (that *mockResultRepo) Tally(ctx context.Context, kind entity.GameKind) (entity.Tally, error) {
	args := that.Called(ctx, kind)

	return args.Get(0).(entity.Tally), args.Error(1)
}
