package entity

import "github.com/rocketscienceinc/tabletop/internal/apperror"

const DeckSize = 52

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Deck is a shuffled 52-card deck dealt from the front. Dealt cards never come back.
type Deck struct {
	cards []Card
}

func NewDeck(shuffler Shuffler) *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, NewCard(suit, rank))
		}
	}

	shuffler.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	return &Deck{cards: cards}
}

func (that *Deck) Deal() (Card, error) {
	if len(that.cards) == 0 {
		return Card{}, apperror.ErrDeckEmpty
	}

	card := that.cards[0]
	that.cards = that.cards[1:]

	return card, nil
}

func (that *Deck) Len() int {
	return len(that.cards)
}
