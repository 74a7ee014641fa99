package entity

import "strings"

const (
	BustThreshold = 21

	// an ace is upgraded from 1 to 11 while the total stays below this
	aceUpgradeLimit = 12
	aceUpgrade      = 10
)

// Hand is the ordered cards of one party. The score is derived from the cards on every call.
type Hand struct {
	cards []Card
}

func NewHand(cards ...Card) *Hand {
	hand := &Hand{}
	for _, card := range cards {
		hand.AddCard(card)
	}

	return hand
}

func (that *Hand) AddCard(card Card) {
	that.cards = append(that.cards, card)
}

// Score counts every ace as 1, then upgrades aces to 11 one at a time while the total is below 12.
func (that *Hand) Score() int {
	score, aces := 0, 0
	for _, card := range that.cards {
		score += card.Points()
		if card.IsAce() {
			aces++
		}
	}

	for score < aceUpgradeLimit && aces > 0 {
		score += aceUpgrade
		aces--
	}

	return score
}

func (that *Hand) IsBusted() bool {
	return that.Score() > BustThreshold
}

// TopCard returns the first card dealt. The hand must not be empty.
func (that *Hand) TopCard() Card {
	if len(that.cards) == 0 {
		panic("entity: top card of an empty hand")
	}

	return that.cards[0]
}

func (that *Hand) Cards() []Card {
	cards := make([]Card, len(that.cards))
	copy(cards, that.cards)

	return cards
}

func (that *Hand) Len() int {
	return len(that.cards)
}

func (that *Hand) String() string {
	names := make([]string, 0, len(that.cards))
	for _, card := range that.cards {
		names = append(names, card.String())
	}

	return strings.Join(names, ", ")
}
