package entity

import "strconv"

type Suit string

const (
	Clubs    Suit = "Clubs"
	Diamonds Suit = "Diamonds"
	Hearts   Suit = "Hearts"
	Spades   Suit = "Spades"
)

var Suits = [4]Suit{Clubs, Diamonds, Hearts, Spades}

type Rank int

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// Points is the card's base value: aces count 1, face cards count 10.
func (that Card) Points() int {
	if that.Rank >= 10 {
		return 10
	}

	return int(that.Rank)
}

func (that Card) IsAce() bool {
	return that.Rank == Ace
}

func (that Card) String() string {
	return that.Rank.String() + " of " + string(that.Suit)
}

func (that Rank) String() string {
	switch that {
	case Ace:
		return "Ace"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return strconv.Itoa(int(that))
	}
}
