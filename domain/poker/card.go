package poker

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
)

// Suit of a card.
type Suit uint8

// Card suit constants (0-3)
const (
	Club    Suit = 0 // ♣ (black)
	Diamond Suit = 1 // ♦ (red)
	Heart   Suit = 2 // ♥ (red)
	Spade   Suit = 3 // ♠ (black)
)

// Suits lists every suit in deck numbering order.
var Suits = [...]Suit{Club, Diamond, Heart, Spade}

// String returns the plural suit name used in card display, e.g. "Spades".
func (s Suit) String() string {
	switch s {
	case Club:
		return "Clubs"
	case Diamond:
		return "Diamonds"
	case Heart:
		return "Hearts"
	case Spade:
		return "Spades"
	default:
		return "Suit(" + strconv.Itoa(int(s)) + ")"
	}
}

// Rank of a card, 2 through 14. Ace is high.
type Rank uint8

// Card rank constants for face cards and ace
const (
	Jack  Rank = 11 // J
	Queen Rank = 12 // Q
	King  Rank = 13 // K
	Ace   Rank = 14 // A
)

const (
	LowestRank  Rank = 2
	HighestRank Rank = Ace
)

// String returns the rank's display name: Jack, Queen, King and Ace are
// spelled out, the others are decimal digits.
func (r Rank) String() string {
	switch r {
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	default:
		return strconv.Itoa(int(r))
	}
}

// Card represents a playing card with suit and rank. Cards are values and
// never change after construction.
type Card struct {
	suit Suit
	rank Rank
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: Club, Diamond, Heart or Spade
//   - rank: 2-14 (2-10=face value, Jack=11, Queen=12, King=13, Ace=14)
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(suit Suit, rank Rank) (Card, error) {
	if suit > Spade || rank < LowestRank || rank > HighestRank {
		return Card{}, fmt.Errorf("invalid card %d, %d", suit, rank)
	}

	return Card{
		suit: suit,
		rank: rank,
	}, nil
}

// MustCard is like NewCard but panics on invalid input. Intended for
// literals in tests and tables.
func MustCard(suit Suit, rank Rank) Card {
	c, err := NewCard(suit, rank)
	if err != nil {
		panic(err)
	}
	return c
}

// Suit returns the suit of the Card.
func (c Card) Suit() Suit {
	return c.suit
}

// Rank returns the rank of the Card.
func (c Card) Rank() Rank {
	return c.rank
}

// String returns the display form of the card, e.g. "Queen of Hearts".
func (c Card) String() string {
	return c.rank.String() + " of " + c.suit.String()
}

// Symbol returns a short coloured representation for terminals using suit
// symbols (♣, ♦, ♥, ♠) and rank abbreviations (A, J, Q, K, or number).
func (c Card) Symbol() string {
	var suit string
	switch c.suit {
	case Club:
		suit = pterm.Black("♣")
	case Diamond:
		suit = pterm.LightRed("♦")
	case Heart:
		suit = pterm.LightRed("♥")
	case Spade:
		suit = pterm.Black("♠")
	default:
		suit = "?"
	}

	var rankStr string
	switch c.rank {
	case Ace:
		rankStr = "A"
	case Jack:
		rankStr = "J"
	case Queen:
		rankStr = "Q"
	case King:
		rankStr = "K"
	default:
		rankStr = strconv.Itoa(int(c.rank))
	}
	return rankStr + suit
}
