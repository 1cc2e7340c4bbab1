package poker

import (
	"errors"

	"github.com/luca-patrignani/how-does-it-rank/domain/deck"
)

// ErrEmptyDeck is returned when a deal asks for more cards than are left.
var ErrEmptyDeck = deck.ErrEmptyDeck

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// PokerDeck wraps a generic numbered deck and hands out poker Cards.
type PokerDeck struct {
	*deck.Deck
}

// NewPokerDeck creates a 52 card deck shuffled once with s.
func NewPokerDeck(s deck.Shuffler) PokerDeck {
	return PokerDeck{
		Deck: deck.New(DeckSize, s),
	}
}

// IntToCard converts a raw card number (1-52) to a Card. Card numbers map to suits in order
// (clubs, diamonds, hearts, spades) with ranks 2-14 within each suit.
//
// Card numbering:
//   - 1-13: Clubs (2 through Ace)
//   - 14-26: Diamonds (2 through Ace)
//   - 27-39: Hearts (2 through Ace)
//   - 40-52: Spades (2 through Ace)
func IntToCard(rawCard int) (Card, error) {
	if rawCard > DeckSize || rawCard < 1 {
		return Card{}, errors.New("the card to convert have an invalid value")
	}

	suit := Suit((rawCard - 1) / 13)
	rank := Rank((rawCard-1)%13) + LowestRank
	return NewCard(suit, rank)
}

// CardToInt converts a Card to its integer representation (1-52).
// This is the inverse operation of IntToCard.
func CardToInt(card Card) int {
	return int(card.Suit())*13 + int(card.Rank()-LowestRank) + 1
}

// DealCard removes the top card of the deck.
func (d PokerDeck) DealCard() (Card, error) {
	c, err := d.Deck.Draw()
	if err != nil {
		return Card{}, err
	}
	return IntToCard(c)
}
