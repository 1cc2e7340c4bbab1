package poker

import (
	"fmt"

	"github.com/paulhankin/poker"
)

// Describe names the hand in full poker terms, for example "three of a kind,
// 8s". It is informational; the quiz answer always comes from CompareTo.
func (h *Hand) Describe() (string, error) {
	if err := h.validate(); err != nil {
		return "", err
	}
	cards, err := h.evalCards()
	if err != nil {
		return "", err
	}
	return poker.Describe(cards[:])
}

func (h *Hand) evalCards() ([HandSize]poker.Card, error) {
	var out [HandSize]poker.Card
	for i, c := range h.cards {
		card, err := toEvalCard(c)
		if err != nil {
			return [HandSize]poker.Card{}, fmt.Errorf("invalid hand card at idx %d: %w", i, err)
		}
		out[i] = card
	}
	return out, nil
}

// toEvalCard maps a Card to the evaluator's representation, where the ace
// has rank 1.
func toEvalCard(c Card) (poker.Card, error) {
	r := poker.Rank(c.Rank())
	if c.Rank() == Ace {
		r = 1
	}
	return poker.MakeCard(poker.Suit(c.Suit()), r)
}
