package deck

import (
	"errors"
	"fmt"
)

// ErrEmptyDeck is returned when more cards are requested than the deck holds.
var ErrEmptyDeck = errors.New("not enough cards in deck")

// Deck is an ordered pile of raw card numbers 1..size. Cards are only ever
// removed, from the end of the pile, once the deck has been built.
type Deck struct {
	cards []int
}

// New builds a deck holding every card number from 1 to size exactly once
// and shuffles it with s. The shuffle is performed only here.
func New(size int, s Shuffler) *Deck {
	cards := make([]int, size)
	for i := range cards {
		cards[i] = i + 1
	}
	d := &Deck{cards: cards}
	if s != nil {
		s.Shuffle(len(d.cards), func(i, j int) {
			d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
		})
	}
	return d
}

// Draw removes and returns the card on top of the deck.
func (d *Deck) Draw() (int, error) {
	if len(d.cards) == 0 {
		return 0, fmt.Errorf("draw: %w", ErrEmptyDeck)
	}
	last := len(d.cards) - 1
	c := d.cards[last]
	d.cards = d.cards[:last]
	return c, nil
}

// Remaining returns the number of cards still in the deck.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// HasFewerThan reports whether fewer than n cards are left.
func (d *Deck) HasFewerThan(n int) bool {
	return len(d.cards) < n
}

// Peek returns a copy of the remaining cards, bottom first.
func (d *Deck) Peek() []int {
	out := make([]int, len(d.cards))
	copy(out, d.cards)
	return out
}
