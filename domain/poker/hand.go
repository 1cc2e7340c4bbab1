package poker

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
)

// HandSize is the number of cards in a complete hand.
const HandSize = 5

// Comparison results returned by Hand.CompareTo.
const (
	FirstWins  = 1
	Tie        = 0
	SecondWins = -1
)

// ErrInvalidHandSize is returned when a hand without exactly HandSize cards
// is classified or compared.
var ErrInvalidHandSize = errors.New("hand must hold exactly 5 cards")

// Dealer hands out cards one at a time. PokerDeck implements it.
type Dealer interface {
	DealCard() (Card, error)
	HasFewerThan(n int) bool
}

// Hand is a set of cards kept in insertion order. It is built incrementally
// and only classified or compared once it is complete.
type Hand struct {
	cards []Card
}

// NewHand returns a hand holding a copy of cards.
func NewHand(cards ...Card) *Hand {
	h := &Hand{cards: make([]Card, 0, HandSize)}
	h.cards = append(h.cards, cards...)
	return h
}

// AddCard appends c to the hand.
func (h *Hand) AddCard(c Card) {
	h.cards = append(h.cards, c)
}

// DealFrom takes count cards from d and adds them to the hand. If d holds
// fewer than count cards nothing is dealt and ErrEmptyDeck is returned.
func (h *Hand) DealFrom(d Dealer, count int) error {
	if d.HasFewerThan(count) {
		return fmt.Errorf("deal %d cards: %w", count, ErrEmptyDeck)
	}
	for i := 0; i < count; i++ {
		c, err := d.DealCard()
		if err != nil {
			return fmt.Errorf("deal card %d: %w", i+1, err)
		}
		h.AddCard(c)
	}
	return nil
}

// Cards returns a copy of the hand in insertion order.
func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Len returns the number of cards currently in the hand.
func (h *Hand) Len() int {
	return len(h.cards)
}

func (h *Hand) validate() error {
	if len(h.cards) != HandSize {
		return fmt.Errorf("%w: got %d", ErrInvalidHandSize, len(h.cards))
	}
	return nil
}

// Display lists the cards one per line, e.g. "Ace of Spades\n".
func (h *Hand) Display() string {
	var sb strings.Builder
	for _, c := range h.cards {
		sb.WriteString(c.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (h *Hand) String() string {
	return h.Display()
}

func (h *Hand) isFlush() bool {
	for _, c := range h.cards[1:] {
		if c.Suit() != h.cards[0].Suit() {
			return false
		}
	}
	return true
}

func (h *Hand) category() Category {
	if h.isFlush() {
		return Flush
	}
	ranks := make([]Rank, len(h.cards))
	for i, c := range h.cards {
		ranks[i] = c.Rank()
	}
	switch len(ExtractPairs(ranks)) {
	case 2:
		return TwoPair
	case 1:
		return Pair
	}
	return HighCard
}

// Classify returns the category of a complete hand. Flush is checked first,
// then two pair, then pair.
func (h *Hand) Classify() (Category, error) {
	if err := h.validate(); err != nil {
		return 0, err
	}
	return h.category(), nil
}

// CompareTo returns FirstWins if h beats other, SecondWins if other beats h
// and Tie otherwise. Both hands must hold exactly HandSize cards.
func (h *Hand) CompareTo(other *Hand) (int, error) {
	if err := h.validate(); err != nil {
		return 0, err
	}
	if err := other.validate(); err != nil {
		return 0, err
	}

	mine, theirs := h.category(), other.category()
	if mine != theirs {
		return cmp.Compare(mine, theirs), nil
	}

	a, b := SortedRanks(h.cards), SortedRanks(other.cards)
	switch mine {
	case TwoPair:
		return compareTwoPair(a, b), nil
	case Pair:
		return comparePair(a, b), nil
	default:
		return compareRanks(a, b), nil
	}
}

// compareRanks compares a and b position by position and stops at the
// first difference or when the shorter one runs out.
func compareRanks(a, b []Rank) int {
	for i := 0; i < min(len(a), len(b)); i++ {
		if c := cmp.Compare(a[i], b[i]); c != Tie {
			return c
		}
	}
	return Tie
}

func compareTwoPair(a, b []Rank) int {
	if c := compareRanks(ExtractPairs(a), ExtractPairs(b)); c != Tie {
		return c
	}
	ha, hb := ExtractHighCards(a), ExtractHighCards(b)
	return compareRanks(ha[:min(1, len(ha))], hb[:min(1, len(hb))])
}

func comparePair(a, b []Rank) int {
	if c := compareRanks(ExtractPairs(a), ExtractPairs(b)); c != Tie {
		return c
	}
	return compareRanks(ExtractHighCards(a), ExtractHighCards(b))
}
