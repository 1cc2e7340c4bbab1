// Package game runs the "which hand is worth more" quiz on top of the poker
// domain. It owns the deck for one session and records every answer in a
// ledger; all input and output go through a Player.
package game

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/luca-patrignani/how-does-it-rank/domain/poker"
	"github.com/luca-patrignani/how-does-it-rank/ledger"
)

// ErrInvalidGuess is returned when a Player answers something other than
// 1, 0 or -1.
var ErrInvalidGuess = errors.New("guess must be 1, 0 or -1")

// Player answers the quiz questions.
type Player interface {
	// Guess returns 1 if hand1 is worth more, -1 if hand2 is, 0 for a tie.
	Guess(round int, hand1, hand2 *poker.Hand) (int, error)
	// Reveal is called once the answer to a round is known.
	Reveal(r Result)
}

// Result is the outcome of one round.
type Result struct {
	Round      int
	Hand1      *poker.Hand
	Hand2      *poker.Hand
	Categories [2]poker.Category
	Expected   int
	Guess      int
	Correct    bool
}

// Quiz is one game session.
type Quiz struct {
	Deck   poker.PokerDeck
	Ledger *ledger.Blockchain
	Logger *slog.Logger
	score  int
}

func NewQuiz(d poker.PokerDeck, l *ledger.Blockchain, logger *slog.Logger) *Quiz {
	if logger == nil {
		logger = slog.Default()
	}
	return &Quiz{
		Deck:   d,
		Ledger: l,
		Logger: logger,
	}
}

// ValidGuess reports whether g is an acceptable answer.
func ValidGuess(g int) bool {
	return g == poker.FirstWins || g == poker.Tie || g == poker.SecondWins
}

// Score returns the number of correct answers so far.
func (q *Quiz) Score() int {
	return q.score
}

// Play asks questions until the deck runs low or the player answers wrong,
// and returns the final score.
func (q *Quiz) Play(p Player) (int, error) {
	for round := 1; !q.Deck.HasFewerThan(poker.HandSize); round++ {
		res, err := q.PlayRound(round, p)
		if err != nil {
			return q.score, err
		}
		if !res.Correct {
			break
		}
	}
	q.Logger.Info("quiz finished", "score", q.score, "cards_left", q.Deck.Remaining())
	return q.score, nil
}

// PlayRound deals two hands, asks p to compare them and records the answer.
func (q *Quiz) PlayRound(round int, p Player) (Result, error) {
	hand1, hand2 := poker.NewHand(), poker.NewHand()
	if err := hand1.DealFrom(q.Deck, poker.HandSize); err != nil {
		return Result{}, fmt.Errorf("round %d, hand 1: %w", round, err)
	}
	if err := hand2.DealFrom(q.Deck, poker.HandSize); err != nil {
		return Result{}, fmt.Errorf("round %d, hand 2: %w", round, err)
	}

	expected, err := hand1.CompareTo(hand2)
	if err != nil {
		return Result{}, err
	}
	cat1, _ := hand1.Classify()
	cat2, _ := hand2.Classify()
	q.Logger.Debug("hands dealt", "round", round, "hand1", cat1.String(), "hand2", cat2.String())

	guess, err := p.Guess(round, hand1, hand2)
	if err != nil {
		return Result{}, fmt.Errorf("round %d: %w", round, err)
	}
	if !ValidGuess(guess) {
		return Result{}, fmt.Errorf("round %d: %w, got %d", round, ErrInvalidGuess, guess)
	}

	res := Result{
		Round:      round,
		Hand1:      hand1,
		Hand2:      hand2,
		Categories: [2]poker.Category{cat1, cat2},
		Expected:   expected,
		Guess:      guess,
		Correct:    guess == expected,
	}
	if res.Correct {
		q.score++
	}
	if q.Ledger != nil {
		if err := q.Ledger.Append(toLedgerRound(res)); err != nil {
			return Result{}, fmt.Errorf("record round %d: %w", round, err)
		}
	}
	p.Reveal(res)
	return res, nil
}

func toLedgerRound(r Result) ledger.Round {
	return ledger.Round{
		Number:     r.Round,
		Hand1:      cardNames(r.Hand1),
		Hand2:      cardNames(r.Hand2),
		Categories: [2]string{r.Categories[0].String(), r.Categories[1].String()},
		Expected:   r.Expected,
		Guess:      r.Guess,
		Correct:    r.Correct,
	}
}

func cardNames(h *poker.Hand) []string {
	cards := h.Cards()
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.String()
	}
	return names
}
