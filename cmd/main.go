package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/how-does-it-rank/config"
	"github.com/luca-patrignani/how-does-it-rank/domain/deck"
	"github.com/luca-patrignani/how-does-it-rank/domain/poker"
	"github.com/luca-patrignani/how-does-it-rank/game"
	"github.com/luca-patrignani/how-does-it-rank/ledger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(ptermLevel(cfg.LogLevel))))

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("How does it ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("Rank", pterm.FgRed.ToStyle()),
	).Render()

	var shuffler deck.Shuffler
	if cfg.Seed != nil {
		logger.Debug("using seeded deck", "seed", *cfg.Seed)
		shuffler = deck.NewSeededShuffler(*cfg.Seed)
	} else {
		shuffler = deck.NewStreamShuffler()
	}

	chain := ledger.NewBlockchain()
	quiz := game.NewQuiz(poker.NewPokerDeck(shuffler), chain, logger)

	score, err := quiz.Play(terminalPlayer{})
	if err != nil {
		logger.Error("quiz aborted", "error", err)
		os.Exit(1)
	}

	if cfg.VerifyLedger {
		if err := chain.Verify(); err != nil {
			logger.Error("round ledger is corrupted", "error", err)
			os.Exit(1)
		}
		if chain.Score() != score {
			logger.Error("score does not match ledger", "score", score, "ledger", chain.Score())
			os.Exit(1)
		}
	}
	pterm.DefaultBasicText.Println(finalScore(score))
}

// terminalPlayer asks the user through pterm prompts.
type terminalPlayer struct{}

func (terminalPlayer) Guess(round int, hand1, hand2 *poker.Hand) (int, error) {
	printHands(round, hand1, hand2)
	for {
		answer, err := pterm.DefaultInteractiveTextInput.
			WithDefaultText("Which hand is worth more? Enter 1 for Hand 1, -1 for Hand 2, or 0 for a Tie").
			Show()
		if err != nil {
			return 0, err
		}
		guess, err := parseGuess(answer)
		if err == nil {
			return guess, nil
		}
		pterm.Warning.Println(err)
	}
}

func (terminalPlayer) Reveal(r game.Result) {
	pterm.Println()
	if r.Correct {
		pterm.Success.Println("Nice! You got it right!")
	} else {
		pterm.Error.Printfln("Sorry! You lost!\nThe correct answer was %d.", r.Expected)
	}
	printResult(r)
}

var errNotAGuess = errors.New("answer with 1, 0 or -1")

// parseGuess converts user input into a quiz answer.
func parseGuess(s string) (int, error) {
	g, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !game.ValidGuess(g) {
		return 0, errNotAGuess
	}
	return g, nil
}

func finalScore(score int) string {
	return fmt.Sprintf("Final score: %d", score)
}

func ptermLevel(l slog.Level) pterm.LogLevel {
	switch {
	case l <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case l <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case l <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}
