package main

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/how-does-it-rank/domain/poker"
	"github.com/luca-patrignani/how-does-it-rank/game"
)

func handPanel(title string, h *poker.Hand) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return pterm.Panel{Data: pbox.WithTitle(title).WithTitleTopLeft().Sprint(strings.TrimRight(h.Display(), "\n"))}
}

func printHands(round int, hand1, hand2 *poker.Hand) {
	pterm.DefaultSection.Printfln("Round %d", round)
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{handPanel("Hand 1", hand1), handPanel("Hand 2", hand2)},
	}).Render()
}

func printResult(r game.Result) {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	info := pterm.Sprintfln("Hand 1: %s  %s", symbols(r.Hand1), describe(r.Hand1, r.Categories[0])) +
		pterm.Sprintf("Hand 2: %s  %s", symbols(r.Hand2), describe(r.Hand2, r.Categories[1]))
	pbox.WithTitle(pterm.LightYellow("|SHOWDOWN|")).WithTitleTopCenter().Println(info)
}

func symbols(h *poker.Hand) string {
	cards := h.Cards()
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Symbol()
	}
	return strings.Join(out, " ")
}

// describe shows the quiz category next to the full poker name when one is
// available.
func describe(h *poker.Hand, c poker.Category) string {
	name, err := h.Describe()
	if err != nil {
		return pterm.LightCyan(c.String())
	}
	return pterm.LightCyan(c.String()) + pterm.FgGray.Sprint(" ("+name+")")
}
