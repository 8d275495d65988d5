package main

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/balatro/domain/card"
	"github.com/luca-patrignani/balatro/domain/game"
	"github.com/luca-patrignani/balatro/engine"
)

func getActionPanel(desc string) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightYellow("|LAST ACTION|")).WithTitleTopCenter().Sprint(desc)}
}

func getResultPanel(s engine.State) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	if s.Stage.IsEnd() && s.Stage.End == game.Win {
		return pterm.Panel{Data: pbox.WithTitle(pterm.LightGreen("|WIN|")).WithTitleTopCenter().
			Sprintf("Cleared ante %d with $%d", s.Ante, s.Money)}
	}
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightRed("|LOSE|")).WithTitleTopCenter().
		Sprintf("Lost at ante %d, round %d\nScore %d of %d", s.Ante, s.Round, s.Score, s.Required)}
}

func printState(s engine.State, additionalPanel ...pterm.Panel) {
	status := pterm.Panel{Data: printStatusInfo(s)}
	hand := pterm.Panel{Data: printHandInfo(s)}
	shop := pterm.Panel{Data: printShopInfo(s)}
	dashboard := []pterm.Panel{hand}
	dashboard = append(dashboard, additionalPanel...)

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{status, shop},
		dashboard,
	}).Render()
}

func printStatusInfo(s engine.State) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return pbox.WithTitle(pterm.LightCyan(s.Stage.String())).WithTitleTopLeft().Sprintf(
		"Ante %d  Round %d\nScore: %d / %d\nPlays: %d  Discards: %d\nMoney: $%d\nDeck: %d",
		s.Ante, s.Round, s.Score, s.Required, s.Plays, s.Discards, s.Money, s.DeckSize)
}

func printHandInfo(s engine.State) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(10).WithTopPadding(1).WithBottomPadding(1)
	last := "-"
	if s.LastHand != nil {
		last = s.LastHand.Describe()
	}
	return pbox.WithTitle("Hand").WithTitleTopLeft().Sprintf("%s\nSelected: %s\nLast hand: %s",
		printCards(s.Available, s.Selected), joinCards(s.Selected), last)
}

func printShopInfo(s engine.State) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	var jokers, shop []string
	for _, j := range s.Jokers {
		jokers = append(jokers, j.Name())
	}
	for _, j := range s.ShopJokers {
		shop = append(shop, pterm.Sprintf("%s ($%d)", j.Name(), j.Cost()))
	}
	for _, p := range s.ShopPlanets {
		shop = append(shop, p.Name())
	}
	return pbox.WithTitle("Jokers").WithTitleTopLeft().Sprintf("Owned: %s\nShop: %s",
		orDash(strings.Join(jokers, ", ")), orDash(strings.Join(shop, ", ")))
}

// printCards highlights the selected cards of the hand.
func printCards(cards, selected []card.Card) string {
	parts := make([]string, len(cards))
	picked := make(map[card.Card]int)
	for _, c := range selected {
		picked[c]++
	}
	for i, c := range cards {
		if picked[c] > 0 {
			picked[c]--
			parts[i] = pterm.BgGreen.Sprint(c.String())
			continue
		}
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func joinCards(cards []card.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return orDash(strings.Join(parts, " "))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
