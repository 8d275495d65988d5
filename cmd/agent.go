package main

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/balatro/domain/deck"
	"github.com/luca-patrignani/balatro/domain/game"
	"github.com/luca-patrignani/balatro/domain/planet"
	"github.com/luca-patrignani/balatro/engine"
)

var errNoLegalAction = errors.New("no legal action")

// Agent takes one step of an episode and describes what it did.
type Agent interface {
	Act(e *engine.Engine) (string, error)
}

// RandomAgent picks uniformly among the unmasked entries of the action space.
type RandomAgent struct {
	rng deck.Shuffler
}

func NewRandomAgent(rng deck.Shuffler) *RandomAgent {
	return &RandomAgent{rng: rng}
}

func (r *RandomAgent) Act(e *engine.Engine) (string, error) {
	var legal []int
	for i, v := range e.ActionSpace() {
		if v == 1 {
			legal = append(legal, i)
		}
	}
	if len(legal) == 0 {
		return "", errNoLegalAction
	}
	a, err := e.HandleIndex(legal[r.rng.IntN(len(legal))])
	if err != nil {
		return "", err
	}
	return a.String(), nil
}

// selectFunc shows options and returns the chosen one.
type selectFunc func(options []string) (string, error)

func ptermSelect(options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithMaxHeight(15).
		Show("Choose your action")
}

// InteractiveAgent asks the user to pick among the legal actions. In the shop
// the affordable planets are offered too.
type InteractiveAgent struct {
	choose selectFunc
}

func NewInteractiveAgent() *InteractiveAgent {
	return &InteractiveAgent{choose: ptermSelect}
}

type choice struct {
	action *game.Action
	planet planet.Planets
}

func options(e *engine.Engine) ([]string, map[string]choice) {
	var labels []string
	choices := make(map[string]choice)
	for _, a := range e.Actions() {
		label := a.String()
		if _, dup := choices[label]; dup {
			continue
		}
		labels = append(labels, label)
		choices[label] = choice{action: &a}
	}
	st := e.State()
	if st.Stage == game.ShopStage() && st.Money >= planet.Cost {
		for _, p := range st.ShopPlanets {
			label := fmt.Sprintf("buy %s ($%d)", p.Name(), planet.Cost)
			if _, dup := choices[label]; dup {
				continue
			}
			labels = append(labels, label)
			choices[label] = choice{planet: p}
		}
	}
	return labels, choices
}

func (i *InteractiveAgent) Act(e *engine.Engine) (string, error) {
	labels, choices := options(e)
	if len(labels) == 0 {
		return "", errNoLegalAction
	}
	label, err := i.choose(labels)
	if err != nil {
		return "", err
	}
	c, ok := choices[label]
	if !ok {
		return "", fmt.Errorf("unknown option %q", label)
	}
	if c.action != nil {
		return label, e.Handle(*c.action)
	}
	return label, e.BuyPlanet(c.planet)
}
