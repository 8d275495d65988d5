package game

import (
	"fmt"
)

// Jokers is the closed catalog of purchasable modifiers. The zero value is
// not a joker.
type Jokers int

const (
	TheJoker Jokers = iota + 1
	GreedyJoker
	LustyJoker
	WrathfulJoker
	GluttonousJoker
	JollyJoker
	ZanyJoker
	SlyJoker
	WilyJoker
	Banner
	MysticSummit
)

// AllJokers lists the catalog in shop order.
var AllJokers = []Jokers{
	TheJoker, GreedyJoker, LustyJoker, WrathfulJoker, GluttonousJoker,
	JollyJoker, ZanyJoker, SlyJoker, WilyJoker, Banner, MysticSummit,
}

type Rarity string

const (
	Common    Rarity = "common"
	Uncommon  Rarity = "uncommon"
	Rare      Rarity = "rare"
	Legendary Rarity = "legendary"
)

type Category string

const (
	CategoryMultPlus  Category = "mult_plus"
	CategoryMultMult  Category = "mult_mult"
	CategoryChips     Category = "chips"
	CategoryEconomy   Category = "economy"
	CategoryRetrigger Category = "retrigger"
	CategoryEffect    Category = "effect"
)

type jokerInfo struct {
	name       string
	desc       string
	rarity     Rarity
	cost       int
	categories []Category
}

var jokerCatalog = map[Jokers]jokerInfo{
	TheJoker:        {"Joker", "+4 Mult", Common, 2, []Category{CategoryMultPlus}},
	GreedyJoker:     {"Greedy Joker", "Played cards with Diamond suit give +3 Mult when scored", Common, 5, []Category{CategoryMultPlus}},
	LustyJoker:      {"Lusty Joker", "Played cards with Heart suit give +3 Mult when scored", Common, 5, []Category{CategoryMultPlus}},
	WrathfulJoker:   {"Wrathful Joker", "Played cards with Spade suit give +3 Mult when scored", Common, 5, []Category{CategoryMultPlus}},
	GluttonousJoker: {"Gluttonous Joker", "Played cards with Club suit give +3 Mult when scored", Common, 5, []Category{CategoryMultPlus}},
	JollyJoker:      {"Jolly Joker", "+8 Mult if played hand contains a Pair", Common, 3, []Category{CategoryMultPlus}},
	ZanyJoker:       {"Zany Joker", "+12 Mult if played hand contains a Three of a Kind", Common, 4, []Category{CategoryMultPlus}},
	SlyJoker:        {"Sly Joker", "+50 Chips if played hand contains a Pair", Common, 3, []Category{CategoryChips}},
	WilyJoker:       {"Wily Joker", "+100 Chips if played hand contains a Three of a Kind", Common, 4, []Category{CategoryChips}},
	Banner:          {"Banner", "+30 Chips for each remaining discard", Common, 5, []Category{CategoryChips}},
	MysticSummit:    {"Mystic Summit", "+15 Mult when 0 discards remaining", Common, 5, []Category{CategoryMultPlus}},
}

func (j Jokers) info() jokerInfo {
	return jokerCatalog[j]
}

func (j Jokers) Valid() bool {
	_, ok := jokerCatalog[j]
	return ok
}

func (j Jokers) Name() string {
	if !j.Valid() {
		return fmt.Sprintf("Jokers(%d)", int(j))
	}
	return j.info().name
}

func (j Jokers) String() string { return j.Name() }

func (j Jokers) Desc() string { return j.info().desc }

func (j Jokers) Rarity() Rarity { return j.info().rarity }

func (j Jokers) Cost() int { return j.info().cost }

func (j Jokers) Categories() []Category {
	return append([]Category(nil), j.info().categories...)
}

// Effects returns the hooks the joker registers while owned.
func (j Jokers) Effects(*Game) []Effect {
	return []Effect{{Trigger: OnScore, Joker: j}}
}

func (j Jokers) MarshalText() ([]byte, error) {
	if !j.Valid() {
		return nil, fmt.Errorf("unknown joker %d", int(j))
	}
	return []byte(j.Name()), nil
}

func (j *Jokers) UnmarshalText(text []byte) error {
	for _, candidate := range AllJokers {
		if candidate.Name() == string(text) {
			*j = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown joker %q", text)
}
