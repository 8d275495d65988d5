package game

import "fmt"

// StageKind identifies a phase of the game.
type StageKind string

const (
	KindPreBlind  StageKind = "pre_blind"
	KindBlind     StageKind = "blind"
	KindPostBlind StageKind = "post_blind"
	KindShop      StageKind = "shop"
	KindEnd       StageKind = "end"
)

// Stage is the current phase. Blind is set only for KindBlind and End only
// for KindEnd, so two stages compare equal with ==.
type Stage struct {
	Kind  StageKind `json:"kind"`
	Blind Blind     `json:"blind,omitempty"`
	End   End       `json:"end,omitempty"`
}

func PreBlindStage() Stage { return Stage{Kind: KindPreBlind} }

func BlindStage(b Blind) Stage { return Stage{Kind: KindBlind, Blind: b} }

func PostBlindStage() Stage { return Stage{Kind: KindPostBlind} }

func ShopStage() Stage { return Stage{Kind: KindShop} }

func EndStage(e End) Stage { return Stage{Kind: KindEnd, End: e} }

func (s Stage) IsBlind() bool { return s.Kind == KindBlind }

func (s Stage) IsEnd() bool { return s.Kind == KindEnd }

func (s Stage) String() string {
	switch s.Kind {
	case KindBlind:
		return fmt.Sprintf("blind(%s)", s.Blind)
	case KindEnd:
		return fmt.Sprintf("end(%s)", s.End)
	default:
		return string(s.Kind)
	}
}

// Blind is the scoring challenge of a round.
type Blind string

const (
	Small Blind = "small"
	Big   Blind = "big"
	Boss  Blind = "boss"
)

// Next returns the blind that must follow b.
func (b Blind) Next() Blind {
	switch b {
	case Small:
		return Big
	case Big:
		return Boss
	default:
		return Small
	}
}

// Reward is the base money paid for beating the blind.
func (b Blind) Reward() int {
	switch b {
	case Small:
		return 3
	case Big:
		return 4
	case Boss:
		return 5
	default:
		return 0
	}
}

// End is the outcome of a finished game.
type End string

const (
	Win  End = "win"
	Lose End = "lose"
)

// Ante is the difficulty tier, Zero through Eight.
type Ante int

const (
	AnteZero Ante = iota
	AnteOne
	AnteTwo
	AnteThree
	AnteFour
	AnteFive
	AnteSix
	AnteSeven
	AnteEight
)

var anteBase = [...]int{100, 300, 800, 2000, 5000, 11000, 20000, 35000, 50000}

// Base is the chip requirement of the small blind of the ante.
func (a Ante) Base() int {
	if a < AnteZero || a > AnteEight {
		return 0
	}
	return anteBase[a]
}

// Next returns the following ante, or false after AnteEight.
func (a Ante) Next() (Ante, bool) {
	if a >= AnteEight {
		return a, false
	}
	return a + 1, true
}

func (a Ante) Valid() bool {
	return a >= AnteZero && a <= AnteEight
}
