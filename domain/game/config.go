package game

import "fmt"

// Config holds the tunables of one game. The yaml and env tags are consumed
// by the config package.
type Config struct {
	SelectedMax             int     `yaml:"selected_max" json:"selected_max" env:"SELECTED_MAX"`
	AvailableMax            int     `yaml:"available_max" json:"available_max" env:"AVAILABLE_MAX"`
	JokerSlots              int     `yaml:"joker_slots" json:"joker_slots" env:"JOKER_SLOTS"`
	StoreConsumableSlotsMax int     `yaml:"store_consumable_slots_max" json:"store_consumable_slots_max" env:"STORE_CONSUMABLE_SLOTS_MAX"`
	HandSize                int     `yaml:"hand_size" json:"hand_size" env:"HAND_SIZE"`
	Plays                   int     `yaml:"plays" json:"plays" env:"PLAYS"`
	Discards                int     `yaml:"discards" json:"discards" env:"DISCARDS"`
	Money                   int     `yaml:"money" json:"money" env:"MONEY"`
	MoneyPerHand            int     `yaml:"money_per_hand" json:"money_per_hand" env:"MONEY_PER_HAND"`
	InterestRate            float64 `yaml:"interest_rate" json:"interest_rate" env:"INTEREST_RATE"`
	InterestMax             int     `yaml:"interest_max" json:"interest_max" env:"INTEREST_MAX"`
	AnteStart               Ante    `yaml:"ante_start" json:"ante_start" env:"ANTE_START"`
	AnteEnd                 Ante    `yaml:"ante_end" json:"ante_end" env:"ANTE_END"`
}

func DefaultConfig() Config {
	return Config{
		SelectedMax:             5,
		AvailableMax:            24,
		JokerSlots:              5,
		StoreConsumableSlotsMax: 4,
		HandSize:                8,
		Plays:                   4,
		Discards:                4,
		Money:                   0,
		MoneyPerHand:            1,
		InterestRate:            0.2,
		InterestMax:             5,
		AnteStart:               AnteOne,
		AnteEnd:                 AnteEight,
	}
}

// Validate reports the first setting that would make the game or its
// action space unusable.
func (c Config) Validate() error {
	switch {
	case c.SelectedMax < 1 || c.SelectedMax > 5:
		return fmt.Errorf("selected_max must be in [1, 5], got %d", c.SelectedMax)
	case c.AvailableMax < 1:
		return fmt.Errorf("available_max must be positive, got %d", c.AvailableMax)
	case c.HandSize < 1 || c.HandSize > c.AvailableMax:
		return fmt.Errorf("hand_size must be in [1, available_max=%d], got %d", c.AvailableMax, c.HandSize)
	case c.JokerSlots < 0:
		return fmt.Errorf("joker_slots must not be negative, got %d", c.JokerSlots)
	case c.StoreConsumableSlotsMax < 0:
		return fmt.Errorf("store_consumable_slots_max must not be negative, got %d", c.StoreConsumableSlotsMax)
	case c.Plays < 1:
		return fmt.Errorf("plays must be positive, got %d", c.Plays)
	case c.Discards < 0:
		return fmt.Errorf("discards must not be negative, got %d", c.Discards)
	case c.Money < 0 || c.MoneyPerHand < 0 || c.InterestMax < 0 || c.InterestRate < 0:
		return fmt.Errorf("money settings must not be negative")
	case !c.AnteStart.Valid() || !c.AnteEnd.Valid():
		return fmt.Errorf("antes must be in [0, 8], got %d..%d", c.AnteStart, c.AnteEnd)
	case c.AnteStart > c.AnteEnd:
		return fmt.Errorf("ante_start %d is after ante_end %d", c.AnteStart, c.AnteEnd)
	}
	return nil
}
