package catalog

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
)

// Type is the rules category of a card.
type Type string

const (
	Exploit Type = "exploit"
	Patch   Type = "patch"
	Yield   Type = "yield"
	Burn    Type = "burn"
)

// Rarity of a card. Only Mythic has a rules meaning (it survives Genesis Burn).
type Rarity string

const (
	Common   Rarity = "common"
	Uncommon Rarity = "uncommon"
	Rare     Rarity = "rare"
	Mythic   Rarity = "mythic"
)

// Card is a card definition as published by the catalog.
//
// Catalog entries have an empty Instance. A card that is dealt into a player
// zone is a copy with its own Instance identifier, so two copies of the same
// definition can always be told apart.
type Card struct {
	ID          string `yaml:"id" json:"id"`
	Instance    string `yaml:"-" json:"instance,omitempty"`
	Name        string `yaml:"name" json:"name"`
	Type        Type   `yaml:"type" json:"type"`
	Cost        int    `yaml:"cost" json:"cost"`
	Effect      string `yaml:"effect" json:"effect"`
	Description string `yaml:"description" json:"description"`
	Power       int    `yaml:"power,omitempty" json:"power,omitempty"`
	Shield      int    `yaml:"shield,omitempty" json:"shield,omitempty"`
	YieldBonus  int    `yaml:"yield_bonus,omitempty" json:"yield_bonus,omitempty"`
	Rarity      Rarity `yaml:"rarity" json:"rarity"`
}

// Instantiate returns a copy of the definition with a fresh instance identifier.
func (c Card) Instantiate() Card {
	c.Instance = uuid.NewString()
	return c
}

// IsMythic reports whether the card has mythic rarity.
func (c Card) IsMythic() bool {
	return c.Rarity == Mythic
}

// String returns a short coloured label of the card: cost, name and type.
func (c Card) String() string {
	var kind string
	switch c.Type {
	case Exploit:
		kind = pterm.LightRed(string(c.Type))
	case Patch:
		kind = pterm.LightBlue(string(c.Type))
	case Yield:
		kind = pterm.LightGreen(string(c.Type))
	case Burn:
		kind = pterm.LightYellow(string(c.Type))
	default:
		kind = "?"
	}
	return fmt.Sprintf("[%d] %s (%s)", c.Cost, c.Name, kind)
}
