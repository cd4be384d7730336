// Package catalog holds the immutable registry of Suplock card definitions.
//
// The default catalog is embedded in the binary as a YAML document. A
// replacement catalog can be loaded from any reader; it goes through the same
// validation as the embedded one.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/cards.yaml
var embeddedCards []byte

var (
	ErrDuplicateID   = errors.New("duplicate card id")
	ErrInvalidCard   = errors.New("invalid card definition")
	ErrEmptyCatalog  = errors.New("catalog has no cards")
	ErrUnknownCardID = errors.New("card not in catalog")
)

type document struct {
	Cards []Card `yaml:"cards"`
}

// Catalog is a read-only, ordered set of card definitions.
type Catalog struct {
	cards []Card
	byID  map[string]int
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Parse(embeddedCards)
		if defaultErr != nil {
			defaultErr = fmt.Errorf("parse embedded catalog: %w", defaultErr)
		}
	})
	return defaultCat, defaultErr
}

// Load decodes and validates a YAML catalog document from r.
func Load(r io.Reader) (*Catalog, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(raw)
}

// LoadFile is Load on the file at path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Parse decodes and validates a YAML catalog document.
func Parse(raw []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(doc.Cards)
}

// New builds a catalog from definitions, keeping their order.
func New(cards []Card) (*Catalog, error) {
	if len(cards) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		cards: make([]Card, 0, len(cards)),
		byID:  make(map[string]int, len(cards)),
	}
	for i, card := range cards {
		if err := validate(card); err != nil {
			return nil, fmt.Errorf("card %d (%q): %w", i, card.ID, err)
		}
		if _, ok := c.byID[card.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, card.ID)
		}
		card.Instance = ""
		c.byID[card.ID] = len(c.cards)
		c.cards = append(c.cards, card)
	}
	return c, nil
}

// Cards returns a copy of all definitions in catalog order.
func (c *Catalog) Cards() []Card {
	out := make([]Card, len(c.cards))
	copy(out, c.cards)
	return out
}

// Lookup returns the definition with the given id.
func (c *Catalog) Lookup(id string) (Card, error) {
	idx, ok := c.byID[id]
	if !ok {
		return Card{}, fmt.Errorf("%w: %s", ErrUnknownCardID, id)
	}
	return c.cards[idx], nil
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	return len(c.cards)
}

func validate(c Card) error {
	if c.ID == "" || c.Name == "" {
		return fmt.Errorf("%w: id and name are required", ErrInvalidCard)
	}
	switch c.Type {
	case Exploit, Patch, Yield, Burn:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidCard, c.Type)
	}
	switch c.Rarity {
	case Common, Uncommon, Rare, Mythic:
	default:
		return fmt.Errorf("%w: unknown rarity %q", ErrInvalidCard, c.Rarity)
	}
	if c.Cost < 0 || c.Power < 0 || c.Shield < 0 || c.YieldBonus < 0 {
		return fmt.Errorf("%w: negative cost, power, shield or yield bonus", ErrInvalidCard)
	}
	return nil
}
