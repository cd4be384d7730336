package suplock

import (
	"github.com/oklog/ulid/v2"

	"github.com/luca-patrignani/suplock/domain/catalog"
	"github.com/luca-patrignani/suplock/domain/deck"
)

// NewMatch deals a fresh match. Each player gets rules.DeckCopies copies of
// cards, independently shuffled with rng, and draws the opening hand from the
// top of that deck. Player A starts in the Draw phase of turn 1.
func NewMatch(rules Rules, cards []catalog.Card, rng deck.RNG) GameState {
	rules = rules.withDefaults()
	s := GameState{
		MatchID:    ulid.Make(),
		Players:    Players{},
		Turn:       PlayerA,
		Phase:      PhaseDraw,
		Log:        []string{"Game Started!"},
		TurnNumber: 1,
		logLimit:   rules.LogLimit,
	}
	s.Players.A = newPlayer(PlayerA, rules.NameA, rules, cards, rng)
	s.Players.B = newPlayer(PlayerB, rules.NameB, rules, cards, rng)
	return s
}

func newPlayer(id PlayerID, name string, rules Rules, cards []catalog.Card, rng deck.RNG) Player {
	d := deck.Build(cards, rules.DeckCopies, rng)
	hand, rest := deck.Deal(d, rules.HandSize)
	return Player{
		ID:        id,
		Name:      name,
		Health:    rules.InitialHealth,
		MaxHealth: rules.InitialHealth,
		Yield:     rules.InitialYield,
		MaxYield:  rules.InitialYield,
		Hand:      hand,
		Deck:      rest,
		Discard:   []catalog.Card{},
		Field:     []catalog.Card{},
	}
}
