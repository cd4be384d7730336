package suplock

import (
	"slices"

	"github.com/luca-patrignani/suplock/domain/catalog"
)

const defaultLogLimit = 50

// clone returns a deep copy of s. Operations mutate the clone only.
func (s GameState) clone() GameState {
	c := s
	c.Players.A = s.Players.A.clone()
	c.Players.B = s.Players.B.clone()
	c.Log = slices.Clone(s.Log)
	return c
}

func (p Player) clone() Player {
	c := p
	c.Hand = cloneCards(p.Hand)
	c.Deck = cloneCards(p.Deck)
	c.Discard = cloneCards(p.Discard)
	c.Field = cloneCards(p.Field)
	return c
}

// cloneCards copies a zone; a nil zone stays nil.
func cloneCards(cards []catalog.Card) []catalog.Card {
	return slices.Clone(cards)
}

// addLog prepends a line to the match log, dropping the oldest lines past the limit.
func (s *GameState) addLog(line string) {
	limit := s.logLimit
	if limit <= 0 {
		limit = defaultLogLimit
	}
	s.Log = append([]string{line}, s.Log...)
	if len(s.Log) > limit {
		s.Log = s.Log[:limit]
	}
}
