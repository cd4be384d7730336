package suplock

import (
	"fmt"

	"github.com/luca-patrignani/suplock/domain/catalog"
)

// effect applies part of a played card to the match. active and opponent
// point into s.
type effect func(s *GameState, active, opponent *Player, card catalog.Card)

// typeEffects run first, keyed by card type.
var typeEffects = map[catalog.Type]effect{
	catalog.Yield: deploy,
	catalog.Patch: deploy,
}

// cardEffects run after the type rule, keyed by catalog id. Cards missing
// from both tables have no effect beyond paying their cost.
var cardEffects = map[string]effect{
	"oracle-manip": stealYield(true),
	"treasury-mev": stealYield(false),
	"supply-burn":  supplyBurn,
	"genesis-burn": genesisBurn,
}

// PlayCard plays the first card in the active hand with the given catalog id.
// It is ignored outside the Play phase, when the hand holds no such card, or
// when the player cannot pay for it.
func PlayCard(s GameState, cardID string) GameState {
	if Check(s, Action{Type: ActionPlay, CardID: cardID}) != nil {
		return s
	}
	next := s.clone()
	active := next.seat(next.Turn)
	opponent := next.seat(next.Turn.Opponent())

	idx := findCard(active.Hand, cardID)
	card := active.Hand[idx]
	active.Yield -= card.Cost
	active.Hand = append(active.Hand[:idx], active.Hand[idx+1:]...)
	next.addLog(fmt.Sprintf("%s played %s.", active.Name, card.Name))

	if fx, ok := typeEffects[card.Type]; ok {
		fx(&next, active, opponent, card)
	}
	if fx, ok := cardEffects[card.ID]; ok {
		fx(&next, active, opponent, card)
	}
	return next
}

// deploy puts the card on the active field and adds its shield.
func deploy(_ *GameState, active, _ *Player, card catalog.Card) {
	active.Field = append(active.Field, card)
	active.Shield += card.Shield
}

// stealYield moves up to 1 yield from the opponent. The stolen yield is not
// clamped to the active player's maximum.
func stealYield(announce bool) effect {
	return func(s *GameState, active, opponent *Player, _ catalog.Card) {
		steal := min(1, opponent.Yield)
		opponent.Yield -= steal
		active.Yield += steal
		if announce {
			s.addLog(fmt.Sprintf("Oracle Manip stole %d yield.", steal))
		}
	}
}

// supplyBurn removes the most recently placed card of the opponent field.
func supplyBurn(s *GameState, _, opponent *Player, _ catalog.Card) {
	n := len(opponent.Field)
	if n == 0 {
		return
	}
	removed := opponent.Field[n-1]
	opponent.Field = opponent.Field[:n-1]
	s.addLog(fmt.Sprintf("Supply Burn removed %s.", removed.Name))
}

// genesisBurn keeps only mythic cards on the opponent field.
func genesisBurn(s *GameState, _, opponent *Player, _ catalog.Card) {
	kept := []catalog.Card{}
	for _, c := range opponent.Field {
		if c.IsMythic() {
			kept = append(kept, c)
		}
	}
	opponent.Field = kept
	s.addLog("Genesis Burn wiped the field!")
}
