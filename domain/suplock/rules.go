package suplock

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/suplock/domain/catalog"
)

var (
	ErrWrongPhase        = errors.New("action not allowed in the current phase")
	ErrUnknownCard       = errors.New("card not in hand")
	ErrInsufficientYield = errors.New("insufficient yield")
	ErrMatchOver         = errors.New("match is over")
	ErrUnknownAction     = errors.New("unknown action")
)

type ActionType string

const (
	ActionNewMatch ActionType = "new_match"
	ActionAdvance  ActionType = "advance"
	ActionPlay     ActionType = "play"
	ActionCombat   ActionType = "combat"
)

// Action is a request submitted against a match.
type Action struct {
	Type   ActionType `json:"type"`
	CardID string     `json:"card_id,omitempty"` // ActionPlay only
}

// Check reports why a would be ignored in s, or nil if it would take effect.
// It never modifies s.
func Check(s GameState, a Action) error {
	if a.Type == ActionNewMatch {
		return nil
	}
	if s.Over() {
		return fmt.Errorf("%s: %w (winner %s)", a.Type, ErrMatchOver, s.Winner)
	}
	switch a.Type {
	case ActionAdvance:
		return nil
	case ActionPlay:
		if s.Phase != PhasePlay {
			return fmt.Errorf("play %s in %s phase: %w", a.CardID, s.Phase, ErrWrongPhase)
		}
		active := s.Active()
		idx := findCard(active.Hand, a.CardID)
		if idx == -1 {
			return fmt.Errorf("play %s: %w", a.CardID, ErrUnknownCard)
		}
		if cost := active.Hand[idx].Cost; active.Yield < cost {
			return fmt.Errorf("play %s: cost %d, have %d: %w", a.CardID, cost, active.Yield, ErrInsufficientYield)
		}
	case ActionCombat:
		if s.Phase != PhaseCombat {
			return fmt.Errorf("combat in %s phase: %w", s.Phase, ErrWrongPhase)
		}
	default:
		return fmt.Errorf("%q: %w", a.Type, ErrUnknownAction)
	}
	return nil
}

// Apply runs the operation named by a. Rejected actions return s unchanged.
// ActionNewMatch is not handled here since it needs a catalog and an RNG.
func Apply(s GameState, a Action) GameState {
	switch a.Type {
	case ActionAdvance:
		return AdvancePhase(s)
	case ActionPlay:
		return PlayCard(s, a.CardID)
	case ActionCombat:
		return ResolveCombat(s)
	}
	return s
}

// findCard returns the index of the first card with the given catalog id, or -1.
func findCard(cards []catalog.Card, id string) int {
	for i, c := range cards {
		if c.ID == id {
			return i
		}
	}
	return -1
}
