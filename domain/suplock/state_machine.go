package suplock

import "fmt"

// nextPhase returns the phase after current in the turn cycle. Unknown phases
// restart the cycle.
func nextPhase(current Phase) Phase {
	phases := []Phase{PhaseYield, PhaseDraw, PhasePlay, PhaseCombat, PhaseEnd}

	for i, p := range phases {
		if p == current {
			return phases[(i+1)%len(phases)]
		}
	}
	return PhaseYield
}

// AdvancePhase moves the match one phase forward and applies the entry
// effects of the new phase. Leaving End passes the turn; the turn counter
// moves when the turn comes back to player A.
func AdvancePhase(s GameState) GameState {
	if s.Over() {
		return s
	}
	next := s.clone()
	if next.Phase == PhaseEnd {
		next.Turn = next.Turn.Opponent()
		if next.Turn == PlayerA {
			next.TurnNumber++
		}
	}
	next.Phase = nextPhase(next.Phase)

	switch next.Phase {
	case PhaseYield:
		next.gainYield()
	case PhaseDraw:
		next.draw()
	}
	return next
}

// gainYield credits the active player 1 yield plus the yield bonus of its field.
func (s *GameState) gainYield() {
	p := s.seat(s.Turn)
	gain := 1
	for _, c := range p.Field {
		gain += c.YieldBonus
	}
	p.Yield = min(p.MaxYield, p.Yield+gain)
	s.addLog(fmt.Sprintf("%s gained %d yield.", p.Name, gain))
}

// draw moves the top card of the active deck to the end of the hand. An empty
// deck draws nothing.
func (s *GameState) draw() {
	p := s.seat(s.Turn)
	if len(p.Deck) == 0 {
		return
	}
	p.Hand = append(p.Hand, p.Deck[0])
	p.Deck = p.Deck[1:]
	s.addLog(fmt.Sprintf("%s drew a card.", p.Name))
}
