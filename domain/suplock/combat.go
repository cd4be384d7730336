package suplock

import (
	"fmt"

	"github.com/luca-patrignani/suplock/domain/catalog"
)

// CombatDamage is the total power of the exploit cards in p's hand.
func CombatDamage(p Player) int {
	damage := 0
	for _, c := range p.Hand {
		if c.Type == catalog.Exploit {
			damage += c.Power
		}
	}
	return damage
}

// ResolveCombat deals the active player's combat damage to the opponent.
// Shield absorbs damage first; the rest is taken from health. Dropping the
// opponent to 0 health wins the match. Exploits stay in hand, so resolving
// twice in the same phase deals damage twice.
func ResolveCombat(s GameState) GameState {
	if Check(s, Action{Type: ActionCombat}) != nil {
		return s
	}
	next := s.clone()
	attacker := next.seat(next.Turn)
	defender := next.seat(next.Turn.Opponent())

	damage := CombatDamage(*attacker)
	if damage == 0 {
		next.addLog("No combat damage dealt.")
		return next
	}

	if defender.Shield > 0 {
		absorbed := min(defender.Shield, damage)
		defender.Shield -= absorbed
		damage -= absorbed
		next.addLog(fmt.Sprintf("Shield absorbed %d damage.", absorbed))
	}

	defender.Health = max(0, defender.Health-damage)
	next.addLog(fmt.Sprintf("%s dealt %d damage to %s.", attacker.Name, damage, defender.Name))

	if defender.Health <= 0 {
		next.Winner = attacker.Name
	}
	return next
}
