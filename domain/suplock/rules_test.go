package suplock

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/suplock/domain/catalog"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(s *GameState)
		action  Action
		wantErr error
	}{
		{
			name:   "AdvanceAlwaysAllowed",
			setup:  func(s *GameState) { s.Phase = PhaseEnd },
			action: Action{Type: ActionAdvance},
		},
		{
			name:   "PlayAffordable",
			setup:  func(s *GameState) {},
			action: Action{Type: ActionPlay, CardID: "iasset-stake"},
		},
		{
			name:    "PlayWrongPhase",
			setup:   func(s *GameState) { s.Phase = PhaseDraw },
			action:  Action{Type: ActionPlay, CardID: "iasset-stake"},
			wantErr: ErrWrongPhase,
		},
		{
			name:    "PlayUnknownCard",
			setup:   func(s *GameState) {},
			action:  Action{Type: ActionPlay, CardID: "supply-burn"},
			wantErr: ErrUnknownCard,
		},
		{
			name:    "PlayUnaffordable",
			setup:   func(s *GameState) { s.Players.A.Yield = 1 },
			action:  Action{Type: ActionPlay, CardID: "iasset-stake"},
			wantErr: ErrInsufficientYield,
		},
		{
			name:   "CombatInCombat",
			setup:  func(s *GameState) { s.Phase = PhaseCombat },
			action: Action{Type: ActionCombat},
		},
		{
			name:    "CombatWrongPhase",
			setup:   func(s *GameState) {},
			action:  Action{Type: ActionCombat},
			wantErr: ErrWrongPhase,
		},
		{
			name:    "MatchOver",
			setup:   func(s *GameState) { s.Winner = "Architect A" },
			action:  Action{Type: ActionAdvance},
			wantErr: ErrMatchOver,
		},
		{
			name:   "NewMatchAfterWinner",
			setup:  func(s *GameState) { s.Winner = "Architect A" },
			action: Action{Type: ActionNewMatch},
		},
		{
			name:    "UnknownAction",
			setup:   func(s *GameState) {},
			action:  Action{Type: "concede"},
			wantErr: ErrUnknownAction,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := blankState()
			s.Players.A.Hand = []catalog.Card{inst(t, "iasset-stake")}
			tt.setup(&s)

			err := Check(s, tt.action)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApply(t *testing.T) {
	s := blankState()
	s.Players.A.Hand = []catalog.Card{inst(t, "iasset-stake"), exploit(4)}

	s = Apply(s, Action{Type: ActionPlay, CardID: "iasset-stake"})
	assert.Len(t, s.Players.A.Field, 1)

	s = Apply(s, Action{Type: ActionAdvance})
	assert.Equal(t, PhaseCombat, s.Phase)

	s = Apply(s, Action{Type: ActionCombat})
	assert.Equal(t, 26, s.Players.B.Health)

	assert.Equal(t, s, Apply(s, Action{Type: "concede"}))
	assert.Equal(t, s, Apply(s, Action{Type: ActionNewMatch}))
}

// TestRandomGameKeepsInvariants drives seeded random matches and checks the
// invariants that must hold after every operation.
func TestRandomGameKeepsInvariants(t *testing.T) {
	cards := defaultCards(t).Cards()
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		s := NewMatch(DefaultRules(), cards, rng)
		total := len(instances(s))

		for step := 0; step < 400 && !s.Over(); step++ {
			prev := s
			var a Action
			switch rng.Intn(3) {
			case 0:
				a = Action{Type: ActionAdvance}
			case 1:
				a = Action{Type: ActionCombat}
			default:
				hand := s.Active().Hand
				id := "rug-pull"
				if len(hand) > 0 {
					id = hand[rng.Intn(len(hand))].ID
				}
				a = Action{Type: ActionPlay, CardID: id}
			}
			checkErr := Check(s, a)
			s = Apply(s, a)
			if checkErr != nil {
				require.Equal(t, prev, s, "rejected %v changed the state", a)
			}

			if a.Type == ActionPlay && checkErr == nil {
				cost := 0
				for _, c := range prev.Active().Hand {
					if c.ID == a.CardID {
						cost = c.Cost
						break
					}
				}
				stolen := s.Players.A.Yield + s.Players.B.Yield - (prev.Players.A.Yield + prev.Players.B.Yield)
				require.Equal(t, -cost, stolen, "only the cost leaves the yield pools")
			}

			seen := map[string]bool{}
			for _, id := range instances(s) {
				require.False(t, seen[id], "seed %d: instance %s in two zones", seed, id)
				seen[id] = true
			}
			require.LessOrEqual(t, len(seen), total)

			for _, p := range []Player{s.Players.A, s.Players.B} {
				require.GreaterOrEqual(t, p.Health, 0)
				require.LessOrEqual(t, p.Health, p.MaxHealth)
				require.GreaterOrEqual(t, p.Yield, 0)
				require.GreaterOrEqual(t, p.Shield, 0)
			}
			require.LessOrEqual(t, len(s.Log), 50)
		}
	}
}
