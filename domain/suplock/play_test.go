package suplock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/suplock/domain/catalog"
)

func TestPlayDeductsCost(t *testing.T) {
	s := blankState()
	stake := inst(t, "iasset-stake")
	s.Players.A.Hand = []catalog.Card{stake}

	next := PlayCard(s, "iasset-stake")
	assert.Equal(t, 18, next.Players.A.Yield)
	assert.Empty(t, next.Players.A.Hand)
	assert.Equal(t, []catalog.Card{stake}, next.Players.A.Field)
	assert.Equal(t, "Architect A played iAsset Stake.", next.Log[0])

	// input untouched
	assert.Equal(t, 20, s.Players.A.Yield)
	assert.Len(t, s.Players.A.Hand, 1)
	assert.Empty(t, s.Players.A.Field)
}

func TestPlayExactYield(t *testing.T) {
	s := blankState()
	s.Players.A.Yield = 10
	s.Players.A.Hand = []catalog.Card{inst(t, "genesis-burn")}

	next := PlayCard(s, "genesis-burn")
	assert.Zero(t, next.Players.A.Yield)
	assert.Empty(t, next.Players.A.Hand)
}

func TestPlayPatchAddsShield(t *testing.T) {
	s := blankState()
	s.Players.A.Shield = 1
	s.Players.A.Hand = []catalog.Card{inst(t, "peckshield-audit")}

	next := PlayCard(s, "peckshield-audit")
	assert.Equal(t, 3, next.Players.A.Shield)
	assert.Len(t, next.Players.A.Field, 1)
	assert.Equal(t, 17, next.Players.A.Yield)
}

func TestPlayExploitStaysOffField(t *testing.T) {
	s := blankState()
	s.Players.A.Hand = []catalog.Card{inst(t, "reentrancy-flash")}

	next := PlayCard(s, "reentrancy-flash")
	assert.Empty(t, next.Players.A.Hand)
	assert.Empty(t, next.Players.A.Field)
	assert.Empty(t, next.Players.B.Field)
	assert.Equal(t, 17, next.Players.A.Yield)
}

func TestPlayRemovesOnlyFirstCopy(t *testing.T) {
	s := blankState()
	first, second := inst(t, "treasury-mev"), inst(t, "treasury-mev")
	s.Players.A.Hand = []catalog.Card{first, inst(t, "supply-burn"), second}

	next := PlayCard(s, "treasury-mev")
	require.Len(t, next.Players.A.Hand, 2)
	assert.Equal(t, "supply-burn", next.Players.A.Hand[0].ID)
	assert.Equal(t, second.Instance, next.Players.A.Hand[1].Instance)
	require.Len(t, next.Players.A.Field, 1)
	assert.Equal(t, first.Instance, next.Players.A.Field[0].Instance)
}

func TestPlayRejected(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *GameState)
		card  string
	}{
		{
			name:  "WrongPhase",
			setup: func(s *GameState) { s.Phase = PhaseCombat },
			card:  "iasset-stake",
		},
		{
			name:  "NotInHand",
			setup: func(s *GameState) {},
			card:  "genesis-burn",
		},
		{
			name:  "UnknownID",
			setup: func(s *GameState) {},
			card:  "rug-pull",
		},
		{
			name:  "ZeroYield",
			setup: func(s *GameState) { s.Players.A.Yield = 0 },
			card:  "iasset-stake",
		},
		{
			name:  "OpponentHand",
			setup: func(s *GameState) { s.Turn = PlayerB },
			card:  "iasset-stake",
		},
		{
			name:  "MatchOver",
			setup: func(s *GameState) { s.Winner = "Hacker B" },
			card:  "iasset-stake",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := blankState()
			s.Players.A.Hand = []catalog.Card{inst(t, "iasset-stake")}
			tt.setup(&s)

			assert.Equal(t, s, PlayCard(s, tt.card))
		})
	}
}

func TestOracleManipStealsAndLogs(t *testing.T) {
	s := blankState()
	s.Players.A.Hand = []catalog.Card{inst(t, "oracle-manip")}

	next := PlayCard(s, "oracle-manip")
	assert.Equal(t, 19, next.Players.A.Yield)
	assert.Equal(t, 19, next.Players.B.Yield)
	assert.Equal(t, []string{
		"Oracle Manip stole 1 yield.",
		"Architect A played Oracle Manip.",
		"Game Started!",
	}, next.Log)
}

func TestOracleManipAgainstEmptyPool(t *testing.T) {
	s := blankState()
	s.Players.B.Yield = 0
	s.Players.A.Hand = []catalog.Card{inst(t, "oracle-manip")}

	next := PlayCard(s, "oracle-manip")
	assert.Equal(t, 18, next.Players.A.Yield)
	assert.Zero(t, next.Players.B.Yield)
	assert.Equal(t, "Oracle Manip stole 0 yield.", next.Log[0])
}

func TestTreasuryMEVStealsSilently(t *testing.T) {
	s := blankState()
	s.Players.A.Hand = []catalog.Card{inst(t, "treasury-mev")}

	next := PlayCard(s, "treasury-mev")
	assert.Equal(t, 20, next.Players.A.Yield)
	assert.Equal(t, 19, next.Players.B.Yield)
	assert.Len(t, next.Players.A.Field, 1)
	assert.Equal(t, "Architect A played Treasury MEV.", next.Log[0])
}

func TestStolenYieldIsNotClamped(t *testing.T) {
	s := blankState()
	s.Players.A.Yield = 1
	s.Players.A.MaxYield = 0
	s.Players.A.Hand = []catalog.Card{inst(t, "treasury-mev")}

	next := PlayCard(s, "treasury-mev")
	assert.Equal(t, 1, next.Players.A.Yield)
	assert.Equal(t, 19, next.Players.B.Yield)
}

func TestSupplyBurnRemovesLastFieldCard(t *testing.T) {
	s := blankState()
	older, newer := inst(t, "iasset-stake"), inst(t, "peckshield-audit")
	s.Players.B.Field = []catalog.Card{older, newer}
	s.Players.A.Hand = []catalog.Card{inst(t, "supply-burn")}

	next := PlayCard(s, "supply-burn")
	assert.Equal(t, []catalog.Card{older}, next.Players.B.Field)
	assert.Equal(t, 14, next.Players.A.Yield)
	assert.Equal(t, "Supply Burn removed PeckShield Audit.", next.Log[0])
	assert.Len(t, s.Players.B.Field, 2)
}

func TestSupplyBurnEmptyField(t *testing.T) {
	s := blankState()
	s.Players.A.Hand = []catalog.Card{inst(t, "supply-burn")}

	next := PlayCard(s, "supply-burn")
	assert.Empty(t, next.Players.B.Field)
	assert.Equal(t, "Architect A played Supply Burn.", next.Log[0])
}

func TestGenesisBurnKeepsMythic(t *testing.T) {
	s := blankState()
	mythic := catalog.Card{ID: "relic", Name: "Relic", Type: catalog.Yield, Rarity: catalog.Mythic}.Instantiate()
	s.Players.B.Field = []catalog.Card{inst(t, "iasset-stake"), mythic, inst(t, "peckshield-audit")}
	s.Players.A.Field = []catalog.Card{inst(t, "iasset-stake")}
	s.Players.A.Hand = []catalog.Card{inst(t, "genesis-burn")}

	next := PlayCard(s, "genesis-burn")
	assert.Equal(t, []catalog.Card{mythic}, next.Players.B.Field)
	assert.Len(t, next.Players.A.Field, 1)
	assert.Equal(t, 10, next.Players.A.Yield)
	assert.Equal(t, "Genesis Burn wiped the field!", next.Log[0])
}

func TestDisplayOnlyEffects(t *testing.T) {
	for _, id := range []string{"sandwich-bot", "floor-enforce", "vesupra-lock", "autofi-patch"} {
		t.Run(id, func(t *testing.T) {
			s := blankState()
			s.Players.B.Yield = 2
			s.Players.B.Field = []catalog.Card{inst(t, "iasset-stake")}
			s.Players.A.Hand = []catalog.Card{inst(t, id)}

			next := PlayCard(s, id)
			assert.Equal(t, s.Players.B, next.Players.B)
			assert.Zero(t, next.Players.A.Votes)
			assert.Equal(t, 30, next.Players.A.Health)
			assert.Len(t, next.Log, 2)
		})
	}
}
