package suplock

import (
	"github.com/oklog/ulid/v2"

	"github.com/luca-patrignani/suplock/domain/catalog"
)

// PlayerID identifies one of the two seats.
type PlayerID string

const (
	PlayerA PlayerID = "a"
	PlayerB PlayerID = "b"
)

// Opponent returns the other seat.
func (p PlayerID) Opponent() PlayerID {
	if p == PlayerA {
		return PlayerB
	}
	return PlayerA
}

type Phase string

const (
	PhaseYield  Phase = "yield"
	PhaseDraw   Phase = "draw"
	PhasePlay   Phase = "play"
	PhaseCombat Phase = "combat"
	PhaseEnd    Phase = "end"
)

type Player struct {
	ID        PlayerID       `json:"id"`
	Name      string         `json:"name"`
	Health    int            `json:"health"`
	MaxHealth int            `json:"max_health"`
	Yield     int            `json:"yield"`
	MaxYield  int            `json:"max_yield"`
	Hand      []catalog.Card `json:"hand"`
	Deck      []catalog.Card `json:"deck"`
	Discard   []catalog.Card `json:"discard"`
	Field     []catalog.Card `json:"field"`
	Shield    int            `json:"shield"`
	Votes     int            `json:"votes"` // display only
}

// Players holds both seats.
type Players struct {
	A Player `json:"a"`
	B Player `json:"b"`
}

// GameState is the full state of a match.
type GameState struct {
	MatchID    ulid.ULID `json:"match_id"`
	Players    Players   `json:"players"`
	Turn       PlayerID  `json:"turn"`
	Phase      Phase     `json:"phase"`
	Log        []string  `json:"log"` // newest first
	TurnNumber int       `json:"turn_number"`
	Winner     string    `json:"winner,omitempty"`

	logLimit int
}

// Player returns a copy of the player seated at id.
func (s GameState) Player(id PlayerID) Player {
	return *s.seat(id)
}

// Active returns the player whose turn it is.
func (s GameState) Active() Player {
	return s.Player(s.Turn)
}

// Opponent returns the player waiting for their turn.
func (s GameState) Opponent() Player {
	return s.Player(s.Turn.Opponent())
}

// Over reports whether the match has a winner.
func (s GameState) Over() bool {
	return s.Winner != ""
}

func (s *GameState) seat(id PlayerID) *Player {
	if id == PlayerB {
		return &s.Players.B
	}
	return &s.Players.A
}

// Rules are the tunable constants of a match.
type Rules struct {
	InitialHealth int
	InitialYield  int
	HandSize      int
	DeckCopies    int // copies of the catalog in each deck
	LogLimit      int
	NameA         string
	NameB         string
}

// DefaultRules returns the standard match parameters.
func DefaultRules() Rules {
	return Rules{
		InitialHealth: 30,
		InitialYield:  20,
		HandSize:      5,
		DeckCopies:    2,
		LogLimit:      50,
		NameA:         "Architect A",
		NameB:         "Hacker B",
	}
}

// withDefaults fills zero fields from DefaultRules.
func (r Rules) withDefaults() Rules {
	d := DefaultRules()
	if r.InitialHealth <= 0 {
		r.InitialHealth = d.InitialHealth
	}
	if r.InitialYield <= 0 {
		r.InitialYield = d.InitialYield
	}
	if r.HandSize <= 0 {
		r.HandSize = d.HandSize
	}
	if r.DeckCopies <= 0 {
		r.DeckCopies = d.DeckCopies
	}
	if r.LogLimit <= 0 {
		r.LogLimit = d.LogLimit
	}
	if r.NameA == "" {
		r.NameA = d.NameA
	}
	if r.NameB == "" {
		r.NameB = d.NameB
	}
	return r
}
