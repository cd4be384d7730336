package ledger

import "github.com/luca-patrignani/suplock/domain/suplock"

// GenesisAction is the action type recorded in the first block of a journal.
const GenesisAction suplock.ActionType = "genesis"

// Block is one journal entry.
type Block struct {
	Index     int            `json:"index"`
	Timestamp int64          `json:"timestamp"`
	PrevHash  string         `json:"prev_hash"`
	Hash      string         `json:"hash"`
	MatchID   string         `json:"match_id,omitempty"`
	Action    suplock.Action `json:"action"`
	Metadata  Metadata       `json:"metadata"`
}

// Metadata describes the outcome of the recorded action.
type Metadata struct {
	Actor      suplock.PlayerID  `json:"actor,omitempty"`
	Phase      suplock.Phase     `json:"phase,omitempty"` // phase after the action
	Turn       suplock.PlayerID  `json:"turn,omitempty"`
	TurnNumber int               `json:"turn_number,omitempty"`
	Rejected   string            `json:"rejected,omitempty"`
	Extra      map[string]string `json:"extra,omitempty"`
}

// Accepted reports whether the engine applied the action.
func (b Block) Accepted() bool {
	return b.Metadata.Rejected == ""
}
