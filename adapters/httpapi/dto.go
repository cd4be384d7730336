package httpapi

import (
	"github.com/luca-patrignani/suplock/domain/suplock"
	"github.com/luca-patrignani/suplock/ledger"
)

// MatchResponse is the JSON shape returned by every /v1/match endpoint.
// Rejected carries the reason when the engine ignored the request; the state
// is then the unchanged current state.
type MatchResponse struct {
	State     suplock.GameState `json:"state"`
	Rejected  string            `json:"rejected,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

type PlayRequest struct {
	CardID string `json:"card_id"`
}

type HistoryResponse struct {
	MatchID string         `json:"match_id"`
	Blocks  []ledger.Block `json:"blocks"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
