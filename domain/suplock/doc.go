// Package suplock implements the rules engine of Suplock, a two-player,
// turn-based, hot-seat card game.
//
// # Core Types
//
// GameState: the complete state of a match: both players, whose turn it is,
// the current phase, the turn counter, the human-readable log and the winner.
//
// Player: health and yield pools, the hand, deck, discard and field zones,
// and the accumulated shield.
//
// Action: a request submitted against a match (advance, play, combat). Check
// reports why an action would be rejected without touching the state.
//
// # Game Flow
//
// A turn cycles through the phases Yield → Draw → Play → Combat → End. Leaving
// End hands the turn to the other player; the turn counter moves forward
// every time player A gets the turn back. Entering Yield grants yield,
// entering Draw draws a card. Combat damage is resolved by a separate call so
// that the caller decides when it happens.
//
// # Purity
//
// Every operation takes a GameState value and returns a new one. The input is
// never modified, so a caller can keep a previous state around and a
// rejected request simply returns the input unchanged. Once a winner is set
// no operation changes the state anymore.
package suplock
