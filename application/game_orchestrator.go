// Package application holds the imperative shell around the Suplock engine.
//
// GameOrchestrator owns the single authoritative match state, serialises
// every operation on it, records each submitted action in the journal and
// schedules the deferred combat resolution.
package application

import (
	"errors"
	"fmt"
	"sync"

	"github.com/luca-patrignani/suplock/domain/catalog"
	"github.com/luca-patrignani/suplock/domain/suplock"
	"github.com/luca-patrignani/suplock/ledger"
)

var ErrClosed = errors.New("orchestrator is closed")

type GameOrchestrator struct {
	mu       sync.Mutex
	cfg      settings
	state    suplock.GameState
	journal  *ledger.Journal
	timer    Timer
	timerGen uint64 // bumped every time the pending timer is invalidated
	version  uint64 // bumped on every accepted change
	closed   bool
}

// Change is an accepted state change as passed to OnChange. Notifications are
// delivered without the orchestrator lock held and may arrive out of order;
// Version grows with every change, so a subscriber keeps the highest seen.
type Change struct {
	State   suplock.GameState
	Version uint64
}

// NewGameOrchestrator starts a first match right away. Without WithCards the
// embedded catalog is used.
func NewGameOrchestrator(opts ...Option) (*GameOrchestrator, error) {
	cfg := defaultSettings()
	for _, opt := range opts {
		cfg = opt(cfg)
	}
	if cfg.cards == nil {
		c, err := catalog.Default()
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		cfg.cards = c.Cards()
	}
	if len(cfg.cards) == 0 {
		return nil, catalog.ErrEmptyCatalog
	}
	if cfg.journal == nil {
		cfg.journal = ledger.NewJournal()
	}

	o := &GameOrchestrator{
		cfg:     cfg,
		journal: cfg.journal,
	}
	o.mu.Lock()
	change := o.startMatch()
	o.mu.Unlock()
	o.notify(change)
	return o, nil
}

// State returns the current match state.
func (o *GameOrchestrator) State() suplock.GameState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// NewMatch replaces the current match with a freshly dealt one and cancels a
// pending combat resolution.
func (o *GameOrchestrator) NewMatch() (suplock.GameState, error) {
	o.mu.Lock()
	if o.closed {
		s := o.state
		o.mu.Unlock()
		return s, ErrClosed
	}
	change := o.startMatch()
	o.mu.Unlock()

	o.notify(change)
	return change.State, nil
}

// startMatch deals a new match. Callers hold o.mu.
func (o *GameOrchestrator) startMatch() Change {
	o.cancelTimer()
	o.state = suplock.NewMatch(o.cfg.rules, o.cfg.cards, o.cfg.rng)
	o.record(suplock.Action{Type: suplock.ActionNewMatch}, suplock.PlayerA, nil, "")
	o.version++
	o.cfg.logger.Info("new match",
		"match_id", o.state.MatchID.String(),
		"player_a", o.state.Players.A.Name,
		"player_b", o.state.Players.B.Name)
	return Change{State: o.state, Version: o.version}
}

// Advance moves the match to the next phase.
func (o *GameOrchestrator) Advance() (suplock.GameState, error) {
	return o.submit(suplock.Action{Type: suplock.ActionAdvance})
}

// Play plays the first card with catalog id cardID from the active hand. A
// rejected play leaves the state unchanged and returns the reason.
func (o *GameOrchestrator) Play(cardID string) (suplock.GameState, error) {
	return o.submit(suplock.Action{Type: suplock.ActionPlay, CardID: cardID})
}

// ResolveCombat resolves combat now instead of waiting for the timer.
func (o *GameOrchestrator) ResolveCombat() (suplock.GameState, error) {
	return o.submit(suplock.Action{Type: suplock.ActionCombat})
}

// History returns the journal blocks of the current match, oldest first.
func (o *GameOrchestrator) History() []ledger.Block {
	_, blocks := o.MatchHistory()
	return blocks
}

// MatchHistory returns the id of the current match together with its
// journal blocks, read under one lock.
func (o *GameOrchestrator) MatchHistory() (string, []ledger.Block) {
	o.mu.Lock()
	defer o.mu.Unlock()
	id := o.state.MatchID.String()
	return id, o.journal.Match(id)
}

// Journal exposes the journal shared by every match of this orchestrator.
func (o *GameOrchestrator) Journal() *ledger.Journal {
	return o.journal
}

// Close cancels the pending combat resolution. Later NewMatch, Advance, Play
// and ResolveCombat calls return ErrClosed.
func (o *GameOrchestrator) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return nil
	}
	o.closed = true
	o.cancelTimer()
	return nil
}

func (o *GameOrchestrator) submit(a suplock.Action) (suplock.GameState, error) {
	o.mu.Lock()
	if o.closed {
		s := o.state
		o.mu.Unlock()
		return s, ErrClosed
	}
	next, err := o.apply(a, "")
	version := o.version
	o.mu.Unlock()

	if err == nil {
		o.notify(Change{State: next, Version: version})
	}
	return next, err
}

// apply runs a against the current state, journals it and rearms the combat
// timer. A rejected action returns the unchanged state and the reason.
// Callers hold o.mu.
func (o *GameOrchestrator) apply(a suplock.Action, trigger string) (suplock.GameState, error) {
	prev := o.state
	reason := suplock.Check(prev, a)
	next := suplock.Apply(prev, a)
	o.state = next
	o.record(a, prev.Turn, reason, trigger)

	if reason != nil {
		o.cfg.logger.Debug("action ignored",
			"match_id", prev.MatchID.String(),
			"action", a.Type,
			"card_id", a.CardID,
			"reason", reason)
		return prev, reason
	}

	o.cfg.logger.Info("action applied",
		"match_id", next.MatchID.String(),
		"action", a.Type,
		"card_id", a.CardID,
		"player", prev.Turn,
		"phase", next.Phase,
		"turn_number", next.TurnNumber)
	if next.Over() && !prev.Over() {
		o.cfg.logger.Info("match over", "match_id", next.MatchID.String(), "winner", next.Winner)
	}
	o.version++

	switch {
	case a.Type == suplock.ActionCombat:
		o.cancelTimer()
	case next.Phase != prev.Phase:
		o.cancelTimer()
		if next.Phase == suplock.PhaseCombat && !next.Over() {
			o.scheduleCombat()
		}
	}
	return next, nil
}

// record appends a to the journal. Callers hold o.mu.
func (o *GameOrchestrator) record(a suplock.Action, actor suplock.PlayerID, reason error, trigger string) {
	meta := ledger.Metadata{
		Actor:      actor,
		Phase:      o.state.Phase,
		Turn:       o.state.Turn,
		TurnNumber: o.state.TurnNumber,
	}
	if reason != nil {
		meta.Rejected = reason.Error()
	}
	if trigger != "" {
		meta.Extra = map[string]string{"trigger": trigger}
	}
	if _, err := o.journal.Append(o.state.MatchID.String(), a, meta); err != nil {
		o.cfg.logger.Error("journal append failed", "action", a.Type, "error", err)
	}
}

// scheduleCombat arms the combat timer. Callers hold o.mu.
func (o *GameOrchestrator) scheduleCombat() {
	if !o.cfg.autoCombat {
		return
	}
	gen := o.timerGen
	o.timer = o.cfg.scheduler.AfterFunc(o.cfg.combatDelay, func() {
		o.fireCombat(gen)
	})
	o.cfg.logger.Debug("combat scheduled", "match_id", o.state.MatchID.String(), "delay", o.cfg.combatDelay)
}

// cancelTimer stops the pending combat timer. Bumping the generation also
// disarms a callback that already fired and is waiting for the lock. Callers
// hold o.mu.
func (o *GameOrchestrator) cancelTimer() {
	o.timerGen++
	if o.timer == nil {
		return
	}
	o.timer.Stop()
	o.timer = nil
	o.cfg.logger.Debug("combat timer cancelled", "match_id", o.state.MatchID.String())
}

// fireCombat is the timer callback. It does nothing if the timer of
// generation gen was cancelled after it fired.
func (o *GameOrchestrator) fireCombat(gen uint64) {
	o.mu.Lock()
	if o.closed || gen != o.timerGen {
		o.mu.Unlock()
		return
	}
	o.timer = nil
	next, err := o.apply(suplock.Action{Type: suplock.ActionCombat}, "timer")
	version := o.version
	o.mu.Unlock()

	if err != nil {
		o.cfg.logger.Debug("scheduled combat ignored", "reason", err)
		return
	}
	o.notify(Change{State: next, Version: version})
}

func (o *GameOrchestrator) notify(c Change) {
	if o.cfg.onChange != nil {
		o.cfg.onChange(c)
	}
}
