package application

import (
	"log/slog"
	"time"

	"github.com/luca-patrignani/suplock/domain/catalog"
	"github.com/luca-patrignani/suplock/domain/deck"
	"github.com/luca-patrignani/suplock/domain/suplock"
	"github.com/luca-patrignani/suplock/ledger"
)

const DefaultCombatDelay = time.Second

type settings struct {
	rules       suplock.Rules
	cards       []catalog.Card
	rng         deck.RNG
	logger      *slog.Logger
	scheduler   Scheduler
	combatDelay time.Duration
	autoCombat  bool
	journal     *ledger.Journal
	onChange    func(Change)
}

type Option func(settings) settings

func defaultSettings() settings {
	return settings{
		rules:       suplock.DefaultRules(),
		rng:         deck.NewSecureRNG(),
		logger:      slog.Default(),
		scheduler:   clockScheduler{},
		combatDelay: DefaultCombatDelay,
		autoCombat:  true,
	}
}

func WithRules(rules suplock.Rules) Option {
	return func(s settings) settings {
		s.rules = rules
		return s
	}
}

// WithCards replaces the embedded catalog as the source of every new deck.
func WithCards(cards []catalog.Card) Option {
	return func(s settings) settings {
		s.cards = cards
		return s
	}
}

func WithRNG(rng deck.RNG) Option {
	return func(s settings) settings {
		s.rng = rng
		return s
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s settings) settings {
		s.logger = logger
		return s
	}
}

func WithScheduler(scheduler Scheduler) Option {
	return func(s settings) settings {
		s.scheduler = scheduler
		return s
	}
}

// WithCombatDelay sets how long after entering Combat the damage is resolved.
func WithCombatDelay(d time.Duration) Option {
	return func(s settings) settings {
		s.combatDelay = d
		return s
	}
}

// WithAutoCombat turns the scheduled combat resolution on or off. When off,
// combat is only resolved by ResolveCombat.
func WithAutoCombat(enabled bool) Option {
	return func(s settings) settings {
		s.autoCombat = enabled
		return s
	}
}

func WithJournal(j *ledger.Journal) Option {
	return func(s settings) settings {
		s.journal = j
		return s
	}
}

// OnChange registers fn to be called after every accepted action, including
// the scheduled combat resolution. fn runs without the orchestrator lock
// held, so concurrent changes can be reported out of order; compare
// Change.Version to drop stale ones.
func OnChange(fn func(Change)) Option {
	return func(s settings) settings {
		s.onChange = fn
		return s
	}
}
