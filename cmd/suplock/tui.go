package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/suplock/application"
	"github.com/luca-patrignani/suplock/config"
	"github.com/luca-patrignani/suplock/domain/suplock"
	"github.com/luca-patrignani/suplock/ledger"
)

const (
	actionCommit  = "Commit Protocol"
	actionPlay    = "Play card"
	actionCombat  = "Resolve combat now"
	actionHistory = "History"
	actionReset   = "Re-initialize"
	actionQuit    = "Quit"

	combatPoll = 50 * time.Millisecond
)

// play runs a hot-seat match in the terminal. Both seats share the keyboard,
// the board is always drawn from the point of view of the active player.
func play(cfg config.Config, logger *slog.Logger, opts []application.Option) error {
	cardTypeBanner()

	start, _ := pterm.DefaultInteractiveConfirm.WithDefaultText("Initialize System?").WithDefaultValue(true).Show()
	if !start {
		return nil
	}

	o, err := application.NewGameOrchestrator(opts...)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer o.Close()

	for {
		s := o.State()
		if s.Over() {
			printState(s, getWinnerPanel(s, suplock.PlayerA))
			selected, _ := pterm.DefaultInteractiveSelect.WithDefaultText("Match over").WithOptions([]string{actionReset, actionQuit}).Show()
			if selected == actionQuit {
				return nil
			}
			if _, err := o.NewMatch(); err != nil {
				return err
			}
			logger.Info("Starting a new match")
			continue
		}

		printState(s)
		resolved := combatResolved(o.History())
		if s.Phase == suplock.PhaseCombat && !resolved && cfg.AutoCombat {
			if err := waitForCombat(o, cfg.CombatDelay); err != nil {
				return err
			}
			continue
		}

		selected, _ := pterm.DefaultInteractiveSelect.
			WithDefaultText(fmt.Sprintf("%s, select your next action", s.Active().Name)).
			WithOptions(menu(s, resolved)).
			Show()

		switch selected {
		case actionCommit:
			_, err = o.Advance()
		case actionPlay:
			cardID, ok := selectCard(s)
			if !ok {
				continue
			}
			_, err = o.Play(cardID)
		case actionCombat:
			_, err = o.ResolveCombat()
		case actionHistory:
			data := historyTable(o.History())
			if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
				logger.Error("failed to render history", "error", err)
			}
			continue
		case actionReset:
			if confirm, _ := pterm.DefaultInteractiveConfirm.WithDefaultText("Abandon the current match?").Show(); !confirm {
				continue
			}
			_, err = o.NewMatch()
		case actionQuit:
			return nil
		}

		if errors.Is(err, application.ErrClosed) {
			return err
		}
		if err != nil {
			pterm.Error.Printfln("Invalid action: %s", err.Error())
		}
	}
}

// menu lists the actions that make sense for the active player in s.
func menu(s suplock.GameState, combatDone bool) []string {
	options := []string{actionCommit}
	if s.Phase == suplock.PhasePlay && len(s.Active().Hand) > 0 {
		options = append(options, actionPlay)
	}
	if s.Phase == suplock.PhaseCombat && !combatDone {
		options = append(options, actionCombat)
	}
	return append(options, actionHistory, actionReset, actionQuit)
}

// selectCard asks which card of the active hand to play. It returns false if
// the player backs out or picks a card that is not affordable.
func selectCard(s suplock.GameState) (string, bool) {
	hand := s.Active().Hand
	options := handOptions(s)
	cancel := "Back"
	selected, _ := pterm.DefaultInteractiveSelect.WithDefaultText("Select a card").WithOptions(append(options, cancel)).Show()
	for i, option := range options {
		if option != selected {
			continue
		}
		if hand[i].Cost > s.Active().Yield {
			pterm.Warning.Printfln("%s costs %d yield, you have %d", hand[i].Name, hand[i].Cost, s.Active().Yield)
			return "", false
		}
		if confirm, _ := pterm.DefaultInteractiveConfirm.WithDefaultText(fmt.Sprintf("Confirm to play %s?", hand[i].Name)).WithDefaultValue(true).Show(); confirm {
			return hand[i].ID, true
		}
		pterm.Info.Println("Action cancelled.")
		return "", false
	}
	return "", false
}

// combatResolved reports whether combat already took place in the current
// turn. blocks are the journal entries of one match, oldest first.
func combatResolved(blocks []ledger.Block) bool {
	for i := len(blocks) - 1; i >= 0; i-- {
		b := blocks[i]
		if !b.Accepted() {
			continue
		}
		switch b.Action.Type {
		case suplock.ActionCombat:
			return true
		case suplock.ActionAdvance, suplock.ActionNewMatch:
			return false
		}
	}
	return false
}

// waitForCombat shows a spinner until the scheduled combat has been
// resolved. If the timer does not fire in time combat is resolved directly.
func waitForCombat(o *application.GameOrchestrator, delay time.Duration) error {
	spinner, _ := pterm.DefaultSpinner.Start("Resolving combat ...")
	deadline := time.Now().Add(delay + time.Second)
	for time.Now().Before(deadline) {
		if combatResolved(o.History()) {
			spinner.Success("Combat resolution complete. Commit to end turn.")
			return nil
		}
		time.Sleep(combatPoll)
	}
	if _, err := o.ResolveCombat(); err != nil {
		spinner.Fail(err.Error())
		if errors.Is(err, application.ErrClosed) {
			return err
		}
		return nil
	}
	spinner.Warning("Combat timer missed, resolved directly. Commit to end turn.")
	return nil
}
