package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/suplock/domain/catalog"
	"github.com/luca-patrignani/suplock/domain/suplock"
	"github.com/luca-patrignani/suplock/ledger"
)

const (
	barWidth   = 20
	logEntries = 10
	handLimit  = 7
)

// bar renders cur/max as a fixed width gauge.
func bar(cur, limit int, fill func(a ...any) string) string {
	filled := 0
	if limit > 0 {
		filled = min(barWidth, cur*barWidth/limit)
	}
	filled = max(0, filled)
	return fill(strings.Repeat("█", filled)) + pterm.Gray(strings.Repeat("░", barWidth-filled))
}

func printPlayerInfo(p suplock.Player, main bool) string {
	hpadding := 4
	if main {
		hpadding = 10
	}
	pbox := pterm.DefaultBox.WithHorizontalPadding(hpadding).WithTopPadding(1).WithBottomPadding(1)

	var field []string
	for _, c := range p.Field {
		field = append(field, c.String())
	}
	fieldLine := pterm.Gray("empty")
	if len(field) > 0 {
		fieldLine = strings.Join(field, "\n       ")
	}

	return pbox.WithTitle(p.Name).WithTitleTopLeft().Sprintf(
		"HP  %s %d/%d\nYLD %s %d/%d\n%d SHD  %d VOT  %d cards in deck  %d in hand\nField: %s",
		bar(p.Health, p.MaxHealth, pterm.LightRed), p.Health, p.MaxHealth,
		bar(p.Yield, p.MaxYield, pterm.LightGreen), p.Yield, p.MaxYield,
		p.Shield, p.Votes, len(p.Deck), len(p.Hand),
		fieldLine,
	)
}

// printLogInfo shows the most recent log lines, oldest at the top.
func printLogInfo(log []string) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	n := min(len(log), logEntries)
	lines := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		lines = append(lines, "> "+log[i])
	}
	return pbox.WithTitle(pterm.LightYellow("|NETWORK LOG|")).WithTitleTopCenter().Sprint(strings.Join(lines, "\n"))
}

func printBoardInfo(s suplock.GameState) string {
	phase := strings.ToUpper(string(s.Phase)) + " PHASE ACTIVE"
	block := "Block #" + strconv.Itoa(s.TurnNumber*128)
	turn := "Turn: " + s.Active().Name
	return pterm.BgGreen.Sprint("\n " + block + " | " + turn + " | " + phase + " \n")
}

// handOptions labels every card in the active hand. Cards that cannot be
// played right now are marked locked.
func handOptions(s suplock.GameState) []string {
	active := s.Active()
	options := make([]string, len(active.Hand))
	for i, c := range active.Hand {
		label := fmt.Sprintf("%d. %s  %s", i+1, c.String(), c.Effect)
		if s.Phase != suplock.PhasePlay || active.Yield < c.Cost {
			label = pterm.Gray(fmt.Sprintf("%d. [%d] %s (locked)", i+1, c.Cost, c.Name))
		}
		options[i] = label
	}
	return options
}

func printHandInfo(s suplock.GameState) string {
	active := s.Active()
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	title := fmt.Sprintf("|HAND %d/%d|", len(active.Hand), handLimit)
	if len(active.Hand) > handLimit {
		title = pterm.LightRed(title)
	}
	body := strings.Join(handOptions(s), "\n")
	if body == "" {
		body = pterm.Gray("no cards")
	}
	return pbox.WithTitle(title).WithTitleTopCenter().Sprint(body)
}

func getWinnerPanel(s suplock.GameState, viewer suplock.PlayerID) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	title := pterm.LightGreen("|VICTORY|")
	if s.Winner != s.Player(viewer).Name {
		title = pterm.LightRed("|DEFEAT|")
	}
	text := pterm.Sprintfln("%s has seized full protocol control", pterm.LightCyan(s.Winner))
	return pterm.Panel{Data: pbox.WithTitle(title).WithTitleTopCenter().Sprint(text)}
}

func printState(s suplock.GameState, additionalPanel ...pterm.Panel) {
	opponent := pterm.Panel{Data: printPlayerInfo(s.Opponent(), false)}
	logPanel := pterm.Panel{Data: printLogInfo(s.Log)}
	board := pterm.Panel{Data: printBoardInfo(s)}
	mainPlayer := pterm.Panel{Data: printPlayerInfo(s.Active(), true)}
	hand := pterm.Panel{Data: printHandInfo(s)}

	dashboard := []pterm.Panel{mainPlayer, hand}
	dashboard = append(dashboard, additionalPanel...)

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{opponent, logPanel},
		{board},
		dashboard,
	}).Render()
}

// historyTable lays out journal blocks for pterm.DefaultTable.
func historyTable(blocks []ledger.Block) pterm.TableData {
	data := pterm.TableData{{"#", "Action", "Card", "Player", "Phase", "Turn", "Result"}}
	for _, b := range blocks {
		result := "ok"
		if !b.Accepted() {
			result = "ignored: " + b.Metadata.Rejected
		}
		if trigger := b.Metadata.Extra["trigger"]; trigger != "" {
			result += " (" + trigger + ")"
		}
		data = append(data, []string{
			strconv.Itoa(b.Index),
			string(b.Action.Type),
			b.Action.CardID,
			string(b.Metadata.Actor),
			string(b.Metadata.Phase),
			strconv.Itoa(b.Metadata.TurnNumber),
			result,
		})
	}
	return data
}

func cardTypeBanner() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("SUP", pterm.FgLightGreen.ToStyle()),
		putils.LettersFromStringWithStyle("LOCK", pterm.FgDarkGray.ToStyle()),
	).Render()

	types := []struct {
		name string
		desc string
		kind catalog.Type
	}{
		{"EXPLOITS", "Direct Hacking", catalog.Exploit},
		{"PATCHES", "Secure Audits", catalog.Patch},
		{"YIELDS", "Liquidity Ramp", catalog.Yield},
		{"BURNS", "Protocol Wipe", catalog.Burn},
	}
	var items []pterm.BulletListItem
	for _, t := range types {
		items = append(items, pterm.BulletListItem{Level: 0, Text: t.name + ": " + t.desc, TextStyle: typeStyle(t.kind)})
	}
	_ = pterm.DefaultBulletList.WithItems(items).Render()
}

func typeStyle(t catalog.Type) *pterm.Style {
	switch t {
	case catalog.Exploit:
		return pterm.NewStyle(pterm.FgLightRed)
	case catalog.Patch:
		return pterm.NewStyle(pterm.FgLightBlue)
	case catalog.Yield:
		return pterm.NewStyle(pterm.FgLightGreen)
	default:
		return pterm.NewStyle(pterm.FgLightYellow)
	}
}
