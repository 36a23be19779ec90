package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/tabledeck/blackjack/client"
	"github.com/tabledeck/blackjack/deck"
	"github.com/tabledeck/blackjack/protocol"
)

const frameInterval = 100 * time.Millisecond

var suitGlyphs = []string{"♣", "♦", "♥", "♠"}

const faceDown = "▓▓"

// cardLabel renders a card identifier as value plus suit glyph, e.g.
// "10♥" or "A♠". Ranks sit in ascending groups of four per value.
func cardLabel(id uint16) string {
	rank := deck.Rank(id)

	var value string
	switch {
	case rank >= 48:
		value = "A"
	case rank >= 44:
		value = "K"
	case rank >= 40:
		value = "Q"
	case rank >= 36:
		value = "J"
	case rank >= 32:
		value = "10"
	default:
		value = strconv.Itoa(int(rank)/4 + 2)
	}

	return value + suitGlyphs[rank%4]
}

func handLine(cards []uint16) string {
	if len(cards) == 0 {
		return "--"
	}

	labels := make([]string, len(cards))
	for i, id := range cards {
		labels[i] = cardLabel(id)
	}
	return strings.Join(labels, "  ")
}

// bankLine hides every card past the reveal cursor
func bankLine(cards []uint16, revealed int) string {
	if len(cards) == 0 {
		return "--"
	}

	labels := make([]string, len(cards))
	for i, id := range cards {
		if i < revealed {
			labels[i] = cardLabel(id)
		} else {
			labels[i] = faceDown
		}
	}
	return strings.Join(labels, "  ")
}

func adviceLine(sn client.Snapshot) string {
	if sn.Recommended == protocol.Null {
		return ""
	}

	line := fmt.Sprintf("Book says: %s", sn.Recommended)
	if sn.LastAction == protocol.Null {
		return line
	}

	if sn.LastAction == sn.Recommended {
		return line + pterm.LightGreen(fmt.Sprintf(" - you played %s, correct", sn.LastAction))
	}
	return line + pterm.LightYellow(fmt.Sprintf(" - you played %s, incorrect", sn.LastAction))
}

func renderFrame(name string, sn client.Snapshot) string {
	status := sn.Status()
	statusLine := status.Text
	if status.IsError {
		statusLine = pterm.LightRed(statusLine)
	}

	bankPoints := ""
	if sn.DisplayedBankCards == len(sn.BankCards) && len(sn.BankCards) > 0 {
		bankPoints = fmt.Sprintf("  (%d)", sn.BankPoints)
	}

	bank := pterm.DefaultBox.
		WithTitle("BANK" + bankPoints).
		Sprint(bankLine(sn.BankCards, sn.DisplayedBankCards))

	player := pterm.DefaultBox.
		WithTitle(fmt.Sprintf("%s  (%d)", name, sn.PlayerPoints)).
		Sprint(handLine(sn.PlayerCards))

	lines := []string{
		bank,
		player,
		fmt.Sprintf("Cards left in the shoe: %d", sn.CardsAmount),
		statusLine,
	}
	if advice := adviceLine(sn); advice != "" {
		lines = append(lines, advice)
	}

	return strings.Join(lines, "\n")
}

// runRenderLoop redraws the table until the player quits or the server
// goes away. Connection loss ends the program immediately.
func runRenderLoop(state *client.State, name string, disconnected, quit <-chan struct{}) {
	area, err := pterm.DefaultArea.Start()
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	defer area.Stop()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-disconnected:
			area.Update(pterm.LightRed("Connection lost."))
			return

		case <-quit:
			return

		case <-ticker.C:
			state.AdvanceReveal(time.Now())
			area.Update(renderFrame(name, state.Snapshot()))
		}
	}
}
