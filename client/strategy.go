package client

import (
	"github.com/tabledeck/blackjack/deck"
	"github.com/tabledeck/blackjack/protocol"
)

// cardValue is the strategy-table value of a single card: aces always
// count 11 here, tens and faces 10. The soft/hard rule only applies to
// running hand totals, not to the table lookup.
func cardValue(id uint16) uint8 {
	return deck.CardPoints(deck.Rank(id), 0)
}

// Recommend returns the basic-strategy action for an opening two-card
// hand against the bank's up-card. The result is advisory only: it is
// compared against the action the player actually took.
func Recommend(playerCards []uint16, bankUpCard uint16) protocol.Action {
	first := cardValue(playerCards[0])
	second := cardValue(playerCards[1])
	total := first + second
	bank := cardValue(bankUpCard)

	if first == second {
		switch {
		case first == 11, first == 8:
			return protocol.Split
		case first == 9 && bank != 7 && bank != 10 && bank != 11:
			return protocol.Split
		case first == 7 && bank <= 7:
			return protocol.Split
		// dealer 2 is deliberately excluded here, matching the table
		// this client has always shipped with
		case first == 6 && bank <= 6 && bank != 2:
			return protocol.Split
		case (first == 3 || first == 2) && bank >= 4 && bank <= 7:
			return protocol.Split
		}

		switch {
		case first == 6 && bank == 2:
			return protocol.DoubleDown
		case first == 4 && (bank == 5 || bank == 6):
			return protocol.DoubleDown
		case (first == 3 || first == 2) && bank < 4:
			return protocol.DoubleDown
		}
	}

	switch {
	case total >= 17,
		total >= 13 && total <= 16 && bank <= 6,
		total == 12 && bank >= 4 && bank <= 6:
		return protocol.Stand

	case total >= 13 && total <= 16 && bank >= 7,
		total == 12 && (bank <= 3 || bank >= 7),
		total == 10 && bank >= 10,
		total == 9 && (bank == 2 || bank >= 7):
		return protocol.Hit

	case total == 11,
		total == 10 && bank <= 9,
		total == 9 && bank >= 3 && bank <= 6:
		return protocol.DoubleDown
	}

	return protocol.Stand
}
