package client

// the bank stands at this total; once reached the round is resolved
const bankStandPoints = 17

// Status is the message a renderer should display for one frame
type Status struct {
	Text    string
	IsError bool
}

// Status derives the displayed message from a snapshot. Reveal-in-
// progress outranks every outcome; a player burst outranks win and
// push; outcomes outrank the prompts.
func (sn Snapshot) Status() Status {
	return deriveStatus(
		sn.PlayerPoints,
		sn.BankPoints,
		len(sn.PlayerCards),
		sn.DisplayedBankCards,
		len(sn.BankCards),
	)
}

func deriveStatus(playerPoints, bankPoints uint8, playerCardCount, displayedBankCards, bankCardCount int) Status {
	if displayedBankCards != bankCardCount {
		return Status{Text: "Waiting for the bank..."}
	}

	if playerCardCount == 0 {
		return Status{Text: "Press R to deal."}
	}

	if playerPoints > maxHandPoints {
		return Status{Text: "Burst! Press R to restart.", IsError: true}
	}

	if bankPoints >= bankStandPoints {
		switch {
		case bankPoints <= maxHandPoints && bankPoints > playerPoints:
			return Status{Text: "The bank wins. Press R to restart.", IsError: true}
		case bankPoints == playerPoints:
			return Status{Text: "Push. Press R to restart."}
		default:
			return Status{Text: "You win! Press R to restart."}
		}
	}

	if playerPoints == maxHandPoints {
		return Status{Text: "21! Press Space to continue."}
	}

	if playerCardCount == openingHandSize {
		return Status{Text: "Hit (Enter), Stand (Space) or Double Down (D)."}
	}
	return Status{Text: "Hit (Enter) or Stand (Space)."}
}
