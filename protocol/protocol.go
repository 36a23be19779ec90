package protocol

import (
	"encoding/json"
	"fmt"
)

// Action represents an action exchanged over the socket
type Action int

const (
	Null Action = iota
	NewPlayer
	SendPlayerCard
	SendBankCard
	SendBankCards
	Hit
	Stand
	DoubleDown
	Continue
	Restart
	Split
	NoSplit
)

var ActionNames = map[Action]string{
	Null:           "Null",
	NewPlayer:      "NewPlayer",
	SendPlayerCard: "SendPlayerCard",
	SendBankCard:   "SendBankCard",
	SendBankCards:  "SendBankCards",
	Hit:            "Hit",
	Stand:          "Stand",
	DoubleDown:     "DoubleDown",
	Continue:       "Continue",
	Restart:        "Restart",
	Split:          "Split",
	NoSplit:        "NoSplit",
}

var NameToAction = map[string]Action{
	"Null":           Null,
	"NewPlayer":      NewPlayer,
	"SendPlayerCard": SendPlayerCard,
	"SendBankCard":   SendBankCard,
	"SendBankCards":  SendBankCards,
	"Hit":            Hit,
	"Stand":          Stand,
	"DoubleDown":     DoubleDown,
	"Continue":       Continue,
	"Restart":        Restart,
	"Split":          Split,
	"NoSplit":        NoSplit,
}

func (a Action) String() string {
	return ActionNames[a]
}

// MarshalJSON encodes an Action as its bare name, e.g. "Hit"
func (a Action) MarshalJSON() ([]byte, error) {
	name, ok := ActionNames[a]
	if !ok {
		return nil, fmt.Errorf("unknown action %d", int(a))
	}
	return json.Marshal(name)
}

// UnmarshalJSON decodes an action name. An unrecognised name is an
// error rather than a silent Null.
func (a *Action) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}

	action, ok := NameToAction[name]
	if !ok {
		return fmt.Errorf("unknown action %q", name)
	}
	*a = action
	return nil
}
