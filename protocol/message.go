package protocol

import "encoding/json"

// Message is the envelope exchanged over the socket. The shape is
// fixed: fields irrelevant to a given action are zero-valued but always
// present on the wire.
type Message struct {
	Action           Action   `json:"action"`
	CardIndex        uint16   `json:"card_index"`
	CardsAmount      uint16   `json:"cards_amount"`
	Text             string   `json:"text"`
	PlayerHandpoints uint8    `json:"player_handpoints"`
	BankCards        []uint16 `json:"bank_cards"`
}

// Encode serialises a message as one discrete text frame
func Encode(msg Message) ([]byte, error) {
	if msg.BankCards == nil {
		msg.BankCards = []uint16{}
	}
	return json.Marshal(msg)
}

// Decode parses a received frame into a message
func Decode(data []byte) (Message, error) {
	var msg Message
	err := json.Unmarshal(data, &msg)
	return msg, err
}
