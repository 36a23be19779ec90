package client

import (
	"sync"
	"time"

	"github.com/tabledeck/blackjack/protocol"
)

const (
	maxHandPoints = 21

	// a double down is only offered on the opening two cards
	openingHandSize = 2

	// the reveal cursor starts past the two bank cards the player has
	// already seen by the time the full hand arrives
	revealedAfterDrawing = 2

	// presentation pacing only: one extra bank card surfaces per tick
	revealInterval = 2500 * time.Millisecond
)

// State mirrors the session as seen from the client. It is shared
// between the network receive loop and the render/input loop, so every
// access goes through one coarse lock.
type State struct {
	mu sync.Mutex

	playerCards []uint16
	bankCards   []uint16

	playerPoints uint8
	bankPoints   uint8
	cardsAmount  uint16

	displayedBankCards int
	lastReveal         time.Time

	lastAction  protocol.Action
	recommended protocol.Action
}

// NewState creates an empty client session state
func NewState() *State {
	return &State{
		playerCards: []uint16{},
		bankCards:   []uint16{},
	}
}

// HandleMessage applies one inbound server message
func (s *State) HandleMessage(msg protocol.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch msg.Action {
	case protocol.SendPlayerCard:
		s.playerCards = append(s.playerCards, msg.CardIndex)
		s.playerPoints = msg.PlayerHandpoints
		s.cardsAmount = msg.CardsAmount

	case protocol.SendBankCard:
		s.bankCards = append(s.bankCards, msg.CardIndex)
		s.bankPoints = msg.PlayerHandpoints
		s.displayedBankCards = len(s.bankCards)

		if len(s.playerCards) >= openingHandSize {
			s.recommended = Recommend(s.playerCards[:openingHandSize], s.bankCards[0])
		}

	case protocol.SendBankCards:
		s.bankCards = append([]uint16{}, msg.BankCards...)
		s.bankPoints = msg.PlayerHandpoints
		s.displayedBankCards = revealedAfterDrawing
		s.lastReveal = time.Now()
	}
}

// HitRequest returns an outbound hit, valid only while the player has
// not already burst.
func (s *State) HitRequest() (protocol.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.playerPoints > maxHandPoints || len(s.playerCards) == 0 {
		return protocol.Message{}, false
	}

	s.lastAction = protocol.Hit
	return protocol.Message{Action: protocol.Hit}, true
}

// StandRequest returns an outbound stand, valid only while the bank has
// not yet resolved and the player is still in the round.
func (s *State) StandRequest() (protocol.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.bankPoints >= bankStandPoints || s.playerPoints > maxHandPoints || len(s.playerCards) == 0 {
		return protocol.Message{}, false
	}

	s.lastAction = protocol.Stand
	return protocol.Message{Action: protocol.Stand}, true
}

// DoubleDownRequest returns an outbound double down, valid only on the
// opening two cards.
func (s *State) DoubleDownRequest() (protocol.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.playerCards) != openingHandSize || s.playerPoints > maxHandPoints {
		return protocol.Message{}, false
	}

	s.lastAction = protocol.DoubleDown
	return protocol.Message{Action: protocol.DoubleDown}, true
}

// DeclareSplit records a split as the player's declared action. There
// is no split on the wire; the declaration only feeds the
// recommended-versus-actual feedback.
func (s *State) DeclareSplit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.playerCards) != openingHandSize {
		return false
	}

	s.lastAction = protocol.Split
	return true
}

// RestartRequest clears the local round state and returns an outbound
// restart. The clear is optimistic: fresh cards arrive straight after.
func (s *State) RestartRequest() (protocol.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.playerCards = s.playerCards[:0]
	s.bankCards = s.bankCards[:0]
	s.playerPoints = 0
	s.bankPoints = 0
	s.displayedBankCards = 0
	s.lastAction = protocol.Null
	s.recommended = protocol.Null

	return protocol.Message{Action: protocol.Restart}, true
}

// AdvanceReveal moves the reveal cursor forward by at most one card per
// interval, never past the known bank hand.
func (s *State) AdvanceReveal(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.displayedBankCards >= len(s.bankCards) {
		return
	}
	if now.Sub(s.lastReveal) < revealInterval {
		return
	}

	s.displayedBankCards++
	s.lastReveal = now
}

// Snapshot is a consistent read-only copy of the state for one rendered
// frame.
type Snapshot struct {
	PlayerCards        []uint16
	BankCards          []uint16
	PlayerPoints       uint8
	BankPoints         uint8
	CardsAmount        uint16
	DisplayedBankCards int
	LastAction         protocol.Action
	Recommended        protocol.Action
}

// Snapshot returns a copy of the session state under the lock
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		PlayerCards:        append([]uint16{}, s.playerCards...),
		BankCards:          append([]uint16{}, s.bankCards...),
		PlayerPoints:       s.playerPoints,
		BankPoints:         s.bankPoints,
		CardsAmount:        s.cardsAmount,
		DisplayedBankCards: s.displayedBankCards,
		LastAction:         s.lastAction,
		Recommended:        s.recommended,
	}
}
