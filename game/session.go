package game

import (
	"errors"
	"log"

	"github.com/tabledeck/blackjack/deck"
	"github.com/tabledeck/blackjack/protocol"
)

// Stage represents the main stages of a dealing session
type Stage int

const (
	Idle Stage = iota
	InPlay
	BankResolving
	RoundOver
)

var stageNames = []string{"Idle", "InPlay", "BankResolving", "RoundOver"}

func (s Stage) String() string {
	return stageNames[s]
}

// the bank draws until it reaches this total, then stands
const bankStandPoints = 17

// cards dealt to the player at the start of every round
const initialPlayerCards = 2

// Session owns the shoe and both hands for one connection. It is
// driven exclusively by that connection's inbound messages, so it
// needs no locking of its own.
type Session struct {
	shoe         deck.Deck
	shoeSize     int
	playerPoints uint8
	bankPoints   uint8
	bankCards    []uint16
	stage        Stage
	logger       *log.Logger
}

// NewSession creates a session with a fresh shuffled shoe and a
// zero-points player slot. No cards are dealt until a Restart arrives.
func NewSession(shoeSize int, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	return &Session{
		shoe:      deck.New(shoeSize),
		shoeSize:  shoeSize,
		bankCards: []uint16{},
		stage:     Idle,
		logger:    logger,
	}
}

// Handle applies one inbound message and returns the outbound messages
// it produced. The switch covers the whole action enumeration: actions
// with no server-side effect are listed rather than left to fall
// through silently.
func (s *Session) Handle(msg protocol.Message) ([]protocol.Message, error) {
	switch msg.Action {
	case protocol.Hit:
		out, err := s.dealPlayerCard()
		if err != nil {
			return nil, err
		}
		s.logger.Printf("player hand points: %d", s.playerPoints)
		return []protocol.Message{out}, nil

	case protocol.DoubleDown:
		// one card, then the bank resolves, as a single exchange
		card, err := s.dealPlayerCard()
		if err != nil {
			return nil, err
		}
		s.stage = BankResolving
		reveal, err := s.resolveBank()
		if err != nil {
			return nil, err
		}
		s.stage = RoundOver
		return []protocol.Message{card, reveal}, nil

	case protocol.Stand, protocol.Continue:
		s.stage = BankResolving
		reveal, err := s.resolveBank()
		if err != nil {
			return nil, err
		}
		s.stage = RoundOver
		return []protocol.Message{reveal}, nil

	case protocol.Restart:
		return s.restart()

	case protocol.NewPlayer:
		s.logger.Printf("player name: %s", msg.Text)
		return nil, nil

	case protocol.Split, protocol.NoSplit:
		// announced by the client for strategy feedback only
		return nil, nil

	case protocol.Null, protocol.SendPlayerCard, protocol.SendBankCard, protocol.SendBankCards:
		s.logger.Printf("ignoring unexpected inbound action %s", msg.Action)
		return nil, nil
	}

	s.logger.Printf("ignoring unknown inbound action %d", int(msg.Action))
	return nil, nil
}

// restart resets both hands and deals the opening cards: two to the
// player, one face-up to the bank. The shoe keeps depleting across
// rounds; it is only rebuilt when it runs out.
func (s *Session) restart() ([]protocol.Message, error) {
	s.playerPoints = 0
	s.bankPoints = 0
	s.bankCards = s.bankCards[:0]

	out := make([]protocol.Message, 0, initialPlayerCards+1)
	for i := 0; i < initialPlayerCards; i++ {
		card, err := s.dealPlayerCard()
		if err != nil {
			return nil, err
		}
		out = append(out, card)
	}

	upCard, err := s.dealBankCard()
	if err != nil {
		return nil, err
	}
	out = append(out, upCard)

	s.stage = InPlay
	return out, nil
}

func (s *Session) dealPlayerCard() (protocol.Message, error) {
	id, err := s.draw()
	if err != nil {
		return protocol.Message{}, err
	}

	s.playerPoints += deck.CardPoints(deck.Rank(id), s.playerPoints)

	return protocol.Message{
		Action:           protocol.SendPlayerCard,
		CardIndex:        id,
		CardsAmount:      uint16(s.shoe.Remaining()),
		PlayerHandpoints: s.playerPoints,
		BankCards:        []uint16{},
	}, nil
}

func (s *Session) dealBankCard() (protocol.Message, error) {
	id, err := s.draw()
	if err != nil {
		return protocol.Message{}, err
	}

	s.bankCards = append(s.bankCards, id)
	s.bankPoints = deck.CardPoints(deck.Rank(id), 0)

	return protocol.Message{
		Action:           protocol.SendBankCard,
		CardIndex:        id,
		CardsAmount:      uint16(s.shoe.Remaining()),
		PlayerHandpoints: s.bankPoints,
		BankCards:        []uint16{},
	}, nil
}

// resolveBank draws into the bank hand until it reaches the stand
// threshold, then reveals the whole hand in one message.
func (s *Session) resolveBank() (protocol.Message, error) {
	for s.bankPoints < bankStandPoints {
		id, err := s.draw()
		if err != nil {
			return protocol.Message{}, err
		}
		s.bankCards = append(s.bankCards, id)
		s.bankPoints += deck.CardPoints(deck.Rank(id), s.bankPoints)
	}

	cards := make([]uint16, len(s.bankCards))
	copy(cards, s.bankCards)

	return protocol.Message{
		Action:           protocol.SendBankCards,
		PlayerHandpoints: s.bankPoints,
		BankCards:        cards,
	}, nil
}

// draw pops the next card, rebuilding a fresh shoe if the current one
// has run out. Exhaustion mid-round is survivable: the round carries on
// from a new shuffle instead of killing the session.
func (s *Session) draw() (uint16, error) {
	id, err := s.shoe.DrawOne()
	if errors.Is(err, deck.ErrDeckExhausted) {
		s.logger.Println("shoe exhausted, building a fresh one")
		s.shoe = deck.New(s.shoeSize)
		return s.shoe.DrawOne()
	}
	return id, err
}

// PlayerPoints returns the player's current hand points
func (s *Session) PlayerPoints() uint8 {
	return s.playerPoints
}

// BankPoints returns the bank's current hand points
func (s *Session) BankPoints() uint8 {
	return s.bankPoints
}

// BankCards returns a copy of the bank's hand
func (s *Session) BankCards() []uint16 {
	cards := make([]uint16, len(s.bankCards))
	copy(cards, s.bankCards)
	return cards
}

// Stage returns the session's current stage
func (s *Session) Stage() Stage {
	return s.stage
}

// Remaining reports the cards left in the shoe
func (s *Session) Remaining() int {
	return s.shoe.Remaining()
}
