package deck

import (
	"errors"
	"math/rand"
	"time"
)

// OneSetCards is the number of cards in a single 52-card set.
// A card identifier modulo OneSetCards gives its rank; suit never
// matters for scoring.
const OneSetCards = 52

// ShoeSize is the default shoe: eight full sets.
const ShoeSize = 8 * OneSetCards

// ErrDeckExhausted is returned by DrawOne when no cards are left.
var ErrDeckExhausted = errors.New("deck: no cards left to draw")

// Deck is a shuffled shoe of card identifiers. The top of the deck is
// the end of the slice.
type Deck []uint16

// New creates a shoe containing the identifiers [0,size), shuffled.
func New(size int) Deck {
	cards := make(Deck, size)
	for i := range cards {
		cards[i] = uint16(i)
	}
	cards.Shuffle()
	return cards
}

// Shuffle performs a uniform Fisher-Yates shuffle in place.
func (d Deck) Shuffle() {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := len(d) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

// DrawOne removes and returns the top card identifier.
func (d *Deck) DrawOne() (uint16, error) {
	cards := *d
	if len(cards) == 0 {
		return 0, ErrDeckExhausted
	}
	top := cards[len(cards)-1]
	*d = cards[:len(cards)-1]
	return top, nil
}

// Remaining reports how many cards are left in the shoe.
func (d Deck) Remaining() int {
	return len(d)
}

// Rank maps a card identifier to its rank within a single set.
func Rank(id uint16) uint8 {
	return uint8(id % OneSetCards)
}
