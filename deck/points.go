package deck

// Rank boundaries within a 52-card set. Ranks are grouped four by four
// in ascending value order: 2s first, aces last.
const (
	tenPointCardsStart = 32
	aceCardsStart      = 48

	cardsPerValue    = 4
	minimumCardValue = 2

	tenCardPoints = 10
	softAcePoints = 11
	hardAcePoints = 1

	// An ace counts as 11 only while the hand can still absorb it.
	softAceLimit = 11
)

// CardPoints returns the points contribution of a card given the points
// accumulated so far in the hand. The ace is valued at the moment it is
// drawn and never revalued afterwards, so A,A scores 11 then 1.
func CardPoints(rank uint8, pointsSoFar uint8) uint8 {
	switch {
	case rank >= aceCardsStart:
		if pointsSoFar >= softAceLimit {
			return hardAcePoints
		}
		return softAcePoints
	case rank >= tenPointCardsStart:
		return tenCardPoints
	default:
		return rank/cardsPerValue + minimumCardValue
	}
}
