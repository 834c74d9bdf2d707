package shared

// PlayedCard stores a card along with the seat that played it.
type PlayedCard struct {
	Card Card `json:"card"`
	Seat int  `json:"seat"`
}

// Trick represents a single trick.
type Trick struct {
	Cards  []PlayedCard // Cards played in order
	Leader int          // Seat that leads the trick
	Winner int          // Seat that won the trick (-1 if not determined)
}

// NewTrick creates a new trick led by leader.
func NewTrick(leader int) *Trick {
	return &Trick{
		Cards:  make([]PlayedCard, 0, 4),
		Leader: leader,
		Winner: -1,
	}
}

// AddCard adds a card and the seat that played it.
func (t *Trick) AddCard(card Card, seat int) {
	t.Cards = append(t.Cards, PlayedCard{Card: card, Seat: seat})
}

// LeadSuit returns the suit of the first card, or "" for an empty trick.
func (t *Trick) LeadSuit() Suit {
	return LeadSuit(t.Cards)
}

// IsComplete reports whether all four seats have played.
func (t *Trick) IsComplete() bool {
	return len(t.Cards) == 4
}

// Points sums the point values of the cards in the trick.
func (t *Trick) Points() int {
	return PlayedPoints(t.Cards)
}

// DetermineWinner resolves the trick against trump, records and returns the
// winning seat. Returns -1 for an empty trick.
func (t *Trick) DetermineWinner(trump Suit) int {
	i := WinningIndex(t.Cards, trump)
	if i < 0 {
		return -1
	}
	t.Winner = t.Cards[i].Seat
	return t.Winner
}

// LeadSuit returns the suit of the first played card.
func LeadSuit(plays []PlayedCard) Suit {
	if len(plays) == 0 {
		return ""
	}
	return plays[0].Card.Suit
}

// PlayedPoints sums the point values of plays.
func PlayedPoints(plays []PlayedCard) int {
	points := 0
	for _, pc := range plays {
		points += pc.Card.Points()
	}
	return points
}

// Beats reports whether a beats b in a trick led with lead under trump.
// A trump beats any non-trump; otherwise only lead-suit cards count.
func Beats(a, b Card, lead, trump Suit) bool {
	aTrump, bTrump := a.Suit == trump, b.Suit == trump
	switch {
	case aTrump && !bTrump:
		return true
	case !aTrump && bTrump:
		return false
	case aTrump && bTrump:
		return a.Hierarchy() > b.Hierarchy()
	}
	if a.Suit != lead {
		return false
	}
	if b.Suit != lead {
		return true
	}
	return a.Hierarchy() > b.Hierarchy()
}

// WinningIndex returns the index of the play currently winning, or -1.
// Works on partial tricks.
func WinningIndex(plays []PlayedCard, trump Suit) int {
	if len(plays) == 0 {
		return -1
	}
	lead := plays[0].Card.Suit
	best := 0
	for i := 1; i < len(plays); i++ {
		if Beats(plays[i].Card, plays[best].Card, lead, trump) {
			best = i
		}
	}
	return best
}
