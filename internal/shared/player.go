package shared

// Position is the compass position of a seat at the table.
type Position string

const (
	South Position = "south"
	East  Position = "east"
	North Position = "north"
	West  Position = "west"
)

// SeatPositions maps seat indices to table positions. Seat 0 is the human.
var SeatPositions = [4]Position{South, East, North, West}

// Player represents a seat in the Sueca game.
type Player struct {
	ID   string   // Unique identifier for the seat
	Name string   // Display name
	Seat int      // Fixed seat index 0-3
	Hand []Card   // Cards currently held, in deal order
	Team TeamEnum // Derived from seat parity
}

// NewPlayer creates a player sitting at seat.
func NewPlayer(id string, name string, seat int) *Player {
	return &Player{
		ID:   id,
		Name: name,
		Seat: seat,
		Hand: []Card{},
		Team: TeamOf(seat),
	}
}

// AddCards appends several cards to the player's hand.
func (p *Player) AddCards(cards []Card) {
	p.Hand = append(p.Hand, cards...)
}

// RemoveAt removes and returns the card at index i.
func (p *Player) RemoveAt(i int) (Card, bool) {
	if i < 0 || i >= len(p.Hand) {
		return Card{}, false
	}
	card := p.Hand[i]
	p.Hand = append(p.Hand[:i:i], p.Hand[i+1:]...)
	return card, true
}

// FindCard returns the index of the card with suit and rank in cards, or -1.
func FindCard(cards []Card, suit Suit, rank Rank) int {
	for i, card := range cards {
		if card.Suit == suit && card.Rank == rank {
			return i
		}
	}
	return -1
}

// HasSuit reports whether the player holds a card of suit.
func (p *Player) HasSuit(suit Suit) bool {
	return HasSuit(p.Hand, suit)
}

// HasSuit reports whether cards contain a card of suit.
func HasSuit(cards []Card, suit Suit) bool {
	for _, card := range cards {
		if card.Suit == suit {
			return true
		}
	}
	return false
}

// CountSuit counts the cards of suit.
func CountSuit(cards []Card, suit Suit) int {
	n := 0
	for _, card := range cards {
		if card.Suit == suit {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the player.
func (p *Player) Clone() Player {
	c := *p
	c.Hand = append([]Card(nil), p.Hand...)
	return c
}
