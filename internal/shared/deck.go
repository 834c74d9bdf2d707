package shared

import (
	"math/rand/v2"
)

// DeckSize is the number of cards in a Sueca deck.
const DeckSize = 40

// Deck represents the ordered undealt cards of one round.
type Deck struct {
	Cards []Card
	rng   *rand.Rand
}

// NewDeck creates a standard 40-card deck using the global random source.
func NewDeck() *Deck {
	return NewDeckWithRand(nil)
}

// NewDeckWithRand creates a 40-card deck that shuffles and cuts with r.
// A nil r falls back to the global source.
func NewDeckWithRand(r *rand.Rand) *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return &Deck{Cards: cards, rng: r}
}

func (d *Deck) intN(n int) int {
	if d.rng != nil {
		return d.rng.IntN(n)
	}
	return rand.IntN(n)
}

// Shuffle randomizes the order of the remaining cards (Fisher-Yates).
func (d *Deck) Shuffle() {
	for i := len(d.Cards) - 1; i > 0; i-- {
		j := d.intN(i + 1)
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Cut moves the cards before point to the end of the deck. The point is
// clamped into [1, len-1]; decks of one card or less are left alone.
func (d *Deck) Cut(point int) {
	n := len(d.Cards)
	if n <= 1 {
		return
	}
	point = max(1, min(point, n-1))
	cut := make([]Card, 0, n)
	cut = append(cut, d.Cards[point:]...)
	cut = append(cut, d.Cards[:point]...)
	d.Cards = cut
}

// CutRandom cuts at a uniformly random point in [1, len-1].
func (d *Deck) CutRandom() {
	if len(d.Cards) <= 1 {
		return
	}
	d.Cut(d.intN(len(d.Cards)-1) + 1)
}

// Deal removes and returns the first n cards. Fewer are returned when the
// deck runs out.
func (d *Deck) Deal(n int) []Card {
	if n <= 0 {
		return []Card{}
	}
	n = min(n, len(d.Cards))
	dealt := make([]Card, n)
	copy(dealt, d.Cards[:n])
	d.Cards = d.Cards[n:]
	return dealt
}

// Remaining returns the number of undealt cards.
func (d *Deck) Remaining() int {
	return len(d.Cards)
}

// PeekLast returns the last card without removing it.
func (d *Deck) PeekLast() (Card, bool) {
	if len(d.Cards) == 0 {
		return Card{}, false
	}
	return d.Cards[len(d.Cards)-1], true
}
