package shared

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Suit represents the suit of a card.
type Suit string

const (
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Hearts   Suit = "hearts"
	Spades   Suit = "spades"
)

// Suits lists the four suits in deck construction order.
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Rank represents the rank of a card.
type Rank string

const (
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Queen Rank = "Q"
	Jack  Rank = "J"
	King  Rank = "K"
	Seven Rank = "7"
	Ace   Rank = "A"
)

// Ranks lists the ten ranks from weakest to strongest.
var Ranks = []Rank{Two, Three, Four, Five, Six, Queen, Jack, King, Seven, Ace}

// Card represents a single card. ID is unique per deck instance and only
// used for reconciliation; two cards are the same card when suit and rank match.
type Card struct {
	ID   string `json:"id"`
	Suit Suit   `json:"suit"`
	Rank Rank   `json:"rank"`
}

// Define card order for easier comparison
var cardOrder = map[Rank]int{
	Two:   1,
	Three: 2,
	Four:  3,
	Five:  4,
	Six:   5,
	Queen: 6,
	Jack:  7,
	King:  8,
	Seven: 9,
	Ace:   10,
}

// Define card values for scoring
var cardValues = map[Rank]int{
	Two:   0,
	Three: 0,
	Four:  0,
	Five:  0,
	Six:   0,
	Queen: 2,
	Jack:  3,
	King:  4,
	Seven: 10,
	Ace:   11,
}

var suitCodes = map[Suit]string{
	Clubs:    "C",
	Diamonds: "D",
	Hearts:   "H",
	Spades:   "S",
}

// TotalPoints is the sum of the point values of the whole deck.
const TotalPoints = 120

// NewCard builds a card with a fresh id.
func NewCard(suit Suit, rank Rank) Card {
	return Card{ID: uuid.NewString(), Suit: suit, Rank: rank}
}

// Hierarchy returns the strength of a rank within a suit, 1 (2) to 10 (Ace).
func Hierarchy(r Rank) int {
	return cardOrder[r]
}

// Points returns the scoring value of a rank.
func Points(r Rank) int {
	return cardValues[r]
}

// Hierarchy returns the strength of the card within its suit.
func (c Card) Hierarchy() int { return cardOrder[c.Rank] }

// Points returns the scoring value of the card.
func (c Card) Points() int { return cardValues[c.Rank] }

// SameAs reports whether both cards have the same suit and rank.
func (c Card) SameAs(o Card) bool {
	return c.Suit == o.Suit && c.Rank == o.Rank
}

// Valid reports whether suit and rank are known.
func (c Card) Valid() bool {
	_, okSuit := suitCodes[c.Suit]
	_, okRank := cardOrder[c.Rank]
	return okSuit && okRank
}

// Code renders the card as rank followed by the suit letter, e.g. "AS".
func (c Card) Code() string {
	return string(c.Rank) + suitCodes[c.Suit]
}

func (c Card) String() string {
	return c.Code()
}

// SuitCode returns the single letter code of a suit.
func SuitCode(s Suit) string {
	return suitCodes[s]
}

// ParseSuitCode maps a suit letter (C, D, H, S) back to a suit.
func ParseSuitCode(code string) (Suit, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for s, c := range suitCodes {
		if c == code {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown suit code %q", code)
}

// ParseCode parses a card code such as "AS" or "7h". The returned card has no id.
func ParseCode(code string) (Card, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) < 2 {
		return Card{}, fmt.Errorf("invalid card code %q", code)
	}
	suit, err := ParseSuitCode(code[len(code)-1:])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card code %q: %w", code, err)
	}
	rank := Rank(code[:len(code)-1])
	if _, ok := cardOrder[rank]; !ok {
		return Card{}, fmt.Errorf("invalid card code %q: unknown rank", code)
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// Codes renders a list of cards as codes.
func Codes(cards []Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Code()
	}
	return out
}
