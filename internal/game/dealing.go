package game

import (
	"fmt"
	"strings"

	"sueca-game/internal/shared"
)

// DealingMethod selects how the 40 cards are distributed.
type DealingMethod string

const (
	// MethodA deals one card at a time from dealer+1; the last card names trump.
	MethodA DealingMethod = "A"
	// MethodB gives the dealer's first card alone to name trump, then nine
	// more to the dealer and the rest round-robin to the other seats.
	MethodB DealingMethod = "B"
)

// CardsPerHand is the size of every hand after the deal.
const CardsPerHand = 10

// ParseDealingMethod accepts "A" or "B" in any case.
func ParseDealingMethod(s string) (DealingMethod, error) {
	switch m := DealingMethod(strings.ToUpper(strings.TrimSpace(s))); m {
	case MethodA, MethodB:
		return m, nil
	}
	return "", fmt.Errorf("unknown dealing method %q", s)
}

// DealResult is the outcome of one deal.
type DealResult struct {
	Hands     [4][]shared.Card
	Trump     shared.Suit
	TrumpCard shared.Card // display copy with its own id
}

// Deal distributes a full deck starting after dealer. The deck must hold
// exactly 40 cards and is empty afterwards.
func Deal(deck *shared.Deck, dealer int, method DealingMethod) (DealResult, error) {
	if deck.Remaining() != shared.DeckSize {
		return DealResult{}, fmt.Errorf("deal needs %d cards, deck has %d", shared.DeckSize, deck.Remaining())
	}
	var res DealResult
	for i := range res.Hands {
		res.Hands[i] = make([]shared.Card, 0, CardsPerHand)
	}

	var trump shared.Card
	switch method {
	case MethodB:
		trump = deck.Deal(1)[0]
		res.Hands[dealer] = append(res.Hands[dealer], trump)
		res.Hands[dealer] = append(res.Hands[dealer], deck.Deal(CardsPerHand-1)...)
		for r := 0; r < CardsPerHand; r++ {
			for k := 1; k < 4; k++ {
				seat := (dealer + k) % 4
				res.Hands[seat] = append(res.Hands[seat], deck.Deal(1)...)
			}
		}
	case MethodA, "":
		for r := 0; r < CardsPerHand; r++ {
			for k := 1; k <= 4; k++ {
				seat := (dealer + k) % 4
				card := deck.Deal(1)[0]
				res.Hands[seat] = append(res.Hands[seat], card)
				trump = card
			}
		}
	default:
		return DealResult{}, fmt.Errorf("unknown dealing method %q", method)
	}

	res.Trump = trump.Suit
	res.TrumpCard = shared.NewCard(trump.Suit, trump.Rank)
	return res, nil
}
