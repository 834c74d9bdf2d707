// Package ai picks a card for a non-human seat.
//
// The decision only sees what the seat could observe at the table: its own
// hand, the cards on the table, the trump suit and the cards already played
// this round, plus the partner signals of the hard tier.
package ai

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"sueca-game/internal/shared"

	"golang.org/x/exp/slices"
)

// NoCard is returned when the seat holds no legal card.
const NoCard = -1

// Difficulty selects the decision rules.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// ParseDifficulty accepts easy, medium or hard in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case Easy, Medium, Hard:
		return d, nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// View is the observable state of one seat when it must act.
type View struct {
	Seat       int
	Hand       []shared.Card
	Trick      []shared.PlayedCard
	Trump      shared.Suit
	Played     []shared.Card // every card played this round, current trick included
	Difficulty Difficulty
	Signals    *SignalLog // hard tier only; read, never written, by Choose
	TrickSeq   int
}

// Choose returns the index into v.Hand of the card to play, or NoCard.
// A nil rng uses the global source.
func Choose(v View, rng *rand.Rand) int {
	legal := LegalIndices(v.Hand, v.Trick)
	if len(legal) == 0 {
		return NoCard
	}
	if len(legal) == 1 {
		return legal[0]
	}
	switch v.Difficulty {
	case Easy:
		return chooseEasy(v, legal, rng)
	case Hard:
		return chooseHard(v, legal)
	default:
		return chooseMedium(v, legal)
	}
}

// LegalIndices returns the hand indices that may be played on trick.
func LegalIndices(hand []shared.Card, trick []shared.PlayedCard) []int {
	lead := shared.LeadSuit(trick)
	follow := lead != "" && shared.HasSuit(hand, lead)
	out := make([]int, 0, len(hand))
	for i, c := range hand {
		if !follow || c.Suit == lead {
			out = append(out, i)
		}
	}
	return out
}

func intN(rng *rand.Rand, n int) int {
	if rng != nil {
		return rng.IntN(n)
	}
	return rand.IntN(n)
}

func float64Of(rng *rand.Rand) float64 {
	if rng != nil {
		return rng.Float64()
	}
	return rand.Float64()
}

// ascending returns a copy of idx ordered from weakest to strongest card.
// Equal ranks keep hand order.
func ascending(hand []shared.Card, idx []int) []int {
	out := slices.Clone(idx)
	slices.SortStableFunc(out, func(a, b int) int {
		return hand[a].Hierarchy() - hand[b].Hierarchy()
	})
	return out
}

func filter(hand []shared.Card, idx []int, keep func(shared.Card) bool) []int {
	out := make([]int, 0, len(idx))
	for _, i := range idx {
		if keep(hand[i]) {
			out = append(out, i)
		}
	}
	return out
}

// toAct counts the seats still to play after the acting seat.
func toAct(v View) int {
	return 3 - len(v.Trick)
}
