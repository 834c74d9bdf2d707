package game

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"sueca-game/internal/shared"

	"golang.org/x/exp/slices"
)

// TieBreak decides how equal ranks are separated during setup draws.
type TieBreak string

const (
	TieBreakRedraw    TieBreak = "redraw" // tied seats draw again from a fresh deck
	TieBreakSuitOrder TieBreak = "suit"   // SuitOrder separates equal ranks
)

// SeatingPolicy decides who sits where.
type SeatingPolicy string

const (
	SeatingFixed SeatingPolicy = "fixed" // names seat in order, human at 0 and partner at 2
	SeatingDraw  SeatingPolicy = "draw"  // lowest draw partners highest draw
)

// SuitOrder is the house rule used by TieBreakSuitOrder: clubs is the
// lowest suit and spades the highest.
var SuitOrder = map[shared.Suit]int{
	shared.Clubs:    1,
	shared.Diamonds: 2,
	shared.Hearts:   3,
	shared.Spades:   4,
}

// maxRedraws bounds recursive redraws; past it SuitOrder settles the tie.
const maxRedraws = 32

// ParseTieBreak accepts "redraw" or "suit".
func ParseTieBreak(s string) (TieBreak, error) {
	switch t := TieBreak(strings.ToLower(strings.TrimSpace(s))); t {
	case TieBreakRedraw, TieBreakSuitOrder:
		return t, nil
	}
	return "", fmt.Errorf("unknown tie break %q", s)
}

// ParseSeatingPolicy accepts "fixed" or "draw".
func ParseSeatingPolicy(s string) (SeatingPolicy, error) {
	switch p := SeatingPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case SeatingFixed, SeatingDraw:
		return p, nil
	}
	return "", fmt.Errorf("unknown seating policy %q", s)
}

// Drawer hands one card to each listed participant.
type Drawer func(who []int) map[int]shared.Card

// DeckDrawer draws from a fresh shuffled deck on every call.
func DeckDrawer(r *rand.Rand) Drawer {
	return func(who []int) map[int]shared.Card {
		deck := shared.NewDeckWithRand(r)
		deck.Shuffle()
		out := make(map[int]shared.Card, len(who))
		for _, w := range who {
			out[w] = deck.Deal(1)[0]
		}
		return out
	}
}

// RankDraw orders participants from lowest to highest drawn card. Equal
// ranks are settled by tie, only the tied participants taking part in a
// redraw.
func RankDraw(who []int, draw Drawer, tie TieBreak) []int {
	return rankDraw(who, draw, tie, 0)
}

func rankDraw(who []int, draw Drawer, tie TieBreak, depth int) []int {
	if len(who) <= 1 {
		return slices.Clone(who)
	}
	drawn := draw(who)
	sorted := slices.Clone(who)
	slices.SortStableFunc(sorted, func(a, b int) int {
		return drawn[a].Hierarchy() - drawn[b].Hierarchy()
	})

	out := make([]int, 0, len(who))
	for start := 0; start < len(sorted); {
		end := start + 1
		for end < len(sorted) && drawn[sorted[end]].Hierarchy() == drawn[sorted[start]].Hierarchy() {
			end++
		}
		group := sorted[start:end]
		switch {
		case len(group) == 1:
			out = append(out, group[0])
		case tie == TieBreakSuitOrder || depth >= maxRedraws:
			bySuit := slices.Clone(group)
			slices.SortStableFunc(bySuit, func(a, b int) int {
				return SuitOrder[drawn[a].Suit] - SuitOrder[drawn[b].Suit]
			})
			out = append(out, bySuit...)
		default:
			out = append(out, rankDraw(group, draw, tie, depth+1)...)
		}
		start = end
	}
	return out
}

// SelectDealer returns the seat that drew the lowest card.
func SelectDealer(seats []int, draw Drawer, tie TieBreak) int {
	return RankDraw(seats, draw, tie)[0]
}

// SeatPlayers returns, for each seat, the index of the name sitting there.
// Name 0 is always the human at seat 0.
func SeatPlayers(policy SeatingPolicy, draw Drawer, tie TieBreak) [4]int {
	if policy != SeatingDraw {
		return [4]int{0, 1, 2, 3}
	}
	order := RankDraw([]int{0, 1, 2, 3}, draw, tie)
	lowHigh := []int{order[0], order[3]}
	middle := []int{order[1], order[2]}

	human, others := lowHigh, middle
	if slices.Contains(middle, 0) {
		human, others = middle, lowHigh
	}
	partner := human[0]
	if partner == 0 {
		partner = human[1]
	}
	return [4]int{0, others[0], partner, others[1]}
}
