package ai

import "sueca-game/internal/shared"

type cardKey struct {
	suit shared.Suit
	rank shared.Rank
}

// seenCards collects every card the seat can account for: played this
// round, on the table, or in its own hand.
func seenCards(v View) map[cardKey]bool {
	seen := make(map[cardKey]bool, len(v.Played)+len(v.Trick)+len(v.Hand))
	for _, c := range v.Played {
		seen[cardKey{c.Suit, c.Rank}] = true
	}
	for _, pc := range v.Trick {
		seen[cardKey{pc.Card.Suit, pc.Card.Rank}] = true
	}
	for _, c := range v.Hand {
		seen[cardKey{c.Suit, c.Rank}] = true
	}
	return seen
}

// unseenHigher counts the cards of c's suit that outrank c and are still out.
func unseenHigher(seen map[cardKey]bool, c shared.Card) int {
	n := 0
	for _, r := range shared.Ranks {
		if shared.Hierarchy(r) > c.Hierarchy() && !seen[cardKey{c.Suit, r}] {
			n++
		}
	}
	return n
}

// unseenOfSuit counts the cards of suit that are still out.
func unseenOfSuit(seen map[cardKey]bool, suit shared.Suit) int {
	n := 0
	for _, r := range shared.Ranks {
		if !seen[cardKey{suit, r}] {
			n++
		}
	}
	return n
}

// aceOut reports whether the Ace of suit has not been played or shown yet.
func aceOut(v View, suit shared.Suit) bool {
	for _, c := range v.Played {
		if c.Suit == suit && c.Rank == shared.Ace {
			return false
		}
	}
	for _, pc := range v.Trick {
		if pc.Card.Suit == suit && pc.Card.Rank == shared.Ace {
			return false
		}
	}
	return true
}

// WinProbability estimates the chance that c holds the trick once the
// remaining seats have played: 1 when nobody is left to act, otherwise the
// share of the suit's unseen cards that do not outrank c.
func WinProbability(v View, c shared.Card) float64 {
	if toAct(v) <= 0 {
		return 1
	}
	seen := seenCards(v)
	unseen := unseenOfSuit(seen, c.Suit)
	if unseen == 0 {
		return 1
	}
	return 1 - float64(unseenHigher(seen, c))/float64(unseen)
}

// isMaster reports whether no higher card of c's suit is still out, or
// nobody is left to act.
func isMaster(v View, c shared.Card) bool {
	return toAct(v) <= 0 || unseenHigher(seenCards(v), c) == 0
}
