package ai

import (
	"math/rand/v2"

	"sueca-game/internal/shared"
)

// easyLowPick is the chance the easy tier plays one of its three lowest cards.
const easyLowPick = 0.7

// trumpRichHand is the trump count above which a hand spends trumps freely.
const trumpRichHand = 3

func chooseEasy(v View, legal []int, rng *rand.Rand) int {
	if float64Of(rng) < easyLowPick {
		low := ascending(v.Hand, legal)
		return low[intN(rng, min(3, len(low)))]
	}
	return legal[intN(rng, len(legal))]
}

func chooseMedium(v View, legal []int) int {
	if len(v.Trick) == 0 {
		return leadByScore(v, legal)
	}
	return follow(v, legal, func(c shared.Card) bool { return isMaster(v, c) })
}

// leadByScore favours high cards from long suits, and trumps when holding
// more than three of them.
func leadByScore(v View, legal []int) int {
	trumps := shared.CountSuit(v.Hand, v.Trump)
	best, bestScore := legal[0], -1
	for _, i := range legal {
		c := v.Hand[i]
		score := 2*c.Hierarchy() + shared.CountSuit(v.Hand, c.Suit)
		if c.Suit == v.Trump && trumps > trumpRichHand {
			score += 5
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return best
}

// follow plays a card on a trick led by someone else. likely decides whether
// a winning card is expected to keep the trick.
func follow(v View, legal []int, likely func(shared.Card) bool) int {
	lead := shared.LeadSuit(v.Trick)
	best := v.Trick[shared.WinningIndex(v.Trick, v.Trump)].Card
	points := shared.PlayedPoints(v.Trick)

	if shared.HasSuit(v.Hand, lead) {
		beaters := ascending(v.Hand, filter(v.Hand, legal, func(c shared.Card) bool {
			return shared.Beats(c, best, lead, v.Trump)
		}))
		for _, i := range beaters {
			if likely(v.Hand[i]) {
				return i
			}
		}
		if len(beaters) > 0 && points >= 10 {
			return beaters[0]
		}
		return lowestSparingSeven(v, legal)
	}

	trumps := ascending(v.Hand, filter(v.Hand, legal, func(c shared.Card) bool { return c.Suit == v.Trump }))
	others := ascending(v.Hand, filter(v.Hand, legal, func(c shared.Card) bool { return c.Suit != v.Trump }))

	if best.Suit == v.Trump {
		for _, i := range trumps {
			if v.Hand[i].Hierarchy() > best.Hierarchy() {
				return i
			}
		}
		if len(others) > 0 {
			return others[0]
		}
		return trumps[0]
	}

	if len(trumps) == 0 {
		return others[0]
	}
	if shared.CountSuit(v.Hand, v.Trump) > trumpRichHand {
		return trumps[0]
	}
	low := filter(v.Hand, trumps, func(c shared.Card) bool { return c.Hierarchy() < shared.Hierarchy(shared.King) })
	if len(low) > 0 && (points > 0 || len(others) == 0) {
		return low[0]
	}
	if len(others) > 0 {
		return others[0]
	}
	return trumps[0]
}

// lowestSparingSeven returns the weakest legal card, keeping a 7 back while
// the Ace of its suit is still out.
func lowestSparingSeven(v View, legal []int) int {
	low := ascending(v.Hand, legal)
	for _, i := range low {
		c := v.Hand[i]
		if c.Rank != shared.Seven || !aceOut(v, c.Suit) {
			return i
		}
	}
	return low[0]
}

func chooseHard(v View, legal []int) int {
	if len(v.Trick) == 0 {
		return leadHard(v, legal)
	}
	if v.Trick[0].Seat == shared.Partner(v.Seat) {
		return followPartner(v, legal)
	}
	return follow(v, legal, func(c shared.Card) bool { return WinProbability(v, c) > 0.5 })
}

func leadHard(v View, legal []int) int {
	trumps := ascending(v.Hand, filter(v.Hand, legal, func(c shared.Card) bool { return c.Suit == v.Trump }))
	if sig, ok := v.Signals.LastFrom(shared.Partner(v.Seat)); ok && len(trumps) > 0 &&
		(sig.Kind == NeedTrump || sig.Kind == LeadingTrumps) {
		choice := trumps[0]
		if top := trumps[len(trumps)-1]; WinProbability(v, v.Hand[top]) > 0.5 {
			choice = top
		}
		return choice
	}

	choice := -1
	others := ascending(v.Hand, filter(v.Hand, legal, func(c shared.Card) bool { return c.Suit != v.Trump }))
	for j := len(others) - 1; j >= 0; j-- {
		c := v.Hand[others[j]]
		if c.Hierarchy() >= shared.Hierarchy(shared.King) && WinProbability(v, c) > 0.5 {
			choice = others[j]
			break
		}
	}
	if choice < 0 {
		choice = leadByScore(v, legal)
	}
	return choice
}

// LeadSignal returns the signal a hard-tier lead of c carries, seen from the
// view the leader chose it with. Choosing never records it; the game does
// once the lead is played.
func LeadSignal(v View, c shared.Card) (SignalKind, bool) {
	if sig, ok := v.Signals.LastFrom(shared.Partner(v.Seat)); ok && c.Suit == v.Trump &&
		(sig.Kind == NeedTrump || sig.Kind == LeadingTrumps) {
		return HelpingTrump, true
	}
	return leadSignal(v, c)
}

// leadSignal picks the signal that describes a lead of c, if any.
func leadSignal(v View, c shared.Card) (SignalKind, bool) {
	if shared.CountSuit(v.Hand, c.Suit) >= 4 && c.Hierarchy() >= shared.Hierarchy(shared.King) {
		if c.Suit == v.Trump {
			return LeadingTrumps, true
		}
		return StrongSuit, true
	}
	strong := false
	for _, h := range v.Hand {
		if h.Hierarchy() >= shared.Hierarchy(shared.King) {
			strong = true
			break
		}
	}
	if !strong && c.Hierarchy() <= shared.Hierarchy(shared.Six) {
		return NeedHelp, true
	}
	if c.Suit != v.Trump && shared.CountSuit(v.Hand, v.Trump) <= 1 {
		return NeedTrump, true
	}
	return 0, false
}

// followPartner plays on a trick the partner led.
func followPartner(v View, legal []int) int {
	lead := shared.LeadSuit(v.Trick)
	partner := shared.Partner(v.Seat)
	best := v.Trick[shared.WinningIndex(v.Trick, v.Trump)]

	if best.Seat == partner && WinProbability(v, best.Card) > 0.5 {
		return support(v, legal, lead)
	}

	winners := ascending(v.Hand, filter(v.Hand, legal, func(c shared.Card) bool {
		return shared.Beats(c, best.Card, lead, v.Trump)
	}))
	if len(winners) > 0 {
		if sig, ok := v.Signals.LastFrom(partner); ok && sig.Kind == NeedHelp {
			return winners[len(winners)-1]
		}
		return winners[0]
	}
	return lowestSparingSeven(v, legal)
}

// support adds points to a trick the partner is expected to keep: the
// highest lead-suit card below a 7, else the richest off-suit card below a 7.
func support(v View, legal []int, lead shared.Suit) int {
	below7 := func(c shared.Card) bool { return c.Hierarchy() < shared.Hierarchy(shared.Seven) }
	if shared.HasSuit(v.Hand, lead) {
		candidates := ascending(v.Hand, filter(v.Hand, legal, below7))
		if len(candidates) > 0 {
			return candidates[len(candidates)-1]
		}
		return ascending(v.Hand, legal)[0]
	}
	discards := ascending(v.Hand, filter(v.Hand, legal, func(c shared.Card) bool {
		return c.Suit != v.Trump && below7(c)
	}))
	if len(discards) > 0 {
		return discards[len(discards)-1]
	}
	return lowestSparingSeven(v, legal)
}
