package shared

import (
	"math/rand/v2"
	"testing"
)

func key(c Card) string { return c.Code() }

func TestNewDeck_FortyUniqueCards(t *testing.T) {
	d := NewDeck()
	if d.Remaining() != DeckSize {
		t.Fatalf("expected %d cards, got %d", DeckSize, d.Remaining())
	}
	seen := map[string]bool{}
	ids := map[string]bool{}
	points := 0
	for _, c := range d.Cards {
		if seen[key(c)] {
			t.Fatalf("duplicate card %s", key(c))
		}
		if ids[c.ID] || c.ID == "" {
			t.Fatalf("duplicate or empty id %q", c.ID)
		}
		seen[key(c)] = true
		ids[c.ID] = true
		points += c.Points()
	}
	if points != TotalPoints {
		t.Errorf("deck points = %d, want %d", points, TotalPoints)
	}
}

func TestDeck_ShuffleKeepsCards(t *testing.T) {
	d := NewDeckWithRand(rand.New(rand.NewPCG(1, 2)))
	before := map[string]bool{}
	for _, c := range d.Cards {
		before[key(c)] = true
	}
	d.Shuffle()
	if d.Remaining() != DeckSize {
		t.Fatalf("shuffle changed size to %d", d.Remaining())
	}
	for _, c := range d.Cards {
		if !before[key(c)] {
			t.Fatalf("unexpected card %s after shuffle", key(c))
		}
	}
}

func TestDeck_Cut(t *testing.T) {
	cases := []struct {
		name  string
		point int
		first int // index in the original order of the new top card
	}{
		{name: "middle", point: 10, first: 10},
		{name: "clamped low", point: 0, first: 1},
		{name: "clamped high", point: 100, first: 39},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDeck()
			orig := append([]Card(nil), d.Cards...)
			d.Cut(tc.point)
			if d.Remaining() != DeckSize {
				t.Fatalf("cut changed size")
			}
			if d.Cards[0].ID != orig[tc.first].ID {
				t.Errorf("top card = %s, want %s", d.Cards[0], orig[tc.first])
			}
			if d.Cards[DeckSize-1].ID != orig[tc.first-1].ID {
				t.Errorf("bottom card = %s, want %s", d.Cards[DeckSize-1], orig[tc.first-1])
			}
		})
	}
}

func TestDeck_CutSmallDeckIsNoop(t *testing.T) {
	d := NewDeck()
	d.Deal(39)
	last := d.Cards[0]
	d.CutRandom()
	d.Cut(5)
	if d.Remaining() != 1 || d.Cards[0].ID != last.ID {
		t.Fatalf("cut of a single card changed the deck")
	}
}

func TestDeck_DealAndPeek(t *testing.T) {
	d := NewDeck()
	last, ok := d.PeekLast()
	if !ok {
		t.Fatal("expected a last card")
	}
	first := d.Cards[0]
	hand := d.Deal(10)
	if len(hand) != 10 || hand[0].ID != first.ID {
		t.Fatalf("deal returned %v", hand)
	}
	if d.Remaining() != 30 {
		t.Fatalf("remaining = %d, want 30", d.Remaining())
	}
	if p, _ := d.PeekLast(); p.ID != last.ID {
		t.Errorf("peek changed after deal")
	}
	rest := d.Deal(50)
	if len(rest) != 30 || d.Remaining() != 0 {
		t.Fatalf("over-deal returned %d cards, %d remaining", len(rest), d.Remaining())
	}
	if _, ok := d.PeekLast(); ok {
		t.Errorf("peek on empty deck should report false")
	}
}
