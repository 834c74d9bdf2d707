package shared

import "testing"

func mustParse(t *testing.T, code string) Card {
	t.Helper()
	c, err := ParseCode(code)
	if err != nil {
		t.Fatalf("parse %s: %v", code, err)
	}
	return c
}

func trickOf(t *testing.T, leader int, codes ...string) *Trick {
	t.Helper()
	tr := NewTrick(leader)
	for i, code := range codes {
		tr.AddCard(mustParse(t, code), (leader+i)%4)
	}
	return tr
}

func TestTrick_DetermineWinner(t *testing.T) {
	cases := []struct {
		name   string
		trump  Suit
		cards  []string
		winner int
		points int
	}{
		{name: "trump two beats aces", trump: Spades, cards: []string{"7C", "AC", "2S", "QC"}, winner: 2, points: 23},
		{name: "highest of lead suit", trump: Hearts, cards: []string{"KC", "7C", "AD", "QC"}, winner: 1, points: 27},
		{name: "off-suit ace loses", trump: Hearts, cards: []string{"2C", "AD", "AS", "3C"}, winner: 3, points: 22},
		{name: "highest trump wins", trump: Hearts, cards: []string{"AC", "2H", "7H", "KH"}, winner: 2, points: 25},
		{name: "trump led", trump: Diamonds, cards: []string{"QD", "AC", "JD", "2D"}, winner: 2, points: 16},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := trickOf(t, 0, tc.cards...)
			if got := tr.DetermineWinner(tc.trump); got != tc.winner {
				t.Errorf("winner = %d, want %d", got, tc.winner)
			}
			if got := tr.Points(); got != tc.points {
				t.Errorf("points = %d, want %d", got, tc.points)
			}
		})
	}
}

func TestTrick_SwappingLosersKeepsWinner(t *testing.T) {
	a := trickOf(t, 0, "7C", "AC", "2S", "QC")
	b := trickOf(t, 0, "7C", "QC", "2S", "AC")
	wa, wb := a.DetermineWinner(Spades), b.DetermineWinner(Spades)
	if a.Cards[WinningIndex(a.Cards, Spades)].Card.Code() != "2S" || b.Cards[WinningIndex(b.Cards, Spades)].Card.Code() != "2S" {
		t.Fatalf("2S should win both orders (seats %d, %d)", wa, wb)
	}
	if a.Points() != b.Points() {
		t.Errorf("points differ: %d vs %d", a.Points(), b.Points())
	}
}

func TestFindCard(t *testing.T) {
	hand := []Card{mustParse(t, "AS"), mustParse(t, "7H"), mustParse(t, "QS")}
	if i := FindCard(hand, Spades, Queen); i != 2 {
		t.Errorf("FindCard(QS) = %d, want 2", i)
	}
	if i := FindCard(hand, Hearts, Ace); i != -1 {
		t.Errorf("FindCard(AH) = %d, want -1", i)
	}
}

func TestWinningIndex_Empty(t *testing.T) {
	if WinningIndex(nil, Hearts) != -1 {
		t.Fatal("empty trick should have no winner")
	}
	if NewTrick(0).DetermineWinner(Hearts) != -1 {
		t.Fatal("empty trick should have no winner")
	}
}

func TestParseCode(t *testing.T) {
	for _, code := range []string{"AS", "7h", " qd ", "2C"} {
		c, err := ParseCode(code)
		if err != nil {
			t.Fatalf("parse %q: %v", code, err)
		}
		if !c.Valid() {
			t.Errorf("parsed %q is not valid", code)
		}
	}
	for _, code := range []string{"", "A", "1S", "AX", "10H"} {
		if _, err := ParseCode(code); err == nil {
			t.Errorf("expected error for %q", code)
		}
	}
	if NewCard(Spades, Ace).Code() != "AS" {
		t.Errorf("unexpected code")
	}
}
