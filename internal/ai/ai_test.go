package ai

import (
	"math/rand/v2"
	"testing"

	"sueca-game/internal/shared"

	"golang.org/x/exp/slices"
)

func cards(t *testing.T, codes ...string) []shared.Card {
	t.Helper()
	out := make([]shared.Card, len(codes))
	for i, code := range codes {
		c, err := shared.ParseCode(code)
		if err != nil {
			t.Fatalf("parse %s: %v", code, err)
		}
		out[i] = c
	}
	return out
}

// trick builds a trick led by leader.
func trick(t *testing.T, leader int, codes ...string) []shared.PlayedCard {
	t.Helper()
	out := make([]shared.PlayedCard, 0, len(codes))
	for i, c := range cards(t, codes...) {
		out = append(out, shared.PlayedCard{Card: c, Seat: (leader + i) % 4})
	}
	return out
}

func played(pcs []shared.PlayedCard, extra ...shared.Card) []shared.Card {
	out := append([]shared.Card(nil), extra...)
	for _, pc := range pcs {
		out = append(out, pc.Card)
	}
	return out
}

func TestChoose_Positions(t *testing.T) {
	type tc struct {
		name   string
		view   func(t *testing.T) View
		expect string
	}
	cases := []tc{
		{
			name: "medium lead prefers high card of long suit",
			view: func(t *testing.T) View {
				return View{Hand: cards(t, "2C", "AC", "KC", "3H"), Trump: shared.Spades, Difficulty: Medium}
			},
			expect: "AC",
		},
		{
			name: "medium lead trump bonus with more than three trumps",
			view: func(t *testing.T) View {
				return View{Hand: cards(t, "6H", "5H", "4H", "3H", "KC", "2C"), Trump: shared.Hearts, Difficulty: Medium}
			},
			expect: "6H",
		},
		{
			name: "medium follows with the master card",
			view: func(t *testing.T) View {
				tr := trick(t, 3, "QS")
				return View{Seat: 0, Hand: cards(t, "KS", "AS", "2C"), Trick: tr, Played: played(tr), Trump: shared.Hearts, Difficulty: Medium}
			},
			expect: "AS",
		},
		{
			name: "medium wins low once the seven is gone",
			view: func(t *testing.T) View {
				tr := trick(t, 3, "QS")
				return View{Seat: 0, Hand: cards(t, "KS", "AS", "2C"), Trick: tr, Played: played(tr, cards(t, "7S")...), Trump: shared.Hearts, Difficulty: Medium}
			},
			expect: "KS",
		},
		{
			name: "follow suit keeps the seven while the ace is out",
			view: func(t *testing.T) View {
				tr := trick(t, 3, "2S")
				return View{Seat: 0, Hand: cards(t, "7S", "5S"), Trick: tr, Played: played(tr), Trump: shared.Hearts, Difficulty: Medium}
			},
			expect: "5S",
		},
		{
			name: "cut with the low trump",
			view: func(t *testing.T) View {
				tr := trick(t, 2, "2S", "3S")
				return View{Seat: 0, Hand: cards(t, "7H", "2H"), Trick: tr, Played: played(tr), Trump: shared.Hearts, Difficulty: Medium}
			},
			expect: "2H",
		},
		{
			name: "overtrump with the lowest sufficient trump",
			view: func(t *testing.T) View {
				tr := trick(t, 2, "2S", "3H")
				return View{Seat: 0, Hand: cards(t, "7H", "QH"), Trick: tr, Played: played(tr), Trump: shared.Hearts, Difficulty: Medium}
			},
			expect: "QH",
		},
		{
			name: "discard instead of wasting a high trump on an empty trick",
			view: func(t *testing.T) View {
				tr := trick(t, 3, "2S")
				return View{Seat: 0, Hand: cards(t, "AH", "3D"), Trick: tr, Played: played(tr), Trump: shared.Hearts, Difficulty: Medium}
			},
			expect: "3D",
		},
		{
			name: "hard supports a safe partner with a king",
			view: func(t *testing.T) View {
				tr := trick(t, 2, "AC", "2C")
				return View{Seat: 0, Hand: cards(t, "KC", "7C", "3C"), Trick: tr, Played: played(tr), Trump: shared.Hearts, Difficulty: Hard}
			},
			expect: "KC",
		},
		{
			name: "hard overtakes an opponent with the lowest winner",
			view: func(t *testing.T) View {
				tr := trick(t, 2, "2C", "QC")
				return View{Seat: 0, Hand: cards(t, "KC", "AC", "3D"), Trick: tr, Played: played(tr), Trump: shared.Hearts, Difficulty: Hard, Signals: NewSignalLog()}
			},
			expect: "KC",
		},
		{
			name: "hard answers partner distress with the highest winner",
			view: func(t *testing.T) View {
				tr := trick(t, 2, "2C", "QC")
				log := NewSignalLog()
				log.Add(Signal{Seat: 2, Kind: NeedHelp})
				return View{Seat: 0, Hand: cards(t, "KC", "AC", "3D"), Trick: tr, Played: played(tr), Trump: shared.Hearts, Difficulty: Hard, Signals: log}
			},
			expect: "AC",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := c.view(t)
			i := Choose(v, rand.New(rand.NewPCG(7, 7)))
			if i == NoCard {
				t.Fatal("no card chosen")
			}
			if got := v.Hand[i].Code(); got != c.expect {
				t.Errorf("chose %s, want %s", got, c.expect)
			}
		})
	}
}

func TestHardLead_AnswersTrumpRequest(t *testing.T) {
	log := NewSignalLog()
	log.Add(Signal{Seat: 2, Kind: NeedTrump, TrickSeq: 1})
	v := View{Seat: 0, Hand: cards(t, "3C", "2H", "AC"), Trump: shared.Hearts, Difficulty: Hard, Signals: log, TrickSeq: 2}

	i := Choose(v, nil)
	if v.Hand[i].Code() != "2H" {
		t.Fatalf("expected trump lead, got %s", v.Hand[i])
	}
	if kind, ok := LeadSignal(v, v.Hand[i]); !ok || kind != HelpingTrump {
		t.Errorf("expected helping_trump signal, got %v (%v)", kind, ok)
	}
	if log.Len() != 1 {
		t.Errorf("Choose wrote to the signal log: %+v", log.All())
	}
}

func TestHardLead_CashesMasterAndSignals(t *testing.T) {
	log := NewSignalLog()
	v := View{Seat: 1, Hand: cards(t, "2C", "3D", "AC"), Trump: shared.Hearts, Difficulty: Hard, Signals: log}

	i := Choose(v, nil)
	if v.Hand[i].Code() != "AC" {
		t.Fatalf("expected AC, got %s", v.Hand[i])
	}
	if kind, ok := LeadSignal(v, v.Hand[i]); !ok || kind != NeedTrump {
		t.Errorf("expected need_trump signal, got %v (%v)", kind, ok)
	}
	if log.Len() != 0 {
		t.Errorf("Choose wrote to the signal log: %+v", log.All())
	}
}

func TestLeadSignal(t *testing.T) {
	asked := NewSignalLog()
	asked.Add(Signal{Seat: 2, Kind: LeadingTrumps})

	cases := []struct {
		name string
		view View
		lead string
		want SignalKind
		ok   bool
	}{
		{"answers partner", View{Seat: 0, Hand: cards(t, "2H", "3C"), Trump: shared.Hearts, Signals: asked}, "2H", HelpingTrump, true},
		{"long trumps", View{Seat: 0, Hand: cards(t, "AH", "KH", "2H", "3H", "4C"), Trump: shared.Hearts}, "AH", LeadingTrumps, true},
		{"long side suit", View{Seat: 1, Hand: cards(t, "KS", "2S", "3S", "4S", "AH"), Trump: shared.Hearts}, "KS", StrongSuit, true},
		{"weak hand", View{Seat: 1, Hand: cards(t, "2S", "3D", "QH", "JH"), Trump: shared.Hearts}, "2S", NeedHelp, true},
		{"nothing to say", View{Seat: 3, Hand: cards(t, "KS", "QH", "JH"), Trump: shared.Hearts}, "KS", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := cards(t, tc.lead)[0]
			kind, ok := LeadSignal(tc.view, c)
			if kind != tc.want || ok != tc.ok {
				t.Errorf("LeadSignal(%s) = %v, %v; want %v, %v", tc.lead, kind, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestLegalIndices(t *testing.T) {
	hand := cards(t, "2S", "5H", "7S")
	if got := LegalIndices(hand, trick(t, 3, "3S")); !slices.Equal(got, []int{0, 2}) {
		t.Errorf("follow suit: got %v", got)
	}
	if got := LegalIndices(hand, trick(t, 3, "3D")); len(got) != 3 {
		t.Errorf("void: got %v", got)
	}
	if got := LegalIndices(hand, nil); len(got) != 3 {
		t.Errorf("lead: got %v", got)
	}
	if Choose(View{Difficulty: Hard}, nil) != NoCard {
		t.Errorf("empty hand should yield NoCard")
	}
}

// Every tier returns a legal index on random positions.
func TestChoose_NeverStalls(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		for n := 0; n < 500; n++ {
			deck := shared.NewDeckWithRand(rng)
			deck.Shuffle()
			handSize := 1 + rng.IntN(10)
			hand := deck.Deal(handSize)
			leader := rng.IntN(4)
			seat := (leader + rng.IntN(4)) % 4
			var tr []shared.PlayedCard
			for s := leader; s != seat; s = (s + 1) % 4 {
				tr = append(tr, shared.PlayedCard{Card: deck.Deal(1)[0], Seat: s})
			}
			prior := deck.Deal(rng.IntN(deck.Remaining() - 1))
			v := View{
				Seat: seat, Hand: hand, Trick: tr, Trump: shared.Suits[rng.IntN(4)],
				Played: played(tr, prior...), Difficulty: d, Signals: NewSignalLog(),
			}
			i := Choose(v, rng)
			if !slices.Contains(LegalIndices(hand, tr), i) {
				t.Fatalf("%s: illegal choice %d for hand %v on %v", d, i, hand, tr)
			}
		}
	}
}

func TestWinProbability(t *testing.T) {
	tr := trick(t, 1, "2C")
	v := View{Seat: 2, Hand: cards(t, "KC"), Trick: tr, Played: played(tr), Trump: shared.Hearts}
	// Unseen clubs: 3 4 5 6 Q J 7 A -> 8, higher than K: 7 A -> 2.
	if got := WinProbability(v, v.Hand[0]); got != 0.75 {
		t.Errorf("got %v, want 0.75", got)
	}
	v.Trick = trick(t, 3, "2C", "3C", "4C")
	if got := WinProbability(v, v.Hand[0]); got != 1 {
		t.Errorf("last to act should be certain, got %v", got)
	}
}

func TestParseDifficulty(t *testing.T) {
	for in, want := range map[string]Difficulty{"easy": Easy, "MEDIUM": Medium, " Hard ": Hard} {
		got, err := ParseDifficulty(in)
		if err != nil || got != want {
			t.Errorf("ParseDifficulty(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseDifficulty("expert"); err == nil {
		t.Error("expected error")
	}
}
