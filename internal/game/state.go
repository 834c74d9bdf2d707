package game

import (
	"sueca-game/internal/ai"
	"sueca-game/internal/shared"
)

// State is a deep copy of the game at one instant. Mutating it never
// affects the game.
type State struct {
	ID                   string
	Players              [4]shared.Player
	CurrentPlayer        int
	Dealer               int
	TrumpSuit            shared.Suit
	TrumpCard            *shared.Card
	Trick                []shared.PlayedCard
	TrickLeader          int
	LeadSuit             shared.Suit
	TrickNumber          int
	Scores               shared.TeamScore
	GameScore            shared.TeamScore
	Round                int
	IsGameOver           bool
	Abandoned            bool
	Winner               shared.TeamEnum
	LastTrickWinner      int
	DealingMethod        DealingMethod
	Difficulty           ai.Difficulty
	IsFirstTrick         bool
	PlayedCards          []shared.Card
	DeckRemaining        int
	NextRoundMultiplier  int
	LastRound            *RoundResult
	WaitingForTrickEnd   bool
	WaitingForRoundStart bool
	WaitingForRoundEnd   bool
	WaitingForGameStart  bool
	IsPaused             bool
}

// IsWaiting reports whether any acknowledgement gate is open.
func (s State) IsWaiting() bool {
	return s.WaitingForTrickEnd || s.WaitingForRoundStart || s.WaitingForRoundEnd || s.WaitingForGameStart
}

// GetState returns a snapshot of the game.
func (g *Game) GetState() State {
	s := State{
		ID:                   g.ID,
		CurrentPlayer:        g.currentPlayer,
		Dealer:               g.dealer,
		TrumpSuit:            g.trumpSuit,
		Trick:                append([]shared.PlayedCard(nil), g.trick.Cards...),
		TrickLeader:          g.trick.Leader,
		LeadSuit:             g.trick.LeadSuit(),
		TrickNumber:          g.trickSeq,
		Scores:               g.scores,
		GameScore:            g.gameScore,
		Round:                g.round,
		IsGameOver:           g.isGameOver,
		Abandoned:            g.abandoned,
		Winner:               g.winner,
		LastTrickWinner:      g.lastTrickWinner,
		DealingMethod:        g.cfg.DealingMethod,
		Difficulty:           g.cfg.Difficulty,
		IsFirstTrick:         g.firstTrick,
		PlayedCards:          append([]shared.Card(nil), g.played...),
		NextRoundMultiplier:  g.multiplier,
		WaitingForTrickEnd:   g.waitingForTrickEnd,
		WaitingForRoundStart: g.waitingForRoundStart,
		WaitingForRoundEnd:   g.waitingForRoundEnd,
		WaitingForGameStart:  g.waitingForGameStart,
		IsPaused:             g.paused,
	}
	for i, p := range g.players {
		s.Players[i] = p.Clone()
	}
	if g.trumpCard != nil {
		c := *g.trumpCard
		s.TrumpCard = &c
	}
	if g.deck != nil {
		s.DeckRemaining = g.deck.Remaining()
	}
	if g.lastRound != nil {
		r := *g.lastRound
		s.LastRound = &r
	}
	return s
}
