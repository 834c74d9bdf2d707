package game

import (
	"math/rand/v2"

	"sueca-game/internal/ai"
	"sueca-game/internal/shared"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GameTarget is the number of victories that ends a game.
const GameTarget = 4

// DefaultNames are used for missing player names.
var DefaultNames = [4]string{"Player 1", "Player 2", "Player 3", "Player 4"}

// Config holds the construction parameters of a game.
type Config struct {
	Names         []string
	DealingMethod DealingMethod
	Difficulty    ai.Difficulty
	Seating       SeatingPolicy
	TieBreak      TieBreak
	Rand          *rand.Rand  // nil uses the global source
	Drawer        Drawer      // setup draws; nil draws from fresh decks
	Logger        *zap.Logger // nil disables logging
}

// RoundResult describes how the last finished round was scored.
type RoundResult struct {
	Round     int              `json:"round"`
	Points    shared.TeamScore `json:"points"`
	Winner    shared.TeamEnum  `json:"winner"` // NoTeam on a 60-60 draw
	Victories int              `json:"victories"`
	Draw      bool             `json:"draw"`
}

// Game is the Sueca state machine. It is not safe for concurrent use:
// callers serialize mutations and hand GetState snapshots to readers.
type Game struct {
	ID      string
	players [4]*shared.Player
	seating [4]int

	cfg     Config
	baseLog *zap.Logger
	log     *zap.Logger
	rng     *rand.Rand
	draw    Drawer

	deck            *shared.Deck
	currentPlayer   int
	dealer          int
	trumpSuit       shared.Suit
	trumpCard       *shared.Card
	trick           *shared.Trick
	scores          shared.TeamScore
	gameScore       shared.TeamScore
	round           int
	trickSeq        int
	isGameOver      bool
	abandoned       bool
	winner          shared.TeamEnum
	lastTrickWinner int
	played          []shared.Card
	firstTrick      bool
	multiplier      int
	lastRound       *RoundResult
	signals         *ai.SignalLog

	waitingForTrickEnd   bool
	waitingForRoundStart bool
	waitingForRoundEnd   bool
	waitingForGameStart  bool
	paused               bool
}

// New seats the players, draws for the dealer and deals the first round.
// The game then waits for StartRound so the trump can be shown.
func New(cfg Config) *Game {
	if cfg.DealingMethod == "" {
		cfg.DealingMethod = MethodA
	}
	if cfg.Difficulty == "" {
		cfg.Difficulty = ai.Medium
	}
	if cfg.Seating == "" {
		cfg.Seating = SeatingFixed
	}
	if cfg.TieBreak == "" {
		cfg.TieBreak = TieBreakRedraw
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	draw := cfg.Drawer
	if draw == nil {
		draw = DeckDrawer(cfg.Rand)
	}

	g := &Game{
		cfg:     cfg,
		baseLog: logger,
		rng:     cfg.Rand,
		draw:    draw,
		signals: ai.NewSignalLog(),
	}

	names := DefaultNames
	for i := 0; i < len(cfg.Names) && i < 4; i++ {
		if cfg.Names[i] != "" {
			names[i] = cfg.Names[i]
		}
	}
	g.seating = SeatPlayers(cfg.Seating, draw, cfg.TieBreak)
	for seat, nameIdx := range g.seating {
		g.players[seat] = shared.NewPlayer(uuid.NewString(), names[nameIdx], seat)
	}

	g.startGame()
	return g
}

// startGame resets the game-scoped state and deals round 1.
func (g *Game) startGame() {
	g.ID = uuid.NewString()
	g.log = g.baseLog.With(zap.String("game", g.ID))
	g.gameScore.Reset()
	g.round = 0
	g.multiplier = 1
	g.isGameOver = false
	g.abandoned = false
	g.winner = shared.NoTeam
	g.lastRound = nil
	g.waitingForGameStart = false
	g.waitingForRoundEnd = false
	g.paused = false

	g.dealer = SelectDealer([]int{0, 1, 2, 3}, g.draw, g.cfg.TieBreak)
	g.log.Info("game started",
		zap.Int("dealer", g.dealer),
		zap.String("dealing_method", string(g.cfg.DealingMethod)),
		zap.String("difficulty", string(g.cfg.Difficulty)))
	g.beginRound()
}

// beginRound deals a fresh deck around the current dealer.
func (g *Game) beginRound() {
	g.round++
	g.scores.Reset()
	g.deck = shared.NewDeckWithRand(g.rng)
	g.deck.Shuffle()
	g.deck.CutRandom()

	res, err := Deal(g.deck, g.dealer, g.cfg.DealingMethod)
	if err != nil {
		// A fresh deck always deals; fall back to method A if the config is bad.
		g.log.Error("deal failed, using method A", zap.Error(err))
		g.cfg.DealingMethod = MethodA
		g.deck = shared.NewDeckWithRand(g.rng)
		g.deck.Shuffle()
		g.deck.CutRandom()
		if res, err = Deal(g.deck, g.dealer, MethodA); err != nil {
			g.log.Error("redeal failed", zap.Error(err))
			return
		}
	}
	for seat, p := range g.players {
		p.Hand = make([]shared.Card, 0, CardsPerHand)
		p.AddCards(res.Hands[seat])
	}
	g.trumpSuit = res.Trump
	trumpCard := res.TrumpCard
	g.trumpCard = &trumpCard

	leader := (g.dealer + 1) % 4
	g.trick = shared.NewTrick(leader)
	g.currentPlayer = leader
	g.lastTrickWinner = -1
	g.played = nil
	g.firstTrick = true
	g.trickSeq = 1
	g.signals.Reset()
	g.waitingForTrickEnd = false
	g.waitingForRoundEnd = false
	g.waitingForRoundStart = g.round == 1

	g.log.Info("round dealt",
		zap.Int("round", g.round),
		zap.Int("dealer", g.dealer),
		zap.String("trump", trumpCard.Code()))
}

func (g *Game) gated() bool {
	return g.waitingForTrickEnd || g.waitingForRoundStart || g.waitingForRoundEnd || g.waitingForGameStart
}

// CanPlayCard reports whether seat may play the card at handIndex now.
func (g *Game) CanPlayCard(seat, handIndex int) bool {
	if g.isGameOver || g.paused || g.gated() {
		return false
	}
	if seat != g.currentPlayer || seat < 0 || seat > 3 {
		return false
	}
	hand := g.players[seat].Hand
	if handIndex < 0 || handIndex >= len(hand) {
		return false
	}
	if len(g.trick.Cards) == 0 {
		return true
	}
	lead := g.trick.LeadSuit()
	return hand[handIndex].Suit == lead || !g.players[seat].HasSuit(lead)
}

// PlayCard plays the card at handIndex for seat. It returns false and leaves
// the state untouched when the play is not allowed.
func (g *Game) PlayCard(seat, handIndex int) bool {
	if !g.CanPlayCard(seat, handIndex) {
		g.log.Debug("rejected play",
			zap.Int("seat", seat),
			zap.Int("index", handIndex),
			zap.Int("current_player", g.currentPlayer))
		return false
	}
	player := g.players[seat]
	card, _ := player.RemoveAt(handIndex)
	g.trick.AddCard(card, seat)
	g.played = append(g.played, card)
	g.log.Debug("card played", zap.Int("seat", seat), zap.String("card", card.Code()))

	if g.trick.IsComplete() {
		g.endTrick()
	} else {
		g.currentPlayer = (seat + 1) % 4
	}
	return true
}

// endTrick scores a complete trick and waits for FinishTrick.
func (g *Game) endTrick() {
	winner := g.trick.DetermineWinner(g.trumpSuit)
	if winner < 0 {
		g.log.Error("trick without winner", zap.Int("cards", len(g.trick.Cards)))
		return
	}
	points := g.trick.Points()
	team := shared.TeamOf(winner)
	g.scores.Add(team, points)
	g.lastTrickWinner = winner
	g.currentPlayer = winner
	g.waitingForTrickEnd = true

	g.log.Info("trick won",
		zap.Int("trick", g.trickSeq),
		zap.Int("seat", winner),
		zap.Int("team", int(team)),
		zap.Int("points", points))
}

// FinishTrick acknowledges a complete trick. The round ends when seat 0 has
// no cards left, otherwise the winner leads the next trick.
func (g *Game) FinishTrick() bool {
	if !g.waitingForTrickEnd {
		return false
	}
	g.waitingForTrickEnd = false
	if len(g.players[0].Hand) == 0 {
		g.endRound()
		return true
	}
	g.trick = shared.NewTrick(g.lastTrickWinner)
	g.currentPlayer = g.lastTrickWinner
	g.firstTrick = false
	g.trickSeq++
	return true
}

// RoundVictories returns the victory points earned with points in a round:
// 1 for 61-90, 2 for 91-119, 4 for all 120, 0 otherwise.
func RoundVictories(points int) int {
	switch {
	case points >= shared.TotalPoints:
		return 4
	case points >= 91:
		return 2
	case points >= 61:
		return 1
	default:
		return 0
	}
}

func (g *Game) endRound() {
	res := RoundResult{Round: g.round, Points: g.scores}
	if g.scores.Team1 == 60 && g.scores.Team2 == 60 {
		res.Draw = true
		g.multiplier = 2
		g.log.Info("round drawn, next round counts double", zap.Int("round", g.round))
	} else {
		for _, team := range []shared.TeamEnum{shared.Team1, shared.Team2} {
			if v := RoundVictories(g.scores.Of(team)); v > 0 {
				res.Winner = team
				res.Victories = v * g.multiplier
			}
		}
		g.multiplier = 1
		g.gameScore.Add(res.Winner, res.Victories)
		g.log.Info("round won",
			zap.Int("round", g.round),
			zap.Int("team", int(res.Winner)),
			zap.Int("victories", res.Victories),
			zap.Int("team1_points", g.scores.Team1),
			zap.Int("team2_points", g.scores.Team2))
	}
	g.lastRound = &res

	for _, team := range []shared.TeamEnum{shared.Team1, shared.Team2} {
		if g.gameScore.Of(team) >= GameTarget {
			g.isGameOver = true
			g.winner = team
			g.waitingForGameStart = true
			g.log.Info("game over",
				zap.Int("winner", int(team)),
				zap.Int("team1", g.gameScore.Team1),
				zap.Int("team2", g.gameScore.Team2))
			return
		}
	}
	g.waitingForRoundEnd = true
}

// ContinueToNextRound acknowledges a finished round and deals the next one
// with the dealer moved one seat on.
func (g *Game) ContinueToNextRound() bool {
	if !g.waitingForRoundEnd || g.isGameOver {
		return false
	}
	g.waitingForRoundEnd = false
	g.dealer = (g.dealer + 1) % 4
	g.beginRound()
	return true
}

// StartRound releases the gate that shows the first trump of a game.
func (g *Game) StartRound() bool {
	if !g.waitingForRoundStart {
		return false
	}
	g.waitingForRoundStart = false
	return true
}

// StartNewGame starts over after a finished or abandoned game.
func (g *Game) StartNewGame() bool {
	if !g.isGameOver {
		return false
	}
	g.startGame()
	return true
}

// PauseGame stops plays until ResumeGame.
func (g *Game) PauseGame() {
	if g.isGameOver {
		return
	}
	g.paused = true
}

// ResumeGame lifts a pause.
func (g *Game) ResumeGame() {
	g.paused = false
}

// QuitGame abandons the game without a winner.
func (g *Game) QuitGame() {
	if g.isGameOver {
		return
	}
	g.isGameOver = true
	g.abandoned = true
	g.winner = shared.NoTeam
	g.paused = false
	g.waitingForTrickEnd = false
	g.waitingForRoundStart = false
	g.waitingForRoundEnd = false
	g.waitingForGameStart = true
	g.log.Info("game abandoned", zap.Int("round", g.round))
}

// UpdatePlayerNames renames the players. names are in the order given to New,
// so a name follows its player to whatever seat the setup draw gave them.
// Empty names are left unchanged.
func (g *Game) UpdatePlayerNames(names []string) {
	for seat, idx := range g.seating {
		if idx < len(names) && names[idx] != "" {
			g.players[seat].Name = names[idx]
		}
	}
}

// AIView returns what seat can observe when it must act. Signals is a copy
// of the game's log; signals are only recorded when a lead is played.
func (g *Game) AIView(seat int) ai.View {
	v := ai.View{
		Seat:       seat,
		Trump:      g.trumpSuit,
		Played:     append([]shared.Card(nil), g.played...),
		Trick:      append([]shared.PlayedCard(nil), g.trick.Cards...),
		Difficulty: g.cfg.Difficulty,
		Signals:    g.signals.Clone(),
		TrickSeq:   g.trickSeq,
	}
	if seat >= 0 && seat < 4 {
		v.Hand = append([]shared.Card(nil), g.players[seat].Hand...)
	}
	return v
}

// ChooseAICard runs the local heuristic for seat and returns a hand index,
// or ai.NoCard when the seat has nothing to play.
func (g *Game) ChooseAICard(seat int) int {
	if seat < 0 || seat > 3 {
		return ai.NoCard
	}
	return ai.Choose(g.AIView(seat), g.rng)
}

// PlayChosen plays handIndex for seat, falling back to the first playable
// card when the choice is rejected. An accepted hard-tier lead records the
// signal it carries for the partner.
func (g *Game) PlayChosen(seat, handIndex int) bool {
	view := g.AIView(seat)
	leading := len(g.trick.Cards) == 0
	if g.PlayCard(seat, handIndex) {
		if leading {
			g.recordLeadSignal(view, view.Hand[handIndex])
		}
		return true
	}
	g.log.Warn("chosen card not playable, falling back", zap.Int("seat", seat), zap.Int("index", handIndex))
	return g.PlayFirstLegal(seat)
}

func (g *Game) recordLeadSignal(view ai.View, card shared.Card) {
	if g.cfg.Difficulty != ai.Hard {
		return
	}
	kind, ok := ai.LeadSignal(view, card)
	if !ok {
		return
	}
	g.signals.Add(ai.Signal{Seat: view.Seat, Kind: kind, TrickSeq: view.TrickSeq})
	g.log.Debug("lead signal", zap.Int("seat", view.Seat), zap.String("kind", kind.String()), zap.String("card", card.Code()))
}

// PlayFirstLegal scans the hand left to right and plays the first card the
// game accepts.
func (g *Game) PlayFirstLegal(seat int) bool {
	if seat < 0 || seat > 3 {
		return false
	}
	for i := range g.players[seat].Hand {
		if g.PlayCard(seat, i) {
			return true
		}
	}
	return false
}

// CurrentPlayer returns the seat expected to act.
func (g *Game) CurrentPlayer() int { return g.currentPlayer }

// IsGameOver reports whether the game has ended.
func (g *Game) IsGameOver() bool { return g.isGameOver }

// IsAbandoned reports whether the game ended through QuitGame.
func (g *Game) IsAbandoned() bool { return g.abandoned }
