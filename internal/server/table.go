package server

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"sueca-game/internal/ai"
	"sueca-game/internal/database"
	"sueca-game/internal/game"
	"sueca-game/internal/protocol"

	"go.uber.org/zap"
)

// humanSeat is the seat of the connected player; seats 1-3 are AI.
const humanSeat = 0

const tableQueueSize = 16

// ResultStore persists finished games.
type ResultStore interface {
	Insert(result database.GameResult) error
}

// TableConfig holds the collaborators of a table.
type TableConfig struct {
	Defaults game.Config
	Chooser  ai.CardChooser // nil uses the local heuristic
	Store    ResultStore    // nil disables persistence
	Send     func(message []byte)
	Logger   *zap.Logger
}

// Table runs one game for one client. Actions are applied one at a time by
// the table goroutine; the mutex also guards State readers.
type Table struct {
	mu       sync.Mutex
	game     *game.Game
	recorded bool

	defaults game.Config
	chooser  ai.CardChooser
	store    ResultStore
	send     func([]byte)
	log      *zap.Logger

	actions chan protocol.Message
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewTable(cfg TableConfig) *Table {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	chooser := cfg.Chooser
	if chooser == nil {
		chooser = ai.LocalChooser{}
	}
	send := cfg.Send
	if send == nil {
		send = func([]byte) {}
	}
	defaults := cfg.Defaults
	defaults.Logger = logger
	return &Table{
		defaults: defaults,
		chooser:  chooser,
		store:    cfg.Store,
		send:     send,
		log:      logger,
		actions:  make(chan protocol.Message, tableQueueSize),
		done:     make(chan struct{}),
	}
}

// Start launches the goroutine that applies queued actions until ctx is
// cancelled or Close is called.
func (t *Table) Start(ctx context.Context) {
	ctx, t.cancel = context.WithCancel(ctx)
	go t.run(ctx)
}

func (t *Table) run(ctx context.Context) {
	defer close(t.done)
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-t.actions:
			t.Handle(ctx, msg)
		}
	}
}

// Enqueue hands an action to the table goroutine. It reports false when the
// queue is full.
func (t *Table) Enqueue(msg protocol.Message) bool {
	select {
	case t.actions <- msg:
		return true
	default:
		return false
	}
}

// Close stops the table goroutine and waits for the action in progress.
func (t *Table) Close() {
	if t.cancel != nil {
		t.cancel()
		<-t.done
	}
}

// State returns a snapshot of the current game.
func (t *Table) State() (game.State, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.game == nil {
		return game.State{}, false
	}
	return t.game.GetState(), true
}

// Handle applies one client message, then lets the AI seats play until the
// human must act or the game waits for an acknowledgement.
func (t *Table) Handle(ctx context.Context, msg protocol.Message) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if msg.Type == protocol.TypeCreateGame {
		t.createGame(ctx, msg)
		return
	}
	if t.game == nil {
		t.sendError("No game in progress.")
		return
	}

	ok := true
	switch msg.Type {
	case protocol.TypePlayCard:
		var payload protocol.PlayCardPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			t.log.Debug("bad play_card payload", zap.Error(err))
			t.sendError("Invalid play_card message format.")
			return
		}
		ok = t.game.PlayCard(humanSeat, payload.Index)
	case protocol.TypeFinishTrick:
		ok = t.game.FinishTrick()
	case protocol.TypeContinueRound:
		ok = t.game.ContinueToNextRound()
	case protocol.TypeStartRound:
		ok = t.game.StartRound()
	case protocol.TypeNewGame:
		if ok = t.game.StartNewGame(); ok {
			t.recorded = false
			t.sendMessage(protocol.TypeGameCreated, protocol.GameCreatedPayload{GameID: t.game.ID})
		}
	case protocol.TypePause:
		t.game.PauseGame()
	case protocol.TypeResume:
		t.game.ResumeGame()
	case protocol.TypeQuit:
		t.game.QuitGame()
	case protocol.TypeUpdateNames:
		var payload protocol.UpdateNamesPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			t.sendError("Invalid update_names message format.")
			return
		}
		t.game.UpdatePlayerNames(payload.Names)
	default:
		t.log.Info("unknown message type", zap.String("type", msg.Type))
		t.sendError("Unknown message type.")
		return
	}
	if !ok {
		t.sendError(fmt.Sprintf("Action %s is not allowed now.", msg.Type))
		return
	}

	t.broadcastState()
	t.advance(ctx)
	t.record()
}

func (t *Table) createGame(ctx context.Context, msg protocol.Message) {
	if t.game != nil && !t.game.IsGameOver() {
		t.sendError("A game is already in progress.")
		return
	}
	var payload protocol.CreateGamePayload
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			t.sendError("Invalid create_game message format.")
			return
		}
	}

	cfg := t.defaults
	cfg.Names = payload.Names
	if payload.DealingMethod != "" {
		m, err := game.ParseDealingMethod(payload.DealingMethod)
		if err != nil {
			t.sendError("Invalid dealing method.")
			return
		}
		cfg.DealingMethod = m
	}
	if payload.Difficulty != "" {
		d, err := ai.ParseDifficulty(payload.Difficulty)
		if err != nil {
			t.sendError("Invalid difficulty.")
			return
		}
		cfg.Difficulty = d
	}

	t.game = game.New(cfg)
	t.recorded = false
	t.log.Info("game created", zap.String("game", t.game.ID))

	t.sendMessage(protocol.TypeGameCreated, protocol.GameCreatedPayload{GameID: t.game.ID})
	t.broadcastState()
	t.advance(ctx)
}

// advance plays the AI seats in turn order.
func (t *Table) advance(ctx context.Context) {
	for {
		st := t.game.GetState()
		if st.IsGameOver || st.IsPaused || st.IsWaiting() || st.CurrentPlayer == humanSeat {
			return
		}
		seat := st.CurrentPlayer

		var played bool
		idx, err := t.chooser.ChooseCard(ctx, t.game.AIView(seat))
		if err != nil {
			t.log.Warn("ai seat has no choice, playing first legal card", zap.Int("seat", seat), zap.Error(err))
			played = t.game.PlayFirstLegal(seat)
		} else {
			played = t.game.PlayChosen(seat, idx)
		}
		if !played {
			t.log.Error("ai seat could not play", zap.Int("seat", seat), zap.String("game", st.ID))
			return
		}
		t.broadcastState()
	}
}

// record stores a finished game once. Abandoned games are not stored.
func (t *Table) record() {
	if t.store == nil || t.recorded {
		return
	}
	st := t.game.GetState()
	if !st.IsGameOver || st.Abandoned {
		return
	}
	t.recorded = true
	if err := t.store.Insert(resultFromState(st, time.Now())); err != nil {
		t.log.Error("failed to store result", zap.String("game", st.ID), zap.Error(err))
		return
	}
	t.log.Info("result stored", zap.String("game", st.ID), zap.Int("winner", int(st.Winner)))
}

func (t *Table) broadcastState() {
	t.sendMessage(protocol.TypeGameState, statePayload(t.game.GetState(), humanSeat))
}

func (t *Table) sendError(message string) {
	t.sendMessage(protocol.TypeError, protocol.ErrorPayload{Message: message})
}

func (t *Table) sendMessage(msgType string, payload interface{}) {
	msgBytes, err := protocol.NewMessage(msgType, payload)
	if err != nil {
		t.log.Error("failed to encode message", zap.String("type", msgType), zap.Error(err))
		return
	}
	t.send(msgBytes)
}
