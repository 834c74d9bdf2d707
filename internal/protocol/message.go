package protocol

import (
	"encoding/json"

	"sueca-game/internal/shared"
)

// Message represents a generic WebSocket message structure.
type Message struct {
	Type    string          `json:"type"`              // Type of the message (e.g., "create_game", "play_card")
	Payload json.RawMessage `json:"payload,omitempty"` // Raw JSON payload, allows flexible structures
}

// Message types exchanged over the websocket.
const (
	TypeCreateGame    = "create_game"
	TypePlayCard      = "play_card"
	TypeFinishTrick   = "finish_trick"
	TypeContinueRound = "continue_round"
	TypeStartRound    = "start_round"
	TypeNewGame       = "new_game"
	TypePause         = "pause"
	TypeResume        = "resume"
	TypeQuit          = "quit"
	TypeUpdateNames   = "update_names"
	TypePing          = "ping"

	TypeGameCreated = "game_created"
	TypeGameState   = "game_state"
	TypeError       = "error"
	TypePong        = "pong"
)

// --- Client -> Server Payload Structs ---

type CreateGamePayload struct {
	Names         []string `json:"names"`
	DealingMethod string   `json:"dealing_method"` // "A" or "B"
	Difficulty    string   `json:"difficulty"`     // "easy", "medium" or "hard"
}

type PlayCardPayload struct {
	Index int `json:"index"`
}

type UpdateNamesPayload struct {
	Names []string `json:"names"`
}

// --- Server -> Client Payload Structs ---

type GameCreatedPayload struct {
	GameID string `json:"game_id"`
}

type PlayerInfo struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Seat     int             `json:"seat"`
	Position shared.Position `json:"position"`
	Team     shared.TeamEnum `json:"team"`
	Hand     []shared.Card   `json:"hand,omitempty"` // only the receiving seat's hand is filled
	Cards    int             `json:"cards"`
}

type GameStatePayload struct {
	GameID               string              `json:"game_id"`
	Players              []PlayerInfo        `json:"players"`
	CurrentPlayer        int                 `json:"current_player"`
	Dealer               int                 `json:"dealer"`
	TrumpSuit            shared.Suit         `json:"trump_suit"`
	TrumpCard            *shared.Card        `json:"trump_card,omitempty"`
	Trick                []shared.PlayedCard `json:"trick"`
	LeadSuit             shared.Suit         `json:"lead_suit,omitempty"`
	TrickLeader          int                 `json:"trick_leader"`
	Scores               shared.TeamScore    `json:"scores"`
	GameScore            shared.TeamScore    `json:"game_score"`
	Round                int                 `json:"round"`
	IsGameOver           bool                `json:"is_game_over"`
	Winner               shared.TeamEnum     `json:"winner,omitempty"`
	LastTrickWinner      int                 `json:"last_trick_winner"`
	DealingMethod        string              `json:"dealing_method"`
	IsFirstTrick         bool                `json:"is_first_trick"`
	WaitingForTrickEnd   bool                `json:"waiting_for_trick_end"`
	WaitingForRoundStart bool                `json:"waiting_for_round_start"`
	WaitingForRoundEnd   bool                `json:"waiting_for_round_end"`
	WaitingForGameStart  bool                `json:"waiting_for_game_start"`
	IsPaused             bool                `json:"is_paused"`
	NextRoundMultiplier  int                 `json:"next_round_multiplier"`
	TrickNumber          int                 `json:"trick_number"`
	Difficulty           string              `json:"difficulty"`
	Abandoned            bool                `json:"abandoned,omitempty"`
	LastRound            *RoundSummary       `json:"last_round,omitempty"`
}

// RoundSummary reports the scoring of the last finished round.
type RoundSummary struct {
	Round     int              `json:"round"`
	Points    shared.TeamScore `json:"points"`
	Winner    shared.TeamEnum  `json:"winner"`
	Victories int              `json:"victories"`
	Draw      bool             `json:"draw"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// --- Remote AI service ---

// AIPlayRequest is the body of POST /play. Cards are codes such as "AS".
type AIPlayRequest struct {
	Hand    []string   `json:"hand"`
	Trick   []string   `json:"trick"`
	Trump   string     `json:"trump"` // C, D, H or S
	Played  []string   `json:"played,omitempty"`
	History [][]string `json:"history,omitempty"`

	Difficulty string `json:"difficulty,omitempty"` // served /play only; defaults to medium
}

// AIPlayResponse is the answer of POST /play.
type AIPlayResponse struct {
	Play   string `json:"play"`
	Reason string `json:"reason,omitempty"`
}

// Helper function to create a JSON message
func NewMessage(msgType string, payload interface{}) ([]byte, error) {
	if payload == nil {
		return json.Marshal(Message{Type: msgType})
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	msg := Message{
		Type:    msgType,
		Payload: payloadBytes,
	}
	return json.Marshal(msg)
}
