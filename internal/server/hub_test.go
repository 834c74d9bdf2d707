package server

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sueca-game/internal/ai"
	"sueca-game/internal/protocol"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

func readUntil(t *testing.T, conn *websocket.Conn, typ string) protocol.Message {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	for {
		_, b, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("waiting for %s: %v", typ, err)
		}
		var m protocol.Message
		if err := json.Unmarshal(b, &m); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if m.Type == typ {
			return m
		}
	}
}

func TestHub_WebsocketSession(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := &memStore{}
	hub := NewHub(HubConfig{
		Chooser: ai.FallbackChooser{Fallback: ai.LocalChooser{}, Logger: zap.NewNop()},
		Store:   store,
	})
	go hub.Run(ctx)

	srv := httptest.NewServer(NewRouter(RouterConfig{Hub: hub}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	send := func(typ string, payload interface{}) {
		b, err := protocol.NewMessage(typ, payload)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	send(protocol.TypePing, nil)
	readUntil(t, conn, protocol.TypePong)

	send(protocol.TypeCreateGame, protocol.CreateGamePayload{Names: []string{"Ana"}})
	var created protocol.GameCreatedPayload
	if err := json.Unmarshal(readUntil(t, conn, protocol.TypeGameCreated).Payload, &created); err != nil || created.GameID == "" {
		t.Fatalf("game_created = %+v, %v", created, err)
	}
	var st protocol.GameStatePayload
	if err := json.Unmarshal(readUntil(t, conn, protocol.TypeGameState).Payload, &st); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	if st.GameID != created.GameID || !st.WaitingForRoundStart {
		t.Errorf("state = %+v", st)
	}

	send(protocol.TypeFinishTrick, nil)
	readUntil(t, conn, protocol.TypeError)
}
