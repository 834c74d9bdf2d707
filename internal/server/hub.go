package server

import (
	"context"
	"sync"

	"sueca-game/internal/ai"
	"sueca-game/internal/game"
	"sueca-game/internal/protocol"

	"go.uber.org/zap"
)

// clientMessage is a helper struct to pass messages along with the client reference.
type clientMessage struct {
	client  *Client
	message protocol.Message
}

// HubConfig holds what the hub hands to every table.
type HubConfig struct {
	Defaults game.Config
	Chooser  ai.CardChooser
	Store    ResultStore
	Logger   *zap.Logger
}

// Hub manages active WebSocket connections and the table of each client.
type Hub struct {
	clients        map[*Client]bool
	tables         map[*Client]*Table
	processMessage chan clientMessage
	register       chan *Client
	unregister     chan *Client
	stopped        chan struct{}
	clientMu       sync.RWMutex

	cfg HubConfig
	log *zap.Logger
}

// NewHub creates a new Hub instance.
func NewHub(cfg HubConfig) *Hub {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Hub{
		clients:        make(map[*Client]bool),
		tables:         make(map[*Client]*Table),
		processMessage: make(chan clientMessage),
		register:       make(chan *Client),
		unregister:     make(chan *Client),
		stopped:        make(chan struct{}),
		cfg:            cfg,
		log:            cfg.Logger,
	}
}

// Run starts the Hub's main loop. It returns when ctx is cancelled, after
// closing every table.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		h.clientMu.Lock()
		tables := h.tables
		h.tables = make(map[*Client]*Table)
		h.clientMu.Unlock()
		for _, t := range tables {
			t.Close()
		}
		close(h.stopped)
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			table := NewTable(TableConfig{
				Defaults: h.cfg.Defaults,
				Chooser:  h.cfg.Chooser,
				Store:    h.cfg.Store,
				Send: func(message []byte) {
					h.sendMessageToClient(client.ID, message)
				},
				Logger: h.log.With(zap.String("client", client.ID)),
			})
			table.Start(ctx)

			h.clientMu.Lock()
			h.clients[client] = true
			h.tables[client] = table
			h.clientMu.Unlock()
			h.log.Info("client connected", zap.String("client", client.ID), zap.String("addr", client.conn.RemoteAddr().String()))

		case client := <-h.unregister:
			h.clientMu.Lock()
			_, clientExists := h.clients[client]
			table := h.tables[client]
			delete(h.clients, client)
			delete(h.tables, client)
			h.clientMu.Unlock()

			if !clientExists {
				continue
			}
			// Stop the table before closing send so it never writes to a closed channel.
			if table != nil {
				table.Close()
			}
			close(client.send)
			h.log.Info("client disconnected", zap.String("client", client.ID))

		case clientMsg := <-h.processMessage:
			h.handleMessage(clientMsg.client, clientMsg.message)
		}
	}
}

// handleMessage processes a message received from a client.
func (h *Hub) handleMessage(client *Client, msg protocol.Message) {
	if msg.Type == protocol.TypePing {
		pongMsg, _ := protocol.NewMessage(protocol.TypePong, nil)
		h.sendMessageToClient(client.ID, pongMsg)
		return
	}

	h.clientMu.RLock()
	table, ok := h.tables[client]
	h.clientMu.RUnlock()
	if !ok {
		h.log.Info("message from unknown client", zap.String("client", client.ID), zap.String("type", msg.Type))
		return
	}
	if !table.Enqueue(msg) {
		h.log.Warn("table queue full, dropping message", zap.String("client", client.ID), zap.String("type", msg.Type))
		h.sendErrorToClient(client, "Too many pending actions.")
	}
}

// sendMessageToClient delivers a message through the client's send buffer.
func (h *Hub) sendMessageToClient(clientID string, message []byte) {
	h.clientMu.RLock()
	// Find the client pointer using the ID
	var targetClient *Client
	for client := range h.clients {
		if client.ID == clientID {
			targetClient = client
			break
		}
	}
	h.clientMu.RUnlock()

	if targetClient == nil {
		h.log.Debug("client gone, message dropped", zap.String("client", clientID))
		return
	}
	// Non-blocking send so a slow client never stalls a table.
	select {
	case targetClient.send <- message:
	default:
		h.log.Warn("send buffer full, disconnecting client", zap.String("client", clientID))
		go func() {
			select {
			case h.unregister <- targetClient:
			case <-h.stopped:
			}
		}()
	}
}

// sendErrorToClient sends a generic error message to a specific client.
func (h *Hub) sendErrorToClient(client *Client, errorMsg string) {
	msgBytes, err := protocol.NewMessage(protocol.TypeError, protocol.ErrorPayload{Message: errorMsg})
	if err != nil {
		h.log.Error("failed to encode error", zap.String("client", client.ID), zap.Error(err))
		return
	}
	h.sendMessageToClient(client.ID, msgBytes)
}
