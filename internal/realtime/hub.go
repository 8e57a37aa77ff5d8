// Package realtime pushes notifications to connected websocket clients.
package realtime

//go:generate mockgen -source=hub.go -destination=../mocks/realtime_mocks.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"phishing-simulator-backend/internal/logger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 32
)

// Upgrader is shared by the websocket handlers; auth happens before the upgrade
var Upgrader = websocket.Upgrader{
	ReadBufferSize:  4 << 10,
	WriteBufferSize: 4 << 10,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Envelope is the frame written to clients
type Envelope struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Publisher delivers a notification payload to one user wherever they are connected
type Publisher interface {
	Publish(ctx context.Context, userID uuid.UUID, data interface{}) error
}

// GroupName is the per-user channel name
func GroupName(userID uuid.UUID) string {
	return fmt.Sprintf("notifications_%s", userID)
}

// Client is one websocket connection
type Client struct {
	group string
	conn  *websocket.Conn
	send  chan []byte
}

// Hub tracks connected clients by group and delivers frames to them
type Hub struct {
	mu     sync.RWMutex
	groups map[string]map[*Client]struct{}
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{groups: make(map[string]map[*Client]struct{})}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.groups[c.group] == nil {
		h.groups[c.group] = make(map[*Client]struct{})
	}
	h.groups[c.group][c] = struct{}{}
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients, ok := h.groups[c.group]
	if !ok {
		return
	}
	if _, ok := clients[c]; ok {
		delete(clients, c)
		close(c.send)
	}
	if len(clients) == 0 {
		delete(h.groups, c.group)
	}
}

// Connections returns the number of clients in a group
func (h *Hub) Connections(group string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.groups[group])
}

// Deliver writes a frame to every local client of the group; slow clients drop frames
func (h *Hub) Deliver(group string, frame []byte) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	delivered := 0
	for c := range h.groups[group] {
		select {
		case c.send <- frame:
			delivered++
		default:
			logger.New().WithField("group", group).Warn("dropping realtime frame for slow client")
		}
	}
	return delivered
}

// Publish implements Publisher for a single-instance deployment
func (h *Hub) Publish(_ context.Context, userID uuid.UUID, data interface{}) error {
	frame, err := json.Marshal(Envelope{Type: "notification", Data: data})
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}
	h.Deliver(GroupName(userID), frame)
	return nil
}

// Serve registers the connection under the user's group and pumps frames until it closes
func (h *Hub) Serve(ctx context.Context, conn *websocket.Conn, userID uuid.UUID) {
	client := &Client{
		group: GroupName(userID),
		conn:  conn,
		send:  make(chan []byte, sendBuffer),
	}
	h.register(client)

	log := logger.WithContext(ctx).WithField("group", client.group)
	log.Info("websocket client connected")

	done := make(chan struct{})
	go func() {
		defer close(done)
		client.readPump()
	}()

	client.writePump(ctx, done)
	h.unregister(client)
	_ = conn.Close()
	log.Info("websocket client disconnected")
}

// readPump discards inbound frames and keeps the read deadline alive
func (c *Client) readPump() {
	c.conn.SetReadLimit(4 << 10)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump(ctx context.Context, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case frame, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		case <-ctx.Done():
			_ = c.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
			return
		}
	}
}
