package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupName(t *testing.T) {
	id := uuid.MustParse("3f6c1e0a-8a1b-4c55-9d1e-2b9a6f0c1d2e")
	assert.Equal(t, "notifications_3f6c1e0a-8a1b-4c55-9d1e-2b9a6f0c1d2e", GroupName(id))
}

func TestHubDeliver(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()
	client := &Client{group: GroupName(userID), send: make(chan []byte, 1)}
	hub.register(client)
	assert.Equal(t, 1, hub.Connections(client.group))

	require.NoError(t, hub.Publish(context.Background(), userID, map[string]string{"title": "Campaign Started"}))

	frame := <-client.send
	var env map[string]interface{}
	require.NoError(t, json.Unmarshal(frame, &env))
	assert.Equal(t, "notification", env["type"])
	assert.Equal(t, "Campaign Started", env["data"].(map[string]interface{})["title"])

	// other users get nothing
	assert.Equal(t, 0, hub.Deliver(GroupName(uuid.New()), frame))

	// a full buffer drops instead of blocking
	assert.Equal(t, 1, hub.Deliver(client.group, frame))
	assert.Equal(t, 0, hub.Deliver(client.group, frame))

	hub.unregister(client)
	assert.Equal(t, 0, hub.Connections(client.group))
}

func TestHubServe(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := Upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Serve(context.Background(), conn, userID)
	}))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool {
		return hub.Connections(GroupName(userID)) == 1
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, hub.Publish(context.Background(), userID, map[string]string{"title": "hello"}))

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"notification","data":{"title":"hello"}}`, string(msg))

	conn.Close()
	require.Eventually(t, func() bool {
		return hub.Connections(GroupName(userID)) == 0
	}, 2*time.Second, 10*time.Millisecond)
}
