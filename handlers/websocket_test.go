package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"postboard/posts"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHubServer(t *testing.T) (*Hub, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	hub := NewHub()
	router := gin.New()
	router.GET("/live", hub.ServeWS)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return hub, "ws" + strings.TrimPrefix(server.URL, "http") + "/live"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHub_NotifyBroadcasts(t *testing.T) {
	hub, url := newHubServer(t)
	first := dial(t, url)
	second := dial(t, url)
	require.Eventually(t, func() bool { return hub.Count() == 2 }, time.Second, 10*time.Millisecond)

	hub.Notify(posts.Event{Type: posts.EventCreated, ID: "abc"})

	for _, conn := range []*websocket.Conn{first, second} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)
		var event posts.Event
		require.NoError(t, json.Unmarshal(data, &event))
		assert.Equal(t, posts.Event{Type: posts.EventCreated, ID: "abc"}, event)
	}
}

func TestHub_PingPong(t *testing.T) {
	_, url := newHubServer(t)
	conn := dial(t, url)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("ping")))
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "pong", string(data))
}

func TestHub_ClientRemovedOnClose(t *testing.T) {
	hub, url := newHubServer(t)
	conn := dial(t, url)
	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 10*time.Millisecond)

	conn.Close()

	require.Eventually(t, func() bool { return hub.Count() == 0 }, time.Second, 10*time.Millisecond)
	// Nobody left to notify
	hub.Notify(posts.Event{Type: posts.EventDeleted, ID: "abc"})
}
