package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"sync/atomic"

	"postboard/posts"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	cmap "github.com/orcaman/concurrent-map/v2"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// SendSocketFunc returns true if data was successfully sent
type SendSocketFunc func([]byte) bool
type ConnectedClient struct {
	fun SendSocketFunc
}

// Hub fans post change events out to every connected websocket client
type Hub struct {
	clients cmap.ConcurrentMap[string, *ConnectedClient]
	lastID  atomic.Uint64
}

func NewHub() *Hub {
	return &Hub{
		clients: cmap.New[*ConnectedClient](),
	}
}

// Notify implements posts.Notifier
func (h *Hub) Notify(event posts.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("marshal event: %v", err)
		return
	}
	var failed []string
	h.clients.IterCb(func(id string, c *ConnectedClient) {
		if !c.fun(data) {
			failed = append(failed, id)
		}
	})
	// Can't remove inside IterCb, it holds the shard lock
	for _, id := range failed {
		h.clients.Remove(id)
	}
}

// Count returns the number of connected clients
func (h *Hub) Count() int {
	return h.clients.Count()
}

func (h *Hub) ServeWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Print("upgrade:", err)
		return
	}
	defer conn.Close()

	// Setup client
	var isConnected atomic.Bool
	isConnected.Store(true)
	writeCh := make(chan []byte, 16)
	done := make(chan struct{})
	defer close(done)
	id := strconv.FormatUint(h.lastID.Add(1), 10)
	client := ConnectedClient{}
	client.fun = func(data []byte) bool {
		if !isConnected.Load() {
			return false
		}
		select {
		case writeCh <- data:
			return true
		default:
			// Slow reader, drop it
			return false
		}
	}
	h.clients.Set(id, &client)
	defer h.clients.Remove(id)

	// Single writer, gorilla connections don't support concurrent writes
	go func() {
		for {
			select {
			case data := <-writeCh:
				if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
					log.Println("write err:", err)
					isConnected.Store(false)
					return
				}
			case <-done:
				return
			}
		}
	}()
	// Main read cycle
	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			isConnected.Store(false)
			break
		}
		if string(message) == "ping" {
			client.fun([]byte("pong"))
		}
	}
}
