package handlers

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/raya-dev/raya/internal/types"
	"github.com/raya-dev/raya/internal/utils"
)

// wsClient wraps a connection with a write mutex. gorilla/websocket allows
// at most one concurrent writer per connection, and both broadcasts and the
// ping ticker write to the same socket.
type wsClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *wsClient) writeJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteJSON(v)
}

func (c *wsClient) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

var (
	userClients   = make(map[uint]map[*wsClient]bool)
	userClientsMu sync.RWMutex
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, allowed := range types.AllowedOrigins {
			if origin == allowed {
				return true
			}
		}
		return false
	},
}

// BroadcastDashboardRefresh tells every open dashboard of the given user
// to refetch. Called after any mutation touching the user's deals.
func BroadcastDashboardRefresh(userID uint) {
	userClientsMu.RLock()
	clients, exists := userClients[userID]
	if !exists || len(clients) == 0 {
		userClientsMu.RUnlock()
		return
	}

	// Copy so the registry lock is not held while writing to sockets.
	clientsCopy := make([]*wsClient, 0, len(clients))
	for client := range clients {
		clientsCopy = append(clientsCopy, client)
	}
	userClientsMu.RUnlock()

	for _, client := range clientsCopy {
		err := client.writeJSON(map[string]string{
			"type": "refresh",
		})

		if err != nil {
			log.Printf("Failed to broadcast refresh: %v", err)
			removeClient(userID, client)
			client.conn.Close()
		}
	}
}

func addClient(userID uint, client *wsClient) {
	userClientsMu.Lock()
	defer userClientsMu.Unlock()

	if userClients[userID] == nil {
		userClients[userID] = make(map[*wsClient]bool)
	}

	userClients[userID][client] = true
}

func removeClient(userID uint, client *wsClient) {
	userClientsMu.Lock()
	defer userClientsMu.Unlock()

	if clients, exists := userClients[userID]; exists {
		delete(clients, client)
		if len(clients) == 0 {
			delete(userClients, userID)
		}
	}
}

// DashboardSocket upgrades the connection and keeps it registered until
// the client goes away. The server only ever pushes refresh events;
// client messages are drained and discarded.
func DashboardSocket(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)

	if err != nil {
		log.Printf("Failed to upgrade websocket: %v", err)
		return
	}

	client := &wsClient{conn: conn}

	addClient(userID, client)

	defer func() {
		removeClient(userID, client)
		conn.Close()
	}()

	conn.SetReadLimit(maxMessageSize)

	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		log.Printf("Failed to set read deadline: %v", err)
		return
	}

	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})

	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := client.ping(); err != nil {
				return
			}
		}
	}
}
