package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/raya-dev/raya/db"
	"github.com/raya-dev/raya/internal/handlers"
	"github.com/raya-dev/raya/internal/models"
	"github.com/stretchr/testify/require"
)

func dialDashboard(t *testing.T, srv *httptest.Server, token string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/ws/dashboard"
	header := http.Header{"Authorization": {"Bearer " + token}}

	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	return conn
}

func TestDashboardSocketSurvivesConcurrentBroadcasts(t *testing.T) {
	r := setupServer(t)
	token := registerUser(t, r, "founder@example.com", models.UserTypeStartup)

	var user models.User
	require.NoError(t, db.DB.Where("email = ?", "founder@example.com").First(&user).Error)

	srv := httptest.NewServer(r)
	defer srv.Close()

	conn := dialDashboard(t, srv, token)
	defer conn.Close()

	var refreshes atomic.Int64

	go func() {
		for {
			var msg map[string]string
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			if msg["type"] == "refresh" {
				refreshes.Add(1)
			}
		}
	}()

	// The handler registers the connection after the upgrade, so poll
	// until a broadcast reaches us.
	require.Eventually(t, func() bool {
		handlers.BroadcastDashboardRefresh(user.ID)
		return refreshes.Load() > 0
	}, 2*time.Second, 10*time.Millisecond)

	// All of these writes land on one connection and must serialize.
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				handlers.BroadcastDashboardRefresh(user.ID)
			}
		}()
	}
	wg.Wait()

	before := refreshes.Load()
	require.Eventually(t, func() bool {
		handlers.BroadcastDashboardRefresh(user.ID)
		return refreshes.Load() > before
	}, 2*time.Second, 10*time.Millisecond, "connection must stay usable after concurrent broadcasts")
}

func TestBroadcastToUserWithoutSockets(t *testing.T) {
	setupServer(t)

	// Must be a no-op rather than a panic.
	handlers.BroadcastDashboardRefresh(424242)
}
