package kds

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/coffee-shop/models"
	"github.com/yeremiapane/coffee-shop/utils"
)

func newHubServer(t *testing.T) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := strings.TrimPrefix(r.URL.Path, "/ws/")
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		RegisterClient(ws, role)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				break
			}
		}
		UnregisterClient(ws)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, role string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/" + role
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var msg Message
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func TestIsValidRole(t *testing.T) {
	for _, role := range []string{RoleBarista, RoleFloor, RoleStaff} {
		assert.True(t, IsValidRole(role), role)
	}
	assert.False(t, IsValidRole("chef"))
	assert.False(t, IsValidRole(""))
}

func TestBroadcastRoutesByRole(t *testing.T) {
	utils.InitLogger()
	srv := newHubServer(t)

	barista := dial(t, srv, RoleBarista)
	floor := dial(t, srv, RoleFloor)
	staff := dial(t, srv, RoleStaff)
	assert.Eventually(t, func() bool { return ClientCount() == 3 }, 2*time.Second, 10*time.Millisecond)

	BroadcastOrderPaid(models.Order{Reference: "abc", Status: models.OrderStatusPaid})
	BroadcastTableUpdate([]models.Table{{ID: 1, Number: 1, Capacity: 2}})

	msg := readMessage(t, barista)
	assert.Equal(t, EventOrderPaid, msg.Event)

	// The floor board skips order events and sees the table update first.
	msg = readMessage(t, floor)
	assert.Equal(t, EventTableUpdate, msg.Event)

	assert.Equal(t, EventOrderPaid, readMessage(t, staff).Event)
	assert.Equal(t, EventTableUpdate, readMessage(t, staff).Event)

	BroadcastStaffNotification("Payment received")
	msg = readMessage(t, barista)
	assert.Equal(t, EventStaffNotif, msg.Event)
	assert.Equal(t, "Payment received", msg.Data)

	barista.Close()
	floor.Close()
	staff.Close()
	assert.Eventually(t, func() bool { return ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}
