package kds

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/yeremiapane/coffee-shop/models"
	"github.com/yeremiapane/coffee-shop/utils"
)

// Event types
const (
	EventTableUpdate          = "table_update"
	EventReservationCreated   = "reservation_created"
	EventReservationCancelled = "reservation_cancelled"
	EventOrderPaid            = "order_paid"
	EventStaffNotif           = "staff_notification"
)

// Roles allowed to subscribe. The barista display shows paid orders, the floor
// board shows table availability, staff get everything.
const (
	RoleBarista = "barista"
	RoleFloor   = "floor"
	RoleStaff   = "staff"
)

const writeWait = 5 * time.Second

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// KDSHub menampung semua client display (barista, floor, staff)
type KDSHub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

var kdsHub = KDSHub{
	clients: make(map[*websocket.Conn]string),
}

// IsValidRole reports whether role may open a display connection.
func IsValidRole(role string) bool {
	switch role {
	case RoleBarista, RoleFloor, RoleStaff:
		return true
	}
	return false
}

// RegisterClient -> menambahkan connection ke set dengan role
func RegisterClient(conn *websocket.Conn, role string) {
	kdsHub.mutex.Lock()
	defer kdsHub.mutex.Unlock()
	kdsHub.clients[conn] = role
}

// UnregisterClient -> melepaskan connection
func UnregisterClient(conn *websocket.Conn) {
	kdsHub.mutex.Lock()
	defer kdsHub.mutex.Unlock()
	delete(kdsHub.clients, conn)
	conn.Close()
}

// ClientCount returns how many displays are connected.
func ClientCount() int {
	kdsHub.mutex.Lock()
	defer kdsHub.mutex.Unlock()
	return len(kdsHub.clients)
}

// BroadcastTableUpdate -> update status meja
func BroadcastTableUpdate(tables []models.Table) {
	broadcast(Message{
		Event: EventTableUpdate,
		Data:  tables,
	})
}

func BroadcastReservationCreated(reservation models.Reservation) {
	broadcast(Message{
		Event: EventReservationCreated,
		Data:  reservation,
	})
}

func BroadcastReservationCancelled(reservation models.Reservation) {
	broadcast(Message{
		Event: EventReservationCancelled,
		Data:  reservation,
	})
}

// BroadcastOrderPaid -> order siap dibuat oleh barista
func BroadcastOrderPaid(order models.Order) {
	broadcast(Message{
		Event: EventOrderPaid,
		Data:  order,
	})
}

// BroadcastStaffNotification -> notifikasi untuk staff
func BroadcastStaffNotification(message string) {
	broadcast(Message{
		Event: EventStaffNotif,
		Data:  message,
	})
}

// wants reports whether a client with role should receive event.
func wants(role, event string) bool {
	switch role {
	case RoleBarista:
		return event == EventOrderPaid || event == EventStaffNotif
	case RoleFloor:
		return event == EventTableUpdate || event == EventReservationCreated || event == EventReservationCancelled
	}
	return true
}

// broadcast -> fungsi internal untuk mengirim pesan
func broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Errorf("Error marshaling message: %v", err)
		return
	}

	kdsHub.mutex.Lock()
	defer kdsHub.mutex.Unlock()

	sent := 0
	for conn, role := range kdsHub.clients {
		if !wants(role, msg.Event) {
			continue
		}
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Errorf("Error sending %s to %s client: %v", msg.Event, role, err)
			continue
		}
		sent++
	}
	utils.InfoLogger.Debugf("Broadcast %s to %d clients", msg.Event, sent)
}
