package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/yeremiapane/coffee-shop/kds"
	"github.com/yeremiapane/coffee-shop/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// KDSHandler -> endpoint WebSocket untuk display barista, floor board dan staff
func KDSHandler(c *gin.Context) {
	role := c.Param("role")
	if !kds.IsValidRole(role) {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Errorf("WebSocket upgrade failed for %s: %v", role, err)
		return
	}

	kds.RegisterClient(ws, role)

	// Display hanya menerima; baca sampai koneksi ditutup
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	kds.UnregisterClient(ws)
}
