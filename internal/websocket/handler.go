package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs attaches an upgraded connection to the hub and blocks until
// the peer disconnects.
func ServeWs(hub *Hub, c *websocket.Conn, tenantID uuid.UUID) {
	client := &Client{Hub: hub, Conn: c, TenantID: tenantID, Send: make(chan []byte, 256)}
	client.Hub.register <- client

	go client.writePump()
	client.readPump()
}
