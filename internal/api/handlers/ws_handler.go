package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/vendorlynx/vendorlynx-go/internal/api/middleware"
	"github.com/vendorlynx/vendorlynx-go/internal/domain/notification"
	"github.com/vendorlynx/vendorlynx-go/internal/ws"
	"github.com/vendorlynx/vendorlynx-go/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type WSHandler struct {
	hub *ws.Hub
}

func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

// Notifications upgrades the connection and streams the caller's
// notifications as they are committed. Browsers cannot set headers on
// websocket dials, so the token rides in a query parameter.
func (h *WSHandler) Notifications(c *gin.Context) {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "token required"})
		return
	}
	claims, err := middleware.ParseToken(tokenStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "invalid token"})
		return
	}
	party, ok := notification.PartyOf(claims.Role)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unknown role"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	h.hub.Register(party, claims.AccountID, conn)
	defer func() {
		h.hub.Unregister(party, claims.AccountID, conn)
		conn.Close()
	}()

	// Drain control frames until the client goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
