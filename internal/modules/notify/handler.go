package notify

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"joyit/internal/domain"
	"joyit/internal/pkg/jwt"
)

type WSHandler struct {
	hub      *Hub
	tokens   *jwt.Service
	upgrader websocket.Upgrader
}

func NewWSHandler(hub *Hub, tokens *jwt.Service, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		hub:    hub,
		tokens: tokens,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return originAllowed(r.Header.Get("Origin"), allowedOrigins)
			},
		},
	}
}

// originAllowed checks the browser Origin header against the configured
// allowlist. Non-browser clients send no Origin and pass; an empty allowlist
// keeps the open local-development behavior.
func originAllowed(origin string, allowed []string) bool {
	if origin == "" || len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if strings.EqualFold(a, origin) {
			return true
		}
	}
	return false
}

// HandleWebSocket upgrades GET /ws/notifications?token=JWT. Auth goes via
// query parameter since browsers cannot set headers on WebSocket requests.
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is required. Use ?token=YOUR_JWT_TOKEN"})
		return
	}

	claims, err := h.tokens.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	admin := claims.Role == string(domain.RoleAdmin)
	h.hub.ServeWS(conn, claims.UserID, claims.CompanyID, admin)
}
