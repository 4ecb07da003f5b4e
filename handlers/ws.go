package handlers

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

// WSHandler pushes live activity events (new orders, volunteer sign-ups,
// contact submissions) to connected dashboard sessions so the back office
// updates without polling.
type WSHandler struct {
	M *melody.Melody
}

func NewWSHandler() *WSHandler {
	m := melody.New()

	m.Config.MaxMessageSize = 1024 * 1024

	// Keep-Alive Configuration (Critical for Render.com/Cloud hosting)
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second

	m.HandleDisconnect(func(s *melody.Session) {
		log.Printf("🔌 Dashboard client disconnected")
	})

	m.HandleError(func(s *melody.Session, err error) {
		log.Printf("❌ WebSocket Error: %v", err)
	})

	return &WSHandler{M: m}
}

// HandleWS upgrades the request and keeps the session open for broadcasts.
func (h *WSHandler) HandleWS(c *gin.Context) {
	if err := h.M.HandleRequest(c.Writer, c.Request); err != nil {
		log.Printf("❌ Failed to upgrade websocket: %v", err)
	}
}

type feedEvent struct {
	Type string    `json:"type"`
	Ref  string    `json:"ref,omitempty"`
	At   time.Time `json:"at"`
}

// Broadcast notifies every connected dashboard session. Delivery is best
// effort; the feed only saves a refresh.
func (h *WSHandler) Broadcast(eventType, ref string) {
	msg, err := json.Marshal(feedEvent{Type: eventType, Ref: ref, At: time.Now()})
	if err != nil {
		return
	}
	if err := h.M.Broadcast(msg); err != nil {
		log.Printf("⚠️ Error broadcasting %s event: %v", eventType, err)
	}
}
