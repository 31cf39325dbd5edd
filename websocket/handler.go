package websocket

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"mariage-backend/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Le site est public : toutes les origines sont acceptées
		return true
	},
}

// Handler gère les connexions WebSocket
type Handler struct {
	hub *Hub
}

// NewHandler crée un nouveau handler WebSocket
func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

// ServeWS ouvre un flux d'événements en direct
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// L'upgrader a déjà répondu au client
		log.Warnf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}

	client := &Client{
		hub:  h.hub,
		conn: conn,
		send: make(chan *models.LiveEvent, 64),
		ID:   uuid.NewString(),
	}

	if !h.hub.addClient(client) {
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "arrêt du serveur"))
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
