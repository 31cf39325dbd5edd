package websocket

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"mariage-backend/models"
)

const (
	// Temps maximum pour l'écriture d'un message
	writeWait = 10 * time.Second

	// Temps maximum pour la lecture d'un pong
	pongWait = 60 * time.Second

	// Intervalle des pings
	pingPeriod = (pongWait * 9) / 10

	// Taille maximale des messages reçus
	maxMessageSize = 512
)

// Client représente un navigateur abonné aux événements en direct
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan *models.LiveEvent
	ID   string
}

// readPump lit la connexion jusqu'à sa fermeture ; les messages reçus sont ignorés
func (c *Client) readPump() {
	defer func() {
		c.hub.removeClient(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warnf("❌ Erreur WebSocket: %v", err)
			}
			return
		}
	}
}

// writePump pompe les événements du hub vers la connexion WebSocket
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Le hub a fermé le canal
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(event); err != nil {
				log.Warnf("❌ Erreur écriture WebSocket: %v", err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
