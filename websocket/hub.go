package websocket

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"mariage-backend/models"
)

// Hub gère les connexions WebSocket actives et diffuse les événements
type Hub struct {
	// Clients connectés
	clients map[*Client]bool

	// Mutex pour sécuriser les accès concurrents
	mu sync.RWMutex

	// Canal pour enregistrer les clients
	register chan *Client

	// Canal pour désenregistrer les clients
	unregister chan *Client

	// Canal pour diffuser les événements
	broadcast chan *models.LiveEvent

	done     chan struct{}
	stopOnce sync.Once
}

// NewHub crée un nouveau hub WebSocket
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *models.LiveEvent, 256),
		done:       make(chan struct{}),
	}
}

// Run démarre la boucle principale du hub, jusqu'à Shutdown
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			log.Infof("🔌 Client connecté: %s (total: %d)", client.ID, total)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			log.Infof("👋 Client déconnecté: %s (total: %d)", client.ID, total)

		case event := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- event:
				default:
					log.Warnf("❌ Canal plein pour %s, déconnexion", client.ID)
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()

		case <-h.done:
			h.closeAll()
			return
		}
	}
}

// Publish diffuse un événement à tous les clients connectés.
// L'événement est abandonné si le hub est arrêté ou saturé.
func (h *Hub) Publish(eventType string, data interface{}) {
	event := &models.LiveEvent{
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now().UnixMilli(),
	}

	select {
	case <-h.done:
		return
	default:
	}

	select {
	case h.broadcast <- event:
	default:
		log.Warnf("⚠️  Événement %s abandonné: file de diffusion pleine", eventType)
	}
}

// ClientCount retourne le nombre de clients connectés
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Shutdown arrête le hub et ferme toutes les connexions
func (h *Hub) Shutdown() {
	h.stopOnce.Do(func() {
		log.Info("🔄 Arrêt du hub WebSocket...")
		close(h.done)
	})
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		close(client.send)
		client.conn.Close()
	}
	h.clients = make(map[*Client]bool)
	log.Info("✅ Hub WebSocket arrêté")
}

func (h *Hub) addClient(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) removeClient(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}
