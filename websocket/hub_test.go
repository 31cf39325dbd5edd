package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"mariage-backend/models"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition non atteinte avant le délai")
}

func dial(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial() erreur = %v", err)
	}
	return conn
}

func TestHub_PublishReachesClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Shutdown()

	server := httptest.NewServer(http.HandlerFunc(NewHandler(hub).ServeWS))
	defer server.Close()

	first := dial(t, server)
	defer first.Close()
	second := dial(t, server)
	defer second.Close()

	waitFor(t, func() bool { return hub.ClientCount() == 2 })

	hub.Publish(models.EventAlertAdded, models.Alert{ID: 1, Message: "Dîner à 20h 🎉", Timestamp: 1})

	for _, conn := range []*websocket.Conn{first, second} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var event struct {
			Type string       `json:"type"`
			Data models.Alert `json:"data"`
		}
		if err := conn.ReadJSON(&event); err != nil {
			t.Fatalf("ReadJSON() erreur = %v", err)
		}
		if event.Type != models.EventAlertAdded {
			t.Errorf("Type = %s, attendu %s", event.Type, models.EventAlertAdded)
		}
		if event.Data.Message != "Dîner à 20h 🎉" {
			t.Errorf("Message = %q", event.Data.Message)
		}
	}
}

func TestHub_UnregisterOnClose(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Shutdown()

	server := httptest.NewServer(http.HandlerFunc(NewHandler(hub).ServeWS))
	defer server.Close()

	conn := dial(t, server)
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	conn.Close()
	waitFor(t, func() bool { return hub.ClientCount() == 0 })
}

func TestHub_Shutdown(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	server := httptest.NewServer(http.HandlerFunc(NewHandler(hub).ServeWS))
	defer server.Close()

	conn := dial(t, server)
	defer conn.Close()
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	hub.Shutdown()
	hub.Shutdown()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("la connexion doit être fermée après Shutdown")
	}

	// Publier après l'arrêt ne bloque pas
	hub.Publish(models.EventMediaAdded, nil)
}
