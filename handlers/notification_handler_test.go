package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mariage-backend/services"
)

func TestNotificationHandler_VAPIDKey(t *testing.T) {
	repo := newSubscriptionRepo(t, t.TempDir())

	disabled := NewNotificationHandler(repo, services.NewPushService(repo, "", "", ""))
	rr := httptest.NewRecorder()
	disabled.GetVAPIDPublicKey(rr, httptest.NewRequest(http.MethodGet, "/api/notifications/vapid-public-key", nil))
	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, attendu 404 sans clés VAPID", rr.Code)
	}

	enabled := NewNotificationHandler(repo, services.NewPushService(repo, "cle-publique", "cle-privee", "mailto:a@b.c"))
	rr = httptest.NewRecorder()
	enabled.GetVAPIDPublicKey(rr, httptest.NewRequest(http.MethodGet, "/api/notifications/vapid-public-key", nil))
	var resp map[string]string
	decodeBody(t, rr, &resp)
	if resp["publicKey"] != "cle-publique" {
		t.Errorf("publicKey = %q", resp["publicKey"])
	}
}

func TestNotificationHandler_SubscribeUnsubscribe(t *testing.T) {
	repo := newSubscriptionRepo(t, t.TempDir())
	handler := NewNotificationHandler(repo, services.NewPushService(repo, "", "", ""))

	tests := []struct {
		name   string
		call   func(w http.ResponseWriter, r *http.Request)
		target string
		body   string
		want   int
	}{
		{"abonnement", handler.Subscribe, "/api/notifications/subscribe", `{"endpoint":"https://push.example.com/1","keys":{"p256dh":"k","auth":"a"}}`, http.StatusOK},
		{"abonnement répété", handler.Subscribe, "/api/notifications/subscribe", `{"endpoint":"https://push.example.com/1","keys":{"p256dh":"k2","auth":"a2"}}`, http.StatusOK},
		{"endpoint absent", handler.Subscribe, "/api/notifications/subscribe", `{"keys":{"p256dh":"k","auth":"a"}}`, http.StatusBadRequest},
		{"clés absentes", handler.Subscribe, "/api/notifications/subscribe", `{"endpoint":"https://push.example.com/2"}`, http.StatusBadRequest},
		{"désabonnement", handler.Unsubscribe, "/api/notifications/unsubscribe", `{"endpoint":"https://push.example.com/1"}`, http.StatusOK},
		{"désabonnement inconnu", handler.Unsubscribe, "/api/notifications/unsubscribe", `{"endpoint":"https://push.example.com/1"}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		rr := httptest.NewRecorder()
		tt.call(rr, jsonRequest(http.MethodPost, tt.target, tt.body))
		if rr.Code != tt.want {
			t.Errorf("%s: status = %d, attendu %d (body = %s)", tt.name, rr.Code, tt.want, rr.Body.String())
		}
	}
}
