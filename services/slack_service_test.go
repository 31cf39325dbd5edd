package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSlackService_Disabled(t *testing.T) {
	service := NewSlackService("")
	if service.Enabled() {
		t.Fatal("Enabled() = true, attendu false")
	}
	if err := service.Send(context.Background(), ServerError{Method: "GET", Path: "/", StatusCode: 500}); err != nil {
		t.Errorf("Send() erreur = %v", err)
	}
}

func TestSlackService_Send(t *testing.T) {
	var received SlackMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("payload invalide: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	service := NewSlackService(server.URL)
	err := service.Send(context.Background(), ServerError{
		Method:     http.MethodPost,
		Path:       "/api/info/add",
		StatusCode: http.StatusInternalServerError,
		RequestID:  "abc",
	})
	if err != nil {
		t.Fatalf("Send() erreur = %v", err)
	}

	if len(received.Attachments) != 1 {
		t.Fatalf("attachments = %d, attendu 1", len(received.Attachments))
	}
	fields := map[string]string{}
	for _, f := range received.Attachments[0].Fields {
		fields[f.Title] = f.Value
	}
	if fields["Chemin"] != "/api/info/add" || fields["Status Code"] != "500" || fields["Request ID"] != "abc" {
		t.Errorf("champs = %v", fields)
	}
}

func TestSlackService_SendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	err := NewSlackService(server.URL).Send(context.Background(), ServerError{Method: "GET", Path: "/", StatusCode: 500})
	if err == nil {
		t.Error("Send() devrait échouer quand Slack répond 403")
	}
}
