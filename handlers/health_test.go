package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHealthHandlerHealth(t *testing.T) {
	handler := NewHealthHandler("test", "file", nil)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rr := httptest.NewRecorder()

	handler.Health(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Health() status = %v, want %v", rr.Code, http.StatusOK)
	}

	ct := rr.Header().Get("Content-Type")
	if ct != "application/json; charset=utf-8" {
		t.Errorf("Health() Content-Type = %v, want application/json; charset=utf-8", ct)
	}

	body := rr.Body.String()
	expectedKeys := []string{"status", "env", "storage", "uptime", "go_version"}
	for _, key := range expectedKeys {
		if !strings.Contains(body, key) {
			t.Errorf("Health() body should contain %q, got %s", key, body)
		}
	}
}

func TestHealthHandlerStorageError(t *testing.T) {
	handler := NewHealthHandler("test", "mongo", func() error { return errors.New("injoignable") })

	rr := httptest.NewRecorder()
	handler.Health(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	var body map[string]interface{}
	decodeBody(t, rr, &body)
	if body["storage_status"] != "error" {
		t.Errorf("storage_status = %v, attendu error", body["storage_status"])
	}
}
