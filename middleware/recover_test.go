package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRecover(t *testing.T) {
	handler := Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boum")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/info/add", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("Code = %d, attendu 500", rr.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("corps non JSON: %v", err)
	}
	if body["error"] != "Internal Server Error" {
		t.Errorf("error = %q", body["error"])
	}
}
