package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gorilla/mux"

	"mariage-backend/models"
)

type inviteResponse struct {
	Success bool          `json:"success"`
	Invite  models.Invite `json:"invite"`
}

func TestInviteHandler_RegisterDedup(t *testing.T) {
	events := &fakePublisher{}
	handler := NewInviteHandler(newInviteRepo(t, t.TempDir()), events)

	register := func(body string) inviteResponse {
		rr := httptest.NewRecorder()
		handler.Register(rr, jsonRequest(http.MethodPost, "/api/invite/register", body))
		if rr.Code != http.StatusOK {
			t.Fatalf("Register() status = %d, body = %s", rr.Code, rr.Body.String())
		}
		var resp inviteResponse
		decodeBody(t, rr, &resp)
		return resp
	}

	first := register(`{"nom":"Zoé","email":"zoe@example.com"}`)
	second := register(`{"nom":"Zoé Martin","email":"zoe@example.com"}`)

	if first.Invite.ID != second.Invite.ID {
		t.Errorf("ID = %d puis %d, attendu identiques", first.Invite.ID, second.Invite.ID)
	}
	if second.Invite.Nom != "Zoé" {
		t.Errorf("Nom = %q, l'inscription existante doit être renvoyée telle quelle", second.Invite.Nom)
	}
	if got := events.types(); len(got) != 1 || got[0] != models.EventInviteRegistered {
		t.Errorf("événements = %v, attendu un seul invite_registered", got)
	}

	rr := httptest.NewRecorder()
	handler.GetInvites(rr, httptest.NewRequest(http.MethodGet, "/api/invite", nil))
	var list struct {
		Invites []models.Invite `json:"invites"`
	}
	decodeBody(t, rr, &list)
	if len(list.Invites) != 1 {
		t.Fatalf("len(invites) = %d, attendu 1", len(list.Invites))
	}

	id := strconv.FormatInt(first.Invite.ID, 10)
	req := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/api/invite/"+id, nil), map[string]string{"id": id})
	rr = httptest.NewRecorder()
	handler.DeleteInvite(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("DeleteInvite() status = %d", rr.Code)
	}
}

func TestInviteHandler_RegisterMissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"nom absent", `{"email":"a@b.c"}`, http.StatusBadRequest},
		{"email absent", `{"nom":"Léa"}`, http.StatusBadRequest},
		{"corps vide", `{}`, http.StatusBadRequest},
		{"champs vides acceptés", `{"nom":"","email":""}`, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewInviteHandler(newInviteRepo(t, t.TempDir()), nil)
			rr := httptest.NewRecorder()
			handler.Register(rr, jsonRequest(http.MethodPost, "/api/invite/register", tt.body))
			if rr.Code != tt.want {
				t.Errorf("status = %d, attendu %d", rr.Code, tt.want)
			}
		})
	}
}
