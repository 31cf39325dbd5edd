package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mariage-backend/database"
)

func TestStatsHandler(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	media := database.NewMediaStore(dir+"/media", "media")
	for _, name := range []string{"a.jpg", "b.png", "c.mov"} {
		if _, err := media.Save(ctx, name, strings.NewReader(name)); err != nil {
			t.Fatal(err)
		}
	}
	alerts := newAlertRepo(t, dir)
	if _, err := alerts.Create(ctx, "Bienvenue"); err != nil {
		t.Fatal(err)
	}
	invites := newInviteRepo(t, dir)
	commentaires := newCommentaireRepo(t, dir)
	for _, nom := range []string{"Ana", "Ben"} {
		if _, err := commentaires.Create(ctx, nom, "Bravo"); err != nil {
			t.Fatal(err)
		}
	}

	handler := NewStatsHandler(media, alerts, invites, commentaires)
	rr := httptest.NewRecorder()
	handler.GetStats(rr, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

	var stats map[string]int
	decodeBody(t, rr, &stats)
	want := map[string]int{
		"total_medias":       3,
		"total_images":       2,
		"total_videos":       1,
		"total_alerts":       1,
		"total_invites":      0,
		"total_commentaires": 2,
	}
	for key, value := range want {
		if stats[key] != value {
			t.Errorf("%s = %d, attendu %d", key, stats[key], value)
		}
	}
}
