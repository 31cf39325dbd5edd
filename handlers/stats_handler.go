package handlers

import (
	"net/http"

	"mariage-backend/database"
	"mariage-backend/utils"
)

// StatsHandler agrège les compteurs du site
type StatsHandler struct {
	media           *database.MediaStore
	alertRepo       *database.AlertRepository
	inviteRepo      *database.InviteRepository
	commentaireRepo *database.CommentaireRepository
}

// NewStatsHandler crée une nouvelle instance
func NewStatsHandler(media *database.MediaStore, alertRepo *database.AlertRepository, inviteRepo *database.InviteRepository, commentaireRepo *database.CommentaireRepository) *StatsHandler {
	return &StatsHandler{
		media:           media,
		alertRepo:       alertRepo,
		inviteRepo:      inviteRepo,
		commentaireRepo: commentaireRepo,
	}
}

// GetStats retourne le nombre de médias, alertes, invités et commentaires
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	mediaStats, err := h.media.Stats(ctx)
	if err != nil {
		utils.RespondAppError(w, r, "statistiques", err)
		return
	}
	alerts, err := h.alertRepo.FindAll(ctx)
	if err != nil {
		utils.RespondAppError(w, r, "statistiques", err)
		return
	}
	invites, err := h.inviteRepo.FindAll(ctx)
	if err != nil {
		utils.RespondAppError(w, r, "statistiques", err)
		return
	}
	commentaires, err := h.commentaireRepo.FindAll(ctx)
	if err != nil {
		utils.RespondAppError(w, r, "statistiques", err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"total_medias":       mediaStats.Total,
		"total_images":       mediaStats.Images,
		"total_videos":       mediaStats.Videos,
		"total_alerts":       len(alerts),
		"total_invites":      len(invites),
		"total_commentaires": len(commentaires),
	})
}
