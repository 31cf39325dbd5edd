package handlers

import (
	"net/http"

	"github.com/charmbracelet/log"

	"mariage-backend/constants"
	"mariage-backend/database"
	"mariage-backend/models"
	"mariage-backend/utils"
)

// InviteHandler gère l'inscription des invités
type InviteHandler struct {
	inviteRepo *database.InviteRepository
	events     EventPublisher
}

// NewInviteHandler crée une nouvelle instance
func NewInviteHandler(inviteRepo *database.InviteRepository, events EventPublisher) *InviteHandler {
	return &InviteHandler{
		inviteRepo: inviteRepo,
		events:     events,
	}
}

// Register inscrit un invité ; un email déjà connu renvoie l'inscription existante
func (h *InviteHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterInviteRequest
	if err := DecodeJSON(r, &req); err != nil {
		utils.RespondAppError(w, r, "inscription invité", err)
		return
	}
	if err := utils.RequirePresent("nom", req.Nom, constants.ErrMissingNom); err != nil {
		utils.RespondAppError(w, r, "inscription invité", err)
		return
	}
	if err := utils.RequirePresent("email", req.Email, constants.ErrMissingEmail); err != nil {
		utils.RespondAppError(w, r, "inscription invité", err)
		return
	}

	invite, created, err := h.inviteRepo.Register(r.Context(), *req.Nom, *req.Email)
	if err != nil {
		utils.RespondAppError(w, r, "inscription invité", err)
		return
	}

	if created {
		log.Infof("✅ Invité inscrit (ID: %d)", invite.ID)
		publish(h.events, models.EventInviteRegistered, invite)
	} else {
		log.Debugf("Invité déjà inscrit (ID: %d)", invite.ID)
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"invite":  invite,
	})
}

// GetInvites liste les invités inscrits
func (h *InviteHandler) GetInvites(w http.ResponseWriter, r *http.Request) {
	invites, err := h.inviteRepo.FindAll(r.Context())
	if err != nil {
		utils.RespondAppError(w, r, "liste des invités", err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"invites": invites,
	})
}

// DeleteInvite supprime un invité par ID
func (h *InviteHandler) DeleteInvite(w http.ResponseWriter, r *http.Request) {
	id, err := ParseID(r)
	if err != nil {
		utils.RespondAppError(w, r, "suppression invité", err)
		return
	}

	if err := h.inviteRepo.Delete(r.Context(), id); err != nil {
		utils.RespondAppError(w, r, "suppression invité", err)
		return
	}

	log.Infof("🗑️  Invité supprimé (ID: %d)", id)
	utils.RespondSuccess(w)
}
