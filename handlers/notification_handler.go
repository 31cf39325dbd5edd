package handlers

import (
	"net/http"
	"strings"

	"github.com/charmbracelet/log"

	"mariage-backend/constants"
	"mariage-backend/database"
	"mariage-backend/models"
	"mariage-backend/services"
	"mariage-backend/utils"
)

// NotificationHandler gère les abonnements aux notifications push
type NotificationHandler struct {
	subscriptionRepo *database.SubscriptionRepository
	pushService      *services.PushService
}

// NewNotificationHandler crée une nouvelle instance de NotificationHandler
func NewNotificationHandler(subscriptionRepo *database.SubscriptionRepository, pushService *services.PushService) *NotificationHandler {
	return &NotificationHandler{
		subscriptionRepo: subscriptionRepo,
		pushService:      pushService,
	}
}

// GetVAPIDPublicKey retourne la clé publique VAPID
func (h *NotificationHandler) GetVAPIDPublicKey(w http.ResponseWriter, r *http.Request) {
	if !h.pushService.Enabled() {
		utils.RespondAppError(w, r, "clé VAPID", utils.NotFound(constants.ErrPushDisabled))
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"publicKey": h.pushService.PublicKey(),
	})
}

// Subscribe enregistre (ou met à jour) l'abonnement d'un navigateur
func (h *NotificationHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req models.SubscribeRequest
	if err := DecodeJSON(r, &req); err != nil {
		utils.RespondAppError(w, r, "abonnement", err)
		return
	}
	if err := utils.RequireNonBlank("endpoint", req.Endpoint, constants.ErrMissingEndpoint); err != nil {
		utils.RespondAppError(w, r, "abonnement", err)
		return
	}
	if strings.TrimSpace(req.Keys.P256dh) == "" || strings.TrimSpace(req.Keys.Auth) == "" {
		utils.RespondAppError(w, r, "abonnement", utils.BadRequest(constants.ErrMissingKeys))
		return
	}

	subscription, err := h.subscriptionRepo.Upsert(r.Context(), req.Endpoint, req.Keys)
	if err != nil {
		utils.RespondAppError(w, r, "abonnement", err)
		return
	}

	log.Infof("✓ Abonnement push enregistré (ID: %d)", subscription.ID)
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"abonnement": subscription,
	})
}

// Unsubscribe supprime l'abonnement d'un navigateur
func (h *NotificationHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	var req models.UnsubscribeRequest
	if err := DecodeJSON(r, &req); err != nil {
		utils.RespondAppError(w, r, "désabonnement", err)
		return
	}
	if err := utils.RequireNonBlank("endpoint", req.Endpoint, constants.ErrMissingEndpoint); err != nil {
		utils.RespondAppError(w, r, "désabonnement", err)
		return
	}

	if err := h.subscriptionRepo.DeleteByEndpoint(r.Context(), req.Endpoint); err != nil {
		utils.RespondAppError(w, r, "désabonnement", err)
		return
	}

	log.Infof("✓ Abonnement supprimé: %s", req.Endpoint)
	utils.RespondSuccess(w)
}
