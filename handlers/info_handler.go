package handlers

import (
	"net/http"

	"github.com/charmbracelet/log"

	"mariage-backend/database"
	"mariage-backend/models"
	"mariage-backend/utils"
)

// InfoHandler gère les annonces de la page info
type InfoHandler struct {
	alertRepo *database.AlertRepository
	events    EventPublisher
	notifier  AlertNotifier
}

// NewInfoHandler crée une nouvelle instance ; events et notifier sont optionnels
func NewInfoHandler(alertRepo *database.AlertRepository, events EventPublisher, notifier AlertNotifier) *InfoHandler {
	return &InfoHandler{
		alertRepo: alertRepo,
		events:    events,
		notifier:  notifier,
	}
}

// GetAlerts retourne les alertes, la plus récente en premier
func (h *InfoHandler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.alertRepo.FindAll(r.Context())
	if err != nil {
		utils.RespondAppError(w, r, "liste des alertes", err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"alerts": alerts,
	})
}

// AddAlert publie une nouvelle alerte
func (h *InfoHandler) AddAlert(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAlertRequest
	if err := DecodeJSON(r, &req); err != nil {
		utils.RespondAppError(w, r, "ajout alerte", err)
		return
	}

	alert, err := h.alertRepo.Create(r.Context(), req.Message)
	if err != nil {
		utils.RespondAppError(w, r, "ajout alerte", err)
		return
	}

	log.Infof("✅ Alerte ajoutée (ID: %d)", alert.ID)
	publish(h.events, models.EventAlertAdded, alert)
	if h.notifier != nil {
		h.notifier.NotifyAlert(*alert)
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"alert":   alert,
	})
}

// DeleteAlert supprime une alerte par ID
func (h *InfoHandler) DeleteAlert(w http.ResponseWriter, r *http.Request) {
	id, err := ParseID(r)
	if err != nil {
		utils.RespondAppError(w, r, "suppression alerte", err)
		return
	}

	if err := h.alertRepo.Delete(r.Context(), id); err != nil {
		utils.RespondAppError(w, r, "suppression alerte", err)
		return
	}

	log.Infof("🗑️  Alerte supprimée (ID: %d)", id)
	publish(h.events, models.EventAlertDeleted, map[string]int64{"id": id})

	utils.RespondSuccess(w)
}
