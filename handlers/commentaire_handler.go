package handlers

import (
	"net/http"

	"github.com/charmbracelet/log"

	"mariage-backend/constants"
	"mariage-backend/database"
	"mariage-backend/models"
	"mariage-backend/utils"
)

// CommentaireHandler gère le livre d'or
type CommentaireHandler struct {
	commentaireRepo *database.CommentaireRepository
	events          EventPublisher
}

// NewCommentaireHandler crée une nouvelle instance
func NewCommentaireHandler(commentaireRepo *database.CommentaireRepository, events EventPublisher) *CommentaireHandler {
	return &CommentaireHandler{
		commentaireRepo: commentaireRepo,
		events:          events,
	}
}

// GetCommentaires liste les commentaires dans l'ordre d'arrivée
func (h *CommentaireHandler) GetCommentaires(w http.ResponseWriter, r *http.Request) {
	commentaires, err := h.commentaireRepo.FindAll(r.Context())
	if err != nil {
		utils.RespondAppError(w, r, "liste des commentaires", err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"commentaires": commentaires,
	})
}

// AddCommentaire ajoute un commentaire ; nom et message doivent être présents
func (h *CommentaireHandler) AddCommentaire(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCommentaireRequest
	if err := DecodeJSON(r, &req); err != nil {
		utils.RespondAppError(w, r, "ajout commentaire", err)
		return
	}
	if err := utils.RequirePresent("nom", req.Nom, constants.ErrMissingNom); err != nil {
		utils.RespondAppError(w, r, "ajout commentaire", err)
		return
	}
	if err := utils.RequirePresent("message", req.Message, constants.ErrMissingMessage); err != nil {
		utils.RespondAppError(w, r, "ajout commentaire", err)
		return
	}

	commentaire, err := h.commentaireRepo.Create(r.Context(), *req.Nom, *req.Message)
	if err != nil {
		utils.RespondAppError(w, r, "ajout commentaire", err)
		return
	}

	log.Infof("💬 Commentaire ajouté (ID: %d)", commentaire.ID)
	publish(h.events, models.EventCommentaireAdded, commentaire)

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"commentaire": commentaire,
	})
}

// DeleteCommentaire supprime un commentaire par ID
func (h *CommentaireHandler) DeleteCommentaire(w http.ResponseWriter, r *http.Request) {
	id, err := ParseID(r)
	if err != nil {
		utils.RespondAppError(w, r, "suppression commentaire", err)
		return
	}

	if err := h.commentaireRepo.Delete(r.Context(), id); err != nil {
		utils.RespondAppError(w, r, "suppression commentaire", err)
		return
	}

	log.Infof("🗑️  Commentaire supprimé (ID: %d)", id)
	publish(h.events, models.EventCommentaireDeleted, map[string]int64{"id": id})

	utils.RespondSuccess(w)
}
