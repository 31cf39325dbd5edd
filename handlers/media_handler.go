package handlers

import (
	"errors"
	"mime"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"mariage-backend/constants"
	"mariage-backend/database"
	"mariage-backend/models"
	"mariage-backend/utils"
)

// Mémoire utilisée pour le formulaire avant de basculer sur disque
const multipartMemory = 32 << 20

// MediaHandler gère les photos et vidéos partagées
type MediaHandler struct {
	store          *database.MediaStore
	maxUploadBytes int64
	events         EventPublisher
}

// NewMediaHandler crée une nouvelle instance
func NewMediaHandler(store *database.MediaStore, maxUploadBytes int64, events EventPublisher) *MediaHandler {
	return &MediaHandler{
		store:          store,
		maxUploadBytes: maxUploadBytes,
		events:         events,
	}
}

// GetMedias liste les médias, les plus récents en premier
func (h *MediaHandler) GetMedias(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context())
	if err != nil {
		utils.RespondAppError(w, r, "liste des médias", err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"media": items,
	})
}

// Upload enregistre le fichier du champ "file" d'un formulaire multipart
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get(constants.HeaderContentType))
	if err != nil || mediaType != "multipart/form-data" {
		utils.RespondAppError(w, r, "upload", utils.BadRequest(constants.ErrBadContentType))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		appErr := utils.BadRequest(constants.ErrMultipartInvalid)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			appErr = utils.BadRequest(constants.ErrFileTooLarge)
		}
		appErr.Err = err
		utils.RespondAppError(w, r, "upload", appErr)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		appErr := utils.BadRequest(constants.ErrNoFileUploaded)
		appErr.Err = err
		utils.RespondAppError(w, r, "upload", appErr)
		return
	}
	defer file.Close()

	if header.Filename == "" {
		utils.RespondAppError(w, r, "upload", utils.BadRequest(constants.ErrInvalidFilename))
		return
	}

	filename, err := h.store.Save(r.Context(), header.Filename, file)
	if err != nil {
		utils.RespondAppError(w, r, "upload", err)
		return
	}

	caption := r.FormValue("caption")
	log.Infof("📸 Média uploadé: %s (%d octets)", filename, header.Size)

	publish(h.events, models.EventMediaAdded, map[string]string{
		"filename": filename,
		"caption":  caption,
	})

	utils.RespondJSON(w, http.StatusOK, models.UploadResponse{
		Success:  true,
		Filename: filename,
		Caption:  caption,
	})
}

// DeleteMedia supprime un média ; le nom est ramené à son nom de base
func (h *MediaHandler) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	filename := database.SanitizeFilename(mux.Vars(r)["filename"])

	if err := h.store.Delete(r.Context(), filename); err != nil {
		utils.RespondAppError(w, r, "suppression média", err)
		return
	}

	log.Infof("🗑️  Média supprimé: %s", filename)
	publish(h.events, models.EventMediaDeleted, map[string]string{"filename": filename})

	utils.RespondSuccess(w)
}
