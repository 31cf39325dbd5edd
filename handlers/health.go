package handlers

import (
	"net/http"
	"runtime"
	"time"

	"mariage-backend/utils"
)

var startTime = time.Now()

// HealthHandler gère les endpoints de santé
type HealthHandler struct {
	environment string
	storage     string
	check       func() error
}

// NewHealthHandler crée un nouveau HealthHandler.
// check vérifie le stockage ; nil signifie toujours disponible.
func NewHealthHandler(environment, storage string, check func() error) *HealthHandler {
	return &HealthHandler{environment: environment, storage: storage, check: check}
}

// Health retourne l'état de santé du serveur avec métriques
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	uptime := time.Since(startTime).String()

	storageStatus := "ok"
	if h.check != nil {
		if err := h.check(); err != nil {
			storageStatus = "error"
		}
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"status":         "ok",
		"message":        "Le serveur fonctionne correctement",
		"env":            h.environment,
		"storage":        h.storage,
		"storage_status": storageStatus,
		"uptime":         uptime,
		"go_version":     runtime.Version(),
	})
}
