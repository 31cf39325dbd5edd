package utils

import (
	"bytes"
	"encoding/json"
	"net/http"

	"mariage-backend/constants"
	"mariage-backend/models"
)

// RespondJSON envoie une réponse JSON (UTF-8, caractères non ASCII conservés)
func RespondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	// Encoder avant d'écrire les en-têtes pour pouvoir basculer en 500
	var buf bytes.Buffer
	if data != nil {
		if err := EncodeJSON(&buf, data, false); err != nil {
			w.Header().Set(constants.HeaderContentType, constants.HeaderApplicationJSON)
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"Internal Server Error","message":"Erreur lors de l'encodage JSON"}`))
			return
		}
	}

	w.Header().Set(constants.HeaderContentType, constants.HeaderApplicationJSON)
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	w.WriteHeader(statusCode)
	w.Write(buf.Bytes())
}

// RespondError envoie une réponse d'erreur JSON
func RespondError(w http.ResponseWriter, statusCode int, message string) {
	RespondJSON(w, statusCode, models.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}

// RespondSuccess envoie {"success": true}
func RespondSuccess(w http.ResponseWriter) {
	RespondJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// EncodeJSON écrit v en JSON sans échapper le HTML ni les caractères non ASCII
func EncodeJSON(buf *bytes.Buffer, v interface{}, indent bool) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
