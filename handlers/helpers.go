package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"mariage-backend/constants"
	"mariage-backend/models"
	"mariage-backend/utils"
)

// Taille maximale d'un corps JSON
const maxJSONBody = 1 << 20

// EventPublisher diffuse les changements aux navigateurs connectés
type EventPublisher interface {
	Publish(eventType string, data interface{})
}

// AlertNotifier prévient les abonnés push d'une nouvelle alerte
type AlertNotifier interface {
	NotifyAlert(alert models.Alert)
}

func publish(p EventPublisher, eventType string, data interface{}) {
	if p != nil {
		p.Publish(eventType, data)
	}
}

// ParseID extrait l'identifiant numérique {id} de l'URL.
// Un identifiant mal formé est une erreur serveur (500), pas une erreur client.
func ParseID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, utils.Internal(fmt.Errorf("id invalide %q: %w", raw, err))
	}
	return id, nil
}

// DecodeJSON décode le corps de la requête dans v ; tout échec est une erreur 400
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return utils.BadRequest(constants.ErrInvalidJSONBody)
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody))
	if err := dec.Decode(v); err != nil {
		appErr := utils.BadRequest(constants.ErrInvalidJSONBody)
		appErr.Err = err
		return appErr
	}

	// Le corps doit contenir un seul document JSON
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		appErr := utils.BadRequest(constants.ErrInvalidJSONBody)
		appErr.Err = fmt.Errorf("données après le document JSON")
		return appErr
	}

	return nil
}
