package database

import (
	"context"
	"strings"

	"mariage-backend/constants"
	"mariage-backend/models"
	"mariage-backend/utils"
)

// AlertRepository gère les alertes (info.json), plus récentes en premier
type AlertRepository struct {
	coll      *collection[models.Alert]
	maxAlerts int
}

// NewAlertRepository crée une nouvelle instance
func NewAlertRepository(store DocumentStore[models.Alert], ids *IDGenerator, maxAlerts int) *AlertRepository {
	return &AlertRepository{
		coll:      newCollection(store, ids, func(a models.Alert) int64 { return a.ID }),
		maxAlerts: maxAlerts,
	}
}

// FindAll retourne toutes les alertes
func (r *AlertRepository) FindAll(ctx context.Context) ([]models.Alert, error) {
	return r.coll.list(ctx)
}

// Create ajoute une alerte en tête de liste et ne garde que les maxAlerts plus récentes
func (r *AlertRepository) Create(ctx context.Context, message string) (*models.Alert, error) {
	message = strings.TrimSpace(message)
	if err := utils.RequireNonBlank("message", message, constants.ErrEmptyMessage); err != nil {
		return nil, err
	}

	var alert models.Alert
	err := r.coll.mutate(ctx, func(alerts []models.Alert) ([]models.Alert, bool, error) {
		alert = models.Alert{
			ID:        r.coll.ids.Next(),
			Message:   message,
			Timestamp: r.coll.ids.NowMillis(),
		}

		alerts = append([]models.Alert{alert}, alerts...)
		if len(alerts) > r.maxAlerts {
			alerts = alerts[:r.maxAlerts]
		}
		return alerts, true, nil
	})
	if err != nil {
		return nil, err
	}

	return &alert, nil
}

// Delete supprime une alerte par ID
func (r *AlertRepository) Delete(ctx context.Context, id int64) error {
	return r.coll.deleteByID(ctx, id, constants.ErrAlertNotFound)
}
