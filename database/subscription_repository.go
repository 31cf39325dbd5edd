package database

import (
	"context"

	"mariage-backend/constants"
	"mariage-backend/models"
	"mariage-backend/utils"
)

// SubscriptionRepository gère les abonnements push (abonnements.json)
type SubscriptionRepository struct {
	coll *collection[models.PushSubscription]
}

// NewSubscriptionRepository crée une nouvelle instance
func NewSubscriptionRepository(store DocumentStore[models.PushSubscription], ids *IDGenerator) *SubscriptionRepository {
	return &SubscriptionRepository{
		coll: newCollection(store, ids, func(s models.PushSubscription) int64 { return s.ID }),
	}
}

// FindAll retourne tous les abonnements
func (r *SubscriptionRepository) FindAll(ctx context.Context) ([]models.PushSubscription, error) {
	return r.coll.list(ctx)
}

// Upsert enregistre un abonnement ; un endpoint déjà connu voit ses clés mises à jour
func (r *SubscriptionRepository) Upsert(ctx context.Context, endpoint string, keys models.PushKeys) (*models.PushSubscription, error) {
	var sub models.PushSubscription
	err := r.coll.mutate(ctx, func(items []models.PushSubscription) ([]models.PushSubscription, bool, error) {
		for i := range items {
			if items[i].Endpoint == endpoint {
				if items[i].Keys == keys {
					sub = items[i]
					return nil, false, nil
				}
				items[i].Keys = keys
				sub = items[i]
				return items, true, nil
			}
		}

		sub = models.PushSubscription{
			ID:        r.coll.ids.Next(),
			Endpoint:  endpoint,
			Keys:      keys,
			Timestamp: r.coll.ids.NowMillis(),
		}
		return append(items, sub), true, nil
	})
	if err != nil {
		return nil, err
	}

	return &sub, nil
}

// DeleteByEndpoint supprime l'abonnement correspondant à l'endpoint
func (r *SubscriptionRepository) DeleteByEndpoint(ctx context.Context, endpoint string) error {
	return r.coll.mutate(ctx, func(items []models.PushSubscription) ([]models.PushSubscription, bool, error) {
		kept := make([]models.PushSubscription, 0, len(items))
		for _, item := range items {
			if item.Endpoint != endpoint {
				kept = append(kept, item)
			}
		}
		if len(kept) == len(items) {
			return nil, false, utils.NotFound(constants.ErrSubNotFound)
		}
		return kept, true, nil
	})
}
