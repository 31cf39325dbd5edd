package database

import (
	"context"

	"mariage-backend/constants"
	"mariage-backend/models"
)

// InviteRepository gère les invités inscrits (invite.json)
type InviteRepository struct {
	coll *collection[models.Invite]
}

// NewInviteRepository crée une nouvelle instance
func NewInviteRepository(store DocumentStore[models.Invite], ids *IDGenerator) *InviteRepository {
	return &InviteRepository{
		coll: newCollection(store, ids, func(i models.Invite) int64 { return i.ID }),
	}
}

// FindAll retourne tous les invités
func (r *InviteRepository) FindAll(ctx context.Context) ([]models.Invite, error) {
	return r.coll.list(ctx)
}

// Register inscrit un invité. Si l'email existe déjà (égalité exacte),
// l'inscription existante est retournée telle quelle, sans écriture.
// created indique si une nouvelle entrée a été ajoutée.
func (r *InviteRepository) Register(ctx context.Context, nom, email string) (invite *models.Invite, created bool, err error) {
	err = r.coll.mutate(ctx, func(items []models.Invite) ([]models.Invite, bool, error) {
		for i := range items {
			if items[i].Email == email {
				existing := items[i]
				invite = &existing
				return nil, false, nil
			}
		}

		invite = &models.Invite{
			ID:        r.coll.ids.Next(),
			Nom:       nom,
			Email:     email,
			Timestamp: r.coll.ids.NowMillis(),
		}
		created = true
		return append(items, *invite), true, nil
	})
	if err != nil {
		return nil, false, err
	}

	return invite, created, nil
}

// Delete supprime un invité par ID
func (r *InviteRepository) Delete(ctx context.Context, id int64) error {
	return r.coll.deleteByID(ctx, id, constants.ErrInviteNotFound)
}
