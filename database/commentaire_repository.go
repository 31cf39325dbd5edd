package database

import (
	"context"

	"mariage-backend/constants"
	"mariage-backend/models"
)

// CommentaireRepository gère le livre d'or (commentaire.json), dans l'ordre d'arrivée
type CommentaireRepository struct {
	coll *collection[models.Commentaire]
}

// NewCommentaireRepository crée une nouvelle instance
func NewCommentaireRepository(store DocumentStore[models.Commentaire], ids *IDGenerator) *CommentaireRepository {
	return &CommentaireRepository{
		coll: newCollection(store, ids, func(c models.Commentaire) int64 { return c.ID }),
	}
}

// FindAll retourne tous les commentaires
func (r *CommentaireRepository) FindAll(ctx context.Context) ([]models.Commentaire, error) {
	return r.coll.list(ctx)
}

// Create ajoute un commentaire en fin de liste
func (r *CommentaireRepository) Create(ctx context.Context, nom, message string) (*models.Commentaire, error) {
	var commentaire models.Commentaire
	err := r.coll.mutate(ctx, func(items []models.Commentaire) ([]models.Commentaire, bool, error) {
		commentaire = models.Commentaire{
			ID:        r.coll.ids.Next(),
			Nom:       nom,
			Message:   message,
			Timestamp: r.coll.ids.NowMillis(),
		}
		return append(items, commentaire), true, nil
	})
	if err != nil {
		return nil, err
	}

	return &commentaire, nil
}

// Delete supprime un commentaire par ID
func (r *CommentaireRepository) Delete(ctx context.Context, id int64) error {
	return r.coll.deleteByID(ctx, id, constants.ErrCommentNotFound)
}
