package models

// Commentaire représente un message du livre d'or
type Commentaire struct {
	ID        int64  `json:"id" bson:"id"`
	Nom       string `json:"nom" bson:"nom"`
	Message   string `json:"message" bson:"message"`
	Timestamp int64  `json:"timestamp" bson:"timestamp"`
}

// CreateCommentaireRequest représente la requête d'ajout d'un commentaire
type CreateCommentaireRequest struct {
	Nom     *string `json:"nom"`
	Message *string `json:"message"`
}
