package models

// Invite représente un invité inscrit. L'email sert de clé de déduplication.
type Invite struct {
	ID        int64  `json:"id" bson:"id"`
	Nom       string `json:"nom" bson:"nom"`
	Email     string `json:"email" bson:"email"`
	Timestamp int64  `json:"timestamp" bson:"timestamp"`
}

// RegisterInviteRequest représente la requête d'inscription d'un invité.
// Les pointeurs distinguent un champ absent d'un champ vide.
type RegisterInviteRequest struct {
	Nom   *string `json:"nom"`
	Email *string `json:"email"`
}
