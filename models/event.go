package models

// Types d'événements diffusés en direct
const (
	EventMediaAdded         = "media_added"
	EventMediaDeleted       = "media_deleted"
	EventAlertAdded         = "alert_added"
	EventAlertDeleted       = "alert_deleted"
	EventInviteRegistered   = "invite_registered"
	EventCommentaireAdded   = "commentaire_added"
	EventCommentaireDeleted = "commentaire_deleted"
)

// LiveEvent représente un changement diffusé aux navigateurs connectés
type LiveEvent struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp int64       `json:"timestamp"`
}
