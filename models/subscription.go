package models

// PushSubscription représente un abonnement aux notifications push
type PushSubscription struct {
	ID        int64    `json:"id" bson:"id"`
	Endpoint  string   `json:"endpoint" bson:"endpoint"`
	Keys      PushKeys `json:"keys" bson:"keys"`
	Timestamp int64    `json:"timestamp" bson:"timestamp"`
}

// PushKeys contient les clés de chiffrement pour les notifications
type PushKeys struct {
	P256dh string `json:"p256dh" bson:"p256dh"`
	Auth   string `json:"auth" bson:"auth"`
}

// SubscribeRequest représente la requête d'abonnement aux notifications
type SubscribeRequest struct {
	Endpoint string   `json:"endpoint"`
	Keys     PushKeys `json:"keys"`
}

// UnsubscribeRequest représente la requête de désabonnement
type UnsubscribeRequest struct {
	Endpoint string `json:"endpoint"`
}

// NotificationPayload représente le contenu d'une notification
type NotificationPayload struct {
	Title string      `json:"title"`
	Body  string      `json:"body"`
	Icon  string      `json:"icon,omitempty"`
	Data  interface{} `json:"data,omitempty"`
}
