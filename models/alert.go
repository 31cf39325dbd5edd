package models

// Alert représente une annonce affichée aux invités (page info)
type Alert struct {
	ID        int64  `json:"id" bson:"id"`
	Message   string `json:"message" bson:"message"`
	Timestamp int64  `json:"timestamp" bson:"timestamp"` // millisecondes depuis epoch
}

// CreateAlertRequest représente la requête d'ajout d'une alerte
type CreateAlertRequest struct {
	Message string `json:"message"`
}
