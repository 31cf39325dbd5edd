package models

// ErrorResponse représente une réponse d'erreur
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// SuccessResponse représente une réponse de succès sans contenu
type SuccessResponse struct {
	Success bool `json:"success"`
}
