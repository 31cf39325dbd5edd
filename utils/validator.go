package utils

import (
	"fmt"
	"strings"
)

// ValidationError représente une erreur de validation
type ValidationError struct {
	Field   string
	Message string
}

// Error implémente l'interface error
func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// RequirePresent vérifie qu'un champ JSON a été envoyé (une chaîne vide est acceptée)
func RequirePresent(field string, value *string, message string) error {
	if value == nil {
		return &AppError{
			Kind:    KindBadRequest,
			Message: message,
			Err:     ValidationError{Field: field, Message: "champ absent"},
		}
	}
	return nil
}

// RequireNonBlank vérifie qu'un champ n'est pas vide après suppression des espaces
func RequireNonBlank(field, value, message string) error {
	if strings.TrimSpace(value) == "" {
		return &AppError{
			Kind:    KindBadRequest,
			Message: message,
			Err:     ValidationError{Field: field, Message: fmt.Sprintf("le champ %s est vide", field)},
		}
	}
	return nil
}
