package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"

	"mariage-backend/constants"
)

// ErrorKind classe les erreurs selon la réponse HTTP attendue
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindBadRequest
	KindNotFound
)

// AppError porte un message court destiné au client et la cause technique
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error implémente l'interface error
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap expose la cause
func (e *AppError) Unwrap() error {
	return e.Err
}

// Status retourne le code HTTP correspondant
func (e *AppError) Status() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// BadRequest crée une erreur de saisie client (400)
func BadRequest(message string) *AppError {
	return &AppError{Kind: KindBadRequest, Message: message}
}

// NotFound crée une erreur de ressource absente (404)
func NotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

// Internal crée une erreur serveur (500)
func Internal(err error) *AppError {
	return &AppError{Kind: KindInternal, Message: constants.ErrServerError, Err: err}
}

// IsKind indique si err est une AppError du type donné
func IsKind(err error, kind ErrorKind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// RespondAppError journalise l'erreur avec son contexte et répond avec un message court.
// Toute erreur qui n'est pas une AppError devient une 500.
func RespondAppError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = Internal(err)
	}

	status := appErr.Status()
	if status >= http.StatusInternalServerError {
		log.Errorf("❌ %s %s [%s]: %v", r.Method, r.URL.Path, op, err)
	} else {
		log.Warnf("⚠️  %s %s [%s]: %v", r.Method, r.URL.Path, op, err)
	}

	RespondError(w, status, appErr.Message)
}
