package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/charmbracelet/log"

	"mariage-backend/constants"
	"mariage-backend/utils"
)

// Recover transforme une panique dans un handler en réponse 500
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Errorf("💥 Panique sur %s %s: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())
				utils.RespondError(w, http.StatusInternalServerError, constants.ErrServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
