package constants

// Messages d'erreur HTTP courants
const (
	ErrNotFound         = "Not Found"
	ErrServerError      = "Erreur serveur"
	ErrInvalidJSONBody  = "Body JSON invalide"
	ErrTooManyRequests  = "Trop de requêtes. Veuillez patienter."
	ErrEmptyMessage     = "Message vide"
	ErrMissingNom       = "Champ 'nom' requis"
	ErrMissingMessage   = "Champ 'message' requis"
	ErrMissingEmail     = "Champ 'email' requis"
	ErrMissingEndpoint  = "Champ 'endpoint' requis"
	ErrMissingKeys      = "Clés p256dh et auth requises"
	ErrAlertNotFound    = "Alerte non trouvée"
	ErrInviteNotFound   = "Invité non trouvé"
	ErrCommentNotFound  = "Commentaire non trouvé"
	ErrSubNotFound      = "Abonnement non trouvé"
	ErrPushDisabled     = "Notifications push non configurées"
	ErrBadContentType   = "Content-Type doit être multipart/form-data"
	ErrNoFileUploaded   = "Aucun fichier uploadé"
	ErrInvalidFilename  = "Nom de fichier invalide"
	ErrExtNotAllowed    = "Extension %s non autorisée"
	ErrFileNotFound     = "Fichier non trouvé"
	ErrFileTooLarge     = "Fichier trop volumineux"
	ErrMultipartInvalid = "Formulaire multipart invalide"
)

// En-têtes HTTP
const (
	HeaderContentType     = "Content-Type"
	HeaderApplicationJSON = "application/json; charset=utf-8"
	HeaderRequestID       = "X-Request-ID"
)
