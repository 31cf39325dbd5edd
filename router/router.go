package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"mariage-backend/config"
	"mariage-backend/constants"
	"mariage-backend/database"
	"mariage-backend/handlers"
	"mariage-backend/middleware"
	"mariage-backend/services"
	"mariage-backend/utils"
	"mariage-backend/websocket"
)

// Deps regroupe les composants dont dépendent les routes
type Deps struct {
	Media         *database.MediaStore
	Alerts        *database.AlertRepository
	Invites       *database.InviteRepository
	Commentaires  *database.CommentaireRepository
	Subscriptions *database.SubscriptionRepository

	// Optionnels
	Hub          *websocket.Hub
	Push         *services.PushService
	Slack        *services.SlackService
	StorageCheck func() error
}

// New construit le handler HTTP complet : routes API, flux WebSocket,
// fichiers statiques, et middlewares appliqués à toutes les réponses (404 compris).
func New(cfg *config.Config, deps Deps) http.Handler {
	router := mux.NewRouter()

	// Le chemin brut atteint les handlers : les tentatives de traversée
	// sont neutralisées par l'assainissement des noms, pas par une redirection.
	router.SkipClean(true)

	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondError(w, http.StatusNotFound, constants.ErrNotFound)
	})
	router.NotFoundHandler = notFound
	router.MethodNotAllowedHandler = notFound

	var events handlers.EventPublisher
	if deps.Hub != nil {
		events = deps.Hub
	}
	var notifier handlers.AlertNotifier
	if deps.Push != nil {
		notifier = deps.Push
	}

	mediaHandler := handlers.NewMediaHandler(deps.Media, cfg.MaxUploadBytes, events)
	infoHandler := handlers.NewInfoHandler(deps.Alerts, events, notifier)
	inviteHandler := handlers.NewInviteHandler(deps.Invites, events)
	commentaireHandler := handlers.NewCommentaireHandler(deps.Commentaires, events)
	notificationHandler := handlers.NewNotificationHandler(deps.Subscriptions, deps.Push)
	healthHandler := handlers.NewHealthHandler(cfg.Environment, cfg.StorageBackend, deps.StorageCheck)
	statsHandler := handlers.NewStatsHandler(deps.Media, deps.Alerts, deps.Invites, deps.Commentaires)

	api := router.PathPrefix("/api").Subrouter()
	api.NotFoundHandler = notFound
	api.MethodNotAllowedHandler = notFound

	// 📸 Médias
	api.HandleFunc("/media", mediaHandler.GetMedias).Methods(http.MethodGet)
	api.HandleFunc("/media/upload", mediaHandler.Upload).Methods(http.MethodPost)
	api.HandleFunc("/media/{filename:.+}", mediaHandler.DeleteMedia).Methods(http.MethodDelete)

	// 📢 Infos
	api.HandleFunc("/info", infoHandler.GetAlerts).Methods(http.MethodGet)
	api.HandleFunc("/info/add", infoHandler.AddAlert).Methods(http.MethodPost)
	api.HandleFunc("/info/{id}", infoHandler.DeleteAlert).Methods(http.MethodDelete)

	// 💌 Invités
	api.HandleFunc("/invite", inviteHandler.GetInvites).Methods(http.MethodGet)
	api.HandleFunc("/invite/register", inviteHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/invite/{id}", inviteHandler.DeleteInvite).Methods(http.MethodDelete)

	// 💬 Livre d'or
	api.HandleFunc("/commentaires", commentaireHandler.GetCommentaires).Methods(http.MethodGet)
	api.HandleFunc("/commentaires/add", commentaireHandler.AddCommentaire).Methods(http.MethodPost)
	api.HandleFunc("/commentaires/{id}", commentaireHandler.DeleteCommentaire).Methods(http.MethodDelete)

	// 🔔 Notifications push
	api.HandleFunc("/notifications/vapid-public-key", notificationHandler.GetVAPIDPublicKey).Methods(http.MethodGet)
	api.HandleFunc("/notifications/subscribe", notificationHandler.Subscribe).Methods(http.MethodPost)
	api.HandleFunc("/notifications/unsubscribe", notificationHandler.Unsubscribe).Methods(http.MethodPost)

	api.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet)
	api.HandleFunc("/stats", statsHandler.GetStats).Methods(http.MethodGet)

	// 🔌 Flux d'événements en direct
	if deps.Hub != nil {
		router.HandleFunc("/ws/live", websocket.NewHandler(deps.Hub).ServeWS).Methods(http.MethodGet)
	}

	// Site statique : toute autre requête GET, sans fichiers cachés ni données
	static := newStaticHandler(cfg.SiteRoot, cfg.PrivateFiles(), notFound)
	router.PathPrefix("/").Handler(static).Methods(http.MethodGet, http.MethodHead)

	var handler http.Handler = router
	if cfg.RateLimitPerMinute > 0 {
		handler = middleware.NewRateLimiter(cfg.RateLimitPerMinute).Middleware(handler)
	}
	handler = middleware.Recover(handler)
	handler = middleware.CORS(cfg.CORSOrigins)(handler)
	handler = middleware.Logging(deps.Slack)(handler)

	return handler
}
