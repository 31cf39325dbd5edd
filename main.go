package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"mariage-backend/config"
	"mariage-backend/database"
	"mariage-backend/models"
	"mariage-backend/router"
	"mariage-backend/services"
	"mariage-backend/websocket"
)

func main() {
	app := &cli.Command{
		Name:  "mariage-backend",
		Usage: "Serveur du site de mariage : médias, infos, invités et livre d'or",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port d'écoute (remplace PORT)",
			},
			&cli.StringFlag{
				Name:  "host",
				Usage: "Adresse d'écoute (remplace HOST)",
			},
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Usage:   "Dossier du site statique (remplace SITE_ROOT)",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Fichier .env à charger",
				Value: ".env",
			},
		},
		Action: serve,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

// loadConfig lit la configuration puis applique les options de la ligne de commande
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("env-file"))
	if err != nil {
		return nil, fmt.Errorf("erreur lors du chargement de la configuration: %w", err)
	}

	if cmd.IsSet("port") {
		cfg.Port = cmd.String("port")
	}
	if cmd.IsSet("host") {
		cfg.Host = cmd.String("host")
	}
	if cmd.IsSet("root") {
		cfg.SiteRoot = cmd.String("root")
	}

	return cfg, nil
}

func setupLogger(cfg *config.Config) {
	log.SetReportTimestamp(true)
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warnf("⚠️  LOG_LEVEL invalide %q, niveau info utilisé", cfg.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

// newStore choisit le backend de stockage d'une collection
func newStore[T any](cfg *config.Config, path, key string) (database.DocumentStore[T], error) {
	if cfg.StorageBackend == config.StorageMongo {
		return database.NewMongoStore[T](database.DB, key)
	}
	return database.NewJSONFileStore[T](path, key), nil
}

// buildDeps crée les stores, repositories et services
func buildDeps(ctx context.Context, cfg *config.Config) (router.Deps, error) {
	alertStore, err := newStore[models.Alert](cfg, cfg.InfoFile, "alerts")
	if err != nil {
		return router.Deps{}, err
	}
	inviteStore, err := newStore[models.Invite](cfg, cfg.InviteFile, "invites")
	if err != nil {
		return router.Deps{}, err
	}
	commentaireStore, err := newStore[models.Commentaire](cfg, cfg.CommentaireFile, "commentaires")
	if err != nil {
		return router.Deps{}, err
	}
	subscriptionStore, err := newStore[models.PushSubscription](cfg, cfg.SubscriptionFile, "abonnements")
	if err != nil {
		return router.Deps{}, err
	}

	// Créer les documents au démarrage
	for _, ensure := range []func(context.Context) error{
		alertStore.EnsureExists,
		inviteStore.EnsureExists,
		commentaireStore.EnsureExists,
		subscriptionStore.EnsureExists,
	} {
		if err := ensure(ctx); err != nil {
			return router.Deps{}, err
		}
	}

	media := database.NewMediaStore(cfg.MediaDir, cfg.MediaURLPrefix)
	if err := media.EnsureDir(); err != nil {
		return router.Deps{}, err
	}

	ids := database.NewIDGenerator()
	subscriptions := database.NewSubscriptionRepository(subscriptionStore, ids)

	deps := router.Deps{
		Media:         media,
		Alerts:        database.NewAlertRepository(alertStore, ids, cfg.MaxAlerts),
		Invites:       database.NewInviteRepository(inviteStore, ids),
		Commentaires:  database.NewCommentaireRepository(commentaireStore, ids),
		Subscriptions: subscriptions,
		Push:          services.NewPushService(subscriptions, cfg.VAPIDPublicKey, cfg.VAPIDPrivateKey, cfg.VAPIDSubject),
		Slack:         services.NewSlackService(cfg.SlackWebhookURL),
	}

	if cfg.StorageBackend == config.StorageMongo {
		deps.StorageCheck = database.Ping
	} else {
		deps.StorageCheck = func() error {
			_, err := os.Stat(cfg.MediaDir)
			return err
		}
	}

	return deps, nil
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	setupLogger(cfg)

	// Connexion à MongoDB uniquement si demandé
	if cfg.StorageBackend == config.StorageMongo {
		if err := database.Connect(cfg.MongoURI, cfg.MongoDB); err != nil {
			return fmt.Errorf("erreur de connexion à MongoDB: %w", err)
		}
		defer database.Close()
	}

	deps, err := buildDeps(ctx, cfg)
	if err != nil {
		return err
	}

	// Hub WebSocket pour les mises à jour en direct
	hub := websocket.NewHub()
	go hub.Run()
	defer hub.Shutdown()
	deps.Hub = hub
	log.Info("✅ Hub WebSocket initialisé et en cours d'exécution")

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.New(cfg, deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Infof("🚀 Serveur démarré sur http://%s", cfg.Addr())
		log.Infof("📝 Environnement: %s", cfg.Environment)
		log.Infof("🗄️  Stockage: %s", cfg.StorageBackend)
		log.Infof("📁 Site: %s, médias: %s", cfg.SiteRoot, cfg.MediaDir)
		if deps.Push.Enabled() {
			log.Info("🔔 Notifications push activées")
		}

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Attendre le signal d'arrêt
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("erreur du serveur: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("🛑 Arrêt du serveur...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("❌ Erreur lors de l'arrêt du serveur: %v", err)
	}
	log.Info("✓ Serveur arrêté proprement")

	return nil
}
