package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Backends de stockage des documents
const (
	StorageFile  = "file"
	StorageMongo = "mongo"
)

// Config contient toutes les configurations de l'application
type Config struct {
	Port        string
	Host        string
	Environment string
	LogLevel    string
	CORSOrigins []string

	// Fichiers et dossiers servis / persistés (relatifs au dossier de travail)
	SiteRoot         string
	MediaDir         string
	MediaURLPrefix   string
	InfoFile         string
	InviteFile       string
	CommentaireFile  string
	SubscriptionFile string
	EnvFiles         []string

	MaxAlerts          int
	MaxUploadBytes     int64
	RateLimitPerMinute int

	StorageBackend string
	MongoURI       string
	MongoDB        string

	VAPIDPublicKey  string
	VAPIDPrivateKey string
	VAPIDSubject    string

	SlackWebhookURL string
}

// Default retourne la configuration par défaut, sans lire l'environnement
func Default() *Config {
	return &Config{
		Port:               "8000",
		Host:               "0.0.0.0",
		Environment:        "development",
		LogLevel:           "info",
		CORSOrigins:        []string{"*"},
		SiteRoot:           ".",
		MediaDir:           "media",
		MediaURLPrefix:     "media",
		InfoFile:           "info.json",
		InviteFile:         "invite.json",
		CommentaireFile:    "commentaire.json",
		SubscriptionFile:   "abonnements.json",
		MaxAlerts:          50,
		MaxUploadBytes:     500 << 20,
		RateLimitPerMinute: 0,
		StorageBackend:     StorageFile,
		MongoURI:           "mongodb://localhost:27017",
		MongoDB:            "mariage_db",
		VAPIDSubject:       "mailto:contact@example.com",
	}
}

// Load charge la configuration depuis les variables d'environnement.
// envFiles permet de préciser les fichiers .env à lire (".env" par défaut).
func Load(envFiles ...string) (*Config, error) {
	// Charger le fichier .env s'il existe
	_ = godotenv.Load(envFiles...)

	def := Default()
	config := &Config{
		Port:             getEnv("PORT", def.Port),
		Host:             getEnv("HOST", def.Host),
		Environment:      getEnv("ENVIRONMENT", def.Environment),
		LogLevel:         getEnv("LOG_LEVEL", def.LogLevel),
		SiteRoot:         getEnv("SITE_ROOT", def.SiteRoot),
		MediaDir:         getEnv("MEDIA_DIR", def.MediaDir),
		MediaURLPrefix:   getEnv("MEDIA_URL_PREFIX", def.MediaURLPrefix),
		InfoFile:         getEnv("INFO_FILE", def.InfoFile),
		InviteFile:       getEnv("INVITE_FILE", def.InviteFile),
		CommentaireFile:  getEnv("COMMENTAIRE_FILE", def.CommentaireFile),
		SubscriptionFile: getEnv("SUBSCRIPTION_FILE", def.SubscriptionFile),
		StorageBackend:   strings.ToLower(getEnv("STORAGE_BACKEND", def.StorageBackend)),
		MongoURI:         getEnv("MONGO_URI", def.MongoURI),
		MongoDB:          getEnv("MONGO_DB", def.MongoDB),
		VAPIDPublicKey:   getEnv("VAPID_PUBLIC_KEY", ""),
		VAPIDPrivateKey:  getEnv("VAPID_PRIVATE_KEY", ""),
		VAPIDSubject:     getEnv("VAPID_SUBJECT", def.VAPIDSubject),
		SlackWebhookURL:  getEnv("SLACK_WEBHOOK_URL", ""),
		EnvFiles:         envFiles,
	}
	if len(config.EnvFiles) == 0 {
		config.EnvFiles = []string{".env"}
	}

	var err error
	if config.MaxAlerts, err = getEnvInt("MAX_ALERTS", def.MaxAlerts); err != nil {
		return nil, err
	}
	if config.RateLimitPerMinute, err = getEnvInt("RATE_LIMIT_PER_MINUTE", def.RateLimitPerMinute); err != nil {
		return nil, err
	}
	maxUploadMB, err := getEnvInt("MAX_UPLOAD_MB", int(def.MaxUploadBytes>>20))
	if err != nil {
		return nil, err
	}
	config.MaxUploadBytes = int64(maxUploadMB) << 20

	// Parser les origines CORS
	config.CORSOrigins = ParseOrigins(getEnv("CORS_ALLOWED_ORIGINS", "*"))

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate vérifie la cohérence de la configuration
func (c *Config) Validate() error {
	if c.StorageBackend != StorageFile && c.StorageBackend != StorageMongo {
		return fmt.Errorf("STORAGE_BACKEND invalide: %q (file ou mongo)", c.StorageBackend)
	}
	if c.MaxAlerts <= 0 {
		return fmt.Errorf("MAX_ALERTS doit être positif")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_MB doit être positif")
	}
	if (c.VAPIDPublicKey == "") != (c.VAPIDPrivateKey == "") {
		return fmt.Errorf("VAPID_PUBLIC_KEY et VAPID_PRIVATE_KEY doivent être définies ensemble")
	}
	return nil
}

// PushEnabled indique si les notifications Web Push sont configurées
func (c *Config) PushEnabled() bool {
	return c.VAPIDPublicKey != "" && c.VAPIDPrivateKey != ""
}

// PrivateFiles retourne les fichiers de données et de configuration
// qui ne doivent jamais être servis par le site statique
func (c *Config) PrivateFiles() []string {
	files := []string{c.InfoFile, c.InviteFile, c.CommentaireFile, c.SubscriptionFile}
	return append(files, c.EnvFiles...)
}

// Addr retourne l'adresse d'écoute host:port
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// ParseOrigins découpe une liste d'origines séparées par des virgules
func ParseOrigins(raw string) []string {
	originsList := strings.Split(raw, ",")
	origins := make([]string, 0, len(originsList))
	for _, origin := range originsList {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// getEnv récupère une variable d'environnement avec une valeur par défaut
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s invalide: %w", key, err)
	}
	return value, nil
}
