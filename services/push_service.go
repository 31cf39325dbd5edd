package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/charmbracelet/log"

	"mariage-backend/database"
	"mariage-backend/models"
)

// PushService envoie des notifications Web Push (VAPID) aux navigateurs abonnés
type PushService struct {
	subscriptionRepo *database.SubscriptionRepository
	vapidPublicKey   string
	vapidPrivateKey  string
	vapidSubject     string
	client           *http.Client
}

// NewPushService crée le service ; sans clés VAPID il reste désactivé
func NewPushService(subscriptionRepo *database.SubscriptionRepository, vapidPublicKey, vapidPrivateKey, vapidSubject string) *PushService {
	if vapidPublicKey == "" || vapidPrivateKey == "" {
		log.Warn("⚠️  Clés VAPID non configurées - notifications push désactivées")
	}
	return &PushService{
		subscriptionRepo: subscriptionRepo,
		vapidPublicKey:   vapidPublicKey,
		vapidPrivateKey:  vapidPrivateKey,
		vapidSubject:     vapidSubject,
		client:           &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled indique si les clés VAPID sont présentes
func (s *PushService) Enabled() bool {
	return s != nil && s.vapidPublicKey != "" && s.vapidPrivateKey != ""
}

// PublicKey retourne la clé publique VAPID
func (s *PushService) PublicKey() string {
	return s.vapidPublicKey
}

// SendToAll envoie la notification à tous les abonnés.
// Les abonnements expirés (404 / 410) sont supprimés.
func (s *PushService) SendToAll(ctx context.Context, payload models.NotificationPayload) (sent, failed int, err error) {
	if !s.Enabled() {
		return 0, 0, nil
	}

	subscriptions, err := s.subscriptionRepo.FindAll(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("erreur lors de la récupération des abonnements: %w", err)
	}
	if len(subscriptions) == 0 {
		return 0, 0, nil
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return 0, 0, fmt.Errorf("erreur lors de la création du payload: %w", err)
	}

	for _, sub := range subscriptions {
		status, err := s.send(ctx, payloadBytes, sub)
		if err != nil {
			log.Warnf("❌ Erreur lors de l'envoi de la notification à %s: %v", sub.Endpoint, err)
			failed++
			continue
		}

		switch {
		case status == http.StatusCreated || status == http.StatusOK:
			sent++
		case status == http.StatusNotFound || status == http.StatusGone:
			log.Infof("🗑️  Suppression de l'abonnement expiré: %s", sub.Endpoint)
			if err := s.subscriptionRepo.DeleteByEndpoint(ctx, sub.Endpoint); err != nil {
				log.Warnf("⚠️  Suppression impossible pour %s: %v", sub.Endpoint, err)
			}
			failed++
		default:
			log.Warnf("⚠️  Réponse inattendue pour %s: %d", sub.Endpoint, status)
			failed++
		}
	}

	log.Infof("📊 Notifications envoyées: %d/%d (échecs: %d)", sent, len(subscriptions), failed)
	return sent, failed, nil
}

func (s *PushService) send(ctx context.Context, payload []byte, sub models.PushSubscription) (int, error) {
	resp, err := webpush.SendNotificationWithContext(ctx, payload, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.Keys.P256dh,
			Auth:   sub.Keys.Auth,
		},
	}, &webpush.Options{
		HTTPClient:      s.client,
		Subscriber:      s.vapidSubject,
		VAPIDPublicKey:  s.vapidPublicKey,
		VAPIDPrivateKey: s.vapidPrivateKey,
		TTL:             86400, // 24 heures en secondes
		Urgency:         webpush.UrgencyHigh,
	})
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

// NotifyAlert diffuse une nouvelle alerte en arrière-plan, sans bloquer la requête
func (s *PushService) NotifyAlert(alert models.Alert) {
	if !s.Enabled() {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		payload := models.NotificationPayload{
			Title: "💍 Nouvelle info",
			Body:  alert.Message,
			Icon:  "/favicon.png",
			Data: map[string]interface{}{
				"type":     models.EventAlertAdded,
				"alert_id": alert.ID,
				"url":      "/",
			},
		}

		if _, _, err := s.SendToAll(ctx, payload); err != nil {
			log.Errorf("❌ Erreur lors de la diffusion de l'alerte %d: %v", alert.ID, err)
		}
	}()
}
