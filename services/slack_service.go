package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
)

// SlackService signale les erreurs serveur sur un webhook Slack
type SlackService struct {
	webhookURL string
	client     *http.Client
}

// SlackMessage représente un message Slack
type SlackMessage struct {
	Text        string       `json:"text,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Attachment représente une pièce jointe Slack
type Attachment struct {
	Color     string  `json:"color,omitempty"`
	Title     string  `json:"title,omitempty"`
	Text      string  `json:"text,omitempty"`
	Fields    []Field `json:"fields,omitempty"`
	Timestamp int64   `json:"ts,omitempty"`
	Footer    string  `json:"footer,omitempty"`
}

// Field représente un champ dans une pièce jointe Slack
type Field struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

// ServerError décrit une requête terminée en 5xx
type ServerError struct {
	Method     string
	Path       string
	StatusCode int
	RequestID  string
	Origin     string
	UserAgent  string
}

// NewSlackService crée le service ; une URL vide le désactive
func NewSlackService(webhookURL string) *SlackService {
	if webhookURL == "" {
		log.Debug("Slack webhook URL non configuré - notifications Slack désactivées")
	}
	return &SlackService{
		webhookURL: webhookURL,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Enabled indique si un webhook est configuré
func (s *SlackService) Enabled() bool {
	return s != nil && s.webhookURL != ""
}

// Send publie la description d'une erreur serveur sur Slack
func (s *SlackService) Send(ctx context.Context, e ServerError) error {
	if !s.Enabled() {
		return nil
	}

	fields := []Field{
		{Title: "Méthode", Value: e.Method, Short: true},
		{Title: "Status Code", Value: strconv.Itoa(e.StatusCode), Short: true},
		{Title: "Chemin", Value: e.Path, Short: false},
	}
	if e.RequestID != "" {
		fields = append(fields, Field{Title: "Request ID", Value: e.RequestID, Short: true})
	}
	if e.Origin != "" {
		fields = append(fields, Field{Title: "Origin", Value: e.Origin, Short: true})
	}
	if e.UserAgent != "" {
		fields = append(fields, Field{Title: "User-Agent", Value: e.UserAgent, Short: false})
	}

	slackMsg := SlackMessage{
		Attachments: []Attachment{
			{
				Color:     "danger",
				Title:     "🚨 Erreur serveur",
				Text:      http.StatusText(e.StatusCode),
				Timestamp: time.Now().Unix(),
				Footer:    "Mariage - Backend",
				Fields:    fields,
			},
		},
	}

	jsonData, err := json.Marshal(slackMsg)
	if err != nil {
		return fmt.Errorf("erreur lors de la sérialisation du message Slack: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("erreur lors de la création de la requête: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("erreur lors de l'envoi à Slack: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Slack a retourné un code d'erreur: %d", resp.StatusCode)
	}

	log.Infof("✓ Notification Slack envoyée pour l'erreur: %s %s", e.Method, e.Path)
	return nil
}

// NotifyServerError envoie la notification en arrière-plan
func (s *SlackService) NotifyServerError(e ServerError) {
	if !s.Enabled() {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.Send(ctx, e); err != nil {
			log.Errorf("❌ Erreur lors de l'envoi de la notification Slack: %v", err)
		}
	}()
}
