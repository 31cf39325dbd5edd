package utils

import (
	"bytes"
	"crypto/ecdh"
	"encoding/base64"
	"fmt"
	"strings"

	webpush "github.com/SherClockHolmes/webpush-go"
)

// GenerateVAPIDKeys génère une paire de clés VAPID (publique et privée), encodées en base64url
func GenerateVAPIDKeys() (publicKey, privateKey string, err error) {
	// webpush retourne la clé privée en premier
	privateKey, publicKey, err = webpush.GenerateVAPIDKeys()
	if err != nil {
		return "", "", fmt.Errorf("erreur lors de la génération de la clé: %w", err)
	}

	return publicKey, privateKey, nil
}

func decodeKey(key string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(key, "="))
}

// CheckVAPIDKeys vérifie que la clé privée est valide et correspond à la clé publique
func CheckVAPIDKeys(publicKey, privateKey string) error {
	privBytes, err := decodeKey(privateKey)
	if err != nil {
		return fmt.Errorf("erreur lors du décodage de la clé privée: %w", err)
	}
	pubBytes, err := decodeKey(publicKey)
	if err != nil {
		return fmt.Errorf("erreur lors du décodage de la clé publique: %w", err)
	}

	key, err := ecdh.P256().NewPrivateKey(privBytes)
	if err != nil {
		return fmt.Errorf("clé privée VAPID invalide: %w", err)
	}
	if !bytes.Equal(key.PublicKey().Bytes(), pubBytes) {
		return fmt.Errorf("la clé publique VAPID ne correspond pas à la clé privée")
	}
	return nil
}
