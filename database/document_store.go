package database

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"mariage-backend/utils"
)

// DocumentStore persiste une collection sous forme d'un document unique.
// Les implémentations ne gardent aucun cache : chaque Load relit le support.
type DocumentStore[T any] interface {
	// EnsureExists crée le document vide s'il n'existe pas encore
	EnsureExists(ctx context.Context) error
	// Load retourne la liste complète (jamais nil)
	Load(ctx context.Context) ([]T, error)
	// Save remplace la liste complète
	Save(ctx context.Context, items []T) error
}

// JSONFileStore stocke une collection dans un fichier JSON {"<key>": [...]}
type JSONFileStore[T any] struct {
	path string
	key  string
}

// NewJSONFileStore crée un store pour le fichier et la clé de liste donnés
func NewJSONFileStore[T any](path, key string) *JSONFileStore[T] {
	return &JSONFileStore[T]{path: path, key: key}
}

// Path retourne le chemin du fichier
func (s *JSONFileStore[T]) Path() string {
	return s.path
}

// EnsureExists crée le fichier avec une liste vide s'il est absent
func (s *JSONFileStore[T]) EnsureExists(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := os.Stat(s.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("erreur lors de la vérification de %s: %w", s.path, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("erreur lors de la création du dossier de %s: %w", s.path, err)
	}
	if err := s.Save(ctx, nil); err != nil {
		return err
	}

	return nil
}

// Load lit et parse tout le fichier. Une clé absente donne une liste vide.
func (s *JSONFileStore[T]) Load(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la lecture de %s: %w", s.path, err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("erreur lors du décodage de %s: %w", s.path, err)
	}

	items := []T{}
	if raw, ok := doc[s.key]; ok && !bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("erreur lors du décodage de %s.%s: %w", s.path, s.key, err)
		}
	}

	return items, nil
}

// Save réécrit le fichier complet via un fichier temporaire renommé
func (s *JSONFileStore[T]) Save(ctx context.Context, items []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if items == nil {
		items = []T{}
	}

	var buf bytes.Buffer
	if err := utils.EncodeJSON(&buf, map[string][]T{s.key: items}, true); err != nil {
		return fmt.Errorf("erreur lors de l'encodage de %s: %w", s.path, err)
	}

	dir, base := filepath.Split(s.path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("erreur lors de la création du fichier temporaire pour %s: %w", s.path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("erreur lors de l'écriture de %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("erreur lors de l'écriture de %s: %w", s.path, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("erreur lors du remplacement de %s: %w", s.path, err)
	}

	return nil
}
