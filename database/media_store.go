package database

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"mariage-backend/constants"
	"mariage-backend/models"
	"mariage-backend/utils"
)

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true, ".bmp": true,
}

var videoExtensions = map[string]bool{
	".mp4": true, ".webm": true, ".mov": true, ".avi": true, ".mkv": true,
}

// MediaTypeOf classe un nom de fichier d'après son extension (insensible à la casse)
func MediaTypeOf(filename string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case imageExtensions[ext]:
		return models.MediaTypeImage, true
	case videoExtensions[ext]:
		return models.MediaTypeVideo, true
	default:
		return "", false
	}
}

// SanitizeFilename ne garde que le nom de base ("" si rien d'utilisable ne reste).
// Les séparateurs "/" et "\" sont tous deux traités comme des dossiers.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	base := path.Base(name)
	switch base {
	case ".", "..", "/", "":
		return ""
	}
	return base
}

// MediaStore gère les photos et vidéos d'un dossier
type MediaStore struct {
	dir       string
	urlPrefix string
}

// NewMediaStore crée un store pour le dossier dir ; les URLs sont préfixées par urlPrefix
func NewMediaStore(dir, urlPrefix string) *MediaStore {
	return &MediaStore{dir: dir, urlPrefix: urlPrefix}
}

// Dir retourne le dossier des médias
func (s *MediaStore) Dir() string {
	return s.dir
}

// EnsureDir crée le dossier s'il n'existe pas
func (s *MediaStore) EnsureDir() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("erreur lors de la création du dossier %s: %w", s.dir, err)
	}
	return nil
}

// List retourne les médias reconnus, les plus récents en premier
func (s *MediaStore) List(ctx context.Context) ([]models.MediaItem, error) {
	if err := s.EnsureDir(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("erreur lors du listing de %s: %w", s.dir, err)
	}

	items := make([]models.MediaItem, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		mediaType, ok := MediaTypeOf(name)
		if !ok {
			continue
		}

		// os.Stat suit les liens symboliques, comme pour un dossier classique
		info, err := os.Stat(filepath.Join(s.dir, name))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("erreur lors de la lecture de %s: %w", name, err)
		}
		if info.IsDir() {
			continue
		}

		items = append(items, models.MediaItem{
			Filename:  name,
			Type:      mediaType,
			Timestamp: info.ModTime().UnixMilli(),
			URL:       path.Join(s.urlPrefix, name),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Timestamp != items[j].Timestamp {
			return items[i].Timestamp > items[j].Timestamp
		}
		return items[i].Filename < items[j].Filename
	})

	return items, nil
}

// Save écrit src sous un nom libre dérivé de filename et retourne le nom retenu.
// Un fichier existant n'est jamais écrasé : nom_1.ext, nom_2.ext, ...
func (s *MediaStore) Save(ctx context.Context, filename string, src io.Reader) (string, error) {
	name := SanitizeFilename(filename)
	// Un nom caché ne serait jamais listé
	if name == "" || strings.HasPrefix(name, ".") {
		return "", utils.BadRequest(constants.ErrInvalidFilename)
	}

	ext := filepath.Ext(name)
	if _, ok := MediaTypeOf(name); !ok {
		return "", utils.BadRequest(fmt.Sprintf(constants.ErrExtNotAllowed, strings.ToLower(ext)))
	}

	if err := s.EnsureDir(); err != nil {
		return "", err
	}

	base := strings.TrimSuffix(name, ext)
	candidate := name
	var file *os.File
	for counter := 1; ; counter++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		f, err := os.OpenFile(filepath.Join(s.dir, candidate), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			file = f
			break
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("erreur lors de la création de %s: %w", candidate, err)
		}
		candidate = fmt.Sprintf("%s_%d%s", base, counter, ext)
	}

	dst := filepath.Join(s.dir, candidate)
	if _, err := io.Copy(file, src); err != nil {
		file.Close()
		os.Remove(dst)
		return "", fmt.Errorf("erreur lors de l'écriture de %s: %w", candidate, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("erreur lors de l'écriture de %s: %w", candidate, err)
	}

	return candidate, nil
}

// Delete supprime un fichier du dossier (nom ramené à son nom de base)
func (s *MediaStore) Delete(ctx context.Context, filename string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name := SanitizeFilename(filename)
	if name == "" {
		return utils.NotFound(constants.ErrFileNotFound)
	}

	target := filepath.Join(s.dir, name)
	info, err := os.Lstat(target)
	if errors.Is(err, fs.ErrNotExist) {
		return utils.NotFound(constants.ErrFileNotFound)
	}
	if err != nil {
		return fmt.Errorf("erreur lors de la lecture de %s: %w", name, err)
	}
	if info.IsDir() {
		return utils.NotFound(constants.ErrFileNotFound)
	}

	if err := os.Remove(target); err != nil {
		return fmt.Errorf("erreur lors de la suppression de %s: %w", name, err)
	}

	return nil
}

// Stats compte les médias par type
func (s *MediaStore) Stats(ctx context.Context) (models.MediaStats, error) {
	items, err := s.List(ctx)
	if err != nil {
		return models.MediaStats{}, err
	}

	stats := models.MediaStats{Total: len(items)}
	for _, item := range items {
		switch item.Type {
		case models.MediaTypeImage:
			stats.Images++
		case models.MediaTypeVideo:
			stats.Videos++
		}
	}
	return stats, nil
}
