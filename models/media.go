package models

// Types de média
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// MediaItem représente un fichier (photo ou vidéo) du dossier média
type MediaItem struct {
	Filename  string `json:"filename"`
	Type      string `json:"type"` // "image" ou "video"
	Timestamp int64  `json:"timestamp"`
	URL       string `json:"url"`
}

// UploadResponse représente la réponse d'un upload réussi
type UploadResponse struct {
	Success  bool   `json:"success"`
	Filename string `json:"filename"`
	Caption  string `json:"caption"`
}

// MediaStats compte les médias par type
type MediaStats struct {
	Total  int `json:"total_medias"`
	Images int `json:"total_images"`
	Videos int `json:"total_videos"`
}
