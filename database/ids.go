package database

import (
	"sync"
	"time"
)

// IDGenerator produit des identifiants basés sur l'heure en millisecondes,
// strictement croissants même pour deux appels dans la même milliseconde.
type IDGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewIDGenerator crée un générateur basé sur l'horloge système
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{now: time.Now}
}

// Next retourne max(maintenant en ms, dernier + 1)
func (g *IDGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// NowMillis retourne l'heure courante du générateur en millisecondes
func (g *IDGenerator) NowMillis() int64 {
	return g.now().UnixMilli()
}
