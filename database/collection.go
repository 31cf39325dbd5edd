package database

import (
	"context"
	"sync"

	"mariage-backend/utils"
)

// collection sérialise les lectures-modifications-écritures d'un document.
// Le verrou est tenu pendant tout le cycle ensure/load/save.
type collection[T any] struct {
	mu    sync.Mutex
	store DocumentStore[T]
	ids   *IDGenerator
	idOf  func(T) int64
}

func newCollection[T any](store DocumentStore[T], ids *IDGenerator, idOf func(T) int64) *collection[T] {
	if ids == nil {
		ids = NewIDGenerator()
	}
	return &collection[T]{store: store, ids: ids, idOf: idOf}
}

// list retourne la collection telle quelle
func (c *collection[T]) list(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.EnsureExists(ctx); err != nil {
		return nil, err
	}
	return c.store.Load(ctx)
}

// mutate applique fn à la liste et n'écrit que si fn signale un changement
func (c *collection[T]) mutate(ctx context.Context, fn func(items []T) ([]T, bool, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.EnsureExists(ctx); err != nil {
		return err
	}
	items, err := c.store.Load(ctx)
	if err != nil {
		return err
	}

	updated, changed, err := fn(items)
	if err != nil || !changed {
		return err
	}
	return c.store.Save(ctx, updated)
}

// deleteByID retire l'entrée id ; 404 sans écriture si elle n'existe pas
func (c *collection[T]) deleteByID(ctx context.Context, id int64, notFoundMsg string) error {
	return c.mutate(ctx, func(items []T) ([]T, bool, error) {
		kept := make([]T, 0, len(items))
		for _, item := range items {
			if c.idOf(item) != id {
				kept = append(kept, item)
			}
		}
		if len(kept) == len(items) {
			return nil, false, utils.NotFound(notFoundMsg)
		}
		return kept, true, nil
	})
}
