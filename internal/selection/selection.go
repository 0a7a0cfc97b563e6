// Package selection persists the last selected picker category.
package selection

import (
	"context"

	"go.uber.org/zap"

	"textmathkb/internal/catalog"
	"textmathkb/internal/kvstore"
	"textmathkb/internal/logging"
)

// keySuffix is appended to the namespace. Bump the version when the stored
// value changes meaning.
const keySuffix = ".v1.emoji.lastCategory"

// Store loads and saves the last category through a key-value store.
// It never returns errors: failures are logged and treated as "nothing saved".
type Store struct {
	kv  kvstore.Store
	cat *catalog.Catalog
	key string
}

// New returns a Store writing under "<namespace>.v1.emoji.lastCategory".
func New(kv kvstore.Store, cat *catalog.Catalog, namespace string) *Store {
	return &Store{kv: kv, cat: cat, key: namespace + keySuffix}
}

// Key returns the key the selection is stored under.
func (s *Store) Key() string {
	return s.key
}

// Load returns the persisted category if it still names a selectable
// category of the current catalog.
func (s *Store) Load(ctx context.Context) (string, bool) {
	log := logging.Get(logging.CategorySelection)

	id, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		log.Warn("failed to read last category", zap.String("key", s.key), zap.Error(err))
		return "", false
	}
	if !ok {
		log.Debug("no saved category", zap.String("key", s.key))
		return "", false
	}
	if !s.cat.IsSelectable(id) {
		log.Info("ignoring stale saved category", zap.String("category", id))
		return "", false
	}
	return id, true
}

// Save records id. Store failures are logged and dropped.
func (s *Store) Save(ctx context.Context, id string) {
	if err := s.kv.Set(ctx, s.key, id); err != nil {
		logging.Get(logging.CategorySelection).Warn("failed to save last category",
			zap.String("category", id), zap.Error(err))
		return
	}
	logging.Get(logging.CategorySelection).Debug("saved last category", zap.String("category", id))
}
