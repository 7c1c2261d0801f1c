package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/Dosada05/arbitro/models"
	"github.com/Dosada05/arbitro/storage"
)

var ErrMatchNotFound = errors.New("saved match not found")

// MatchRepository persists officiating snapshots under their save keys.
type MatchRepository interface {
	Save(ctx context.Context, match *models.SavedMatch) error
	GetByKey(ctx context.Context, key string) (*models.SavedMatch, error)
	Exists(ctx context.Context, key string) (bool, error)
	ListKeys(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, key string) error
}

type storeMatchRepository struct {
	store storage.Store
}

func NewMatchRepository(store storage.Store) MatchRepository {
	return &storeMatchRepository{store: store}
}

func matchKey(saveKey string) string {
	return matchPrefix + saveKey
}

func (r *storeMatchRepository) Save(ctx context.Context, m *models.SavedMatch) error {
	m.UpdatedAt = time.Now().UTC()
	return saveJSON(ctx, r.store, matchKey(m.Key), m)
}

func (r *storeMatchRepository) GetByKey(ctx context.Context, key string) (*models.SavedMatch, error) {
	m := &models.SavedMatch{}
	if err := loadJSON(ctx, r.store, matchKey(key), m, ErrMatchNotFound); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *storeMatchRepository) Exists(ctx context.Context, key string) (bool, error) {
	return exists(ctx, r.store, matchKey(key))
}

func (r *storeMatchRepository) ListKeys(ctx context.Context) ([]string, error) {
	return listSuffixes(ctx, r.store, matchPrefix)
}

func (r *storeMatchRepository) Delete(ctx context.Context, key string) error {
	found, err := r.Exists(ctx, key)
	if err != nil {
		return err
	}
	if !found {
		return ErrMatchNotFound
	}
	return r.store.Delete(ctx, matchKey(key))
}
