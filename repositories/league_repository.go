package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/Dosada05/arbitro/models"
	"github.com/Dosada05/arbitro/storage"
)

var (
	ErrLeagueNotFound     = errors.New("league not found")
	ErrLeagueNameConflict = errors.New("league name already exists")
)

type LeagueRepository interface {
	Create(ctx context.Context, league *models.League) error
	GetByName(ctx context.Context, name string) (*models.League, error)
	ListNames(ctx context.Context) ([]string, error)
	Update(ctx context.Context, league *models.League) error
	Delete(ctx context.Context, name string) error
}

type storeLeagueRepository struct {
	store storage.Store
}

func NewLeagueRepository(store storage.Store) LeagueRepository {
	return &storeLeagueRepository{store: store}
}

func leagueKey(name string) string {
	return leaguePrefix + name
}

func (r *storeLeagueRepository) Create(ctx context.Context, l *models.League) error {
	key := leagueKey(l.Name)
	found, err := exists(ctx, r.store, key)
	if err != nil {
		return err
	}
	if found {
		return ErrLeagueNameConflict
	}

	now := time.Now().UTC()
	l.CreatedAt = now
	l.UpdatedAt = now
	return saveJSON(ctx, r.store, key, l)
}

func (r *storeLeagueRepository) GetByName(ctx context.Context, name string) (*models.League, error) {
	l := &models.League{}
	if err := loadJSON(ctx, r.store, leagueKey(name), l, ErrLeagueNotFound); err != nil {
		return nil, err
	}
	return l, nil
}

func (r *storeLeagueRepository) ListNames(ctx context.Context) ([]string, error) {
	return listSuffixes(ctx, r.store, leaguePrefix)
}

func (r *storeLeagueRepository) Update(ctx context.Context, l *models.League) error {
	key := leagueKey(l.Name)
	found, err := exists(ctx, r.store, key)
	if err != nil {
		return err
	}
	if !found {
		return ErrLeagueNotFound
	}

	l.UpdatedAt = time.Now().UTC()
	return saveJSON(ctx, r.store, key, l)
}

func (r *storeLeagueRepository) Delete(ctx context.Context, name string) error {
	key := leagueKey(name)
	found, err := exists(ctx, r.store, key)
	if err != nil {
		return err
	}
	if !found {
		return ErrLeagueNotFound
	}
	return r.store.Delete(ctx, key)
}
