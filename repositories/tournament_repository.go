package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/Dosada05/arbitro/models"
	"github.com/Dosada05/arbitro/storage"
)

var (
	ErrTournamentNotFound     = errors.New("tournament not found")
	ErrTournamentNameConflict = errors.New("tournament name already exists")
)

type TournamentRepository interface {
	Create(ctx context.Context, tournament *models.Tournament) error
	GetByName(ctx context.Context, name string) (*models.Tournament, error)
	ListNames(ctx context.Context) ([]string, error)
	Update(ctx context.Context, tournament *models.Tournament) error
	Delete(ctx context.Context, name string) error
}

type storeTournamentRepository struct {
	store storage.Store
}

func NewTournamentRepository(store storage.Store) TournamentRepository {
	return &storeTournamentRepository{store: store}
}

func tournamentKey(name string) string {
	return tournamentPrefix + name
}

func (r *storeTournamentRepository) Create(ctx context.Context, t *models.Tournament) error {
	key := tournamentKey(t.Name)
	found, err := exists(ctx, r.store, key)
	if err != nil {
		return err
	}
	if found {
		return ErrTournamentNameConflict
	}

	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return saveJSON(ctx, r.store, key, t)
}

func (r *storeTournamentRepository) GetByName(ctx context.Context, name string) (*models.Tournament, error) {
	t := &models.Tournament{}
	if err := loadJSON(ctx, r.store, tournamentKey(name), t, ErrTournamentNotFound); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *storeTournamentRepository) ListNames(ctx context.Context) ([]string, error) {
	return listSuffixes(ctx, r.store, tournamentPrefix)
}

func (r *storeTournamentRepository) Update(ctx context.Context, t *models.Tournament) error {
	key := tournamentKey(t.Name)
	found, err := exists(ctx, r.store, key)
	if err != nil {
		return err
	}
	if !found {
		return ErrTournamentNotFound
	}

	t.UpdatedAt = time.Now().UTC()
	return saveJSON(ctx, r.store, key, t)
}

func (r *storeTournamentRepository) Delete(ctx context.Context, name string) error {
	key := tournamentKey(name)
	found, err := exists(ctx, r.store, key)
	if err != nil {
		return err
	}
	if !found {
		return ErrTournamentNotFound
	}
	return r.store.Delete(ctx, key)
}
