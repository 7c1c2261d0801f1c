package repositories

import (
	"context"
	"errors"

	"github.com/Dosada05/arbitro/models"
	"github.com/Dosada05/arbitro/storage"
)

var errNoRegistry = errors.New("team registry not saved yet")

// TeamRepository keeps the whole team registry as a single document.
type TeamRepository interface {
	List(ctx context.Context) ([]models.Team, error)
	ReplaceAll(ctx context.Context, teams []models.Team) error
}

type storeTeamRepository struct {
	store storage.Store
}

func NewTeamRepository(store storage.Store) TeamRepository {
	return &storeTeamRepository{store: store}
}

func (r *storeTeamRepository) List(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	err := loadJSON(ctx, r.store, teamRegistryKey, &teams, errNoRegistry)
	if errors.Is(err, errNoRegistry) {
		return []models.Team{}, nil
	}
	if err != nil {
		return nil, err
	}
	if teams == nil {
		teams = []models.Team{}
	}
	return teams, nil
}

func (r *storeTeamRepository) ReplaceAll(ctx context.Context, teams []models.Team) error {
	if teams == nil {
		teams = []models.Team{}
	}
	return saveJSON(ctx, r.store, teamRegistryKey, teams)
}
