package repositories

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/Dosada05/arbitro/models"
	"github.com/Dosada05/arbitro/storage"
)

func TestTournamentRepositoryLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewTournamentRepository(storage.NewMemoryStore())

	cup := &models.Tournament{Name: "Cup", EntryPhase: models.PhaseFinal}
	if err := repo.Create(ctx, cup); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if cup.CreatedAt.IsZero() {
		t.Error("Create() should stamp CreatedAt")
	}
	if err := repo.Create(ctx, &models.Tournament{Name: "Cup"}); !errors.Is(err, ErrTournamentNameConflict) {
		t.Errorf("expected ErrTournamentNameConflict, got %v", err)
	}

	got, err := repo.GetByName(ctx, "Cup")
	if err != nil {
		t.Fatalf("GetByName() failed: %v", err)
	}
	if got.EntryPhase != models.PhaseFinal {
		t.Errorf("unexpected entry phase %q", got.EntryPhase)
	}

	if err := repo.Update(ctx, &models.Tournament{Name: "Ghost"}); !errors.Is(err, ErrTournamentNotFound) {
		t.Errorf("expected ErrTournamentNotFound on update, got %v", err)
	}

	_ = repo.Create(ctx, &models.Tournament{Name: "Copa"})
	names, err := repo.ListNames(ctx)
	if err != nil {
		t.Fatalf("ListNames() failed: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"Copa", "Cup"}) {
		t.Errorf("unexpected names %v", names)
	}

	if err := repo.Delete(ctx, "Cup"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := repo.GetByName(ctx, "Cup"); !errors.Is(err, ErrTournamentNotFound) {
		t.Errorf("expected ErrTournamentNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, "Cup"); !errors.Is(err, ErrTournamentNotFound) {
		t.Errorf("expected ErrTournamentNotFound on second delete, got %v", err)
	}
}

func TestLeagueRepositoryConflict(t *testing.T) {
	ctx := context.Background()
	repo := NewLeagueRepository(storage.NewMemoryStore())

	if err := repo.Create(ctx, &models.League{Name: "Liga"}); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if err := repo.Create(ctx, &models.League{Name: "Liga"}); !errors.Is(err, ErrLeagueNameConflict) {
		t.Errorf("expected ErrLeagueNameConflict, got %v", err)
	}
	if _, err := repo.GetByName(ctx, "Other"); !errors.Is(err, ErrLeagueNotFound) {
		t.Errorf("expected ErrLeagueNotFound, got %v", err)
	}
}

func TestEntitiesDoNotShareNamespace(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	tournaments := NewTournamentRepository(store)
	leagues := NewLeagueRepository(store)

	if err := tournaments.Create(ctx, &models.Tournament{Name: "Open"}); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if err := leagues.Create(ctx, &models.League{Name: "Open"}); err != nil {
		t.Errorf("a league may share a tournament's name, got %v", err)
	}
	names, _ := leagues.ListNames(ctx)
	if len(names) != 1 {
		t.Errorf("expected one league, got %v", names)
	}
}

func TestMatchRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMatchRepository(storage.NewMemoryStore())
	key := "Tournament (Cup): A vs B"

	if err := repo.Save(ctx, models.NewSavedMatch(key, "A", "B")); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	m, err := repo.GetByKey(ctx, key)
	if err != nil {
		t.Fatalf("GetByKey() failed: %v", err)
	}
	if m.State.TeamA.Name != "A" || m.TotalTime != models.DefaultMatchLength || m.UpdatedAt.IsZero() {
		t.Errorf("unexpected snapshot %+v", m)
	}

	keys, _ := repo.ListKeys(ctx)
	if !reflect.DeepEqual(keys, []string{key}) {
		t.Errorf("unexpected keys %v", keys)
	}
	if err := repo.Delete(ctx, "missing"); !errors.Is(err, ErrMatchNotFound) {
		t.Errorf("expected ErrMatchNotFound, got %v", err)
	}
}

func TestTeamRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewTeamRepository(storage.NewMemoryStore())

	teams, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if teams == nil || len(teams) != 0 {
		t.Errorf("expected an empty registry, got %v", teams)
	}

	want := []models.Team{{Name: "Brazil", Players: []models.Player{{Name: "Alisson", Number: 1, Position: models.PositionGoalkeeper}}}}
	if err := repo.ReplaceAll(ctx, want); err != nil {
		t.Fatalf("ReplaceAll() failed: %v", err)
	}
	got, _ := repo.List(ctx)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}
