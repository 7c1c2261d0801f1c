package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/arbitro/brackets"
	"github.com/Dosada05/arbitro/models"
	"github.com/Dosada05/arbitro/repositories"
)

type TournamentService interface {
	CreateTournament(ctx context.Context, input CreateTournamentInput) (*models.Tournament, error)
	GetTournament(ctx context.Context, name string) (*models.Tournament, error)
	ListTournaments(ctx context.Context) ([]TournamentSummary, error)
	DeleteTournament(ctx context.Context, name string) error
	// OpenMatchup assigns the save key of a ready matchup and makes sure a
	// match save exists under it.
	OpenMatchup(ctx context.Context, name string, matchupID int) (*models.Tournament, *models.SavedMatch, error)
	// ApplyResult advances the bracket. A key the tournament does not know
	// yields an error wrapping ErrMatchupNotFound and nothing is persisted.
	ApplyResult(ctx context.Context, name, key string, result models.MatchResult) (*models.Tournament, error)
}

type CreateTournamentInput struct {
	Name       string       `json:"name"`
	EntryPhase models.Phase `json:"entry_phase"`
	Teams      []string     `json:"teams"`
}

type tournamentService struct {
	tournamentRepo repositories.TournamentRepository
	matchRepo      repositories.MatchRepository
	keys           brackets.SaveKeys
	notifier       brackets.Notifier
	locks          *keyedLocker
	logger         *slog.Logger
}

func NewTournamentService(
	tournamentRepo repositories.TournamentRepository,
	matchRepo repositories.MatchRepository,
	keys brackets.SaveKeys,
	notifier brackets.Notifier,
	logger *slog.Logger,
) TournamentService {
	return &tournamentService{
		tournamentRepo: tournamentRepo,
		matchRepo:      matchRepo,
		keys:           keys,
		notifier:       notifier,
		locks:          newKeyedLocker(),
		logger:         loggerOrDefault(logger),
	}
}

func (s *tournamentService) CreateTournament(ctx context.Context, input CreateTournamentInput) (*models.Tournament, error) {
	t, err := brackets.BuildTournament(input.Teams, input.Name, input.EntryPhase, s.keys)
	if err != nil {
		return nil, engineError(err)
	}

	unlock := s.locks.Lock(t.Name)
	defer unlock()

	if err := s.tournamentRepo.Create(ctx, t); err != nil {
		if errors.Is(err, repositories.ErrTournamentNameConflict) {
			return nil, fmt.Errorf("%w: %w: %q", ErrValidationFailed, ErrTournamentNameConflict, t.Name)
		}
		return nil, fmt.Errorf("failed to create tournament %q: %w", t.Name, err)
	}

	s.logger.InfoContext(ctx, "tournament created",
		slog.String("tournament", t.Name),
		slog.String("entry_phase", string(t.EntryPhase)),
		slog.Int("teams", len(input.Teams)))
	s.announce(ctx, t)
	return t, nil
}

func (s *tournamentService) GetTournament(ctx context.Context, name string) (*models.Tournament, error) {
	t, err := s.tournamentRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament %q: %w", name, err)
	}
	return t, nil
}

func (s *tournamentService) ListTournaments(ctx context.Context) ([]TournamentSummary, error) {
	names, err := s.tournamentRepo.ListNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}

	loaded := make([]*TournamentSummary, len(names))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, name := range names {
		g.Go(func() error {
			t, err := s.tournamentRepo.GetByName(gCtx, name)
			if err != nil {
				// Deleted after ListNames.
				if errors.Is(err, repositories.ErrTournamentNotFound) {
					return nil
				}
				return fmt.Errorf("failed to load tournament %q: %w", name, err)
			}
			summary := &TournamentSummary{Name: t.Name, EntryPhase: t.EntryPhase}
			if champion, ok := brackets.Champion(t); ok {
				summary.Champion = &champion
			}
			loaded[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return compactSummaries(loaded), nil
}

func (s *tournamentService) DeleteTournament(ctx context.Context, name string) error {
	unlock := s.locks.Lock(name)
	defer unlock()

	if err := s.tournamentRepo.Delete(ctx, name); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return ErrTournamentNotFound
		}
		return fmt.Errorf("failed to delete tournament %q: %w", name, err)
	}

	removed, err := deleteOwnedMatches(ctx, s.matchRepo, s.keys, func(kind brackets.KeyKind, owner string) bool {
		return kind.IsTournament() && owner == name
	})
	if err != nil {
		return fmt.Errorf("tournament %q deleted but its match saves were not: %w", name, err)
	}

	s.logger.InfoContext(ctx, "tournament deleted", slog.String("tournament", name), slog.Int("match_saves_removed", removed))
	notify(ctx, s.notifier, brackets.WebSocketMessage{
		Type:    brackets.MessageTournamentDeleted,
		RoomID:  brackets.TournamentRoom(name),
		Payload: name,
	})
	return nil
}

func (s *tournamentService) OpenMatchup(ctx context.Context, name string, matchupID int) (*models.Tournament, *models.SavedMatch, error) {
	unlock := s.locks.Lock(name)
	defer unlock()

	t, err := s.GetTournament(ctx, name)
	if err != nil {
		return nil, nil, err
	}

	next, key, err := brackets.AssignGameSaveKey(t, matchupID, s.keys)
	if err != nil {
		return nil, nil, engineError(err)
	}

	if t.Matchup(matchupID).GameSaveKey == nil {
		if err := s.tournamentRepo.Update(ctx, next); err != nil {
			return nil, nil, fmt.Errorf("failed to store save key for tournament %q: %w", name, err)
		}
		s.logger.InfoContext(ctx, "matchup opened",
			slog.String("tournament", name),
			slog.Int("matchup_id", matchupID),
			slog.String("key", key))
		s.announce(ctx, next)
	}

	m := next.Matchup(matchupID)
	saved, err := ensureMatchSave(ctx, s.matchRepo, key, m.TeamA.Name, m.TeamB.Name)
	if err != nil {
		return nil, nil, err
	}
	return next, saved, nil
}

func (s *tournamentService) ApplyResult(ctx context.Context, name, key string, result models.MatchResult) (*models.Tournament, error) {
	unlock := s.locks.Lock(name)
	defer unlock()

	t, err := s.GetTournament(ctx, name)
	if err != nil {
		return nil, err
	}

	next, err := brackets.AdvanceTournament(t, result, key)
	if err != nil {
		return nil, engineError(err)
	}
	if err := s.tournamentRepo.Update(ctx, next); err != nil {
		return nil, fmt.Errorf("failed to store tournament %q: %w", name, err)
	}

	s.logger.InfoContext(ctx, "tournament advanced",
		slog.String("tournament", name),
		slog.String("key", key),
		slog.Int("score_a", result.TeamAScore),
		slog.Int("score_b", result.TeamBScore))
	s.announce(ctx, next)
	return next, nil
}

func (s *tournamentService) announce(ctx context.Context, t *models.Tournament) {
	notify(ctx, s.notifier, brackets.WebSocketMessage{
		Type:    brackets.MessageTournamentUpdated,
		RoomID:  brackets.TournamentRoom(t.Name),
		Payload: NewTournamentView(t),
	})
}

// ensureMatchSave returns the save stored under key, creating an empty one
// for the two teams when none exists.
func ensureMatchSave(ctx context.Context, repo repositories.MatchRepository, key, teamA, teamB string) (*models.SavedMatch, error) {
	saved, err := repo.GetByKey(ctx, key)
	if err == nil {
		return saved, nil
	}
	if !errors.Is(err, repositories.ErrMatchNotFound) {
		return nil, fmt.Errorf("failed to read match save %q: %w", key, err)
	}

	saved = models.NewSavedMatch(key, teamA, teamB)
	if err := repo.Save(ctx, saved); err != nil {
		return nil, fmt.Errorf("failed to create match save %q: %w", key, err)
	}
	return saved, nil
}

// deleteOwnedMatches removes every match save whose key belongs to the
// selected owner and reports how many were removed.
func deleteOwnedMatches(ctx context.Context, repo repositories.MatchRepository, keys brackets.SaveKeys, owned func(brackets.KeyKind, string) bool) (int, error) {
	all, err := repo.ListKeys(ctx)
	if err != nil {
		return 0, err
	}

	var doomed []string
	for _, key := range all {
		if owned(keys.Classify(key)) {
			doomed = append(doomed, key)
		}
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, key := range doomed {
		g.Go(func() error {
			err := repo.Delete(gCtx, key)
			if err != nil && !errors.Is(err, repositories.ErrMatchNotFound) {
				return fmt.Errorf("failed to delete match save %q: %w", key, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return len(doomed), nil
}
