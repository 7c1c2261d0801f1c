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

const (
	MinLeagueTeams = 2
	MaxLeagueTeams = 16
)

type LeagueService interface {
	CreateLeague(ctx context.Context, input CreateLeagueInput) (*models.League, error)
	GetLeague(ctx context.Context, name string) (*models.League, error)
	ListLeagues(ctx context.Context) ([]LeagueSummary, error)
	DeleteLeague(ctx context.Context, name string) error
	OpenMatchup(ctx context.Context, name string, matchupID int) (*models.League, *models.SavedMatch, error)
	ApplyResult(ctx context.Context, name, key string, result models.MatchResult) (*models.League, error)
}

type CreateLeagueInput struct {
	Name  string   `json:"name"`
	Teams []string `json:"teams"`
}

type leagueService struct {
	leagueRepo repositories.LeagueRepository
	matchRepo  repositories.MatchRepository
	keys       brackets.SaveKeys
	notifier   brackets.Notifier
	locks      *keyedLocker
	logger     *slog.Logger
}

func NewLeagueService(
	leagueRepo repositories.LeagueRepository,
	matchRepo repositories.MatchRepository,
	keys brackets.SaveKeys,
	notifier brackets.Notifier,
	logger *slog.Logger,
) LeagueService {
	return &leagueService{
		leagueRepo: leagueRepo,
		matchRepo:  matchRepo,
		keys:       keys,
		notifier:   notifier,
		locks:      newKeyedLocker(),
		logger:     loggerOrDefault(logger),
	}
}

func (s *leagueService) CreateLeague(ctx context.Context, input CreateLeagueInput) (*models.League, error) {
	if n := len(input.Teams); n < MinLeagueTeams || n > MaxLeagueTeams {
		return nil, fmt.Errorf("%w: a league takes %d to %d teams, got %d", ErrValidationFailed, MinLeagueTeams, MaxLeagueTeams, n)
	}
	l, err := brackets.BuildLeagueSchedule(input.Teams, input.Name, s.keys)
	if err != nil {
		return nil, engineError(err)
	}

	unlock := s.locks.Lock(l.Name)
	defer unlock()

	if err := s.leagueRepo.Create(ctx, l); err != nil {
		if errors.Is(err, repositories.ErrLeagueNameConflict) {
			return nil, fmt.Errorf("%w: %w: %q", ErrValidationFailed, ErrLeagueNameConflict, l.Name)
		}
		return nil, fmt.Errorf("failed to create league %q: %w", l.Name, err)
	}

	s.logger.InfoContext(ctx, "league created",
		slog.String("league", l.Name),
		slog.Int("teams", len(l.Stats)),
		slog.Int("matchups", len(l.Matchups)))
	s.announce(ctx, l)
	return l, nil
}

func (s *leagueService) GetLeague(ctx context.Context, name string) (*models.League, error) {
	l, err := s.leagueRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repositories.ErrLeagueNotFound) {
			return nil, ErrLeagueNotFound
		}
		return nil, fmt.Errorf("failed to get league %q: %w", name, err)
	}
	return l, nil
}

func (s *leagueService) ListLeagues(ctx context.Context) ([]LeagueSummary, error) {
	names, err := s.leagueRepo.ListNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues: %w", err)
	}

	loaded := make([]*LeagueSummary, len(names))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, name := range names {
		g.Go(func() error {
			l, err := s.leagueRepo.GetByName(gCtx, name)
			if err != nil {
				// Deleted after ListNames.
				if errors.Is(err, repositories.ErrLeagueNotFound) {
					return nil
				}
				return fmt.Errorf("failed to load league %q: %w", name, err)
			}
			summary := newLeagueSummary(l)
			loaded[i] = &summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return compactSummaries(loaded), nil
}

func (s *leagueService) DeleteLeague(ctx context.Context, name string) error {
	unlock := s.locks.Lock(name)
	defer unlock()

	if err := s.leagueRepo.Delete(ctx, name); err != nil {
		if errors.Is(err, repositories.ErrLeagueNotFound) {
			return ErrLeagueNotFound
		}
		return fmt.Errorf("failed to delete league %q: %w", name, err)
	}

	removed, err := deleteOwnedMatches(ctx, s.matchRepo, s.keys, func(kind brackets.KeyKind, owner string) bool {
		return kind == brackets.KeyLeague && owner == name
	})
	if err != nil {
		return fmt.Errorf("league %q deleted but its match saves were not: %w", name, err)
	}

	s.logger.InfoContext(ctx, "league deleted", slog.String("league", name), slog.Int("match_saves_removed", removed))
	notify(ctx, s.notifier, brackets.WebSocketMessage{
		Type:    brackets.MessageLeagueDeleted,
		RoomID:  brackets.LeagueRoom(name),
		Payload: name,
	})
	return nil
}

// OpenMatchup creates the match save of a league fixture. League keys are
// assigned at schedule time, so nothing on the league itself changes.
func (s *leagueService) OpenMatchup(ctx context.Context, name string, matchupID int) (*models.League, *models.SavedMatch, error) {
	unlock := s.locks.Lock(name)
	defer unlock()

	l, err := s.GetLeague(ctx, name)
	if err != nil {
		return nil, nil, err
	}
	m := l.Matchup(matchupID)
	if m == nil {
		return nil, nil, fmt.Errorf("%w: league %q has no matchup %d", ErrMatchupNotFound, name, matchupID)
	}

	saved, err := ensureMatchSave(ctx, s.matchRepo, m.GameSaveKey, m.TeamA.Name, m.TeamB.Name)
	if err != nil {
		return nil, nil, err
	}
	return l, saved, nil
}

func (s *leagueService) ApplyResult(ctx context.Context, name, key string, result models.MatchResult) (*models.League, error) {
	unlock := s.locks.Lock(name)
	defer unlock()

	l, err := s.GetLeague(ctx, name)
	if err != nil {
		return nil, err
	}

	next, err := brackets.UpdateLeagueStandings(l, result, key)
	if err != nil {
		return nil, engineError(err)
	}
	if err := s.leagueRepo.Update(ctx, next); err != nil {
		return nil, fmt.Errorf("failed to store league %q: %w", name, err)
	}

	s.logger.InfoContext(ctx, "league standings updated",
		slog.String("league", name),
		slog.String("key", key),
		slog.Int("score_a", result.TeamAScore),
		slog.Int("score_b", result.TeamBScore))
	s.announce(ctx, next)
	return next, nil
}

func (s *leagueService) announce(ctx context.Context, l *models.League) {
	notify(ctx, s.notifier, brackets.WebSocketMessage{
		Type:    brackets.MessageLeagueUpdated,
		RoomID:  brackets.LeagueRoom(l.Name),
		Payload: NewLeagueView(l),
	})
}
