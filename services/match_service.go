package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Dosada05/arbitro/brackets"
	"github.com/Dosada05/arbitro/models"
	"github.com/Dosada05/arbitro/repositories"
)

type MatchService interface {
	// SaveMatch stores the snapshot and routes its score by save key.
	SaveMatch(ctx context.Context, match *models.SavedMatch) (*MatchOutcome, error)
	// RecordResult updates (or creates) the save under key with a bare
	// result and routes it.
	RecordResult(ctx context.Context, key string, result models.MatchResult) (*MatchOutcome, error)
	GetMatch(ctx context.Context, key string) (*models.SavedMatch, error)
	ListMatches(ctx context.Context) ([]string, error)
	DeleteMatch(ctx context.Context, key string) error
}

type matchService struct {
	matchRepo repositories.MatchRepository
	router    *resultRouter
	logger    *slog.Logger
}

func NewMatchService(
	matchRepo repositories.MatchRepository,
	tournaments TournamentService,
	leagues LeagueService,
	keys brackets.SaveKeys,
	logger *slog.Logger,
) MatchService {
	logger = loggerOrDefault(logger)
	return &matchService{
		matchRepo: matchRepo,
		router: &resultRouter{
			keys:        keys,
			tournaments: tournaments,
			leagues:     leagues,
			logger:      logger,
		},
		logger: logger,
	}
}

func (s *matchService) SaveMatch(ctx context.Context, match *models.SavedMatch) (*MatchOutcome, error) {
	if match == nil || strings.TrimSpace(match.Key) == "" {
		return nil, ErrMatchKeyRequired
	}
	if err := validateScores(match.State.TeamA.Score, match.State.TeamB.Score); err != nil {
		return nil, err
	}
	if match.State.Events == nil {
		match.State.Events = []models.GameEvent{}
	}

	if err := s.matchRepo.Save(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to save match %q: %w", match.Key, err)
	}
	return s.router.route(ctx, match.Key, match.Result())
}

func (s *matchService) RecordResult(ctx context.Context, key string, result models.MatchResult) (*MatchOutcome, error) {
	if strings.TrimSpace(key) == "" {
		return nil, ErrMatchKeyRequired
	}
	if err := validateScores(result.TeamAScore, result.TeamBScore); err != nil {
		return nil, err
	}

	saved, err := s.matchRepo.GetByKey(ctx, key)
	switch {
	case errors.Is(err, repositories.ErrMatchNotFound):
		saved = models.NewSavedMatch(key, result.TeamAName, result.TeamBName)
	case err != nil:
		return nil, fmt.Errorf("failed to read match %q: %w", key, err)
	}

	a, b := saved.State.TeamA.Name, saved.State.TeamB.Name
	if a != b && result.TeamAName == b && result.TeamBName == a {
		result = result.Swapped()
	}
	saved.State.TeamA.Score = result.TeamAScore
	saved.State.TeamB.Score = result.TeamBScore

	if err := s.matchRepo.Save(ctx, saved); err != nil {
		return nil, fmt.Errorf("failed to save match %q: %w", key, err)
	}
	return s.router.route(ctx, key, result)
}

func (s *matchService) GetMatch(ctx context.Context, key string) (*models.SavedMatch, error) {
	m, err := s.matchRepo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match %q: %w", key, err)
	}
	return m, nil
}

func (s *matchService) ListMatches(ctx context.Context) ([]string, error) {
	keys, err := s.matchRepo.ListKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return keys, nil
}

// DeleteMatch removes only the snapshot. A bracket or table that already
// absorbed its score keeps it.
func (s *matchService) DeleteMatch(ctx context.Context, key string) error {
	if err := s.matchRepo.Delete(ctx, key); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return ErrMatchNotFound
		}
		return fmt.Errorf("failed to delete match %q: %w", key, err)
	}
	s.logger.InfoContext(ctx, "match save deleted", slog.String("key", key))
	return nil
}

func validateScores(a, b int) error {
	if a < 0 || b < 0 {
		return fmt.Errorf("%w: scores must be non-negative (got %d-%d)", ErrValidationFailed, a, b)
	}
	return nil
}
