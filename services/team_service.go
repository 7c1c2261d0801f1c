package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Dosada05/arbitro/models"
	"github.com/Dosada05/arbitro/repositories"
)

type TeamService interface {
	ListTeams(ctx context.Context) ([]models.Team, error)
	// SaveTeams replaces the whole registry.
	SaveTeams(ctx context.Context, teams []models.Team) ([]models.Team, error)
}

type teamService struct {
	teamRepo repositories.TeamRepository
}

func NewTeamService(teamRepo repositories.TeamRepository) TeamService {
	return &teamService{teamRepo: teamRepo}
}

func (s *teamService) ListTeams(ctx context.Context) ([]models.Team, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

func (s *teamService) SaveTeams(ctx context.Context, teams []models.Team) ([]models.Team, error) {
	seen := make(map[string]struct{}, len(teams))
	cleaned := make([]models.Team, len(teams))
	for i, t := range teams {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: team %d has no name", ErrValidationFailed, i+1)
		}
		if strings.Contains(name, " vs ") {
			return nil, fmt.Errorf("%w: team name %q must not contain \"vs\"", ErrValidationFailed, name)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: team %q is listed twice", ErrValidationFailed, name)
		}
		seen[name] = struct{}{}

		if err := validateRoster(name, t.Players); err != nil {
			return nil, err
		}
		t.Name = name
		if t.Players == nil {
			t.Players = []models.Player{}
		}
		cleaned[i] = t
	}

	if err := s.teamRepo.ReplaceAll(ctx, cleaned); err != nil {
		return nil, fmt.Errorf("failed to save teams: %w", err)
	}
	return cleaned, nil
}

func validateRoster(team string, players []models.Player) error {
	numbers := make(map[int]string, len(players))
	for _, p := range players {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("%w: %s has a player without a name", ErrValidationFailed, team)
		}
		switch p.Position {
		case models.PositionGoalkeeper, models.PositionDefender, models.PositionMidfielder, models.PositionForward:
		default:
			return fmt.Errorf("%w: %s player %q has unknown position %q", ErrValidationFailed, team, p.Name, p.Position)
		}
		if p.Number > 0 {
			if other, taken := numbers[p.Number]; taken {
				return fmt.Errorf("%w: %s players %q and %q share number %d", ErrValidationFailed, team, other, p.Name, p.Number)
			}
			numbers[p.Number] = p.Name
		}
	}
	return nil
}
