package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Dosada05/arbitro/brackets"
	"github.com/Dosada05/arbitro/models"
)

// MatchOutcome reports where a completed match was routed.
type MatchOutcome struct {
	Key     string `json:"key"`
	Kind    string `json:"kind"`
	Owner   string `json:"owner,omitempty"`
	Applied bool   `json:"applied"`
	Reason  string `json:"reason,omitempty"`
}

// resultRouter sends a completed result to the engine that owns its save key.
type resultRouter struct {
	keys        brackets.SaveKeys
	tournaments TournamentService
	leagues     LeagueService
	logger      *slog.Logger
}

func (r *resultRouter) route(ctx context.Context, key string, result models.MatchResult) (*MatchOutcome, error) {
	kind, owner := r.keys.Classify(key)
	outcome := &MatchOutcome{Key: key, Kind: kind.String(), Owner: owner}

	var err error
	switch {
	case kind.IsTournament():
		_, err = r.tournaments.ApplyResult(ctx, owner, key, result)
	case kind == brackets.KeyLeague:
		_, err = r.leagues.ApplyResult(ctx, owner, key, result)
	default:
		outcome.Reason = "standalone match"
		return outcome, nil
	}

	switch {
	case err == nil:
		outcome.Applied = true
		return outcome, nil
	case errors.Is(err, ErrMatchupNotFound),
		errors.Is(err, ErrTournamentNotFound),
		errors.Is(err, ErrLeagueNotFound):
		r.logger.WarnContext(ctx, "match result not applied",
			slog.String("key", key),
			slog.String("kind", outcome.Kind),
			slog.String("owner", owner),
			slog.Any("error", err))
		outcome.Reason = err.Error()
		return outcome, nil
	default:
		return nil, err
	}
}
