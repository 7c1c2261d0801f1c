package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Dosada05/arbitro/brackets"
	"github.com/Dosada05/arbitro/models"
)

// --- Блокировки ---

// keyedLocker serializes read-modify-write cycles per tournament or league.
type keyedLocker struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newKeyedLocker() *keyedLocker {
	return &keyedLocker{locks: make(map[string]*lockEntry)}
}

// Lock blocks until key is free and returns the matching unlock.
func (l *keyedLocker) Lock(key string) func() {
	l.mu.Lock()
	e, ok := l.locks[key]
	if !ok {
		e = &lockEntry{}
		l.locks[key] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.locks, key)
		}
		l.mu.Unlock()
	}
}

// --- Ошибки движка ---

// engineError translates brackets errors into service errors.
func engineError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, brackets.ErrValidation):
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	case errors.Is(err, brackets.ErrMatchupNotReady):
		return fmt.Errorf("%w: %w", ErrMatchupNotReady, err)
	case errors.Is(err, brackets.ErrMatchupNotFound):
		return fmt.Errorf("%w: %w", ErrMatchupNotFound, err)
	default:
		return err
	}
}

func loggerOrDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}

func notify(ctx context.Context, n brackets.Notifier, msg brackets.WebSocketMessage) {
	if n != nil {
		n.Notify(ctx, msg)
	}
}

// --- Представления для API ---

type TournamentView struct {
	*models.Tournament
	Champion         *string `json:"champion,omitempty"`
	ThirdPlaceWinner *string `json:"third_place_winner,omitempty"`
}

func NewTournamentView(t *models.Tournament) TournamentView {
	v := TournamentView{Tournament: t}
	if name, ok := brackets.Champion(t); ok {
		v.Champion = &name
	}
	if name, ok := brackets.ThirdPlaceWinner(t); ok {
		v.ThirdPlaceWinner = &name
	}
	return v
}

type LeagueView struct {
	*models.League
	Matchdays []models.Matchday `json:"matchdays"`
}

func NewLeagueView(l *models.League) LeagueView {
	return LeagueView{League: l, Matchdays: l.Rounds()}
}

// TournamentSummary is one row of the tournament list.
type TournamentSummary struct {
	Name       string       `json:"name"`
	EntryPhase models.Phase `json:"entry_phase"`
	Champion   *string      `json:"champion,omitempty"`
}

type LeagueSummary struct {
	Name   string  `json:"name"`
	Teams  int     `json:"teams"`
	Played int     `json:"played"`
	Total  int     `json:"total"`
	Leader *string `json:"leader,omitempty"`
}

// compactSummaries drops the slots of entries that vanished mid-listing.
func compactSummaries[T any](loaded []*T) []T {
	out := make([]T, 0, len(loaded))
	for _, s := range loaded {
		if s != nil {
			out = append(out, *s)
		}
	}
	return out
}

func newLeagueSummary(l *models.League) LeagueSummary {
	s := LeagueSummary{Name: l.Name, Teams: len(l.Stats), Total: len(l.Matchups)}
	for i := range l.Matchups {
		if l.Matchups[i].IsPlayed() {
			s.Played++
		}
	}
	if s.Played > 0 && len(l.Stats) > 0 {
		leader := l.Stats[0].Name
		s.Leader = &leader
	}
	return s
}
