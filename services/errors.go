package services

import "errors"

// Ошибки сервисного слоя; handlers переводят их в HTTP статусы.
var (
	ErrNotFound         = errors.New("requested resource not found")
	ErrValidationFailed = errors.New("validation failed")

	ErrTournamentNotFound = errors.New("tournament not found")
	ErrLeagueNotFound     = errors.New("league not found")
	ErrMatchNotFound      = errors.New("saved match not found")
	ErrMatchupNotFound    = errors.New("matchup not found")

	ErrTournamentNameConflict = errors.New("tournament name already exists")
	ErrLeagueNameConflict     = errors.New("league name already exists")

	ErrMatchupNotReady  = errors.New("matchup teams are not decided yet")
	ErrMatchKeyRequired = errors.New("match save key is required")
)
