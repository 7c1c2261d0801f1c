package handlers

import (
	"net/http"

	"github.com/Dosada05/arbitro/services"
)

type LeagueHandler struct {
	leagueService services.LeagueService
}

func NewLeagueHandler(ls services.LeagueService) *LeagueHandler {
	return &LeagueHandler{leagueService: ls}
}

// CreateLeague godoc
// @Summary Create a league
// @Tags leagues
// @Description Schedules a double round robin between the given teams.
// @Accept json
// @Produce json
// @Param body body services.CreateLeagueInput true "Name and teams"
// @Success 201 {object} map[string]interface{} "League created"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 409 {object} map[string]string "Name already taken"
// @Router /leagues [post]
func (h *LeagueHandler) CreateLeague(w http.ResponseWriter, r *http.Request) {
	var input services.CreateLeagueInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	league, err := h.leagueService.CreateLeague(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"league": services.NewLeagueView(league)}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetLeague godoc
// @Summary Get a league
// @Tags leagues
// @Description Returns the sorted table and the fixtures grouped by matchday.
// @Produce json
// @Param name path string true "League name"
// @Success 200 {object} map[string]interface{} "League found"
// @Failure 404 {object} map[string]string "League not found"
// @Router /leagues/{name} [get]
func (h *LeagueHandler) GetLeague(w http.ResponseWriter, r *http.Request) {
	name, err := getNameFromURL(r, "name")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	league, err := h.leagueService.GetLeague(r.Context(), name)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"league": services.NewLeagueView(league)}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListLeagues godoc
// @Summary List leagues
// @Tags leagues
// @Produce json
// @Success 200 {object} map[string]interface{} "League summaries"
// @Router /leagues [get]
func (h *LeagueHandler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.leagueService.ListLeagues(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"leagues": summaries}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteLeague godoc
// @Summary Delete a league
// @Tags leagues
// @Param name path string true "League name"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "League not found"
// @Router /leagues/{name} [delete]
func (h *LeagueHandler) DeleteLeague(w http.ResponseWriter, r *http.Request) {
	name, err := getNameFromURL(r, "name")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.leagueService.DeleteLeague(r.Context(), name); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// OpenMatchup godoc
// @Summary Open a league fixture
// @Tags leagues
// @Description Creates the match save for a fixture if it does not exist yet.
// @Produce json
// @Param name path string true "League name"
// @Param matchupID path int true "Matchup ID"
// @Success 200 {object} map[string]interface{} "League and match save"
// @Failure 404 {object} map[string]string "League or matchup not found"
// @Router /leagues/{name}/matchups/{matchupID}/open [post]
func (h *LeagueHandler) OpenMatchup(w http.ResponseWriter, r *http.Request) {
	name, err := getNameFromURL(r, "name")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	matchupID, err := getIDFromURL(r, "matchupID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	league, match, err := h.leagueService.OpenMatchup(r.Context(), name, matchupID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	env := jsonResponse{"league": services.NewLeagueView(league), "match": match}
	if err := writeJSON(w, http.StatusOK, env, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
