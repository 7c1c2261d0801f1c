package handlers

import (
	"net/http"

	"github.com/Dosada05/arbitro/services"
)

type TournamentHandler struct {
	tournamentService services.TournamentService
}

func NewTournamentHandler(ts services.TournamentService) *TournamentHandler {
	return &TournamentHandler{
		tournamentService: ts,
	}
}

// CreateTournament godoc
// @Summary Create a knockout tournament
// @Tags tournaments
// @Description Builds the bracket from the entry phase down to the final. Teams are placed in the order given.
// @Accept json
// @Produce json
// @Param body body services.CreateTournamentInput true "Name, entry phase (R32, R16, QF, SF, F) and teams"
// @Success 201 {object} map[string]interface{} "Tournament created"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 409 {object} map[string]string "Name already taken"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tournaments [post]
func (h *TournamentHandler) CreateTournament(w http.ResponseWriter, r *http.Request) {
	var input services.CreateTournamentInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tournament, err := h.tournamentService.CreateTournament(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"tournament": services.NewTournamentView(tournament)}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetTournament godoc
// @Summary Get a tournament
// @Tags tournaments
// @Description Returns the bracket with its champion and third place winner once decided.
// @Produce json
// @Param name path string true "Tournament name"
// @Success 200 {object} map[string]interface{} "Tournament found"
// @Failure 404 {object} map[string]string "Tournament not found"
// @Router /tournaments/{name} [get]
func (h *TournamentHandler) GetTournament(w http.ResponseWriter, r *http.Request) {
	name, err := getNameFromURL(r, "name")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tournament, err := h.tournamentService.GetTournament(r.Context(), name)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": services.NewTournamentView(tournament)}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListTournaments godoc
// @Summary List tournaments
// @Tags tournaments
// @Produce json
// @Success 200 {object} map[string]interface{} "Tournament summaries"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tournaments [get]
func (h *TournamentHandler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.tournamentService.ListTournaments(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournaments": summaries}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteTournament godoc
// @Summary Delete a tournament
// @Tags tournaments
// @Description Removes the tournament together with every match save it owns.
// @Param name path string true "Tournament name"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Tournament not found"
// @Router /tournaments/{name} [delete]
func (h *TournamentHandler) DeleteTournament(w http.ResponseWriter, r *http.Request) {
	name, err := getNameFromURL(r, "name")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.tournamentService.DeleteTournament(r.Context(), name); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// OpenMatchup godoc
// @Summary Open a matchup for play
// @Tags tournaments
// @Description Assigns the save key of a matchup whose two teams are known and creates its match save.
// @Produce json
// @Param name path string true "Tournament name"
// @Param matchupID path int true "Matchup ID"
// @Success 200 {object} map[string]interface{} "Tournament and match save"
// @Failure 404 {object} map[string]string "Tournament or matchup not found"
// @Failure 409 {object} map[string]string "Matchup teams not decided yet"
// @Router /tournaments/{name}/matchups/{matchupID}/open [post]
func (h *TournamentHandler) OpenMatchup(w http.ResponseWriter, r *http.Request) {
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

	tournament, match, err := h.tournamentService.OpenMatchup(r.Context(), name, matchupID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	env := jsonResponse{"tournament": services.NewTournamentView(tournament), "match": match}
	if err := writeJSON(w, http.StatusOK, env, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
