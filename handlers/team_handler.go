package handlers

import (
	"net/http"

	"github.com/Dosada05/arbitro/models"
	"github.com/Dosada05/arbitro/services"
)

type TeamHandler struct {
	teamService services.TeamService
}

func NewTeamHandler(ts services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: ts}
}

type saveTeamsInput struct {
	Teams []models.Team `json:"teams"`
}

// ListTeams godoc
// @Summary List registered teams
// @Tags teams
// @Produce json
// @Success 200 {object} map[string]interface{} "Teams with their rosters"
// @Router /teams [get]
func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.ListTeams(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"teams": teams}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SaveTeams godoc
// @Summary Replace the team registry
// @Tags teams
// @Accept json
// @Produce json
// @Param body body saveTeamsInput true "Complete list of teams"
// @Success 200 {object} map[string]interface{} "Saved teams"
// @Failure 400 {object} map[string]string "Validation error"
// @Router /teams [put]
func (h *TeamHandler) SaveTeams(w http.ResponseWriter, r *http.Request) {
	var input saveTeamsInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	teams, err := h.teamService.SaveTeams(r.Context(), input.Teams)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"teams": teams}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
