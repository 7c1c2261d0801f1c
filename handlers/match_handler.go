package handlers

import (
	"net/http"

	"github.com/Dosada05/arbitro/models"
	"github.com/Dosada05/arbitro/services"
)

type MatchHandler struct {
	matchService services.MatchService
}

func NewMatchHandler(ms services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: ms}
}

type recordResultInput struct {
	Key    string             `json:"key"`
	Result models.MatchResult `json:"result"`
}

// SaveMatch godoc
// @Summary Save a match snapshot
// @Tags matches
// @Description Stores the snapshot under its key and feeds the score to the owning tournament or league.
// @Description A key that matches no bracket or fixture is still saved and reported with applied=false.
// @Accept json
// @Produce json
// @Param body body models.SavedMatch true "Match snapshot"
// @Success 200 {object} map[string]interface{} "Routing outcome"
// @Failure 400 {object} map[string]string "Missing key or negative score"
// @Router /matches [put]
func (h *MatchHandler) SaveMatch(w http.ResponseWriter, r *http.Request) {
	var match models.SavedMatch
	if err := readJSON(w, r, &match); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	outcome, err := h.matchService.SaveMatch(r.Context(), &match)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"outcome": outcome}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RecordResult godoc
// @Summary Record a final score
// @Tags matches
// @Accept json
// @Produce json
// @Param body body recordResultInput true "Save key and result"
// @Success 200 {object} map[string]interface{} "Routing outcome"
// @Failure 400 {object} map[string]string "Missing key or negative score"
// @Router /matches/result [post]
func (h *MatchHandler) RecordResult(w http.ResponseWriter, r *http.Request) {
	var input recordResultInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	outcome, err := h.matchService.RecordResult(r.Context(), input.Key, input.Result)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"outcome": outcome}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetMatch godoc
// @Summary Get a match save
// @Tags matches
// @Produce json
// @Param key path string true "Save key, percent-encoded"
// @Success 200 {object} map[string]interface{} "Match save"
// @Failure 404 {object} map[string]string "No save under this key"
// @Router /matches/{key} [get]
func (h *MatchHandler) GetMatch(w http.ResponseWriter, r *http.Request) {
	key, err := getNameFromURL(r, "key")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.GetMatch(r.Context(), key)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListMatches godoc
// @Summary List match save keys
// @Tags matches
// @Produce json
// @Success 200 {object} map[string]interface{} "Save keys"
// @Router /matches [get]
func (h *MatchHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	keys, err := h.matchService.ListMatches(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"keys": keys}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteMatch godoc
// @Summary Delete a match save
// @Tags matches
// @Param key path string true "Save key, percent-encoded"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "No save under this key"
// @Router /matches/{key} [delete]
func (h *MatchHandler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	key, err := getNameFromURL(r, "key")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.matchService.DeleteMatch(r.Context(), key); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
