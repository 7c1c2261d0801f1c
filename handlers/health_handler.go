package handlers

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker reports whether a backing service is reachable.
type HealthChecker func(ctx context.Context) error

type HealthHandler struct {
	checks map[string]HealthChecker
}

func NewHealthHandler(checks map[string]HealthChecker) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Health godoc
// @Summary Liveness and dependency status
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "All checks pass"
// @Failure 503 {object} map[string]interface{} "At least one check failed"
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	results := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			results[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		results[name] = "ok"
	}

	state := "ok"
	if status != http.StatusOK {
		state = "degraded"
	}
	if err := writeJSON(w, status, jsonResponse{"status": state, "checks": results}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
