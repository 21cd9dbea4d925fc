package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aqualog/hydration-api/internal/api/validation"
	"github.com/aqualog/hydration-api/internal/domain"
	"github.com/aqualog/hydration-api/internal/service"
	"github.com/aqualog/hydration-api/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type SleepSyncHandler struct {
	service service.SleepSyncService
}

func NewSleepSyncHandler(service service.SleepSyncService) *SleepSyncHandler {
	return &SleepSyncHandler{service: service}
}

// Sync handles POST /v1/users/{userId}/sleep-samples
// @Summary Sync sleep stage samples
// @Description Store a batch of sleep stage intervals exported from the device health store. Overlapping intervals are resolved at aggregation time.
// @Tags sleep-samples
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.SyncSleepSamplesRequest true "Batch of stage intervals"
// @Success 202 {object} domain.SyncSleepSamplesResponse "Number of samples stored"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Request body contains invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep-samples [post]
func (h *SleepSyncHandler) Sync(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.SyncSleepSamplesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	result, err := h.service.Sync(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to store sleep samples").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(result)
}
