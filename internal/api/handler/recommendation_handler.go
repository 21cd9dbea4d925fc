package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/aqualog/hydration-api/internal/domain"
	"github.com/aqualog/hydration-api/internal/langfuse"
	"github.com/aqualog/hydration-api/internal/service"
	"github.com/aqualog/hydration-api/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// RecommendationHandler handles recommendation and daily digest endpoints.
type RecommendationHandler struct {
	sleepService   service.SleepAdvisorService
	weatherService service.WeatherAdvisorService
	digestService  service.DigestService
	langfuseClient langfuse.Client
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(
	sleepService service.SleepAdvisorService,
	weatherService service.WeatherAdvisorService,
	digestService service.DigestService,
	langfuseClient langfuse.Client,
) *RecommendationHandler {
	return &RecommendationHandler{
		sleepService:   sleepService,
		weatherService: weatherService,
		digestService:  digestService,
		langfuseClient: langfuseClient,
	}
}

// Sleep handles GET /v1/users/{userId}/recommendations/sleep
// @Summary Get the sleep hydration recommendation
// @Description Compute the sleep-based recommendation for a calendar day, or return the cached record for that day. Use force=true to recompute.
// @Tags recommendations
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param date query string false "Calendar day (YYYY-MM-DD), defaults to today in the user's timezone" format(date) example(2024-07-19)
// @Param force query boolean false "Recompute even when a record exists for the day" default(false)
// @Success 200 {object} domain.RecommendationResponse "Sleep recommendation"
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/recommendations/sleep [get]
func (h *RecommendationHandler) Sleep(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var day time.Time
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		day, err = time.Parse("2006-01-02", dateStr)
		if err != nil {
			problem.BadRequest("date must be a calendar day in YYYY-MM-DD format").Write(w)
			return
		}
	}
	force := parseBoolParam(r, "force")

	rec, err := h.sleepService.Recommend(r.Context(), userID, day, force)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute sleep recommendation").Write(w)
		return
	}

	attachTraceID(r.Context(), rec)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}

// Weather handles GET /v1/users/{userId}/recommendations/weather
// @Summary Get the weather hydration recommendation
// @Description Compute the weather-based recommendation for today from current conditions at the given coordinates, or return the cached record. Use force=true to recompute.
// @Tags recommendations
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param lat query number true "Latitude (-90 to 90)" example(52.41)
// @Param lon query number true "Longitude (-180 to 180)" example(16.93)
// @Param force query boolean false "Recompute even when a record exists for the day" default(false)
// @Success 200 {object} domain.RecommendationResponse "Weather recommendation"
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 502 {object} problem.Problem "Weather provider unavailable"
// @Router /users/{userId}/recommendations/weather [get]
func (h *RecommendationHandler) Weather(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	lat, lon, fieldErrors := parseCoordinates(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}
	force := parseBoolParam(r, "force")

	rec, err := h.weatherService.Recommend(r.Context(), userID, time.Time{}, lat, lon, force)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrWeatherUnavailable) {
			problem.BadGateway("weather-unavailable", "Weather Unavailable", "Weather provider is unreachable").Write(w)
			return
		}
		problem.InternalError("Failed to compute weather recommendation").Write(w)
		return
	}

	attachTraceID(r.Context(), rec)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}

// Today handles GET /v1/users/{userId}/recommendations/today
// @Summary Get the daily digest
// @Description Combine the daily goal, today's recommendations and logged intake into one progress summary with a notification headline.
// @Tags recommendations
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.DailyDigest "Daily digest"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/recommendations/today [get]
func (h *RecommendationHandler) Today(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	digest, err := h.digestService.Today(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to build daily digest").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(digest)
}

// FeedbackRequest is the request body for recommendation feedback.
// @Description Request body for rating a recommendation and its comment.
type FeedbackRequest struct {
	// Trace ID from the recommendation response
	TraceID string `json:"trace_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Rating score (1-5)
	Score int `json:"score" example:"4" minimum:"1" maximum:"5"`
	// Optional comment
	Comment string `json:"comment,omitempty" example:"The suggestion matched how I felt."`
}

// Feedback handles POST /v1/users/{userId}/recommendations/feedback
// @Summary Submit feedback on a recommendation
// @Description Submit a user rating and optional comment for a previously returned recommendation.
// @Tags recommendations
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param body body FeedbackRequest true "Feedback request"
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/recommendations/feedback [post]
func (h *RecommendationHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	if _, err := uuid.Parse(chi.URLParam(r, "userId")); err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if req.TraceID == "" {
		problem.BadRequest("trace_id is required").Write(w)
		return
	}
	if req.Score < 1 || req.Score > 5 {
		problem.BadRequest("score must be between 1 and 5").Write(w)
		return
	}

	// Scoring is fire-and-forget; ingestion failures are logged downstream.
	_ = h.langfuseClient.CreateScore(r.Context(), langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    "user_rating",
		Value:   float64(req.Score),
		Comment: req.Comment,
	})

	w.WriteHeader(http.StatusNoContent)
}

// attachTraceID exposes the request's OTel trace ID for feedback linking.
func attachTraceID(ctx context.Context, rec *domain.RecommendationResponse) {
	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		rec.TraceID = span.SpanContext().TraceID().String()
	}
}

func parseCoordinates(r *http.Request) (float64, float64, []problem.FieldError) {
	var fieldErrors []problem.FieldError

	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   "lat",
			Message: "must be a latitude between -90 and 90",
		})
	}

	lon, err := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err != nil || lon < -180 || lon > 180 {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   "lon",
			Message: "must be a longitude between -180 and 180",
		})
	}

	if len(fieldErrors) > 0 {
		return 0, 0, fieldErrors
	}

	return lat, lon, nil
}

// parseBoolParam parses a boolean query parameter, defaulting to false.
func parseBoolParam(r *http.Request, name string) bool {
	val := r.URL.Query().Get(name)
	if val == "" {
		return false
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return false
	}
	return parsed
}
