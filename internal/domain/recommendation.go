package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Priority indicates how urgently the user should act on a recommendation.
// @Description Recommendation urgency: low, medium or high.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// RecommendationKind distinguishes which calculator produced a record.
type RecommendationKind string

const (
	RecommendationSleep   RecommendationKind = "sleep"
	RecommendationWeather RecommendationKind = "weather"
)

func (k RecommendationKind) Valid() bool {
	return k == RecommendationSleep || k == RecommendationWeather
}

// MaxConfidence is the hard ceiling on recommendation confidence. The
// calculators are heuristic and never report certainty.
const MaxConfidence = 0.95

// HydrationRecommendation is the output of one calculator run: how much
// extra water to drink, why, and how sure the calculator is.
type HydrationRecommendation struct {
	// Additional water in millilitres, never negative
	AdditionalWaterMl int `json:"additional_water_ml" example:"650"`
	// Ordered human-readable factors, one per triggered rule
	Factors []string `json:"factors" example:"High temperature (35.0°C): +600 ml"`
	// Calculator confidence in [0,0.95]
	Confidence float64 `json:"confidence" example:"0.85"`
	// Urgency
	Priority Priority `json:"priority" example:"high"`
}

type factorEntry struct {
	deltaMl     int
	description string
}

// RecommendationBuilder accumulates signed water adjustments together with
// the explanation for each one. The final total and the factor list are
// derived from the same entries, so a recommendation can never report an
// amount its factors do not account for.
type RecommendationBuilder struct {
	entries []factorEntry
}

// Add registers one rule contribution. Zero deltas are dropped; rules that
// do not fire produce no factor.
func (b *RecommendationBuilder) Add(deltaMl int, description string) {
	if deltaMl == 0 {
		return
	}
	b.entries = append(b.entries, factorEntry{deltaMl: deltaMl, description: description})
}

// TotalMl is the clamped sum of all registered deltas.
func (b *RecommendationBuilder) TotalMl() int {
	sum := 0
	for _, e := range b.entries {
		sum += e.deltaMl
	}
	if sum < 0 {
		return 0
	}
	return sum
}

// Factors renders every registered entry as "<description>: +N ml".
func (b *RecommendationBuilder) Factors() []string {
	factors := make([]string, 0, len(b.entries))
	for _, e := range b.entries {
		factors = append(factors, fmt.Sprintf("%s: %+d ml", e.description, e.deltaMl))
	}
	return factors
}

// Build assembles the recommendation, clamping confidence to [0,MaxConfidence].
func (b *RecommendationBuilder) Build(confidence float64, priority Priority) HydrationRecommendation {
	if confidence < 0 {
		confidence = 0
	}
	if confidence > MaxConfidence {
		confidence = MaxConfidence
	}
	return HydrationRecommendation{
		AdditionalWaterMl: b.TotalMl(),
		Factors:           b.Factors(),
		Confidence:        confidence,
		Priority:          priority,
	}
}

// DailyRecommendation is the persisted result of a calculator run. At most
// one row exists per user, day and kind; recomputation replaces the row.
type DailyRecommendation struct {
	ID                uuid.UUID          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID            uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_recommendations_user_day_kind" json:"user_id"`
	Day               time.Time          `gorm:"type:date;not null;uniqueIndex:idx_recommendations_user_day_kind" json:"day"`
	Kind              RecommendationKind `gorm:"type:varchar(10);not null;uniqueIndex:idx_recommendations_user_day_kind" json:"kind"`
	AdditionalWaterMl int                `gorm:"not null" json:"additional_water_ml"`
	Factors           []string           `gorm:"serializer:json" json:"factors"`
	Confidence        float64            `gorm:"type:numeric(4,3);not null" json:"confidence"`
	Priority          Priority           `gorm:"type:varchar(10);not null" json:"priority"`
	Comment           string             `gorm:"type:text" json:"comment,omitempty"`
	SourceLabel       string             `gorm:"type:varchar(128)" json:"source_label,omitempty"`
	CreatedAt         time.Time          `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (DailyRecommendation) TableName() string {
	return "daily_recommendations"
}

// RecommendationResponse is the response body for recommendation endpoints.
// @Description Persisted hydration recommendation for one day.
type RecommendationResponse struct {
	// Record identifier
	ID uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Calculator that produced the record
	Kind RecommendationKind `json:"kind" example:"weather"`
	// Calendar day the recommendation applies to (YYYY-MM-DD)
	Day string `json:"day" example:"2024-07-19"`
	// Additional water in millilitres
	AdditionalWaterMl int `json:"additional_water_ml" example:"650"`
	// Additional water in the user's display unit
	Display VolumeDisplay `json:"display"`
	// One factor per triggered rule with its signed contribution
	Factors []string `json:"factors"`
	// Calculator confidence in [0,0.95]
	Confidence float64 `json:"confidence" example:"0.85"`
	// Urgency
	Priority Priority `json:"priority" example:"high"`
	// Optional one-sentence natural language summary
	Comment string `json:"comment,omitempty"`
	// Data source tag, e.g. coordinates or "fallback"
	SourceLabel string `json:"source_label,omitempty" example:"52.41,16.93"`
	// When the record was computed
	CreatedAt time.Time `json:"created_at" example:"2024-07-19T06:10:00Z"`
	// Trace ID for feedback (optional, only present when tracing is enabled)
	TraceID string `json:"trace_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
}

func (r *DailyRecommendation) ToResponse(unit VolumeUnit) RecommendationResponse {
	return RecommendationResponse{
		ID:                r.ID,
		Kind:              r.Kind,
		Day:               r.Day.Format("2006-01-02"),
		AdditionalWaterMl: r.AdditionalWaterMl,
		Display:           DisplayVolume(r.AdditionalWaterMl, unit),
		Factors:           r.Factors,
		Confidence:        r.Confidence,
		Priority:          r.Priority,
		Comment:           r.Comment,
		SourceLabel:       r.SourceLabel,
		CreatedAt:         r.CreatedAt,
	}
}
