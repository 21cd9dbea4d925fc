package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// IntakeSource records how an intake entry was captured.
type IntakeSource string

const (
	// IntakeSourceManual is a hand-logged drink
	IntakeSourceManual IntakeSource = "manual"
	// IntakeSourcePhoto is a drink logged from photo analysis
	IntakeSourcePhoto IntakeSource = "photo"
)

type IntakeLog struct {
	ID              uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID    `gorm:"type:uuid;not null;index:idx_intake_logs_user_logged" json:"user_id"`
	AmountMl        int          `gorm:"not null" json:"amount_ml"`
	Beverage        string       `gorm:"type:varchar(64);not null;default:'water'" json:"beverage"`
	HydrationFactor float64      `gorm:"type:numeric(3,2);not null;default:1.0" json:"hydration_factor"`
	Source          IntakeSource `gorm:"type:varchar(10);not null;default:'manual'" json:"source"`
	LoggedAt        time.Time    `gorm:"not null;index:idx_intake_logs_user_logged,sort:desc" json:"logged_at"`
	CreatedAt       time.Time    `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (IntakeLog) TableName() string {
	return "intake_logs"
}

// EffectiveMl is the hydration-weighted volume. Coffee at factor 0.8 counts
// 80% of its poured volume toward the daily goal.
func (l *IntakeLog) EffectiveMl() int {
	return int(math.Round(float64(l.AmountMl) * l.HydrationFactor))
}

// CreateIntakeRequest is the request body for logging a drink. The volume
// comes either as amount_ml or as amount plus an explicit unit.
// @Description Request payload for logging water intake.
type CreateIntakeRequest struct {
	// Volume in millilitres; mutually exclusive with amount
	AmountMl *int `json:"amount_ml,omitempty" validate:"omitempty,gt=0,lte=5000" example:"250"`
	// Volume in the given unit; requires unit
	Amount *float64 `json:"amount,omitempty" validate:"omitempty,gt=0" example:"8.5"`
	// Unit for amount
	Unit *string `json:"unit,omitempty" validate:"omitempty,oneof=metric imperial" example:"imperial" enums:"metric,imperial"`
	// Beverage name, defaults to water
	Beverage *string `json:"beverage,omitempty" validate:"omitempty,max=64" example:"green tea"`
	// Hydration weighting in (0,1], defaults to 1.0
	HydrationFactor *float64 `json:"hydration_factor,omitempty" validate:"omitempty,gt=0,lte=1" example:"0.9"`
	// When the drink was consumed, defaults to now
	LoggedAt *time.Time `json:"logged_at,omitempty" example:"2024-07-19T14:30:00Z"`
}

// IntakeResponse is the response body for intake endpoints.
type IntakeResponse struct {
	ID              uuid.UUID     `json:"id"`
	UserID          uuid.UUID     `json:"user_id"`
	AmountMl        int           `json:"amount_ml"`
	EffectiveMl     int           `json:"effective_ml"`
	Display         VolumeDisplay `json:"display"`
	Beverage        string        `json:"beverage"`
	HydrationFactor float64       `json:"hydration_factor"`
	Source          IntakeSource  `json:"source"`
	LoggedAt        time.Time     `json:"logged_at"`
	CreatedAt       time.Time     `json:"created_at"`
}

func (l *IntakeLog) ToResponse(unit VolumeUnit) IntakeResponse {
	return IntakeResponse{
		ID:              l.ID,
		UserID:          l.UserID,
		AmountMl:        l.AmountMl,
		EffectiveMl:     l.EffectiveMl(),
		Display:         DisplayVolume(l.AmountMl, unit),
		Beverage:        l.Beverage,
		HydrationFactor: l.HydrationFactor,
		Source:          l.Source,
		LoggedAt:        l.LoggedAt,
		CreatedAt:       l.CreatedAt,
	}
}

// IntakeListResponse is the response body for listing intake logs.
// @Description Paginated list of intake logs.
type IntakeListResponse struct {
	// Array of intake records
	Data []IntakeResponse `json:"data"`
	// Pagination metadata
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty" example:"eyJpZCI6IjU1MGU4NDAwLWUyOWItNDFkNC1hNzE2LTQ0NjY1NTQ0MDAwMCJ9"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// IntakeFilter contains filter parameters for listing intake logs
type IntakeFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}

// DescriptiveStats holds basic statistical measures.
// @Description Basic statistical measures for a metric.
type DescriptiveStats struct {
	Avg float64 `json:"avg" example:"2350.0"`
	Std float64 `json:"std" example:"410.5"`
	Min float64 `json:"min" example:"1500.0"`
	Max float64 `json:"max" example:"3100.0"`
}

// IntakeSummaryResponse is the response for the intake summary endpoint.
// @Description Hydration statistics over a rolling window.
type IntakeSummaryResponse struct {
	// Window length in days
	WindowDays int `json:"window_days" example:"14"`
	// Number of days in the window with at least one log
	DaysWithData int `json:"days_with_data" example:"12"`
	// Effective daily total statistics in millilitres
	DailyTotalMl DescriptiveStats `json:"daily_total_ml"`
	// Daily goal the window was measured against
	GoalMl int `json:"goal_ml" example:"2800"`
	// Days whose effective total met the goal
	DaysGoalMet int `json:"days_goal_met" example:"9"`
	// Percentage of days-with-data meeting the goal (0-100)
	GoalAdherencePct float64 `json:"goal_adherence_pct" example:"75.0"`
	// Consecutive goal-met days ending today or yesterday
	CurrentStreakDays int `json:"current_streak_days" example:"3"`
}

// IntakeSummaryRequest contains query parameters for the summary endpoint.
type IntakeSummaryRequest struct {
	WindowDays int `json:"window_days" validate:"omitempty,min=1,max=365"`
}

// DrinkAnalysis is the structured output of drink photo analysis.
// @Description Vision model estimate of a photographed drink.
type DrinkAnalysis struct {
	// Detected beverage name
	Beverage string `json:"beverage" example:"iced latte"`
	// Estimated volume in millilitres
	EstimatedVolumeMl int `json:"estimated_volume_ml" example:"350"`
	// Hydration weighting in (0,1]
	HydrationFactor float64 `json:"hydration_factor" example:"0.85"`
	// Model confidence in [0,1]
	Confidence float64 `json:"confidence" example:"0.7"`
}

// AnalyzeDrinkRequest is the request body for drink photo analysis.
type AnalyzeDrinkRequest struct {
	// Base64-encoded JPEG or PNG of the drink
	ImageBase64 string `json:"image_base64" validate:"required"`
	// When true, an intake log is created from the analysis
	Log bool `json:"log,omitempty" example:"true"`
}

// AnalyzeDrinkResponse is the response body for drink photo analysis.
type AnalyzeDrinkResponse struct {
	Analysis DrinkAnalysis `json:"analysis"`
	// Created intake record when log was requested
	Intake *IntakeResponse `json:"intake,omitempty"`
}
