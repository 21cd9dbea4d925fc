package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Timezone      string         `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	Unit          VolumeUnit     `gorm:"type:varchar(10);not null;default:'metric'" json:"unit"`
	HeightCm      *float64       `gorm:"type:numeric(5,1)" json:"height_cm,omitempty"`
	WeightKg      *float64       `gorm:"type:numeric(5,1)" json:"weight_kg,omitempty"`
	AgeYears      *int           `gorm:"type:smallint" json:"age_years,omitempty"`
	Sex           *Sex           `gorm:"type:varchar(10)" json:"sex,omitempty"`
	ActivityLevel *ActivityLevel `gorm:"type:varchar(16)" json:"activity_level,omitempty"`
	Climate       *Climate       `gorm:"type:varchar(12)" json:"climate,omitempty"`
	DailyGoalMl   int            `gorm:"not null;default:0" json:"daily_goal_ml"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// Metrics assembles the planning input from the profile columns. Fields the
// user has not filled in stay at their zero values; BodyMetrics.Validate
// decides whether the set is complete enough to plan with.
func (u *User) Metrics() BodyMetrics {
	var m BodyMetrics
	if u.HeightCm != nil {
		m.HeightCm = *u.HeightCm
	}
	if u.WeightKg != nil {
		m.WeightKg = *u.WeightKg
	}
	if u.AgeYears != nil {
		m.AgeYears = *u.AgeYears
	}
	if u.Sex != nil {
		m.Sex = *u.Sex
	}
	if u.ActivityLevel != nil {
		m.ActivityLevel = *u.ActivityLevel
	}
	if u.Climate != nil {
		m.Climate = *u.Climate
	}
	return m
}

// CreateUserRequest is the request body for creating a user
type CreateUserRequest struct {
	Timezone string `json:"timezone" validate:"required,timezone" example:"Europe/Prague"`
	Unit     string `json:"unit" validate:"required,oneof=metric imperial" example:"metric" enums:"metric,imperial"`
}

// UpdateMetricsRequest is the request body for updating body metrics.
// Fields may be sent individually; the daily goal is replanned once the
// profile is complete.
// @Description Partial or full body metrics update.
type UpdateMetricsRequest struct {
	// Height in centimetres
	HeightCm *float64 `json:"height_cm,omitempty" validate:"omitempty,gt=0,lte=250" example:"178"`
	// Weight in kilograms
	WeightKg *float64 `json:"weight_kg,omitempty" validate:"omitempty,gt=0,lte=400" example:"74.5"`
	// Age in years
	AgeYears *int `json:"age_years,omitempty" validate:"omitempty,min=1,max=120" example:"34"`
	// Biological sex
	Sex *string `json:"sex,omitempty" validate:"omitempty,oneof=male female other" example:"female" enums:"male,female,other"`
	// Habitual activity tier
	ActivityLevel *string `json:"activity_level,omitempty" validate:"omitempty,oneof=sedentary light moderate very_active extra_active" example:"moderate" enums:"sedentary,light,moderate,very_active,extra_active"`
	// Habitual climate zone
	Climate *string `json:"climate,omitempty" validate:"omitempty,oneof=temperate hot cold humid" example:"temperate" enums:"temperate,hot,cold,humid"`
}

// UserResponse is the response body for user endpoints
type UserResponse struct {
	ID            uuid.UUID      `json:"id"`
	Timezone      string         `json:"timezone"`
	Unit          VolumeUnit     `json:"unit"`
	HeightCm      *float64       `json:"height_cm,omitempty"`
	WeightKg      *float64       `json:"weight_kg,omitempty"`
	AgeYears      *int           `json:"age_years,omitempty"`
	Sex           *Sex           `json:"sex,omitempty"`
	ActivityLevel *ActivityLevel `json:"activity_level,omitempty"`
	Climate       *Climate       `json:"climate,omitempty"`
	DailyGoalMl   int            `json:"daily_goal_ml"`
	CreatedAt     time.Time      `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:            u.ID,
		Timezone:      u.Timezone,
		Unit:          u.Unit,
		HeightCm:      u.HeightCm,
		WeightKg:      u.WeightKg,
		AgeYears:      u.AgeYears,
		Sex:           u.Sex,
		ActivityLevel: u.ActivityLevel,
		Climate:       u.Climate,
		DailyGoalMl:   u.DailyGoalMl,
		CreatedAt:     u.CreatedAt,
	}
}

// GoalResponse is the response body for the daily goal endpoint.
// @Description Daily water goal in millilitres and the user's display unit.
type GoalResponse struct {
	// Goal in millilitres
	WaterMl int `json:"water_ml" example:"2800"`
	// Goal in the user's display unit
	Display VolumeDisplay `json:"display"`
}
