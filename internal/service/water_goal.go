package service

import (
	"math"

	"github.com/aqualog/hydration-api/internal/domain"
)

const (
	// BaselineMlPerKg is the per-kilogram baseline daily water need.
	BaselineMlPerKg = 35

	// Height correction around the reference height
	HeightReferenceCm = 170
	HeightMlPerCm     = 5

	// SeniorAgeYears is the age from which total body water is reduced.
	SeniorAgeYears   = 65
	SeniorMultiplier = 0.95

	// Daily goal bounds (the range the clients can render)
	MinDailyGoalMl = 1000
	MaxDailyGoalMl = 6000
)

// PlanWaterGoal computes the daily water goal in millilitres from complete
// body metrics. Incomplete metrics return ErrInsufficientMetrics; the
// planner never substitutes population averages for missing fields.
func PlanWaterGoal(m domain.BodyMetrics) (int, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}

	goal := m.WeightKg * BaselineMlPerKg
	goal += (m.HeightCm - HeightReferenceCm) * HeightMlPerCm
	goal *= activityMultiplier(m.ActivityLevel)
	goal *= climateMultiplier(m.Climate)
	goal *= sexMultiplier(m.Sex)
	if m.AgeYears >= SeniorAgeYears {
		goal *= SeniorMultiplier
	}

	ml := int(math.Round(goal))
	if ml < MinDailyGoalMl {
		ml = MinDailyGoalMl
	}
	if ml > MaxDailyGoalMl {
		ml = MaxDailyGoalMl
	}
	return ml, nil
}

// activityMultiplier scales the baseline by habitual activity. More activity
// never lowers the goal.
func activityMultiplier(a domain.ActivityLevel) float64 {
	switch a {
	case domain.ActivitySedentary:
		return 1.00
	case domain.ActivityLight:
		return 1.10
	case domain.ActivityModerate:
		return 1.20
	case domain.ActivityVeryActive:
		return 1.30
	case domain.ActivityExtraActive:
		return 1.40
	}
	return 1.00
}

// climateMultiplier scales the baseline by habitual climate. Hotter or more
// humid climates never lower the goal below temperate.
func climateMultiplier(c domain.Climate) float64 {
	switch c {
	case domain.ClimateHot:
		return 1.15
	case domain.ClimateHumid:
		return 1.10
	case domain.ClimateCold:
		return 0.95
	}
	return 1.00
}

func sexMultiplier(s domain.Sex) float64 {
	switch s {
	case domain.SexFemale:
		return 0.95
	case domain.SexOther:
		return 0.97
	}
	return 1.00
}
