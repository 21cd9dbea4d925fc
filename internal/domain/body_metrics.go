package domain

import (
	"fmt"
	"strings"
)

// Sex is the biological sex used for baseline water need estimation.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexOther  Sex = "other"
)

func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale || s == SexOther
}

// ActivityLevel is the self-reported habitual activity tier.
// @Description Habitual physical activity level, five tiers from sedentary to extra_active.
type ActivityLevel string

const (
	ActivitySedentary   ActivityLevel = "sedentary"
	ActivityLight       ActivityLevel = "light"
	ActivityModerate    ActivityLevel = "moderate"
	ActivityVeryActive  ActivityLevel = "very_active"
	ActivityExtraActive ActivityLevel = "extra_active"
)

func (a ActivityLevel) Valid() bool {
	switch a {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityVeryActive, ActivityExtraActive:
		return true
	}
	return false
}

// Climate is the user's habitual climate zone.
type Climate string

const (
	ClimateTemperate Climate = "temperate"
	ClimateHot       Climate = "hot"
	ClimateCold      Climate = "cold"
	ClimateHumid     Climate = "humid"
)

func (c Climate) Valid() bool {
	switch c {
	case ClimateTemperate, ClimateHot, ClimateCold, ClimateHumid:
		return true
	}
	return false
}

// BodyMetrics is the immutable input to daily water goal planning. Every
// field is required; planning fails rather than guessing around gaps.
type BodyMetrics struct {
	HeightCm      float64
	WeightKg      float64
	AgeYears      int
	Sex           Sex
	ActivityLevel ActivityLevel
	Climate       Climate
}

// Validate reports every missing or out-of-range field at once, wrapped in
// ErrInsufficientMetrics so callers can map the whole class to one outcome.
func (m BodyMetrics) Validate() error {
	var missing []string
	if m.HeightCm <= 0 {
		missing = append(missing, "height_cm")
	}
	if m.WeightKg <= 0 {
		missing = append(missing, "weight_kg")
	}
	if m.AgeYears <= 0 {
		missing = append(missing, "age_years")
	}
	if !m.Sex.Valid() {
		missing = append(missing, "sex")
	}
	if !m.ActivityLevel.Valid() {
		missing = append(missing, "activity_level")
	}
	if !m.Climate.Valid() {
		missing = append(missing, "climate")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrInsufficientMetrics, strings.Join(missing, ", "))
	}
	return nil
}
