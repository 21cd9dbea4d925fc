package domain

import (
	"fmt"
	"math"
)

// VolumeUnit selects how water volumes are presented to the user.
// Storage is always millilitres; the unit only affects display and input
// conversion.
// @Description Measurement system for volumes: metric (millilitres) or imperial (US fluid ounces).
type VolumeUnit string

const (
	// UnitMetric displays volumes in millilitres
	UnitMetric VolumeUnit = "metric"
	// UnitImperial displays volumes in US fluid ounces
	UnitImperial VolumeUnit = "imperial"
)

// MillilitersPerFluidOunce is the fixed US fluid ounce conversion factor.
const MillilitersPerFluidOunce = 29.5735

// ParseVolumeUnit converts a string into a VolumeUnit.
func ParseVolumeUnit(s string) (VolumeUnit, error) {
	switch VolumeUnit(s) {
	case UnitMetric:
		return UnitMetric, nil
	case UnitImperial:
		return UnitImperial, nil
	default:
		return "", fmt.Errorf("%w: unknown volume unit %q", ErrInvalidInput, s)
	}
}

func (u VolumeUnit) Valid() bool {
	return u == UnitMetric || u == UnitImperial
}

// Symbol returns the display suffix for the unit.
func (u VolumeUnit) Symbol() string {
	if u == UnitImperial {
		return "fl oz"
	}
	return "ml"
}

// FromMilliliters converts a canonical millilitre volume into this unit.
func (u VolumeUnit) FromMilliliters(ml float64) float64 {
	if u == UnitImperial {
		return ml / MillilitersPerFluidOunce
	}
	return ml
}

// ToMilliliters converts an amount expressed in this unit back to millilitres.
func (u VolumeUnit) ToMilliliters(amount float64) float64 {
	if u == UnitImperial {
		return amount * MillilitersPerFluidOunce
	}
	return amount
}

// VolumeDisplay is a volume rendered in the user's preferred unit.
type VolumeDisplay struct {
	// Amount in the display unit, rounded to one decimal place
	Amount float64 `json:"amount" example:"84.5"`
	// Display unit symbol
	Unit string `json:"unit" example:"fl oz"`
}

// DisplayVolume renders a millilitre volume in the given unit.
func DisplayVolume(ml int, unit VolumeUnit) VolumeDisplay {
	amount := unit.FromMilliliters(float64(ml))
	return VolumeDisplay{
		Amount: math.Round(amount*10) / 10,
		Unit:   unit.Symbol(),
	}
}
