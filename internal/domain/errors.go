package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInsufficientMetrics = errors.New("insufficient body metrics")
	ErrWeatherUnavailable  = errors.New("weather provider unavailable")
)
