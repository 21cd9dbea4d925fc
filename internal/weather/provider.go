// Package weather fetches current conditions from an external forecast
// service and normalizes them into domain snapshots.
package weather

import (
	"context"

	"github.com/aqualog/hydration-api/internal/domain"
)

// Provider supplies a current weather snapshot for a coordinate pair.
type Provider interface {
	Current(ctx context.Context, lat, lon float64) (domain.WeatherSnapshot, error)
}

// FallbackSnapshot is the neutral substitute used when the provider is
// unreachable and fallback is enabled. Mild, swing-free conditions keep the
// recommendation close to zero rather than inventing weather signals.
func FallbackSnapshot() domain.WeatherSnapshot {
	return domain.WeatherSnapshot{
		CurrentTemperatureC: 20,
		MaxTemperatureC:     23,
		MinTemperatureC:     18,
		Humidity:            0.50,
		UVIndex:             2,
		Condition:           domain.ConditionCloudy,
	}
}
