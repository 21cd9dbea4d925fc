package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/aqualog/hydration-api/internal/domain"
	"github.com/aqualog/hydration-api/internal/llm"
	"github.com/aqualog/hydration-api/internal/log"
	"github.com/aqualog/hydration-api/internal/repository"
	"github.com/aqualog/hydration-api/internal/weather"
)

const (
	// Temperature tiers (°C), strongest match wins
	extremeHeatTempC = 35.0
	hotTempC         = 30.0
	warmTempC        = 25.0
	coolTempC        = 10.0
	coldTempC        = 5.0
	extremeHeatMl    = 600
	hotMl            = 400
	warmMl           = 250
	coolMl           = -100
	coldMl           = -150

	// Relative humidity tiers (fraction of 1)
	veryDryHumidity   = 0.25
	dryHumidity       = 0.40
	humidHumidity     = 0.70
	veryHumidHumidity = 0.85
	veryDryMl         = 300
	dryMl             = 200
	veryHumidMl       = 150
	humidMl           = 100

	// UV index tiers
	extremeUVIndex  = 10
	veryHighUVIndex = 8
	highUVIndex     = 6
	moderateUVIndex = 3
	extremeUVMl     = 200
	veryHighUVMl    = 150
	highUVMl        = 100
	moderateUVMl    = 50

	// Sky condition adjustments
	clearSkyMl = 100
	rainMl     = -50
	snowMl     = -100
	stormMl    = 75
	fogMl      = 50

	// Daily temperature swing
	largeSwingC  = 15.0
	largeSwingMl = 100

	// Priority cutoffs
	highPriorityTotalMl   = 500
	mediumPriorityTotalMl = 200

	// Confidence model
	weatherBaseConfidence = 0.50
	extremeTempConfidence = 0.20
	tempTierConfidence    = 0.15
	extremeHumConfidence  = 0.15
	humidityConfidence    = 0.10
	extremeUVConfidence   = 0.15
	veryHighUVConfidence  = 0.10
	moderateUVConfidence  = 0.05
	conditionConfidence   = 0.05
	swingConfidence       = 0.05
)

// WeatherAdvisorService turns current weather at the user's location into a
// hydration recommendation for a calendar day.
type WeatherAdvisorService interface {
	Recommend(ctx context.Context, userID uuid.UUID, day time.Time, lat, lon float64, force bool) (*domain.RecommendationResponse, error)
}

type weatherAdvisorService struct {
	userRepo      repository.UserRepository
	recRepo       repository.RecommendationRepository
	provider      weather.Provider
	comments      llm.CommentWriter
	allowFallback bool
	now           func() time.Time
}

// NewWeatherAdvisorService creates a new weather advisor. When allowFallback
// is set, a provider outage degrades to a neutral snapshot instead of an
// error. comments may be nil.
func NewWeatherAdvisorService(userRepo repository.UserRepository, recRepo repository.RecommendationRepository, provider weather.Provider, comments llm.CommentWriter, allowFallback bool) WeatherAdvisorService {
	return &weatherAdvisorService{
		userRepo:      userRepo,
		recRepo:       recRepo,
		provider:      provider,
		comments:      comments,
		allowFallback: allowFallback,
		now:           time.Now,
	}
}

// Recommend returns the weather recommendation for the given day and
// location, computing and persisting it on first request. A zero day means
// today in the user's timezone. force refetches and recomputes.
func (s *weatherAdvisorService) Recommend(ctx context.Context, userID uuid.UUID, day time.Time, lat, lon float64, force bool) (*domain.RecommendationResponse, error) {
	tracer := otel.Tracer("hydration-api/weather")
	ctx, span := tracer.Start(ctx, "WeatherAdvisorService.Recommend", trace.WithAttributes(
		attribute.String("user.id", userID.String()),
		attribute.Float64("location.lat", lat),
		attribute.Float64("location.lon", lon),
		attribute.Bool("force", force),
	))
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if day.IsZero() {
		day = calendarDay(s.now(), userLocation(user))
	}
	span.SetAttributes(attribute.String("recommendation.day", day.Format(dateLayout)))

	if !force {
		cached, err := s.recRepo.GetByDay(ctx, userID, day, domain.RecommendationWeather)
		if err == nil {
			resp := cached.ToResponse(user.Unit)
			return &resp, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}

	sourceLabel := fmt.Sprintf("%.2f,%.2f", lat, lon)
	snapshot, err := s.provider.Current(ctx, lat, lon)
	if err != nil {
		if !s.allowFallback {
			return nil, err
		}
		log.Warnf("weather provider failed, using fallback snapshot: %v", err)
		span.SetAttributes(attribute.Bool("weather.fallback", true))
		snapshot = weather.FallbackSnapshot()
		sourceLabel = "fallback"
	}

	rec := BuildWeatherRecommendation(snapshot)
	span.SetAttributes(
		attribute.Int("recommendation.additional_water_ml", rec.AdditionalWaterMl),
		attribute.String("recommendation.priority", string(rec.Priority)),
		attribute.Float64("recommendation.confidence", rec.Confidence),
		attribute.Float64("weather.temperature_c", snapshot.CurrentTemperatureC),
		attribute.String("weather.condition", string(snapshot.Condition)),
	)

	record := &domain.DailyRecommendation{
		ID:                uuid.New(),
		UserID:            userID,
		Day:               day,
		Kind:              domain.RecommendationWeather,
		AdditionalWaterMl: rec.AdditionalWaterMl,
		Factors:           rec.Factors,
		Confidence:        rec.Confidence,
		Priority:          rec.Priority,
		Comment:           recommendationComment(ctx, s.comments, domain.RecommendationWeather, rec),
		SourceLabel:       sourceLabel,
		CreatedAt:         s.now().UTC(),
	}
	if err := s.recRepo.Put(ctx, record); err != nil {
		return nil, err
	}

	resp := record.ToResponse(user.Unit)
	return &resp, nil
}

// BuildWeatherRecommendation turns a weather snapshot into an additional-water
// recommendation. Cold and wet conditions subtract, but the total never goes
// below zero: weather alone never reduces the base goal.
func BuildWeatherRecommendation(snapshot domain.WeatherSnapshot) domain.HydrationRecommendation {
	var b domain.RecommendationBuilder

	tempDelta := 0
	switch {
	case snapshot.CurrentTemperatureC >= extremeHeatTempC:
		tempDelta = extremeHeatMl
		b.Add(tempDelta, fmt.Sprintf("Extreme heat (%.1f°C)", snapshot.CurrentTemperatureC))
	case snapshot.CurrentTemperatureC >= hotTempC:
		tempDelta = hotMl
		b.Add(tempDelta, fmt.Sprintf("Hot weather (%.1f°C)", snapshot.CurrentTemperatureC))
	case snapshot.CurrentTemperatureC >= warmTempC:
		tempDelta = warmMl
		b.Add(tempDelta, fmt.Sprintf("Warm weather (%.1f°C)", snapshot.CurrentTemperatureC))
	case snapshot.CurrentTemperatureC <= coldTempC:
		tempDelta = coldMl
		b.Add(tempDelta, fmt.Sprintf("Cold weather (%.1f°C)", snapshot.CurrentTemperatureC))
	case snapshot.CurrentTemperatureC <= coolTempC:
		tempDelta = coolMl
		b.Add(tempDelta, fmt.Sprintf("Cool weather (%.1f°C)", snapshot.CurrentTemperatureC))
	}

	switch {
	case snapshot.Humidity < veryDryHumidity:
		b.Add(veryDryMl, fmt.Sprintf("Very dry air (%.0f%% humidity)", snapshot.Humidity*100))
	case snapshot.Humidity < dryHumidity:
		b.Add(dryMl, fmt.Sprintf("Dry air (%.0f%% humidity)", snapshot.Humidity*100))
	case snapshot.Humidity > veryHumidHumidity:
		b.Add(veryHumidMl, fmt.Sprintf("Very humid air (%.0f%% humidity)", snapshot.Humidity*100))
	case snapshot.Humidity > humidHumidity:
		b.Add(humidMl, fmt.Sprintf("Humid air (%.0f%% humidity)", snapshot.Humidity*100))
	}

	switch {
	case snapshot.UVIndex >= extremeUVIndex:
		b.Add(extremeUVMl, fmt.Sprintf("Extreme UV index (%d)", snapshot.UVIndex))
	case snapshot.UVIndex >= veryHighUVIndex:
		b.Add(veryHighUVMl, fmt.Sprintf("Very high UV index (%d)", snapshot.UVIndex))
	case snapshot.UVIndex >= highUVIndex:
		b.Add(highUVMl, fmt.Sprintf("High UV index (%d)", snapshot.UVIndex))
	case snapshot.UVIndex >= moderateUVIndex:
		b.Add(moderateUVMl, fmt.Sprintf("Moderate UV index (%d)", snapshot.UVIndex))
	}

	conditionDelta, conditionLabel := conditionAdjustment(snapshot.Condition)
	b.Add(conditionDelta, conditionLabel)

	swing := snapshot.TemperatureSwingC()
	if swing > largeSwingC {
		b.Add(largeSwingMl, fmt.Sprintf("Large temperature swing (%.1f°C)", swing))
	}

	confidence := weatherConfidence(snapshot, tempDelta, conditionDelta, swing)
	return b.Build(confidence, weatherPriority(snapshot, b.TotalMl()))
}

// conditionAdjustment groups the condition vocabulary into hydration-relevant
// families. Conditions that say nothing about fluid loss adjust by zero.
func conditionAdjustment(cond domain.WeatherCondition) (int, string) {
	switch cond {
	case domain.ConditionClear, domain.ConditionMostlyClear, domain.ConditionHot:
		return clearSkyMl, "Clear sky raises sun exposure"
	case domain.ConditionDrizzle, domain.ConditionRain, domain.ConditionHeavyRain, domain.ConditionSunShowers:
		return rainMl, "Rain keeps sweat loss down"
	case domain.ConditionFlurries, domain.ConditionSnow, domain.ConditionHeavySnow,
		domain.ConditionBlowingSnow, domain.ConditionBlizzard:
		return snowMl, "Snowy conditions reduce fluid loss"
	case domain.ConditionIsolatedThunderstorms, domain.ConditionScatteredThunderstorm,
		domain.ConditionThunderstorms, domain.ConditionStrongStorms,
		domain.ConditionTropicalStorm, domain.ConditionHurricane:
		return stormMl, "Storm air holds extra humidity"
	case domain.ConditionFoggy, domain.ConditionHaze, domain.ConditionSmoky:
		return fogMl, "Fog or haze"
	}
	return 0, ""
}

func weatherPriority(snapshot domain.WeatherSnapshot, totalMl int) domain.Priority {
	switch {
	case totalMl >= highPriorityTotalMl || snapshot.CurrentTemperatureC >= extremeHeatTempC || snapshot.UVIndex >= extremeUVIndex:
		return domain.PriorityHigh
	case totalMl >= mediumPriorityTotalMl || snapshot.CurrentTemperatureC >= warmTempC || snapshot.UVIndex >= highUVIndex:
		return domain.PriorityMedium
	}
	return domain.PriorityLow
}

// weatherConfidence grows with how decisive the readings were. The humidity
// reading always contributes; the other components only when they fired.
func weatherConfidence(snapshot domain.WeatherSnapshot, tempDelta, conditionDelta int, swing float64) float64 {
	confidence := weatherBaseConfidence

	switch {
	case snapshot.CurrentTemperatureC >= extremeHeatTempC:
		confidence += extremeTempConfidence
	case tempDelta != 0:
		confidence += tempTierConfidence
	}

	if snapshot.Humidity < veryDryHumidity || snapshot.Humidity > veryHumidHumidity {
		confidence += extremeHumConfidence
	} else {
		confidence += humidityConfidence
	}

	switch {
	case snapshot.UVIndex >= extremeUVIndex:
		confidence += extremeUVConfidence
	case snapshot.UVIndex >= veryHighUVIndex:
		confidence += veryHighUVConfidence
	case snapshot.UVIndex >= moderateUVIndex:
		confidence += moderateUVConfidence
	}

	if conditionDelta != 0 {
		confidence += conditionConfidence
	}
	if swing > largeSwingC {
		confidence += swingConfidence
	}
	return confidence
}
