package handler

import (
	"context"
	"time"

	"github.com/aqualog/hydration-api/internal/domain"
	"github.com/google/uuid"
)

// MockIntakeService is a mock implementation of IntakeService
type MockIntakeService struct {
	logFunc     func(ctx context.Context, userID uuid.UUID, req *domain.CreateIntakeRequest) (*domain.IntakeResponse, error)
	listFunc    func(ctx context.Context, userID uuid.UUID, filter domain.IntakeFilter) (*domain.IntakeListResponse, error)
	summaryFunc func(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.IntakeSummaryResponse, error)
	analyzeFunc func(ctx context.Context, userID uuid.UUID, req *domain.AnalyzeDrinkRequest) (*domain.AnalyzeDrinkResponse, error)
}

func (m *MockIntakeService) Log(ctx context.Context, userID uuid.UUID, req *domain.CreateIntakeRequest) (*domain.IntakeResponse, error) {
	if m.logFunc != nil {
		return m.logFunc(ctx, userID, req)
	}
	return &domain.IntakeResponse{
		ID:              uuid.New(),
		UserID:          userID,
		AmountMl:        250,
		EffectiveMl:     250,
		Beverage:        "water",
		HydrationFactor: 1.0,
		Source:          domain.IntakeSourceManual,
		LoggedAt:        time.Now().UTC(),
		CreatedAt:       time.Now().UTC(),
	}, nil
}

func (m *MockIntakeService) List(ctx context.Context, userID uuid.UUID, filter domain.IntakeFilter) (*domain.IntakeListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.IntakeListResponse{
		Data:       []domain.IntakeResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

func (m *MockIntakeService) Summary(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.IntakeSummaryResponse, error) {
	if m.summaryFunc != nil {
		return m.summaryFunc(ctx, userID, windowDays)
	}
	return &domain.IntakeSummaryResponse{WindowDays: windowDays}, nil
}

func (m *MockIntakeService) AnalyzeDrink(ctx context.Context, userID uuid.UUID, req *domain.AnalyzeDrinkRequest) (*domain.AnalyzeDrinkResponse, error) {
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, userID, req)
	}
	return &domain.AnalyzeDrinkResponse{
		Analysis: domain.DrinkAnalysis{
			Beverage:          "water",
			EstimatedVolumeMl: 250,
			HydrationFactor:   1.0,
			Confidence:        0.9,
		},
	}, nil
}

// MockSleepAdvisorService is a mock implementation of SleepAdvisorService
type MockSleepAdvisorService struct {
	recommendFunc func(ctx context.Context, userID uuid.UUID, day time.Time, force bool) (*domain.RecommendationResponse, error)
}

func (m *MockSleepAdvisorService) Recommend(ctx context.Context, userID uuid.UUID, day time.Time, force bool) (*domain.RecommendationResponse, error) {
	if m.recommendFunc != nil {
		return m.recommendFunc(ctx, userID, day, force)
	}
	return &domain.RecommendationResponse{
		ID:       uuid.New(),
		Kind:     domain.RecommendationSleep,
		Day:      "2024-07-19",
		Priority: domain.PriorityLow,
	}, nil
}

// MockWeatherAdvisorService is a mock implementation of WeatherAdvisorService
type MockWeatherAdvisorService struct {
	recommendFunc func(ctx context.Context, userID uuid.UUID, day time.Time, lat, lon float64, force bool) (*domain.RecommendationResponse, error)
}

func (m *MockWeatherAdvisorService) Recommend(ctx context.Context, userID uuid.UUID, day time.Time, lat, lon float64, force bool) (*domain.RecommendationResponse, error) {
	if m.recommendFunc != nil {
		return m.recommendFunc(ctx, userID, day, lat, lon, force)
	}
	return &domain.RecommendationResponse{
		ID:       uuid.New(),
		Kind:     domain.RecommendationWeather,
		Day:      "2024-07-19",
		Priority: domain.PriorityLow,
	}, nil
}

// MockDigestService is a mock implementation of DigestService
type MockDigestService struct {
	todayFunc func(ctx context.Context, userID uuid.UUID) (*domain.DailyDigest, error)
}

func (m *MockDigestService) Today(ctx context.Context, userID uuid.UUID) (*domain.DailyDigest, error) {
	if m.todayFunc != nil {
		return m.todayFunc(ctx, userID)
	}
	return &domain.DailyDigest{
		Day:             "2024-07-19",
		Recommendations: []domain.RecommendationResponse{},
	}, nil
}

// MockSleepSyncService is a mock implementation of SleepSyncService
type MockSleepSyncService struct {
	syncFunc func(ctx context.Context, userID uuid.UUID, req *domain.SyncSleepSamplesRequest) (*domain.SyncSleepSamplesResponse, error)
}

func (m *MockSleepSyncService) Sync(ctx context.Context, userID uuid.UUID, req *domain.SyncSleepSamplesRequest) (*domain.SyncSleepSamplesResponse, error) {
	if m.syncFunc != nil {
		return m.syncFunc(ctx, userID, req)
	}
	return &domain.SyncSleepSamplesResponse{Stored: len(req.Samples)}, nil
}
