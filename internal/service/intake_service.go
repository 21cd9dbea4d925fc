package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/aqualog/hydration-api/internal/domain"
	"github.com/aqualog/hydration-api/internal/llm"
	"github.com/aqualog/hydration-api/internal/repository"
	"github.com/aqualog/hydration-api/pkg/pagination"
)

const (
	defaultBeverage        = "water"
	defaultHydrationFactor = 1.0

	// DefaultSummaryWindowDays is the summary window when none is requested.
	DefaultSummaryWindowDays = 14
)

type IntakeService interface {
	Log(ctx context.Context, userID uuid.UUID, req *domain.CreateIntakeRequest) (*domain.IntakeResponse, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.IntakeFilter) (*domain.IntakeListResponse, error)
	Summary(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.IntakeSummaryResponse, error)
	AnalyzeDrink(ctx context.Context, userID uuid.UUID, req *domain.AnalyzeDrinkRequest) (*domain.AnalyzeDrinkResponse, error)
}

type intakeService struct {
	repo     repository.IntakeRepository
	userRepo repository.UserRepository
	vision   llm.DrinkAnalyzer
	now      func() time.Time
}

// NewIntakeService creates a new intake service. vision may be nil; drink
// photo analysis then reports the LLM as unavailable.
func NewIntakeService(repo repository.IntakeRepository, userRepo repository.UserRepository, vision llm.DrinkAnalyzer) IntakeService {
	return &intakeService{
		repo:     repo,
		userRepo: userRepo,
		vision:   vision,
		now:      time.Now,
	}
}

// Log records one drink. The volume comes either as amount_ml or as amount
// plus an explicit unit; beverage and hydration factor default to plain water.
func (s *intakeService) Log(ctx context.Context, userID uuid.UUID, req *domain.CreateIntakeRequest) (*domain.IntakeResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	amountMl, err := resolveAmountMl(req)
	if err != nil {
		return nil, err
	}

	entry := &domain.IntakeLog{
		ID:              uuid.New(),
		UserID:          userID,
		AmountMl:        amountMl,
		Beverage:        defaultBeverage,
		HydrationFactor: defaultHydrationFactor,
		Source:          domain.IntakeSourceManual,
		LoggedAt:        s.now().UTC(),
	}
	if req.Beverage != nil && *req.Beverage != "" {
		entry.Beverage = *req.Beverage
	}
	if req.HydrationFactor != nil {
		entry.HydrationFactor = *req.HydrationFactor
	}
	if req.LoggedAt != nil {
		entry.LoggedAt = req.LoggedAt.UTC()
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	resp := entry.ToResponse(user.Unit)
	return &resp, nil
}

func (s *intakeService) List(ctx context.Context, userID uuid.UUID, filter domain.IntakeFilter) (*domain.IntakeListResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	logs, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(logs) > limit
	if hasMore {
		logs = logs[:limit]
	}

	response := &domain.IntakeListResponse{
		Data: make([]domain.IntakeResponse, len(logs)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i, entry := range logs {
		response.Data[i] = entry.ToResponse(user.Unit)
	}

	if hasMore && len(logs) > 0 {
		last := logs[len(logs)-1]
		response.Pagination.NextCursor = pagination.Encode(last.LoggedAt, last.ID)
	}

	return response, nil
}

// Summary computes hydration statistics over a rolling window of local
// calendar days ending today. Days are bucketed in the user's timezone and
// totals are hydration-weighted.
func (s *intakeService) Summary(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.IntakeSummaryResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if windowDays <= 0 {
		windowDays = DefaultSummaryWindowDays
	}

	loc := userLocation(user)
	now := s.now()
	_, todayEnd := localDayBounds(now, loc)
	windowStart, _ := localDayBounds(now.AddDate(0, 0, -(windowDays-1)).In(loc), loc)

	logs, err := s.repo.ListBetween(ctx, userID, windowStart, todayEnd)
	if err != nil {
		return nil, err
	}

	dayTotals := make(map[string]float64)
	for i := range logs {
		key := logs[i].LoggedAt.In(loc).Format(dateLayout)
		dayTotals[key] += float64(logs[i].EffectiveMl())
	}

	totals := make([]float64, 0, len(dayTotals))
	for _, total := range dayTotals {
		totals = append(totals, total)
	}

	goalMl := user.DailyGoalMl
	daysGoalMet := 0
	if goalMl > 0 {
		for _, total := range totals {
			if total >= float64(goalMl) {
				daysGoalMet++
			}
		}
	}

	adherence := 0.0
	if goalMl > 0 && len(totals) > 0 {
		adherence = math.Round(float64(daysGoalMet)/float64(len(totals))*1000) / 10
	}

	return &domain.IntakeSummaryResponse{
		WindowDays:        windowDays,
		DaysWithData:      len(dayTotals),
		DailyTotalMl:      computeStats(totals),
		GoalMl:            goalMl,
		DaysGoalMet:       daysGoalMet,
		GoalAdherencePct:  adherence,
		CurrentStreakDays: currentStreak(dayTotals, goalMl, now, loc, windowDays),
	}, nil
}

// AnalyzeDrink estimates a photographed drink with the vision model and
// optionally logs the estimate as intake.
func (s *intakeService) AnalyzeDrink(ctx context.Context, userID uuid.UUID, req *domain.AnalyzeDrinkRequest) (*domain.AnalyzeDrinkResponse, error) {
	tracer := otel.Tracer("hydration-api/intake")
	ctx, span := tracer.Start(ctx, "IntakeService.AnalyzeDrink", trace.WithAttributes(
		attribute.String("user.id", userID.String()),
		attribute.Bool("log_requested", req.Log),
	))
	defer span.End()

	if s.vision == nil {
		return nil, llm.ErrOpenAIUnavailable
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	analysis, err := s.vision.AnalyzeDrink(ctx, req.ImageBase64)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("drink.beverage", analysis.Beverage),
		attribute.Int("drink.estimated_volume_ml", analysis.EstimatedVolumeMl),
		attribute.Float64("drink.confidence", analysis.Confidence),
	)

	response := &domain.AnalyzeDrinkResponse{Analysis: *analysis}
	if !req.Log {
		return response, nil
	}

	entry := &domain.IntakeLog{
		ID:              uuid.New(),
		UserID:          userID,
		AmountMl:        analysis.EstimatedVolumeMl,
		Beverage:        analysis.Beverage,
		HydrationFactor: analysis.HydrationFactor,
		Source:          domain.IntakeSourcePhoto,
		LoggedAt:        s.now().UTC(),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	intake := entry.ToResponse(user.Unit)
	response.Intake = &intake
	return response, nil
}

// resolveAmountMl picks the volume from whichever form the request used.
func resolveAmountMl(req *domain.CreateIntakeRequest) (int, error) {
	switch {
	case req.AmountMl != nil:
		return *req.AmountMl, nil
	case req.Amount != nil && req.Unit != nil:
		unit, err := domain.ParseVolumeUnit(*req.Unit)
		if err != nil {
			return 0, err
		}
		return int(math.Round(unit.ToMilliliters(*req.Amount))), nil
	}
	return 0, fmt.Errorf("%w: amount_ml or amount with unit is required", domain.ErrInvalidInput)
}

// computeStats summarizes daily totals. The standard deviation is the sample
// deviation and needs at least two days; everything rounds to two decimals.
func computeStats(values []float64) domain.DescriptiveStats {
	if len(values) == 0 {
		return domain.DescriptiveStats{}
	}

	std := 0.0
	if len(values) > 1 {
		std = stat.StdDev(values, nil)
	}

	return domain.DescriptiveStats{
		Avg: math.Round(stat.Mean(values, nil)*100) / 100,
		Std: math.Round(std*100) / 100,
		Min: floats.Min(values),
		Max: floats.Max(values),
	}
}

// currentStreak counts consecutive goal-met days walking back from today. A
// today still in progress does not break a streak built through yesterday.
func currentStreak(dayTotals map[string]float64, goalMl int, now time.Time, loc *time.Location, windowDays int) int {
	if goalMl <= 0 {
		return 0
	}

	start := 0
	if dayTotals[now.In(loc).Format(dateLayout)] < float64(goalMl) {
		start = 1
	}

	streak := 0
	for i := start; i < windowDays+start; i++ {
		key := now.In(loc).AddDate(0, 0, -i).Format(dateLayout)
		if dayTotals[key] < float64(goalMl) {
			break
		}
		streak++
	}
	return streak
}
