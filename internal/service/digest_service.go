package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/aqualog/hydration-api/internal/domain"
	"github.com/aqualog/hydration-api/internal/repository"
)

// DigestService assembles the combined daily hydration picture from the
// planned goal, recorded recommendations and intake so far.
type DigestService interface {
	Today(ctx context.Context, userID uuid.UUID) (*domain.DailyDigest, error)
}

type digestService struct {
	userRepo   repository.UserRepository
	intakeRepo repository.IntakeRepository
	recRepo    repository.RecommendationRepository
	now        func() time.Time
}

func NewDigestService(userRepo repository.UserRepository, intakeRepo repository.IntakeRepository, recRepo repository.RecommendationRepository) DigestService {
	return &digestService{
		userRepo:   userRepo,
		intakeRepo: intakeRepo,
		recRepo:    recRepo,
		now:        time.Now,
	}
}

// Today builds the digest for the current day in the user's timezone. Only
// recommendations already on record are included; the digest never triggers
// a computation of its own.
func (s *digestService) Today(ctx context.Context, userID uuid.UUID) (*domain.DailyDigest, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	loc := userLocation(user)
	now := s.now()
	day := calendarDay(now, loc)

	records, err := s.recRepo.ListByDay(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	dayStart, dayEnd := localDayBounds(now, loc)
	logs, err := s.intakeRepo.ListBetween(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	consumed := 0
	for i := range logs {
		consumed += logs[i].EffectiveMl()
	}

	adjustedGoal := user.DailyGoalMl
	recommendations := make([]domain.RecommendationResponse, len(records))
	for i := range records {
		adjustedGoal += records[i].AdditionalWaterMl
		recommendations[i] = records[i].ToResponse(user.Unit)
	}

	remaining := adjustedGoal - consumed
	if remaining < 0 {
		remaining = 0
	}

	progress := 0.0
	if adjustedGoal > 0 {
		progress = math.Round(float64(consumed)/float64(adjustedGoal)*1000) / 10
		if progress > 100 {
			progress = 100
		}
	}

	return &domain.DailyDigest{
		Day:             day.Format(dateLayout),
		GoalMl:          user.DailyGoalMl,
		AdjustedGoalMl:  adjustedGoal,
		ConsumedMl:      consumed,
		RemainingMl:     remaining,
		ProgressPct:     progress,
		Display:         domain.DisplayVolume(adjustedGoal, user.Unit),
		Recommendations: recommendations,
		Headline:        digestHeadline(user, remaining, progress, records),
	}, nil
}

// digestHeadline writes the one-liner clients push as a reminder.
func digestHeadline(user *domain.User, remaining int, progress float64, records []domain.DailyRecommendation) string {
	if user.DailyGoalMl == 0 {
		return "Set up your body metrics to get a personal daily goal."
	}

	display := domain.DisplayVolume(remaining, user.Unit)
	switch {
	case remaining == 0:
		return "Goal reached. Keep sipping if you are thirsty."
	case progress >= 75:
		return fmt.Sprintf("Almost there, %.1f %s to go.", display.Amount, display.Unit)
	case highestPriority(records) == domain.PriorityHigh:
		return fmt.Sprintf("Demanding day for hydration. Still %.1f %s to go.", display.Amount, display.Unit)
	case progress >= 40:
		return fmt.Sprintf("Halfway there, %.1f %s left today.", display.Amount, display.Unit)
	}
	return fmt.Sprintf("Time to catch up, %.1f %s left today.", display.Amount, display.Unit)
}

func highestPriority(records []domain.DailyRecommendation) domain.Priority {
	highest := domain.PriorityLow
	for i := range records {
		switch records[i].Priority {
		case domain.PriorityHigh:
			return domain.PriorityHigh
		case domain.PriorityMedium:
			highest = domain.PriorityMedium
		}
	}
	return highest
}
