package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/aqualog/hydration-api/internal/domain"
)

func seedDigestRecommendation(recRepo *MockRecommendationRepository, userID uuid.UUID, kind domain.RecommendationKind, ml int, priority domain.Priority) {
	recRepo.Put(context.Background(), &domain.DailyRecommendation{
		ID:                uuid.New(),
		UserID:            userID,
		Day:               time.Date(2024, 7, 19, 0, 0, 0, 0, time.UTC),
		Kind:              kind,
		AdditionalWaterMl: ml,
		Factors:           []string{"seeded"},
		Confidence:        0.8,
		Priority:          priority,
	})
}

func TestDigestToday(t *testing.T) {
	userRepo := NewMockUserRepository()
	intakeRepo := NewMockIntakeRepository()
	recRepo := NewMockRecommendationRepository()

	user := &domain.User{ID: uuid.New(), Timezone: "UTC", Unit: domain.UnitMetric, DailyGoalMl: 2800}
	userRepo.users[user.ID] = user

	seedDigestRecommendation(recRepo, user.ID, domain.RecommendationSleep, 300, domain.PriorityMedium)
	seedDigestRecommendation(recRepo, user.ID, domain.RecommendationWeather, 500, domain.PriorityMedium)

	intakeRepo.logs = append(intakeRepo.logs,
		domain.IntakeLog{ID: uuid.New(), UserID: user.ID, AmountMl: 1000, HydrationFactor: 1.0, LoggedAt: time.Date(2024, 7, 19, 6, 0, 0, 0, time.UTC)},
		domain.IntakeLog{ID: uuid.New(), UserID: user.ID, AmountMl: 1000, HydrationFactor: 0.75, LoggedAt: time.Date(2024, 7, 19, 7, 0, 0, 0, time.UTC)},
		// Yesterday must not count toward today
		domain.IntakeLog{ID: uuid.New(), UserID: user.ID, AmountMl: 2000, HydrationFactor: 1.0, LoggedAt: time.Date(2024, 7, 18, 12, 0, 0, 0, time.UTC)},
	)

	svc := &digestService{
		userRepo:   userRepo,
		intakeRepo: intakeRepo,
		recRepo:    recRepo,
		now:        func() time.Time { return fixedNow },
	}

	digest, err := svc.Today(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if digest.Day != "2024-07-19" {
		t.Errorf("Day = %s, want 2024-07-19", digest.Day)
	}
	if digest.GoalMl != 2800 {
		t.Errorf("GoalMl = %d, want 2800", digest.GoalMl)
	}
	if digest.AdjustedGoalMl != 3600 {
		t.Errorf("AdjustedGoalMl = %d, want 3600", digest.AdjustedGoalMl)
	}
	if digest.ConsumedMl != 1750 {
		t.Errorf("ConsumedMl = %d, want 1750", digest.ConsumedMl)
	}
	if digest.RemainingMl != 1850 {
		t.Errorf("RemainingMl = %d, want 1850", digest.RemainingMl)
	}
	// 1750 / 3600 = 48.6%
	if digest.ProgressPct != 48.6 {
		t.Errorf("ProgressPct = %v, want 48.6", digest.ProgressPct)
	}
	if len(digest.Recommendations) != 2 {
		t.Errorf("Recommendations = %d, want 2", len(digest.Recommendations))
	}
	if !strings.Contains(digest.Headline, "Halfway") {
		t.Errorf("Headline = %q, want the mid-progress line", digest.Headline)
	}
}

func TestDigestToday_GoalReached(t *testing.T) {
	userRepo := NewMockUserRepository()
	intakeRepo := NewMockIntakeRepository()

	user := &domain.User{ID: uuid.New(), Timezone: "UTC", Unit: domain.UnitMetric, DailyGoalMl: 2000}
	userRepo.users[user.ID] = user

	intakeRepo.logs = append(intakeRepo.logs, domain.IntakeLog{
		ID: uuid.New(), UserID: user.ID, AmountMl: 2500, HydrationFactor: 1.0,
		LoggedAt: time.Date(2024, 7, 19, 6, 0, 0, 0, time.UTC),
	})

	svc := &digestService{
		userRepo:   userRepo,
		intakeRepo: intakeRepo,
		recRepo:    NewMockRecommendationRepository(),
		now:        func() time.Time { return fixedNow },
	}

	digest, err := svc.Today(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if digest.RemainingMl != 0 {
		t.Errorf("RemainingMl = %d, want 0 when over goal", digest.RemainingMl)
	}
	if digest.ProgressPct != 100 {
		t.Errorf("ProgressPct = %v, want capped at 100", digest.ProgressPct)
	}
	if !strings.Contains(digest.Headline, "Goal reached") {
		t.Errorf("Headline = %q, want goal-reached line", digest.Headline)
	}
}

func TestDigestToday_HighPriorityHeadline(t *testing.T) {
	userRepo := NewMockUserRepository()
	recRepo := NewMockRecommendationRepository()

	user := &domain.User{ID: uuid.New(), Timezone: "UTC", Unit: domain.UnitMetric, DailyGoalMl: 2800}
	userRepo.users[user.ID] = user
	seedDigestRecommendation(recRepo, user.ID, domain.RecommendationWeather, 600, domain.PriorityHigh)

	svc := &digestService{
		userRepo:   userRepo,
		intakeRepo: NewMockIntakeRepository(),
		recRepo:    recRepo,
		now:        func() time.Time { return fixedNow },
	}

	digest, err := svc.Today(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(digest.Headline, "Demanding day") {
		t.Errorf("Headline = %q, want the high-priority line", digest.Headline)
	}
}

func TestDigestToday_NotOnboarded(t *testing.T) {
	userRepo := NewMockUserRepository()
	user := &domain.User{ID: uuid.New(), Timezone: "UTC", Unit: domain.UnitMetric}
	userRepo.users[user.ID] = user

	svc := &digestService{
		userRepo:   userRepo,
		intakeRepo: NewMockIntakeRepository(),
		recRepo:    NewMockRecommendationRepository(),
		now:        func() time.Time { return fixedNow },
	}

	digest, err := svc.Today(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if digest.GoalMl != 0 || digest.AdjustedGoalMl != 0 {
		t.Errorf("goal = %d/%d, want zero before onboarding", digest.GoalMl, digest.AdjustedGoalMl)
	}
	if !strings.Contains(digest.Headline, "body metrics") {
		t.Errorf("Headline = %q, want onboarding nudge", digest.Headline)
	}
}
