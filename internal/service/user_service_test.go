package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/aqualog/hydration-api/internal/domain"
)

func TestUserCreate(t *testing.T) {
	repo := NewMockUserRepository()
	svc := NewUserService(repo)

	user, err := svc.Create(context.Background(), &domain.CreateUserRequest{
		Timezone: "Europe/Prague",
		Unit:     "imperial",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("ID = nil, want generated")
	}
	if user.Timezone != "Europe/Prague" {
		t.Errorf("Timezone = %s, want Europe/Prague", user.Timezone)
	}
	if user.Unit != domain.UnitImperial {
		t.Errorf("Unit = %s, want imperial", user.Unit)
	}
	if user.DailyGoalMl != 0 {
		t.Errorf("DailyGoalMl = %d, want 0 before onboarding", user.DailyGoalMl)
	}
}

func TestUserCreate_InvalidUnit(t *testing.T) {
	svc := NewUserService(NewMockUserRepository())

	_, err := svc.Create(context.Background(), &domain.CreateUserRequest{
		Timezone: "UTC",
		Unit:     "litres",
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUserUpdateMetrics_PartialThenComplete(t *testing.T) {
	repo := NewMockUserRepository()
	svc := NewUserService(repo)

	user := &domain.User{ID: uuid.New(), Timezone: "UTC", Unit: domain.UnitMetric}
	repo.users[user.ID] = user

	// A partial update stores the fields but cannot plan a goal yet
	updated, err := svc.UpdateMetrics(context.Background(), user.ID, &domain.UpdateMetricsRequest{
		HeightCm: floatPtr(178),
		WeightKg: floatPtr(74.5),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.DailyGoalMl != 0 {
		t.Errorf("DailyGoalMl = %d, want 0 while profile is incomplete", updated.DailyGoalMl)
	}
	if updated.HeightCm == nil || *updated.HeightCm != 178 {
		t.Errorf("HeightCm = %v, want stored", updated.HeightCm)
	}

	// Completing the profile triggers the replan
	updated, err = svc.UpdateMetrics(context.Background(), user.ID, &domain.UpdateMetricsRequest{
		AgeYears:      intPtr(34),
		Sex:           strPtr("female"),
		ActivityLevel: strPtr("moderate"),
		Climate:       strPtr("temperate"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.DailyGoalMl != 3018 {
		t.Errorf("DailyGoalMl = %d, want 3018", updated.DailyGoalMl)
	}
}

func TestUserUpdateMetrics_Replan(t *testing.T) {
	repo := NewMockUserRepository()
	svc := NewUserService(repo)

	height, weight, age := 178.0, 74.5, 34
	sex, activity, climate := domain.SexFemale, domain.ActivityModerate, domain.ClimateTemperate
	user := &domain.User{
		ID: uuid.New(), Timezone: "UTC", Unit: domain.UnitMetric,
		HeightCm: &height, WeightKg: &weight, AgeYears: &age,
		Sex: &sex, ActivityLevel: &activity, Climate: &climate,
		DailyGoalMl: 3018,
	}
	repo.users[user.ID] = user

	updated, err := svc.UpdateMetrics(context.Background(), user.ID, &domain.UpdateMetricsRequest{
		WeightKg: floatPtr(90),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.DailyGoalMl <= 3018 {
		t.Errorf("DailyGoalMl = %d, want replanned above 3018 after weight gain", updated.DailyGoalMl)
	}
}

func TestUserGoal(t *testing.T) {
	repo := NewMockUserRepository()
	svc := NewUserService(repo)

	height, weight, age := 178.0, 74.5, 34
	sex, activity, climate := domain.SexFemale, domain.ActivityModerate, domain.ClimateTemperate
	user := &domain.User{
		ID: uuid.New(), Timezone: "UTC", Unit: domain.UnitImperial,
		HeightCm: &height, WeightKg: &weight, AgeYears: &age,
		Sex: &sex, ActivityLevel: &activity, Climate: &climate,
	}
	repo.users[user.ID] = user

	goal, err := svc.Goal(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if goal.WaterMl != 3018 {
		t.Errorf("WaterMl = %d, want 3018", goal.WaterMl)
	}
	if goal.Display.Unit != "fl oz" {
		t.Errorf("Display.Unit = %s, want fl oz", goal.Display.Unit)
	}

	// The stored goal is backfilled once planned
	if user.DailyGoalMl != 3018 {
		t.Errorf("stored DailyGoalMl = %d, want persisted plan", user.DailyGoalMl)
	}
}

func TestUserGoal_InsufficientMetrics(t *testing.T) {
	repo := NewMockUserRepository()
	svc := NewUserService(repo)

	height := 178.0
	user := &domain.User{ID: uuid.New(), Timezone: "UTC", Unit: domain.UnitMetric, HeightCm: &height}
	repo.users[user.ID] = user

	_, err := svc.Goal(context.Background(), user.ID)
	if !errors.Is(err, domain.ErrInsufficientMetrics) {
		t.Fatalf("expected ErrInsufficientMetrics, got %v", err)
	}
	// The error names what is missing so clients can prompt for it
	if !strings.Contains(err.Error(), "weight_kg") {
		t.Errorf("error = %q, want missing field names", err)
	}
}
