package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/aqualog/hydration-api/internal/domain"
	"github.com/aqualog/hydration-api/internal/log"
	"github.com/aqualog/hydration-api/internal/service"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const seededDays = 21

var beverages = []struct {
	name   string
	factor float64
}{
	{"water", 1.0},
	{"sparkling water", 1.0},
	{"green tea", 0.9},
	{"coffee", 0.8},
	{"orange juice", 0.85},
}

// Run seeds the database with sample users, intake logs and sleep stage
// samples. Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.IntakeLog{}, &domain.SleepStageSample{}, &domain.DailyRecommendation{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	users := []domain.User{
		demoUser("11111111-1111-1111-1111-111111111111", "Europe/Amsterdam", domain.UnitMetric,
			178, 74.5, 34, domain.SexFemale, domain.ActivityModerate, domain.ClimateTemperate),
		demoUser("22222222-2222-2222-2222-222222222222", "America/New_York", domain.UnitImperial,
			183, 88, 41, domain.SexMale, domain.ActivityLight, domain.ClimateHot),
		// Incomplete profile, kept empty so the onboarding flow can be exercised.
		{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo", Unit: domain.UnitMetric},
	}

	for _, user := range users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, user := range users {
		if user.DailyGoalMl == 0 {
			continue
		}
		if err := seedIntakeForUser(db, user, rng); err != nil {
			return err
		}
		if err := seedSleepSamplesForUser(db, user, rng); err != nil {
			return err
		}
	}

	log.Infof("Seed completed")
	return nil
}

func demoUser(id, tz string, unit domain.VolumeUnit, heightCm, weightKg float64, age int, sex domain.Sex, activity domain.ActivityLevel, climate domain.Climate) domain.User {
	user := domain.User{
		ID:            uuid.MustParse(id),
		Timezone:      tz,
		Unit:          unit,
		HeightCm:      &heightCm,
		WeightKg:      &weightKg,
		AgeYears:      &age,
		Sex:           &sex,
		ActivityLevel: &activity,
		Climate:       &climate,
	}
	if goal, err := service.PlanWaterGoal(user.Metrics()); err == nil {
		user.DailyGoalMl = goal
	}
	return user
}

func seedIntakeForUser(db *gorm.DB, user domain.User, rng *rand.Rand) error {
	var existing int64
	if err := db.Model(&domain.IntakeLog{}).Where("user_id = ?", user.ID).Count(&existing).Error; err != nil {
		return fmt.Errorf("failed to count intake logs: %w", err)
	}
	if existing > 0 {
		return nil
	}

	now := time.Now().UTC()
	var logs []domain.IntakeLog
	for i := 0; i < seededDays; i++ {
		date := now.AddDate(0, 0, -i)
		drinks := 3 + rng.Intn(4)
		for j := 0; j < drinks; j++ {
			b := beverages[rng.Intn(len(beverages))]
			logs = append(logs, domain.IntakeLog{
				UserID:          user.ID,
				AmountMl:        150 + 50*rng.Intn(8),
				Beverage:        b.name,
				HydrationFactor: b.factor,
				Source:          domain.IntakeSourceManual,
				LoggedAt:        time.Date(date.Year(), date.Month(), date.Day(), 7+rng.Intn(14), rng.Intn(60), 0, 0, time.UTC),
			})
		}
	}

	if err := db.Create(&logs).Error; err != nil {
		return fmt.Errorf("failed to create intake logs: %w", err)
	}
	return nil
}

func seedSleepSamplesForUser(db *gorm.DB, user domain.User, rng *rand.Rand) error {
	var existing int64
	if err := db.Model(&domain.SleepStageSample{}).Where("user_id = ?", user.ID).Count(&existing).Error; err != nil {
		return fmt.Errorf("failed to count sleep samples: %w", err)
	}
	if existing > 0 {
		return nil
	}

	now := time.Now().UTC()
	var samples []domain.SleepStageSample
	for i := 0; i < seededDays; i++ {
		date := now.AddDate(0, 0, -i)
		bedtime := time.Date(date.Year(), date.Month(), date.Day(), 22+rng.Intn(2), rng.Intn(60), 0, 0, time.UTC).AddDate(0, 0, -1)
		samples = append(samples, nightSamples(user.ID, bedtime, rng)...)
	}

	if err := db.Create(&samples).Error; err != nil {
		return fmt.Errorf("failed to create sleep samples: %w", err)
	}
	return nil
}

// nightSamples builds one night as a watch would report it: an in_bed
// envelope around alternating stage intervals, deep sleep concentrated in
// the early cycles, REM toward the morning and the occasional brief waking.
func nightSamples(userID uuid.UUID, bedtime time.Time, rng *rand.Rand) []domain.SleepStageSample {
	wake := bedtime.Add(time.Duration(390+rng.Intn(150)) * time.Minute)

	samples := []domain.SleepStageSample{
		{UserID: userID, Stage: domain.StageInBed, StartAt: bedtime, EndAt: wake},
	}

	cursor := bedtime.Add(time.Duration(5+rng.Intn(15)) * time.Minute)
	for cycle := 1; cursor.Before(wake); cycle++ {
		blocks := []struct {
			stage domain.SleepStage
			mins  int
		}{
			{domain.StageAsleepCore, 35 + rng.Intn(20)},
			{domain.StageAsleepDeep, deepMinutes(cycle, rng)},
			{domain.StageAsleepREM, remMinutes(cycle, rng)},
		}
		for _, b := range blocks {
			if b.mins == 0 || !cursor.Before(wake) {
				continue
			}
			end := cursor.Add(time.Duration(b.mins) * time.Minute)
			if end.After(wake) {
				end = wake
			}
			samples = append(samples, domain.SleepStageSample{UserID: userID, Stage: b.stage, StartAt: cursor, EndAt: end})
			cursor = end
		}

		if rng.Float32() < 0.3 && cursor.Before(wake) {
			end := cursor.Add(time.Duration(2+rng.Intn(6)) * time.Minute)
			if end.After(wake) {
				end = wake
			}
			samples = append(samples, domain.SleepStageSample{UserID: userID, Stage: domain.StageAwake, StartAt: cursor, EndAt: end})
			cursor = end
		}
	}

	return samples
}

func deepMinutes(cycle int, rng *rand.Rand) int {
	if cycle <= 2 {
		return 20 + rng.Intn(16)
	}
	if cycle == 3 {
		return 5 + rng.Intn(10)
	}
	return 0
}

func remMinutes(cycle int, rng *rand.Rand) int {
	if cycle == 1 {
		return rng.Intn(10)
	}
	return 10 + rng.Intn(15)
}
