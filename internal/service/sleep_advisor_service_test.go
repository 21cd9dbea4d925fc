package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/aqualog/hydration-api/internal/domain"
)

// parseFactorDelta extracts the signed contribution from a rendered factor
// like "Sleep debt (only 4.5h of sleep): +200 ml".
func parseFactorDelta(t *testing.T, factor string) int {
	t.Helper()
	idx := strings.LastIndex(factor, ": ")
	if idx < 0 {
		t.Fatalf("factor %q has no delta suffix", factor)
	}
	delta, err := strconv.Atoi(strings.TrimSuffix(factor[idx+2:], " ml"))
	if err != nil {
		t.Fatalf("factor %q has unparseable delta: %v", factor, err)
	}
	return delta
}

// fixedNow is a morning instant all sleep advisor tests anchor to.
var fixedNow = time.Date(2024, 7, 19, 7, 30, 0, 0, time.UTC)

// severeNight is 4.5h of fragmented sleep ending 90 minutes before fixedNow.
func severeNight() domain.SleepSession {
	bed := time.Date(2024, 7, 19, 1, 0, 0, 0, time.UTC)
	wake := fixedNow.Add(-90 * time.Minute) // 06:00
	return domain.SleepSession{
		DurationHours:    4.5,
		BedTime:          &bed,
		WakeTime:         &wake,
		DeepSleepMinutes: 25,
		RemSleepMinutes:  60,
		CoreSleepMinutes: 185,
		SourceDate:       timePtr(time.Date(2024, 7, 19, 0, 0, 0, 0, time.UTC)),
	}
}

// optimalNight is 8h of well-structured sleep ending 3h before fixedNow.
func optimalNight() domain.SleepSession {
	bed := time.Date(2024, 7, 18, 20, 30, 0, 0, time.UTC)
	wake := fixedNow.Add(-3 * time.Hour) // 04:30
	return domain.SleepSession{
		DurationHours:    8,
		BedTime:          &bed,
		WakeTime:         &wake,
		DeepSleepMinutes: 86,
		RemSleepMinutes:  106,
		CoreSleepMinutes: 240,
		SourceDate:       timePtr(time.Date(2024, 7, 19, 0, 0, 0, 0, time.UTC)),
	}
}

func TestScoreSleepQuality(t *testing.T) {
	tests := []struct {
		name    string
		session domain.SleepSession
		want    float64
	}{
		{
			name:    "optimal night scores full marks",
			session: optimalNight(),
			want:    1.0,
		},
		{
			// duration 0.05, deep 25/270=9.3% -> 0.12, rem 22.2% -> 0.25, core 68.5% -> 0.05
			name:    "severe deprivation",
			session: severeNight(),
			want:    0.47,
		},
		{
			// duration 0.35, no stage data earns partial credit 0.15+0.125+0.05
			name:    "uninstrumented night",
			session: domain.SleepSession{DurationHours: 7.5},
			want:    0.68,
		},
		{
			name:    "no data",
			session: domain.SleepSession{},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreSleepQuality(tt.session)
			if got != tt.want {
				t.Errorf("ScoreSleepQuality() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildSleepRecommendation_SevereDeprivation(t *testing.T) {
	rec := BuildSleepRecommendation(severeNight(), fixedNow, time.UTC)

	// 225 base + 15 REM + 200 debt + 200 poor quality + 150 deep + 100 post-wake
	if rec.AdditionalWaterMl != 890 {
		t.Errorf("AdditionalWaterMl = %d, want 890", rec.AdditionalWaterMl)
	}
	if rec.Priority != domain.PriorityHigh {
		t.Errorf("Priority = %s, want high", rec.Priority)
	}
	if rec.Confidence != 0.90 {
		t.Errorf("Confidence = %v, want 0.90", rec.Confidence)
	}
	if len(rec.Factors) != 6 {
		t.Errorf("Factors = %d entries, want 6: %v", len(rec.Factors), rec.Factors)
	}
}

func TestBuildSleepRecommendation_OptimalNight(t *testing.T) {
	rec := BuildSleepRecommendation(optimalNight(), fixedNow, time.UTC)

	// Only the insensible loss rules fire: 400 base + 27 REM
	if rec.AdditionalWaterMl != 427 {
		t.Errorf("AdditionalWaterMl = %d, want 427", rec.AdditionalWaterMl)
	}
	if rec.Priority != domain.PriorityLow {
		t.Errorf("Priority = %s, want low", rec.Priority)
	}
	if rec.Confidence != domain.MaxConfidence {
		t.Errorf("Confidence = %v, want capped at %v", rec.Confidence, domain.MaxConfidence)
	}
	if len(rec.Factors) != 2 {
		t.Errorf("Factors = %d entries, want 2: %v", len(rec.Factors), rec.Factors)
	}
}

func TestBuildSleepRecommendation_NoData(t *testing.T) {
	wake := fixedNow.Add(-30 * time.Minute)
	tests := []struct {
		name    string
		session domain.SleepSession
	}{
		{name: "empty session", session: domain.SleepSession{}},
		{
			// Zero duration wins over whatever else the session carries.
			name: "zero duration with stray fields",
			session: domain.SleepSession{
				WakeTime:         &wake,
				DeepSleepMinutes: 40,
				RemSleepMinutes:  70,
				CoreSleepMinutes: 200,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := BuildSleepRecommendation(tt.session, fixedNow, time.UTC)

			if rec.AdditionalWaterMl != 0 {
				t.Errorf("AdditionalWaterMl = %d, want 0", rec.AdditionalWaterMl)
			}
			if rec.Confidence != 0 {
				t.Errorf("Confidence = %v, want 0", rec.Confidence)
			}
			if rec.Priority != domain.PriorityLow {
				t.Errorf("Priority = %s, want low", rec.Priority)
			}
			if len(rec.Factors) != 1 || !strings.Contains(rec.Factors[0], "No sleep data") {
				t.Errorf("Factors = %v, want single no-data explanation", rec.Factors)
			}
		})
	}
}

func TestBuildSleepRecommendation_WakeRecency(t *testing.T) {
	base := optimalNight()

	tests := []struct {
		name    string
		wakeAgo time.Duration
		extraMl int
	}{
		{"woke within the hour", 30 * time.Minute, wakeWindowMl},
		{"woke one to two hours ago", 90 * time.Minute, postWakeMl},
		{"woke long ago", 3 * time.Hour, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := base
			session.WakeTime = timePtr(fixedNow.Add(-tt.wakeAgo))
			rec := BuildSleepRecommendation(session, fixedNow, time.UTC)
			want := 427 + tt.extraMl
			if rec.AdditionalWaterMl != want {
				t.Errorf("AdditionalWaterMl = %d, want %d", rec.AdditionalWaterMl, want)
			}
		})
	}
}

func TestBuildSleepRecommendation_LateWake(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	session := optimalNight()
	// 08:45 UTC is 10:45 local; keep it more than two hours before now
	session.WakeTime = timePtr(time.Date(2024, 7, 19, 8, 45, 0, 0, time.UTC))
	now := time.Date(2024, 7, 19, 12, 0, 0, 0, time.UTC)

	rec := BuildSleepRecommendation(session, now, loc)

	want := 427 + lateWakeMl
	if rec.AdditionalWaterMl != want {
		t.Errorf("AdditionalWaterMl = %d, want %d", rec.AdditionalWaterMl, want)
	}

	// Same wake instant in UTC is 08:45, below the late threshold
	rec = BuildSleepRecommendation(session, now, time.UTC)
	if rec.AdditionalWaterMl != 427 {
		t.Errorf("AdditionalWaterMl = %d, want 427 without late wake", rec.AdditionalWaterMl)
	}
}

func TestBuildSleepRecommendation_IncompleteStageCoverage(t *testing.T) {
	session := optimalNight()
	// 330 staged minutes of a 480 minute night is below the 75% threshold
	session.DeepSleepMinutes = 60
	session.RemSleepMinutes = 90
	session.CoreSleepMinutes = 180

	rec := BuildSleepRecommendation(session, fixedNow, time.UTC)

	found := false
	for _, factor := range rec.Factors {
		if strings.Contains(factor, "Incomplete stage tracking") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a stage coverage factor, got %v", rec.Factors)
	}
}

func TestBuildSleepRecommendation_TotalMatchesFactors(t *testing.T) {
	sessions := []domain.SleepSession{severeNight(), optimalNight(), {DurationHours: 5.2}}
	for _, session := range sessions {
		rec := BuildSleepRecommendation(session, fixedNow, time.UTC)
		sum := 0
		for _, factor := range rec.Factors {
			sum += parseFactorDelta(t, factor)
		}
		if sum < 0 {
			sum = 0
		}
		if rec.AdditionalWaterMl != sum {
			t.Errorf("AdditionalWaterMl = %d, factors sum to %d: %v", rec.AdditionalWaterMl, sum, rec.Factors)
		}
	}
}

// stagedSession builds a night with stage minutes and no wake fixture, so
// only the duration rules respond when hours change.
func stagedSession(hours float64, deep, rem, core int) domain.SleepSession {
	return domain.SleepSession{
		DurationHours:    hours,
		DeepSleepMinutes: deep,
		RemSleepMinutes:  rem,
		CoreSleepMinutes: core,
	}
}

func TestBuildSleepRecommendation_DurationMonotonic(t *testing.T) {
	// A shorter night is never told to drink less: the debt tiers grow
	// faster across each hour threshold than the per-hour overnight loss
	// shrinks.
	t.Run("uninstrumented nights", func(t *testing.T) {
		prev := -1
		for _, hours := range []float64{7.5, 6.5, 5.5, 4.5, 3.5} {
			rec := BuildSleepRecommendation(domain.SleepSession{DurationHours: hours}, fixedNow, time.UTC)
			if rec.AdditionalWaterMl < prev {
				t.Fatalf("%.1fh night recommends %d ml, below the longer night's %d ml", hours, rec.AdditionalWaterMl, prev)
			}
			prev = rec.AdditionalWaterMl
		}
	})

	// Stage minutes are picked to sit in the same scoring tiers on both
	// sides of each crossing.
	t.Run("crossing the 7h threshold", func(t *testing.T) {
		longer := BuildSleepRecommendation(stagedSession(7.1, 60, 88, 250), fixedNow, time.UTC)
		shorter := BuildSleepRecommendation(stagedSession(6.9, 60, 88, 250), fixedNow, time.UTC)
		if shorter.AdditionalWaterMl <= longer.AdditionalWaterMl {
			t.Errorf("6.9h night recommends %d ml, 7.1h night %d ml", shorter.AdditionalWaterMl, longer.AdditionalWaterMl)
		}
	})
	t.Run("crossing the 6h threshold", func(t *testing.T) {
		longer := BuildSleepRecommendation(stagedSession(6.1, 55, 75, 220), fixedNow, time.UTC)
		shorter := BuildSleepRecommendation(stagedSession(5.9, 55, 75, 220), fixedNow, time.UTC)
		if shorter.AdditionalWaterMl <= longer.AdditionalWaterMl {
			t.Errorf("5.9h night recommends %d ml, 6.1h night %d ml", shorter.AdditionalWaterMl, longer.AdditionalWaterMl)
		}
	})
}

func TestSleepAdvisorRecommend(t *testing.T) {
	userRepo := NewMockUserRepository()
	recRepo := NewMockRecommendationRepository()
	provider := &MockSleepProvider{session: severeNight()}

	user := &domain.User{ID: uuid.New(), Timezone: "UTC", Unit: domain.UnitMetric}
	userRepo.users[user.ID] = user

	svc := &sleepAdvisorService{
		userRepo: userRepo,
		recRepo:  recRepo,
		health:   provider,
		now:      func() time.Time { return fixedNow },
	}

	resp, err := svc.Recommend(context.Background(), user.ID, time.Time{}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Kind != domain.RecommendationSleep {
		t.Errorf("Kind = %s, want sleep", resp.Kind)
	}
	if resp.AdditionalWaterMl != 890 {
		t.Errorf("AdditionalWaterMl = %d, want 890", resp.AdditionalWaterMl)
	}
	if resp.Day != "2024-07-19" {
		t.Errorf("Day = %s, want 2024-07-19", resp.Day)
	}
	if resp.SourceLabel != "night of 2024-07-19" {
		t.Errorf("SourceLabel = %q, want night label", resp.SourceLabel)
	}
	if resp.Comment == "" {
		t.Error("expected a template comment without a writer")
	}
}

func TestSleepAdvisorRecommend_CachesByDay(t *testing.T) {
	userRepo := NewMockUserRepository()
	recRepo := NewMockRecommendationRepository()
	provider := &MockSleepProvider{session: severeNight()}

	user := &domain.User{ID: uuid.New(), Timezone: "UTC", Unit: domain.UnitMetric}
	userRepo.users[user.ID] = user

	svc := &sleepAdvisorService{
		userRepo: userRepo,
		recRepo:  recRepo,
		health:   provider,
		now:      func() time.Time { return fixedNow },
	}

	first, err := svc.Recommend(context.Background(), user.ID, time.Time{}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A better night arrives, but the cached record should win
	provider.session = optimalNight()
	second, err := svc.Recommend(context.Background(), user.ID, time.Time{}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.ID != first.ID || second.AdditionalWaterMl != first.AdditionalWaterMl {
		t.Errorf("cached call returned different record: %v vs %v", second, first)
	}

	// force recomputes and supersedes the record for the day
	third, err := svc.Recommend(context.Background(), user.ID, time.Time{}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if third.AdditionalWaterMl != 427 {
		t.Errorf("forced AdditionalWaterMl = %d, want 427", third.AdditionalWaterMl)
	}

	records, _ := recRepo.ListByDay(context.Background(), user.ID, time.Date(2024, 7, 19, 0, 0, 0, 0, time.UTC))
	if len(records) != 1 {
		t.Errorf("records for day = %d, want 1 after supersede", len(records))
	}
}

func TestSleepAdvisorRecommend_UserNotFound(t *testing.T) {
	svc := NewSleepAdvisorService(NewMockUserRepository(), NewMockRecommendationRepository(), &MockSleepProvider{}, nil)

	_, err := svc.Recommend(context.Background(), uuid.New(), time.Time{}, false)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSleepAdvisorRecommend_CommentWriter(t *testing.T) {
	userRepo := NewMockUserRepository()
	user := &domain.User{ID: uuid.New(), Timezone: "UTC", Unit: domain.UnitMetric}
	userRepo.users[user.ID] = user

	writer := &MockCommentWriter{comment: "Rough night, start with a tall glass."}
	svc := &sleepAdvisorService{
		userRepo: userRepo,
		recRepo:  NewMockRecommendationRepository(),
		health:   &MockSleepProvider{session: severeNight()},
		comments: writer,
		now:      func() time.Time { return fixedNow },
	}

	resp, err := svc.Recommend(context.Background(), user.ID, time.Time{}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Comment != writer.comment {
		t.Errorf("Comment = %q, want writer output", resp.Comment)
	}

	// Writer failures fall back to a template instead of failing the request
	writer.err = errors.New("rate limited")
	resp, err = svc.Recommend(context.Background(), user.ID, time.Time{}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Comment == "" || resp.Comment == writer.comment {
		t.Errorf("Comment = %q, want template fallback", resp.Comment)
	}
}
