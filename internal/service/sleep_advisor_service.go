package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/aqualog/hydration-api/internal/domain"
	"github.com/aqualog/hydration-api/internal/healthdata"
	"github.com/aqualog/hydration-api/internal/llm"
	"github.com/aqualog/hydration-api/internal/repository"
)

const (
	// Insensible overnight loss through breath and skin
	insensibleLossMlPerHour = 50.0
	remLossMlPerHour        = 15.0 // REM breathing runs faster and shallower

	// Sleep duration thresholds (hours)
	shortSleepHours    = 6.0
	adequateSleepHours = 7.0
	shortfallMlPerHour = 100 // per full hour below shortSleepHours
	shortfallFlatMl    = 100
	slightShortfallMl  = 75

	// Quality score thresholds
	poorQualityScore    = 0.5
	reducedQualityScore = 0.7
	poorQualityMl       = 200
	reducedQualityMl    = 100

	// Deep sleep fraction of the night
	minDeepFraction    = 0.10
	lowDeepFraction    = 0.13
	insufficientDeepMl = 150
	lowDeepMl          = 75

	// Wake recency windows
	wakeWindowMl = 200 // woke within the last hour
	postWakeMl   = 100 // woke one to two hours ago
	lateWakeHour = 10  // local clock hour
	lateWakeMl   = 50

	// Fraction of the night that should carry stage labels
	stageCoverageFraction = 0.75
	lowCoverageMl         = 100

	// Priority cutoffs
	highPriorityMaxHours   = 5.5
	mediumPriorityMaxHours = 7.0
	highPriorityMaxScore   = 0.4
	mediumPriorityMaxScore = 0.65

	// Confidence model
	sleepBaseConfidence   = 0.70
	bothStagesConfidence  = 0.20
	oneStageConfidence    = 0.10
	goodQualityConfidence = 0.05
	goodQualityScore      = 0.7
)

// SleepAdvisorService turns the most recent night of sleep into a hydration
// recommendation for a calendar day.
type SleepAdvisorService interface {
	Recommend(ctx context.Context, userID uuid.UUID, day time.Time, force bool) (*domain.RecommendationResponse, error)
}

type sleepAdvisorService struct {
	userRepo repository.UserRepository
	recRepo  repository.RecommendationRepository
	health   healthdata.Provider
	comments llm.CommentWriter
	now      func() time.Time
}

// NewSleepAdvisorService creates a new sleep advisor. comments may be nil;
// recommendations then carry a template comment.
func NewSleepAdvisorService(userRepo repository.UserRepository, recRepo repository.RecommendationRepository, health healthdata.Provider, comments llm.CommentWriter) SleepAdvisorService {
	return &sleepAdvisorService{
		userRepo: userRepo,
		recRepo:  recRepo,
		health:   health,
		comments: comments,
		now:      time.Now,
	}
}

// Recommend returns the sleep recommendation for the given day, computing and
// persisting it on first request. A zero day means today in the user's
// timezone. force recomputes even when a record already exists.
func (s *sleepAdvisorService) Recommend(ctx context.Context, userID uuid.UUID, day time.Time, force bool) (*domain.RecommendationResponse, error) {
	tracer := otel.Tracer("hydration-api/sleep")
	ctx, span := tracer.Start(ctx, "SleepAdvisorService.Recommend", trace.WithAttributes(
		attribute.String("user.id", userID.String()),
		attribute.Bool("force", force),
	))
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	loc := userLocation(user)
	if day.IsZero() {
		day = calendarDay(s.now(), loc)
	}
	span.SetAttributes(attribute.String("recommendation.day", day.Format(dateLayout)))

	if !force {
		cached, err := s.recRepo.GetByDay(ctx, userID, day, domain.RecommendationSleep)
		if err == nil {
			resp := cached.ToResponse(user.Unit)
			return &resp, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}

	session, err := s.health.SleepSession(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	session.QualityScore = ScoreSleepQuality(session)

	rec := BuildSleepRecommendation(session, s.now(), loc)
	span.SetAttributes(
		attribute.Int("recommendation.additional_water_ml", rec.AdditionalWaterMl),
		attribute.String("recommendation.priority", string(rec.Priority)),
		attribute.Float64("recommendation.confidence", rec.Confidence),
		attribute.Float64("sleep.duration_hours", session.DurationHours),
		attribute.Float64("sleep.quality_score", session.QualityScore),
	)

	record := &domain.DailyRecommendation{
		ID:                uuid.New(),
		UserID:            userID,
		Day:               day,
		Kind:              domain.RecommendationSleep,
		AdditionalWaterMl: rec.AdditionalWaterMl,
		Factors:           rec.Factors,
		Confidence:        rec.Confidence,
		Priority:          rec.Priority,
		Comment:           recommendationComment(ctx, s.comments, domain.RecommendationSleep, rec),
		SourceLabel:       sleepSourceLabel(session),
		CreatedAt:         s.now().UTC(),
	}
	if err := s.recRepo.Put(ctx, record); err != nil {
		return nil, err
	}

	resp := record.ToResponse(user.Unit)
	return &resp, nil
}

// sleepSourceLabel names the night the session came from, so a response built
// from an older night is visibly labelled.
func sleepSourceLabel(session domain.SleepSession) string {
	if session.SourceDate == nil {
		return ""
	}
	return "night of " + session.SourceDate.Format(dateLayout)
}

// ScoreSleepQuality computes a composite quality score in [0,1] from sleep
// duration and stage composition. Components carry fixed weights: duration
// 0.35, deep sleep 0.30, REM 0.25, architecture 0.10. Missing stage data
// earns partial credit rather than zero, so an uninstrumented night is not
// scored as a terrible one.
func ScoreSleepQuality(session domain.SleepSession) float64 {
	if !session.HasData() {
		return 0
	}
	score := durationScore(session.DurationHours)
	score += deepScore(session)
	score += remScore(session)
	score += architectureScore(session)
	if score > 1 {
		score = 1
	}
	return math.Round(score*100) / 100
}

// BuildSleepRecommendation turns one night of sleep into an additional-water
// recommendation. now anchors the wake-recency rules and loc resolves the
// wake clock hour; a nil loc means UTC. A session without data yields a zero
// recommendation, never an error.
func BuildSleepRecommendation(session domain.SleepSession, now time.Time, loc *time.Location) domain.HydrationRecommendation {
	if !session.HasData() {
		return domain.HydrationRecommendation{
			AdditionalWaterMl: 0,
			Factors:           []string{fmt.Sprintf("No sleep data recorded in the last %d days", healthdata.MaxLookbackDays)},
			Confidence:        0,
			Priority:          domain.PriorityLow,
		}
	}
	if loc == nil {
		loc = time.UTC
	}

	quality := ScoreSleepQuality(session)
	var b domain.RecommendationBuilder

	b.Add(roundMl(insensibleLossMlPerHour*session.DurationHours),
		fmt.Sprintf("Overnight fluid loss (%.1fh asleep)", session.DurationHours))
	if session.RemSleepMinutes > 0 {
		b.Add(roundMl(remLossMlPerHour*float64(session.RemSleepMinutes)/60),
			fmt.Sprintf("Extra loss during REM sleep (%d min)", session.RemSleepMinutes))
	}

	switch {
	case session.DurationHours < shortSleepHours:
		deficit := shortfallMlPerHour*int(math.Floor(shortSleepHours-session.DurationHours)) + shortfallFlatMl
		b.Add(deficit, fmt.Sprintf("Sleep debt (only %.1fh of sleep)", session.DurationHours))
	case session.DurationHours < adequateSleepHours:
		b.Add(slightShortfallMl, fmt.Sprintf("Slightly short night (%.1fh)", session.DurationHours))
	}

	switch {
	case quality < poorQualityScore:
		b.Add(poorQualityMl, fmt.Sprintf("Poor sleep quality (score %.2f)", quality))
	case quality < reducedQualityScore:
		b.Add(reducedQualityMl, fmt.Sprintf("Reduced sleep quality (score %.2f)", quality))
	}

	if session.DeepSleepMinutes > 0 {
		frac := stageFraction(session, session.DeepSleepMinutes)
		switch {
		case frac < minDeepFraction:
			b.Add(insufficientDeepMl, fmt.Sprintf("Insufficient deep sleep (%.0f%% of night)", frac*100))
		case frac < lowDeepFraction:
			b.Add(lowDeepMl, fmt.Sprintf("Low deep sleep (%.0f%% of night)", frac*100))
		}
	}

	if session.WakeTime != nil {
		sinceWake := now.Sub(*session.WakeTime)
		switch {
		case sinceWake >= 0 && sinceWake <= time.Hour:
			b.Add(wakeWindowMl, "Morning rehydration window")
		case sinceWake > time.Hour && sinceWake <= 2*time.Hour:
			b.Add(postWakeMl, "Post-wake rehydration")
		}
		if session.WakeTime.In(loc).Hour() >= lateWakeHour {
			b.Add(lateWakeMl, fmt.Sprintf("Late wake-up (%02d:00 local)", session.WakeTime.In(loc).Hour()))
		}
	}

	if session.HasStageData() {
		staged := session.DeepSleepMinutes + session.RemSleepMinutes + session.CoreSleepMinutes
		nightMinutes := session.DurationHours * 60
		if float64(staged) < stageCoverageFraction*nightMinutes {
			b.Add(lowCoverageMl, fmt.Sprintf("Incomplete stage tracking (%.0f%% of night staged)", float64(staged)/nightMinutes*100))
		}
	}

	return b.Build(sleepConfidence(session, quality), sleepPriority(session, quality))
}

// durationScore weights total sleep time. 7 to 9 hours is optimal.
func durationScore(hours float64) float64 {
	switch {
	case hours >= 7 && hours <= 9:
		return 0.35
	case hours >= 6 && hours < 7, hours > 9 && hours <= 10:
		return 0.25
	case hours >= 5 && hours < 6:
		return 0.15
	}
	return 0.05
}

// deepScore weights the deep sleep share of the night. 13% to 23% is optimal.
// A night without deep-sleep instrumentation earns half credit.
func deepScore(session domain.SleepSession) float64 {
	if session.DeepSleepMinutes <= 0 {
		return 0.15
	}
	frac := stageFraction(session, session.DeepSleepMinutes)
	switch {
	case frac >= 0.13 && frac <= 0.23:
		return 0.30
	case frac > 0.23:
		return 0.25
	case frac >= 0.10:
		return 0.20
	case frac >= 0.08:
		return 0.12
	}
	return 0.05
}

// remScore weights the REM share of the night. 20% to 25% is optimal. A night
// without REM instrumentation earns half credit.
func remScore(session domain.SleepSession) float64 {
	if session.RemSleepMinutes <= 0 {
		return 0.125
	}
	frac := stageFraction(session, session.RemSleepMinutes)
	switch {
	case frac >= 0.20 && frac <= 0.25:
		return 0.25
	case frac > 0.25:
		return 0.20
	case frac >= 0.15:
		return 0.17
	case frac >= 0.10:
		return 0.10
	}
	return 0.05
}

// architectureScore weights how much of the night is core (light) sleep,
// which healthy architecture keeps between 45% and 65%.
func architectureScore(session domain.SleepSession) float64 {
	if session.CoreSleepMinutes <= 0 {
		return 0.05
	}
	frac := stageFraction(session, session.CoreSleepMinutes)
	switch {
	case frac >= 0.45 && frac <= 0.65:
		return 0.10
	case frac >= 0.35 && frac <= 0.75:
		return 0.05
	}
	return 0
}

// stageFraction is the share of the night spent in a stage.
func stageFraction(session domain.SleepSession, minutes int) float64 {
	if session.DurationHours <= 0 {
		return 0
	}
	return float64(minutes) / 60 / session.DurationHours
}

func sleepPriority(session domain.SleepSession, quality float64) domain.Priority {
	switch {
	case session.DurationHours < highPriorityMaxHours || quality < highPriorityMaxScore:
		return domain.PriorityHigh
	case session.DurationHours < mediumPriorityMaxHours || quality < mediumPriorityMaxScore:
		return domain.PriorityMedium
	}
	return domain.PriorityLow
}

// sleepConfidence grows with instrumentation depth; the builder caps it.
func sleepConfidence(session domain.SleepSession, quality float64) float64 {
	confidence := sleepBaseConfidence
	switch {
	case session.DeepSleepMinutes > 0 && session.RemSleepMinutes > 0:
		confidence += bothStagesConfidence
	case session.DeepSleepMinutes > 0 || session.RemSleepMinutes > 0:
		confidence += oneStageConfidence
	}
	if quality >= goodQualityScore {
		confidence += goodQualityConfidence
	}
	return confidence
}

func roundMl(v float64) int {
	return int(math.Round(v))
}
