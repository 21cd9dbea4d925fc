// Package healthdata derives nightly sleep sessions from the raw stage
// samples clients sync off the device health store.
package healthdata

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/aqualog/hydration-api/internal/domain"
	"github.com/aqualog/hydration-api/internal/repository"
	"github.com/google/uuid"
)

const (
	// MaxLookbackDays bounds the search for the most recent night with data
	MaxLookbackDays = 7

	// The night belonging to day D runs from 18:00 on D-1 to 18:00 on D, so
	// an evening bedtime and a morning wake both land in the same night.
	nightStartOffset = -6 * time.Hour
	nightEndOffset   = 18 * time.Hour
)

// Provider supplies the derived sleep session for a calendar day. A session
// with zero duration means no data was available; that is a valid result,
// never an error. The store reports samples or nothing, it cannot
// distinguish "no data" from "access denied".
type Provider interface {
	SleepSession(ctx context.Context, userID uuid.UUID, day time.Time) (domain.SleepSession, error)
}

type sampleProvider struct {
	samples repository.SleepSampleRepository
}

func NewProvider(samples repository.SleepSampleRepository) Provider {
	return &sampleProvider{samples: samples}
}

// SleepSession builds the session for the requested day, walking back up to
// MaxLookbackDays to the most recent night that has samples. SourceDate
// records which night was actually used.
func (p *sampleProvider) SleepSession(ctx context.Context, userID uuid.UUID, day time.Time) (domain.SleepSession, error) {
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	for daysBack := 0; daysBack < MaxLookbackDays; daysBack++ {
		target := day.AddDate(0, 0, -daysBack)
		from := target.Add(nightStartOffset)
		to := target.Add(nightEndOffset)

		samples, err := p.samples.ListBetween(ctx, userID, from, to)
		if err != nil {
			return domain.SleepSession{}, err
		}

		session := BuildSession(samples, from, to)
		if session.HasData() {
			sourceDate := target
			session.SourceDate = &sourceDate
			return session, nil
		}
	}

	return domain.SleepSession{}, nil
}

type interval struct {
	start time.Time
	end   time.Time
}

// BuildSession aggregates stage samples inside [from, to) into one session.
// Samples are clipped to the window and merged per stage, so the same
// interval reported by two sources (watch and phone) counts once.
func BuildSession(samples []domain.SleepStageSample, from, to time.Time) domain.SleepSession {
	byStage := make(map[domain.SleepStage][]interval)

	for _, s := range samples {
		start, end := s.StartAt, s.EndAt
		if start.Before(from) {
			start = from
		}
		if end.After(to) {
			end = to
		}
		if !end.After(start) {
			continue
		}
		byStage[s.Stage] = append(byStage[s.Stage], interval{start: start, end: end})
	}

	var session domain.SleepSession
	var bedTime, wakeTime *time.Time
	asleepMinutes := 0

	for stage, intervals := range byStage {
		if !stage.Asleep() {
			continue
		}

		merged := mergeIntervals(intervals)
		minutes := sumMinutes(merged)
		asleepMinutes += minutes

		switch stage {
		case domain.StageAsleepDeep:
			session.DeepSleepMinutes = minutes
		case domain.StageAsleepREM:
			session.RemSleepMinutes = minutes
		case domain.StageAsleepCore:
			session.CoreSleepMinutes = minutes
		}

		first := merged[0].start
		last := merged[len(merged)-1].end
		if bedTime == nil || first.Before(*bedTime) {
			bedTime = &first
		}
		if wakeTime == nil || last.After(*wakeTime) {
			wakeTime = &last
		}
	}

	session.DurationHours = float64(asleepMinutes) / 60
	session.BedTime = bedTime
	session.WakeTime = wakeTime
	return session
}

// mergeIntervals collapses overlapping or touching intervals. Input order
// does not matter; output is sorted by start.
func mergeIntervals(intervals []interval) []interval {
	if len(intervals) == 0 {
		return nil
	}

	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].start.Before(intervals[j].start)
	})

	merged := []interval{intervals[0]}
	for _, iv := range intervals[1:] {
		last := &merged[len(merged)-1]
		if !iv.start.After(last.end) {
			if iv.end.After(last.end) {
				last.end = iv.end
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

func sumMinutes(intervals []interval) int {
	var total time.Duration
	for _, iv := range intervals {
		total += iv.end.Sub(iv.start)
	}
	return int(math.Round(total.Minutes()))
}
