package domain

import (
	"time"

	"github.com/google/uuid"
)

// SleepStage is one interval category inside a night of sleep, as reported
// by the device health store.
// @Description Sleep stage category for a sampled interval.
type SleepStage string

const (
	StageInBed             SleepStage = "in_bed"
	StageAwake             SleepStage = "awake"
	StageAsleepCore        SleepStage = "asleep_core"
	StageAsleepDeep        SleepStage = "asleep_deep"
	StageAsleepREM         SleepStage = "asleep_rem"
	StageAsleepUnspecified SleepStage = "asleep_unspecified"
)

func (s SleepStage) Valid() bool {
	switch s {
	case StageInBed, StageAwake, StageAsleepCore, StageAsleepDeep, StageAsleepREM, StageAsleepUnspecified:
		return true
	}
	return false
}

// Asleep reports whether the stage counts toward sleep duration.
func (s SleepStage) Asleep() bool {
	switch s {
	case StageAsleepCore, StageAsleepDeep, StageAsleepREM, StageAsleepUnspecified:
		return true
	}
	return false
}

type SleepStageSample struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_sleep_samples_user_start" json:"user_id"`
	Stage     SleepStage `gorm:"type:varchar(20);not null" json:"stage"`
	StartAt   time.Time  `gorm:"not null;index:idx_sleep_samples_user_start,sort:desc" json:"start_at"`
	EndAt     time.Time  `gorm:"not null" json:"end_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SleepStageSample) TableName() string {
	return "sleep_stage_samples"
}

// SleepSampleInput is one stage interval in a sync batch.
type SleepSampleInput struct {
	// Stage category
	Stage SleepStage `json:"stage" validate:"required,oneof=in_bed awake asleep_core asleep_deep asleep_rem asleep_unspecified" example:"asleep_deep" enums:"in_bed,awake,asleep_core,asleep_deep,asleep_rem,asleep_unspecified"`
	// Interval start in RFC3339 format
	StartAt time.Time `json:"start_at" validate:"required" example:"2024-01-15T23:12:00Z"`
	// Interval end, must be after start_at
	EndAt time.Time `json:"end_at" validate:"required,gtfield=StartAt" example:"2024-01-16T00:03:00Z"`
}

// SyncSleepSamplesRequest is the request body for a sample sync batch.
// @Description Batch of sleep stage intervals exported from the device health store.
type SyncSleepSamplesRequest struct {
	Samples []SleepSampleInput `json:"samples" validate:"required,min=1,max=2000,dive"`
}

// SyncSleepSamplesResponse reports how many samples were stored.
type SyncSleepSamplesResponse struct {
	Stored int `json:"stored" example:"42"`
}

// SleepSession is one night of sleep derived from stage samples. It is a
// value computed at read time, not a stored row. DurationHours of zero means
// no data was available; calculators treat that as a valid no-signal input.
type SleepSession struct {
	// Total asleep time in hours
	DurationHours float64 `json:"duration_hours" example:"7.5"`
	// Composite quality score in [0,1]
	QualityScore float64 `json:"quality_score" example:"0.82"`
	// Earliest interval start, nil when no data
	BedTime *time.Time `json:"bed_time,omitempty"`
	// Latest asleep interval end, nil when no data
	WakeTime *time.Time `json:"wake_time,omitempty"`
	// Minutes of deep sleep, zero when not instrumented
	DeepSleepMinutes int `json:"deep_sleep_minutes" example:"78"`
	// Minutes of REM sleep, zero when not instrumented
	RemSleepMinutes int `json:"rem_sleep_minutes" example:"104"`
	// Minutes of core (light) sleep
	CoreSleepMinutes int `json:"core_sleep_minutes" example:"260"`
	// Calendar night the session belongs to; differs from the requested day
	// when a recent-history fallback was used
	SourceDate *time.Time `json:"source_date,omitempty"`
}

// HasData reports whether any sleep was recorded.
func (s SleepSession) HasData() bool {
	return s.DurationHours > 0
}

// HasStageData reports whether any stage-level instrumentation exists.
func (s SleepSession) HasStageData() bool {
	return s.DeepSleepMinutes > 0 || s.RemSleepMinutes > 0 || s.CoreSleepMinutes > 0
}
