package repository

import (
	"context"
	"time"

	"github.com/aqualog/hydration-api/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SleepSampleRepository interface {
	CreateBatch(ctx context.Context, samples []domain.SleepStageSample) error
	ListBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.SleepStageSample, error)
}

type sleepSampleRepository struct {
	db *gorm.DB
}

func NewSleepSampleRepository(db *gorm.DB) SleepSampleRepository {
	return &sleepSampleRepository{db: db}
}

func (r *sleepSampleRepository) CreateBatch(ctx context.Context, samples []domain.SleepStageSample) error {
	if len(samples) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(samples, 500).Error
}

// ListBetween returns samples overlapping [from, to), ordered by start time.
// Overlap rather than containment matters here: a sleep interval that starts
// before midnight still belongs to the night being analyzed.
func (r *sleepSampleRepository) ListBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.SleepStageSample, error) {
	var samples []domain.SleepStageSample
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND start_at < ? AND end_at > ?", userID, to, from).
		Order("start_at ASC").
		Find(&samples).Error
	if err != nil {
		return nil, err
	}
	return samples, nil
}
