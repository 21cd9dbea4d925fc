package repository

import (
	"context"
	"time"

	"github.com/aqualog/hydration-api/internal/domain"
	"github.com/aqualog/hydration-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IntakeRepository interface {
	Create(ctx context.Context, log *domain.IntakeLog) error
	List(ctx context.Context, userID uuid.UUID, filter domain.IntakeFilter) ([]domain.IntakeLog, error)
	ListBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.IntakeLog, error)
}

type intakeRepository struct {
	db *gorm.DB
}

func NewIntakeRepository(db *gorm.DB) IntakeRepository {
	return &intakeRepository{db: db}
}

func (r *intakeRepository) Create(ctx context.Context, log *domain.IntakeLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *intakeRepository) List(ctx context.Context, userID uuid.UUID, filter domain.IntakeFilter) ([]domain.IntakeLog, error) {
	// The id tiebreaker keeps pages stable when entries share a timestamp.
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("logged_at DESC, id DESC")

	if filter.From != nil {
		query = query.Where("logged_at >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("logged_at <= ?", filter.To)
	}

	// An undecodable cursor reads as the first page rather than an error.
	if cursor, err := pagination.Decode(filter.Cursor); err == nil && cursor != nil {
		query = query.Where(
			"(logged_at < ?) OR (logged_at = ? AND id < ?)",
			cursor.LoggedAt, cursor.LoggedAt, cursor.ID,
		)
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var logs []domain.IntakeLog
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}

	return logs, nil
}

func (r *intakeRepository) ListBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.IntakeLog, error) {
	var logs []domain.IntakeLog
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, from, to).
		Order("logged_at ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
