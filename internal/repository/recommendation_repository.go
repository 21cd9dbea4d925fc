package repository

import (
	"context"
	"errors"
	"time"

	"github.com/aqualog/hydration-api/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RecommendationRepository interface {
	GetByDay(ctx context.Context, userID uuid.UUID, day time.Time, kind domain.RecommendationKind) (*domain.DailyRecommendation, error)
	ListByDay(ctx context.Context, userID uuid.UUID, day time.Time) ([]domain.DailyRecommendation, error)
	Put(ctx context.Context, rec *domain.DailyRecommendation) error
}

type recommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &recommendationRepository{db: db}
}

func (r *recommendationRepository) GetByDay(ctx context.Context, userID uuid.UUID, day time.Time, kind domain.RecommendationKind) (*domain.DailyRecommendation, error) {
	var rec domain.DailyRecommendation
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND day = ? AND kind = ?", userID, day, kind).
		Take(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *recommendationRepository) ListByDay(ctx context.Context, userID uuid.UUID, day time.Time) ([]domain.DailyRecommendation, error) {
	var recs []domain.DailyRecommendation
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND day = ?", userID, day).
		Order("kind ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// Put stores a recommendation, replacing any existing row for the same
// (user, day, kind). Recomputation supersedes, it never appends.
func (r *recommendationRepository) Put(ctx context.Context, rec *domain.DailyRecommendation) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "day"}, {Name: "kind"}},
			UpdateAll: true,
		}).
		Create(rec).Error
}
