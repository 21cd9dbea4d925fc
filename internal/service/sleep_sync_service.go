package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/aqualog/hydration-api/internal/domain"
	"github.com/aqualog/hydration-api/internal/repository"
)

// SleepSyncService ingests sleep stage samples exported from the device
// health store. Samples are stored as-is; overlap between sources is resolved
// at aggregation time, not at write time.
type SleepSyncService interface {
	Sync(ctx context.Context, userID uuid.UUID, req *domain.SyncSleepSamplesRequest) (*domain.SyncSleepSamplesResponse, error)
}

type sleepSyncService struct {
	repo     repository.SleepSampleRepository
	userRepo repository.UserRepository
}

func NewSleepSyncService(repo repository.SleepSampleRepository, userRepo repository.UserRepository) SleepSyncService {
	return &sleepSyncService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *sleepSyncService) Sync(ctx context.Context, userID uuid.UUID, req *domain.SyncSleepSamplesRequest) (*domain.SyncSleepSamplesResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	samples := make([]domain.SleepStageSample, len(req.Samples))
	for i, in := range req.Samples {
		samples[i] = domain.SleepStageSample{
			ID:      uuid.New(),
			UserID:  userID,
			Stage:   in.Stage,
			StartAt: in.StartAt.UTC(),
			EndAt:   in.EndAt.UTC(),
		}
	}

	if err := s.repo.CreateBatch(ctx, samples); err != nil {
		return nil, err
	}

	return &domain.SyncSleepSamplesResponse{Stored: len(samples)}, nil
}
