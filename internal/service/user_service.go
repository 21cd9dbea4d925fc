package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/aqualog/hydration-api/internal/domain"
	"github.com/aqualog/hydration-api/internal/repository"
)

type UserService interface {
	Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateMetrics(ctx context.Context, id uuid.UUID, req *domain.UpdateMetricsRequest) (*domain.User, error)
	Goal(ctx context.Context, id uuid.UUID) (*domain.GoalResponse, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	unit, err := domain.ParseVolumeUnit(req.Unit)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:       uuid.New(),
		Timezone: req.Timezone,
		Unit:     unit,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateMetrics merges the provided fields into the profile. Once the profile
// is complete the daily goal is replanned; until then the update is stored
// and the goal stays at zero.
func (s *userService) UpdateMetrics(ctx context.Context, id uuid.UUID, req *domain.UpdateMetricsRequest) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyMetricsUpdate(user, req)

	if goal, err := PlanWaterGoal(user.Metrics()); err == nil {
		user.DailyGoalMl = goal
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Goal returns the planned daily goal, planning it on demand when the stored
// value predates the latest metrics. An incomplete profile surfaces
// ErrInsufficientMetrics naming the missing fields.
func (s *userService) Goal(ctx context.Context, id uuid.UUID) (*domain.GoalResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	goal, err := PlanWaterGoal(user.Metrics())
	if err != nil {
		return nil, err
	}

	if user.DailyGoalMl != goal {
		user.DailyGoalMl = goal
		if err := s.repo.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	return &domain.GoalResponse{
		WaterMl: goal,
		Display: domain.DisplayVolume(goal, user.Unit),
	}, nil
}

func applyMetricsUpdate(user *domain.User, req *domain.UpdateMetricsRequest) {
	if req.HeightCm != nil {
		user.HeightCm = req.HeightCm
	}
	if req.WeightKg != nil {
		user.WeightKg = req.WeightKg
	}
	if req.AgeYears != nil {
		user.AgeYears = req.AgeYears
	}
	if req.Sex != nil {
		sex := domain.Sex(*req.Sex)
		user.Sex = &sex
	}
	if req.ActivityLevel != nil {
		level := domain.ActivityLevel(*req.ActivityLevel)
		user.ActivityLevel = &level
	}
	if req.Climate != nil {
		climate := domain.Climate(*req.Climate)
		user.Climate = &climate
	}
}
