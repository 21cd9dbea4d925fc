package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/aqualog/hydration-api/internal/domain"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}

// MockIntakeRepository is a mock implementation of IntakeRepository
type MockIntakeRepository struct {
	logs       []domain.IntakeLog
	listResult []domain.IntakeLog
	err        error
}

func NewMockIntakeRepository() *MockIntakeRepository {
	return &MockIntakeRepository{}
}

func (m *MockIntakeRepository) Create(ctx context.Context, log *domain.IntakeLog) error {
	if m.err != nil {
		return m.err
	}
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	log.CreatedAt = time.Now()
	m.logs = append(m.logs, *log)
	return nil
}

func (m *MockIntakeRepository) List(ctx context.Context, userID uuid.UUID, filter domain.IntakeFilter) ([]domain.IntakeLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.listResult != nil {
		result := make([]domain.IntakeLog, len(m.listResult))
		copy(result, m.listResult)
		return result, nil
	}
	var result []domain.IntakeLog
	for _, log := range m.logs {
		if log.UserID == userID {
			result = append(result, log)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].LoggedAt.After(result[j].LoggedAt)
	})
	return result, nil
}

func (m *MockIntakeRepository) ListBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.IntakeLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.IntakeLog
	for _, log := range m.logs {
		if log.UserID != userID {
			continue
		}
		if log.LoggedAt.Before(from) || !log.LoggedAt.Before(to) {
			continue
		}
		result = append(result, log)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].LoggedAt.Before(result[j].LoggedAt)
	})
	return result, nil
}

// MockRecommendationRepository is a mock implementation of RecommendationRepository
type MockRecommendationRepository struct {
	records map[string]*domain.DailyRecommendation
	err     error
}

func NewMockRecommendationRepository() *MockRecommendationRepository {
	return &MockRecommendationRepository{
		records: make(map[string]*domain.DailyRecommendation),
	}
}

func recommendationKey(userID uuid.UUID, day time.Time, kind domain.RecommendationKind) string {
	return userID.String() + "|" + day.Format(dateLayout) + "|" + string(kind)
}

func (m *MockRecommendationRepository) GetByDay(ctx context.Context, userID uuid.UUID, day time.Time, kind domain.RecommendationKind) (*domain.DailyRecommendation, error) {
	if m.err != nil {
		return nil, m.err
	}
	rec, ok := m.records[recommendationKey(userID, day, kind)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return rec, nil
}

func (m *MockRecommendationRepository) ListByDay(ctx context.Context, userID uuid.UUID, day time.Time) ([]domain.DailyRecommendation, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.DailyRecommendation
	for _, rec := range m.records {
		if rec.UserID == userID && rec.Day.Equal(day) {
			result = append(result, *rec)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Kind < result[j].Kind
	})
	return result, nil
}

func (m *MockRecommendationRepository) Put(ctx context.Context, rec *domain.DailyRecommendation) error {
	if m.err != nil {
		return m.err
	}
	m.records[recommendationKey(rec.UserID, rec.Day, rec.Kind)] = rec
	return nil
}

// MockSleepProvider is a mock implementation of healthdata.Provider
type MockSleepProvider struct {
	session domain.SleepSession
	err     error
}

func (m *MockSleepProvider) SleepSession(ctx context.Context, userID uuid.UUID, day time.Time) (domain.SleepSession, error) {
	if m.err != nil {
		return domain.SleepSession{}, m.err
	}
	return m.session, nil
}

// MockWeatherProvider is a mock implementation of weather.Provider
type MockWeatherProvider struct {
	snapshot domain.WeatherSnapshot
	calls    int
	err      error
}

func (m *MockWeatherProvider) Current(ctx context.Context, lat, lon float64) (domain.WeatherSnapshot, error) {
	m.calls++
	if m.err != nil {
		return domain.WeatherSnapshot{}, m.err
	}
	return m.snapshot, nil
}

// MockCommentWriter is a mock implementation of llm.CommentWriter
type MockCommentWriter struct {
	comment string
	calls   int
	err     error
}

func (m *MockCommentWriter) GenerateComment(ctx context.Context, kind domain.RecommendationKind, rec domain.HydrationRecommendation) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.comment, nil
}

// MockDrinkAnalyzer is a mock implementation of llm.DrinkAnalyzer
type MockDrinkAnalyzer struct {
	analysis domain.DrinkAnalysis
	err      error
}

func (m *MockDrinkAnalyzer) AnalyzeDrink(ctx context.Context, imageBase64 string) (*domain.DrinkAnalysis, error) {
	if m.err != nil {
		return nil, m.err
	}
	analysis := m.analysis
	return &analysis, nil
}

// Helper functions
func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func floatPtr(f float64) *float64 {
	return &f
}

func timePtr(t time.Time) *time.Time {
	return &t
}
