package complete_schedule

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/m04kA/SMC-StoreAdmin/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-StoreAdmin/internal/infra/storage/schedule"
	storeRepo "github.com/m04kA/SMC-StoreAdmin/internal/infra/storage/store"
	"github.com/m04kA/SMC-StoreAdmin/pkg/logger"
)

type mockScheduleRepo struct {
	mock.Mock
}

func (m *mockScheduleRepo) GetByIDForUpdate(ctx context.Context, storeID, id uuid.UUID) (*domain.Schedule, error) {
	args := m.Called(ctx, storeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Schedule), args.Error(1)
}

func (m *mockScheduleRepo) MarkCompleted(ctx context.Context, storeID, id uuid.UUID, completedAt time.Time) error {
	args := m.Called(ctx, storeID, id, completedAt)
	return args.Error(0)
}

type stubStores map[uuid.UUID]*domain.Store

func (s stubStores) GetByID(_ context.Context, id uuid.UUID) (*domain.Store, error) {
	if store, ok := s[id]; ok {
		return store, nil
	}
	return nil, storeRepo.ErrStoreNotFound
}

type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

type recordedMetrics []string

func (r *recordedMetrics) IncScheduleSaved(action string) { *r = append(*r, action) }

type CompleteScheduleSuite struct {
	suite.Suite

	schedules *mockScheduleRepo
	metrics   *recordedMetrics
	store     *domain.Store
	now       time.Time
	uc        *UseCase
}

func (s *CompleteScheduleSuite) SetupTest() {
	s.schedules = new(mockScheduleRepo)
	s.metrics = &recordedMetrics{}
	s.store = &domain.Store{ID: uuid.New(), OwnerID: uuid.New()}
	s.now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	s.uc = NewUseCase(
		s.schedules,
		stubStores{s.store.ID: s.store},
		inlineTx{},
		fixedClock(s.now),
		s.metrics,
		logger.NewWithWriter(io.Discard, logrus.InfoLevel),
	)
}

func (s *CompleteScheduleSuite) schedule(date time.Time) *domain.Schedule {
	return &domain.Schedule{ID: uuid.New(), StoreID: s.store.ID, ScheduledDate: date}
}

func (s *CompleteScheduleSuite) request(id uuid.UUID) *Request {
	return &Request{UserID: s.store.OwnerID, StoreID: s.store.ID, ScheduleID: id}
}

func (s *CompleteScheduleSuite) TestCompletesOnScheduledDay() {
	// Запись на сегодня, но на более позднее время: сравнивается только дата
	sch := s.schedule(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	s.schedules.On("GetByIDForUpdate", mock.Anything, s.store.ID, sch.ID).Return(sch, nil)
	s.schedules.On("MarkCompleted", mock.Anything, s.store.ID, sch.ID, s.now).Return(nil)

	resp, err := s.uc.Execute(context.Background(), s.request(sch.ID))

	require.NoError(s.T(), err)
	assert.Equal(s.T(), sch.ID, resp.ScheduleID)
	assert.Equal(s.T(), s.now, resp.CompletedAt)
	assert.Equal(s.T(), []string{"completed"}, []string(*s.metrics))
	s.schedules.AssertExpectations(s.T())
}

func (s *CompleteScheduleSuite) TestCompletesPastSchedule() {
	sch := s.schedule(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	s.schedules.On("GetByIDForUpdate", mock.Anything, s.store.ID, sch.ID).Return(sch, nil)
	s.schedules.On("MarkCompleted", mock.Anything, s.store.ID, sch.ID, s.now).Return(nil)

	_, err := s.uc.Execute(context.Background(), s.request(sch.ID))

	require.NoError(s.T(), err)
}

func (s *CompleteScheduleSuite) TestTooEarly() {
	sch := s.schedule(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC))
	s.schedules.On("GetByIDForUpdate", mock.Anything, s.store.ID, sch.ID).Return(sch, nil)

	_, err := s.uc.Execute(context.Background(), s.request(sch.ID))

	assert.ErrorIs(s.T(), err, ErrTooEarly)
	s.schedules.AssertNotCalled(s.T(), "MarkCompleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.Empty(s.T(), *s.metrics)
}

func (s *CompleteScheduleSuite) TestAlreadyCompleted() {
	sch := s.schedule(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	sch.Completed = true
	s.schedules.On("GetByIDForUpdate", mock.Anything, s.store.ID, sch.ID).Return(sch, nil)

	_, err := s.uc.Execute(context.Background(), s.request(sch.ID))

	assert.ErrorIs(s.T(), err, ErrAlreadyCompleted)
}

func (s *CompleteScheduleSuite) TestNotFound() {
	id := uuid.New()
	s.schedules.On("GetByIDForUpdate", mock.Anything, s.store.ID, id).Return(nil, scheduleRepo.ErrScheduleNotFound)

	_, err := s.uc.Execute(context.Background(), s.request(id))

	assert.ErrorIs(s.T(), err, ErrScheduleNotFound)
}

func (s *CompleteScheduleSuite) TestRepositoryFailure() {
	sch := s.schedule(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	s.schedules.On("GetByIDForUpdate", mock.Anything, s.store.ID, sch.ID).Return(sch, nil)
	s.schedules.On("MarkCompleted", mock.Anything, s.store.ID, sch.ID, s.now).Return(errors.New("connection reset"))

	_, err := s.uc.Execute(context.Background(), s.request(sch.ID))

	assert.ErrorIs(s.T(), err, ErrInternal)
}

func (s *CompleteScheduleSuite) TestAccessDenied() {
	_, err := s.uc.Execute(context.Background(), &Request{UserID: uuid.New(), StoreID: s.store.ID, ScheduleID: uuid.New()})

	assert.ErrorIs(s.T(), err, ErrAccessDenied)
	s.schedules.AssertNotCalled(s.T(), "GetByIDForUpdate", mock.Anything, mock.Anything, mock.Anything)
}

func TestCompleteScheduleSuite(t *testing.T) {
	suite.Run(t, new(CompleteScheduleSuite))
}
