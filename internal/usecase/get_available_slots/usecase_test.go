package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/scheduler"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) GetByDate(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Appointment), args.Error(1)
}

type mockMetrics struct {
	mock.Mock
}

func (m *mockMetrics) IncAvailabilityRequest(service string) {
	m.Called(service)
}

func newUseCase(t *testing.T, repo *mockRepository, metrics *mockMetrics) *UseCase {
	t.Helper()
	hours, err := domain.NewOpeningHours(domain.DefaultWindows())
	require.NoError(t, err)
	catalog, err := domain.NewCatalog(domain.DefaultServices())
	require.NoError(t, err)

	return NewUseCase(repo, catalog, scheduler.New(hours, 15, time.UTC), metrics, logger.NewNop())
}

func TestExecute_ReturnsFreeSlots(t *testing.T) {
	repo := &mockRepository{}
	metrics := &mockMetrics{}
	uc := newUseCase(t, repo, metrics)

	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.On("GetByDate", mock.Anything, domain.AppointmentsFilter{Date: date}).Return([]*domain.Appointment{{
		Date:      date,
		StartTime: types.MustTimeString("09:00"),
		EndTime:   ptr.Ptr(types.MustTimeString("09:30")),
		Status:    domain.StatusConfirmed,
	}}, nil)
	metrics.On("IncAvailabilityRequest", "striženje").Return()

	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-01-01", Service: "striženje", DurationMinutes: 30})
	require.NoError(t, err)

	assert.Equal(t, "striženje", resp.Service)
	require.Len(t, resp.Slots, 12)
	assert.Equal(t, Slot{Start: "08:00", End: "08:30"}, resp.Slots[0])
	assert.Equal(t, Slot{Start: "09:30", End: "10:00"}, resp.Slots[3])

	repo.AssertExpectations(t)
	metrics.AssertExpectations(t)
}

func TestExecute_SundayIsEmpty(t *testing.T) {
	repo := &mockRepository{}
	metrics := &mockMetrics{}
	uc := newUseCase(t, repo, metrics)

	repo.On("GetByDate", mock.Anything, mock.Anything).Return([]*domain.Appointment{}, nil)
	metrics.On("IncAvailabilityRequest", "barvanje").Return()

	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-01-07", Service: "barvanje", DurationMinutes: 90})
	require.NoError(t, err)
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{name: "nil request", req: nil, wantErr: ErrInvalidInput},
		{name: "missing service", req: &Request{Date: "2024-01-01", DurationMinutes: 30}, wantErr: ErrInvalidInput},
		{name: "zero duration", req: &Request{Date: "2024-01-01", Service: "striženje"}, wantErr: ErrInvalidInput},
		{name: "bad date", req: &Request{Date: "2024-13-01", Service: "striženje", DurationMinutes: 30}, wantErr: ErrInvalidDate},
		{name: "unknown service", req: &Request{Date: "2024-01-01", Service: "manikura", DurationMinutes: 30}, wantErr: ErrServiceNotFound},
		{name: "duration off step", req: &Request{Date: "2024-01-01", Service: "striženje", DurationMinutes: 20}, wantErr: ErrInvalidDuration},
		{name: "duration above max", req: &Request{Date: "2024-01-01", Service: "barvanje", DurationMinutes: 270}, wantErr: ErrInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepository{}
			uc := newUseCase(t, repo, &mockMetrics{})

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "GetByDate", mock.Anything, mock.Anything)
		})
	}
}

func TestExecute_RepositoryFailure(t *testing.T) {
	repo := &mockRepository{}
	metrics := &mockMetrics{}
	uc := newUseCase(t, repo, metrics)

	repo.On("GetByDate", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
	metrics.On("IncAvailabilityRequest", mock.Anything).Return()

	_, err := uc.Execute(context.Background(), &Request{Date: "2024-01-01", Service: "striženje", DurationMinutes: 15})
	assert.ErrorIs(t, err, ErrInternal)
}
