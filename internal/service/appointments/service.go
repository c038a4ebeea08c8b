package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments/models"
)

// Service сервис чтения терминов
type Service struct {
	appointmentRepo AppointmentRepository
	dates           DateParser
	logger          Logger
}

// NewService создает новый экземпляр сервиса терминов
func NewService(appointmentRepo AppointmentRepository, dates DateParser, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		dates:           dates,
		logger:          logger,
	}
}

// GetByID получает термин по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	ap, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(ap), nil
}

// ListByDate получает термины на дату
// По умолчанию только активные; Status и IncludeInactive расширяют выборку
func (s *Service) ListByDate(ctx context.Context, req *models.ListByDateRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("ListByDate: date=%s, status=%v, includeInactive=%t", req.Date, req.Status, req.IncludeInactive)

	date, err := s.dates.ParseDate(req.Date)
	if err != nil {
		s.logger.Warn("ListByDate: %v", err)
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	filter := domain.AppointmentsFilter{
		Date:            date,
		IncludeInactive: req.IncludeInactive,
	}

	if req.Status != nil {
		status, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			s.logger.Warn("ListByDate: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Status = &status
	}

	list, err := s.appointmentRepo.GetByDate(ctx, filter)
	if err != nil {
		s.logger.Error("ListByDate: repository error for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByDate: fetched %d appointments for date=%s", len(list), req.Date)
	return models.FromDomainAppointmentList(list), nil
}
