package create_appointment

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/scheduler"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

const statusOK = "ok"

// UseCase use case для создания термина
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalog         ServiceCatalog
	scheduler       Scheduler
	txManager       TransactionManager
	metrics         MetricsRecorder
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalog ServiceCatalog,
	scheduler Scheduler,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalog:         catalog,
		scheduler:       scheduler,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case создания термина
// Блокировка даты, чтение занятых терминов, проверка и вставка выполняются в одной
// сериализуемой транзакции: два конкурентных запроса на одну дату не могут оба пройти проверку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		uc.metrics.IncAppointmentRejected("invalid_request")
		return nil, err
	}

	uc.logger.Info("CreateAppointment: service=%s, date=%s, time=%s, duration=%d",
		req.Service, req.Date, req.StartTime, req.DurationMinutes)

	// 2. Проверяем услугу и длительность
	service, ok := uc.catalog.Find(strings.TrimSpace(req.Service))
	if !ok {
		uc.logger.Warn("CreateAppointment: service %q not found", req.Service)
		uc.metrics.IncAppointmentRejected("service_not_found")
		return nil, fmt.Errorf("%w: %q", ErrServiceNotFound, req.Service)
	}

	if err := service.ValidateDuration(req.DurationMinutes); err != nil {
		uc.logger.Warn("CreateAppointment: %v", err)
		uc.metrics.IncAppointmentRejected("invalid_duration")
		return nil, fmt.Errorf("%w: %v", ErrInvalidDuration, err)
	}

	// 3. Парсим дату: нужна для блокировки и выборки
	date, err := uc.scheduler.ParseDate(req.Date)
	if err != nil {
		uc.logger.Warn("CreateAppointment: %v", err)
		uc.metrics.IncAppointmentRejected(string(scheduler.KindInvalidDateTime))
		return nil, fmt.Errorf("%w: %v", ErrInvalidDateTime, err)
	}
	dateKey := date.Format(domain.DateFormat)

	var result *domain.Appointment

	// 4. Выполняем проверку и сохранение в транзакции READ COMMITTED:
	// блокировка даты сериализует создания, а каждый запрос после нее видит свежий снимок
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 4.1. Блокируем дату до конца транзакции
		if err := uc.appointmentRepo.LockDate(txCtx, dateKey); err != nil {
			uc.logger.Error("CreateAppointment: failed to lock date %s: %v", dateKey, err)
			return fmt.Errorf("%w: failed to lock date: %v", ErrInternal, err)
		}

		// 4.2. Получаем активные термины на эту дату
		existing, err := uc.appointmentRepo.GetByDate(txCtx, domain.AppointmentsFilter{Date: date})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 4.3. Проверяем день, часы работы и пересечения
		interval, err := uc.scheduler.Validate(scheduler.Proposal{
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: req.DurationMinutes,
		}, existing)
		if err != nil {
			mapped, reason := mapValidationError(err)
			if reason == "" {
				uc.logger.Error("CreateAppointment: %v", err)
				return mapped
			}
			uc.logger.Warn("CreateAppointment: rejected: %v", err)
			uc.metrics.IncAppointmentRejected(reason)
			return mapped
		}

		// 4.4. Сохраняем термин
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			Service:         service.Key,
			DurationMinutes: req.DurationMinutes,
			Date:            date,
			StartTime:       types.NewTimeString(interval.Start),
			EndTime:         ptr.Ptr(types.NewTimeString(interval.End)),
			Name:            strings.TrimSpace(req.Name),
			Phone:           strings.TrimSpace(req.Phone),
			Email:           normalizeOptional(req.Email),
			Notes:           normalizeOptional(req.Notes),
			Status:          domain.StatusConfirmed,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.IncAppointmentCreated(result.Service)
	uc.logger.Info("CreateAppointment: created appointment id=%d, %s %s-%s",
		result.ID, dateKey, result.StartTime, ptr.Deref(result.EndTime, ""))

	return &Response{
		Status:          statusOK,
		ID:              result.ID,
		Service:         result.Service,
		Date:            result.Date,
		StartTime:       result.StartTime,
		EndTime:         ptr.Deref(result.EndTime, ""),
		DurationMinutes: result.DurationMinutes,
		CreatedAt:       result.CreatedAt,
	}, nil
}
