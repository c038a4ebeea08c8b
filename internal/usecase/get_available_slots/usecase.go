package get_available_slots

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// UseCase use case для получения свободных слотов на дату
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalog         ServiceCatalog
	scheduler       Scheduler
	metrics         MetricsRecorder
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalog ServiceCatalog,
	scheduler Scheduler,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalog:         catalog,
		scheduler:       scheduler,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case получения свободных слотов
// Закрытый день возвращает пустой список, а не ошибку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: date=%s, service=%s, duration=%d",
		req.Date, req.Service, req.DurationMinutes)

	// 2. Парсим дату в часовом поясе салона
	date, err := uc.scheduler.ParseDate(req.Date)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: %v", err)
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	// 3. Проверяем услугу и длительность
	service, ok := uc.catalog.Find(strings.TrimSpace(req.Service))
	if !ok {
		uc.logger.Warn("GetAvailableSlots: service %q not found", req.Service)
		return nil, fmt.Errorf("%w: %q", ErrServiceNotFound, req.Service)
	}

	if err := service.ValidateDuration(req.DurationMinutes); err != nil {
		uc.logger.Warn("GetAvailableSlots: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDuration, err)
	}

	uc.metrics.IncAvailabilityRequest(service.Key)

	// 4. Получаем активные термины на эту дату
	existing, err := uc.appointmentRepo.GetByDate(ctx, domain.AppointmentsFilter{Date: date})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 5. Генерируем свободные слоты
	intervals, err := uc.scheduler.AvailableSlots(date, req.DurationMinutes, existing)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	slots := make([]Slot, len(intervals))
	for i, iv := range intervals {
		slots[i] = Slot{
			Start: types.NewTimeString(iv.Start),
			End:   types.NewTimeString(iv.End),
		}
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for service=%s, date=%s",
		len(slots), service.Key, date.Format(domain.DateFormat))

	return &Response{
		Date:            date,
		Service:         service.Key,
		DurationMinutes: req.DurationMinutes,
		Slots:           slots,
	}, nil
}
