package scheduler

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Scheduler считает свободные слоты и проверяет новые термины
// Не имеет состояния кроме неизменяемой конфигурации, безопасен для конкурентного использования
type Scheduler struct {
	hours    domain.OpeningHours
	step     time.Duration
	location *time.Location
}

// Proposal предлагаемый термин в формате внешнего интерфейса
type Proposal struct {
	Date            string // YYYY-MM-DD
	StartTime       string // HH:MM
	DurationMinutes int
}

// New создает планировщик
// stepMinutes <= 0 заменяется на domain.DefaultSlotStepMinutes, nil location - на time.Local
func New(hours domain.OpeningHours, stepMinutes int, location *time.Location) *Scheduler {
	if stepMinutes <= 0 {
		stepMinutes = domain.DefaultSlotStepMinutes
	}
	if location == nil {
		location = time.Local
	}

	return &Scheduler{
		hours:    hours,
		step:     time.Duration(stepMinutes) * time.Minute,
		location: location,
	}
}

// Location возвращает часовой пояс салона
func (s *Scheduler) Location() *time.Location {
	return s.location
}

// ParseDate парсит дату YYYY-MM-DD в часовом поясе салона
func (s *Scheduler) ParseDate(date string) (time.Time, error) {
	parsed, err := time.ParseInLocation(domain.DateFormat, strings.TrimSpace(date), s.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", ErrInvalidDateTime, date)
	}
	return parsed, nil
}

// WindowOn возвращает часы работы на дату; false, если салон закрыт
func (s *Scheduler) WindowOn(date time.Time) (domain.Interval, bool) {
	w, ok := s.hours.WindowFor(date.Weekday())
	if !ok {
		return domain.Interval{}, false
	}

	window, err := w.On(date, s.location)
	if err != nil {
		// OpeningHours проверяет окна при создании, сюда попасть нельзя
		return domain.Interval{}, false
	}
	return window, true
}

// AvailableSlots перечисляет слоты длительностью durationMinutes с шагом step
// внутри часов работы на date, исключая пересекающиеся с existing
// Закрытый день - пустой результат, не ошибка
// Термины без времени окончания считаются нулевой длины [start, start)
func (s *Scheduler) AvailableSlots(date time.Time, durationMinutes int, existing []*domain.Appointment) ([]domain.Interval, error) {
	slots := make([]domain.Interval, 0)

	if durationMinutes <= 0 {
		return slots, nil
	}

	window, ok := s.WindowOn(date)
	if !ok {
		return slots, nil
	}

	busy, err := s.busyIntervals(existing, true)
	if err != nil {
		return nil, err
	}
	index := newBookingIndex(busy)

	needed := time.Duration(durationMinutes) * time.Minute
	for t := window.Start; !t.Add(needed).After(window.End); t = t.Add(s.step) {
		candidate := domain.Interval{Start: t, End: t.Add(needed)}
		if index.conflicts(candidate) {
			continue
		}
		slots = append(slots, candidate)
	}

	return slots, nil
}

// Validate проверяет предлагаемый термин и возвращает его интервал
// Проверки выполняются по порядку до первой ошибки:
// дата/время, день недели, часы работы, пересечения
// Побочных эффектов нет: сохранение термина - ответственность вызывающего
func (s *Scheduler) Validate(p Proposal, existing []*domain.Appointment) (domain.Interval, error) {
	start, err := time.ParseInLocation(domain.DateTimeFormat,
		strings.TrimSpace(p.Date)+" "+strings.TrimSpace(p.StartTime), s.location)
	if err != nil {
		return domain.Interval{}, fmt.Errorf("%w: %q %q", ErrInvalidDateTime, p.Date, p.StartTime)
	}

	proposed, err := domain.IntervalOf(start, p.DurationMinutes)
	if err != nil {
		return domain.Interval{}, fmt.Errorf("%w: %d", ErrInvalidDuration, p.DurationMinutes)
	}

	window, ok := s.WindowOn(start)
	if !ok {
		return domain.Interval{}, fmt.Errorf("%w: %s", ErrClosedDay, domain.WeekdayNames[start.Weekday()])
	}

	if !domain.Contains(window, proposed) {
		return domain.Interval{}, fmt.Errorf("%w: %s-%s not within %s-%s", ErrOutsideHours,
			proposed.StartTime(), proposed.EndTime(), window.StartTime(), window.EndTime())
	}

	busy, err := s.busyIntervals(existing, false)
	if err != nil {
		return domain.Interval{}, err
	}

	for _, b := range busy {
		if domain.Overlaps(proposed, b) {
			return domain.Interval{}, fmt.Errorf("%w: %s-%s overlaps %s-%s", ErrConflict,
				proposed.StartTime(), proposed.EndTime(), b.StartTime(), b.EndTime())
		}
	}

	return proposed, nil
}

// busyIntervals переводит активные термины в интервалы
// legacy=true разрешает термины без времени окончания (интервал нулевой длины)
func (s *Scheduler) busyIntervals(existing []*domain.Appointment, legacy bool) ([]domain.Interval, error) {
	busy := make([]domain.Interval, 0, len(existing))

	for _, ap := range existing {
		if ap == nil || !ap.IsActive() {
			continue
		}

		start, err := ap.StartTime.On(ap.Date, s.location)
		if err != nil {
			return nil, fmt.Errorf("%w: id=%d start=%q", ErrCorruptBooking, ap.ID, ap.StartTime)
		}

		end := start
		switch {
		case ap.HasEndTime():
			end, err = ap.EndTime.On(ap.Date, s.location)
			if err != nil {
				return nil, fmt.Errorf("%w: id=%d end=%q", ErrCorruptBooking, ap.ID, *ap.EndTime)
			}
		case !legacy:
			return nil, fmt.Errorf("%w: id=%d", ErrIncompleteBooking, ap.ID)
		}

		busy = append(busy, domain.Interval{Start: start, End: end})
	}

	return busy, nil
}
