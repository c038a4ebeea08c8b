package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/storage/appointment"
)

// Repository хранилище терминов в памяти процесса
// Используется для локального запуска и тестов; данные теряются при перезапуске
type Repository struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]*domain.Appointment
	byDate map[string][]int64
	now    func() time.Time
}

// NewRepository создает пустое хранилище
func NewRepository() *Repository {
	return &Repository{
		nextID: 1,
		byID:   make(map[int64]*domain.Appointment),
		byDate: make(map[string][]int64),
		now:    time.Now,
	}
}

// LockDate ничего не делает: создания сериализует txmanager.LocalManager
func (r *Repository) LockDate(ctx context.Context, date string) error {
	return ctx.Err()
}

// Create сохраняет копию термина и присваивает ему ID
func (r *Repository) Create(ctx context.Context, ap *domain.Appointment) (*domain.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	ap.ID = r.nextID
	ap.CreatedAt = now
	ap.UpdatedAt = now
	r.nextID++

	stored := clone(ap)
	r.byID[stored.ID] = stored
	key := stored.Date.Format(domain.DateFormat)
	r.byDate[key] = append(r.byDate[key], stored.ID)

	return ap, nil
}

// GetByID возвращает копию термина
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ap, ok := r.byID[id]
	if !ok {
		return nil, appointment.ErrAppointmentNotFound
	}
	return clone(ap), nil
}

// GetByDate возвращает термины на дату в порядке времени начала
func (r *Repository) GetByDate(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byDate[filter.Date.Format(domain.DateFormat)]
	result := make([]*domain.Appointment, 0, len(ids))
	for _, id := range ids {
		ap := r.byID[id]
		switch {
		case filter.Status != nil && ap.Status != *filter.Status:
			continue
		case filter.Status == nil && !filter.IncludeInactive && !ap.IsActive():
			continue
		}
		result = append(result, clone(ap))
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].StartTime != result[j].StartTime {
			return result[i].StartTime.IsBefore(result[j].StartTime)
		}
		return result[i].ID < result[j].ID
	})

	return result, nil
}

func clone(ap *domain.Appointment) *domain.Appointment {
	c := *ap
	if ap.EndTime != nil {
		end := *ap.EndTime
		c.EndTime = &end
	}
	if ap.Email != nil {
		email := *ap.Email
		c.Email = &email
	}
	if ap.Notes != nil {
		notes := *ap.Notes
		c.Notes = &notes
	}
	return &c
}
