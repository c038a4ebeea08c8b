package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/psqlbuilder"
)

const table = "appointments"

var columns = []string{
	"id",
	"service",
	"duration_minutes",
	"appointment_date",
	"start_time",
	"end_time",
	"name",
	"phone",
	"email",
	"notes",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий терминов в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория терминов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// LockDate берет транзакционную advisory-блокировку на дату
// Все создания терминов на одну дату выполняются последовательно до конца транзакции;
// другие даты не блокируются. Вне транзакции возвращает ErrLockRequiresTx
func (r *Repository) LockDate(ctx context.Context, date string) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return ErrLockRequiresTx
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select().
		Column(squirrel.Expr("pg_advisory_xact_lock(hashtext(?))", table+":"+date)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: LockDate - build lock query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: LockDate - acquire lock for %s: %v", ErrExecQuery, date, err)
	}

	return nil
}

// Create сохраняет новый термин
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, ap *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"service",
			"duration_minutes",
			"appointment_date",
			"start_time",
			"end_time",
			"name",
			"phone",
			"email",
			"notes",
			"status",
		).
		Values(
			ap.Service,
			ap.DurationMinutes,
			ap.Date.Format(domain.DateFormat),
			ap.StartTime,
			ap.EndTime,
			ap.Name,
			ap.Phone,
			ap.Email,
			ap.Notes,
			ap.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&ap.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	ap.CreatedAt = createdAt.Time
	ap.UpdatedAt = updatedAt.Time

	return ap, nil
}

// GetByID получает термин по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	ap, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return ap, nil
}

// GetByDate получает термины на дату, отсортированные по времени начала
// По умолчанию возвращает только активные термины (отмененные не занимают время)
func (r *Repository) GetByDate(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"appointment_date": filter.Date.Format(domain.DateFormat)})

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactive})
	}

	query, args, err := selectBuilder.OrderBy("start_time ASC", "id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		ap, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByDate - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, ap)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByDate - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var ap domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&ap.ID,
		&ap.Service,
		&ap.DurationMinutes,
		&ap.Date,
		&ap.StartTime,
		&ap.EndTime,
		&ap.Name,
		&ap.Phone,
		&ap.Email,
		&ap.Notes,
		&ap.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	ap.CreatedAt = createdAt.Time
	ap.UpdatedAt = updatedAt.Time

	return &ap, nil
}
