package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/pgerrors"
	"github.com/m04kA/SMC-AgendaService/pkg/psqlbuilder"
)

var appointmentColumns = []string{
	"id",
	"tenant_id",
	"customer_id",
	"service_id",
	"date",
	"start_time",
	"end_time",
	"blocks",
	"created_at",
}

// Repository репозиторий записей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// LockDay берет транзакционную advisory-блокировку на пару (тенант, дата).
// Блокировка снимается при commit/rollback. Вне транзакции возвращает ErrTransaction.
//
// Нужна потому, что FOR UPDATE не блокирует пустой день: две первые записи на дату
// иначе не видят друг друга.
func (r *Repository) LockDay(ctx context.Context, tenantID string, date time.Time) error {
	tx, ok := dbmetrics.TxFromContext(ctx)
	if !ok {
		return fmt.Errorf("%w: LockDay", ErrTransaction)
	}

	key := tenantID + ":" + date.Format(domain.DateFormat)
	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", key); err != nil {
		return fmt.Errorf("%w: LockDay - acquire advisory lock: %w", ErrExecQuery, err)
	}

	return nil
}

// Create создает запись
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"tenant_id",
			"customer_id",
			"service_id",
			"date",
			"start_time",
			"end_time",
			"blocks",
		).
		Values(
			appointment.TenantID,
			appointment.CustomerID,
			appointment.ServiceID,
			appointment.Date,
			appointment.StartTime,
			appointment.EndTime,
			appointment.Blocks,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&appointment.ID, &appointment.CreatedAt)
	if pgerrors.Is(err, pgerrors.ExclusionViolation) {
		return nil, ErrTimeConflict
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return appointment, nil
}

// GetByTenantAndDate получает записи тенанта на дату, отсортированные по времени начала.
// Если в контексте активная транзакция, строки блокируются (FOR UPDATE).
func (r *Repository) GetByTenantAndDate(ctx context.Context, tenantID string, date time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"tenant_id": tenantID, "date": date}).
		OrderBy("start_time ASC", "id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenantAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenantAndDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// GetByTenantWithFilter получает записи тенанта с датой в [From, To),
// отсортированные по дате, времени начала и id
//
// Примеры использования:
//
//  1. Записи на день:
//     filter := domain.AppointmentsFilter{TenantID: "divasspa", From: day, To: day.AddDate(0, 0, 1)}
//
//  2. Записи за месяц:
//     r := types.MonthRange(month)
//     filter := domain.AppointmentsFilter{TenantID: "divasspa", From: r.From, To: r.To}
func (r *Repository) GetByTenantWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"tenant_id": filter.TenantID}).
		Where(squirrel.GtOrEq{"date": filter.From}).
		Where(squirrel.Lt{"date": filter.To}).
		OrderBy("date ASC", "start_time ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenantWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenantWithFilter - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appointment domain.Appointment
		if err := rows.Scan(
			&appointment.ID,
			&appointment.TenantID,
			&appointment.CustomerID,
			&appointment.ServiceID,
			&appointment.Date,
			&appointment.StartTime,
			&appointment.EndTime,
			&appointment.Blocks,
			&appointment.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %w", ErrScanRow, err)
		}
		appointments = append(appointments, &appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %w", ErrScanRow, err)
	}

	return appointments, nil
}
