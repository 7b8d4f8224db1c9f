package tenant

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/pgerrors"
	"github.com/m04kA/SMC-AgendaService/pkg/psqlbuilder"
)

var tenantColumns = []string{
	"id",
	"name",
	"domain",
	"phone",
	"address",
	"hours_start_week",
	"hours_end_week",
	"hours_start_sat",
	"hours_end_sat",
	"working_days",
	"created_at",
}

// Repository репозиторий для работы с тенантами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория тенантов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает тенанта по slug
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByDomain получает тенанта по полному домену (например, divasspa.demoagenda.shop)
func (r *Repository) GetByDomain(ctx context.Context, host string) (*domain.Tenant, error) {
	return r.getOne(ctx, "GetByDomain", squirrel.Eq{"domain": host})
}

// Create создает тенанта. Бизнес-часы и рабочие дни не заполняются: действуют значения по умолчанию.
func (r *Repository) Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tenants").
		Columns("id", "name", "domain", "phone", "address").
		Values(tenant.ID, tenant.Name, tenant.Domain, tenant.Phone, tenant.Address).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&tenant.CreatedAt)
	if pgerrors.Is(err, pgerrors.UniqueViolation) {
		return nil, ErrTenantAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return tenant, nil
}

// UpdateSettings перезаписывает название, телефон, бизнес-часы и рабочие дни тенанта
func (r *Repository) UpdateSettings(ctx context.Context, tenant *domain.Tenant) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tenants").
		Set("name", tenant.Name).
		Set("phone", tenant.Phone).
		Set("hours_start_week", tenant.HoursStartWeek).
		Set("hours_end_week", tenant.HoursEndWeek).
		Set("hours_start_sat", tenant.HoursStartSat).
		Set("hours_end_sat", tenant.HoursEndSat).
		Set("working_days", workingDaysValue(tenant.WorkingDays)).
		Where(squirrel.Eq{"id": tenant.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateSettings - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateSettings - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateSettings - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTenantNotFound
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.Tenant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(tenantColumns...).
		From("tenants").
		Where(where)

	// В транзакции (обновление настроек) строка блокируется до commit
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var tenant domain.Tenant
	var workingDays pq.Int64Array

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tenant.ID,
		&tenant.Name,
		&tenant.Domain,
		&tenant.Phone,
		&tenant.Address,
		&tenant.HoursStartWeek,
		&tenant.HoursEndWeek,
		&tenant.HoursStartSat,
		&tenant.HoursEndSat,
		&workingDays,
		&tenant.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTenantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan tenant: %w", ErrScanRow, op, err)
	}

	tenant.WorkingDays = make([]int, 0, len(workingDays))
	for _, d := range workingDays {
		tenant.WorkingDays = append(tenant.WorkingDays, int(d))
	}

	return &tenant, nil
}

// workingDaysValue пустой список хранится как NULL
func workingDaysValue(days []int) interface{} {
	if len(days) == 0 {
		return nil
	}
	arr := make(pq.Int64Array, 0, len(days))
	for _, d := range days {
		arr = append(arr, int64(d))
	}
	return arr
}
