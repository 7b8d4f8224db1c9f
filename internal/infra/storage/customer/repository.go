package customer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/pgerrors"
	"github.com/m04kA/SMC-AgendaService/pkg/psqlbuilder"
)

var customerColumns = []string{"id", "tenant_id", "phone", "name", "visits"}

// Repository репозиторий клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByPhone ищет клиента тенанта по телефону
// В транзакции строка блокируется (FOR UPDATE) до инкремента визитов
func (r *Repository) GetByPhone(ctx context.Context, tenantID, phone string) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(customerColumns...).
		From("customers").
		Where(squirrel.Eq{"tenant_id": tenantID, "phone": phone})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - build select query: %v", ErrBuildQuery, err)
	}

	var customer domain.Customer
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&customer.ID,
		&customer.TenantID,
		&customer.Phone,
		&customer.Name,
		&customer.Visits,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - scan customer: %w", ErrScanRow, err)
	}

	return &customer, nil
}

// GetByIDs получает клиентов тенанта по списку id
func (r *Repository) GetByIDs(ctx context.Context, tenantID string, ids []int64) (map[int64]*domain.Customer, error) {
	result := make(map[int64]*domain.Customer, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(customerColumns...).
		From("customers").
		Where(squirrel.Eq{"tenant_id": tenantID, "id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var customer domain.Customer
		if err := rows.Scan(
			&customer.ID,
			&customer.TenantID,
			&customer.Phone,
			&customer.Name,
			&customer.Visits,
		); err != nil {
			return nil, fmt.Errorf("%w: GetByIDs - scan row: %w", ErrScanRow, err)
		}
		result[customer.ID] = &customer
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - rows error: %w", ErrScanRow, err)
	}

	return result, nil
}

// Create создает клиента с заданным счетчиком визитов
func (r *Repository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("customers").
		Columns("tenant_id", "phone", "name", "visits").
		Values(customer.TenantID, customer.Phone, customer.Name, customer.Visits).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&customer.ID)
	if pgerrors.Is(err, pgerrors.UniqueViolation) {
		return nil, ErrCustomerAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return customer, nil
}

// IncrementVisits увеличивает счетчик визитов на 1 и возвращает новое значение
func (r *Repository) IncrementVisits(ctx context.Context, tenantID string, id int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("customers").
		Set("visits", squirrel.Expr("visits + 1")).
		Where(squirrel.Eq{"tenant_id": tenantID, "id": id}).
		Suffix("RETURNING visits").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: IncrementVisits - build update query: %v", ErrBuildQuery, err)
	}

	var visits int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&visits)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrCustomerNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: IncrementVisits - execute update: %w", ErrExecQuery, err)
	}

	return visits, nil
}
