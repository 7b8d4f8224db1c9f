package customer

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
)

func newMock(t *testing.T) (*Repository, *sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), db, mock
}

func TestGetByPhone(t *testing.T) {
	repo, _, mock := newMock(t)

	rows := sqlmock.NewRows(customerColumns).AddRow(int64(3), "divasspa", "5551234", "Ana", 2)
	mock.ExpectQuery(regexp.QuoteMeta("FROM customers WHERE phone = $1 AND tenant_id = $2")).
		WithArgs("5551234", "divasspa").
		WillReturnRows(rows)

	customer, err := repo.GetByPhone(context.Background(), "divasspa", "5551234")
	require.NoError(t, err)
	assert.Equal(t, int64(3), customer.ID)
	assert.Equal(t, 2, customer.Visits)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByPhone_LocksInTransaction(t *testing.T) {
	repo, db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM customers WHERE phone = $1 AND tenant_id = $2 FOR UPDATE")).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	wrapped := dbmetrics.Wrap(db, nil)
	tx, err := wrapped.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	_, err = repo.GetByPhone(dbmetrics.WithTx(context.Background(), tx), "divasspa", "000")
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Duplicate(t *testing.T) {
	repo, _, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO customers")).
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), &domain.Customer{TenantID: "divasspa", Phone: "1", Name: "Ana"})
	assert.ErrorIs(t, err, ErrCustomerAlreadyExists)
}

func TestIncrementVisits(t *testing.T) {
	repo, _, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE customers SET visits = visits + 1 WHERE id = $1 AND tenant_id = $2 RETURNING visits")).
		WithArgs(int64(3), "divasspa").
		WillReturnRows(sqlmock.NewRows([]string{"visits"}).AddRow(3))

	visits, err := repo.IncrementVisits(context.Background(), "divasspa", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, visits)
}

func TestGetByIDs(t *testing.T) {
	repo, _, mock := newMock(t)

	rows := sqlmock.NewRows(customerColumns).
		AddRow(int64(1), "divasspa", "1", "Ana", 1).
		AddRow(int64(2), "divasspa", "2", "Bea", 4)
	mock.ExpectQuery(regexp.QuoteMeta("FROM customers WHERE id IN ($1,$2) AND tenant_id = $3")).
		WithArgs(int64(1), int64(2), "divasspa").
		WillReturnRows(rows)

	result, err := repo.GetByIDs(context.Background(), "divasspa", []int64{1, 2})
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Bea", result[2].Name)
}
