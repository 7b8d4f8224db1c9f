package appointment

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

func newMock(t *testing.T) (*Repository, *sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), db, mock
}

func inTx(t *testing.T, db *sql.DB, mock sqlmock.Sqlmock) (context.Context, dbmetrics.TxExecutor) {
	t.Helper()
	mock.ExpectBegin()
	tx, err := dbmetrics.Wrap(db, nil).BeginTx(context.Background(), nil)
	require.NoError(t, err)
	return dbmetrics.WithTx(context.Background(), tx), tx
}

var day = time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)

func TestLockDay_RequiresTransaction(t *testing.T) {
	repo, _, _ := newMock(t)

	err := repo.LockDay(context.Background(), "divasspa", day)
	assert.ErrorIs(t, err, ErrTransaction)
}

func TestLockDay(t *testing.T) {
	repo, db, mock := newMock(t)
	ctx, tx := inTx(t, db, mock)

	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock(hashtext($1))")).
		WithArgs("divasspa:2025-10-06").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, repo.LockDay(ctx, "divasspa", day))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ExclusionViolation(t *testing.T) {
	repo, _, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
		WillReturnError(&pq.Error{Code: "23P01"})

	_, err := repo.Create(context.Background(), &domain.Appointment{
		TenantID: "divasspa", Date: day, StartTime: "10:00", EndTime: "10:30", Blocks: 6,
	})
	assert.ErrorIs(t, err, ErrTimeConflict)
}

func TestCreate(t *testing.T) {
	repo, _, mock := newMock(t)
	created := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
		WithArgs("divasspa", int64(1), int64(2), day, "10:00", "10:30", 6).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), created))

	appointment, err := repo.Create(context.Background(), &domain.Appointment{
		TenantID: "divasspa", CustomerID: 1, ServiceID: 2, Date: day,
		StartTime: "10:00", EndTime: "10:30", Blocks: 6,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), appointment.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByTenantAndDate_ForUpdateInTransaction(t *testing.T) {
	repo, db, mock := newMock(t)
	ctx, tx := inTx(t, db, mock)

	rows := sqlmock.NewRows(appointmentColumns).
		AddRow(int64(1), "divasspa", int64(1), int64(2), day, "10:00:00", "10:30:00", 6, day)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY start_time ASC, id ASC FOR UPDATE")).
		WithArgs(day, "divasspa").
		WillReturnRows(rows)
	mock.ExpectRollback()

	appointments, err := repo.GetByTenantAndDate(ctx, "divasspa", day)
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, types.TimeString("10:30"), appointments[0].EndTime)

	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByTenantWithFilter(t *testing.T) {
	repo, _, mock := newMock(t)
	to := day.AddDate(0, 0, 7)

	rows := sqlmock.NewRows(appointmentColumns).
		AddRow(int64(1), "divasspa", int64(1), int64(2), day, "10:00:00", "10:30:00", 6, day).
		AddRow(int64(2), "divasspa", int64(1), int64(2), day.AddDate(0, 0, 1), "09:00:00", "09:45:00", 9, day)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE tenant_id = $1 AND date >= $2 AND date < $3 ORDER BY date ASC, start_time ASC, id ASC")).
		WithArgs("divasspa", day, to).
		WillReturnRows(rows)

	appointments, err := repo.GetByTenantWithFilter(context.Background(), domain.AppointmentsFilter{
		TenantID: "divasspa", From: day, To: to,
	})
	require.NoError(t, err)
	require.Len(t, appointments, 2)
	assert.Equal(t, 9, appointments[1].Blocks)
}
