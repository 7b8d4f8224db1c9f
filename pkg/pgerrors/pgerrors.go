package pgerrors

import (
	"errors"

	"github.com/lib/pq"
)

// SQLSTATE коды, которые различают репозитории
const (
	UniqueViolation     pq.ErrorCode = "23505"
	ForeignKeyViolation pq.ErrorCode = "23503"
	ExclusionViolation  pq.ErrorCode = "23P01"

	SerializationFailure pq.ErrorCode = "40001"
	DeadlockDetected     pq.ErrorCode = "40P01"
)

// Is проверяет, что err (или любая обёрнутая ошибка) это *pq.Error с кодом code
func Is(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == code
	}
	return false
}

// IsRetryable ошибка конкурентного доступа, после которой транзакцию можно повторить целиком
func IsRetryable(err error) bool {
	return Is(err, SerializationFailure) || Is(err, DeadlockDetected)
}
