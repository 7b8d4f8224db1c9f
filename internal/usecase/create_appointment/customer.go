package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	customerRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/customer"
)

// customerResolution результат поиска клиента по телефону
type customerResolution int

const (
	customerExisting customerResolution = iota
	// customerCreated клиента нет, будет создан вместе с записью
	customerCreated
	// customerNeedsName клиента нет и имя не передано
	customerNeedsName
)

func (r customerResolution) String() string {
	switch r {
	case customerExisting:
		return "existing"
	case customerCreated:
		return "created"
	case customerNeedsName:
		return "needs_name"
	default:
		return "unknown"
	}
}

// resolveCustomer находит клиента тенанта по телефону.
// Новый клиент не сохраняется: его создает Execute после проверки пересечений.
func (uc *UseCase) resolveCustomer(ctx context.Context, tenantID, phone, name string) (*domain.Customer, customerResolution, error) {
	customer, err := uc.customerRepo.GetByPhone(ctx, tenantID, phone)
	if err == nil {
		return customer, customerExisting, nil
	}
	if !errors.Is(err, customerRepo.ErrCustomerNotFound) {
		return nil, 0, fmt.Errorf("%w: failed to get customer: %w", ErrInternal, err)
	}

	if name == "" {
		return nil, customerNeedsName, nil
	}

	return &domain.Customer{
		TenantID: tenantID,
		Phone:    phone,
		Name:     name,
		Visits:   0,
	}, customerCreated, nil
}
