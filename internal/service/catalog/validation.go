package catalog

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name", ErrMissingField)
	}
	if len(name) > domain.MaxNameLength {
		return "", fmt.Errorf("%w: name is longer than %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	return name, nil
}

func validateDuration(minutes int) error {
	if minutes <= 0 || minutes > domain.MaxServiceDuration {
		return fmt.Errorf("%w: durationMinutes must be in 1..%d", ErrInvalidInput, domain.MaxServiceDuration)
	}
	return nil
}

func validatePrice(price int) error {
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	return nil
}
