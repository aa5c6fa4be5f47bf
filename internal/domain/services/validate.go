package services

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"zrpg/internal/domain"
)

// atLeast validates an optional *int field against a lower bound. Threshold
// rules like validation.Min skip "empty" values, which includes a pointer at
// the type's zero value, so a present 0 would slip past Min(1). This rule
// only skips absent fields.
func atLeast(floor int) validation.Rule {
	return validation.By(func(value any) error {
		n, ok := value.(*int)
		if !ok || n == nil {
			return nil
		}
		if *n < floor {
			return fmt.Errorf("must be no less than %d", floor)
		}
		return nil
	})
}

// firstFieldError converts an ozzo validation result into a
// *domain.FieldError for the first failing field in the given order.
// Clients depend on deterministic error ordering, so the declared field
// order wins over ozzo's alphabetical map iteration.
func firstFieldError(err error, order ...string) error {
	if err == nil {
		return nil
	}

	var errs validation.Errors
	if errors.As(err, &errs) {
		for _, field := range order {
			if fieldErr, ok := errs[field]; ok {
				return &domain.FieldError{Field: field, Reason: fieldErr.Error()}
			}
		}
	}

	return err
}
