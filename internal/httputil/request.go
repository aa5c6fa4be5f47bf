package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"zrpg/internal/domain"
)

// maxBodySize limits request bodies to 1MB. Payloads here are small JSON
// documents; anything bigger is abuse.
const maxBodySize = 1 << 20

// ParseJSON decodes JSON from the request body into the given destination.
// A type mismatch on a known field (e.g. numberOfRuns submitted as a
// string) is surfaced as a *domain.FieldError naming the field - values
// are rejected, never coerced.
func ParseJSON(w http.ResponseWriter, r *http.Request, dest any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return &domain.FieldError{
				Field:  typeErr.Field,
				Reason: fmt.Sprintf("must be of type %s", typeErr.Type),
			}
		}
		return fmt.Errorf("invalid JSON: %w", err)
	}

	return nil
}
