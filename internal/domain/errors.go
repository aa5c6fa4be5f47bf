package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
// Implementing this interface lets the handler layer pick a status without
// inspecting error strings.
type HTTPError interface {
	error
	StatusCode() int
}

// Sentinel errors - use with errors.Is()
var (
	ErrInvalidID  = errors.New("invalid id")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("already exists")
	ErrNotFound   = errors.New("not found")
)

// InvalidIDError indicates a malformed object identifier was supplied
// where a store ID was expected.
type InvalidIDError struct {
	ID string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid object ID, please give a valid 24-character hex ID, received %q", e.ID)
}

func (e *InvalidIDError) StatusCode() int { return http.StatusBadRequest }

func (e *InvalidIDError) Is(target error) bool { return target == ErrInvalidID }

// FieldError indicates a payload failed a shape/type/presence rule.
// Field names the offending field using its JSON name.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

func (e *FieldError) StatusCode() int { return http.StatusBadRequest }

func (e *FieldError) Is(target error) bool { return target == ErrValidation }

// DuplicateKeyError indicates a natural key (encounter title, weapon name)
// collides with an existing, different record.
type DuplicateKeyError struct {
	Resource string // "encounter", "weapon"
	Field    string // "title", "name"
	Key      string // the offending value
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s %s with the %s %q already exists", article(e.Resource), e.Resource, e.Field, e.Key)
}

// StatusCode maps duplicate keys to 400 rather than 409: the API treats a
// colliding natural key as a client-side validation failure.
func (e *DuplicateKeyError) StatusCode() int { return http.StatusBadRequest }

func (e *DuplicateKeyError) Is(target error) bool { return target == ErrConflict }

// NotFoundError indicates a syntactically valid ID with no matching record.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("item with ID %q not found", e.ID)
}

func (e *NotFoundError) StatusCode() int { return http.StatusNotFound }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func article(noun string) string {
	if noun == "" {
		return "a"
	}
	switch noun[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an"
	}
	return "a"
}
