package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"zrpg/internal/domain"
	"zrpg/internal/httputil"
)

// respondServiceError maps a service failure to an HTTP response. Domain
// errors carry their own status; everything else is an opaque
// infrastructure failure logged server-side and reported as a 500 without
// leaking details.
func respondServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var httpErr domain.HTTPError
	if errors.As(err, &httpErr) {
		httputil.RespondError(w, httpErr.StatusCode(), httpErr.Error())
		return
	}

	logger.Error("unexpected error",
		"error", err,
		"path", r.URL.Path,
		"method", r.Method,
	)
	httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
}

// respondParseError maps a request-body decoding failure to a 400. Field
// type mismatches arrive as domain.FieldError and keep their message;
// anything else (malformed JSON, oversized body) gets a generic one.
func respondParseError(w http.ResponseWriter, err error) {
	var httpErr domain.HTTPError
	if errors.As(err, &httpErr) {
		httputil.RespondError(w, httpErr.StatusCode(), httpErr.Error())
		return
	}

	httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
}
