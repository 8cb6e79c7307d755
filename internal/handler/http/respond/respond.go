// Package respond provides utilities for sending HTTP responses in JSON
// format. Error responses are sanitized so internal details never reach
// clients.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers are already sent; all we can do is log.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes a JSON error response with the given status code and error
// message.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, map[string]string{"error": err.Error()})
}

// safeFragments marks error messages that are fit for clients, typically
// validation failures.
var safeFragments = []string{
	"required",
	"invalid",
	"not found",
	"already exists",
	"must be",
	"must not",
	"cannot be",
	"too long",
	"unavailable",
}

// SafeError sanitizes error messages before returning them to clients.
// Validation-style errors pass through; anything else is logged and
// replaced with a generic message. 5xx responses are always generic.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	msg := err.Error()
	isSafe := false
	lowerMsg := strings.ToLower(msg)
	for _, safe := range safeFragments {
		if strings.Contains(lowerMsg, safe) {
			isSafe = true
			break
		}
	}
	if code >= http.StatusInternalServerError {
		isSafe = false
	}

	if isSafe {
		JSON(w, code, map[string]string{"error": msg})
		return
	}

	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.Any("error", err))
	JSON(w, code, map[string]string{"error": "internal server error"})
}
