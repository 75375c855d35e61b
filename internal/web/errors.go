package web

// errors.go maps failures to JSON error bodies. The technical error is
// logged with the request id; the client receives the coded user message
// from core.MapError.

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/JonMunkholm/shopseed/internal/core"
	"github.com/JonMunkholm/shopseed/internal/logging"
)

// ErrorResponse represents the JSON structure for API error responses.
// Includes both machine-readable (Code) and human-readable (Message, Action) fields.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
}

// respondError logs err and writes its user-facing form.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	userMsg := core.MapError(err)
	status := statusFor(userMsg.Code)

	level := slog.LevelWarn
	if !core.IsUserFacing(err) {
		level = slog.LevelError
	}
	logging.FromContext(r.Context()).Log(r.Context(), level, "request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"error", err.Error(),
		"code", userMsg.Code,
	)

	writeJSON(w, status, ErrorResponse{
		Error:   userMsg.Message,
		Message: userMsg.Message,
		Action:  userMsg.Action,
		Code:    userMsg.Code,
	})
}

// statusFor picks the HTTP status for an error code.
func statusFor(code string) int {
	switch {
	case code == "TBL001" || code == "LOAD002":
		return http.StatusNotFound
	case code == "LOAD003":
		return http.StatusGatewayTimeout
	case code == "DB004" || code == "DB005" || code == "DB006" || code == "DB007":
		return http.StatusServiceUnavailable
	case strings.HasPrefix(code, "VAL"):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
