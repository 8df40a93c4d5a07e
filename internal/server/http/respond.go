package httpserver

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/vkazmin/blogcore/internal/errs"
)

// envelope is the only shape that crosses the HTTP boundary.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Token   string          `json:"token,omitempty"`
	Count   *int            `json:"count,omitempty"`
	Data    any             `json:"data,omitempty"`
	Errors  []fieldErrorDTO `json:"errors,omitempty"`
}

type fieldErrorDTO struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusFor is the fixed kind→status table. Exhaustive: every kind the
// system can produce has exactly one row here.
func statusFor(k errs.Kind) int {
	switch k {
	case errs.Validation, errs.DuplicateKey:
		return http.StatusBadRequest
	case errs.InvalidCredentials, errs.MissingToken, errs.InvalidToken, errs.Expired, errs.StaleIdentity:
		return http.StatusUnauthorized
	case errs.Forbidden:
		return http.StatusForbidden
	case errs.NotFound:
		return http.StatusNotFound
	case errs.RateLimited:
		return http.StatusTooManyRequests
	case errs.Unhandled:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// writeError normalizes any failure into the external envelope. Internal
// detail (causes, store codes, stacks) goes to the log, never to the body.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	e := errs.From(err)
	if e == nil || e.Kind == errs.Unhandled {
		s.log.Error("request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, envelope{Message: "Internal Server Error"})
		return
	}

	resp := envelope{Message: e.Message}
	for _, fe := range e.Fields {
		resp.Errors = append(resp.Errors, fieldErrorDTO{Field: fe.Field, Message: fe.Message})
	}
	writeJSON(w, statusFor(e.Kind), resp)
}

// decodeJSON parses a request body, mapping malformed JSON to Validation.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errs.Wrap(err, errs.Validation, "Invalid JSON body")
	}
	return nil
}

func count(n int) *int { return &n }
