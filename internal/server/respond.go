package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/cardpress/pkg/errors"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Code           errors.Code `json:"code"`
	Message        string      `json:"message"`
	Field          string      `json:"field,omitempty"`
	ExistingGameID int64       `json:"existingGameId,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps an error to its HTTP status and JSON body.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	body := errorBody{
		Code:    errors.GetCode(err),
		Message: errors.UserMessage(err),
		Field:   errors.GetField(err),
	}
	if dup, ok := errors.AsDuplicateTitle(err); ok {
		body.Code = dup.Code()
		body.ExistingGameID = dup.ExistingGameID
	}
	if body.Code == "" {
		body.Code = errors.ErrCodeInternal
	}

	status := statusFor(body.Code)
	if status >= 500 {
		s.logger.Error("request failed", "code", body.Code, "err", err)
	}
	writeJSON(w, status, body)
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidAttributes,
		errors.ErrCodeInvalidDesign, errors.ErrCodeInvalidUpload:
		return http.StatusBadRequest
	case errors.ErrCodeDuplicateTitle:
		return http.StatusConflict
	case errors.ErrCodeNotFound, errors.ErrCodeGameNotFound, errors.ErrCodeCardNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUpstream:
		return http.StatusBadGateway
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case errors.ErrCodeUnsupported:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// idParam parses the {id} route parameter.
func idParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewField(errors.ErrCodeInvalidInput, "id", "invalid id %q", raw)
	}
	return id, nil
}

// decodeJSON reads a JSON request body into v with unknown fields allowed,
// matching what browser clients send.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20)).Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body")
	}
	return nil
}
