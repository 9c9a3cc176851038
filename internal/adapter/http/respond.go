package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"jobboard-ads/internal/core/domain"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg, field string) {
	writeJSON(w, status, errorResponse{Error: msg, Field: field})
}

// fail maps a usecase error onto a status code. Unknown errors are logged
// and reported as 500 without detail.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	var (
		vErr     *domain.ValidationError
		pErr     *domain.ParseError
		rErr     *domain.InvalidRangeError
		tErr     *domain.InvalidTransitionError
		fieldErr validator.ValidationErrors
	)
	switch {
	case errors.As(err, &vErr):
		writeError(w, http.StatusBadRequest, vErr.Error(), vErr.Field)
	case errors.As(err, &fieldErr) && len(fieldErr) > 0:
		fe := fieldErr[0]
		writeError(w, http.StatusBadRequest, fe.Field()+": failed "+fe.Tag()+" check", fe.Field())
	case errors.As(err, &pErr), errors.As(err, &rErr):
		writeError(w, http.StatusBadRequest, err.Error(), "")
	case errors.As(err, &tErr):
		writeError(w, http.StatusConflict, tErr.Error(), "status")
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusNotFound, domain.ErrNotFound.Error(), "")
	case errors.Is(err, domain.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, err.Error(), "")
	default:
		h.logger.Error(op+" error",
			slog.Any("error", err),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, "internal error", "")
	}
}
