package httpadapter

import (
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"jobboard-ads/internal/core/domain"
	"jobboard-ads/internal/core/port"
)

// TokenValidator resolves a bearer credential into the caller it
// identifies.
type TokenValidator interface {
	Validate(token string) (domain.Principal, error)
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP serving the campaign API under /api/v1. Every API route requires a
// bearer token; /healthz and /metrics do not.
type Handler struct {
	svc      port.CampaignUseCase
	tokens   TokenValidator
	validate *validator.Validate
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.CampaignUseCase, tokens TokenValidator, logger *slog.Logger) *Handler {
	h := &Handler{
		svc:      svc,
		tokens:   tokens,
		validate: newValidator(),
		logger:   logger,
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(h.recoverer)
	r.Use(instrument)

	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.authenticate)
		r.Post("/campaigns", h.handleCreateCampaign)
		r.Get("/campaigns/mine", h.handleListMine)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Put("/campaigns/{id}/status", h.handleUpdateStatus)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// newValidator reports fields by their JSON names so error bodies match
// the request payload.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
