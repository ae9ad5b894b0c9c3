package httpadapter

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"launchpad/internal/core/port"
)

// Handler is the inbound HTTP adapter. It holds the SaleUseCase port, a
// structured logger and a request validator, and resolves the caller's
// identity from the admin bearer token for the operations that require the
// platform administrator.
type Handler struct {
	svc      port.SaleUseCase
	logger   *slog.Logger
	validate *validator.Validate

	adminToken   string
	adminAddress string

	router chi.Router
}

// NewHandler creates a handler with all routes configured. adminToken is the
// shared secret that identifies the platform administrator; adminAddress is
// the identity it resolves to.
func NewHandler(svc port.SaleUseCase, logger *slog.Logger, adminToken, adminAddress string) *Handler {
	h := &Handler{
		svc:          svc,
		logger:       logger,
		validate:     validator.New(),
		adminToken:   adminToken,
		adminAddress: adminAddress,
	}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/campaigns", h.handleCreateCampaign)
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Get("/campaigns/{id}/participants/{address}", h.handleGetParticipant)
		r.Post("/campaigns/{id}/contributions", h.handleContribute)
		r.Post("/campaigns/{id}/claims/tokens", h.handleClaimTokens)
		r.Post("/campaigns/{id}/claims/refund", h.handleClaimRefund)
		r.Post("/campaigns/{id}/claims/funds", h.handleClaimFunds)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// caller resolves the request's identity. A valid admin bearer token maps to
// the administrator identity; anything else is an anonymous caller that the
// usecase will reject for admin-only operations.
func (h *Handler) caller(r *http.Request) string {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if token != "" && token == h.adminToken {
		return h.adminAddress
	}
	return ""
}
