package httpadapter

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"launchpad/internal/core/port"
)

// handleCreateCampaign creates a new campaign. Requires the admin bearer
// token; validation and the custody solvency check happen in the usecase.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if !h.decode(w, r, &req) {
		return
	}
	c, err := h.svc.CreateCampaign(r.Context(), h.caller(r), port.CreateCampaignReq{
		SaleToken:     req.SaleToken,
		Price:         req.Price,
		TokenDecimals: req.TokenDecimals,
		MinGoal:       req.MinGoal,
		MaxCap:        req.MaxCap,
		Duration:      time.Duration(req.DurationSecs) * time.Second,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusCreated, toCampaignResponse(c))
}

// handleListCampaigns returns every campaign, oldest first.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	out := make([]campaignResponse, 0, len(campaigns))
	for i := range campaigns {
		out = append(out, toCampaignResponse(&campaigns[i]))
	}
	h.respond(w, http.StatusOK, out)
}

// handleGetCampaign returns a campaign by id, 404 for ids never created.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	c, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	if c == nil {
		http.NotFound(w, r)
		return
	}
	h.respond(w, http.StatusOK, toCampaignResponse(c))
}

// handleGetParticipant returns the participant record, zero-valued for an
// address that never contributed.
func (h *Handler) handleGetParticipant(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	address := chi.URLParam(r, "address")
	p, err := h.svc.GetParticipant(r.Context(), id, address)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, participantResponse{
		CampaignID:   p.CampaignID,
		Address:      p.Address,
		Contribution: p.Contribution,
		Claimed:      p.Claimed,
	})
}

func (h *Handler) campaignID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
