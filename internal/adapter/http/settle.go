package httpadapter

import "net/http"

// handleContribute records a contribution for the campaign in the URL.
// Window and cap enforcement happen atomically in the settlement engine; a
// 409 response means the caller may retry with a smaller amount or not at
// all, depending on the error.
func (h *Handler) handleContribute(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	var req contributeRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.svc.Contribute(r.Context(), id, req.Participant, req.Amount); err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, map[string]any{
		"campaign_id": id,
		"participant": req.Participant,
		"amount":      req.Amount,
	})
}

// handleClaimTokens settles a participant's token claim after a successful
// campaign. A 502 response means the custody transfer failed and the claim
// may be retried.
func (h *Handler) handleClaimTokens(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	var req claimRequest
	if !h.decode(w, r, &req) {
		return
	}
	amount, err := h.svc.ClaimTokens(r.Context(), id, req.Participant)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, map[string]any{
		"campaign_id":  id,
		"participant":  req.Participant,
		"token_amount": amount.String(),
	})
}

// handleClaimRefund settles a participant's refund after a failed campaign.
func (h *Handler) handleClaimRefund(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	var req claimRequest
	if !h.decode(w, r, &req) {
		return
	}
	amount, err := h.svc.ClaimRefund(r.Context(), id, req.Participant)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, map[string]any{
		"campaign_id": id,
		"participant": req.Participant,
		"amount":      amount,
	})
}

// handleClaimFunds withdraws the raised total to the platform owner.
// Requires the admin bearer token.
func (h *Handler) handleClaimFunds(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	amount, err := h.svc.ClaimFunds(r.Context(), id, h.caller(r))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, map[string]any{
		"campaign_id": id,
		"amount":      amount,
	})
}
