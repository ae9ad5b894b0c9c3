package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"launchpad/internal/core/domain"
)

type createCampaignRequest struct {
	SaleToken     string `json:"sale_token" validate:"required"`
	Price         int64  `json:"price"`
	TokenDecimals uint8  `json:"token_decimals" validate:"lte=36"`
	MinGoal       int64  `json:"min_goal"`
	MaxCap        int64  `json:"max_cap"`
	DurationSecs  int64  `json:"duration_seconds"`
}

type contributeRequest struct {
	Participant string `json:"participant" validate:"required"`
	Amount      int64  `json:"amount"`
}

type claimRequest struct {
	Participant string `json:"participant" validate:"required"`
}

type campaignResponse struct {
	ID            int64     `json:"id"`
	SaleToken     string    `json:"sale_token"`
	Price         int64     `json:"price"`
	TokenDecimals uint8     `json:"token_decimals"`
	MinGoal       int64     `json:"min_goal"`
	MaxCap        int64     `json:"max_cap"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	TotalRaised   int64     `json:"total_raised"`
	OwnerClaimed  bool      `json:"owner_claimed"`
}

type participantResponse struct {
	CampaignID   int64  `json:"campaign_id"`
	Address      string `json:"address"`
	Contribution int64  `json:"contribution"`
	Claimed      bool   `json:"claimed"`
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:            c.ID,
		SaleToken:     c.SaleToken,
		Price:         c.Price,
		TokenDecimals: c.TokenDecimals,
		MinGoal:       c.MinGoal,
		MaxCap:        c.MaxCap,
		StartTime:     c.StartTime,
		EndTime:       c.EndTime,
		TotalRaised:   c.TotalRaised,
		OwnerClaimed:  c.OwnerClaimed,
	}
}

// decode parses and validates a JSON request body into dst. It writes an
// HTTP 400 and returns false when the body is malformed or fails validation.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handler) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// respondError maps settlement errors onto HTTP statuses: validation errors
// to 400, authorization to 401, missing campaigns to 404, lifecycle and
// one-time-action conflicts to 409, the creation solvency failure to 422 and
// transfer failures to 502 (retriable by the caller).
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrCampaignNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidMinGoal),
		errors.Is(err, domain.ErrCapTooLow),
		errors.Is(err, domain.ErrInvalidDuration),
		errors.Is(err, domain.ErrInvalidAmount):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrInsufficientTokenBalance):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNotStarted),
		errors.Is(err, domain.ErrEnded),
		errors.Is(err, domain.ErrNotEnded),
		errors.Is(err, domain.ErrGoalReached),
		errors.Is(err, domain.ErrGoalNotReached),
		errors.Is(err, domain.ErrCapExceeded),
		errors.Is(err, domain.ErrAlreadyClaimed),
		errors.Is(err, domain.ErrNoContribution):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrTransferFailed),
		errors.Is(err, domain.ErrTokenTransferFailed):
		status = http.StatusBadGateway
	}
	if status == http.StatusInternalServerError {
		h.logger.Error("internal error", slog.Any("error", err))
		h.respond(w, status, map[string]string{"error": "internal error"})
		return
	}
	h.respond(w, status, map[string]string{"error": err.Error()})
}
