package port

import (
	"context"
	"math/big"
	"time"

	"launchpad/internal/core/domain"
)

// SaleUseCase defines the business operations exposed by the launchpad. This
// interface is the primary port into the application domain: campaign
// creation and reads on the registry side, contribution acceptance and the
// goal-gated claim operations on the settlement side. Every state-mutating
// operation either completes atomically or fails with no partial state
// change.
type SaleUseCase interface {
	// CreateCampaign validates parameters, checks that the platform already
	// custodies enough of the sale token to cover the maximum possible
	// distribution, and records a new campaign whose window opens
	// immediately. Only the platform administrator may call it.
	CreateCampaign(ctx context.Context, caller string, req CreateCampaignReq) (*domain.Campaign, error)

	// Contribute records amount for participant while the campaign window is
	// open and the hard cap is not exceeded. The accept decision and the
	// state update are one atomic unit; concurrent contributions can never
	// jointly overshoot the cap.
	Contribute(ctx context.Context, campaignID int64, participant string, amount int64) error

	// ClaimTokens distributes the participant's purchased sale tokens after
	// a successful campaign. It returns the distributed token units. The
	// external transfer completes before the claim is committed, so a failed
	// transfer leaves the claim retriable.
	ClaimTokens(ctx context.Context, campaignID int64, participant string) (*big.Int, error)

	// ClaimRefund returns the participant's full contribution after a failed
	// campaign. Mutually exclusive with ClaimTokens by the goal branch.
	ClaimRefund(ctx context.Context, campaignID int64, participant string) (int64, error)

	// ClaimFunds transfers the full raised amount to the platform owner
	// after a successful campaign, at most once per campaign. Only the
	// administrator may call it.
	ClaimFunds(ctx context.Context, campaignID int64, caller string) (int64, error)

	// GetCampaign returns the campaign or nil when the id was never created.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)

	// GetParticipant returns the participant record, zero-valued for an
	// address that never contributed.
	GetParticipant(ctx context.Context, campaignID int64, participant string) (*domain.Participant, error)

	// ListCampaigns returns every campaign ever created, oldest first.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
}

// CreateCampaignReq carries validated campaign creation parameters. Price,
// MinGoal and MaxCap are base-currency smallest units; Duration determines
// EndTime relative to the creation instant.
type CreateCampaignReq struct {
	SaleToken     string
	Price         int64
	TokenDecimals uint8
	MinGoal       int64
	MaxCap        int64
	Duration      time.Duration
}
