package port

import (
	"context"
	"math/big"
	"time"

	"launchpad/internal/core/domain"
)

// CampaignRepository is the outbound persistence port for the campaign
// registry and settlement engine. Implementations must execute each mutating
// method as one atomic unit against the campaign's state: the precondition
// checks, the external transfer callback and the state update commit or roll
// back together. Callback errors abort the operation unchanged, so sentinel
// errors wrapped inside them survive to the caller.
type CampaignRepository interface {
	// CreateCampaign stores c and assigns the next sequential id, starting
	// at 1 and never reused.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error

	// GetCampaign returns the campaign or nil when id was never created.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)

	// ListCampaigns returns all campaigns ordered by id.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)

	// GetParticipant returns the participant record for (campaignID,
	// address), zero-valued when the address never contributed.
	GetParticipant(ctx context.Context, campaignID int64, address string) (*domain.Participant, error)

	// Contribute atomically checks the campaign window and cap at time now
	// and, on acceptance, increments both the participant's contribution and
	// the campaign's total raised by amount.
	Contribute(ctx context.Context, campaignID int64, address string, amount int64, now time.Time) error

	// ClaimTokens marks the participant claimed after a successful campaign.
	// transfer is invoked with the locked campaign state and the computed
	// token amount after all preconditions pass and before the claim flag is
	// committed; if it returns an error the claim rolls back. Returns the
	// distributed token units.
	ClaimTokens(ctx context.Context, campaignID int64, address string, now time.Time,
		transfer func(c domain.Campaign, tokenAmount *big.Int) error) (*big.Int, error)

	// ClaimRefund marks the participant claimed after a failed campaign,
	// paying out their full contribution through pay under the same
	// transactional contract as ClaimTokens. Returns the refunded amount.
	ClaimRefund(ctx context.Context, campaignID int64, address string, now time.Time,
		pay func(amount int64) error) (int64, error)

	// ClaimFunds marks the campaign's raised funds withdrawn by the owner,
	// paying out the full total through pay before the flag is committed.
	// Returns the withdrawn amount.
	ClaimFunds(ctx context.Context, campaignID int64, now time.Time,
		pay func(amount int64) error) (int64, error)
}
