package memory

import (
	"context"
	"math/big"
	"sync"
	"time"

	"launchpad/internal/core/domain"
)

type participantKey struct {
	campaignID int64
	address    string
}

// CampaignRepository is an in-memory implementation of
// port.CampaignRepository. A single mutex is held for the whole of every
// mutating operation, including the external transfer callback, so each
// operation executes atomically and no reentrant claim or contribution can
// interleave with one in flight. Used by tests and by local runs without
// Postgres.
type CampaignRepository struct {
	mu           sync.Mutex
	nextID       int64
	campaigns    map[int64]*domain.Campaign
	participants map[participantKey]*domain.Participant
}

// NewCampaignRepository returns an empty in-memory repository. Campaign ids
// start at 1.
func NewCampaignRepository() *CampaignRepository {
	return &CampaignRepository{
		nextID:       1,
		campaigns:    make(map[int64]*domain.Campaign),
		participants: make(map[participantKey]*domain.Participant),
	}
}

// CreateCampaign stores c under the next sequential id.
func (r *CampaignRepository) CreateCampaign(_ context.Context, c *domain.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = r.nextID
	r.nextID++
	stored := *c
	r.campaigns[c.ID] = &stored
	return nil
}

// GetCampaign returns a copy of the campaign or nil when absent.
func (r *CampaignRepository) GetCampaign(_ context.Context, id int64) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.campaigns[id]
	if !ok {
		return nil, nil
	}
	out := *c
	return &out, nil
}

// ListCampaigns returns copies of all campaigns ordered by id.
func (r *CampaignRepository) ListCampaigns(_ context.Context) ([]domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Campaign, 0, len(r.campaigns))
	for id := int64(1); id < r.nextID; id++ {
		if c, ok := r.campaigns[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

// GetParticipant returns a copy of the participant record, zero-valued when
// the address never contributed.
func (r *CampaignRepository) GetParticipant(_ context.Context, campaignID int64, address string) (*domain.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.participants[participantKey{campaignID, address}]; ok {
		out := *p
		return &out, nil
	}
	return &domain.Participant{CampaignID: campaignID, Address: address}, nil
}

// Contribute checks the window and cap under the lock and records the
// contribution on both the participant and the campaign.
func (r *CampaignRepository) Contribute(_ context.Context, campaignID int64, address string, amount int64, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.campaigns[campaignID]
	if !ok {
		return domain.ErrCampaignNotFound
	}
	if err := c.AcceptContribution(now, amount); err != nil {
		return err
	}

	key := participantKey{campaignID, address}
	p, ok := r.participants[key]
	if !ok {
		p = &domain.Participant{CampaignID: campaignID, Address: address}
		r.participants[key] = p
	}
	p.Contribution += amount
	p.UpdatedAt = now
	c.TotalRaised += amount
	c.UpdatedAt = now
	return nil
}

// ClaimTokens settles a participant's token claim. The transfer callback
// runs under the lock, after the preconditions and before the claimed flag
// is set, so a failed transfer leaves the claim retriable.
func (r *CampaignRepository) ClaimTokens(_ context.Context, campaignID int64, address string, now time.Time,
	transfer func(c domain.Campaign, tokenAmount *big.Int) error) (*big.Int, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.campaigns[campaignID]
	if !ok {
		return nil, domain.ErrCampaignNotFound
	}
	if !c.Ended(now) {
		return nil, domain.ErrNotEnded
	}
	if !c.GoalReached() {
		return nil, domain.ErrGoalNotReached
	}

	p, ok := r.participants[participantKey{campaignID, address}]
	if ok && p.Claimed {
		return nil, domain.ErrAlreadyClaimed
	}
	if !ok || p.Contribution == 0 {
		return nil, domain.ErrNoContribution
	}

	amount := c.TokenAmount(p.Contribution)
	if err := transfer(*c, amount); err != nil {
		return nil, err
	}
	p.Claimed = true
	p.UpdatedAt = now
	return amount, nil
}

// ClaimRefund settles a participant's refund claim under the same contract
// as ClaimTokens, with the complementary goal check.
func (r *CampaignRepository) ClaimRefund(_ context.Context, campaignID int64, address string, now time.Time,
	pay func(amount int64) error) (int64, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.campaigns[campaignID]
	if !ok {
		return 0, domain.ErrCampaignNotFound
	}
	if !c.Ended(now) {
		return 0, domain.ErrNotEnded
	}
	if c.GoalReached() {
		return 0, domain.ErrGoalReached
	}

	p, ok := r.participants[participantKey{campaignID, address}]
	if ok && p.Claimed {
		return 0, domain.ErrAlreadyClaimed
	}
	if !ok || p.Contribution == 0 {
		return 0, domain.ErrNoContribution
	}

	if err := pay(p.Contribution); err != nil {
		return 0, err
	}
	p.Claimed = true
	p.UpdatedAt = now
	return p.Contribution, nil
}

// ClaimFunds settles the owner's withdrawal of the raised total, at most
// once per campaign.
func (r *CampaignRepository) ClaimFunds(_ context.Context, campaignID int64, now time.Time,
	pay func(amount int64) error) (int64, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.campaigns[campaignID]
	if !ok {
		return 0, domain.ErrCampaignNotFound
	}
	if !c.Ended(now) {
		return 0, domain.ErrNotEnded
	}
	if !c.GoalReached() {
		return 0, domain.ErrGoalNotReached
	}
	if c.OwnerClaimed {
		return 0, domain.ErrAlreadyClaimed
	}

	if err := pay(c.TotalRaised); err != nil {
		return 0, err
	}
	c.OwnerClaimed = true
	c.UpdatedAt = now
	return c.TotalRaised, nil
}
