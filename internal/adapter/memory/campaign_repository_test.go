package memory

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"launchpad/internal/core/domain"
)

var start = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func storedCampaign(t *testing.T, r *CampaignRepository) *domain.Campaign {
	t.Helper()
	c := &domain.Campaign{
		SaleToken:     "TKN",
		Price:         1,
		TokenDecimals: 1,
		MinGoal:       10,
		MaxCap:        20,
		StartTime:     start,
		EndTime:       start.Add(7 * 24 * time.Hour),
	}
	require.NoError(t, r.CreateCampaign(context.Background(), c))
	return c
}

func TestSequentialIDs(t *testing.T) {
	r := NewCampaignRepository()
	first := storedCampaign(t, r)
	second := storedCampaign(t, r)
	require.Equal(t, int64(1), first.ID)
	require.Equal(t, int64(2), second.ID)

	all, err := r.ListCampaigns(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, int64(1), all[0].ID)
}

func TestContributeBeforeStart(t *testing.T) {
	r := NewCampaignRepository()
	c := storedCampaign(t, r)

	err := r.Contribute(context.Background(), c.ID, "alice", 5, start.Add(-time.Minute))
	require.ErrorIs(t, err, domain.ErrNotStarted)
}

func TestContributeUnknownCampaign(t *testing.T) {
	r := NewCampaignRepository()
	err := r.Contribute(context.Background(), 7, "alice", 5, start)
	require.ErrorIs(t, err, domain.ErrCampaignNotFound)
}

func TestGetCampaignReturnsCopy(t *testing.T) {
	r := NewCampaignRepository()
	ctx := context.Background()
	c := storedCampaign(t, r)

	got, err := r.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	got.TotalRaised = 999

	again, err := r.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	require.Zero(t, again.TotalRaised)
}

func TestClaimCallbackFailureRollsBack(t *testing.T) {
	r := NewCampaignRepository()
	ctx := context.Background()
	c := storedCampaign(t, r)
	require.NoError(t, r.Contribute(ctx, c.ID, "alice", 12, start))
	after := c.EndTime.Add(time.Second)

	wantErr := domain.ErrTokenTransferFailed
	_, err := r.ClaimTokens(ctx, c.ID, "alice", after,
		func(domain.Campaign, *big.Int) error { return wantErr })
	require.ErrorIs(t, err, wantErr)

	p, err := r.GetParticipant(ctx, c.ID, "alice")
	require.NoError(t, err)
	require.False(t, p.Claimed)

	amount, err := r.ClaimTokens(ctx, c.ID, "alice", after,
		func(_ domain.Campaign, got *big.Int) error {
			require.Equal(t, big.NewInt(120), got)
			return nil
		})
	require.NoError(t, err)
	require.Equal(t, big.NewInt(120), amount)
}

func TestClaimFundsOnce(t *testing.T) {
	r := NewCampaignRepository()
	ctx := context.Background()
	c := storedCampaign(t, r)
	require.NoError(t, r.Contribute(ctx, c.ID, "alice", 15, start))
	after := c.EndTime.Add(time.Second)

	var paid int64
	amount, err := r.ClaimFunds(ctx, c.ID, after, func(a int64) error {
		paid = a
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, int64(15), amount)
	require.Equal(t, int64(15), paid)

	_, err = r.ClaimFunds(ctx, c.ID, after, func(int64) error { return nil })
	require.ErrorIs(t, err, domain.ErrAlreadyClaimed)
}

func TestLedgerTransfer(t *testing.T) {
	l := NewLedger("platform")
	ctx := context.Background()
	l.CreateToken("TKN", big.NewInt(100))

	ok, err := l.TokenExists(ctx, "TKN")
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = l.TokenExists(ctx, "NOPE")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, l.Transfer(ctx, "TKN", "alice", big.NewInt(40)))
	bal, err := l.BalanceOf(ctx, "TKN", "alice")
	require.NoError(t, err)
	require.Equal(t, big.NewInt(40), bal)

	// transfers are all-or-nothing
	require.Error(t, l.Transfer(ctx, "TKN", "bob", big.NewInt(61)))
	bal, err = l.BalanceOf(ctx, "TKN", "platform")
	require.NoError(t, err)
	require.Equal(t, big.NewInt(60), bal)
}
