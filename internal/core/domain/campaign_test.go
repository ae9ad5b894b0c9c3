package domain

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testCampaign() *Campaign {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return &Campaign{
		ID:            1,
		SaleToken:     "TKN",
		Price:         5,
		TokenDecimals: 6,
		MinGoal:       100,
		MaxCap:        200,
		StartTime:     start,
		EndTime:       start.Add(7 * 24 * time.Hour),
	}
}

func TestValidateParamsOrder(t *testing.T) {
	cases := []struct {
		name     string
		price    int64
		minGoal  int64
		maxCap   int64
		duration time.Duration
		want     error
	}{
		{"valid", 5, 100, 200, time.Hour, nil},
		{"zero price", 0, 100, 200, time.Hour, ErrInvalidPrice},
		{"negative price", -1, 100, 200, time.Hour, ErrInvalidPrice},
		{"zero goal", 5, 0, 200, time.Hour, ErrInvalidMinGoal},
		{"cap below goal", 5, 100, 99, time.Hour, ErrCapTooLow},
		{"zero duration", 5, 100, 200, 0, ErrInvalidDuration},
		// price is checked before the goal, so both being invalid reports the price
		{"price before goal", 0, 0, 200, time.Hour, ErrInvalidPrice},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateParams(tc.price, tc.minGoal, tc.maxCap, tc.duration)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAcceptContributionWindow(t *testing.T) {
	c := testCampaign()

	require.ErrorIs(t, c.AcceptContribution(c.StartTime.Add(-time.Second), 10), ErrNotStarted)
	require.NoError(t, c.AcceptContribution(c.StartTime, 10))
	// the boundary is inclusive of EndTime
	require.NoError(t, c.AcceptContribution(c.EndTime, 10))
	require.ErrorIs(t, c.AcceptContribution(c.EndTime.Add(time.Nanosecond), 10), ErrEnded)
}

func TestAcceptContributionCap(t *testing.T) {
	c := testCampaign()
	c.TotalRaised = 150

	require.NoError(t, c.AcceptContribution(c.StartTime, 50))
	require.ErrorIs(t, c.AcceptContribution(c.StartTime, 51), ErrCapExceeded)
	// an absurd amount must not overflow the headroom comparison
	require.ErrorIs(t, c.AcceptContribution(c.StartTime, 1<<62), ErrCapExceeded)
}

func TestEndedBoundary(t *testing.T) {
	c := testCampaign()

	require.False(t, c.Ended(c.EndTime))
	require.True(t, c.Ended(c.EndTime.Add(time.Nanosecond)))
}

func TestTokenAmountTruncates(t *testing.T) {
	c := testCampaign()
	c.Price = 3
	c.TokenDecimals = 0

	// 10/3 truncates toward zero; the remainder is forfeited
	require.Equal(t, big.NewInt(3), c.TokenAmount(10))

	c.TokenDecimals = 2
	require.Equal(t, big.NewInt(333), c.TokenAmount(10))
}

func TestTokenAmountHighDecimals(t *testing.T) {
	c := testCampaign()
	c.Price = 1
	c.TokenDecimals = 18

	want, ok := new(big.Int).SetString("200000000000000000000", 10)
	require.True(t, ok)
	require.Equal(t, want, c.TokenAmount(200))
}

func TestRequiredSaleTokens(t *testing.T) {
	require.Equal(t, big.NewInt(200), RequiredSaleTokens(20, 1, 1))
	require.Equal(t, big.NewInt(66), RequiredSaleTokens(20, 1, 3))

	want, ok := new(big.Int).SetString("500000000000000000000000", 10)
	require.True(t, ok)
	require.Equal(t, want, RequiredSaleTokens(500000, 18, 1))
}
