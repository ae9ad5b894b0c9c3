package domain

import (
	"math/big"
	"time"
)

// Campaign represents a single token sale: a flat-price offering of one sale
// token against the platform's base currency, open for a fixed time window.
// All base-currency amounts are stored in integer smallest units.
type Campaign struct {
	ID            int64
	SaleToken     string // reference to the external token being sold
	Price         int64  // base-currency smallest units per whole sale token
	TokenDecimals uint8
	MinGoal       int64 // funding goal; refunds below, distribution at or above
	MaxCap        int64 // hard cap on total contributions
	StartTime     time.Time
	EndTime       time.Time
	TotalRaised   int64
	OwnerClaimed  bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Participant is the per-campaign record of a single contributor. A zero-value
// record stands for an address that never contributed.
type Participant struct {
	CampaignID   int64
	Address      string
	Contribution int64
	Claimed      bool
	UpdatedAt    time.Time
}

// ValidateParams checks campaign creation parameters in a fixed order. Each
// violation maps to its own sentinel so callers can surface the first failing
// condition.
func ValidateParams(price, minGoal, maxCap int64, duration time.Duration) error {
	if price <= 0 {
		return ErrInvalidPrice
	}
	if minGoal <= 0 {
		return ErrInvalidMinGoal
	}
	if maxCap < minGoal {
		return ErrCapTooLow
	}
	if duration <= 0 {
		return ErrInvalidDuration
	}
	return nil
}

// AcceptContribution reports whether a contribution of amount at time now may
// be recorded. The window is inclusive of EndTime; the cap check is a hard
// cap, partial fills are never performed. The comparison is written against
// the remaining headroom so an oversized amount cannot overflow int64.
func (c *Campaign) AcceptContribution(now time.Time, amount int64) error {
	if now.Before(c.StartTime) {
		return ErrNotStarted
	}
	if now.After(c.EndTime) {
		return ErrEnded
	}
	if amount > c.MaxCap-c.TotalRaised {
		return ErrCapExceeded
	}
	return nil
}

// Ended reports whether the campaign window has closed. Timestamps equal to
// EndTime still count as inside the window.
func (c *Campaign) Ended(now time.Time) bool {
	return now.After(c.EndTime)
}

// GoalReached reports whether the funding goal was met. After the window
// closes this decides the settlement branch: token distribution when true,
// refunds when false.
func (c *Campaign) GoalReached() bool {
	return c.TotalRaised >= c.MinGoal
}

// TokenAmount converts a base-currency contribution into sale-token units:
// contribution * 10^decimals / price, integer division truncating toward
// zero. Any fractional remainder is forfeited by the participant. big.Int
// arithmetic keeps high-decimals tokens from overflowing int64.
func (c *Campaign) TokenAmount(contribution int64) *big.Int {
	amt := new(big.Int).Mul(big.NewInt(contribution), pow10(c.TokenDecimals))
	return amt.Quo(amt, big.NewInt(c.Price))
}

// RequiredSaleTokens is the custody balance a campaign needs at creation to
// cover the maximum possible distribution: maxCap * 10^decimals / price.
func RequiredSaleTokens(maxCap int64, decimals uint8, price int64) *big.Int {
	req := new(big.Int).Mul(big.NewInt(maxCap), pow10(decimals))
	return req.Quo(req, big.NewInt(price))
}

func pow10(decimals uint8) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
}
