package port

import (
	"context"
	"math/big"
	"time"
)

// TokenCustody is the external token custody/transfer collaborator. Transfers
// are all-or-nothing: a failed transfer leaves no partial effect. Token
// quantities are big.Int because high-decimals tokens exceed int64.
type TokenCustody interface {
	// TokenExists reports whether ref resolves to a known token.
	TokenExists(ctx context.Context, ref string) (bool, error)
	// BalanceOf returns the holder's custodied balance of the token.
	BalanceOf(ctx context.Context, ref, holder string) (*big.Int, error)
	// Transfer moves amount token units from platform custody to the
	// recipient.
	Transfer(ctx context.Context, ref, to string, amount *big.Int) error
}

// FundsTransfer is the platform's base-currency payout collaborator, with the
// same all-or-nothing guarantee as TokenCustody.
type FundsTransfer interface {
	PayTo(ctx context.Context, address string, amount int64) error
}

// Clock supplies the ambient time used for lazy window gating. There is no
// internal timer; every operation evaluates the window against Now at call
// time.
type Clock interface {
	Now() time.Time
}
