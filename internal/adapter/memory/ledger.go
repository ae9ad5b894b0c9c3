package memory

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"launchpad/internal/core/domain"
)

// Ledger is an in-memory token custody and base-currency ledger implementing
// port.TokenCustody and port.FundsTransfer. Token balances live under
// (token, holder); base-currency payouts accumulate per address. Transfers
// debit the configured platform custody account and are all-or-nothing.
type Ledger struct {
	mu      sync.Mutex
	custody string
	tokens  map[string]map[string]*big.Int
	payouts map[string]int64
}

// NewLedger returns an empty ledger whose token transfers debit the given
// platform custody account.
func NewLedger(custodyAccount string) *Ledger {
	return &Ledger{
		custody: custodyAccount,
		tokens:  make(map[string]map[string]*big.Int),
		payouts: make(map[string]int64),
	}
}

// CreateToken registers a token and credits the platform custody account
// with supply units.
func (l *Ledger) CreateToken(ref string, supply *big.Int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.tokens[ref] = map[string]*big.Int{
		l.custody: new(big.Int).Set(supply),
	}
}

// TokenExists reports whether ref was registered with CreateToken.
func (l *Ledger) TokenExists(_ context.Context, ref string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, ok := l.tokens[ref]
	return ok, nil
}

// BalanceOf returns the holder's balance of the token, zero for unknown
// holders.
func (l *Ledger) BalanceOf(_ context.Context, ref, holder string) (*big.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	balances, ok := l.tokens[ref]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidToken, ref)
	}
	bal, ok := balances[holder]
	if !ok {
		return big.NewInt(0), nil
	}
	return new(big.Int).Set(bal), nil
}

// Transfer moves amount units from platform custody to the recipient,
// failing without effect when custody does not hold enough.
func (l *Ledger) Transfer(_ context.Context, ref, to string, amount *big.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	balances, ok := l.tokens[ref]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrInvalidToken, ref)
	}
	from, ok := balances[l.custody]
	if !ok || from.Cmp(amount) < 0 {
		return fmt.Errorf("custody account holds insufficient %s", ref)
	}
	from.Sub(from, amount)
	dst, ok := balances[to]
	if !ok {
		dst = new(big.Int)
		balances[to] = dst
	}
	dst.Add(dst, amount)
	return nil
}

// PayTo credits a base-currency payout to the address.
func (l *Ledger) PayTo(_ context.Context, address string, amount int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.payouts[address] += amount
	return nil
}

// PaidTo returns the total base currency paid out to the address so far.
func (l *Ledger) PaidTo(address string) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.payouts[address]
}
