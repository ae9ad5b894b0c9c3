package ledger

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"launchpad/internal/core/domain"
)

// Postgres is a database-backed token custody and base-currency ledger
// implementing port.TokenCustody and port.FundsTransfer. Token balances are
// NUMERIC(78,0) so high-decimals token quantities never overflow; they are
// moved through big.Int on the Go side.
type Postgres struct {
	pool    *pgxpool.Pool
	custody string
}

// NewPostgres returns a ledger whose token transfers debit the given
// platform custody account.
func NewPostgres(pool *pgxpool.Pool, custodyAccount string) *Postgres {
	return &Postgres{pool: pool, custody: custodyAccount}
}

// TokenExists reports whether ref is a registered token.
func (l *Postgres) TokenExists(ctx context.Context, ref string) (bool, error) {
	var exists bool
	err := l.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM tokens WHERE ref = $1)`, ref).Scan(&exists)
	return exists, err
}

// BalanceOf returns the holder's custodied balance of the token, zero for
// holders without a row.
func (l *Postgres) BalanceOf(ctx context.Context, ref, holder string) (*big.Int, error) {
	ok, err := l.TokenExists(ctx, ref)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidToken, ref)
	}

	var text string
	err = l.pool.QueryRow(ctx,
		`SELECT balance::text FROM token_balances WHERE token_ref = $1 AND holder = $2`,
		ref, holder).Scan(&text)
	if errors.Is(err, pgx.ErrNoRows) {
		return big.NewInt(0), nil
	}
	if err != nil {
		return nil, err
	}
	bal, okParse := new(big.Int).SetString(text, 10)
	if !okParse {
		return nil, fmt.Errorf("malformed balance %q for token %s", text, ref)
	}
	return bal, nil
}

// Transfer moves amount token units from the platform custody account to the
// recipient, all-or-nothing: the custody row is locked, checked and debited
// in one serializable transaction.
func (l *Postgres) Transfer(ctx context.Context, ref, to string, amount *big.Int) (err error) {
	tx, err := l.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var text string
	err = tx.QueryRow(ctx,
		`SELECT balance::text FROM token_balances WHERE token_ref = $1 AND holder = $2 FOR UPDATE`,
		ref, l.custody).Scan(&text)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("custody account holds no %s", ref)
	}
	if err != nil {
		return err
	}
	balance, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return fmt.Errorf("malformed balance %q for token %s", text, ref)
	}
	if balance.Cmp(amount) < 0 {
		return fmt.Errorf("custody account holds insufficient %s", ref)
	}

	if _, err = tx.Exec(ctx,
		`UPDATE token_balances SET balance = balance - $1::numeric WHERE token_ref = $2 AND holder = $3`,
		amount.String(), ref, l.custody); err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `INSERT INTO token_balances (token_ref, holder, balance)
		VALUES ($1,$2,$3::numeric)
		ON CONFLICT (token_ref, holder)
		DO UPDATE SET balance = token_balances.balance + EXCLUDED.balance`,
		ref, to, amount.String())
	return err
}

// PayTo credits a base-currency payout to the address.
func (l *Postgres) PayTo(ctx context.Context, address string, amount int64) error {
	_, err := l.pool.Exec(ctx, `INSERT INTO currency_balances (address, balance)
		VALUES ($1,$2)
		ON CONFLICT (address)
		DO UPDATE SET balance = currency_balances.balance + EXCLUDED.balance`,
		address, amount)
	return err
}
