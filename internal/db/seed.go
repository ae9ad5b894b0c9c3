package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data: a sale token custodied by the platform and one
// open campaign priced at 5 base units per whole token. Amounts follow the
// smallest-unit convention used everywhere else.
func Seed(ctx context.Context, db *pgxpool.Pool, custodyAccount string) error {
	if _, err := db.Exec(ctx,
		`INSERT INTO tokens (ref, name) VALUES ('DEMO', 'Demo Sale Token') ON CONFLICT DO NOTHING`); err != nil {
		return err
	}
	// 10^6 whole tokens at 6 decimals
	if _, err := db.Exec(ctx, `INSERT INTO token_balances (token_ref, holder, balance)
		VALUES ('DEMO', $1, 1000000000000::numeric) ON CONFLICT DO NOTHING`, custodyAccount); err != nil {
		return err
	}

	start := time.Now().UTC()
	end := start.AddDate(0, 0, 7)
	_, err := db.Exec(ctx, `INSERT INTO campaigns
		(sale_token, price, token_decimals, min_goal, max_cap, start_time, end_time, total_raised, owner_claimed, created_at, updated_at)
		VALUES ('DEMO', 5, 6, 100000, 500000, $1, $2, 0, false, $1, $1) ON CONFLICT DO NOTHING`,
		start, end)
	return err
}
