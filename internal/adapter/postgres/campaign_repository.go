package postgres

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"launchpad/internal/core/domain"
)

const campaignColumns = `id, sale_token, price, token_decimals, min_goal, max_cap,
	start_time, end_time, total_raised, owner_claimed, created_at, updated_at`

// CampaignRepository implements port.CampaignRepository over PostgreSQL.
// Every mutating operation runs in a serializable transaction with the
// campaign row locked FOR UPDATE, so the precondition checks, the external
// transfer callback and the state update commit or roll back as one unit.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c        domain.Campaign
		decimals int16
	)
	err := row.Scan(&c.ID, &c.SaleToken, &c.Price, &decimals, &c.MinGoal, &c.MaxCap,
		&c.StartTime, &c.EndTime, &c.TotalRaised, &c.OwnerClaimed, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.TokenDecimals = uint8(decimals)
	return &c, nil
}

// CreateCampaign inserts c and assigns its BIGSERIAL id, which starts at 1
// and is never reused.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	return r.pool.QueryRow(ctx, `INSERT INTO campaigns
		(sale_token, price, token_decimals, min_goal, max_cap, start_time, end_time, total_raised, owner_claimed, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,0,false,$8,$9) RETURNING id`,
		c.SaleToken, c.Price, int16(c.TokenDecimals), c.MinGoal, c.MaxCap,
		c.StartTime, c.EndTime, c.CreatedAt, c.UpdatedAt).Scan(&c.ID)
}

// GetCampaign returns the campaign or nil when id was never created.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListCampaigns returns all campaigns ordered by id.
func (r *CampaignRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
}

// GetParticipant returns the participant record, zero-valued when the
// address never contributed.
func (r *CampaignRepository) GetParticipant(ctx context.Context, campaignID int64, address string) (*domain.Participant, error) {
	p := domain.Participant{CampaignID: campaignID, Address: address}
	err := r.pool.QueryRow(ctx,
		`SELECT contribution, claimed, updated_at FROM participants WHERE campaign_id = $1 AND address = $2`,
		campaignID, address).Scan(&p.Contribution, &p.Claimed, &p.UpdatedAt)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	return &p, nil
}

// Contribute locks the campaign row, checks the window and cap at time now
// and records the contribution on both the participant and the campaign.
func (r *CampaignRepository) Contribute(ctx context.Context, campaignID int64, address string, amount int64, now time.Time) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
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

	c, err := lockCampaign(ctx, tx, campaignID)
	if err != nil {
		return err
	}
	if err = c.AcceptContribution(now, amount); err != nil {
		return err
	}

	if _, err = tx.Exec(ctx,
		`UPDATE campaigns SET total_raised = total_raised + $1, updated_at = $2 WHERE id = $3`,
		amount, now, campaignID); err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `INSERT INTO participants (campaign_id, address, contribution, claimed, updated_at)
		VALUES ($1,$2,$3,false,$4)
		ON CONFLICT (campaign_id, address)
		DO UPDATE SET contribution = participants.contribution + EXCLUDED.contribution, updated_at = EXCLUDED.updated_at`,
		campaignID, address, amount, now)
	return err
}

// ClaimTokens settles a participant's token claim. The transfer callback is
// invoked inside the transaction, after the preconditions and before the
// claimed flag is written; a callback error rolls the claim back so it stays
// retriable.
func (r *CampaignRepository) ClaimTokens(ctx context.Context, campaignID int64, address string, now time.Time,
	transfer func(c domain.Campaign, tokenAmount *big.Int) error) (amount *big.Int, err error) {

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	c, err := lockCampaign(ctx, tx, campaignID)
	if err != nil {
		return nil, err
	}
	if !c.Ended(now) {
		return nil, domain.ErrNotEnded
	}
	if !c.GoalReached() {
		return nil, domain.ErrGoalNotReached
	}
	p, err := lockParticipant(ctx, tx, campaignID, address)
	if err != nil {
		return nil, err
	}
	if p.Claimed {
		return nil, domain.ErrAlreadyClaimed
	}
	if p.Contribution == 0 {
		return nil, domain.ErrNoContribution
	}

	amount = c.TokenAmount(p.Contribution)
	if err = transfer(*c, amount); err != nil {
		return nil, err
	}
	_, err = tx.Exec(ctx,
		`UPDATE participants SET claimed = true, updated_at = $1 WHERE campaign_id = $2 AND address = $3`,
		now, campaignID, address)
	if err != nil {
		return nil, err
	}
	return amount, nil
}

// ClaimRefund settles a participant's refund under the same transactional
// contract as ClaimTokens, with the complementary goal check.
func (r *CampaignRepository) ClaimRefund(ctx context.Context, campaignID int64, address string, now time.Time,
	pay func(amount int64) error) (amount int64, err error) {

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	c, err := lockCampaign(ctx, tx, campaignID)
	if err != nil {
		return 0, err
	}
	if !c.Ended(now) {
		return 0, domain.ErrNotEnded
	}
	if c.GoalReached() {
		return 0, domain.ErrGoalReached
	}
	p, err := lockParticipant(ctx, tx, campaignID, address)
	if err != nil {
		return 0, err
	}
	if p.Claimed {
		return 0, domain.ErrAlreadyClaimed
	}
	if p.Contribution == 0 {
		return 0, domain.ErrNoContribution
	}

	if err = pay(p.Contribution); err != nil {
		return 0, err
	}
	_, err = tx.Exec(ctx,
		`UPDATE participants SET claimed = true, updated_at = $1 WHERE campaign_id = $2 AND address = $3`,
		now, campaignID, address)
	if err != nil {
		return 0, err
	}
	return p.Contribution, nil
}

// ClaimFunds settles the owner's one-time withdrawal of the raised total.
func (r *CampaignRepository) ClaimFunds(ctx context.Context, campaignID int64, now time.Time,
	pay func(amount int64) error) (amount int64, err error) {

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	c, err := lockCampaign(ctx, tx, campaignID)
	if err != nil {
		return 0, err
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

	if err = pay(c.TotalRaised); err != nil {
		return 0, err
	}
	_, err = tx.Exec(ctx,
		`UPDATE campaigns SET owner_claimed = true, updated_at = $1 WHERE id = $2`,
		now, campaignID)
	if err != nil {
		return 0, err
	}
	return c.TotalRaised, nil
}

func lockCampaign(ctx context.Context, tx pgx.Tx, id int64) (*domain.Campaign, error) {
	c, err := scanCampaign(tx.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCampaignNotFound
	}
	return c, err
}

func lockParticipant(ctx context.Context, tx pgx.Tx, campaignID int64, address string) (*domain.Participant, error) {
	p := domain.Participant{CampaignID: campaignID, Address: address}
	err := tx.QueryRow(ctx,
		`SELECT contribution, claimed, updated_at FROM participants WHERE campaign_id = $1 AND address = $2 FOR UPDATE`,
		campaignID, address).Scan(&p.Contribution, &p.Claimed, &p.UpdatedAt)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	return &p, nil
}
