package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/google/uuid"

	"launchpad/internal/core/domain"
	"launchpad/internal/core/port"
)

// SaleUseCase implements the campaign registry and settlement engine. It
// orchestrates the repository and the external custody, payout and clock
// collaborators, and emits exactly one structured event per successful
// mutating operation.
type SaleUseCase struct {
	repo    port.CampaignRepository
	custody port.TokenCustody
	funds   port.FundsTransfer
	clock   port.Clock
	logger  *slog.Logger

	// admin is the platform administrator identity; campaign creation and
	// owner fund withdrawal compare callers against it.
	admin string
	// owner is the payout address raised funds are withdrawn to.
	owner string
	// custodyAccount holds the platform's custodied sale tokens.
	custodyAccount string
}

// Config carries the platform identities for a SaleUseCase.
type Config struct {
	AdminAddress   string
	OwnerAddress   string
	CustodyAccount string
}

// NewSaleUseCase wires a settlement engine over the given repository and
// collaborators.
func NewSaleUseCase(repo port.CampaignRepository, custody port.TokenCustody, funds port.FundsTransfer,
	clock port.Clock, logger *slog.Logger, cfg Config) *SaleUseCase {

	return &SaleUseCase{
		repo:           repo,
		custody:        custody,
		funds:          funds,
		clock:          clock,
		logger:         logger,
		admin:          cfg.AdminAddress,
		owner:          cfg.OwnerAddress,
		custodyAccount: cfg.CustodyAccount,
	}
}

// CreateCampaign validates parameters in order, verifies the platform
// custodies enough sale tokens to cover the maximum possible distribution,
// and records the campaign with its window opening immediately. The solvency
// check happens at creation only; out-of-band custody movements afterwards
// are the custody collaborator's concern.
func (u *SaleUseCase) CreateCampaign(ctx context.Context, caller string, req port.CreateCampaignReq) (*domain.Campaign, error) {
	if caller != u.admin {
		return nil, domain.ErrUnauthorized
	}

	if req.SaleToken == "" {
		return nil, domain.ErrInvalidToken
	}
	ok, err := u.custody.TokenExists(ctx, req.SaleToken)
	if err != nil {
		return nil, fmt.Errorf("token lookup: %w", err)
	}
	if !ok {
		return nil, domain.ErrInvalidToken
	}
	if err = domain.ValidateParams(req.Price, req.MinGoal, req.MaxCap, req.Duration); err != nil {
		return nil, err
	}

	required := domain.RequiredSaleTokens(req.MaxCap, req.TokenDecimals, req.Price)
	balance, err := u.custody.BalanceOf(ctx, req.SaleToken, u.custodyAccount)
	if err != nil {
		return nil, fmt.Errorf("custody balance: %w", err)
	}
	if balance.Cmp(required) < 0 {
		return nil, domain.ErrInsufficientTokenBalance
	}

	now := u.clock.Now().UTC()
	c := &domain.Campaign{
		SaleToken:     req.SaleToken,
		Price:         req.Price,
		TokenDecimals: req.TokenDecimals,
		MinGoal:       req.MinGoal,
		MaxCap:        req.MaxCap,
		StartTime:     now,
		EndTime:       now.Add(req.Duration),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err = u.repo.CreateCampaign(ctx, c); err != nil {
		return nil, err
	}

	u.emit(ctx, "campaign_created",
		slog.Int64("campaign_id", c.ID),
		slog.String("sale_token", c.SaleToken),
		slog.Int64("price", c.Price),
		slog.Int64("min_goal", c.MinGoal),
		slog.Int64("max_cap", c.MaxCap),
	)
	return c, nil
}

// Contribute records a contribution while the window is open and the cap is
// not exceeded. The accept decision and the state update are one atomic unit
// inside the repository, evaluated against the clock at call time.
func (u *SaleUseCase) Contribute(ctx context.Context, campaignID int64, participant string, amount int64) error {
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}
	now := u.clock.Now().UTC()
	if err := u.repo.Contribute(ctx, campaignID, participant, amount, now); err != nil {
		return err
	}

	u.emit(ctx, "contribution_accepted",
		slog.Int64("campaign_id", campaignID),
		slog.String("participant", participant),
		slog.Int64("amount", amount),
	)
	return nil
}

// ClaimTokens distributes the participant's purchased tokens after a
// successful campaign. The custody transfer runs inside the claim's atomic
// unit, before the claimed flag commits; a failed transfer aborts the claim
// and leaves it retriable.
func (u *SaleUseCase) ClaimTokens(ctx context.Context, campaignID int64, participant string) (*big.Int, error) {
	now := u.clock.Now().UTC()
	amount, err := u.repo.ClaimTokens(ctx, campaignID, participant, now,
		func(c domain.Campaign, tokenAmount *big.Int) error {
			if err := u.custody.Transfer(ctx, c.SaleToken, participant, tokenAmount); err != nil {
				return fmt.Errorf("%w: %v", domain.ErrTokenTransferFailed, err)
			}
			return nil
		})
	if err != nil {
		return nil, err
	}

	u.emit(ctx, "tokens_claimed",
		slog.Int64("campaign_id", campaignID),
		slog.String("participant", participant),
		slog.String("token_amount", amount.String()),
	)
	return amount, nil
}

// ClaimRefund returns the participant's full contribution after a failed
// campaign, under the same transfer-before-commit contract as ClaimTokens.
func (u *SaleUseCase) ClaimRefund(ctx context.Context, campaignID int64, participant string) (int64, error) {
	now := u.clock.Now().UTC()
	amount, err := u.repo.ClaimRefund(ctx, campaignID, participant, now,
		func(refund int64) error {
			if err := u.funds.PayTo(ctx, participant, refund); err != nil {
				return fmt.Errorf("%w: %v", domain.ErrTransferFailed, err)
			}
			return nil
		})
	if err != nil {
		return 0, err
	}

	u.emit(ctx, "refund_claimed",
		slog.Int64("campaign_id", campaignID),
		slog.String("participant", participant),
		slog.Int64("amount", amount),
	)
	return amount, nil
}

// ClaimFunds withdraws the full raised total to the platform owner after a
// successful campaign, at most once per campaign. Only the administrator may
// call it.
func (u *SaleUseCase) ClaimFunds(ctx context.Context, campaignID int64, caller string) (int64, error) {
	if caller != u.admin {
		return 0, domain.ErrUnauthorized
	}
	now := u.clock.Now().UTC()
	amount, err := u.repo.ClaimFunds(ctx, campaignID, now,
		func(raised int64) error {
			if err := u.funds.PayTo(ctx, u.owner, raised); err != nil {
				return fmt.Errorf("%w: %v", domain.ErrTransferFailed, err)
			}
			return nil
		})
	if err != nil {
		return 0, err
	}

	u.emit(ctx, "funds_claimed",
		slog.Int64("campaign_id", campaignID),
		slog.String("owner", u.owner),
		slog.Int64("amount", amount),
	)
	return amount, nil
}

// GetCampaign returns the campaign or nil when the id was never created.
func (u *SaleUseCase) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	return u.repo.GetCampaign(ctx, id)
}

// GetParticipant returns the participant record, zero-valued for an address
// that never contributed.
func (u *SaleUseCase) GetParticipant(ctx context.Context, campaignID int64, participant string) (*domain.Participant, error) {
	return u.repo.GetParticipant(ctx, campaignID, participant)
}

// ListCampaigns returns every campaign ordered by id.
func (u *SaleUseCase) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return u.repo.ListCampaigns(ctx)
}

// emit writes the single observability event for a successful operation.
func (u *SaleUseCase) emit(ctx context.Context, event string, attrs ...slog.Attr) {
	all := make([]slog.Attr, 0, len(attrs)+1)
	all = append(all, slog.String("event_id", uuid.NewString()))
	all = append(all, attrs...)
	u.logger.LogAttrs(ctx, slog.LevelInfo, event, all...)
}
