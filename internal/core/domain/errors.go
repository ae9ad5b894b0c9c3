package domain

import "errors"

// Settlement errors are precondition violations, surfaced immediately and
// never retried internally. They fall into five kinds: creation validation,
// lifecycle state, one-time actions, transfers and authorization. Transfer
// errors leave the acting party able to retry; nothing marks an action done
// unless its transfer succeeded.
var (
	// creation validation
	ErrInvalidToken             = errors.New("sale token does not reference a valid token")
	ErrInvalidPrice             = errors.New("price must be positive")
	ErrInvalidMinGoal           = errors.New("min goal must be positive")
	ErrCapTooLow                = errors.New("max cap must be at least min goal")
	ErrInvalidDuration          = errors.New("duration must be positive")
	ErrInsufficientTokenBalance = errors.New("custodied token balance below required sale tokens")
	ErrInvalidAmount            = errors.New("contribution amount must be positive")

	// lifecycle state
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrNotStarted       = errors.New("campaign has not started")
	ErrEnded            = errors.New("campaign has ended")
	ErrNotEnded         = errors.New("campaign has not ended")
	ErrGoalReached      = errors.New("funding goal was reached")
	ErrGoalNotReached   = errors.New("funding goal was not reached")
	ErrCapExceeded      = errors.New("contribution would exceed max cap")

	// one-time actions
	ErrAlreadyClaimed = errors.New("already claimed")
	ErrNoContribution = errors.New("no contribution to claim")

	// transfers
	ErrTransferFailed      = errors.New("base currency transfer failed")
	ErrTokenTransferFailed = errors.New("sale token transfer failed")

	// authorization
	ErrUnauthorized = errors.New("caller is not the platform administrator")
)
