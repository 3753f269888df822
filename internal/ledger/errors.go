package ledger

import "errors"

var (
	// ErrMissingStartupProfile means the caller must create a startup
	// profile before posting deals. Handlers surface it as a redirect
	// hint, not a hard failure.
	ErrMissingStartupProfile = errors.New("startup profile required")

	// ErrMissingInvestorProfile means the caller must create an investor
	// profile before participating in deals.
	ErrMissingInvestorProfile = errors.New("investor profile required")

	ErrDealNotFound      = errors.New("deal not found")
	ErrNotDealOwner      = errors.New("deal is owned by another startup")
	ErrDealTerminal      = errors.New("deal is in a terminal state")
	ErrInvalidTransition = errors.New("invalid deal status transition")
	ErrInvalidAmount     = errors.New("pledge amount must be positive")
)
