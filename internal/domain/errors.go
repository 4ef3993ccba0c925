package domain

import "errors"

var (
	// ErrNoTrustline is returned when an account does not trust the tipping asset
	ErrNoTrustline = errors.New("account has no trustline for the tipping asset")

	// ErrInvalidAddress is returned when a Stellar address cannot be parsed
	ErrInvalidAddress = errors.New("invalid stellar address")

	// ErrInvalidAmount is returned when an amount is negative, zero where not allowed, or too precise
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrAccountNotFound is returned when the account does not exist on the network
	ErrAccountNotFound = errors.New("stellar account not found")

	// ErrInsufficientFunds is returned when the custodial payout cannot be covered by the pool account
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrPayoutFailed is returned when the payout service rejects or fails a payout
	ErrPayoutFailed = errors.New("payout failed")

	// ErrNothingToWithdraw is returned when the user balance is zero
	ErrNothingToWithdraw = errors.New("nothing to withdraw")

	// ErrAlreadyTipped is returned when a tipper has already tipped the message
	ErrAlreadyTipped = errors.New("message already tipped by user")

	// ErrSelfTip is returned when a user tries to tip their own message
	ErrSelfTip = errors.New("users cannot tip themselves")

	// ErrCooldown is returned when a custodial user is still in the tipping cooldown
	ErrCooldown = errors.New("user is in tipping cooldown")

	// ErrAddressAlreadyLinked is returned when a user already has a linked address
	ErrAddressAlreadyLinked = errors.New("user already has a linked address")

	// ErrMergeInProgress is returned when another balance merge for the same user holds the guard
	ErrMergeInProgress = errors.New("balance merge already in progress")
)
