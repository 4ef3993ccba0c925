package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mobius-network/tipbot-ledger/internal/domain"
)

// LinkedUser is a user with a linked Stellar address
type LinkedUser struct {
	UserID  domain.UserID
	Address string
}

// LedgerStore defines the per-user ledger operations.
// Every mutation is a single atomic command on the backend.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=LedgerStore=MockLedgerStore,TallyStore=MockTallyStore
type LedgerStore interface {
	// IncrementBalance atomically adds amount (may be negative) to the off-chain balance and returns the new value
	IncrementBalance(ctx context.Context, user domain.UserID, amount decimal.Decimal) (decimal.Decimal, error)
	// GetBalance returns the off-chain balance, zero when the user has none
	GetBalance(ctx context.Context, user domain.UserID) (decimal.Decimal, error)
	// GetAddress returns the linked address, empty when the user has none
	GetAddress(ctx context.Context, user domain.UserID) (string, error)
	// SetAddress links an address to the user unless one is already linked; reports whether it was set
	SetAddress(ctx context.Context, user domain.UserID, address string) (bool, error)
	// ListLinkedUsers iterates over users with a linked address; a returned cursor of 0 ends the iteration
	ListLinkedUsers(ctx context.Context, cursor uint64, count int64) ([]LinkedUser, uint64, error)
	// AcquireLock sets a named marker with a TTL if it is absent; reports whether it was set
	AcquireLock(ctx context.Context, name string, ttl time.Duration) (bool, error)
	// LockExists reports whether a named marker is present
	LockExists(ctx context.Context, name string) (bool, error)
	// LockTTL returns the remaining TTL of a named marker, negative when absent
	LockTTL(ctx context.Context, name string) (time.Duration, error)
	// ReleaseLock removes a named marker
	ReleaseLock(ctx context.Context, name string) error
}

// TallyStore defines the per-message tip bookkeeping operations
type TallyStore interface {
	// AddTip records amount for tipper under message if the tipper has not tipped yet; reports whether it was recorded
	AddTip(ctx context.Context, message domain.MessageID, tipper domain.UserID, amount decimal.Decimal) (bool, error)
	// RemoveTip deletes the entry of tipper under message
	RemoveTip(ctx context.Context, message domain.MessageID, tipper domain.UserID) error
	// HasTip reports whether tipper has tipped message
	HasTip(ctx context.Context, message domain.MessageID, tipper domain.UserID) (bool, error)
	// TipAmounts returns all recorded amounts of message
	TipAmounts(ctx context.Context, message domain.MessageID) ([]decimal.Decimal, error)
	// TipCount returns the number of distinct tippers of message
	TipCount(ctx context.Context, message domain.MessageID) (int64, error)
}

// Store combines the ledger and tally stores
type Store interface {
	LedgerStore
	TallyStore
	// Ping checks that the backend is reachable
	Ping(ctx context.Context) error
}
