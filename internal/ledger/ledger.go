package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mobius-network/tipbot-ledger/internal/domain"
	"github.com/mobius-network/tipbot-ledger/internal/logger"
	"github.com/mobius-network/tipbot-ledger/internal/payout"
	"github.com/mobius-network/tipbot-ledger/internal/providers/stellar"
	"github.com/mobius-network/tipbot-ledger/internal/store"
)

// Config holds the ledger configuration
type Config struct {
	// LockDuration is how long a tipping cooldown lasts
	LockDuration time.Duration
	// MergeGuard bounds how long a balance merge can hold its per-user guard
	MergeGuard time.Duration
}

// Ledger resolves and mutates user balances across the off-chain store and Stellar
//
//go:generate mockgen -source=ledger.go -destination=../mocks/ledger.go -package=mocks -mock_names=Ledger=MockLedger
type Ledger interface {
	// Custody returns where the user's funds live
	Custody(ctx context.Context, user domain.UserID) (domain.Custody, error)

	// ResolveBalance returns the live on-chain balance for self-custody users
	// and the off-chain balance otherwise
	ResolveBalance(ctx context.Context, user domain.UserID) (decimal.Decimal, error)

	// BalanceOf resolves the balance of an already loaded custody without re-reading the store
	BalanceOf(ctx context.Context, custody domain.Custody) (decimal.Decimal, error)

	// Increment atomically adds amount to the off-chain balance
	Increment(ctx context.Context, user domain.UserID, amount decimal.Decimal) error

	// Decrement atomically subtracts amount from the off-chain balance.
	// It does not check that the balance covers amount.
	Decrement(ctx context.Context, user domain.UserID, amount decimal.Decimal) error

	// Lock starts the tipping cooldown and reports whether this call started it.
	// A lock that is already set keeps its TTL.
	Lock(ctx context.Context, user domain.UserID) (bool, error)

	// Unlock ends the tipping cooldown
	Unlock(ctx context.Context, user domain.UserID) error

	// IsLocked reports whether the user is in the tipping cooldown.
	// Self-custody users are never locked.
	IsLocked(ctx context.Context, user domain.UserID) (bool, error)

	// MergeBalances pays the off-chain balance of a self-custody user to their
	// linked address and clears it. Returns the merged amount, zero when there was nothing to merge.
	MergeBalances(ctx context.Context, user domain.UserID) (decimal.Decimal, error)

	// Address returns the linked address, empty when the user is custodial
	Address(ctx context.Context, user domain.UserID) (string, error)

	// LinkAddress links a Stellar address to the user.
	// Returns domain.ErrAddressAlreadyLinked when the user already has one.
	LinkAddress(ctx context.Context, user domain.UserID, address string) error
}

type ledger struct {
	config  Config
	store   store.LedgerStore
	gateway stellar.Gateway
	payer   payout.Payer
}

// New creates a Ledger
func New(cfg Config, st store.LedgerStore, gw stellar.Gateway, payer payout.Payer) Ledger {
	if cfg.LockDuration <= 0 {
		cfg.LockDuration = domain.DEFAULT_LOCK_DURATION
	}
	if cfg.MergeGuard <= 0 {
		cfg.MergeGuard = domain.DEFAULT_MERGE_GUARD
	}

	return &ledger{
		config:  cfg,
		store:   st,
		gateway: gw,
		payer:   payer,
	}
}

func (l *ledger) Custody(ctx context.Context, user domain.UserID) (domain.Custody, error) {
	address, err := l.store.GetAddress(ctx, user)
	if err != nil {
		return nil, err
	}

	balance, err := l.store.GetBalance(ctx, user)
	if err != nil {
		return nil, err
	}

	if address == "" {
		return domain.Custodial{Balance: balance}, nil
	}
	return domain.SelfCustody{Address: address, PendingBalance: balance}, nil
}

func (l *ledger) ResolveBalance(ctx context.Context, user domain.UserID) (decimal.Decimal, error) {
	custody, err := l.Custody(ctx, user)
	if err != nil {
		return decimal.Zero, err
	}

	return l.BalanceOf(ctx, custody)
}

func (l *ledger) BalanceOf(ctx context.Context, custody domain.Custody) (decimal.Decimal, error) {
	switch c := custody.(type) {
	case domain.SelfCustody:
		return l.gateway.AssetBalance(ctx, c.Address)
	case domain.Custodial:
		return c.Balance, nil
	default:
		return decimal.Zero, fmt.Errorf("unknown custody kind %s", custody.Kind())
	}
}

func (l *ledger) Increment(ctx context.Context, user domain.UserID, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: increment by negative amount %s", domain.ErrInvalidAmount, amount)
	}

	balance, err := l.store.IncrementBalance(ctx, user, amount)
	if err != nil {
		return err
	}

	logger.DebugCtx(ctx, "Balance incremented",
		zap.String("user", string(user)),
		zap.String("amount", amount.String()),
		zap.String("balance", balance.String()))
	return nil
}

func (l *ledger) Decrement(ctx context.Context, user domain.UserID, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: decrement by negative amount %s", domain.ErrInvalidAmount, amount)
	}

	balance, err := l.store.IncrementBalance(ctx, user, amount.Neg())
	if err != nil {
		return err
	}

	logger.DebugCtx(ctx, "Balance decremented",
		zap.String("user", string(user)),
		zap.String("amount", amount.String()),
		zap.String("balance", balance.String()))
	return nil
}

func (l *ledger) Lock(ctx context.Context, user domain.UserID) (bool, error) {
	return l.store.AcquireLock(ctx, cooldownLockName(user), l.config.LockDuration)
}

func (l *ledger) Unlock(ctx context.Context, user domain.UserID) error {
	return l.store.ReleaseLock(ctx, cooldownLockName(user))
}

func (l *ledger) IsLocked(ctx context.Context, user domain.UserID) (bool, error) {
	address, err := l.store.GetAddress(ctx, user)
	if err != nil {
		return false, err
	}
	if address != "" {
		return false, nil
	}

	return l.store.LockExists(ctx, cooldownLockName(user))
}

// MergeBalances pays first and decrements by the paid amount afterwards.
// Decrementing instead of deleting keeps tips credited while the payout was in flight.
// A crash between the payout and the decrement leaves the off-chain balance in place.
func (l *ledger) MergeBalances(ctx context.Context, user domain.UserID) (decimal.Decimal, error) {
	custody, err := l.Custody(ctx, user)
	if err != nil {
		return decimal.Zero, err
	}

	selfCustody, ok := custody.(domain.SelfCustody)
	if !ok || !selfCustody.PendingBalance.IsPositive() {
		return decimal.Zero, nil
	}

	acquired, err := l.store.AcquireLock(ctx, mergeLockName(user), l.config.MergeGuard)
	if err != nil {
		return decimal.Zero, err
	}
	if !acquired {
		return decimal.Zero, domain.ErrMergeInProgress
	}
	defer func() {
		if err := l.store.ReleaseLock(ctx, mergeLockName(user)); err != nil {
			logger.WarnCtx(ctx, "Failed to release merge guard", zap.String("user", string(user)), zap.Error(err))
		}
	}()

	// Re-read under the guard, a concurrent merge may have finished in between
	amount, err := l.store.GetBalance(ctx, user)
	if err != nil {
		return decimal.Zero, err
	}
	if !amount.IsPositive() {
		return decimal.Zero, nil
	}

	if err := l.payer.Pay(ctx, amount, selfCustody.Address); err != nil {
		return decimal.Zero, fmt.Errorf("failed to merge balance of %s: %w", user, err)
	}

	if _, err := l.store.IncrementBalance(ctx, user, amount.Neg()); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("balance paid out but not cleared: %w", err),
			zap.String("user", string(user)),
			zap.String("amount", amount.String()))
		return decimal.Zero, err
	}

	logger.InfoCtx(ctx, "Merged off-chain balance",
		zap.String("user", string(user)),
		zap.String("address", selfCustody.Address),
		zap.String("amount", amount.String()))

	return amount, nil
}

func (l *ledger) Address(ctx context.Context, user domain.UserID) (string, error) {
	return l.store.GetAddress(ctx, user)
}

func (l *ledger) LinkAddress(ctx context.Context, user domain.UserID, address string) error {
	if err := domain.ValidateAddress(address); err != nil {
		return err
	}
	linked, err := l.store.SetAddress(ctx, user, address)
	if err != nil {
		return err
	}
	if !linked {
		return domain.ErrAddressAlreadyLinked
	}
	return nil
}

// cooldownLockName keeps the cooldown marker at lock:<user>
func cooldownLockName(user domain.UserID) string {
	return string(user)
}

func mergeLockName(user domain.UserID) string {
	return "merge:" + string(user)
}
