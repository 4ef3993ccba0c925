package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mobius-network/tipbot-ledger/internal/adapter"
	"github.com/mobius-network/tipbot-ledger/internal/domain"
	"github.com/mobius-network/tipbot-ledger/internal/ledger"
	"github.com/mobius-network/tipbot-ledger/internal/logger"
	"github.com/mobius-network/tipbot-ledger/internal/store"
)

// BalanceMergeSweeperConfig holds configuration for the balance merge sweeper
type BalanceMergeSweeperConfig struct {
	Interval        time.Duration // Time to sleep between sweep cycles
	BatchSize       int64         // Linked users fetched per scan page
	WorkerPoolSize  int           // Concurrent merges
	WorkerQueueSize int           // Pending merges before Submit blocks; defaults to BatchSize
	RetryInterval   time.Duration // First retry delay of a failed merge
	MaxRetryElapsed time.Duration // Total retry time of a single merge
}

// balanceMergeSweeper merges the off-chain balances of users who linked an address
type balanceMergeSweeper struct {
	config    *BalanceMergeSweeperConfig
	store     store.LedgerStore
	ledger    ledger.Ledger
	clock     adapter.Clock
	pool      pond.Pool
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewBalanceMergeSweeper creates a new balance merge sweeper
func NewBalanceMergeSweeper(
	config *BalanceMergeSweeperConfig,
	st store.LedgerStore,
	l ledger.Ledger,
	clock adapter.Clock,
) Sweeper {
	if config.RetryInterval <= 0 {
		config.RetryInterval = time.Second
	}
	if config.WorkerQueueSize <= 0 {
		config.WorkerQueueSize = int(config.BatchSize)
	}
	if config.MaxRetryElapsed <= 0 {
		config.MaxRetryElapsed = 30 * time.Second
	}

	return &balanceMergeSweeper{
		config:    config,
		store:     st,
		ledger:    l,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *balanceMergeSweeper) Name() string {
	return "balance-merge-sweeper"
}

// Start runs sweep cycles separated by the configured interval
func (s *balanceMergeSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting balance merge sweeper",
		zap.Duration("interval", s.config.Interval),
		zap.Int64("batch_size", s.config.BatchSize),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Balance merge sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Balance merge sweeper stop requested")
			return nil
		default:
			if err := s.runSweepCycle(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.ErrorCtx(ctx, err)
			}

			if !s.sleep(ctx, s.config.Interval) {
				return nil
			}
		}
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *balanceMergeSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping balance merge sweeper")
	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Balance merge sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Balance merge sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle scans every linked user once and merges their pending balance
func (s *balanceMergeSweeper) runSweepCycle(ctx context.Context) error {
	startTime := s.clock.Now()

	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.WorkerQueueSize),
		pond.WithContext(ctx),
	)

	var scanned, merged, failed atomic.Int32

	var cursor uint64
	for {
		users, next, err := s.store.ListLinkedUsers(ctx, cursor, s.config.BatchSize)
		if err != nil {
			s.pool.StopAndWait()
			return fmt.Errorf("failed to list linked users: %w", err)
		}

		for _, u := range users {
			user := u.UserID
			scanned.Add(1)
			s.pool.Submit(func() {
				amount, err := s.mergeWithRetry(ctx, user)
				if err != nil {
					failed.Add(1)
					logger.ErrorCtx(ctx, fmt.Errorf("failed to merge balance: %w", err), zap.String("user", string(user)))
					return
				}
				if amount.IsPositive() {
					merged.Add(1)
				}
			})
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	s.pool.StopAndWait()

	logger.InfoCtx(ctx, "Sweep cycle completed",
		zap.Duration("duration", s.clock.Since(startTime)),
		zap.Int32("scanned", scanned.Load()),
		zap.Int32("merged", merged.Load()),
		zap.Int32("failed", failed.Load()),
	)

	return nil
}

// mergeWithRetry retries transient failures with exponential backoff.
// A rejected payout is never retried: the payout may have taken effect.
func (s *balanceMergeSweeper) mergeWithRetry(ctx context.Context, user domain.UserID) (amount decimal.Decimal, err error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.config.RetryInterval
	b.MaxInterval = 10 * s.config.RetryInterval
	b.MaxElapsedTime = s.config.MaxRetryElapsed
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	var attemptCount int
	operation := func() error {
		amount, err = s.ledger.MergeBalances(ctx, user)
		if err == nil {
			return nil
		}
		if isPermanent(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	notifyOnError := func(err error, duration time.Duration) {
		attemptCount++
		logger.WarnCtx(ctx, "Balance merge failed, retrying",
			zap.String("user", string(user)),
			zap.Error(err),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", duration),
		)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notifyOnError); err != nil {
		return amount, err
	}

	return amount, nil
}

// sleep returns false when interrupted by context cancellation or stop
func (s *balanceMergeSweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}

func isPermanent(err error) bool {
	return errors.Is(err, domain.ErrPayoutFailed) ||
		errors.Is(err, domain.ErrInsufficientFunds) ||
		errors.Is(err, domain.ErrMergeInProgress) ||
		errors.Is(err, domain.ErrInvalidAddress) ||
		errors.Is(err, context.Canceled)
}
