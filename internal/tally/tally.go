package tally

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mobius-network/tipbot-ledger/internal/domain"
	"github.com/mobius-network/tipbot-ledger/internal/logger"
	"github.com/mobius-network/tipbot-ledger/internal/store"
)

// Summary is the aggregated tip state of a message
type Summary struct {
	MessageID domain.MessageID
	Balance   decimal.Decimal
	Count     int64
}

// Tally keeps per-message tip records
//
//go:generate mockgen -source=tally.go -destination=../mocks/tally.go -package=mocks -mock_names=Tally=MockTally
type Tally interface {
	// Tip records a tip of amount by tipper on message.
	// Returns domain.ErrAlreadyTipped when the tipper has already tipped the message.
	Tip(ctx context.Context, message domain.MessageID, tipper domain.UserID, amount decimal.Decimal) error

	// Untip removes the tip of tipper on message, so that a tip whose credit failed can be retried
	Untip(ctx context.Context, message domain.MessageID, tipper domain.UserID) error

	// Tipped reports whether tipper has tipped message
	Tipped(ctx context.Context, message domain.MessageID, tipper domain.UserID) (bool, error)

	// Balance returns the sum of all tips on message
	Balance(ctx context.Context, message domain.MessageID) (decimal.Decimal, error)

	// Count returns the number of distinct tippers of message
	Count(ctx context.Context, message domain.MessageID) (int64, error)

	// Summary returns the balance and count of message
	Summary(ctx context.Context, message domain.MessageID) (Summary, error)
}

type tally struct {
	store store.TallyStore
}

// New creates a Tally
func New(st store.TallyStore) Tally {
	return &tally{store: st}
}

func (t *tally) Tip(ctx context.Context, message domain.MessageID, tipper domain.UserID, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: tip amount must be positive", domain.ErrInvalidAmount)
	}

	added, err := t.store.AddTip(ctx, message, tipper, amount)
	if err != nil {
		return err
	}
	if !added {
		return domain.ErrAlreadyTipped
	}

	logger.DebugCtx(ctx, "Tip recorded",
		zap.String("message", string(message)),
		zap.String("tipper", string(tipper)),
		zap.String("amount", amount.String()))
	return nil
}

func (t *tally) Untip(ctx context.Context, message domain.MessageID, tipper domain.UserID) error {
	return t.store.RemoveTip(ctx, message, tipper)
}

func (t *tally) Tipped(ctx context.Context, message domain.MessageID, tipper domain.UserID) (bool, error) {
	return t.store.HasTip(ctx, message, tipper)
}

func (t *tally) Balance(ctx context.Context, message domain.MessageID) (decimal.Decimal, error) {
	amounts, err := t.store.TipAmounts(ctx, message)
	if err != nil {
		return decimal.Zero, err
	}

	return domain.NormalizeAmount(decimal.Sum(decimal.Zero, amounts...)), nil
}

func (t *tally) Count(ctx context.Context, message domain.MessageID) (int64, error) {
	return t.store.TipCount(ctx, message)
}

func (t *tally) Summary(ctx context.Context, message domain.MessageID) (Summary, error) {
	balance, err := t.Balance(ctx, message)
	if err != nil {
		return Summary{}, err
	}

	count, err := t.Count(ctx, message)
	if err != nil {
		return Summary{}, err
	}

	return Summary{MessageID: message, Balance: balance, Count: count}, nil
}
