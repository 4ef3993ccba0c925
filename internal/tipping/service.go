package tipping

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mobius-network/tipbot-ledger/internal/domain"
	"github.com/mobius-network/tipbot-ledger/internal/ledger"
	"github.com/mobius-network/tipbot-ledger/internal/logger"
	"github.com/mobius-network/tipbot-ledger/internal/tally"
)

// Config holds the tipping configuration
type Config struct {
	// Rate is the value of a tip when no amount is given
	Rate decimal.Decimal
}

// Tip is a tip on a message
type Tip struct {
	Message domain.MessageID
	Tipper  domain.UserID
	Author  domain.UserID
	// Amount defaults to the configured rate when zero
	Amount decimal.Decimal
}

// Service records tips and credits message authors
//
//go:generate mockgen -source=service.go -destination=../mocks/tipping.go -package=mocks -mock_names=Service=MockTippingService
type Service interface {
	// TipMessage records the tip and credits its amount to the author.
	// A custodial tipper on cooldown is refused, and a tip starts a new cooldown.
	// A tip whose credit fails is rolled back so it can be retried.
	TipMessage(ctx context.Context, tip Tip) (tally.Summary, error)
}

type service struct {
	config Config
	ledger ledger.Ledger
	tally  tally.Tally
}

// NewService creates a tipping Service
func NewService(cfg Config, l ledger.Ledger, t tally.Tally) Service {
	if !cfg.Rate.IsPositive() {
		cfg.Rate = decimal.RequireFromString(domain.DEFAULT_TIP_RATE)
	}

	return &service{
		config: cfg,
		ledger: l,
		tally:  t,
	}
}

func (s *service) TipMessage(ctx context.Context, tip Tip) (tally.Summary, error) {
	if tip.Tipper == "" || tip.Author == "" || tip.Message == "" {
		return tally.Summary{}, fmt.Errorf("message, tipper and author are required")
	}
	if tip.Tipper == tip.Author {
		return tally.Summary{}, domain.ErrSelfTip
	}

	amount := domain.NormalizeAmount(tip.Amount)
	if amount.IsZero() {
		amount = s.config.Rate
	}
	if !amount.IsPositive() {
		return tally.Summary{}, fmt.Errorf("%w: tip amount must be positive", domain.ErrInvalidAmount)
	}

	tipped, err := s.tally.Tipped(ctx, tip.Message, tip.Tipper)
	if err != nil {
		return tally.Summary{}, err
	}
	if tipped {
		return tally.Summary{}, domain.ErrAlreadyTipped
	}

	// Starting the cooldown is the gate. A refused lock only blocks custodial
	// tippers since self-custody tippers are never locked.
	acquired, err := s.ledger.Lock(ctx, tip.Tipper)
	if err != nil {
		return tally.Summary{}, err
	}
	if !acquired {
		locked, err := s.ledger.IsLocked(ctx, tip.Tipper)
		if err != nil {
			return tally.Summary{}, err
		}
		if locked {
			return tally.Summary{}, domain.ErrCooldown
		}
	}

	// The tally entry is the atomic guard against concurrent duplicates, it goes first
	if err := s.tally.Tip(ctx, tip.Message, tip.Tipper, amount); err != nil {
		s.releaseCooldown(ctx, tip.Tipper, acquired)
		return tally.Summary{}, err
	}

	if err := s.ledger.Increment(ctx, tip.Author, amount); err != nil {
		if untipErr := s.tally.Untip(ctx, tip.Message, tip.Tipper); untipErr != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("tip recorded but author not credited: %w", err),
				zap.NamedError("untipError", untipErr),
				zap.String("message", string(tip.Message)),
				zap.String("tipper", string(tip.Tipper)),
				zap.String("author", string(tip.Author)),
				zap.String("amount", amount.String()))
		}
		s.releaseCooldown(ctx, tip.Tipper, acquired)
		return tally.Summary{}, err
	}

	logger.InfoCtx(ctx, "Message tipped",
		zap.String("message", string(tip.Message)),
		zap.String("tipper", string(tip.Tipper)),
		zap.String("author", string(tip.Author)),
		zap.String("amount", amount.String()))

	return s.tally.Summary(ctx, tip.Message)
}

func (s *service) releaseCooldown(ctx context.Context, tipper domain.UserID, acquired bool) {
	if !acquired {
		return
	}
	if err := s.ledger.Unlock(ctx, tipper); err != nil {
		logger.WarnCtx(ctx, "Failed to release tipping cooldown",
			zap.String("tipper", string(tipper)),
			zap.Error(err))
	}
}
