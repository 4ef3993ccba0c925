package withdraw

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mobius-network/tipbot-ledger/internal/domain"
	"github.com/mobius-network/tipbot-ledger/internal/ledger"
	"github.com/mobius-network/tipbot-ledger/internal/logger"
	"github.com/mobius-network/tipbot-ledger/internal/payout"
	"github.com/mobius-network/tipbot-ledger/internal/txbuild"
)

// Result is the outcome of a withdrawal.
// Envelope is set only for self-custody users and must be signed by them.
type Result struct {
	Amount   decimal.Decimal
	Custody  domain.CustodyKind
	Envelope *txbuild.Envelope
}

// Service settles outgoing transfers
//
//go:generate mockgen -source=service.go -destination=../mocks/withdraw.go -package=mocks -mock_names=Service=MockWithdrawService
type Service interface {
	// Withdraw sends amount from the user's funds to destination.
	// The amount is not checked against the balance, only a zero balance is rejected.
	Withdraw(ctx context.Context, user domain.UserID, destination string, amount decimal.Decimal) (Result, error)
}

type service struct {
	ledger     ledger.Ledger
	payer      payout.Payer
	transferer Transferer
}

// NewService creates a withdraw Service
func NewService(l ledger.Ledger, payer payout.Payer, transferer Transferer) Service {
	return &service{
		ledger:     l,
		payer:      payer,
		transferer: transferer,
	}
}

func (s *service) Withdraw(ctx context.Context, user domain.UserID, destination string, amount decimal.Decimal) (Result, error) {
	amount = domain.NormalizeAmount(amount)
	if !amount.IsPositive() {
		return Result{}, fmt.Errorf("%w: withdraw amount must be positive", domain.ErrInvalidAmount)
	}
	if err := domain.ValidateAddress(destination); err != nil {
		return Result{}, err
	}

	// One custody read decides both the balance check and the withdrawal path
	custody, err := s.ledger.Custody(ctx, user)
	if err != nil {
		return Result{}, err
	}

	balance, err := s.ledger.BalanceOf(ctx, custody)
	if err != nil {
		return Result{}, err
	}
	if balance.IsZero() {
		return Result{}, domain.ErrNothingToWithdraw
	}

	switch c := custody.(type) {
	case domain.SelfCustody:
		envelope, err := s.transferer.Transfer(ctx, c.Address, destination, amount)
		if err != nil {
			return Result{}, err
		}

		logger.InfoCtx(ctx, "Built self-custody withdrawal",
			zap.String("user", string(user)),
			zap.String("from", c.Address),
			zap.String("destination", destination),
			zap.String("amount", amount.String()))
		return Result{Amount: amount, Custody: c.Kind(), Envelope: &envelope}, nil

	case domain.Custodial:
		// Pay before decrementing: a failed payout must leave the ledger untouched
		if err := s.payer.Pay(ctx, amount, destination); err != nil {
			return Result{}, err
		}

		if err := s.ledger.Decrement(ctx, user, amount); err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("withdrawal paid out but balance not decremented: %w", err),
				zap.String("user", string(user)),
				zap.String("amount", amount.String()))
			return Result{}, err
		}

		logger.InfoCtx(ctx, "Custodial withdrawal completed",
			zap.String("user", string(user)),
			zap.String("destination", destination),
			zap.String("amount", amount.String()))
		return Result{Amount: amount, Custody: c.Kind()}, nil

	default:
		return Result{}, fmt.Errorf("unknown custody kind %s", custody.Kind())
	}
}
