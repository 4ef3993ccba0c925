package stellar

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stellar/go/clients/horizonclient"
	"github.com/stellar/go/protocols/horizon"
	"go.uber.org/zap"

	"github.com/mobius-network/tipbot-ledger/internal/adapter"
	"github.com/mobius-network/tipbot-ledger/internal/domain"
	"github.com/mobius-network/tipbot-ledger/internal/logger"
)

// Gateway is a read-only view of Stellar accounts.
// Transaction submission is done outside of this service.
//
//go:generate mockgen -source=gateway.go -destination=../../mocks/stellar_gateway.go -package=mocks -mock_names=Gateway=MockGateway
type Gateway interface {
	// TrustlineExists reports whether the account trusts the tipping asset.
	// An account that does not exist has no trustline.
	TrustlineExists(ctx context.Context, address string) (bool, error)

	// AssetBalance returns the account balance of the tipping asset.
	// An account that does not exist yet (e.g. a provisioning envelope not submitted) has a zero balance.
	AssetBalance(ctx context.Context, address string) (decimal.Decimal, error)

	// NextSequence returns the sequence number the next transaction of the account must use.
	// It is loaded from the network on every call and never cached.
	NextSequence(ctx context.Context, address string) (int64, error)
}

type gateway struct {
	horizon adapter.Horizon
	asset   domain.Asset
}

// NewGateway creates a Gateway reading from Horizon
func NewGateway(h adapter.Horizon, asset domain.Asset) Gateway {
	return &gateway{horizon: h, asset: asset}
}

func (g *gateway) TrustlineExists(ctx context.Context, address string) (bool, error) {
	account, found, err := g.loadAccount(ctx, address)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}

	_, ok := g.assetBalance(account)
	return ok, nil
}

func (g *gateway) AssetBalance(ctx context.Context, address string) (decimal.Decimal, error) {
	account, found, err := g.loadAccount(ctx, address)
	if err != nil {
		return decimal.Zero, err
	}
	if !found {
		return decimal.Zero, nil
	}

	balance, ok := g.assetBalance(account)
	if !ok {
		return decimal.Zero, nil
	}

	amount, err := domain.ParseAmount(balance.Balance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse balance of %s: %w", address, err)
	}
	return amount, nil
}

func (g *gateway) NextSequence(ctx context.Context, address string) (int64, error) {
	account, found, err := g.loadAccount(ctx, address)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, address)
	}

	seq, err := account.GetSequenceNumber()
	if err != nil {
		return 0, fmt.Errorf("failed to parse sequence number of %s: %w", address, err)
	}
	return seq + 1, nil
}

// loadAccount validates the address and fetches the account; found is false on a Horizon 404
func (g *gateway) loadAccount(ctx context.Context, address string) (horizon.Account, bool, error) {
	if err := domain.ValidateAddress(address); err != nil {
		return horizon.Account{}, false, err
	}

	account, err := g.horizon.AccountDetail(horizonclient.AccountRequest{AccountID: address})
	if err != nil {
		if horizonclient.IsNotFoundError(err) {
			logger.DebugCtx(ctx, "Stellar account not found", zap.String("address", address))
			return horizon.Account{}, false, nil
		}
		return horizon.Account{}, false, fmt.Errorf("failed to load account %s: %w", address, err)
	}

	return account, true, nil
}

// assetBalance finds the trustline of the tipping asset among the account balances
func (g *gateway) assetBalance(account horizon.Account) (horizon.Balance, bool) {
	for _, b := range account.Balances {
		if b.Asset.Code == g.asset.Code && b.Asset.Issuer == g.asset.Issuer {
			return b, true
		}
	}
	return horizon.Balance{}, false
}
