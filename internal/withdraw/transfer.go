package withdraw

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mobius-network/tipbot-ledger/internal/domain"
	"github.com/mobius-network/tipbot-ledger/internal/providers/stellar"
	"github.com/mobius-network/tipbot-ledger/internal/txbuild"
)

// Transferer moves funds between Stellar accounts directly.
// The envelope is authorized by the owner of the source account outside of this service.
//
//go:generate mockgen -source=transfer.go -destination=../mocks/transferer.go -package=mocks -mock_names=Transferer=MockTransferer
type Transferer interface {
	// Transfer builds an unsigned payment of amount from one account to another
	Transfer(ctx context.Context, from, to string, amount decimal.Decimal) (txbuild.Envelope, error)
}

// TransferConfig holds the peer transfer configuration
type TransferConfig struct {
	NetworkPassphrase string
	Asset             domain.Asset
	BaseFee           int64
}

type peerTransferer struct {
	config  TransferConfig
	gateway stellar.Gateway
}

// NewPeerTransferer creates a Transferer building payments from the source account sequence
func NewPeerTransferer(cfg TransferConfig, gw stellar.Gateway) Transferer {
	return &peerTransferer{config: cfg, gateway: gw}
}

func (p *peerTransferer) Transfer(ctx context.Context, from, to string, amount decimal.Decimal) (txbuild.Envelope, error) {
	if err := domain.ValidateAddress(to); err != nil {
		return txbuild.Envelope{}, err
	}

	sequence, err := p.gateway.NextSequence(ctx, from)
	if err != nil {
		return txbuild.Envelope{}, err
	}

	return txbuild.NewBuilder(from, sequence, p.config.BaseFee).
		Add(txbuild.Payment{
			Destination: to,
			Asset:       p.config.Asset,
			Amount:      amount,
		}).
		Build(p.config.NetworkPassphrase)
}
