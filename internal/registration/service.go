package registration

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mobius-network/tipbot-ledger/internal/adapter"
	"github.com/mobius-network/tipbot-ledger/internal/domain"
	"github.com/mobius-network/tipbot-ledger/internal/ledger"
	"github.com/mobius-network/tipbot-ledger/internal/logger"
	"github.com/mobius-network/tipbot-ledger/internal/providers/stellar"
	"github.com/mobius-network/tipbot-ledger/internal/txbuild"
)

// Path is the registration flow taken for a request
type Path string

const (
	// PathProvisioning creates a new account for a user without a linked address
	PathProvisioning Path = "provisioning"
	// PathTopUp funds the already linked account of a user
	PathTopUp Path = "top_up"
)

// Signer weights and thresholds of a provisioned account.
// The candidate key alone reaches the high threshold; the application key alone only the medium one.
const (
	provisionedLowThreshold    uint8 = 1
	provisionedMediumThreshold uint8 = 1
	provisionedHighThreshold   uint8 = 2
	provisionedMasterWeight    uint8 = 0
	candidateSignerWeight      uint8 = 2
	appSignerWeight            uint8 = 1
)

// Config holds the registration configuration
type Config struct {
	NetworkPassphrase string
	Asset             domain.Asset
	// AppAddress is the application operating key added as a signer of provisioned accounts
	AppAddress string
	BaseFee    int64
}

// Result is the outcome of a registration.
// The envelope still needs the candidate signature before it can be submitted.
type Result struct {
	Path     Path
	Address  string
	Envelope txbuild.Envelope
}

// Service links Stellar accounts to users
//
//go:generate mockgen -source=service.go -destination=../mocks/registration.go -package=mocks -mock_names=Service=MockRegistrationService
type Service interface {
	// Register builds the transaction that links candidate to user.
	// The candidate account must trust the tipping asset and funds the transaction.
	Register(ctx context.Context, user domain.UserID, candidate string, deposit decimal.Decimal) (Result, error)
}

type service struct {
	config  Config
	ledger  ledger.Ledger
	gateway stellar.Gateway
	keypair adapter.Keypair
}

// NewService creates a registration Service
func NewService(cfg Config, l ledger.Ledger, gw stellar.Gateway, kp adapter.Keypair) Service {
	return &service{
		config:  cfg,
		ledger:  l,
		gateway: gw,
		keypair: kp,
	}
}

func (s *service) Register(ctx context.Context, user domain.UserID, candidate string, deposit decimal.Decimal) (Result, error) {
	if err := domain.ValidateAddress(candidate); err != nil {
		return Result{}, err
	}
	if deposit.IsNegative() {
		return Result{}, fmt.Errorf("%w: deposit must not be negative", domain.ErrInvalidAmount)
	}

	trusted, err := s.gateway.TrustlineExists(ctx, candidate)
	if err != nil {
		return Result{}, err
	}
	if !trusted {
		return Result{}, domain.ErrNoTrustline
	}

	linked, err := s.ledger.Address(ctx, user)
	if err != nil {
		return Result{}, err
	}

	if linked != "" {
		return s.topUp(ctx, user, candidate, linked, deposit)
	}
	return s.provision(ctx, user, candidate, deposit)
}

// topUp pays deposit from candidate to the linked account
func (s *service) topUp(ctx context.Context, user domain.UserID, candidate, linked string, deposit decimal.Decimal) (Result, error) {
	sequence, err := s.gateway.NextSequence(ctx, candidate)
	if err != nil {
		return Result{}, err
	}

	envelope, err := txbuild.NewBuilder(candidate, sequence, s.config.BaseFee).
		Add(txbuild.Payment{
			Destination: linked,
			Asset:       s.config.Asset,
			Amount:      deposit,
		}).
		Build(s.config.NetworkPassphrase)
	if err != nil {
		return Result{}, err
	}

	logger.InfoCtx(ctx, "Built top-up transaction",
		zap.String("user", string(user)),
		zap.String("candidate", candidate),
		zap.String("address", linked),
		zap.String("hash", envelope.Hash))

	return Result{Path: PathTopUp, Address: linked, Envelope: envelope}, nil
}

// provision creates a fresh account controlled by the candidate and application keys.
// The new account signs its own operations; its master key is disabled by the same transaction.
func (s *service) provision(ctx context.Context, user domain.UserID, candidate string, deposit decimal.Decimal) (Result, error) {
	sequence, err := s.gateway.NextSequence(ctx, candidate)
	if err != nil {
		return Result{}, err
	}

	account, err := s.keypair.Random()
	if err != nil {
		return Result{}, fmt.Errorf("failed to generate keypair: %w", err)
	}
	address := account.Address()

	startingBalance := decimal.RequireFromString(domain.STELLAR_BASE_RESERVE).
		Add(decimal.RequireFromString(domain.STELLAR_RESERVE_BUFFER))

	envelope, err := txbuild.NewBuilder(candidate, sequence, s.config.BaseFee).
		Add(
			txbuild.CreateAccount{
				Destination:     address,
				StartingBalance: startingBalance,
			},
			txbuild.ChangeTrust{
				Source: address,
				Asset:  s.config.Asset,
				Limit:  domain.STELLAR_MAX_TRUST_LIMIT,
			},
			txbuild.SetOptions{
				Source:          address,
				LowThreshold:    txbuild.Weight(provisionedLowThreshold),
				MediumThreshold: txbuild.Weight(provisionedMediumThreshold),
				HighThreshold:   txbuild.Weight(provisionedHighThreshold),
				MasterWeight:    txbuild.Weight(provisionedMasterWeight),
				Signer:          &txbuild.Signer{Address: candidate, Weight: candidateSignerWeight},
			},
			txbuild.AddSigner(address, s.config.AppAddress, appSignerWeight),
			txbuild.Payment{
				Destination: address,
				Asset:       s.config.Asset,
				Amount:      deposit,
			},
		).
		Build(s.config.NetworkPassphrase, account)
	if err != nil {
		return Result{}, err
	}

	// Linked before returning so a retried registration takes the top-up path.
	// A concurrent registration that linked first wins and this one becomes a top-up.
	if err := s.ledger.LinkAddress(ctx, user, address); err != nil {
		if !errors.Is(err, domain.ErrAddressAlreadyLinked) {
			return Result{}, err
		}

		linked, err := s.ledger.Address(ctx, user)
		if err != nil {
			return Result{}, err
		}

		logger.InfoCtx(ctx, "Address linked concurrently, falling back to top-up",
			zap.String("user", string(user)),
			zap.String("address", linked),
			zap.String("discarded", address))
		return s.topUp(ctx, user, candidate, linked, deposit)
	}

	logger.InfoCtx(ctx, "Built provisioning transaction",
		zap.String("user", string(user)),
		zap.String("candidate", candidate),
		zap.String("address", address),
		zap.String("hash", envelope.Hash))

	return Result{Path: PathProvisioning, Address: address, Envelope: envelope}, nil
}
