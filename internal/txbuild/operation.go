package txbuild

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stellar/go/txnbuild"

	"github.com/mobius-network/tipbot-ledger/internal/domain"
)

// OperationKind names the type of a Stellar operation
type OperationKind string

const (
	OperationKindCreateAccount OperationKind = "create_account"
	OperationKindChangeTrust   OperationKind = "change_trust"
	OperationKindSetOptions    OperationKind = "set_options"
	OperationKindPayment       OperationKind = "payment"
)

// Operation is a value object describing one Stellar operation.
// An empty Source means the transaction source account.
type Operation interface {
	Kind() OperationKind
	toTxnbuild() (txnbuild.Operation, error)
}

// CreateAccount funds a new account with native lumens
type CreateAccount struct {
	Source          string
	Destination     string
	StartingBalance decimal.Decimal
}

func (CreateAccount) Kind() OperationKind { return OperationKindCreateAccount }

func (o CreateAccount) toTxnbuild() (txnbuild.Operation, error) {
	if err := validateSource(o.Source); err != nil {
		return nil, err
	}
	if err := domain.ValidateAddress(o.Destination); err != nil {
		return nil, err
	}
	if !o.StartingBalance.IsPositive() {
		return nil, fmt.Errorf("%w: starting balance must be positive", domain.ErrInvalidAmount)
	}

	return &txnbuild.CreateAccount{
		Destination:   o.Destination,
		Amount:        domain.FormatAmount(o.StartingBalance),
		SourceAccount: o.Source,
	}, nil
}

// ChangeTrust creates or updates a trustline of the source account
type ChangeTrust struct {
	Source string
	Asset  domain.Asset
	Limit  string
}

func (ChangeTrust) Kind() OperationKind { return OperationKindChangeTrust }

func (o ChangeTrust) toTxnbuild() (txnbuild.Operation, error) {
	if err := validateSource(o.Source); err != nil {
		return nil, err
	}
	if err := o.Asset.Validate(); err != nil {
		return nil, err
	}

	line, err := creditAsset(o.Asset).ToChangeTrustAsset()
	if err != nil {
		return nil, fmt.Errorf("failed to convert trustline asset: %w", err)
	}

	return &txnbuild.ChangeTrust{
		Line:          line,
		Limit:         o.Limit,
		SourceAccount: o.Source,
	}, nil
}

// Signer is an additional signer of an account
type Signer struct {
	Address string
	Weight  uint8
}

// SetOptions changes the thresholds, master weight or signers of the source account.
// Nil fields are left unchanged.
type SetOptions struct {
	Source          string
	LowThreshold    *uint8
	MediumThreshold *uint8
	HighThreshold   *uint8
	MasterWeight    *uint8
	Signer          *Signer
}

func (SetOptions) Kind() OperationKind { return OperationKindSetOptions }

func (o SetOptions) toTxnbuild() (txnbuild.Operation, error) {
	if err := validateSource(o.Source); err != nil {
		return nil, err
	}

	op := &txnbuild.SetOptions{
		LowThreshold:    threshold(o.LowThreshold),
		MediumThreshold: threshold(o.MediumThreshold),
		HighThreshold:   threshold(o.HighThreshold),
		MasterWeight:    threshold(o.MasterWeight),
		SourceAccount:   o.Source,
	}

	if o.Signer != nil {
		if err := domain.ValidateAddress(o.Signer.Address); err != nil {
			return nil, err
		}
		op.Signer = &txnbuild.Signer{
			Address: o.Signer.Address,
			Weight:  txnbuild.Threshold(o.Signer.Weight),
		}
	}

	return op, nil
}

// AddSigner is a SetOptions that only adds a signer to the source account
func AddSigner(source, address string, weight uint8) SetOptions {
	return SetOptions{
		Source: source,
		Signer: &Signer{Address: address, Weight: weight},
	}
}

// Weight returns a pointer for the optional SetOptions fields
func Weight(w uint8) *uint8 {
	return &w
}

// Payment sends a credit asset to a destination
type Payment struct {
	Source      string
	Destination string
	Asset       domain.Asset
	Amount      decimal.Decimal
}

func (Payment) Kind() OperationKind { return OperationKindPayment }

func (o Payment) toTxnbuild() (txnbuild.Operation, error) {
	if err := validateSource(o.Source); err != nil {
		return nil, err
	}
	if err := domain.ValidateAddress(o.Destination); err != nil {
		return nil, err
	}
	if err := o.Asset.Validate(); err != nil {
		return nil, err
	}
	if o.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: payment amount must not be negative", domain.ErrInvalidAmount)
	}

	return &txnbuild.Payment{
		Destination:   o.Destination,
		Amount:        domain.FormatAmount(o.Amount),
		Asset:         creditAsset(o.Asset),
		SourceAccount: o.Source,
	}, nil
}

func validateSource(source string) error {
	if source == "" {
		return nil
	}
	return domain.ValidateAddress(source)
}

func creditAsset(a domain.Asset) txnbuild.CreditAsset {
	return txnbuild.CreditAsset{Code: a.Code, Issuer: a.Issuer}
}

func threshold(w *uint8) *txnbuild.Threshold {
	if w == nil {
		return nil
	}
	return txnbuild.NewThreshold(txnbuild.Threshold(*w))
}
