package txbuild

import (
	"fmt"

	"github.com/stellar/go/keypair"
	"github.com/stellar/go/txnbuild"

	"github.com/mobius-network/tipbot-ledger/internal/domain"
)

// Envelope is a base64 XDR transaction envelope ready for countersigning and submission
type Envelope struct {
	XDR        string
	Hash       string
	Source     string
	Sequence   int64
	Fee        int64
	Operations []OperationKind
}

// Fee returns the fee of a transaction with n operations
func Fee(baseFee int64, n int) int64 {
	return baseFee * int64(n)
}

// Builder assembles a transaction from ordered operations.
// The sequence number is supplied by the caller and must be fetched right before building.
type Builder struct {
	source   string
	sequence int64
	baseFee  int64
	ops      []Operation
}

// NewBuilder creates a Builder for a transaction of source using sequence
func NewBuilder(source string, sequence int64, baseFee int64) *Builder {
	if baseFee < domain.STELLAR_MIN_BASE_FEE {
		baseFee = domain.STELLAR_MIN_BASE_FEE
	}

	return &Builder{
		source:   source,
		sequence: sequence,
		baseFee:  baseFee,
	}
}

// Add appends operations in order
func (b *Builder) Add(ops ...Operation) *Builder {
	b.ops = append(b.ops, ops...)
	return b
}

// Operations returns the kinds of the operations added so far
func (b *Builder) Operations() []OperationKind {
	kinds := make([]OperationKind, len(b.ops))
	for i, op := range b.ops {
		kinds[i] = op.Kind()
	}
	return kinds
}

// Fee returns the fee of the transaction
func (b *Builder) Fee() int64 {
	return Fee(b.baseFee, len(b.ops))
}

// Build encodes the transaction for the network identified by passphrase.
// Without signers the envelope is unsigned.
func (b *Builder) Build(passphrase string, signers ...*keypair.Full) (Envelope, error) {
	if err := domain.ValidateAddress(b.source); err != nil {
		return Envelope{}, err
	}
	if len(b.ops) == 0 {
		return Envelope{}, fmt.Errorf("transaction has no operations")
	}

	ops := make([]txnbuild.Operation, 0, len(b.ops))
	for i, op := range b.ops {
		o, err := op.toTxnbuild()
		if err != nil {
			return Envelope{}, fmt.Errorf("invalid %s operation at index %d: %w", op.Kind(), i, err)
		}
		ops = append(ops, o)
	}

	tx, err := txnbuild.NewTransaction(txnbuild.TransactionParams{
		SourceAccount:        &txnbuild.SimpleAccount{AccountID: b.source, Sequence: b.sequence},
		IncrementSequenceNum: false,
		Operations:           ops,
		BaseFee:              b.baseFee,
		Preconditions:        txnbuild.Preconditions{TimeBounds: txnbuild.NewInfiniteTimeout()},
	})
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to build transaction: %w", err)
	}

	if len(signers) > 0 {
		tx, err = tx.Sign(passphrase, signers...)
		if err != nil {
			return Envelope{}, fmt.Errorf("failed to sign transaction: %w", err)
		}
	}

	xdr, err := tx.Base64()
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to encode transaction: %w", err)
	}

	hash, err := tx.HashHex(passphrase)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to hash transaction: %w", err)
	}

	return Envelope{
		XDR:        xdr,
		Hash:       hash,
		Source:     b.source,
		Sequence:   b.sequence,
		Fee:        tx.MaxFee(),
		Operations: b.Operations(),
	}, nil
}
