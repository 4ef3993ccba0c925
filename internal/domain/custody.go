package domain

import "github.com/shopspring/decimal"

// CustodyKind names the variant of a Custody value
type CustodyKind string

const (
	CustodyKindCustodial   CustodyKind = "custodial"
	CustodyKindSelfCustody CustodyKind = "self_custody"
)

// Custody is where a user's funds live.
// It is either Custodial (tracked off-chain by the bot) or SelfCustody
// (held by the user's linked Stellar account).
type Custody interface {
	Kind() CustodyKind
}

// Custodial is the state of a user without a linked address
type Custodial struct {
	Balance decimal.Decimal
}

// Kind implements Custody
func (Custodial) Kind() CustodyKind {
	return CustodyKindCustodial
}

// SelfCustody is the state of a user with a linked address.
// PendingBalance is the off-chain counter still waiting to be merged on-chain.
type SelfCustody struct {
	Address        string
	PendingBalance decimal.Decimal
}

// Kind implements Custody
func (SelfCustody) Kind() CustodyKind {
	return CustodyKindSelfCustody
}
