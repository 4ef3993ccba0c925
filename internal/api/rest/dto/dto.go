package dto

import (
	"github.com/mobius-network/tipbot-ledger/internal/domain"
	"github.com/mobius-network/tipbot-ledger/internal/tally"
	"github.com/mobius-network/tipbot-ledger/internal/txbuild"
)

// BalanceResponse is the resolved balance of a user
type BalanceResponse struct {
	UserID         string  `json:"user_id"`
	Balance        string  `json:"balance"`
	Custody        string  `json:"custody"`
	Address        *string `json:"address,omitempty"`
	PendingBalance *string `json:"pending_balance,omitempty"` // Off-chain amount not merged yet
	Locked         bool    `json:"locked"`
}

// RegisterAddressRequest links a Stellar account to a user
type RegisterAddressRequest struct {
	Address string `json:"address" binding:"required"`
	Deposit string `json:"deposit"`
}

// RegisterAddressResponse carries the envelope the candidate must countersign
type RegisterAddressResponse struct {
	Path     string           `json:"path"`
	Address  string           `json:"address"`
	Envelope EnvelopeResponse `json:"envelope"`
}

// WithdrawRequest sends funds to a Stellar address
type WithdrawRequest struct {
	Destination string `json:"destination" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
}

// WithdrawResponse is the outcome of a withdrawal
type WithdrawResponse struct {
	Amount   string            `json:"amount"`
	Custody  string            `json:"custody"`
	Envelope *EnvelopeResponse `json:"envelope,omitempty"` // Set for self-custody users, to be signed by them
}

// MergeResponse is the outcome of a balance merge
type MergeResponse struct {
	Merged string `json:"merged"`
}

// TipRequest tips a message
type TipRequest struct {
	Tipper string `json:"tipper" binding:"required"`
	Author string `json:"author" binding:"required"`
	Amount string `json:"amount"`
}

// TipSummaryResponse is the tip state of a message
type TipSummaryResponse struct {
	MessageID string `json:"message_id"`
	Balance   string `json:"balance"`
	Count     int64  `json:"count"`
	Tipped    *bool  `json:"tipped,omitempty"` // Only when a tipper is queried
}

// EnvelopeResponse is an encoded transaction envelope
type EnvelopeResponse struct {
	XDR        string   `json:"xdr"`
	Hash       string   `json:"hash"`
	Source     string   `json:"source"`
	Sequence   int64    `json:"sequence,string"`
	Fee        int64    `json:"fee"`
	Operations []string `json:"operations"`
}

// NewEnvelopeResponse maps an envelope
func NewEnvelopeResponse(env txbuild.Envelope) EnvelopeResponse {
	ops := make([]string, len(env.Operations))
	for i, op := range env.Operations {
		ops[i] = string(op)
	}

	return EnvelopeResponse{
		XDR:        env.XDR,
		Hash:       env.Hash,
		Source:     env.Source,
		Sequence:   env.Sequence,
		Fee:        env.Fee,
		Operations: ops,
	}
}

// NewTipSummaryResponse maps a tally summary
func NewTipSummaryResponse(s tally.Summary) TipSummaryResponse {
	return TipSummaryResponse{
		MessageID: string(s.MessageID),
		Balance:   domain.FormatAmount(s.Balance),
		Count:     s.Count,
	}
}
