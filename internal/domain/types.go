package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stellar/go/keypair"
)

// UserID is the opaque chat platform identifier of a user
type UserID string

// MessageID is the opaque chat platform identifier of a message
type MessageID string

// Asset is the non-native Stellar asset used for tipping
type Asset struct {
	Code   string
	Issuer string
}

// String returns the asset in CODE:ISSUER form
func (a Asset) String() string {
	return a.Code + ":" + a.Issuer
}

// Validate checks the asset code length and issuer address
func (a Asset) Validate() error {
	if l := len(a.Code); l == 0 || l > 12 {
		return fmt.Errorf("asset code must be 1-12 characters: %q", a.Code)
	}
	return ValidateAddress(a.Issuer)
}

// stroopsPerUnit is the Stellar conversion factor between a unit and its base unit
var stroopsPerUnit = decimal.New(1, STELLAR_AMOUNT_PRECISION)

// NormalizeAmount rounds an amount to the Stellar precision.
// Every amount that enters or leaves the ledger passes through here.
func NormalizeAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(STELLAR_AMOUNT_PRECISION)
}

// ParseUserAmount parses an amount supplied by a caller; an empty string is zero.
// Unlike ParseAmount it rejects amounts finer than the Stellar precision instead of rounding them.
func ParseUserAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrInvalidAmount, err.Error())
	}
	if !d.Equal(NormalizeAmount(d)) {
		return decimal.Zero, fmt.Errorf("%w: %s has more than %d decimal places", ErrInvalidAmount, s, STELLAR_AMOUNT_PRECISION)
	}

	return NormalizeAmount(d), nil
}

// ParseAmount parses a stored decimal string, rounding it to the Stellar precision; an empty string is zero
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrInvalidAmount, err.Error())
	}

	return NormalizeAmount(d), nil
}

// FormatAmount renders an amount the way Stellar operations expect it
func FormatAmount(d decimal.Decimal) string {
	return NormalizeAmount(d).StringFixed(STELLAR_AMOUNT_PRECISION)
}

// ToStroops converts an amount to the Stellar base unit
func ToStroops(d decimal.Decimal) int64 {
	return NormalizeAmount(d).Mul(stroopsPerUnit).IntPart()
}

// FromStroops converts a base unit amount to units
func FromStroops(stroops int64) decimal.Decimal {
	return decimal.NewFromInt(stroops).Div(stroopsPerUnit)
}

// ValidateAddress checks that address is a Stellar account id (G...)
func ValidateAddress(address string) error {
	if _, err := keypair.ParseAddress(address); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	return nil
}
