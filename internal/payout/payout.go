package payout

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mobius-network/tipbot-ledger/internal/adapter"
	"github.com/mobius-network/tipbot-ledger/internal/domain"
	"github.com/mobius-network/tipbot-ledger/internal/logger"
)

// Payer moves funds from the application pool account to a Stellar address.
// It is provided by an external wallet service; the ledger only calls it.
//
//go:generate mockgen -source=payout.go -destination=../mocks/payout.go -package=mocks -mock_names=Payer=MockPayer
type Payer interface {
	// Pay sends amount of the tipping asset to target.
	// Returns domain.ErrInsufficientFunds when the pool cannot cover it.
	Pay(ctx context.Context, amount decimal.Decimal, target string) error
}

// Config holds the payout service configuration
type Config struct {
	URL    string
	APIKey string
}

// payoutRequest is the body of POST /payouts
type payoutRequest struct {
	Amount        string `json:"amount"`
	TargetAddress string `json:"target_address"`
}

// payoutError is the error body returned by the payout service
type payoutError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const insufficientFundsCode = "insufficient_funds"

type client struct {
	cfg  Config
	http adapter.HTTPClient
}

// NewClient creates a Payer calling the external wallet service over HTTP
func NewClient(cfg Config, httpClient adapter.HTTPClient) Payer {
	cfg.URL = strings.TrimRight(cfg.URL, "/")
	return &client{cfg: cfg, http: httpClient}
}

func (c *client) Pay(ctx context.Context, amount decimal.Decimal, target string) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: payout amount must be positive", domain.ErrInvalidAmount)
	}
	if err := domain.ValidateAddress(target); err != nil {
		return err
	}

	headers := map[string]string{}
	if c.cfg.APIKey != "" {
		headers["Authorization"] = "ApiKey " + c.cfg.APIKey
	}

	resp, err := c.http.PostJSON(ctx, c.cfg.URL+"/payouts", headers, payoutRequest{
		Amount:        domain.FormatAmount(amount),
		TargetAddress: target,
	})
	if err != nil {
		return fmt.Errorf("failed to call payout service: %w", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		logger.InfoCtx(ctx, "Payout completed",
			zap.String("amount", amount.String()),
			zap.String("target", target))
		return nil
	case resp.StatusCode == http.StatusPaymentRequired:
		return domain.ErrInsufficientFunds
	}

	var body payoutError
	if err := json.Unmarshal(resp.Body, &body); err == nil && body.Code == insufficientFundsCode {
		return domain.ErrInsufficientFunds
	}

	return fmt.Errorf("%w: status %d: %s", domain.ErrPayoutFailed, resp.StatusCode, strings.TrimSpace(string(resp.Body)))
}
