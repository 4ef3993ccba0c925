package adapter

import (
	"net/http"
	"time"

	"github.com/stellar/go/clients/horizonclient"
	"github.com/stellar/go/protocols/horizon"
)

// Horizon defines the read-only subset of the Horizon API used by the gateway
//
//go:generate mockgen -source=horizon.go -destination=../mocks/horizon.go -package=mocks -mock_names=Horizon=MockHorizon
type Horizon interface {
	// AccountDetail loads the account, its balances and its sequence number
	AccountDetail(request horizonclient.AccountRequest) (horizon.Account, error)
}

// RealHorizon wraps the horizonclient.Client
type RealHorizon struct {
	client *horizonclient.Client
}

// NewHorizon creates a new Horizon client for the given server URL
func NewHorizon(horizonURL string, timeout time.Duration) Horizon {
	return &RealHorizon{
		client: &horizonclient.Client{
			HorizonURL: horizonURL,
			HTTP:       &http.Client{Timeout: timeout},
			AppName:    "tipbot-ledger",
		},
	}
}

func (h *RealHorizon) AccountDetail(request horizonclient.AccountRequest) (horizon.Account, error) {
	return h.client.AccountDetail(request)
}
