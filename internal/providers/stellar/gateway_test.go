package stellar_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stellar/go/clients/horizonclient"
	"github.com/stellar/go/protocols/horizon"
	"github.com/stellar/go/protocols/horizon/base"
	"github.com/stellar/go/support/render/problem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobius-network/tipbot-ledger/internal/domain"
	"github.com/mobius-network/tipbot-ledger/internal/logger"
	"github.com/mobius-network/tipbot-ledger/internal/mocks"
	"github.com/mobius-network/tipbot-ledger/internal/providers/stellar"
)

const testAddress = "GDMHQDQZ4NKDIOH3UKKWNLGVUUF2WQX5B5KPZRUIHIP2BJOISZSERZUX"

var testAsset = domain.Asset{
	Code:   "MOBI",
	Issuer: "GCJYXHZFOT673V4UIRMZWKPWWWXL36UGAG7G4VYYJEWQOLM4K6VJLHIX",
}

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func setupTestGateway(t *testing.T) (stellar.Gateway, *mocks.MockHorizon) {
	ctrl := gomock.NewController(t)
	h := mocks.NewMockHorizon(ctrl)
	return stellar.NewGateway(h, testAsset), h
}

func notFound() error {
	return &horizonclient.Error{
		Problem: problem.P{
			Type:   "https://stellar.org/horizon-errors/not_found",
			Title:  "Resource Missing",
			Status: 404,
		},
	}
}

func account(balances ...horizon.Balance) horizon.Account {
	return horizon.Account{
		AccountID: testAddress,
		Sequence:  41,
		Balances:  balances,
	}
}

func nativeBalance(amount string) horizon.Balance {
	return horizon.Balance{Balance: amount, Asset: base.Asset{Type: "native"}}
}

func creditBalance(code, issuer, amount string) horizon.Balance {
	return horizon.Balance{
		Balance: amount,
		Asset:   base.Asset{Type: "credit_alphanum4", Code: code, Issuer: issuer},
	}
}

func TestGateway_TrustlineExists(t *testing.T) {
	tests := []struct {
		name    string
		account horizon.Account
		err     error
		want    bool
	}{
		{
			name:    "trusted",
			account: account(nativeBalance("10"), creditBalance(testAsset.Code, testAsset.Issuer, "0.0000000")),
			want:    true,
		},
		{
			name:    "native only",
			account: account(nativeBalance("10")),
			want:    false,
		},
		{
			name:    "same code other issuer",
			account: account(creditBalance(testAsset.Code, testAddress, "5.0000000")),
			want:    false,
		},
		{
			name: "missing account",
			err:  notFound(),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw, h := setupTestGateway(t)

			h.EXPECT().
				AccountDetail(horizonclient.AccountRequest{AccountID: testAddress}).
				Return(tt.account, tt.err)

			got, err := gw.TrustlineExists(context.Background(), testAddress)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGateway_AssetBalance(t *testing.T) {
	gw, h := setupTestGateway(t)
	ctx := context.Background()

	h.EXPECT().
		AccountDetail(gomock.Any()).
		Return(account(nativeBalance("10"), creditBalance(testAsset.Code, testAsset.Issuer, "42.1234567")), nil)

	balance, err := gw.AssetBalance(ctx, testAddress)
	require.NoError(t, err)
	assert.Equal(t, "42.1234567", balance.String())

	// a provisioned account not submitted yet
	h.EXPECT().AccountDetail(gomock.Any()).Return(horizon.Account{}, notFound())

	balance, err = gw.AssetBalance(ctx, testAddress)
	require.NoError(t, err)
	assert.True(t, balance.IsZero())

	// no trustline
	h.EXPECT().AccountDetail(gomock.Any()).Return(account(nativeBalance("10")), nil)

	balance, err = gw.AssetBalance(ctx, testAddress)
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}

func TestGateway_NextSequence(t *testing.T) {
	gw, h := setupTestGateway(t)
	ctx := context.Background()

	// fetched on every call
	h.EXPECT().AccountDetail(gomock.Any()).Return(account(), nil).Times(2)

	seq, err := gw.NextSequence(ctx, testAddress)
	require.NoError(t, err)
	assert.Equal(t, int64(42), seq)

	seq, err = gw.NextSequence(ctx, testAddress)
	require.NoError(t, err)
	assert.Equal(t, int64(42), seq)

	h.EXPECT().AccountDetail(gomock.Any()).Return(horizon.Account{}, notFound())

	_, err = gw.NextSequence(ctx, testAddress)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestGateway_InvalidAddress(t *testing.T) {
	// no Horizon call is expected
	gw, _ := setupTestGateway(t)
	ctx := context.Background()

	_, err := gw.TrustlineExists(ctx, "not-an-address")
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)

	_, err = gw.AssetBalance(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)

	_, err = gw.NextSequence(ctx, "SBADSEED")
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)
}

func TestGateway_NetworkError(t *testing.T) {
	gw, h := setupTestGateway(t)
	timeout := errors.New("context deadline exceeded")

	h.EXPECT().AccountDetail(gomock.Any()).Return(horizon.Account{}, timeout).Times(1)

	_, err := gw.TrustlineExists(context.Background(), testAddress)
	assert.ErrorIs(t, err, timeout)
}
