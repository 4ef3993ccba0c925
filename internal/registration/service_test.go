package registration_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stellar/go/keypair"
	"github.com/stellar/go/network"
	"github.com/stellar/go/txnbuild"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobius-network/tipbot-ledger/internal/domain"
	"github.com/mobius-network/tipbot-ledger/internal/ledger"
	"github.com/mobius-network/tipbot-ledger/internal/logger"
	"github.com/mobius-network/tipbot-ledger/internal/mocks"
	"github.com/mobius-network/tipbot-ledger/internal/registration"
	"github.com/mobius-network/tipbot-ledger/internal/store"
	"github.com/mobius-network/tipbot-ledger/internal/testutil"
	"github.com/mobius-network/tipbot-ledger/internal/txbuild"
)

const testAppAddress = "GDMHQDQZ4NKDIOH3UKKWNLGVUUF2WQX5B5KPZRUIHIP2BJOISZSERZUX"

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

type testServiceMocks struct {
	ctrl    *gomock.Controller
	gateway *mocks.MockGateway
	keypair *mocks.MockKeypair
	ledger  ledger.Ledger
	service registration.Service
}

func setupTestService(t *testing.T) *testServiceMocks {
	ctrl := gomock.NewController(t)
	_, client := testutil.NewRedis(t)

	tm := &testServiceMocks{
		ctrl:    ctrl,
		gateway: mocks.NewMockGateway(ctrl),
		keypair: mocks.NewMockKeypair(ctrl),
	}
	tm.ledger = ledger.New(ledger.Config{}, store.NewRedisStore(client, "tipbot_test"), tm.gateway, mocks.NewMockPayer(ctrl))
	tm.service = registration.NewService(registration.Config{
		NetworkPassphrase: network.TestNetworkPassphrase,
		Asset:             testAsset,
		AppAddress:        testAppAddress,
		BaseFee:           100,
	}, tm.ledger, tm.gateway, tm.keypair)

	return tm
}

func tearDownTestService(tm *testServiceMocks) {
	tm.ctrl.Finish()
}

func decode(t *testing.T, env txbuild.Envelope) *txnbuild.Transaction {
	t.Helper()

	generic, err := txnbuild.TransactionFromXDR(env.XDR)
	require.NoError(t, err)
	tx, ok := generic.Transaction()
	require.True(t, ok)
	return tx
}

func TestRegister_Provisioning(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)
	ctx := context.Background()

	candidate := testutil.NewAddress(t)
	account := keypair.MustRandom()

	tm.gateway.EXPECT().TrustlineExists(gomock.Any(), candidate).Return(true, nil)
	tm.gateway.EXPECT().NextSequence(gomock.Any(), candidate).Return(int64(4242), nil)
	tm.keypair.EXPECT().Random().Return(account, nil)

	result, err := tm.service.Register(ctx, "john_doe", candidate, decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.Equal(t, registration.PathProvisioning, result.Path)
	assert.Equal(t, account.Address(), result.Address)
	assert.Equal(t, int64(500), result.Envelope.Fee)
	assert.Equal(t, []txbuild.OperationKind{
		txbuild.OperationKindCreateAccount,
		txbuild.OperationKindChangeTrust,
		txbuild.OperationKindSetOptions,
		txbuild.OperationKindSetOptions,
		txbuild.OperationKindPayment,
	}, result.Envelope.Operations)

	// linked before returning
	linked, err := tm.ledger.Address(ctx, "john_doe")
	require.NoError(t, err)
	assert.Equal(t, account.Address(), linked)

	tx := decode(t, result.Envelope)
	assert.Equal(t, candidate, tx.SourceAccount().AccountID)
	assert.Equal(t, int64(4242), tx.SourceAccount().Sequence)
	assert.Equal(t, int64(500), tx.MaxFee())
	// signed by the new account only, the candidate countersigns
	assert.Len(t, tx.Signatures(), 1)

	ops := tx.Operations()
	require.Len(t, ops, 5)

	create, ok := ops[0].(*txnbuild.CreateAccount)
	require.True(t, ok)
	assert.Equal(t, account.Address(), create.Destination)
	assert.Equal(t, "3.5000000", create.Amount)
	assert.Empty(t, create.SourceAccount)

	trust, ok := ops[1].(*txnbuild.ChangeTrust)
	require.True(t, ok)
	assert.Equal(t, account.Address(), trust.SourceAccount)
	assert.Equal(t, "922337203685.0000000", trust.Limit)

	signers, ok := ops[2].(*txnbuild.SetOptions)
	require.True(t, ok)
	assert.Equal(t, account.Address(), signers.SourceAccount)
	assert.Equal(t, txnbuild.Threshold(2), *signers.HighThreshold)
	assert.Equal(t, txnbuild.Threshold(1), *signers.MediumThreshold)
	assert.Equal(t, txnbuild.Threshold(1), *signers.LowThreshold)
	assert.Equal(t, txnbuild.Threshold(0), *signers.MasterWeight)
	assert.Equal(t, candidate, signers.Signer.Address)
	assert.Equal(t, txnbuild.Threshold(2), signers.Signer.Weight)

	app, ok := ops[3].(*txnbuild.SetOptions)
	require.True(t, ok)
	assert.Equal(t, account.Address(), app.SourceAccount)
	assert.Nil(t, app.MasterWeight)
	assert.Equal(t, testAppAddress, app.Signer.Address)
	assert.Equal(t, txnbuild.Threshold(1), app.Signer.Weight)

	payment, ok := ops[4].(*txnbuild.Payment)
	require.True(t, ok)
	assert.Equal(t, account.Address(), payment.Destination)
	assert.Equal(t, "10.0000000", payment.Amount)
	assert.Equal(t, testAsset.Code, payment.Asset.GetCode())
}

func TestRegister_RepeatTakesTopUp(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)
	ctx := context.Background()

	candidate := testutil.NewAddress(t)
	account := keypair.MustRandom()

	tm.gateway.EXPECT().TrustlineExists(gomock.Any(), candidate).Return(true, nil).Times(2)
	tm.gateway.EXPECT().NextSequence(gomock.Any(), candidate).Return(int64(10), nil)
	tm.gateway.EXPECT().NextSequence(gomock.Any(), candidate).Return(int64(11), nil)
	tm.keypair.EXPECT().Random().Return(account, nil).Times(1)

	_, err := tm.service.Register(ctx, "john_doe", candidate, decimal.NewFromInt(10))
	require.NoError(t, err)

	result, err := tm.service.Register(ctx, "john_doe", candidate, decimal.RequireFromString("2.5"))
	require.NoError(t, err)
	assert.Equal(t, registration.PathTopUp, result.Path)
	assert.Equal(t, account.Address(), result.Address)
	assert.Equal(t, int64(100), result.Envelope.Fee)
	assert.Equal(t, []txbuild.OperationKind{txbuild.OperationKindPayment}, result.Envelope.Operations)

	tx := decode(t, result.Envelope)
	assert.Equal(t, candidate, tx.SourceAccount().AccountID)
	assert.Equal(t, int64(11), tx.SourceAccount().Sequence)
	assert.Empty(t, tx.Signatures())

	payment := tx.Operations()[0].(*txnbuild.Payment)
	assert.Equal(t, account.Address(), payment.Destination)
	assert.Equal(t, "2.5000000", payment.Amount)
}

func TestRegister_ConcurrentLinkTakesTopUp(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)
	ctx := context.Background()

	candidate := testutil.NewAddress(t)
	winner := testutil.NewAddress(t)

	tm.gateway.EXPECT().TrustlineExists(gomock.Any(), candidate).Return(true, nil)
	gomock.InOrder(
		// another registration links its account while this one is provisioning
		tm.gateway.EXPECT().
			NextSequence(gomock.Any(), candidate).
			DoAndReturn(func(ctx context.Context, _ string) (int64, error) {
				require.NoError(t, tm.ledger.LinkAddress(ctx, "john_doe", winner))
				return int64(10), nil
			}),
		tm.gateway.EXPECT().NextSequence(gomock.Any(), candidate).Return(int64(11), nil),
	)
	tm.keypair.EXPECT().Random().Return(keypair.MustRandom(), nil)

	result, err := tm.service.Register(ctx, "john_doe", candidate, decimal.NewFromInt(4))
	require.NoError(t, err)
	assert.Equal(t, registration.PathTopUp, result.Path)
	assert.Equal(t, winner, result.Address)
	assert.Equal(t, []txbuild.OperationKind{txbuild.OperationKindPayment}, result.Envelope.Operations)

	tx := decode(t, result.Envelope)
	assert.Equal(t, int64(11), tx.SourceAccount().Sequence)
	payment := tx.Operations()[0].(*txnbuild.Payment)
	assert.Equal(t, winner, payment.Destination)

	// the first link is kept
	linked, err := tm.ledger.Address(ctx, "john_doe")
	require.NoError(t, err)
	assert.Equal(t, winner, linked)
}

func TestRegister_NoTrustline(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)
	ctx := context.Background()

	candidate := testutil.NewAddress(t)
	tm.gateway.EXPECT().TrustlineExists(gomock.Any(), candidate).Return(false, nil)

	_, err := tm.service.Register(ctx, "john_doe", candidate, decimal.NewFromInt(10))
	assert.ErrorIs(t, err, domain.ErrNoTrustline)

	linked, err := tm.ledger.Address(ctx, "john_doe")
	require.NoError(t, err)
	assert.Empty(t, linked)
}

func TestRegister_InvalidInput(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)
	ctx := context.Background()

	_, err := tm.service.Register(ctx, "john_doe", "GNOTANADDRESS", decimal.NewFromInt(10))
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)

	_, err = tm.service.Register(ctx, "john_doe", testutil.NewAddress(t), decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestRegister_GatewayError(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)
	ctx := context.Background()

	candidate := testutil.NewAddress(t)
	timeout := errors.New("horizon timeout")

	tm.gateway.EXPECT().TrustlineExists(gomock.Any(), candidate).Return(true, nil)
	tm.gateway.EXPECT().NextSequence(gomock.Any(), candidate).Return(int64(0), timeout)

	_, err := tm.service.Register(ctx, "john_doe", candidate, decimal.NewFromInt(10))
	assert.ErrorIs(t, err, timeout)

	linked, err := tm.ledger.Address(ctx, "john_doe")
	require.NoError(t, err)
	assert.Empty(t, linked)
}
