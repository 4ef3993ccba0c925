package rest_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobius-network/tipbot-ledger/internal/api/rest"
	"github.com/mobius-network/tipbot-ledger/internal/api/rest/dto"
	apierrors "github.com/mobius-network/tipbot-ledger/internal/api/shared/errors"
	"github.com/mobius-network/tipbot-ledger/internal/domain"
	"github.com/mobius-network/tipbot-ledger/internal/logger"
	"github.com/mobius-network/tipbot-ledger/internal/mocks"
	"github.com/mobius-network/tipbot-ledger/internal/registration"
	"github.com/mobius-network/tipbot-ledger/internal/tally"
	"github.com/mobius-network/tipbot-ledger/internal/testutil"
	"github.com/mobius-network/tipbot-ledger/internal/tipping"
	"github.com/mobius-network/tipbot-ledger/internal/txbuild"
	"github.com/mobius-network/tipbot-ledger/internal/withdraw"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	gin.SetMode(gin.TestMode)

	code := m.Run()
	os.Exit(code)
}

type testHandlerMocks struct {
	ctrl         *gomock.Controller
	pinger       *mocks.MockPinger
	ledger       *mocks.MockLedger
	tally        *mocks.MockTally
	registration *mocks.MockRegistrationService
	withdraw     *mocks.MockWithdrawService
	tipping      *mocks.MockTippingService
	router       *gin.Engine
}

func setupTestHandler(t *testing.T) *testHandlerMocks {
	ctrl := gomock.NewController(t)

	tm := &testHandlerMocks{
		ctrl:         ctrl,
		pinger:       mocks.NewMockPinger(ctrl),
		ledger:       mocks.NewMockLedger(ctrl),
		tally:        mocks.NewMockTally(ctrl),
		registration: mocks.NewMockRegistrationService(ctrl),
		withdraw:     mocks.NewMockWithdrawService(ctrl),
		tipping:      mocks.NewMockTippingService(ctrl),
	}

	h := rest.NewHandler(tm.pinger, tm.ledger, tm.tally, tm.registration, tm.withdraw, tm.tipping)
	tm.router = gin.New()
	rest.SetupRoutes(tm.router, h)

	return tm
}

func tearDownTestHandler(tm *testHandlerMocks) {
	tm.ctrl.Finish()
}

func (tm *testHandlerMocks) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	tm.router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func testEnvelope() txbuild.Envelope {
	return txbuild.Envelope{
		XDR:        "AAAA",
		Hash:       "abcd",
		Source:     "GSOURCE",
		Sequence:   42,
		Fee:        500,
		Operations: []txbuild.OperationKind{txbuild.OperationKindCreateAccount, txbuild.OperationKindPayment},
	}
}

func TestHandler_HealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
	}{
		{name: "healthy", wantStatus: http.StatusOK},
		{name: "redis down", pingErr: errors.New("connection refused"), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestHandler(t)
			defer tearDownTestHandler(tm)

			tm.pinger.EXPECT().Ping(gomock.Any()).Return(tt.pingErr)

			w := tm.do(t, http.MethodGet, "/health", nil)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestHandler_GetBalance_Custodial(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.ledger.EXPECT().Custody(gomock.Any(), domain.UserID("john_doe")).
		Return(domain.Custodial{Balance: decimal.NewFromInt(3)}, nil)
	tm.ledger.EXPECT().ResolveBalance(gomock.Any(), domain.UserID("john_doe")).
		Return(decimal.NewFromInt(3), nil)
	tm.ledger.EXPECT().IsLocked(gomock.Any(), domain.UserID("john_doe")).
		Return(true, nil)

	w := tm.do(t, http.MethodGet, "/api/v1/users/john_doe/balance", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[dto.BalanceResponse](t, w)
	assert.Equal(t, "john_doe", resp.UserID)
	assert.Equal(t, "3.0000000", resp.Balance)
	assert.Equal(t, string(domain.CustodyKindCustodial), resp.Custody)
	assert.True(t, resp.Locked)
	assert.Nil(t, resp.Address)
	assert.Nil(t, resp.PendingBalance)
}

func TestHandler_GetBalance_SelfCustody(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	address := testutil.NewAddress(t)
	tm.ledger.EXPECT().Custody(gomock.Any(), domain.UserID("john_doe")).
		Return(domain.SelfCustody{Address: address, PendingBalance: decimal.NewFromInt(1)}, nil)
	tm.ledger.EXPECT().ResolveBalance(gomock.Any(), domain.UserID("john_doe")).
		Return(decimal.RequireFromString("12.5"), nil)
	tm.ledger.EXPECT().IsLocked(gomock.Any(), domain.UserID("john_doe")).
		Return(false, nil)

	w := tm.do(t, http.MethodGet, "/api/v1/users/john_doe/balance", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[dto.BalanceResponse](t, w)
	assert.Equal(t, "12.5000000", resp.Balance)
	assert.Equal(t, string(domain.CustodyKindSelfCustody), resp.Custody)
	require.NotNil(t, resp.Address)
	assert.Equal(t, address, *resp.Address)
	require.NotNil(t, resp.PendingBalance)
	assert.Equal(t, "1.0000000", *resp.PendingBalance)
}

func TestHandler_GetBalance_AccountNotFound(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.ledger.EXPECT().Custody(gomock.Any(), domain.UserID("john_doe")).
		Return(nil, fmt.Errorf("load account: %w", domain.ErrAccountNotFound))

	w := tm.do(t, http.MethodGet, "/api/v1/users/john_doe/balance", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	apiErr := decodeBody[apierrors.APIError](t, w)
	assert.Equal(t, apierrors.ErrCodeNotFound, apiErr.Code)
}

func TestHandler_RegisterAddress(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	address := testutil.NewAddress(t)
	tm.registration.EXPECT().
		Register(gomock.Any(), domain.UserID("john_doe"), address, testutil.DecimalEq("2.5")).
		Return(registration.Result{
			Path:     registration.PathProvisioning,
			Address:  address,
			Envelope: testEnvelope(),
		}, nil)

	w := tm.do(t, http.MethodPost, "/api/v1/users/john_doe/address", dto.RegisterAddressRequest{
		Address: address,
		Deposit: "2.5",
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[dto.RegisterAddressResponse](t, w)
	assert.Equal(t, string(registration.PathProvisioning), resp.Path)
	assert.Equal(t, address, resp.Address)
	assert.Equal(t, "AAAA", resp.Envelope.XDR)
	assert.Equal(t, int64(42), resp.Envelope.Sequence)
	assert.Equal(t, int64(500), resp.Envelope.Fee)
	assert.Equal(t, []string{"create_account", "payment"}, resp.Envelope.Operations)
	assert.Contains(t, w.Body.String(), `"sequence":"42"`)
}

func TestHandler_RegisterAddress_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       interface{}
		serviceErr error
		callsSvc   bool
		wantStatus int
		wantCode   apierrors.ErrorCode
	}{
		{
			name:       "missing address",
			body:       map[string]string{"deposit": "1"},
			wantStatus: http.StatusBadRequest,
			wantCode:   apierrors.ErrCodeValidationFailed,
		},
		{
			name:       "malformed deposit",
			body:       dto.RegisterAddressRequest{Address: "GABC", Deposit: "one"},
			wantStatus: http.StatusBadRequest,
			wantCode:   apierrors.ErrCodeValidationFailed,
		},
		{
			name:       "no trustline",
			body:       dto.RegisterAddressRequest{Address: "GABC"},
			serviceErr: domain.ErrNoTrustline,
			callsSvc:   true,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   apierrors.ErrCodeNoTrustline,
		},
		{
			name:       "invalid address",
			body:       dto.RegisterAddressRequest{Address: "GABC"},
			serviceErr: fmt.Errorf("%w: %q", domain.ErrInvalidAddress, "GABC"),
			callsSvc:   true,
			wantStatus: http.StatusBadRequest,
			wantCode:   apierrors.ErrCodeValidationFailed,
		},
		{
			name:       "unexpected failure",
			body:       dto.RegisterAddressRequest{Address: "GABC"},
			serviceErr: errors.New("boom"),
			callsSvc:   true,
			wantStatus: http.StatusInternalServerError,
			wantCode:   apierrors.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestHandler(t)
			defer tearDownTestHandler(tm)

			if tt.callsSvc {
				tm.registration.EXPECT().
					Register(gomock.Any(), domain.UserID("john_doe"), "GABC", gomock.Any()).
					Return(registration.Result{}, tt.serviceErr)
			}

			w := tm.do(t, http.MethodPost, "/api/v1/users/john_doe/address", tt.body)
			require.Equal(t, tt.wantStatus, w.Code)

			apiErr := decodeBody[apierrors.APIError](t, w)
			assert.Equal(t, tt.wantCode, apiErr.Code)
		})
	}
}

func TestHandler_Withdraw_Custodial(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	destination := testutil.NewAddress(t)
	tm.withdraw.EXPECT().
		Withdraw(gomock.Any(), domain.UserID("john_doe"), destination, testutil.DecimalEq("5")).
		Return(withdraw.Result{Amount: decimal.NewFromInt(5), Custody: domain.CustodyKindCustodial}, nil)

	w := tm.do(t, http.MethodPost, "/api/v1/users/john_doe/withdrawals", dto.WithdrawRequest{
		Destination: destination,
		Amount:      "5",
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[dto.WithdrawResponse](t, w)
	assert.Equal(t, "5.0000000", resp.Amount)
	assert.Equal(t, string(domain.CustodyKindCustodial), resp.Custody)
	assert.Nil(t, resp.Envelope)
}

func TestHandler_Withdraw_SelfCustody(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	destination := testutil.NewAddress(t)
	env := testEnvelope()
	tm.withdraw.EXPECT().
		Withdraw(gomock.Any(), domain.UserID("john_doe"), destination, testutil.DecimalEq("5")).
		Return(withdraw.Result{Amount: decimal.NewFromInt(5), Custody: domain.CustodyKindSelfCustody, Envelope: &env}, nil)

	w := tm.do(t, http.MethodPost, "/api/v1/users/john_doe/withdrawals", dto.WithdrawRequest{
		Destination: destination,
		Amount:      "5",
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[dto.WithdrawResponse](t, w)
	require.NotNil(t, resp.Envelope)
	assert.Equal(t, "abcd", resp.Envelope.Hash)
}

func TestHandler_Withdraw_Errors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantCode   apierrors.ErrorCode
	}{
		{"nothing to withdraw", domain.ErrNothingToWithdraw, http.StatusUnprocessableEntity, apierrors.ErrCodeNothingToWithdraw},
		{"insufficient funds", fmt.Errorf("pay: %w", domain.ErrInsufficientFunds), http.StatusPaymentRequired, apierrors.ErrCodeInsufficientFunds},
		{"payout failed", fmt.Errorf("pay: %w", domain.ErrPayoutFailed), http.StatusBadGateway, apierrors.ErrCodeServiceError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestHandler(t)
			defer tearDownTestHandler(tm)

			tm.withdraw.EXPECT().
				Withdraw(gomock.Any(), domain.UserID("john_doe"), "GDEST", gomock.Any()).
				Return(withdraw.Result{}, tt.serviceErr)

			w := tm.do(t, http.MethodPost, "/api/v1/users/john_doe/withdrawals", dto.WithdrawRequest{
				Destination: "GDEST",
				Amount:      "5",
			})
			require.Equal(t, tt.wantStatus, w.Code)

			apiErr := decodeBody[apierrors.APIError](t, w)
			assert.Equal(t, tt.wantCode, apiErr.Code)
		})
	}
}

func TestHandler_Withdraw_MissingAmount(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	w := tm.do(t, http.MethodPost, "/api/v1/users/john_doe/withdrawals", map[string]string{"destination": "GDEST"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Withdraw_TooPreciseAmount(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	// No Withdraw call expected
	w := tm.do(t, http.MethodPost, "/api/v1/users/john_doe/withdrawals", dto.WithdrawRequest{
		Destination: testutil.NewAddress(t),
		Amount:      "1.00000005",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	apiErr := decodeBody[apierrors.APIError](t, w)
	assert.Equal(t, apierrors.ErrCodeValidationFailed, apiErr.Code)
}

func TestHandler_MergeBalance(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.ledger.EXPECT().MergeBalances(gomock.Any(), domain.UserID("john_doe")).
		Return(decimal.NewFromInt(4), nil)

	w := tm.do(t, http.MethodPost, "/api/v1/users/john_doe/merge", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[dto.MergeResponse](t, w)
	assert.Equal(t, "4.0000000", resp.Merged)
}

func TestHandler_MergeBalance_InProgress(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.ledger.EXPECT().MergeBalances(gomock.Any(), domain.UserID("john_doe")).
		Return(decimal.Zero, domain.ErrMergeInProgress)

	w := tm.do(t, http.MethodPost, "/api/v1/users/john_doe/merge", nil)
	require.Equal(t, http.StatusConflict, w.Code)

	apiErr := decodeBody[apierrors.APIError](t, w)
	assert.Equal(t, apierrors.ErrCodeMergeInProgress, apiErr.Code)
}

func TestHandler_GetMessageTips(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.tally.EXPECT().Summary(gomock.Any(), domain.MessageID("m1")).
		Return(tally.Summary{MessageID: "m1", Balance: decimal.NewFromInt(5), Count: 2}, nil)
	tm.tally.EXPECT().Tipped(gomock.Any(), domain.MessageID("m1"), domain.UserID("jack")).
		Return(true, nil)

	w := tm.do(t, http.MethodGet, "/api/v1/messages/m1/tips?tipper=jack", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[dto.TipSummaryResponse](t, w)
	assert.Equal(t, "m1", resp.MessageID)
	assert.Equal(t, "5.0000000", resp.Balance)
	assert.Equal(t, int64(2), resp.Count)
	require.NotNil(t, resp.Tipped)
	assert.True(t, *resp.Tipped)
}

func TestHandler_GetMessageTips_WithoutTipper(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.tally.EXPECT().Summary(gomock.Any(), domain.MessageID("m1")).
		Return(tally.Summary{MessageID: "m1", Balance: decimal.Zero}, nil)

	w := tm.do(t, http.MethodGet, "/api/v1/messages/m1/tips", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[dto.TipSummaryResponse](t, w)
	assert.Equal(t, "0.0000000", resp.Balance)
	assert.Nil(t, resp.Tipped)
}

func TestHandler_TipMessage(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.tipping.EXPECT().
		TipMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, tip tipping.Tip) (tally.Summary, error) {
			assert.Equal(t, domain.MessageID("m1"), tip.Message)
			assert.Equal(t, domain.UserID("jack"), tip.Tipper)
			assert.Equal(t, domain.UserID("john"), tip.Author)
			assert.True(t, tip.Amount.IsZero())
			return tally.Summary{MessageID: "m1", Balance: decimal.NewFromInt(1), Count: 1}, nil
		})

	w := tm.do(t, http.MethodPost, "/api/v1/messages/m1/tips", dto.TipRequest{Tipper: "jack", Author: "john"})
	require.Equal(t, http.StatusCreated, w.Code)

	resp := decodeBody[dto.TipSummaryResponse](t, w)
	assert.Equal(t, "1.0000000", resp.Balance)
	assert.Equal(t, int64(1), resp.Count)
}

func TestHandler_TipMessage_Errors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantCode   apierrors.ErrorCode
	}{
		{"already tipped", domain.ErrAlreadyTipped, http.StatusConflict, apierrors.ErrCodeAlreadyTipped},
		{"self tip", domain.ErrSelfTip, http.StatusUnprocessableEntity, apierrors.ErrCodeSelfTip},
		{"cooldown", domain.ErrCooldown, http.StatusTooManyRequests, apierrors.ErrCodeCooldown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestHandler(t)
			defer tearDownTestHandler(tm)

			tm.tipping.EXPECT().
				TipMessage(gomock.Any(), gomock.Any()).
				Return(tally.Summary{}, tt.serviceErr)

			w := tm.do(t, http.MethodPost, "/api/v1/messages/m1/tips", dto.TipRequest{Tipper: "jack", Author: "john", Amount: "1"})
			require.Equal(t, tt.wantStatus, w.Code)

			apiErr := decodeBody[apierrors.APIError](t, w)
			assert.Equal(t, tt.wantCode, apiErr.Code)
		})
	}
}
