package tipping_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobius-network/tipbot-ledger/internal/domain"
	"github.com/mobius-network/tipbot-ledger/internal/ledger"
	"github.com/mobius-network/tipbot-ledger/internal/logger"
	"github.com/mobius-network/tipbot-ledger/internal/mocks"
	"github.com/mobius-network/tipbot-ledger/internal/store"
	"github.com/mobius-network/tipbot-ledger/internal/tally"
	"github.com/mobius-network/tipbot-ledger/internal/testutil"
	"github.com/mobius-network/tipbot-ledger/internal/tipping"
)

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

type testService struct {
	server  *miniredis.Miniredis
	ledger  ledger.Ledger
	tally   tally.Tally
	service tipping.Service
}

func setupTestService(t *testing.T) *testService {
	ctrl := gomock.NewController(t)
	server, client := testutil.NewRedis(t)
	st := store.NewRedisStore(client, "tipbot_test")

	ts := &testService{
		server: server,
		ledger: ledger.New(ledger.Config{LockDuration: time.Hour}, st, mocks.NewMockGateway(ctrl), mocks.NewMockPayer(ctrl)),
		tally:  tally.New(st),
	}
	ts.service = tipping.NewService(tipping.Config{Rate: decimal.NewFromInt(2)}, ts.ledger, ts.tally)

	return ts
}

func TestTipMessage(t *testing.T) {
	ts := setupTestService(t)
	ctx := context.Background()

	summary, err := ts.service.TipMessage(ctx, tipping.Tip{Message: "123", Tipper: "john_doe", Author: "peter_parker"})
	require.NoError(t, err)
	assert.Equal(t, "2", summary.Balance.String())
	assert.Equal(t, int64(1), summary.Count)

	summary, err = ts.service.TipMessage(ctx, tipping.Tip{
		Message: "123",
		Tipper:  "jack_black",
		Author:  "peter_parker",
		Amount:  decimal.NewFromInt(3),
	})
	require.NoError(t, err)
	assert.Equal(t, "5", summary.Balance.String())
	assert.Equal(t, int64(2), summary.Count)

	balance, err := ts.ledger.ResolveBalance(ctx, "peter_parker")
	require.NoError(t, err)
	assert.Equal(t, "5", balance.String())

	locked, err := ts.ledger.IsLocked(ctx, "john_doe")
	require.NoError(t, err)
	assert.True(t, locked)
}

func TestTipMessage_Rejected(t *testing.T) {
	ts := setupTestService(t)
	ctx := context.Background()

	_, err := ts.service.TipMessage(ctx, tipping.Tip{Message: "123", Tipper: "john_doe", Author: "peter_parker"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		tip     tipping.Tip
		wantErr error
	}{
		{
			name:    "self tip",
			tip:     tipping.Tip{Message: "456", Tipper: "peter_parker", Author: "peter_parker"},
			wantErr: domain.ErrSelfTip,
		},
		{
			name:    "duplicate",
			tip:     tipping.Tip{Message: "123", Tipper: "john_doe", Author: "peter_parker"},
			wantErr: domain.ErrAlreadyTipped,
		},
		{
			name:    "cooldown",
			tip:     tipping.Tip{Message: "456", Tipper: "john_doe", Author: "peter_parker"},
			wantErr: domain.ErrCooldown,
		},
		{
			name:    "negative amount",
			tip:     tipping.Tip{Message: "456", Tipper: "jack_black", Author: "peter_parker", Amount: decimal.NewFromInt(-1)},
			wantErr: domain.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ts.service.TipMessage(ctx, tt.tip)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// only the first tip was credited
	balance, err := ts.ledger.ResolveBalance(ctx, "peter_parker")
	require.NoError(t, err)
	assert.Equal(t, "2", balance.String())
}

func TestTipMessage_CooldownExpires(t *testing.T) {
	ts := setupTestService(t)
	ctx := context.Background()

	_, err := ts.service.TipMessage(ctx, tipping.Tip{Message: "123", Tipper: "john_doe", Author: "peter_parker"})
	require.NoError(t, err)

	ts.server.FastForward(time.Hour + time.Second)

	_, err = ts.service.TipMessage(ctx, tipping.Tip{Message: "456", Tipper: "john_doe", Author: "peter_parker"})
	require.NoError(t, err)
}

func TestTipMessage_SelfCustodyTipperNotLocked(t *testing.T) {
	ts := setupTestService(t)
	ctx := context.Background()

	require.NoError(t, ts.ledger.LinkAddress(ctx, "john_doe", testutil.NewAddress(t)))

	_, err := ts.service.TipMessage(ctx, tipping.Tip{Message: "123", Tipper: "john_doe", Author: "peter_parker"})
	require.NoError(t, err)
	_, err = ts.service.TipMessage(ctx, tipping.Tip{Message: "456", Tipper: "john_doe", Author: "peter_parker"})
	require.NoError(t, err)
}

func TestTipMessage_CreditFailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, client := testutil.NewRedis(t)
	tl := tally.New(store.NewRedisStore(client, "tipbot_test"))
	mockLedger := mocks.NewMockLedger(ctrl)
	service := tipping.NewService(tipping.Config{Rate: decimal.NewFromInt(2)}, mockLedger, tl)
	ctx := context.Background()

	redisDown := errors.New("redis unavailable")
	gomock.InOrder(
		mockLedger.EXPECT().Lock(gomock.Any(), domain.UserID("john_doe")).Return(true, nil),
		mockLedger.EXPECT().Increment(gomock.Any(), domain.UserID("peter_parker"), testutil.DecimalEq("2")).Return(redisDown),
		mockLedger.EXPECT().Unlock(gomock.Any(), domain.UserID("john_doe")).Return(nil),
	)

	_, err := service.TipMessage(ctx, tipping.Tip{Message: "123", Tipper: "john_doe", Author: "peter_parker"})
	assert.ErrorIs(t, err, redisDown)

	tipped, err := tl.Tipped(ctx, "123", "john_doe")
	require.NoError(t, err)
	assert.False(t, tipped)

	// the retry is not rejected as a duplicate
	gomock.InOrder(
		mockLedger.EXPECT().Lock(gomock.Any(), domain.UserID("john_doe")).Return(true, nil),
		mockLedger.EXPECT().Increment(gomock.Any(), domain.UserID("peter_parker"), testutil.DecimalEq("2")).Return(nil),
	)

	summary, err := service.TipMessage(ctx, tipping.Tip{Message: "123", Tipper: "john_doe", Author: "peter_parker"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.Count)
}

func TestTipMessage_DuplicateReleasesCooldown(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, client := testutil.NewRedis(t)
	tl := tally.New(store.NewRedisStore(client, "tipbot_test"))
	mockLedger := mocks.NewMockLedger(ctrl)
	service := tipping.NewService(tipping.Config{}, mockLedger, tl)
	ctx := context.Background()

	// a concurrent tip landed between the duplicate check and the tally write
	mockLedger.EXPECT().
		Lock(gomock.Any(), domain.UserID("john_doe")).
		DoAndReturn(func(ctx context.Context, _ domain.UserID) (bool, error) {
			require.NoError(t, tl.Tip(ctx, "123", "john_doe", decimal.NewFromInt(1)))
			return true, nil
		})
	mockLedger.EXPECT().Unlock(gomock.Any(), domain.UserID("john_doe")).Return(nil)

	_, err := service.TipMessage(ctx, tipping.Tip{Message: "123", Tipper: "john_doe", Author: "peter_parker"})
	assert.ErrorIs(t, err, domain.ErrAlreadyTipped)
}

func TestTipMessage_ConcurrentCustodialTipper(t *testing.T) {
	ts := setupTestService(t)
	ctx := context.Background()

	const tips = 8
	errs := make([]error, tips)
	var wg sync.WaitGroup
	for i := 0; i < tips; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = ts.service.TipMessage(ctx, tipping.Tip{
				Message: domain.MessageID(fmt.Sprintf("msg-%d", i)),
				Tipper:  "john_doe",
				Author:  "peter_parker",
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrCooldown)
	}
	assert.Equal(t, 1, succeeded)

	balance, err := ts.ledger.ResolveBalance(ctx, "peter_parker")
	require.NoError(t, err)
	assert.Equal(t, "2", balance.String())
}
