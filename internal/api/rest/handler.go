package rest

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mobius-network/tipbot-ledger/internal/api/rest/dto"
	"github.com/mobius-network/tipbot-ledger/internal/domain"
	"github.com/mobius-network/tipbot-ledger/internal/ledger"
	"github.com/mobius-network/tipbot-ledger/internal/registration"
	"github.com/mobius-network/tipbot-ledger/internal/tally"
	"github.com/mobius-network/tipbot-ledger/internal/tipping"
	"github.com/mobius-network/tipbot-ledger/internal/withdraw"
)

// Pinger reports whether a backend is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler,Pinger=MockPinger
type Handler interface {
	// GetBalance returns the resolved balance of a user
	// GET /api/v1/users/:id/balance
	GetBalance(c *gin.Context)

	// RegisterAddress builds the transaction linking a Stellar account to a user
	// POST /api/v1/users/:id/address
	RegisterAddress(c *gin.Context)

	// Withdraw sends funds of a user to a Stellar address
	// POST /api/v1/users/:id/withdrawals
	Withdraw(c *gin.Context)

	// MergeBalance moves the pending off-chain balance of a self-custody user on chain
	// POST /api/v1/users/:id/merge
	MergeBalance(c *gin.Context)

	// GetMessageTips returns the tip summary of a message
	// GET /api/v1/messages/:id/tips?tipper=<user>
	GetMessageTips(c *gin.Context)

	// TipMessage tips a message
	// POST /api/v1/messages/:id/tips
	TipMessage(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	store        Pinger
	ledger       ledger.Ledger
	tally        tally.Tally
	registration registration.Service
	withdraw     withdraw.Service
	tipping      tipping.Service
}

// NewHandler creates a new REST API handler
func NewHandler(
	store Pinger,
	l ledger.Ledger,
	t tally.Tally,
	reg registration.Service,
	wd withdraw.Service,
	tp tipping.Service,
) Handler {
	return &handler{
		store:        store,
		ledger:       l,
		tally:        t,
		registration: reg,
		withdraw:     wd,
		tipping:      tp,
	}
}

func (h *handler) GetBalance(c *gin.Context) {
	user, ok := userParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	custody, err := h.ledger.Custody(ctx, user)
	if err != nil {
		respondError(c, err, zap.String("user", string(user)))
		return
	}

	balance, err := h.ledger.ResolveBalance(ctx, user)
	if err != nil {
		respondError(c, err, zap.String("user", string(user)))
		return
	}

	locked, err := h.ledger.IsLocked(ctx, user)
	if err != nil {
		respondError(c, err, zap.String("user", string(user)))
		return
	}

	resp := dto.BalanceResponse{
		UserID:  string(user),
		Balance: domain.FormatAmount(balance),
		Custody: string(custody.Kind()),
		Locked:  locked,
	}
	if sc, ok := custody.(domain.SelfCustody); ok {
		pending := domain.FormatAmount(sc.PendingBalance)
		resp.Address = &sc.Address
		resp.PendingBalance = &pending
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) RegisterAddress(c *gin.Context) {
	user, ok := userParam(c)
	if !ok {
		return
	}

	var req dto.RegisterAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	deposit, err := domain.ParseUserAmount(req.Deposit)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.registration.Register(c.Request.Context(), user, req.Address, deposit)
	if err != nil {
		respondError(c, err, zap.String("user", string(user)), zap.String("address", req.Address))
		return
	}

	c.JSON(http.StatusOK, dto.RegisterAddressResponse{
		Path:     string(result.Path),
		Address:  result.Address,
		Envelope: dto.NewEnvelopeResponse(result.Envelope),
	})
}

func (h *handler) Withdraw(c *gin.Context) {
	user, ok := userParam(c)
	if !ok {
		return
	}

	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	amount, err := domain.ParseUserAmount(req.Amount)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.withdraw.Withdraw(c.Request.Context(), user, req.Destination, amount)
	if err != nil {
		respondError(c, err, zap.String("user", string(user)), zap.String("destination", req.Destination))
		return
	}

	resp := dto.WithdrawResponse{
		Amount:  domain.FormatAmount(result.Amount),
		Custody: string(result.Custody),
	}
	if result.Envelope != nil {
		env := dto.NewEnvelopeResponse(*result.Envelope)
		resp.Envelope = &env
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) MergeBalance(c *gin.Context) {
	user, ok := userParam(c)
	if !ok {
		return
	}

	merged, err := h.ledger.MergeBalances(c.Request.Context(), user)
	if err != nil {
		respondError(c, err, zap.String("user", string(user)))
		return
	}

	c.JSON(http.StatusOK, dto.MergeResponse{Merged: domain.FormatAmount(merged)})
}

func (h *handler) GetMessageTips(c *gin.Context) {
	message, ok := messageParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	summary, err := h.tally.Summary(ctx, message)
	if err != nil {
		respondError(c, err, zap.String("message", string(message)))
		return
	}
	resp := dto.NewTipSummaryResponse(summary)

	if tipper := strings.TrimSpace(c.Query("tipper")); tipper != "" {
		tipped, err := h.tally.Tipped(ctx, message, domain.UserID(tipper))
		if err != nil {
			respondError(c, err, zap.String("message", string(message)))
			return
		}
		resp.Tipped = &tipped
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) TipMessage(c *gin.Context) {
	message, ok := messageParam(c)
	if !ok {
		return
	}

	var req dto.TipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	amount, err := domain.ParseUserAmount(req.Amount)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	summary, err := h.tipping.TipMessage(c.Request.Context(), tipping.Tip{
		Message: message,
		Tipper:  domain.UserID(req.Tipper),
		Author:  domain.UserID(req.Author),
		Amount:  amount,
	})
	if err != nil {
		respondError(c, err, zap.String("message", string(message)), zap.String("tipper", req.Tipper))
		return
	}

	c.JSON(http.StatusCreated, dto.NewTipSummaryResponse(summary))
}

// HealthCheck reports unhealthy when Redis is unreachable
func (h *handler) HealthCheck(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unavailable",
			"service": "tipbot-ledger-api",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "tipbot-ledger-api",
	})
}

func userParam(c *gin.Context) (domain.UserID, bool) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		respondBadRequest(c, "User ID is required")
		return "", false
	}
	return domain.UserID(id), true
}

func messageParam(c *gin.Context) (domain.MessageID, bool) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		respondBadRequest(c, "Message ID is required")
		return "", false
	}
	return domain.MessageID(id), true
}
