package handler

import (
	"net/http"
	"time"

	"phygital/internal/phygital/chain"
	"phygital/internal/phygital/model"

	"github.com/labstack/echo/v4"
)

// GetChains handles GET /chains
func (h *Handler) GetChains(c echo.Context) error {
	configs := h.Chains.Chains()
	views := make([]model.ChainView, 0, len(configs))
	for _, cfg := range configs {
		views = append(views, model.NewChainView(cfg))
	}
	return c.JSON(http.StatusOK, views)
}

// GetChain handles GET /chains/:chain
func (h *Handler) GetChain(c echo.Context) error {
	var req model.ChainReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid parameters")
	}
	if err := req.Validate(); err != nil {
		return respondError(c, h.Logger, err)
	}

	cfg, err := h.Chains.Config(req.Ref())
	if err != nil {
		return respondError(c, h.Logger, err)
	}
	return c.JSON(http.StatusOK, model.NewChainView(cfg))
}

// GetBlockNumber handles GET /chains/:chain/block-number
func (h *Handler) GetBlockNumber(c echo.Context) error {
	var req model.ChainReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid parameters")
	}
	if err := req.Validate(); err != nil {
		return respondError(c, h.Logger, err)
	}

	height, err := h.Chains.BlockNumber(c.Request().Context(), req.Ref())
	if err != nil {
		return respondError(c, h.Logger, err)
	}
	return c.JSON(http.StatusOK, model.BlockNumberResponse{
		Chain:       req.Chain,
		Testnet:     req.Testnet,
		BlockNumber: height,
	})
}

// GetBalance handles GET /chains/:chain/balance/:address
func (h *Handler) GetBalance(c echo.Context) error {
	var req model.GetBalanceReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid parameters")
	}
	if err := req.Validate(); err != nil {
		return respondError(c, h.Logger, err)
	}

	cfg, err := h.Chains.Config(req.Ref())
	if err != nil {
		return respondError(c, h.Logger, err)
	}

	balance, err := h.Chains.Balance(c.Request().Context(), req.Ref(), req.Address)
	if err != nil {
		return respondError(c, h.Logger, err)
	}
	return c.JSON(http.StatusOK, model.BalanceResponse{
		Chain:   req.Chain,
		Testnet: req.Testnet,
		Address: req.Address,
		Balance: balance,
		Symbol:  cfg.Currency.Symbol,
	})
}

// PostTransaction handles POST /chains/:chain/transactions
func (h *Handler) PostTransaction(c echo.Context) error {
	var req model.SendTransactionReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid body")
	}
	if err := req.Validate(); err != nil {
		return respondError(c, h.Logger, err)
	}

	cfg, err := h.Chains.Config(req.Ref())
	if err != nil {
		return respondError(c, h.Logger, err)
	}

	raw, err := chain.DecodeSignedTransaction(cfg.Family, req.SignedTx)
	if err != nil {
		return respondError(c, h.Logger, err)
	}

	hash, err := h.Chains.SendTransaction(c.Request().Context(), req.Ref(), raw)
	if err != nil {
		return respondError(c, h.Logger, err)
	}

	h.Logger.Info("transaction submitted",
		"chain", req.Chain,
		"testnet", req.Testnet,
		"tx_hash", hash,
		"user_id", c.Get(ctxKeyUserID),
	)
	return c.JSON(http.StatusAccepted, model.SendTransactionResponse{
		Chain:   req.Chain,
		Testnet: req.Testnet,
		TxHash:  hash,
	})
}

// GetChainStatus handles GET /chains/:chain/status
func (h *Handler) GetChainStatus(c echo.Context) error {
	var req model.ChainReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid parameters")
	}
	if err := req.Validate(); err != nil {
		return respondError(c, h.Logger, err)
	}

	if _, err := h.Chains.Config(req.Ref()); err != nil {
		return respondError(c, h.Logger, err)
	}

	report := h.Chains.CheckHealth(c.Request().Context(), req.Ref())

	if h.RecordHealthChecks && h.HealthChecks != nil {
		userID, _ := c.Get(ctxKeyUserID).(string)
		check := &model.ChainHealthCheck{
			Chain:       report.Chain,
			Testnet:     report.Testnet,
			ChainID:     report.ChainID,
			Connected:   report.Connected,
			BlockNumber: report.BlockNumber,
			LatencyMS:   report.LatencyMS,
			Error:       report.Error,
			CheckedBy:   userID,
			CreatedAt:   time.Now().UTC(),
		}
		// a failed write must not hide the probe result
		if err := h.HealthChecks.RecordHealthCheck(c.Request().Context(), check); err != nil {
			h.Logger.Warn("failed to record health check", "chain", report.Chain, "testnet", report.Testnet, "error", err)
		}
	}

	return c.JSON(http.StatusOK, report)
}

// GetChainStatusHistory handles GET /chains/:chain/status/history
func (h *Handler) GetChainStatusHistory(c echo.Context) error {
	var req model.GetChainHealthHistoryReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid parameters")
	}
	if err := req.Validate(); err != nil {
		return respondError(c, h.Logger, err)
	}

	cfg, err := h.Chains.Config(req.Ref())
	if err != nil {
		return respondError(c, h.Logger, err)
	}

	if h.HealthChecks == nil {
		return c.JSON(http.StatusOK, model.ChainHealthHistoryResp{Data: []*model.ChainHealthCheck{}, Limit: req.Limit})
	}

	checks, err := h.HealthChecks.ListHealthChecks(c.Request().Context(), cfg.Key, req.Testnet, req.Limit)
	if err != nil {
		return respondError(c, h.Logger, err)
	}
	return c.JSON(http.StatusOK, model.ChainHealthHistoryResp{Data: checks, Limit: req.Limit})
}
