package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/community_connect/internal/core/policy"
	portssvc "github.com/SscSPs/community_connect/internal/core/ports/services"
	"github.com/SscSPs/community_connect/internal/dto"
	"github.com/SscSPs/community_connect/internal/middleware"
)

type financeHandler struct {
	finance portssvc.FinanceSvc
}

func registerFinanceRoutes(authed *gin.RouterGroup, finance portssvc.FinanceSvc) {
	h := &financeHandler{finance: finance}

	f := authed.Group("/financials", middleware.RequirePage(policy.PageFinancials))
	{
		f.GET("/summary", h.summary)
		f.GET("/transactions", h.listTransactions)
		f.POST("/transactions", h.addTransaction)
		f.GET("/bank-accounts", h.listBankAccounts)
		f.PUT("/bank-accounts/:id", h.updateBankAccount)
		f.PUT("/fee-amount", h.setFeeAmount)
		f.PUT("/pix-key", h.setPixKey)
	}
}

// summary godoc
// @Summary Financial summary
// @Description Revenue, expenses, balance (also formatted as BRL), pending fees and fee configuration.
// @Tags financials
// @Produce json
// @Success 200 {object} dto.FinancialSummaryResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /financials/summary [get]
func (h *financeHandler) summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.finance.Summary(c.Request.Context()))
}

// listTransactions godoc
// @Summary List ledger entries
// @Tags financials
// @Produce json
// @Success 200 {array} domain.Transaction
// @Security BearerAuth
// @Router /financials/transactions [get]
func (h *financeHandler) listTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, h.finance.ListTransactions(c.Request.Context()))
}

// addTransaction godoc
// @Summary Record a ledger entry
// @Tags financials
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} domain.Transaction
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /financials/transactions [post]
func (h *financeHandler) addTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	txn, err := h.finance.AddTransaction(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to record transaction")
		return
	}
	c.JSON(http.StatusCreated, txn)
}

// listBankAccounts godoc
// @Summary List bank accounts
// @Tags financials
// @Produce json
// @Success 200 {array} domain.BankAccount
// @Security BearerAuth
// @Router /financials/bank-accounts [get]
func (h *financeHandler) listBankAccounts(c *gin.Context) {
	c.JSON(http.StatusOK, h.finance.ListBankAccounts(c.Request.Context()))
}

// updateBankAccount godoc
// @Summary Replace a bank account
// @Tags financials
// @Accept json
// @Produce json
// @Param id path int true "Bank account ID"
// @Param account body dto.UpdateBankAccountRequest true "Bank account"
// @Success 200 {object} domain.BankAccount
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /financials/bank-accounts/{id} [put]
func (h *financeHandler) updateBankAccount(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	account, err := h.finance.UpdateBankAccount(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Failed to update bank account")
		return
	}
	c.JSON(http.StatusOK, account)
}

// setFeeAmount godoc
// @Summary Set the membership fee amount
// @Description Applies to fees seeded from now on; existing fees keep their amount.
// @Tags financials
// @Accept json
// @Param fee body dto.FeeAmountRequest true "Amount"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /financials/fee-amount [put]
func (h *financeHandler) setFeeAmount(c *gin.Context) {
	var req dto.FeeAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.finance.SetMembershipFeeAmount(c.Request.Context(), req.Amount); err != nil {
		respondError(c, err, "Failed to set fee amount")
		return
	}
	c.Status(http.StatusNoContent)
}

// setPixKey godoc
// @Summary Set the PIX key
// @Tags financials
// @Accept json
// @Param pix body dto.PixKeyRequest true "PIX key"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /financials/pix-key [put]
func (h *financeHandler) setPixKey(c *gin.Context) {
	var req dto.PixKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.finance.SetPixKey(c.Request.Context(), req.PixKey); err != nil {
		respondError(c, err, "Failed to set PIX key")
		return
	}
	c.Status(http.StatusNoContent)
}
