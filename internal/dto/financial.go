package dto

import (
	"github.com/shopspring/decimal"

	"github.com/SscSPs/community_connect/internal/core/domain"
)

// CreateTransactionRequest defines the data needed to record a ledger entry.
type CreateTransactionRequest struct {
	Description string                 `json:"description" binding:"required"`
	Amount      decimal.Decimal        `json:"amount"`
	Type        domain.TransactionType `json:"type" binding:"required,oneof=REVENUE EXPENSE"`
	Category    string                 `json:"category"`
	Date        string                 `json:"date" binding:"required,datetime=2006-01-02"`
}

// UpdateBankAccountRequest replaces every field of a bank account.
type UpdateBankAccountRequest struct {
	Name    string `json:"name" binding:"required"`
	Agency  string `json:"agency" binding:"required"`
	Account string `json:"account" binding:"required"`
	Type    string `json:"type" binding:"required"`
}

// FeeAmountRequest sets the amount used for future fee seeding.
type FeeAmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// PixKeyRequest sets the PIX key shown to paying members.
type PixKeyRequest struct {
	PixKey string `json:"pixKey" binding:"required"`
}

// FinancialSummaryResponse aggregates the ledger and fee configuration.
type FinancialSummaryResponse struct {
	Revenue             decimal.Decimal `json:"revenue"`
	Expenses            decimal.Decimal `json:"expenses"`
	Balance             decimal.Decimal `json:"balance"`
	BalanceDisplay      string          `json:"balanceDisplay"`
	PendingFeesTotal    decimal.Decimal `json:"pendingFeesTotal"`
	MembershipFeeAmount decimal.Decimal `json:"membershipFeeAmount"`
	PixKey              string          `json:"pixKey"`
	TransactionCount    int             `json:"transactionCount"`
}
