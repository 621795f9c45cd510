package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/community_connect/internal/apperrors"
	"github.com/SscSPs/community_connect/internal/core/domain"
	portssvc "github.com/SscSPs/community_connect/internal/core/ports/services"
	"github.com/SscSPs/community_connect/internal/core/store"
	"github.com/SscSPs/community_connect/internal/dto"
	"github.com/SscSPs/community_connect/internal/utils"
)

type financeService struct {
	BaseService
	store *store.Store
}

// NewFinanceService creates the finance service.
func NewFinanceService(st *store.Store) portssvc.FinanceSvc {
	return &financeService{store: st}
}

func (s *financeService) ListTransactions(_ context.Context) []domain.Transaction {
	return s.store.Transactions()
}

// AddTransaction records a ledger entry. Amount is a magnitude; Type gives the sign.
func (s *financeService) AddTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewAppError(apperrors.ErrValidation, "O valor deve ser maior que zero.")
	}
	if !req.Type.Valid() {
		return nil, apperrors.NewAppError(apperrors.ErrValidation, "Tipo de transação inválido: %s", req.Type)
	}

	t := s.store.AddTransaction(domain.NewTransaction{
		Description: strings.TrimSpace(req.Description),
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    strings.TrimSpace(req.Category),
		Date:        req.Date,
	})
	s.LogInfo(ctx, "Transaction recorded",
		slog.Int("transaction_id", t.ID),
		slog.String("type", string(t.Type)),
		slog.String("amount", t.Amount.StringFixed(2)))
	return &t, nil
}

func (s *financeService) ListBankAccounts(_ context.Context) []domain.BankAccount {
	return s.store.BankAccounts()
}

func (s *financeService) UpdateBankAccount(ctx context.Context, id int, req dto.UpdateBankAccountRequest) (*domain.BankAccount, error) {
	account := domain.BankAccount{
		ID:      id,
		Name:    strings.TrimSpace(req.Name),
		Agency:  strings.TrimSpace(req.Agency),
		Account: strings.TrimSpace(req.Account),
		Type:    strings.TrimSpace(req.Type),
	}
	if !s.store.UpdateBankAccount(account) {
		return nil, fmt.Errorf("bank account %d: %w", id, apperrors.ErrNotFound)
	}
	s.LogInfo(ctx, "Bank account updated", slog.Int("bank_account_id", id))
	return &account, nil
}

// SetMembershipFeeAmount changes the amount seeded into future members' fees.
// Existing fees keep their amount.
func (s *financeService) SetMembershipFeeAmount(ctx context.Context, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return apperrors.NewAppError(apperrors.ErrValidation, "O valor da mensalidade não pode ser negativo.")
	}
	s.store.UpdateMembershipFeeAmount(amount)
	s.LogInfo(ctx, "Membership fee amount changed", slog.String("amount", amount.StringFixed(2)))
	return nil
}

func (s *financeService) SetPixKey(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return apperrors.NewAppError(apperrors.ErrValidation, "A chave PIX é obrigatória.")
	}
	s.store.UpdatePixKey(key)
	s.LogInfo(ctx, "PIX key changed")
	return nil
}

func (s *financeService) Summary(_ context.Context) dto.FinancialSummaryResponse {
	txns := s.store.Transactions()
	revenue, expenses, balance := domain.Totals(txns)

	pending := decimal.Zero
	for _, m := range s.store.Members() {
		pending = pending.Add(m.PendingTotal())
	}

	return dto.FinancialSummaryResponse{
		Revenue:             revenue,
		Expenses:            expenses,
		Balance:             balance,
		BalanceDisplay:      utils.FormatBRL(balance),
		PendingFeesTotal:    pending,
		MembershipFeeAmount: s.store.MembershipFeeAmount(),
		PixKey:              s.store.PixKey(),
		TransactionCount:    len(txns),
	}
}
