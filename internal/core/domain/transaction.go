package domain

import "github.com/shopspring/decimal"

// TransactionType indicates whether a ledger entry brings money in or out.
type TransactionType string

const (
	Revenue TransactionType = "REVENUE"
	Expense TransactionType = "EXPENSE"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == Revenue || t == Expense
}

// Transaction is a single entry of the association's simple ledger.
type Transaction struct {
	ID          int             `json:"id" yaml:"id"`
	Description string          `json:"description" yaml:"description"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"` // Non-negative; Type carries the sign
	Type        TransactionType `json:"type" yaml:"type"`
	Category    string          `json:"category" yaml:"category"`
	Date        string          `json:"date" yaml:"date"`
}

// NewTransaction holds every transaction field except the id.
type NewTransaction struct {
	Description string
	Amount      decimal.Decimal
	Type        TransactionType
	Category    string
	Date        string
}

// SignedAmount returns the amount with expenses negated.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// BankAccount is static reference data about where the association keeps money.
type BankAccount struct {
	ID      int    `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Agency  string `json:"agency" yaml:"agency"`
	Account string `json:"account" yaml:"account"`
	Type    string `json:"type" yaml:"type"`
}

// Totals folds a ledger into revenue, expense and balance.
func Totals(txns []Transaction) (revenue, expenses, balance decimal.Decimal) {
	revenue, expenses = decimal.Zero, decimal.Zero
	for _, t := range txns {
		switch t.Type {
		case Revenue:
			revenue = revenue.Add(t.Amount)
		case Expense:
			expenses = expenses.Add(t.Amount)
		}
	}
	return revenue, expenses, revenue.Sub(expenses)
}
