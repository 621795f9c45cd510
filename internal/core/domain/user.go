package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role defines the access tier a member holds inside the association.
type Role string

const (
	RoleAdmin          Role = "ADMIN"
	RoleProjectManager Role = "PROJECT_MANAGER"
	RoleMember         Role = "MEMBER"
)

// Valid reports whether r is one of the known role tiers.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleProjectManager, RoleMember:
		return true
	}
	return false
}

// FeeStatus is the payment state of a monthly fee.
type FeeStatus string

const (
	FeePaid    FeeStatus = "PAID"
	FeePending FeeStatus = "PENDING"
)

// Valid reports whether s is a known fee status.
func (s FeeStatus) Valid() bool {
	return s == FeePaid || s == FeePending
}

// MonthlyFee is a single monthly dues obligation of a member.
type MonthlyFee struct {
	Month  time.Month      `json:"month" yaml:"month"`
	Year   int             `json:"year" yaml:"year"`
	Status FeeStatus       `json:"status" yaml:"status"`
	Amount decimal.Decimal `json:"amount" yaml:"amount"`
}

// Member represents a registered participant of the association.
type Member struct {
	ID        int          `json:"id" yaml:"id"` // Assigned by the store, never reused
	Name      string       `json:"name" yaml:"name"`
	CPF       string       `json:"cpf" yaml:"cpf"`
	Address   string       `json:"address" yaml:"address"`
	Phone     string       `json:"phone" yaml:"phone"`
	Email     string       `json:"email" yaml:"email"`
	JoinDate  string       `json:"joinDate" yaml:"joinDate"` // YYYY-MM-DD
	Role      Role         `json:"role" yaml:"role"`
	AvatarURL string       `json:"avatarUrl" yaml:"avatarUrl"`
	BannerURL *string      `json:"bannerUrl,omitempty" yaml:"bannerUrl,omitempty"`
	Password  *string      `json:"-" yaml:"password,omitempty"`
	Fees      []MonthlyFee `json:"fees" yaml:"fees"`
}

// NewMember holds every member field except the ones the store assigns
// (id, avatar, banner and the seeded fees).
type NewMember struct {
	Name     string
	CPF      string
	Address  string
	Phone    string
	Email    string
	JoinDate string
	Role     Role
	Password *string
}

// PendingFees returns the fees still awaiting payment, in their original order.
func (m Member) PendingFees() []MonthlyFee {
	pending := make([]MonthlyFee, 0, len(m.Fees))
	for _, fee := range m.Fees {
		if fee.Status == FeePending {
			pending = append(pending, fee)
		}
	}
	return pending
}

// PendingTotal folds the amounts of all pending fees.
func (m Member) PendingTotal() decimal.Decimal {
	total := decimal.Zero
	for _, fee := range m.Fees {
		if fee.Status == FeePending {
			total = total.Add(fee.Amount)
		}
	}
	return total
}

// HasPendingFees reports whether at least one fee is still pending.
func (m Member) HasPendingFees() bool {
	for _, fee := range m.Fees {
		if fee.Status == FeePending {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can never alias store-owned slices.
func (m Member) Clone() Member {
	c := m
	if m.BannerURL != nil {
		banner := *m.BannerURL
		c.BannerURL = &banner
	}
	if m.Password != nil {
		pw := *m.Password
		c.Password = &pw
	}
	if m.Fees != nil {
		c.Fees = make([]MonthlyFee, len(m.Fees))
		copy(c.Fees, m.Fees)
	}
	return c
}
