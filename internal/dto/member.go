package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/community_connect/internal/core/domain"
)

// CreateMemberRequest defines the data an admin supplies to add a member.
type CreateMemberRequest struct {
	Name     string      `json:"name" binding:"required"`
	CPF      string      `json:"cpf"`
	Address  string      `json:"address"`
	Phone    string      `json:"phone"`
	Email    string      `json:"email" binding:"required,email"`
	JoinDate string      `json:"joinDate" binding:"omitempty,datetime=2006-01-02"`
	Role     domain.Role `json:"role" binding:"omitempty,oneof=ADMIN PROJECT_MANAGER MEMBER"`
}

// UpdateMemberRequest defines the editable profile fields.
// Pointers distinguish omitted fields from empty ones.
type UpdateMemberRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1"`
	CPF       *string `json:"cpf"`
	Address   *string `json:"address"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email" binding:"omitempty,email"`
	AvatarURL *string `json:"avatarUrl" binding:"omitempty,url"`
	BannerURL *string `json:"bannerUrl" binding:"omitempty,url"`
}

// ChangeRoleRequest sets a member's role.
type ChangeRoleRequest struct {
	Role domain.Role `json:"role" binding:"required,oneof=ADMIN PROJECT_MANAGER MEMBER"`
}

// SetFeeStatusRequest flips one monthly fee.
type SetFeeStatusRequest struct {
	Month  int              `json:"month" binding:"required,min=1,max=12"`
	Year   int              `json:"year" binding:"required,min=1900"`
	Status domain.FeeStatus `json:"status" binding:"required,oneof=PAID PENDING"`
}

// MonthlyFeeResponse is one fee line.
type MonthlyFeeResponse struct {
	Month  int              `json:"month"`
	Year   int              `json:"year"`
	Status domain.FeeStatus `json:"status"`
	Amount decimal.Decimal  `json:"amount"`
}

// MemberResponse mirrors domain.Member without the password and with the pending fold.
type MemberResponse struct {
	ID           int                  `json:"id"`
	Name         string               `json:"name"`
	CPF          string               `json:"cpf"`
	Address      string               `json:"address"`
	Phone        string               `json:"phone"`
	Email        string               `json:"email"`
	JoinDate     string               `json:"joinDate"`
	Role         domain.Role          `json:"role"`
	AvatarURL    string               `json:"avatarUrl"`
	BannerURL    *string              `json:"bannerUrl,omitempty"`
	Fees         []MonthlyFeeResponse `json:"fees"`
	PendingTotal decimal.Decimal      `json:"pendingTotal"`
}

// ToMemberResponse converts a domain.Member to MemberResponse DTO
func ToMemberResponse(m domain.Member) MemberResponse {
	fees := make([]MonthlyFeeResponse, len(m.Fees))
	for i, f := range m.Fees {
		fees[i] = MonthlyFeeResponse{Month: int(f.Month), Year: f.Year, Status: f.Status, Amount: f.Amount}
	}
	var banner *string
	if m.BannerURL != nil {
		b := *m.BannerURL
		banner = &b
	}
	return MemberResponse{
		ID:           m.ID,
		Name:         m.Name,
		CPF:          m.CPF,
		Address:      m.Address,
		Phone:        m.Phone,
		Email:        m.Email,
		JoinDate:     m.JoinDate,
		Role:         m.Role,
		AvatarURL:    m.AvatarURL,
		BannerURL:    banner,
		Fees:         fees,
		PendingTotal: m.PendingTotal(),
	}
}

// ToListMemberResponse converts a slice of domain.Member to a slice of MemberResponse DTOs
func ToListMemberResponse(members []domain.Member) []MemberResponse {
	res := make([]MemberResponse, len(members))
	for i, m := range members {
		res[i] = ToMemberResponse(m)
	}
	return res
}

// FeeMonth returns the request month as a time.Month.
func (r SetFeeStatusRequest) FeeMonth() time.Month {
	return time.Month(r.Month)
}
