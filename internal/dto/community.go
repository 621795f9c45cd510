package dto

import (
	"github.com/shopspring/decimal"

	"github.com/SscSPs/community_connect/internal/core/domain"
	"github.com/SscSPs/community_connect/internal/core/policy"
)

// PostMessageRequest is a new chat line.
type PostMessageRequest struct {
	Text string `json:"text" binding:"required,max=2000"`
}

// ListMessagesParams defines query parameters for reading the chat log.
type ListMessagesParams struct {
	Limit     int    `form:"limit,default=50"`
	NextToken string `form:"next_token"`
}

// ListMessagesResponse is a chronological page of the chat log. NextToken
// points at older messages.
type ListMessagesResponse struct {
	Messages  []domain.ChatMessage `json:"messages"`
	NextToken *string              `json:"nextToken,omitempty"`
}

// CreateCreativeItemRequest records a generation result.
type CreateCreativeItemRequest struct {
	Type   domain.CreativeType `json:"type" binding:"required,oneof=text image"`
	Prompt string              `json:"prompt" binding:"required"`
	Result string              `json:"result" binding:"required"`
}

// NavigationEntry is one item of the navigation bar.
type NavigationEntry struct {
	Page policy.Page `json:"page"`
	Path string      `json:"path"`
}

// NavigationResponse lists the pages the session user may open, in display order.
type NavigationResponse struct {
	Pages []NavigationEntry `json:"pages"`
}

// PageResolutionResponse reports which page the router resolved.
type PageResolutionResponse struct {
	Requested  string      `json:"requested"`
	Page       policy.Page `json:"page"`
	Redirected bool        `json:"redirected"`
}

// PendingFeeMember is a dashboard line for a member with unpaid fees.
type PendingFeeMember struct {
	MemberID     int             `json:"memberId"`
	Name         string          `json:"name"`
	PendingCount int             `json:"pendingCount"`
	PendingTotal decimal.Decimal `json:"pendingTotal"`
}

// DashboardResponse is the landing page summary.
type DashboardResponse struct {
	WelcomeMessage         string               `json:"welcomeMessage"`
	TotalMembers           int                  `json:"totalMembers"`
	TotalProjects          int                  `json:"totalProjects"`
	ActiveProjects         int                  `json:"activeProjects"`
	PendingFeeCount        int                  `json:"pendingFeeCount"`
	MembersWithPendingFees []PendingFeeMember   `json:"membersWithPendingFees"`
	NearDeadlineProjects   []ProjectResponse    `json:"nearDeadlineProjects"`
	MyPendingFees          []MonthlyFeeResponse `json:"myPendingFees"`
	PixKey                 string               `json:"pixKey"`
}
