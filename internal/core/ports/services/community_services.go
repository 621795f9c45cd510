package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/community_connect/internal/core/domain"
	"github.com/SscSPs/community_connect/internal/core/policy"
	"github.com/SscSPs/community_connect/internal/dto"
)

// Resolution is the outcome of routing a page request.
type Resolution struct {
	Page       policy.Page
	Redirected bool
}

// ViewRouterSvc resolves page requests against the session and the policy.
type ViewRouterSvc interface {
	Resolve(sess *domain.Session, requested string) Resolution
	Navigation(sess *domain.Session) []policy.Page
}

// MemberSvc manages association members.
type MemberSvc interface {
	ListMembers(ctx context.Context) []domain.Member
	GetMember(ctx context.Context, id int) (*domain.Member, error)
	CreateMember(ctx context.Context, req dto.CreateMemberRequest) (*domain.Member, error)
	UpdateMember(ctx context.Context, id int, req dto.UpdateMemberRequest) (*domain.Member, error)
	ChangeRole(ctx context.Context, id int, role domain.Role) (*domain.Member, error)
	SetFeeStatus(ctx context.Context, id int, req dto.SetFeeStatusRequest) (*domain.Member, error)
}

// ProjectSvc manages projects.
type ProjectSvc interface {
	ListProjects(ctx context.Context) []domain.Project
	CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error)
	UpdateProject(ctx context.Context, id int, req dto.UpdateProjectRequest) (*domain.Project, error)
	AttachFile(ctx context.Context, id int, fileName string) (*domain.Project, error)
	ManagerName(managerID int) string
}

// FinanceSvc manages the ledger, bank accounts and fee configuration.
type FinanceSvc interface {
	ListTransactions(ctx context.Context) []domain.Transaction
	AddTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	ListBankAccounts(ctx context.Context) []domain.BankAccount
	UpdateBankAccount(ctx context.Context, id int, req dto.UpdateBankAccountRequest) (*domain.BankAccount, error)
	SetMembershipFeeAmount(ctx context.Context, amount decimal.Decimal) error
	SetPixKey(ctx context.Context, key string) error
	Summary(ctx context.Context) dto.FinancialSummaryResponse
}

// ChatSvc reads and writes the association chat.
type ChatSvc interface {
	ListMessages(ctx context.Context, params dto.ListMessagesParams) (*dto.ListMessagesResponse, error)
	PostMessage(ctx context.Context, text string) (*domain.ChatMessage, error)
}

// CreativeSvc records generated content.
type CreativeSvc interface {
	History(ctx context.Context) []domain.CreativeHistoryItem
	Record(ctx context.Context, req dto.CreateCreativeItemRequest) (*domain.CreativeHistoryItem, error)
}

// SettingsSvc reads and patches the UI settings.
type SettingsSvc interface {
	Get(ctx context.Context) domain.Settings
	Update(ctx context.Context, patch domain.SettingsPatch) (domain.Settings, error)
}

// DashboardSvc builds the landing page summary for the session user.
type DashboardSvc interface {
	Summary(ctx context.Context, sess *domain.Session) dto.DashboardResponse
}
