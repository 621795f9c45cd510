package services

import (
	portsrepo "github.com/SscSPs/community_connect/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/community_connect/internal/core/ports/services"
	"github.com/SscSPs/community_connect/internal/core/store"
)

// NewServiceContainer wires the app server services around one store.
func NewServiceContainer(st *store.Store, authClient portssvc.AuthServiceClient, sessionOpts ...SessionServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Session:   NewSessionService(authClient, st, sessionOpts...),
		Router:    NewViewRouter(),
		Member:    NewMemberService(st),
		Project:   NewProjectService(st),
		Finance:   NewFinanceService(st),
		Chat:      NewChatService(st),
		Creative:  NewCreativeService(st),
		Settings:  NewSettingsService(st),
		Dashboard: NewDashboardService(st),
		Clock:     st.Now,
	}
}

// NewAuthServiceContainer wires the authentication service.
func NewAuthServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.AuthServiceContainer {
	return &portssvc.AuthServiceContainer{
		Credential: NewCredentialService(repos.CredentialRepo),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.SessionSvc    = (*sessionService)(nil)
	_ portssvc.ViewRouterSvc = viewRouter{}
	_ portssvc.MemberSvc     = (*memberService)(nil)
	_ portssvc.ProjectSvc    = (*projectService)(nil)
	_ portssvc.FinanceSvc    = (*financeService)(nil)
	_ portssvc.ChatSvc       = (*chatService)(nil)
	_ portssvc.CreativeSvc   = (*creativeService)(nil)
	_ portssvc.SettingsSvc   = (*settingsService)(nil)
	_ portssvc.DashboardSvc  = (*dashboardService)(nil)
	_ portssvc.CredentialSvc = (*credentialService)(nil)
)
