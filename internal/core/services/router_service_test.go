package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SscSPs/community_connect/internal/core/domain"
	"github.com/SscSPs/community_connect/internal/core/policy"
	portssvc "github.com/SscSPs/community_connect/internal/core/ports/services"
	"github.com/SscSPs/community_connect/internal/core/services"
)

func sessionWithRole(role domain.Role) *domain.Session {
	return &domain.Session{ID: "s", IsAuthenticated: true, CurrentUser: &domain.Member{ID: 1, Role: role}}
}

func TestViewRouter_Resolve(t *testing.T) {
	router := services.NewViewRouter()

	tests := []struct {
		name      string
		sess      *domain.Session
		requested string
		want      portssvc.Resolution
	}{
		{"anonymous goes to login", nil, "financials", portssvc.Resolution{Page: policy.PageLogin, Redirected: true}},
		{"anonymous on login", nil, "login", portssvc.Resolution{Page: policy.PageLogin}},
		{"unauthenticated session", &domain.Session{}, "dashboard", portssvc.Resolution{Page: policy.PageLogin, Redirected: true}},
		{"admin opens settings", sessionWithRole(domain.RoleAdmin), "settings", portssvc.Resolution{Page: policy.PageSettings}},
		{"manager opens creative", sessionWithRole(domain.RoleProjectManager), "creative", portssvc.Resolution{Page: policy.PageCreative}},
		{"manager denied financials", sessionWithRole(domain.RoleProjectManager), "financials", portssvc.Resolution{Page: policy.PageDashboard, Redirected: true}},
		{"member denied projects", sessionWithRole(domain.RoleMember), "projects", portssvc.Resolution{Page: policy.PageDashboard, Redirected: true}},
		{"member opens chat", sessionWithRole(domain.RoleMember), "chat", portssvc.Resolution{Page: policy.PageChat}},
		{"unknown page", sessionWithRole(domain.RoleAdmin), "reports", portssvc.Resolution{Page: policy.PageDashboard, Redirected: true}},
		{"login while authenticated", sessionWithRole(domain.RoleAdmin), "login", portssvc.Resolution{Page: policy.PageDashboard, Redirected: true}},
		{"dashboard", sessionWithRole(domain.RoleMember), "dashboard", portssvc.Resolution{Page: policy.PageDashboard}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, router.Resolve(tt.sess, tt.requested))
		})
	}
}

func TestViewRouter_Navigation(t *testing.T) {
	router := services.NewViewRouter()

	assert.Empty(t, router.Navigation(nil))
	assert.Equal(t,
		[]policy.Page{policy.PageDashboard, policy.PageProfile, policy.PageChat},
		router.Navigation(sessionWithRole(domain.RoleMember)))
	assert.Equal(t,
		[]policy.Page{policy.PageDashboard, policy.PageProfile, policy.PageChat, policy.PageProjects, policy.PageCreative},
		router.Navigation(sessionWithRole(domain.RoleProjectManager)))
	assert.Equal(t, policy.Pages(), router.Navigation(sessionWithRole(domain.RoleAdmin)))
}
