package services

import (
	"github.com/SscSPs/community_connect/internal/core/domain"
	"github.com/SscSPs/community_connect/internal/core/policy"
	portssvc "github.com/SscSPs/community_connect/internal/core/ports/services"
)

type viewRouter struct{}

// NewViewRouter creates the view router. It is stateless; the session is passed per call.
func NewViewRouter() portssvc.ViewRouterSvc {
	return viewRouter{}
}

// Resolve maps a requested page to the page to show. Anonymous visitors always
// land on login; unknown or forbidden pages fall back to the dashboard.
func (viewRouter) Resolve(sess *domain.Session, requested string) portssvc.Resolution {
	if !sess.Active() {
		return portssvc.Resolution{Page: policy.PageLogin, Redirected: requested != string(policy.PageLogin)}
	}
	page, ok := policy.ParsePage(requested)
	if !ok || !policy.Allows(sess.CurrentUser.Role, page) {
		return portssvc.Resolution{Page: policy.PageDashboard, Redirected: requested != string(policy.PageDashboard)}
	}
	return portssvc.Resolution{Page: page}
}

func (viewRouter) Navigation(sess *domain.Session) []policy.Page {
	if !sess.Active() {
		return []policy.Page{}
	}
	return policy.AllowedPages(sess.CurrentUser.Role)
}
