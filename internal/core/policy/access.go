// Package policy maps member roles to the pages they may open.
package policy

import "github.com/SscSPs/community_connect/internal/core/domain"

// Page is a navigable area of the application.
type Page string

const (
	PageLogin      Page = "login" // Anonymous landing page; never part of navigation
	PageDashboard  Page = "dashboard"
	PageProfile    Page = "profile"
	PageChat       Page = "chat"
	PageMembers    Page = "members"
	PageProjects   Page = "projects"
	PageCreative   Page = "creative"
	PageFinancials Page = "financials"
	PageSettings   Page = "settings"
)

// navigationOrder is the order pages appear in the navigation bar.
var navigationOrder = []Page{
	PageDashboard,
	PageProfile,
	PageChat,
	PageMembers,
	PageProjects,
	PageCreative,
	PageFinancials,
	PageSettings,
}

type tier int

const (
	tierAnyMember tier = iota
	tierManager
	tierAdmin
)

var pageTier = map[Page]tier{
	PageDashboard:  tierAnyMember,
	PageProfile:    tierAnyMember,
	PageChat:       tierAnyMember,
	PageProjects:   tierManager,
	PageCreative:   tierManager,
	PageMembers:    tierAdmin,
	PageFinancials: tierAdmin,
	PageSettings:   tierAdmin,
}

// Access is the derived access level of a role.
type Access struct {
	CanViewAdminPages   bool `json:"canViewAdminPages"`
	CanViewManagerPages bool `json:"canViewManagerPages"`
}

// AccessLevel derives the access level of role. Unknown roles get no elevated access.
func AccessLevel(role domain.Role) Access {
	admin := role == domain.RoleAdmin
	return Access{
		CanViewAdminPages:   admin,
		CanViewManagerPages: admin || role == domain.RoleProjectManager,
	}
}

// Allows reports whether a member holding role may open page.
func Allows(role domain.Role, page Page) bool {
	t, ok := pageTier[page]
	if !ok {
		return false
	}
	access := AccessLevel(role)
	switch t {
	case tierAdmin:
		return access.CanViewAdminPages
	case tierManager:
		return access.CanViewManagerPages
	default:
		return role.Valid()
	}
}

// AllowedPages lists the pages role may open, in navigation order.
func AllowedPages(role domain.Role) []Page {
	pages := make([]Page, 0, len(navigationOrder))
	for _, p := range navigationOrder {
		if Allows(role, p) {
			pages = append(pages, p)
		}
	}
	return pages
}

// ParsePage converts a raw page name. PageLogin is not a navigable page.
func ParsePage(raw string) (Page, bool) {
	p := Page(raw)
	_, ok := pageTier[p]
	return p, ok
}

// Pages returns every navigable page in navigation order.
func Pages() []Page {
	out := make([]Page, len(navigationOrder))
	copy(out, navigationOrder)
	return out
}
