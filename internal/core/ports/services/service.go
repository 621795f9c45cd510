package services

import "time"

// ServiceContainer holds instances of all the app server services.
// It is the entry point handlers use to reach service functionality.
type ServiceContainer struct {
	Session   SessionSvc
	Router    ViewRouterSvc
	Member    MemberSvc
	Project   ProjectSvc
	Finance   FinanceSvc
	Chat      ChatSvc
	Creative  CreativeSvc
	Settings  SettingsSvc
	Dashboard DashboardSvc

	// Clock is the store clock, used for derived fields such as project progress.
	Clock func() time.Time
}

// AuthServiceContainer holds the services of the authentication service process.
type AuthServiceContainer struct {
	Credential CredentialSvc
}
