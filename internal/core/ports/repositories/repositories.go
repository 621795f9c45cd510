package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Only the authentication service persists anything; the app server keeps its
// state in the in-memory store.
type RepositoryProvider struct {
	CredentialRepo CredentialRepositoryFacade
}
