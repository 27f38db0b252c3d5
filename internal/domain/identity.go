package domain

// CallerIdentity identifies the authenticated caller of a search request.
// A nil *CallerIdentity means the caller is anonymous.
type CallerIdentity struct {
	UUID         string
	IsSuperAdmin bool
}

// OrgContext carries the deployment's organization scope. It is threaded
// explicitly through executors and builders instead of being read from
// process-wide state, so multi-tenant behavior is testable.
type OrgContext struct {
	OrgID string
}
