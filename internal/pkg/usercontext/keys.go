package usercontext

// Shared Locals/session keys used across controllers and middlewares
const (
	KeyAccountID     = "account_id"
	KeyAccountEmail  = "account_email"
	KeyAccountTitle  = "account_title"
	KeyFromProtected = "from_protected"
)
