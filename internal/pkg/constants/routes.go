package constants

// Static route constants
const (
	PublicRoute  = "/"
	DonateRoute  = "/donate"
	MonthlyRoute = "/monthly"
	ThanksRoute  = "/thanks"
	SignInRoute  = "/sign-in"
	SignOutRoute = "/sign-out"
	HookRoute    = "/hooks/stripe"
	AdminRoute   = "/admin"
)
