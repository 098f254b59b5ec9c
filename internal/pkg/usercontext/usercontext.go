package usercontext

import "github.com/gofiber/fiber/v2"

// AccountContext represents the signed-in administrator for a request.
// Donations do not require an account; only the admin area is gated.
type AccountContext struct {
	AccountID  uint   `json:"account_id"`
	Email      string `json:"email"`
	Title      string `json:"title"`
	IsLoggedIn bool   `json:"is_logged_in"`
}

// GetAccountContext retrieves the account context from fiber context.
// Returns an anonymous context if none is set.
func GetAccountContext(c *fiber.Ctx) AccountContext {
	if ctx := c.Locals("ACCOUNT_CONTEXT"); ctx != nil {
		return ctx.(AccountContext)
	}
	return AccountContext{IsLoggedIn: false}
}

// IsLoggedIn checks if the current request carries a signed-in administrator
func IsLoggedIn(c *fiber.Ctx) bool {
	return GetAccountContext(c).IsLoggedIn
}

// GetAccountID returns the current account's ID, or 0 if not logged in
func GetAccountID(c *fiber.Ctx) uint {
	return GetAccountContext(c).AccountID
}

// GetEmail returns the current account's email, or empty string
func GetEmail(c *fiber.Ctx) string {
	return GetAccountContext(c).Email
}
