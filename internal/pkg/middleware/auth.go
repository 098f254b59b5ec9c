package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/donatinator/donatinator/internal/pkg/usercontext"
)

// RequireAdmin gates the /admin area; anyone with a session is an
// administrator, there are no finer-grained roles.
func RequireAdmin(c *fiber.Ctx) error {
	v := c.Locals(usercontext.KeyFromProtected)
	loggedIn := false
	if b, ok := v.(bool); ok {
		loggedIn = b
	}
	if !loggedIn {
		return c.Redirect("/sign-in", fiber.StatusSeeOther)
	}
	return c.Next()
}
