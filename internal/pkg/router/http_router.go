package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/donatinator/donatinator/internal/pkg/middleware"
	"github.com/donatinator/donatinator/internal/pkg/session"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// Apply account context middleware globally as first middleware
	app.Use(middleware.AccountContextMiddleware)

	// The admin group installs before the CSRF group because the latter ends
	// in the /:name catch-all for content pages.
	h.registerHookRoutes(app)
	h.registerAdminRoutes(app)
	h.registerCSRFProtectedRoutes(app)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}

func loggedInMiddleware(c *fiber.Ctx) error {
	// AccountContextMiddleware already resolved the session; handlers read
	// it through usercontext.
	return c.Next()
}
