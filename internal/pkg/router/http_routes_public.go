package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/donatinator/donatinator/app/controllers"
	"github.com/donatinator/donatinator/internal/pkg/constants"
)

// registerHookRoutes installs the webhook endpoint. It deliberately sits
// outside the CSRF group: Stripe cannot send a CSRF token, the signature
// header is the authentication.
func (h HttpRouter) registerHookRoutes(app *fiber.App) {
	app.Post(constants.HookRoute, controllers.HandleStripeHook)
}
