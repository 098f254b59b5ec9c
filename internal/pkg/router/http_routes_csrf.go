package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/csrf"

	"github.com/donatinator/donatinator/app/controllers"
	"github.com/donatinator/donatinator/internal/pkg/constants"
	"github.com/donatinator/donatinator/internal/pkg/env"
)

func (h HttpRouter) registerCSRFProtectedRoutes(app *fiber.App) {
	csrfConf := csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     "csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !env.IsDev(),
	}

	group := app.Group("", cors.New(), csrf.New(csrfConf))
	group.Get(constants.PublicRoute, loggedInMiddleware, controllers.HandleStart)
	group.Get(constants.DonateRoute, loggedInMiddleware, controllers.HandleDonate)
	group.Post(constants.DonateRoute, loggedInMiddleware, controllers.HandleDonatePost)
	group.Get(constants.MonthlyRoute, loggedInMiddleware, controllers.HandleMonthly)
	group.Post(constants.MonthlyRoute, loggedInMiddleware, controllers.HandleMonthlyPost)
	group.Get(constants.ThanksRoute, loggedInMiddleware, controllers.HandleThanks)
	group.Get(constants.SignInRoute, loggedInMiddleware, controllers.HandleSignIn)
	group.Post(constants.SignInRoute, loggedInMiddleware, controllers.HandleSignIn)
	group.Get(constants.SignOutRoute, loggedInMiddleware, controllers.HandleSignOut)

	// Administrator-authored content pages, matched last so fixed routes win.
	group.Get("/:name", loggedInMiddleware, controllers.HandlePage)
}
