package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"

	"github.com/donatinator/donatinator/app/controllers"
	"github.com/donatinator/donatinator/internal/pkg/env"
	"github.com/donatinator/donatinator/internal/pkg/middleware"
)

func (h HttpRouter) registerAdminRoutes(app *fiber.App) {
	csrfConf := csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     "csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !env.IsDev(),
	}

	adminGroup := app.Group("/admin", csrf.New(csrfConf), middleware.RequireAdmin)
	adminGroup.Get("/", controllers.HandleAdminIndex)

	adminGroup.Get("/settings", controllers.HandleAdminSettings)
	adminGroup.Post("/settings", controllers.HandleAdminSettingsPost)

	adminGroup.Get("/gifts", controllers.HandleAdminGifts)
	adminGroup.Get("/gifts/create", controllers.HandleAdminGiftNew)
	adminGroup.Post("/gifts/store", controllers.HandleAdminGiftSave)
	adminGroup.Get("/gifts/edit/:id", controllers.HandleAdminGiftEdit)
	adminGroup.Post("/gifts/update/:id", controllers.HandleAdminGiftSave)
	adminGroup.Post("/gifts/delete/:id", controllers.HandleAdminGiftDelete)
	adminGroup.Post("/plans/store", controllers.HandleAdminPlanCreate)

	adminGroup.Get("/pages", controllers.HandleAdminPages)
	adminGroup.Get("/pages/create", controllers.HandleAdminPageNew)
	adminGroup.Post("/pages/store", controllers.HandleAdminPageSave)
	adminGroup.Get("/pages/edit/:id", controllers.HandleAdminPageEdit)
	adminGroup.Post("/pages/update/:id", controllers.HandleAdminPageSave)
	adminGroup.Post("/pages/delete/:id", controllers.HandleAdminPageDelete)

	adminGroup.Get("/donations", controllers.HandleAdminDonations)
	adminGroup.Get("/events", controllers.HandleAdminEvents)
}
