package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/donatinator/donatinator/app/models"
	"github.com/donatinator/donatinator/internal/pkg/database"
	"github.com/donatinator/donatinator/internal/pkg/usercontext"
)

func isLoggedIn(c *fiber.Ctx) bool {
	var fromProtected bool
	if protectedValue := c.Locals(usercontext.KeyFromProtected); protectedValue != nil {
		fromProtected = protectedValue.(bool)
	}

	return fromProtected
}

// render wraps c.Render with the locals every page needs: the cached site
// settings, the navigation pages, the session state, and any flash message.
func render(c *fiber.Ctx, name string, bind fiber.Map) error {
	settings, err := models.CurrentSettings(database.GetDB())
	if err != nil {
		// A broken settings read should not blank the whole site.
		settings = map[string]string{}
	}

	pages, err := models.GetAllPages(database.GetDB())
	if err != nil {
		pages = nil
	}

	if bind == nil {
		bind = fiber.Map{}
	}
	if _, ok := bind["Title"]; !ok {
		bind["Title"] = settings["title"]
	}
	bind["Settings"] = settings
	bind["NavPages"] = pages
	bind["LoggedIn"] = isLoggedIn(c)
	bind["Flash"] = flash.Get(c)
	if token, ok := c.Locals("csrf").(string); ok {
		bind["CSRF"] = token
	}

	return c.Render(name, bind, "layouts/main")
}
