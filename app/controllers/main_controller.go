package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/donatinator/donatinator/app/models"
	"github.com/donatinator/donatinator/internal/pkg/database"
)

// HandleStart renders the landing page with the splash image and the
// donation call to action.
func HandleStart(c *fiber.Ctx) error {
	return render(c, "index", fiber.Map{})
}

// HandlePage renders one of the administrator-authored content pages.
func HandlePage(c *fiber.Ctx) error {
	name := c.Params("name")

	page, err := models.FindPageByName(database.GetDB(), name)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load page")
	}
	if page == nil {
		return fiber.ErrNotFound
	}

	return render(c, "page", fiber.Map{
		"Title": page.Title,
		"Page":  page,
	})
}

// HandleThanks is the post-donation landing page.
func HandleThanks(c *fiber.Ctx) error {
	return render(c, "thanks", fiber.Map{})
}
