package controllers

import (
	"log"
	"regexp"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/donatinator/donatinator/app/models"
	"github.com/donatinator/donatinator/app/repository"
	"github.com/donatinator/donatinator/internal/pkg/utils"
)

// Page names become URL path segments, so keep them to a safe slug shape.
var pageNameRe = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// HandleAdminPages lists the content pages in navigation order.
func HandleAdminPages(c *fiber.Ctx) error {
	pages, err := repository.GetGlobalRepositories().Page.GetAll()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load pages")
	}

	return render(c, "admin/pages", fiber.Map{
		"Title": "Pages",
		"Pages": pages,
	})
}

// HandleAdminPageNew renders the empty page form.
func HandleAdminPageNew(c *fiber.Ctx) error {
	return render(c, "admin/page_form", fiber.Map{
		"Title": "New Page",
		"Page":  &models.Page{},
	})
}

// HandleAdminPageEdit renders the page form for an existing page.
func HandleAdminPageEdit(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return fiber.ErrNotFound
	}

	page, err := repository.GetGlobalRepositories().Page.GetByID(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load page")
	}
	if page == nil {
		return fiber.ErrNotFound
	}

	return render(c, "admin/page_form", fiber.Map{
		"Title": "Edit Page",
		"Page":  page,
	})
}

// HandleAdminPageSave creates or updates a content page. The stored HTML is
// derived from the raw content on every save.
func HandleAdminPageSave(c *fiber.Ctx) error {
	fm := fiber.Map{"type": "error"}

	position, _ := strconv.Atoi(c.FormValue("position"))
	page := &models.Page{
		Name:     c.FormValue("name"),
		Title:    c.FormValue("title"),
		Content:  c.FormValue("content"),
		HTML:     utils.ProcessHTMLContent(c.FormValue("content")),
		Position: position,
	}
	if err := page.Validate(); err != nil || !pageNameRe.MatchString(page.Name) {
		fm["message"] = "The page details are not valid"
		return flash.WithError(c, fm).Redirect("/admin/pages")
	}

	repos := repository.GetGlobalRepositories()
	if idParam := c.Params("id"); idParam != "" {
		id, err := strconv.ParseUint(idParam, 10, 32)
		if err != nil {
			return fiber.ErrNotFound
		}
		page.ID = uint(id)
		if err := repos.Page.Update(page); err != nil {
			log.Printf("Error updating page %d: %v", page.ID, err)
			fm["message"] = "The page could not be saved"
			return flash.WithError(c, fm).Redirect("/admin/pages")
		}
	} else {
		exists, err := repos.Page.NameExists(page.Name)
		if err != nil {
			log.Printf("Error checking page name %s: %v", page.Name, err)
			fm["message"] = "The page could not be saved"
			return flash.WithError(c, fm).Redirect("/admin/pages")
		}
		if exists {
			fm["message"] = "A page with that name already exists"
			return flash.WithError(c, fm).Redirect("/admin/pages")
		}
		if err := repos.Page.Create(page); err != nil {
			log.Printf("Error creating page: %v", err)
			fm["message"] = "The page could not be saved"
			return flash.WithError(c, fm).Redirect("/admin/pages")
		}
	}

	fm = fiber.Map{
		"type":    "success",
		"message": "Page saved",
	}
	return flash.WithSuccess(c, fm).Redirect("/admin/pages")
}

// HandleAdminPageDelete removes a content page.
func HandleAdminPageDelete(c *fiber.Ctx) error {
	fm := fiber.Map{"type": "error"}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return fiber.ErrNotFound
	}

	if err := repository.GetGlobalRepositories().Page.Delete(uint(id)); err != nil {
		log.Printf("Error deleting page %d: %v", id, err)
		fm["message"] = "The page could not be deleted"
		return flash.WithError(c, fm).Redirect("/admin/pages")
	}

	fm = fiber.Map{
		"type":    "success",
		"message": "Page deleted",
	}
	return flash.WithSuccess(c, fm).Redirect("/admin/pages")
}
