package controllers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/donatinator/donatinator/app/models"
	"github.com/donatinator/donatinator/app/repository"
	"github.com/donatinator/donatinator/internal/pkg/billing"
	"github.com/donatinator/donatinator/internal/pkg/database"
)

// HandleAdminGifts lists the gift tiers and the recurring plans side by side.
func HandleAdminGifts(c *fiber.Ctx) error {
	gifts, err := repository.GetGlobalRepositories().Gift.GetAll()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load gifts")
	}

	plans, err := billing.CurrentPlans()
	if err != nil {
		log.Printf("Error loading plans: %v", err)
		plans = nil
	}

	return render(c, "admin/gifts", fiber.Map{
		"Title": "Gifts",
		"Gifts": gifts,
		"Plans": plans,
	})
}

// HandleAdminGiftNew renders the empty gift form.
func HandleAdminGiftNew(c *fiber.Ctx) error {
	return render(c, "admin/gift_form", fiber.Map{
		"Title": "New Gift",
		"Gift":  &models.Gift{},
	})
}

// HandleAdminGiftEdit renders the gift form for an existing tier.
func HandleAdminGiftEdit(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return fiber.ErrNotFound
	}

	gift, err := repository.GetGlobalRepositories().Gift.GetByID(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load gift")
	}
	if gift == nil {
		return fiber.ErrNotFound
	}

	return render(c, "admin/gift_form", fiber.Map{
		"Title": "Edit Gift",
		"Gift":  gift,
	})
}

func giftFromForm(c *fiber.Ctx, settings map[string]string) (*models.Gift, error) {
	amount, err := strconv.ParseInt(c.FormValue("amount"), 10, 64)
	if err != nil {
		return nil, err
	}

	gift := &models.Gift{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Amount:      amount,
		Currency:    settings["currency"],
	}
	return gift, gift.Validate()
}

// HandleAdminGiftSave creates or updates a gift tier and reloads the gift
// cache so the donate page reflects the change.
func HandleAdminGiftSave(c *fiber.Ctx) error {
	fm := fiber.Map{"type": "error"}

	settings, err := models.CurrentSettings(database.GetDB())
	if err != nil {
		fm["message"] = "Something went wrong"
		return flash.WithError(c, fm).Redirect("/admin/gifts")
	}

	gift, err := giftFromForm(c, settings)
	if err != nil {
		fm["message"] = "The gift details are not valid"
		return flash.WithError(c, fm).Redirect("/admin/gifts")
	}

	repos := repository.GetGlobalRepositories()
	if idParam := c.Params("id"); idParam != "" {
		id, err := strconv.ParseUint(idParam, 10, 32)
		if err != nil {
			return fiber.ErrNotFound
		}
		gift.ID = uint(id)
		err = repos.Gift.Update(gift)
		if err != nil {
			log.Printf("Error updating gift %d: %v", gift.ID, err)
			fm["message"] = "The gift could not be saved"
			return flash.WithError(c, fm).Redirect("/admin/gifts")
		}
	} else if err := repos.Gift.Create(gift); err != nil {
		log.Printf("Error creating gift: %v", err)
		fm["message"] = "The gift could not be saved"
		return flash.WithError(c, fm).Redirect("/admin/gifts")
	}

	if _, err := models.ReloadGifts(database.GetDB()); err != nil {
		log.Printf("Error reloading gift cache: %v", err)
	}

	fm = fiber.Map{
		"type":    "success",
		"message": "Gift saved",
	}
	return flash.WithSuccess(c, fm).Redirect("/admin/gifts")
}

// HandleAdminGiftDelete removes a gift tier and reloads the gift cache.
func HandleAdminGiftDelete(c *fiber.Ctx) error {
	fm := fiber.Map{"type": "error"}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return fiber.ErrNotFound
	}

	if err := repository.GetGlobalRepositories().Gift.Delete(uint(id)); err != nil {
		log.Printf("Error deleting gift %d: %v", id, err)
		fm["message"] = "The gift could not be deleted"
		return flash.WithError(c, fm).Redirect("/admin/gifts")
	}

	if _, err := models.ReloadGifts(database.GetDB()); err != nil {
		log.Printf("Error reloading gift cache: %v", err)
	}

	fm = fiber.Map{
		"type":    "success",
		"message": "Gift deleted",
	}
	return flash.WithSuccess(c, fm).Redirect("/admin/gifts")
}

// HandleAdminPlanCreate creates a recurring plan at Stripe. The plan cache
// is reloaded inside CreatePlan.
func HandleAdminPlanCreate(c *fiber.Ctx) error {
	fm := fiber.Map{"type": "error"}

	amount, err := strconv.ParseInt(c.FormValue("amount"), 10, 64)
	if err != nil || amount <= 0 {
		fm["message"] = "The plan amount is not valid"
		return flash.WithError(c, fm).Redirect("/admin/gifts")
	}
	name := c.FormValue("name")
	if name == "" {
		fm["message"] = "The plan needs a name"
		return flash.WithError(c, fm).Redirect("/admin/gifts")
	}

	settings, err := models.CurrentSettings(database.GetDB())
	if err != nil {
		fm["message"] = "Something went wrong"
		return flash.WithError(c, fm).Redirect("/admin/gifts")
	}

	if _, err := billing.CreatePlan(name, amount, settings["currency"]); err != nil {
		log.Printf("Error creating plan: %v", err)
		fm["message"] = "The plan could not be created"
		return flash.WithError(c, fm).Redirect("/admin/gifts")
	}

	fm = fiber.Map{
		"type":    "success",
		"message": "Plan created",
	}
	return flash.WithSuccess(c, fm).Redirect("/admin/gifts")
}
