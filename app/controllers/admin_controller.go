package controllers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/donatinator/donatinator/app/models"
	"github.com/donatinator/donatinator/app/repository"
	"github.com/donatinator/donatinator/internal/pkg/database"
	"github.com/donatinator/donatinator/internal/pkg/statistics"
)

const adminPageSize = 25

// HandleAdminIndex renders the dashboard with the donation statistics.
func HandleAdminIndex(c *fiber.Ctx) error {
	stats := statistics.GetStatisticsData()

	return render(c, "admin/index", fiber.Map{
		"Title": "Admin",
		"Stats": stats,
	})
}

// HandleAdminSettings renders the settings form from the setting metadata
// plus the currently effective values.
func HandleAdminSettings(c *fiber.Ctx) error {
	settings, err := models.CurrentSettings(database.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load settings")
	}

	type formField struct {
		Name  string
		Def   models.SettingDef
		Value string
	}
	fields := make([]formField, 0, len(models.SimpleSettings))
	for _, name := range models.SimpleSettingNames() {
		fields = append(fields, formField{
			Name:  name,
			Def:   models.SimpleSettings[name],
			Value: settings[name],
		})
	}

	return render(c, "admin/settings", fiber.Map{
		"Title":  "Settings",
		"Fields": fields,
	})
}

// HandleAdminSettingsPost normalises and validates the posted settings, saves
// them all in one transaction, and reloads the settings cache so every
// subsequent read sees the new values.
func HandleAdminSettingsPost(c *fiber.Ctx) error {
	fm := fiber.Map{"type": "error"}

	toSave := make(map[string]string, len(models.SimpleSettings))
	for name := range models.SimpleSettings {
		value := models.NormaliseSetting(name, c.FormValue(name))
		if !models.ValidateSetting(name, value) {
			fm["message"] = "The value for " + models.SimpleSettings[name].Title + " is not valid"
			return flash.WithError(c, fm).Redirect("/admin/settings")
		}
		toSave[name] = value
	}

	if err := repository.GetGlobalRepositories().Setting.SaveAll(toSave); err != nil {
		log.Printf("Error saving settings: %v", err)
		fm["message"] = "Your settings could not be saved"
		return flash.WithError(c, fm).Redirect("/admin/settings")
	}

	// The save committed; reload so the cache serves the new values.
	if _, err := models.ReloadSettings(database.GetDB()); err != nil {
		log.Printf("Error reloading settings cache: %v", err)
	}

	fm = fiber.Map{
		"type":    "success",
		"message": "Settings saved",
	}
	return flash.WithSuccess(c, fm).Redirect("/admin/settings")
}

// HandleAdminDonations lists the recorded donations, newest first.
func HandleAdminDonations(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}

	repos := repository.GetGlobalRepositories()
	donations, err := repos.Donation.List((page-1)*adminPageSize, adminPageSize)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load donations")
	}
	total, err := repos.Donation.Count()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to count donations")
	}

	bind := fiber.Map{
		"Title":     "Donations",
		"Donations": donations,
		"Total":     total,
	}
	if page > 1 {
		bind["PrevPage"] = page - 1
	}
	if int64(page*adminPageSize) < total {
		bind["NextPage"] = page + 1
	}
	return render(c, "admin/donations", bind)
}

// HandleAdminEvents lists the stored webhook events, newest first.
func HandleAdminEvents(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}

	repos := repository.GetGlobalRepositories()
	events, err := repos.StripeEvent.List((page-1)*adminPageSize, adminPageSize)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load events")
	}
	total, err := repos.StripeEvent.Count()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to count events")
	}

	bind := fiber.Map{
		"Title":  "Stripe Events",
		"Events": events,
		"Total":  total,
	}
	if page > 1 {
		bind["PrevPage"] = page - 1
	}
	if int64(page*adminPageSize) < total {
		bind["NextPage"] = page + 1
	}
	return render(c, "admin/events", bind)
}
