package controllers

import (
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/donatinator/donatinator/app/models"
	"github.com/donatinator/donatinator/app/repository"
	"github.com/donatinator/donatinator/internal/pkg/billing"
	"github.com/donatinator/donatinator/internal/pkg/constants"
	"github.com/donatinator/donatinator/internal/pkg/database"
	"github.com/donatinator/donatinator/internal/pkg/mail"
	"github.com/donatinator/donatinator/internal/pkg/statistics"
)

// HandleDonate renders the one-off donation page with the gift tiers and
// the Stripe Checkout config.
func HandleDonate(c *fiber.Ctx) error {
	gifts, err := models.CurrentGifts(database.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load gifts")
	}

	return render(c, "donate", fiber.Map{
		"Gifts":           gifts,
		"StripePublicKey": billing.PublicKey(),
	})
}

// HandleDonatePost takes the Checkout token from the donate form, charges
// the card, records the donation, and sends the donor to the thanks page.
func HandleDonatePost(c *fiber.Ctx) error {
	fm := fiber.Map{"type": "error"}

	token := c.FormValue("stripeToken")
	email := c.FormValue("stripeEmail")
	if token == "" || email == "" {
		fm["message"] = "Your payment details did not arrive, please try again"
		return flash.WithError(c, fm).Redirect(constants.DonateRoute)
	}

	amount, err := strconv.ParseInt(c.FormValue("amount"), 10, 64)
	if err != nil || amount <= 0 {
		fm["message"] = "Please choose a donation amount"
		return flash.WithError(c, fm).Redirect(constants.DonateRoute)
	}

	settings, err := models.CurrentSettings(database.GetDB())
	if err != nil {
		fm["message"] = "Something went wrong, you have not been charged"
		return flash.WithError(c, fm).Redirect(constants.DonateRoute)
	}
	currency := settings["currency"]
	giftName := c.FormValue("gift")

	chargeID, err := billing.CreateCharge(billing.ChargeInput{
		Amount:      amount,
		Currency:    currency,
		Token:       token,
		Email:       email,
		Description: fmt.Sprintf("Donation to %s", settings["title"]),
	})
	if err != nil {
		log.Printf("Error creating charge: %v", err)
		fm["message"] = "Your card could not be charged, please try again"
		return flash.WithError(c, fm).Redirect(constants.DonateRoute)
	}

	donation := &models.Donation{
		Email:          email,
		Amount:         amount,
		Currency:       currency,
		StripeChargeID: chargeID,
		GiftName:       giftName,
	}
	if err := repository.GetGlobalRepositories().Donation.Create(donation); err != nil {
		// The charge went through; losing the local row is bad but must not
		// show the donor an error after their card was charged.
		log.Printf("Error recording donation %s: %v", chargeID, err)
	}

	statistics.ResetCacheUpdateTimer()

	if err := mail.SendThankYou(email, settings["title"], amount, currency); err != nil {
		log.Printf("Error sending thank you mail to %s: %v", email, err)
	}

	return c.Redirect(constants.ThanksRoute, fiber.StatusSeeOther)
}

// HandleMonthly renders the recurring donation page with the plans fetched
// from Stripe.
func HandleMonthly(c *fiber.Ctx) error {
	plans, err := billing.CurrentPlans()
	if err != nil {
		log.Printf("Error loading plans: %v", err)
		plans = nil
	}

	return render(c, "monthly", fiber.Map{
		"Plans":           plans,
		"StripePublicKey": billing.PublicKey(),
	})
}

// HandleMonthlyPost subscribes the donor's card to the chosen plan.
func HandleMonthlyPost(c *fiber.Ctx) error {
	fm := fiber.Map{"type": "error"}

	token := c.FormValue("stripeToken")
	email := c.FormValue("stripeEmail")
	planID := c.FormValue("plan")
	if token == "" || email == "" || planID == "" {
		fm["message"] = "Your payment details did not arrive, please try again"
		return flash.WithError(c, fm).Redirect(constants.MonthlyRoute)
	}

	customerID, err := billing.CreateSubscription(email, token, planID)
	if err != nil {
		log.Printf("Error creating subscription: %v", err)
		fm["message"] = "Your subscription could not be set up, please try again"
		return flash.WithError(c, fm).Redirect(constants.MonthlyRoute)
	}

	linkStripeCustomer(repository.GetGlobalRepositories().Account, email, customerID)

	return c.Redirect(constants.ThanksRoute, fiber.StatusSeeOther)
}

// linkStripeCustomer ties the Stripe customer to a local account so later
// webhook events attribute to it. The customer.created webhook may already
// have done this; an account that holds a customer id is left alone. The
// subscription is live at this point, so failures are logged, not surfaced.
func linkStripeCustomer(accounts repository.AccountRepository, email, customerID string) {
	account, err := accounts.GetByEmail(email)
	if err != nil {
		log.Printf("Error looking up account for %s: %v", email, err)
		return
	}

	if account == nil {
		account = &models.Account{Email: email, StripeCustomerID: &customerID}
		if err := accounts.Create(account); err != nil {
			log.Printf("Error creating account for %s: %v", email, err)
		}
		return
	}

	if account.StripeCustomerID == nil {
		account.StripeCustomerID = &customerID
		if err := accounts.Update(account); err != nil {
			log.Printf("Error linking customer to account %d: %v", account.ID, err)
		}
	}
}
