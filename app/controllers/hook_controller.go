package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v79"

	"github.com/donatinator/donatinator/internal/pkg/billing"
	"github.com/donatinator/donatinator/internal/pkg/database"
)

// processStripeEvent runs a verified delivery through the reconciler.
// Tests swap it out to exercise the status mapping without a database.
var processStripeEvent = func(event stripe.Event, payload []byte) error {
	return billing.ProcessEvent(database.GetDB(), event, payload)
}

// HandleStripeHook is the webhook endpoint Stripe posts event deliveries to.
// The route sits outside the CSRF and session middleware; the signature
// header is the only authentication.
//
// Status codes drive Stripe's redelivery: 400 tells it the delivery was
// bogus, 200 tells it to stop redelivering. A replay of an event we already
// hold is answered 200 for that reason.
func HandleStripeHook(c *fiber.Ctx) error {
	payload := c.Body()

	event, err := billing.VerifyWebhook(payload, c.Get("Stripe-Signature"), billing.EndpointSecret())
	if err != nil {
		if errors.Is(err, billing.ErrSignatureInvalid) {
			log.Printf("Rejected webhook delivery: %v", err)
			return c.SendStatus(fiber.StatusBadRequest)
		}
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	if err := processStripeEvent(event, payload); err != nil {
		if errors.Is(err, billing.ErrEventAlreadyProcessed) {
			log.Printf("Webhook event %s already processed", event.ID)
			return c.SendStatus(fiber.StatusOK)
		}
		log.Printf("Error processing webhook event %s: %v", event.ID, err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.SendStatus(fiber.StatusOK)
}
