package billing

import (
	"github.com/stripe/stripe-go/v79"

	"github.com/donatinator/donatinator/internal/pkg/env"
)

// SetupStripe configures the process-wide Stripe client from the
// environment. Call once at startup, before any other billing function.
func SetupStripe() {
	stripe.Key = env.GetEnv("STRIPE_SECRET_KEY", "")
}

// PublicKey returns the publishable key the donate pages hand to Stripe.js.
func PublicKey() string {
	return env.GetEnv("STRIPE_PUBLIC_KEY", "")
}

// EndpointSecret returns the webhook endpoint's signing secret.
func EndpointSecret() string {
	return env.GetEnv("STRIPE_ENDPOINT_SECRET", "")
}
