package billing

import (
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
)

// ErrSignatureInvalid is returned when a webhook delivery fails
// authentication. Such deliveries are never reconciled and never stored;
// the HTTP layer must reject them so Stripe redelivers later.
var ErrSignatureInvalid = errors.New("stripe webhook signature invalid")

// VerifyWebhook authenticates a webhook delivery and decodes it into a typed
// event. The signature is computed over the exact bytes Stripe sent, so
// payload must be the raw request body, untouched by any JSON parsing or
// re-serialization upstream.
func VerifyWebhook(payload []byte, signatureHeader, endpointSecret string) (stripe.Event, error) {
	event, err := webhook.ConstructEventWithOptions(
		payload,
		signatureHeader,
		endpointSecret,
		webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		},
	)
	if err != nil {
		return stripe.Event{}, fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
	}
	return event, nil
}
