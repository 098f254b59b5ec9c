package controllers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"

	"github.com/donatinator/donatinator/internal/pkg/billing"
	"github.com/donatinator/donatinator/internal/pkg/constants"
)

const hookTestSecret = "whsec_hook_test"

func newHookApp() *fiber.App {
	app := fiber.New()
	app.Post(constants.HookRoute, HandleStripeHook)
	return app
}

// stripeSignature builds the header Stripe sends with a delivery: a hex
// HMAC-SHA256 over "<timestamp>.<payload>".
func stripeSignature(payload []byte, secret string, at time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", at.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", at.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func newHookRequest(payload []byte, signature string) *http.Request {
	req, _ := http.NewRequest(http.MethodPost, constants.HookRoute, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("Stripe-Signature", signature)
	}
	return req
}

// swapProcessStripeEvent installs a stand-in reconciler for the duration of
// the test so the handler never touches the database.
func swapProcessStripeEvent(t *testing.T, fn func(event stripe.Event, payload []byte) error) {
	t.Helper()
	orig := processStripeEvent
	processStripeEvent = fn
	t.Cleanup(func() { processStripeEvent = orig })
}

func TestHandleStripeHookRejectsUnsignedDelivery(t *testing.T) {
	t.Setenv("STRIPE_ENDPOINT_SECRET", hookTestSecret)
	swapProcessStripeEvent(t, func(stripe.Event, []byte) error {
		t.Fatal("unsigned delivery must not reach the reconciler")
		return nil
	})

	payload := []byte(`{"id":"evt_1","type":"charge.succeeded","data":{"object":{}}}`)
	resp, err := newHookApp().Test(newHookRequest(payload, ""), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleStripeHookRejectsTamperedPayload(t *testing.T) {
	t.Setenv("STRIPE_ENDPOINT_SECRET", hookTestSecret)
	swapProcessStripeEvent(t, func(stripe.Event, []byte) error {
		t.Fatal("tampered delivery must not reach the reconciler")
		return nil
	})

	payload := []byte(`{"id":"evt_1","type":"charge.succeeded","data":{"object":{}}}`)
	signature := stripeSignature([]byte(`{"id":"evt_other"}`), hookTestSecret, time.Now())
	resp, err := newHookApp().Test(newHookRequest(payload, signature), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleStripeHookAcceptsValidDelivery(t *testing.T) {
	t.Setenv("STRIPE_ENDPOINT_SECRET", hookTestSecret)

	var gotID string
	swapProcessStripeEvent(t, func(event stripe.Event, payload []byte) error {
		gotID = event.ID
		return nil
	})

	payload := []byte(`{"id":"evt_1","type":"charge.succeeded","data":{"object":{}}}`)
	signature := stripeSignature(payload, hookTestSecret, time.Now())
	resp, err := newHookApp().Test(newHookRequest(payload, signature), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "evt_1", gotID)
}

func TestHandleStripeHookRepeatedDeliveryIsAcknowledged(t *testing.T) {
	t.Setenv("STRIPE_ENDPOINT_SECRET", hookTestSecret)
	swapProcessStripeEvent(t, func(stripe.Event, []byte) error {
		return billing.ErrEventAlreadyProcessed
	})

	payload := []byte(`{"id":"evt_1","type":"charge.succeeded","data":{"object":{}}}`)
	signature := stripeSignature(payload, hookTestSecret, time.Now())
	resp, err := newHookApp().Test(newHookRequest(payload, signature), -1)
	require.NoError(t, err)

	// 200 so Stripe stops redelivering an event we already hold.
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestHandleStripeHookProcessingFailureAsksForRedelivery(t *testing.T) {
	t.Setenv("STRIPE_ENDPOINT_SECRET", hookTestSecret)
	swapProcessStripeEvent(t, func(stripe.Event, []byte) error {
		return errors.New("database unavailable")
	})

	payload := []byte(`{"id":"evt_1","type":"charge.succeeded","data":{"object":{}}}`)
	signature := stripeSignature(payload, hookTestSecret, time.Now())
	resp, err := newHookApp().Test(newHookRequest(payload, signature), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
