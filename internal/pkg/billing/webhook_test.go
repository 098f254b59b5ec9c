package billing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"
	"time"
)

const testEndpointSecret = "whsec_test_secret"

// signPayload builds a Stripe-Signature header the way Stripe's CLI and
// servers do: hex HMAC-SHA256 over "<timestamp>.<payload>".
func signPayload(payload []byte, secret string, at time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", at.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", at.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func TestVerifyWebhookValidSignature(t *testing.T) {
	payload := []byte(`{"id":"evt_42","type":"charge.succeeded","data":{"object":{}}}`)
	header := signPayload(payload, testEndpointSecret, time.Now())

	event, err := VerifyWebhook(payload, header, testEndpointSecret)
	if err != nil {
		t.Fatalf("VerifyWebhook() error = %v", err)
	}
	if event.ID != "evt_42" {
		t.Fatalf("event id = %q, want %q", event.ID, "evt_42")
	}
	if string(event.Type) != "charge.succeeded" {
		t.Fatalf("event type = %q, want %q", event.Type, "charge.succeeded")
	}
}

func TestVerifyWebhookWrongSecret(t *testing.T) {
	payload := []byte(`{"id":"evt_42","type":"charge.succeeded"}`)
	header := signPayload(payload, "whsec_other_secret", time.Now())

	_, err := VerifyWebhook(payload, header, testEndpointSecret)
	if !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("VerifyWebhook() error = %v, want ErrSignatureInvalid", err)
	}
}

func TestVerifyWebhookTamperedPayload(t *testing.T) {
	payload := []byte(`{"id":"evt_42","type":"charge.succeeded"}`)
	header := signPayload(payload, testEndpointSecret, time.Now())
	tampered := []byte(`{"id":"evt_42","type":"charge.refunded"}`)

	_, err := VerifyWebhook(tampered, header, testEndpointSecret)
	if !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("VerifyWebhook() error = %v, want ErrSignatureInvalid", err)
	}
}

func TestVerifyWebhookStaleTimestamp(t *testing.T) {
	payload := []byte(`{"id":"evt_42","type":"charge.succeeded"}`)
	header := signPayload(payload, testEndpointSecret, time.Now().Add(-time.Hour))

	_, err := VerifyWebhook(payload, header, testEndpointSecret)
	if !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("VerifyWebhook() error = %v, want ErrSignatureInvalid", err)
	}
}

func TestVerifyWebhookMissingHeader(t *testing.T) {
	payload := []byte(`{"id":"evt_42","type":"charge.succeeded"}`)

	_, err := VerifyWebhook(payload, "", testEndpointSecret)
	if !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("VerifyWebhook() error = %v, want ErrSignatureInvalid", err)
	}
}
