package billing

import (
	"testing"

	"github.com/stripe/stripe-go/v79"
)

func TestPlanFromStripe(t *testing.T) {
	in := &stripe.Plan{
		ID:       "plan_123",
		Nickname: "Supporter",
		Amount:   1000,
		Currency: stripe.CurrencyNZD,
		Interval: stripe.PlanIntervalMonth,
		Product: &stripe.Product{
			Name:                "Supporter",
			StatementDescriptor: "DONATION",
		},
	}

	got := planFromStripe(in)
	if got.ID != "plan_123" || got.Name != "Supporter" {
		t.Fatalf("unexpected plan identity: %+v", got)
	}
	if got.Amount != 1000 || got.Currency != "nzd" || got.Interval != "month" {
		t.Fatalf("unexpected plan pricing: %+v", got)
	}
	if got.StatementDescriptor != "DONATION" {
		t.Fatalf("statement descriptor = %q, want %q", got.StatementDescriptor, "DONATION")
	}
}

func TestPlanFromStripeFallsBackToProductName(t *testing.T) {
	in := &stripe.Plan{
		ID:      "plan_456",
		Product: &stripe.Product{Name: "Friend"},
	}
	if got := planFromStripe(in); got.Name != "Friend" {
		t.Fatalf("plan name = %q, want product name fallback", got.Name)
	}
}

func TestCurrentPlansReturnsSnapshot(t *testing.T) {
	t.Cleanup(resetPlansCache)

	plansMu.Lock()
	plansCache = []Plan{{ID: "plan_a", Amount: 500}}
	plansWarm = true
	plansMu.Unlock()

	first, err := CurrentPlans()
	if err != nil {
		t.Fatalf("CurrentPlans() error = %v", err)
	}
	first[0].Amount = 9999

	second, err := CurrentPlans()
	if err != nil {
		t.Fatalf("CurrentPlans() error = %v", err)
	}
	if second[0].Amount != 500 {
		t.Fatalf("cache was mutated through a snapshot: %+v", second[0])
	}
}
