package billing

import (
	"fmt"
	"sort"
	"sync"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/plan"
)

// Plan is the local view of a Stripe recurring price used by the donate
// pages. Amount is in the currency's minor unit.
type Plan struct {
	ID                  string
	Name                string
	Amount              int64
	Currency            string
	Interval            string
	StatementDescriptor string
}

var (
	plansMu    sync.RWMutex
	plansCache []Plan
	plansWarm  bool
)

// CurrentPlans returns the cached recurring plans, loading them from Stripe
// on the first call. Callers get a snapshot copy.
func CurrentPlans() ([]Plan, error) {
	plansMu.RLock()
	if plansWarm {
		plans := copyPlans(plansCache)
		plansMu.RUnlock()
		return plans, nil
	}
	plansMu.RUnlock()

	return ReloadPlans()
}

// ReloadPlans fetches the active plans from Stripe and replaces the cache.
// Admin plan writes call this so the donate pages pick the change up.
func ReloadPlans() ([]Plan, error) {
	params := &stripe.PlanListParams{
		Active: stripe.Bool(true),
	}

	var plans []Plan
	iter := plan.List(params)
	for iter.Next() {
		plans = append(plans, planFromStripe(iter.Plan()))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	sort.Slice(plans, func(i, j int) bool {
		if plans[i].Amount != plans[j].Amount {
			return plans[i].Amount < plans[j].Amount
		}
		return plans[i].ID < plans[j].ID
	})

	plansMu.Lock()
	plansCache = plans
	plansWarm = true
	plansMu.Unlock()

	return copyPlans(plans), nil
}

// CreatePlan creates a monthly recurring plan in Stripe and invalidates the
// plan cache.
func CreatePlan(name string, amount int64, currency string) (Plan, error) {
	params := &stripe.PlanParams{
		Nickname: stripe.String(name),
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		Interval: stripe.String(string(stripe.PlanIntervalMonth)),
		Product: &stripe.PlanProductParams{
			Name: stripe.String(name),
		},
	}

	created, err := plan.New(params)
	if err != nil {
		return Plan{}, fmt.Errorf("failed to create plan: %w", err)
	}

	// Reload rather than patching the slice, so ordering stays canonical.
	if _, err := ReloadPlans(); err != nil {
		return planFromStripe(created), err
	}
	return planFromStripe(created), nil
}

func planFromStripe(p *stripe.Plan) Plan {
	out := Plan{
		ID:       p.ID,
		Name:     p.Nickname,
		Amount:   p.Amount,
		Currency: string(p.Currency),
		Interval: string(p.Interval),
	}
	if p.Product != nil {
		out.StatementDescriptor = p.Product.StatementDescriptor
		if out.Name == "" {
			out.Name = p.Product.Name
		}
	}
	return out
}

func copyPlans(plans []Plan) []Plan {
	out := make([]Plan, len(plans))
	copy(out, plans)
	return out
}

// resetPlansCache is a test hook.
func resetPlansCache() {
	plansMu.Lock()
	plansCache = nil
	plansWarm = false
	plansMu.Unlock()
}
