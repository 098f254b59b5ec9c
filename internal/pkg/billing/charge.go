package billing

import (
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/charge"
	"github.com/stripe/stripe-go/v79/customer"
	"github.com/stripe/stripe-go/v79/subscription"
)

// ChargeInput describes a one-off donation about to be sent to Stripe.
// Amount is in the currency's minor unit, Token is the card token from
// Checkout.
type ChargeInput struct {
	Amount      int64
	Currency    string
	Token       string
	Email       string
	Description string
}

// CreateCharge performs a one-off card charge and returns the Stripe charge
// id for the local donation record.
func CreateCharge(in ChargeInput) (string, error) {
	params := &stripe.ChargeParams{
		Amount:       stripe.Int64(in.Amount),
		Currency:     stripe.String(in.Currency),
		Description:  stripe.String(in.Description),
		ReceiptEmail: stripe.String(in.Email),
	}
	if err := params.SetSource(in.Token); err != nil {
		return "", fmt.Errorf("failed to set charge source: %w", err)
	}

	ch, err := charge.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create charge: %w", err)
	}
	return ch.ID, nil
}

// CreateSubscription creates a Stripe customer for the donor's card and
// subscribes them to the given plan. It returns the customer id so the
// account row can be linked to it.
func CreateSubscription(email, token, planID string) (string, error) {
	custParams := &stripe.CustomerParams{
		Email:  stripe.String(email),
		Source: stripe.String(token),
	}

	cust, err := customer.New(custParams)
	if err != nil {
		return "", fmt.Errorf("failed to create customer: %w", err)
	}

	subParams := &stripe.SubscriptionParams{
		Customer: stripe.String(cust.ID),
		Items: []*stripe.SubscriptionItemsParams{
			{Plan: stripe.String(planID)},
		},
	}
	if _, err := subscription.New(subParams); err != nil {
		return "", fmt.Errorf("failed to create subscription: %w", err)
	}

	return cust.ID, nil
}
