package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAdminAccount(t *testing.T) {
	account, err := NewAdminAccount("admin@example.com", "Admin", "correct horse battery")
	assert.NoError(t, err)
	assert.Equal(t, "admin@example.com", account.Email)
	assert.True(t, account.CanSignIn())

	assert.True(t, CheckPasswordHash("correct horse battery", *account.Password))
	assert.False(t, CheckPasswordHash("wrong password", *account.Password))
}

func TestNewSyntheticAccount(t *testing.T) {
	account := NewSyntheticAccount(SyntheticStripeEmail, "Stripe")
	assert.Equal(t, "stripe", account.Email)
	assert.Nil(t, account.Password)
	assert.False(t, account.CanSignIn(), "synthetic accounts never sign in")
}

func TestAccountValidate(t *testing.T) {
	account := &Account{Email: "someone@example.com", Title: "Someone"}
	assert.NoError(t, account.Validate())

	// The synthetic "stripe" address is valid too; only empty emails fail.
	assert.NoError(t, NewSyntheticAccount(SyntheticStripeEmail, "Stripe").Validate())

	bad := &Account{Title: "Someone"}
	assert.Error(t, bad.Validate())
}
