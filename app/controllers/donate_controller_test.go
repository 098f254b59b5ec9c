package controllers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donatinator/donatinator/app/models"
)

type fakeAccountRepository struct {
	byEmail map[string]*models.Account
	getErr  error
	created []*models.Account
	updated []*models.Account
	nextID  uint
}

func (f *fakeAccountRepository) Create(account *models.Account) error {
	f.nextID++
	account.ID = f.nextID
	f.created = append(f.created, account)
	return nil
}

func (f *fakeAccountRepository) GetByID(id uint) (*models.Account, error) { return nil, nil }

func (f *fakeAccountRepository) GetByEmail(email string) (*models.Account, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.byEmail[email], nil
}

func (f *fakeAccountRepository) Update(account *models.Account) error {
	f.updated = append(f.updated, account)
	return nil
}

func (f *fakeAccountRepository) List() ([]models.Account, error) { return nil, nil }

func (f *fakeAccountRepository) Count() (int64, error) { return 0, nil }

func TestLinkStripeCustomerCreatesAccount(t *testing.T) {
	accounts := &fakeAccountRepository{}

	linkStripeCustomer(accounts, "donor@example.com", "cus_123")

	require.Len(t, accounts.created, 1)
	assert.Equal(t, "donor@example.com", accounts.created[0].Email)
	require.NotNil(t, accounts.created[0].StripeCustomerID)
	assert.Equal(t, "cus_123", *accounts.created[0].StripeCustomerID)
	assert.Empty(t, accounts.updated)
}

func TestLinkStripeCustomerFillsMissingCustomerID(t *testing.T) {
	accounts := &fakeAccountRepository{
		byEmail: map[string]*models.Account{
			"donor@example.com": {Email: "donor@example.com"},
		},
	}

	linkStripeCustomer(accounts, "donor@example.com", "cus_123")

	assert.Empty(t, accounts.created)
	require.Len(t, accounts.updated, 1)
	require.NotNil(t, accounts.updated[0].StripeCustomerID)
	assert.Equal(t, "cus_123", *accounts.updated[0].StripeCustomerID)
}

func TestLinkStripeCustomerLeavesLinkedAccountAlone(t *testing.T) {
	existing := "cus_existing"
	accounts := &fakeAccountRepository{
		byEmail: map[string]*models.Account{
			"donor@example.com": {Email: "donor@example.com", StripeCustomerID: &existing},
		},
	}

	linkStripeCustomer(accounts, "donor@example.com", "cus_new")

	assert.Empty(t, accounts.created)
	assert.Empty(t, accounts.updated)
	assert.Equal(t, "cus_existing", *accounts.byEmail["donor@example.com"].StripeCustomerID)
}

func TestLinkStripeCustomerLookupFailureWritesNothing(t *testing.T) {
	accounts := &fakeAccountRepository{getErr: errors.New("connection refused")}

	linkStripeCustomer(accounts, "donor@example.com", "cus_123")

	assert.Empty(t, accounts.created)
	assert.Empty(t, accounts.updated)
}
