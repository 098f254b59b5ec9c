package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// SyntheticStripeEmail identifies the system account that internally
// generated provider events (test pings, events with no customer) are
// attributed to. It is not a routable address on purpose.
const SyntheticStripeEmail = "stripe"

// Account correlates 1:1 with a Stripe customer, or is the synthetic system
// account used to attribute provider-generated events. Synthetic accounts
// have no password and can never sign in.
type Account struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Email            string    `gorm:"uniqueIndex;type:varchar(200);not null" json:"email" validate:"required,min=1,max=200"`
	Title            string    `gorm:"type:varchar(200)" json:"title" validate:"max=200"`
	Password         *string   `gorm:"type:text" json:"-"`
	StripeCustomerID *string   `gorm:"type:varchar(100);index" json:"stripe_customer_id,omitempty"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (a *Account) Validate() error {
	v := validator.New()
	return v.Struct(a)
}

// CanSignIn reports whether this account carries admin credentials.
func (a *Account) CanSignIn() bool {
	return a.Password != nil && *a.Password != ""
}

// NewAdminAccount builds an account with a bcrypt-hashed password.
func NewAdminAccount(email, title, password string) (*Account, error) {
	pw, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	a := &Account{
		Email:    email,
		Title:    title,
		Password: &pw,
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// NewSyntheticAccount builds the passwordless system account for a provider.
func NewSyntheticAccount(email, title string) *Account {
	return &Account{
		Email: email,
		Title: title,
	}
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(bytes), err
}

// CheckPasswordHash compares the given password with the stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}
