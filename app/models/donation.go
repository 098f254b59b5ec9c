package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Donation records one successful one-off charge. Recurring donations live
// at Stripe as subscriptions and reach us through webhook events instead.
type Donation struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Email          string    `gorm:"type:varchar(200);index" json:"email" validate:"required,email"`
	Amount         int64     `gorm:"not null" json:"amount" validate:"required,gt=0"`
	Currency       string    `gorm:"type:varchar(3);not null" json:"currency" validate:"required,len=3"`
	StripeChargeID string    `gorm:"type:varchar(100);uniqueIndex" json:"stripe_charge_id"`
	GiftName       string    `gorm:"type:varchar(200)" json:"gift_name"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (d *Donation) Validate() error {
	v := validator.New()
	return v.Struct(d)
}
