package models

import "time"

// StripeTestEventID is the fixed sentinel id Stripe sends with every test
// webhook delivery. It must be rewritten to a fresh id before storage so
// repeated test pings never collide with each other or with a real event.
const StripeTestEventID = "evt_00000000000000"

// StripeEvent is one inbound notification from Stripe, stored verbatim as an
// append-only audit trail. Rows are written exactly once when a webhook is
// verified and are never updated or deleted. The unique index on event_id is
// what makes redelivery safe: a duplicate insert fails closed instead of
// silently duplicating.
type StripeEvent struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EventID    string    `gorm:"uniqueIndex;type:varchar(191);not null" json:"event_id"`
	AccountID  *uint     `gorm:"index" json:"account_id,omitempty"`
	EventType  string    `gorm:"type:varchar(100);index" json:"event_type"`
	Payload    string    `gorm:"type:longtext;not null" json:"payload"`
	InsertedAt time.Time `gorm:"autoCreateTime" json:"inserted_at"`
}
