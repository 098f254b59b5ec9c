package models

import (
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Gift is a locally-owned donation tier shown on the public donate page.
// Amount is in the currency's minor unit (cents).
type Gift struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(200);not null" json:"name" validate:"required,min=1,max=200"`
	Description string    `gorm:"type:text" json:"description" validate:"max=2000"`
	Amount      int64     `gorm:"not null" json:"amount" validate:"required,gt=0"`
	Currency    string    `gorm:"type:varchar(3);not null" json:"currency" validate:"required,len=3"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (g *Gift) Validate() error {
	v := validator.New()
	return v.Struct(g)
}

// Process-wide gift list cache, same discipline as the settings cache:
// lazily loaded, replaced wholesale after an admin write.
var (
	giftsCache []Gift
	giftsMu    sync.RWMutex
)

// CurrentGifts returns the cached gift list, loading it on first use. The
// returned slice is a snapshot copy.
func CurrentGifts(db *gorm.DB) ([]Gift, error) {
	giftsMu.RLock()
	if giftsCache != nil {
		snap := copyGifts(giftsCache)
		giftsMu.RUnlock()
		return snap, nil
	}
	giftsMu.RUnlock()

	return ReloadGifts(db)
}

// ReloadGifts re-reads the gift table and replaces the cache.
func ReloadGifts(db *gorm.DB) ([]Gift, error) {
	var gifts []Gift
	if err := db.Order("amount ASC, id ASC").Find(&gifts).Error; err != nil {
		return nil, err
	}

	giftsMu.Lock()
	giftsCache = gifts
	giftsMu.Unlock()

	return copyGifts(gifts), nil
}

func replaceGiftsCache(gifts []Gift) {
	giftsMu.Lock()
	giftsCache = gifts
	giftsMu.Unlock()
}

func copyGifts(gifts []Gift) []Gift {
	snap := make([]Gift, len(gifts))
	copy(snap, gifts)
	return snap
}
