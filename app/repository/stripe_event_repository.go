package repository

import (
	"gorm.io/gorm"

	"github.com/donatinator/donatinator/app/models"
	"github.com/donatinator/donatinator/internal/pkg/database"
)

// stripeEventRepository implements the StripeEventRepository interface
type stripeEventRepository struct {
	db *gorm.DB
}

// NewStripeEventRepository creates a new stripe event repository instance
func NewStripeEventRepository(db *gorm.DB) StripeEventRepository {
	return &stripeEventRepository{db: db}
}

// List retrieves stored events newest-first for the admin event log
func (r *stripeEventRepository) List(offset, limit int) ([]models.StripeEvent, error) {
	var events []models.StripeEvent
	err := database.GetAll(r.db, &events,
		"SELECT * FROM stripe_events ORDER BY id DESC LIMIT ? OFFSET ?", limit, offset)
	return events, err
}

// Count returns the total number of stored events
func (r *stripeEventRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.StripeEvent{}).Count(&count).Error
	return count, err
}
