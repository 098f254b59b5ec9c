package repository

import (
	"gorm.io/gorm"

	"github.com/donatinator/donatinator/app/models"
	"github.com/donatinator/donatinator/internal/pkg/database"
)

// donationRepository implements the DonationRepository interface
type donationRepository struct {
	db *gorm.DB
}

// NewDonationRepository creates a new donation repository instance
func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

// Create records a successful donation
func (r *donationRepository) Create(donation *models.Donation) error {
	return r.db.Create(donation).Error
}

// List retrieves donations newest-first
func (r *donationRepository) List(offset, limit int) ([]models.Donation, error) {
	var donations []models.Donation
	err := database.GetAll(r.db, &donations,
		"SELECT * FROM donations ORDER BY id DESC LIMIT ? OFFSET ?", limit, offset)
	return donations, err
}

// Count returns the total number of donations
func (r *donationRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Donation{}).Count(&count).Error
	return count, err
}

// SumAmount returns the total donated amount in minor units
func (r *donationRepository) SumAmount() (int64, error) {
	var row struct {
		Total int64
	}
	found, err := database.GetOne(r.db, &row,
		"SELECT COALESCE(SUM(amount), 0) AS total FROM donations")
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, nil
	}
	return row.Total, nil
}
