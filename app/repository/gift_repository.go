package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/donatinator/donatinator/app/models"
	"github.com/donatinator/donatinator/internal/pkg/database"
)

// giftRepository implements the GiftRepository interface
type giftRepository struct {
	db *gorm.DB
}

// NewGiftRepository creates a new gift repository instance
func NewGiftRepository(db *gorm.DB) GiftRepository {
	return &giftRepository{db: db}
}

// Create creates a new gift tier
func (r *giftRepository) Create(gift *models.Gift) error {
	return r.db.Create(gift).Error
}

// GetByID retrieves a gift by its ID
func (r *giftRepository) GetByID(id uint) (*models.Gift, error) {
	var gift models.Gift
	err := r.db.First(&gift, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &gift, nil
}

// GetAll retrieves all gifts ordered by amount
func (r *giftRepository) GetAll() ([]models.Gift, error) {
	var gifts []models.Gift
	err := database.GetAll(r.db, &gifts, "SELECT * FROM gifts ORDER BY amount, id")
	return gifts, err
}

// Update updates an existing gift
func (r *giftRepository) Update(gift *models.Gift) error {
	return r.db.Save(gift).Error
}

// Delete removes a gift tier
func (r *giftRepository) Delete(id uint) error {
	_, err := database.Exec(r.db, "DELETE FROM gifts WHERE id = ?", id)
	return err
}
