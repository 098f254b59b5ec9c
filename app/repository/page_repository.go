package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/donatinator/donatinator/app/models"
	"github.com/donatinator/donatinator/internal/pkg/database"
)

// pageRepository implements the PageRepository interface
type pageRepository struct {
	db *gorm.DB
}

// NewPageRepository creates a new page repository instance
func NewPageRepository(db *gorm.DB) PageRepository {
	return &pageRepository{db: db}
}

// Create creates a new page in the database
func (r *pageRepository) Create(page *models.Page) error {
	return r.db.Create(page).Error
}

// GetByID retrieves a page by its ID
func (r *pageRepository) GetByID(id uint) (*models.Page, error) {
	var page models.Page
	err := r.db.First(&page, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &page, nil
}

// GetByName retrieves a page by its unique name
func (r *pageRepository) GetByName(name string) (*models.Page, error) {
	var page models.Page
	err := r.db.Where("name = ?", name).First(&page).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &page, nil
}

// GetAll retrieves all pages in nav order
func (r *pageRepository) GetAll() ([]models.Page, error) {
	var pages []models.Page
	err := r.db.Order("position, name").Find(&pages).Error
	return pages, err
}

// Update updates an existing page in the database
func (r *pageRepository) Update(page *models.Page) error {
	return r.db.Save(page).Error
}

// Delete removes a page
func (r *pageRepository) Delete(id uint) error {
	_, err := database.Exec(r.db, "DELETE FROM pages WHERE id = ?", id)
	return err
}

// NameExists checks whether a page name is already taken
func (r *pageRepository) NameExists(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Page{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}
