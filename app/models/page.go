package models

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Page is an admin-editable content page. Content holds the raw text the
// admin edits; HTML is the rendered form served to visitors. Position
// controls nav ordering.
type Page struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name" validate:"required,min=1,max=255"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title" validate:"required,min=1,max=255"`
	Content   string    `gorm:"type:longtext;not null" json:"content" validate:"required,min=1"`
	HTML      string    `gorm:"type:longtext" json:"html"`
	Position  int       `gorm:"default:0" json:"position"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *Page) Validate() error {
	v := validator.New()
	return v.Struct(p)
}

// FindPageByName looks a content page up by its URL name; a missing page is
// (nil, nil) so the web layer can 404 it.
func FindPageByName(db *gorm.DB, name string) (*Page, error) {
	var page Page
	err := db.Where("name = ?", name).First(&page).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &page, nil
}

func GetAllPages(db *gorm.DB) ([]Page, error) {
	var pages []Page
	err := db.Order("position, name").Find(&pages).Error
	return pages, err
}
