package repository

import (
	"github.com/donatinator/donatinator/app/models"
	"gorm.io/gorm"
)

// AccountRepository defines the interface for account-related database operations
type AccountRepository interface {
	Create(account *models.Account) error
	GetByID(id uint) (*models.Account, error)
	GetByEmail(email string) (*models.Account, error)
	Update(account *models.Account) error
	List() ([]models.Account, error)
	Count() (int64, error)
}

// SettingRepository defines the interface for the name/value settings table.
// SaveAll is the bulk upsert the admin settings form goes through: every
// pair is written inside one transaction and either all land or none do.
// Callers reload the settings cache after a successful save.
type SettingRepository interface {
	GetAll() (map[string]string, error)
	GetValue(name string) (string, error)
	SaveAll(settings map[string]string) error
}

// GiftRepository defines the interface for gift-tier operations
type GiftRepository interface {
	Create(gift *models.Gift) error
	GetByID(id uint) (*models.Gift, error)
	GetAll() ([]models.Gift, error)
	Update(gift *models.Gift) error
	Delete(id uint) error
}

// PageRepository defines the interface for content-page operations
type PageRepository interface {
	Create(page *models.Page) error
	GetByID(id uint) (*models.Page, error)
	GetByName(name string) (*models.Page, error)
	GetAll() ([]models.Page, error)
	Update(page *models.Page) error
	Delete(id uint) error
	NameExists(name string) (bool, error)
}

// DonationRepository defines the interface for donation history operations
type DonationRepository interface {
	Create(donation *models.Donation) error
	List(offset, limit int) ([]models.Donation, error)
	Count() (int64, error)
	SumAmount() (int64, error)
}

// StripeEventRepository exposes the read side of the event audit trail for
// the admin panel. Ingestion goes through the billing service instead so the
// insert shares a transaction with account reconciliation.
type StripeEventRepository interface {
	List(offset, limit int) ([]models.StripeEvent, error)
	Count() (int64, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	Account     AccountRepository
	Setting     SettingRepository
	Gift        GiftRepository
	Page        PageRepository
	Donation    DonationRepository
	StripeEvent StripeEventRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Account:     NewAccountRepository(db),
		Setting:     NewSettingRepository(db),
		Gift:        NewGiftRepository(db),
		Page:        NewPageRepository(db),
		Donation:    NewDonationRepository(db),
		StripeEvent: NewStripeEventRepository(db),
	}
}
