package billing

import (
	"gorm.io/gorm"

	"github.com/donatinator/donatinator/app/models"
	"github.com/donatinator/donatinator/internal/pkg/database"
)

// Repository provides the DB operations the event reconciler needs. It is
// constructed over one execution context (the shared pool or a transaction
// handle) so every operation of one reconciliation shares that context.
type Repository interface {
	InsertEvent(event *models.StripeEvent) error
	GetAccountByEmail(email string) (*models.Account, error)
	CreateAccount(account *models.Account) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a billing repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) InsertEvent(event *models.StripeEvent) error {
	return r.db.Create(event).Error
}

func (r *gormRepository) GetAccountByEmail(email string) (*models.Account, error) {
	var account models.Account
	found, err := database.GetOne(r.db, &account,
		"SELECT * FROM accounts WHERE email = ?", email)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &account, nil
}

func (r *gormRepository) CreateAccount(account *models.Account) error {
	return r.db.Create(account).Error
}
