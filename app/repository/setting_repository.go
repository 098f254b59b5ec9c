package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/donatinator/donatinator/app/models"
	"github.com/donatinator/donatinator/internal/pkg/database"
)

// settingRepository implements the SettingRepository interface
type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new setting repository instance
func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

// GetAll retrieves every setting row as a name/value map
func (r *settingRepository) GetAll() (map[string]string, error) {
	var rows []models.Setting
	if err := database.GetAll(r.db, &rows, "SELECT id, name, value FROM settings"); err != nil {
		return nil, err
	}

	settings := make(map[string]string, len(rows))
	for _, row := range rows {
		settings[row.Name] = row.Value
	}
	return settings, nil
}

// GetValue retrieves a single setting value by name; missing names return ""
func (r *settingRepository) GetValue(name string) (string, error) {
	var setting models.Setting
	err := r.db.Where("name = ?", name).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return setting.Value, nil
}

// SaveAll upserts every name/value pair inside one transaction. The per-key
// loop keeps error attribution simple: a failure names the key that caused
// it, the transaction rolls back, and no pair is left half-written. The
// settings cache must be reloaded by the caller after a successful save.
func (r *settingRepository) SaveAll(settings map[string]string) error {
	return database.WithinTransaction(r.db, func(tx *gorm.DB) error {
		for name, value := range settings {
			row := models.Setting{Name: name, Value: value}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoUpdates: clause.AssignmentColumns([]string{"value"}),
			}).Create(&row).Error
			if err != nil {
				return fmt.Errorf("failed to save setting %s: %w", name, err)
			}
		}
		return nil
	})
}
