package repo

import (
	"fmt"

	"github.com/Dishalex/PhotoShare/internal/model"

	"gorm.io/gorm"
)

type SettingRepository struct {
	db *gorm.DB
}

// InitializeDefaults inserts missing keys and refreshes descriptions; existing values are kept.
func (r *SettingRepository) InitializeDefaults(defaults []model.Setting) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, def := range defaults {
			var count int64
			if err := tx.Model(&model.Setting{}).Where("key = ?", def.Key).Count(&count).Error; err != nil {
				return fmt.Errorf("count default setting %q: %w", def.Key, err)
			}
			if count == 0 {
				row := def
				if err := tx.Create(&row).Error; err != nil {
					return fmt.Errorf("create default setting %q: %w", def.Key, err)
				}
				continue
			}
			if err := tx.Model(&model.Setting{}).Where("key = ?", def.Key).Update("desc", def.Desc).Error; err != nil {
				return fmt.Errorf("update setting description %q: %w", def.Key, err)
			}
		}
		return nil
	})
}

func (r *SettingRepository) DeleteNotInKeys(allowedKeys []string) error {
	query := r.db.Model(&model.Setting{})
	if len(allowedKeys) == 0 {
		return query.Where("1 = 1").Delete(&model.Setting{}).Error
	}
	return query.Where("key NOT IN ?", allowedKeys).Delete(&model.Setting{}).Error
}

func (r *SettingRepository) FindByKey(key string) (*model.Setting, error) {
	var setting model.Setting
	if err := r.db.Where("key = ?", key).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *SettingRepository) Create(setting *model.Setting) error {
	return r.db.Create(setting).Error
}

func (r *SettingRepository) FindAll() ([]model.Setting, error) {
	var settings []model.Setting
	if err := r.db.Order("key asc").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *SettingRepository) UpdateSettings(items []UpdateSettingItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			if err := upsertSettingValue(tx, item); err != nil {
				return err
			}
		}
		return nil
	})
}

func upsertSettingValue(tx *gorm.DB, item UpdateSettingItem) error {
	result := tx.Model(&model.Setting{}).Where("key = ?", item.Key).Update("value", item.Value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return tx.Create(&model.Setting{Key: item.Key, Value: item.Value}).Error
	}
	return nil
}
