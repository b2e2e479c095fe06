package services

import (
	"github.com/jinzhu/gorm"

	"github.com/Ali-ahsan35/vacation-rental-A7/models"
)

// MarkImagePrimary flags one image as the property's cover image and demotes
// any other image of the same property that carried the flag. Both writes
// happen in one transaction.
func MarkImagePrimary(db *gorm.DB, image *models.PropertyImage) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Model(&models.PropertyImage{}).
		Where("property_id = ? AND id != ? AND is_primary = ?", image.PropertyID, image.ID, true).
		Update("is_primary", false).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Model(image).Update("is_primary", true).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
