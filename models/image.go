package models

import "time"

type PropertyImage struct {
	ID         uint      `json:"id" gorm:"primary_key"`
	PropertyID uint      `json:"property_id" gorm:"not null;index"`
	Image      string    `json:"image" gorm:"not null"` // served path, e.g. /media/property_images/<file>
	Caption    string    `json:"caption"`
	IsPrimary  bool      `json:"is_primary"`
	UploadedAt time.Time `json:"uploaded_at" gorm:"index"`
}
