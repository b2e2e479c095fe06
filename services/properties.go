package services

import (
	"strings"

	"github.com/jinzhu/gorm"

	"github.com/Ali-ahsan35/vacation-rental-A7/models"
)

// PropertyFilters are AND-composed; nil/empty fields are not applied.
type PropertyFilters struct {
	Location     string // matches location name or city, case-insensitive substring
	PropertyType string
	MinBedrooms  *int
	Available    *bool
	Page         int
}

// PropertyPage is one page of filtered results.
type PropertyPage struct {
	Count    int               `json:"count"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	Results  []models.Property `json:"results"`
}

// FilterProperties returns properties matching every supplied filter, ordered
// by id ascending so pages are stable. A page past the end of the results is
// empty, not an error.
func FilterProperties(db *gorm.DB, filters PropertyFilters, pageSize int) (*PropertyPage, error) {
	query := db.Model(&models.Property{})

	if filters.Location != "" {
		pattern := "%" + strings.ToLower(strings.TrimSpace(filters.Location)) + "%"
		query = query.
			Joins("JOIN locations ON locations.id = properties.location_id").
			Where("LOWER(locations.name) LIKE ? OR LOWER(locations.city) LIKE ?", pattern, pattern)
	}
	if filters.PropertyType != "" {
		query = query.Where("LOWER(property_type) = ?", strings.ToLower(filters.PropertyType))
	}
	if filters.MinBedrooms != nil {
		query = query.Where("bedrooms >= ?", *filters.MinBedrooms)
	}
	if filters.Available != nil {
		query = query.Where("is_available = ?", *filters.Available)
	}

	var count int
	if err := query.Count(&count).Error; err != nil {
		return nil, err
	}

	page := filters.Page
	if page < 1 {
		page = 1
	}

	properties := []models.Property{}
	if err := query.Preload("Location").
		Order("properties.id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&properties).Error; err != nil {
		return nil, err
	}

	return &PropertyPage{
		Count:    count,
		Page:     page,
		PageSize: pageSize,
		Results:  properties,
	}, nil
}
