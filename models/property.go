package models

import (
	"strings"
	"time"
)

type Property struct {
	ID            uint      `json:"id" gorm:"primary_key"`
	Title         string    `json:"title" binding:"required" gorm:"not null"`
	Description   string    `json:"description"`
	LocationID    *uint     `json:"location_id" gorm:"index"`
	Location      *Location `json:"location,omitempty" gorm:"foreignkey:LocationID"`
	PropertyType  string    `json:"property_type"`
	Bedrooms      int       `json:"bedrooms" gorm:"default:1"`
	Bathrooms     float64   `json:"bathrooms" gorm:"default:1"`
	MaxGuests     int       `json:"max_guests" gorm:"default:2"`
	PricePerNight float64   `json:"price_per_night"`
	Address       string    `json:"address"`
	Amenities     string    `json:"amenities"` // comma-separated, e.g. "WiFi,Pool,Kitchen"
	IsAvailable   bool      `json:"is_available"` // default applied in code; a default tag makes gorm drop an explicit false from inserts
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Images []PropertyImage `json:"images,omitempty" gorm:"foreignkey:PropertyID"`

	// populated from Amenities for detail responses, never stored
	AmenitiesList []string `json:"amenities_list,omitempty" gorm:"-"`
}

// GetAmenitiesList splits the comma-separated amenities field into tags.
func (p *Property) GetAmenitiesList() []string {
	if strings.TrimSpace(p.Amenities) == "" {
		return []string{}
	}
	parts := strings.Split(p.Amenities, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			list = append(list, tag)
		}
	}
	return list
}
