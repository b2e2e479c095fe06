package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jinzhu/gorm"

	"github.com/Ali-ahsan35/vacation-rental-A7/models"
)

var propertyColumns = []string{
	"title", "bedrooms", "bathrooms", "max_guests", "price_per_night",
}

var propertyLocationColumns = []string{"location", "city", "state"}

// ImportProperties reads a properties CSV and upserts every valid row,
// matching existing records by title (plus location when one is resolved).
// With skipLocation set, the location columns are ignored and properties are
// created without a location; it gets assigned later through the admin
// endpoints.
func ImportProperties(db *gorm.DB, path string, skipLocation bool) (*Summary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	required := propertyColumns
	if !skipLocation {
		required = append(append([]string{}, propertyColumns...), propertyLocationColumns...)
	}
	cols, err := readHeader(reader, required)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			summary.skip(line, fmt.Sprintf("malformed row: %v", err))
			continue
		}

		importPropertyRow(db, summary, cols, record, line, skipLocation)
	}

	return summary, nil
}

func importPropertyRow(db *gorm.DB, summary *Summary, cols header, record []string, line int, skipLocation bool) {
	title := cols.get(record, "title")
	if title == "" {
		summary.skip(line, "missing title")
		return
	}

	bedrooms, err := parseIntField(cols.get(record, "bedrooms"), 1)
	if err != nil {
		summary.skip(line, "bedrooms "+err.Error())
		return
	}
	bathrooms, err := parseFloatField(cols.get(record, "bathrooms"), 1.0)
	if err != nil {
		summary.skip(line, "bathrooms "+err.Error())
		return
	}
	maxGuests, err := parseIntField(cols.get(record, "max_guests"), 2)
	if err != nil {
		summary.skip(line, "max_guests "+err.Error())
		return
	}
	price, err := parseFloatField(cols.get(record, "price_per_night"), 100.00)
	if err != nil {
		summary.skip(line, "price_per_night "+err.Error())
		return
	}
	available, err := parseBoolField(cols.get(record, "is_available"), true)
	if err != nil {
		summary.skip(line, "is_available "+err.Error())
		return
	}

	var location *models.Location
	if !skipLocation {
		name := cols.get(record, "location")
		city := cols.get(record, "city")
		state := cols.get(record, "state")
		if name == "" || city == "" || state == "" {
			summary.skip(line, "missing location data")
			return
		}
		country := cols.get(record, "country")
		if country == "" {
			country = "USA"
		}

		location, err = findOrCreateLocation(db, name, city, state, country)
		if err != nil {
			summary.fail(line, err)
			return
		}
	}

	property := models.Property{
		Title:         title,
		Description:   cols.get(record, "description"),
		PropertyType:  cols.get(record, "property_type"),
		Bedrooms:      bedrooms,
		Bathrooms:     bathrooms,
		MaxGuests:     maxGuests,
		PricePerNight: price,
		Address:       cols.get(record, "address"),
		Amenities:     cols.get(record, "amenities"),
		IsAvailable:   available,
	}
	if location != nil {
		property.LocationID = &location.ID
	}

	created, err := upsertProperty(db, property)
	if err != nil {
		summary.fail(line, err)
		return
	}
	if created {
		summary.Created++
	} else {
		summary.Updated++
	}
}

// upsertProperty matches on title, narrowed by location when the row carried
// one, so re-importing the same file never duplicates rows.
func upsertProperty(db *gorm.DB, property models.Property) (created bool, err error) {
	query := db.Where("LOWER(title) = ?", strings.ToLower(property.Title))
	if property.LocationID != nil {
		query = query.Where("location_id = ?", *property.LocationID)
	}

	var existing models.Property
	err = query.First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, db.Create(&property).Error
	}
	if err != nil {
		return false, err
	}

	property.ID = existing.ID
	property.CreatedAt = existing.CreatedAt
	if property.LocationID == nil {
		property.LocationID = existing.LocationID
	}
	return false, db.Save(&property).Error
}
