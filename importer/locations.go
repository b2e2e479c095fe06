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

var locationColumns = []string{"name", "city", "state"}

// ImportLocations reads a locations CSV and upserts every valid row, matching
// existing records by name+city. A missing file or a bad header aborts the
// import; a bad row is skipped and the import continues.
func ImportLocations(db *gorm.DB, path string) (*Summary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	cols, err := readHeader(reader, locationColumns)
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

		name := cols.get(record, "name")
		city := cols.get(record, "city")
		state := cols.get(record, "state")
		if name == "" || city == "" || state == "" {
			summary.skip(line, "missing name, city or state")
			continue
		}

		country := cols.get(record, "country")
		if country == "" {
			country = "USA"
		}

		created, err := upsertLocation(db, models.Location{
			Name:        name,
			City:        city,
			State:       state,
			Country:     country,
			Description: cols.get(record, "description"),
		})
		if err != nil {
			summary.fail(line, err)
			continue
		}
		if created {
			summary.Created++
		} else {
			summary.Updated++
		}
	}

	return summary, nil
}

// upsertLocation matches on the name+city natural key.
func upsertLocation(db *gorm.DB, loc models.Location) (created bool, err error) {
	var existing models.Location
	err = db.Where("LOWER(name) = ? AND LOWER(city) = ?",
		strings.ToLower(loc.Name), strings.ToLower(loc.City)).
		First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, db.Create(&loc).Error
	}
	if err != nil {
		return false, err
	}

	existing.Name = loc.Name
	existing.City = loc.City
	existing.State = loc.State
	existing.Country = loc.Country
	existing.Description = loc.Description
	return false, db.Save(&existing).Error
}

// findOrCreateLocation resolves a property row's location columns, creating
// the location on first sight. Matching is by name only, the way locations
// arrive on property rows.
func findOrCreateLocation(db *gorm.DB, name, city, state, country string) (*models.Location, error) {
	var loc models.Location
	err := db.Where("LOWER(name) = ?", strings.ToLower(name)).First(&loc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		loc = models.Location{Name: name, City: city, State: state, Country: country}
		if err := db.Create(&loc).Error; err != nil {
			return nil, err
		}
		return &loc, nil
	}
	if err != nil {
		return nil, err
	}
	return &loc, nil
}
