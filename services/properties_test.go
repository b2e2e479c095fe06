package services

import (
	"testing"

	"github.com/jinzhu/gorm"

	"github.com/Ali-ahsan35/vacation-rental-A7/models"
)

func intPtr(n int) *int    { return &n }
func boolPtr(b bool) *bool { return &b }

// seedProperties creates two Miami Beach listings, one Aspen listing and one
// without a location.
func seedProperties(t *testing.T, db *gorm.DB) {
	t.Helper()

	miami := models.Location{Name: "Miami Beach", City: "Miami", State: "Florida", Country: "USA"}
	aspen := models.Location{Name: "Aspen", City: "Aspen", State: "Colorado", Country: "USA"}
	for _, loc := range []*models.Location{&miami, &aspen} {
		if err := db.Create(loc).Error; err != nil {
			t.Fatalf("failed to seed location: %v", err)
		}
	}

	properties := []models.Property{
		{Title: "Luxury Villa", LocationID: &miami.ID, PropertyType: "Villa", Bedrooms: 5, Bathrooms: 4.5, MaxGuests: 10, PricePerNight: 450, IsAvailable: true},
		{Title: "Beach Condo", LocationID: &miami.ID, PropertyType: "Condo", Bedrooms: 2, Bathrooms: 1, MaxGuests: 4, PricePerNight: 180, IsAvailable: true},
		{Title: "Mountain Cabin", LocationID: &aspen.ID, PropertyType: "Cabin", Bedrooms: 3, Bathrooms: 2, MaxGuests: 6, PricePerNight: 220, IsAvailable: false},
		{Title: "City Loft", PropertyType: "Condo", Bedrooms: 1, Bathrooms: 1, MaxGuests: 2, PricePerNight: 90, IsAvailable: true},
	}
	for i := range properties {
		if err := db.Create(&properties[i]).Error; err != nil {
			t.Fatalf("failed to seed property: %v", err)
		}
	}
}

func TestFilterPropertiesNoFilters(t *testing.T) {
	db := newTestDB(t)
	seedProperties(t, db)

	page, err := FilterProperties(db, PropertyFilters{}, 10)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if page.Count != 4 || len(page.Results) != 4 {
		t.Fatalf("expected all 4 properties, got count=%d len=%d", page.Count, len(page.Results))
	}

	// stable id ascending order
	for i := 1; i < len(page.Results); i++ {
		if page.Results[i].ID <= page.Results[i-1].ID {
			t.Errorf("results not ordered by id ascending: %d after %d",
				page.Results[i].ID, page.Results[i-1].ID)
		}
	}
}

func TestFilterPropertiesByLocation(t *testing.T) {
	db := newTestDB(t)
	seedProperties(t, db)

	page, err := FilterProperties(db, PropertyFilters{Location: "Miami"}, 10)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if page.Count != 2 {
		t.Fatalf("expected exactly the 2 Miami Beach properties, got %d", page.Count)
	}
	for _, property := range page.Results {
		if property.Location == nil || property.Location.Name != "Miami Beach" {
			t.Errorf("false positive in location filter: %+v", property)
		}
	}
}

func TestFilterPropertiesByType(t *testing.T) {
	db := newTestDB(t)
	seedProperties(t, db)

	page, err := FilterProperties(db, PropertyFilters{PropertyType: "villa"}, 10)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if page.Count != 1 || page.Results[0].Title != "Luxury Villa" {
		t.Errorf("expected the one villa, got %+v", page.Results)
	}
}

func TestFilterPropertiesMinBedrooms(t *testing.T) {
	db := newTestDB(t)
	seedProperties(t, db)

	page, err := FilterProperties(db, PropertyFilters{MinBedrooms: intPtr(3)}, 10)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if page.Count != 2 {
		t.Fatalf("expected 2 properties with >= 3 bedrooms, got %d", page.Count)
	}
	for _, property := range page.Results {
		if property.Bedrooms < 3 {
			t.Errorf("false positive: %s has %d bedrooms", property.Title, property.Bedrooms)
		}
	}
}

func TestFilterPropertiesByAvailability(t *testing.T) {
	db := newTestDB(t)
	seedProperties(t, db)

	page, err := FilterProperties(db, PropertyFilters{Available: boolPtr(false)}, 10)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if page.Count != 1 || page.Results[0].Title != "Mountain Cabin" {
		t.Errorf("expected only the unavailable cabin, got %+v", page.Results)
	}
}

func TestFilterPropertiesCombined(t *testing.T) {
	db := newTestDB(t)
	seedProperties(t, db)

	page, err := FilterProperties(db, PropertyFilters{
		Location:    "Miami",
		MinBedrooms: intPtr(3),
		Available:   boolPtr(true),
	}, 10)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if page.Count != 1 || page.Results[0].Title != "Luxury Villa" {
		t.Errorf("AND-composition broken, got %+v", page.Results)
	}
}

func TestFilterPropertiesNoMatches(t *testing.T) {
	db := newTestDB(t)
	seedProperties(t, db)

	page, err := FilterProperties(db, PropertyFilters{Location: "Nowhere"}, 10)
	if err != nil {
		t.Fatalf("no matches must not be an error, got %v", err)
	}
	if page.Count != 0 || len(page.Results) != 0 {
		t.Errorf("expected empty page, got %+v", page)
	}
}

func TestFilterPropertiesPagination(t *testing.T) {
	db := newTestDB(t)
	seedProperties(t, db)

	first, err := FilterProperties(db, PropertyFilters{Page: 1}, 3)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if first.Count != 4 || len(first.Results) != 3 {
		t.Fatalf("page 1: expected 3 of 4 results, got count=%d len=%d", first.Count, len(first.Results))
	}

	second, err := FilterProperties(db, PropertyFilters{Page: 2}, 3)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(second.Results) != 1 {
		t.Fatalf("page 2: expected the remaining result, got %d", len(second.Results))
	}
	if second.Results[0].ID <= first.Results[len(first.Results)-1].ID {
		t.Error("pages overlap")
	}

	// a page past the end is empty, not an error
	third, err := FilterProperties(db, PropertyFilters{Page: 3}, 3)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(third.Results) != 0 || third.Count != 4 {
		t.Errorf("expected empty page with full count, got %+v", third)
	}
}
