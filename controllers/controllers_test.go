package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"

	"github.com/Ali-ahsan35/vacation-rental-A7/database"
	"github.com/Ali-ahsan35/vacation-rental-A7/models"
	"github.com/Ali-ahsan35/vacation-rental-A7/routes"
	"github.com/Ali-ahsan35/vacation-rental-A7/services"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	db.AutoMigrate(&models.Location{}, &models.Property{}, &models.PropertyImage{}, &models.User{})
	database.DB = db
	t.Cleanup(func() {
		services.FlushAutocompleteCache()
		db.Close()
	})
	services.FlushAutocompleteCache()

	router := gin.New()
	routes.SetupRoutes(router)
	return router
}

func seedAPIData(t *testing.T) (miami models.Location, villa models.Property) {
	t.Helper()

	miami = models.Location{Name: "Miami Beach", City: "Miami", State: "Florida", Country: "USA"}
	aspen := models.Location{Name: "Aspen", City: "Aspen", State: "Colorado", Country: "USA"}
	for _, loc := range []*models.Location{&miami, &aspen} {
		if err := database.DB.Create(loc).Error; err != nil {
			t.Fatalf("failed to seed location: %v", err)
		}
	}

	villa = models.Property{
		Title: "Luxury Villa", LocationID: &miami.ID, PropertyType: "Villa",
		Bedrooms: 5, Bathrooms: 4.5, MaxGuests: 10, PricePerNight: 450,
		Amenities: "WiFi,Pool,Kitchen", IsAvailable: true,
	}
	condo := models.Property{
		Title: "Beach Condo", LocationID: &miami.ID, PropertyType: "Condo",
		Bedrooms: 2, Bathrooms: 1, MaxGuests: 4, PricePerNight: 180, IsAvailable: true,
	}
	cabin := models.Property{
		Title: "Mountain Cabin", LocationID: &aspen.ID, PropertyType: "Cabin",
		Bedrooms: 3, Bathrooms: 2, MaxGuests: 6, PricePerNight: 220, IsAvailable: false,
	}
	for _, p := range []*models.Property{&villa, &condo, &cabin} {
		if err := database.DB.Create(p).Error; err != nil {
			t.Fatalf("failed to seed property: %v", err)
		}
	}

	images := []models.PropertyImage{
		{PropertyID: villa.ID, Image: "/media/property_images/villa-pool.jpg", UploadedAt: time.Now()},
		{PropertyID: villa.ID, Image: "/media/property_images/villa-front.jpg", IsPrimary: true, UploadedAt: time.Now().Add(time.Second)},
	}
	for i := range images {
		if err := database.DB.Create(&images[i]).Error; err != nil {
			t.Fatalf("failed to seed image: %v", err)
		}
	}

	return miami, villa
}

func doRequest(router *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAutocompleteEndpoint(t *testing.T) {
	router := setupRouter(t)
	seedAPIData(t)

	w := doRequest(router, http.MethodGet, "/api/locations/autocomplete/?q=mia", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var results []models.Location
	if err := json.Unmarshal(w.Body.Bytes(), &results); err != nil {
		t.Fatalf("bad response body: %v", err)
	}

	found := false
	for _, loc := range results {
		if loc.Name == "Miami Beach" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected Miami Beach for q=mia, got %+v", results)
	}
}

func TestAutocompleteShortQueryReturnsEmpty(t *testing.T) {
	router := setupRouter(t)
	seedAPIData(t)

	w := doRequest(router, http.MethodGet, "/api/locations/autocomplete/?q=m", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var results []models.Location
	if err := json.Unmarshal(w.Body.Bytes(), &results); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected empty result for short fragment, got %d", len(results))
	}
}

func TestListLocations(t *testing.T) {
	router := setupRouter(t)
	seedAPIData(t)

	w := doRequest(router, http.MethodGet, "/api/locations/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var results []models.Location
	if err := json.Unmarshal(w.Body.Bytes(), &results); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(results))
	}
	if results[0].Name != "Aspen" || results[1].Name != "Miami Beach" {
		t.Errorf("expected name ordering, got %s, %s", results[0].Name, results[1].Name)
	}
}

func TestGetLocationNotFound(t *testing.T) {
	router := setupRouter(t)
	seedAPIData(t)

	w := doRequest(router, http.MethodGet, "/api/locations/999/", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

type propertyPage struct {
	Count   int               `json:"count"`
	Results []models.Property `json:"results"`
}

func TestListPropertiesFilteredByLocation(t *testing.T) {
	router := setupRouter(t)
	seedAPIData(t)

	w := doRequest(router, http.MethodGet, "/api/properties/?location=Miami", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var page propertyPage
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if page.Count != 2 {
		t.Fatalf("expected the 2 Miami Beach properties, got %d", page.Count)
	}
	for _, property := range page.Results {
		if property.Location == nil || property.Location.Name != "Miami Beach" {
			t.Errorf("property outside filter returned: %s", property.Title)
		}
	}
}

func TestListPropertiesCombinedFilters(t *testing.T) {
	router := setupRouter(t)
	seedAPIData(t)

	w := doRequest(router, http.MethodGet, "/api/properties/?property_type=Condo&is_available=true", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var page propertyPage
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if page.Count != 1 || page.Results[0].Title != "Beach Condo" {
		t.Errorf("expected only the available condo, got %+v", page.Results)
	}
}

func TestListPropertiesRejectsBadFilter(t *testing.T) {
	router := setupRouter(t)
	seedAPIData(t)

	for _, path := range []string{
		"/api/properties/?bedrooms=abc",
		"/api/properties/?is_available=maybe",
		"/api/properties/?page=0",
	} {
		w := doRequest(router, http.MethodGet, path, nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", path, w.Code)
		}
	}
}

func TestGetPropertyDetail(t *testing.T) {
	router := setupRouter(t)
	_, villa := seedAPIData(t)

	w := doRequest(router, http.MethodGet, "/api/properties/1/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var property models.Property
	if err := json.Unmarshal(w.Body.Bytes(), &property); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if property.Title != villa.Title {
		t.Errorf("expected %s, got %s", villa.Title, property.Title)
	}
	if property.Location == nil || property.Location.Name != "Miami Beach" {
		t.Error("expected nested location in detail response")
	}
	if len(property.Images) != 2 {
		t.Fatalf("expected 2 images, got %d", len(property.Images))
	}
	if !property.Images[0].IsPrimary {
		t.Error("expected primary image first")
	}
	if len(property.AmenitiesList) != 3 || property.AmenitiesList[0] != "WiFi" {
		t.Errorf("expected amenities list, got %v", property.AmenitiesList)
	}
}

func TestGetPropertyNotFound(t *testing.T) {
	router := setupRouter(t)
	seedAPIData(t)

	w := doRequest(router, http.MethodGet, "/api/properties/999/", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	router := setupRouter(t)

	body, _ := json.Marshal(gin.H{"name": "Aspen", "city": "Aspen", "state": "Colorado"})
	w := doRequest(router, http.MethodPost, "/api/admin/locations", body)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestSignupThenCreateLocation(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	defer os.Unsetenv("JWT_SECRET")

	router := setupRouter(t)

	signup, _ := json.Marshal(gin.H{"email": "admin@example.com", "password": "secret123"})
	w := doRequest(router, http.MethodPost, "/api/auth/signup", signup)
	if w.Code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	cookie := w.Header().Get("Set-Cookie")
	if cookie == "" {
		t.Fatal("signup did not set a token cookie")
	}
	token := strings.SplitN(cookie, ";", 2)[0]

	create := func() *httptest.ResponseRecorder {
		body, _ := json.Marshal(gin.H{"name": "Miami Beach", "city": "Miami", "state": "Florida"})
		req := httptest.NewRequest(http.MethodPost, "/api/admin/locations", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Cookie", token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	if rec := create(); rec.Code != http.StatusCreated {
		t.Fatalf("create location: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// same natural key again collides
	if rec := create(); rec.Code != http.StatusConflict {
		t.Errorf("duplicate location: expected 409, got %d", rec.Code)
	}
}
