package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"github.com/Ali-ahsan35/vacation-rental-A7/config"
	"github.com/Ali-ahsan35/vacation-rental-A7/database"
	"github.com/Ali-ahsan35/vacation-rental-A7/models"
	"github.com/Ali-ahsan35/vacation-rental-A7/services"
)

func handlePropertyError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
	} else {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// GetProperties answers GET /api/properties/ with one page of results.
// Supported filters: location, property_type, bedrooms (minimum),
// is_available; plus page.
func GetProperties(c *gin.Context) {
	cfg := config.LoadConfig()

	filters := services.PropertyFilters{
		Location:     c.Query("location"),
		PropertyType: c.Query("property_type"),
	}

	if raw := c.Query("bedrooms"); raw != "" {
		bedrooms, err := strconv.Atoi(raw)
		if err != nil || bedrooms < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bedrooms must be a non-negative number"})
			return
		}
		filters.MinBedrooms = &bedrooms
	}

	if raw := c.Query("is_available"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "is_available must be true or false"})
			return
		}
		filters.Available = &available
	}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "page must be a positive number"})
			return
		}
		filters.Page = page
	}

	result, err := services.FilterProperties(database.DB, filters, cfg.PageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetProperty returns one property with its location and images, primary
// image first.
func GetProperty(c *gin.Context) {
	id := c.Param("id")

	var property models.Property
	if err := database.DB.
		Preload("Location").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_primary DESC, uploaded_at ASC")
		}).
		First(&property, id).Error; err != nil {
		handlePropertyError(c, err)
		return
	}

	property.AmenitiesList = property.GetAmenitiesList()

	c.JSON(http.StatusOK, property)
}

type propertyInput struct {
	Title         string  `json:"title" binding:"required"`
	Description   string  `json:"description"`
	LocationID    *uint   `json:"location_id"`
	PropertyType  string  `json:"property_type"`
	Bedrooms      int     `json:"bedrooms"`
	Bathrooms     float64 `json:"bathrooms"`
	MaxGuests     int     `json:"max_guests"`
	PricePerNight float64 `json:"price_per_night"`
	Address       string  `json:"address"`
	Amenities     string  `json:"amenities"`
	IsAvailable   *bool   `json:"is_available"`
}

func (in *propertyInput) validate() string {
	if in.Bedrooms < 0 {
		return "bedrooms must not be negative"
	}
	if in.Bathrooms < 0 {
		return "bathrooms must not be negative"
	}
	if in.MaxGuests < 0 {
		return "max_guests must not be negative"
	}
	if in.PricePerNight < 0 {
		return "price_per_night must not be negative"
	}
	return ""
}

func CreateProperty(c *gin.Context) {
	var input propertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := input.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if input.LocationID != nil {
		var location models.Location
		if err := database.DB.First(&location, *input.LocationID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "location_id does not reference an existing location"})
			return
		}
	}

	property := models.Property{
		Title:         input.Title,
		Description:   input.Description,
		LocationID:    input.LocationID,
		PropertyType:  input.PropertyType,
		Bedrooms:      input.Bedrooms,
		Bathrooms:     input.Bathrooms,
		MaxGuests:     input.MaxGuests,
		PricePerNight: input.PricePerNight,
		Address:       input.Address,
		Amenities:     input.Amenities,
		IsAvailable:   true,
	}
	if input.IsAvailable != nil {
		property.IsAvailable = *input.IsAvailable
	}

	if err := database.DB.Create(&property).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Property created successfully",
		"property": property,
	})
}

func UpdateProperty(c *gin.Context) {
	id := c.Param("id")
	var property models.Property
	if err := database.DB.First(&property, id).Error; err != nil {
		handlePropertyError(c, err)
		return
	}

	var input propertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := input.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if input.LocationID != nil {
		var location models.Location
		if err := database.DB.First(&location, *input.LocationID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "location_id does not reference an existing location"})
			return
		}
	}

	property.Title = input.Title
	property.Description = input.Description
	property.LocationID = input.LocationID
	property.PropertyType = input.PropertyType
	property.Bedrooms = input.Bedrooms
	property.Bathrooms = input.Bathrooms
	property.MaxGuests = input.MaxGuests
	property.PricePerNight = input.PricePerNight
	property.Address = input.Address
	property.Amenities = input.Amenities
	if input.IsAvailable != nil {
		property.IsAvailable = *input.IsAvailable
	}

	if err := database.DB.Save(&property).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, property)
}

// DeleteProperty removes a property and all of its images.
func DeleteProperty(c *gin.Context) {
	id := c.Param("id")
	var property models.Property
	if err := database.DB.First(&property, id).Error; err != nil {
		handlePropertyError(c, err)
		return
	}

	tx := database.DB.Begin()

	if err := tx.Where("property_id = ?", property.ID).
		Delete(&models.PropertyImage{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := tx.Delete(&property).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "Property deleted successfully"})
}
