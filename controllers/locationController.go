package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"github.com/Ali-ahsan35/vacation-rental-A7/config"
	"github.com/Ali-ahsan35/vacation-rental-A7/database"
	"github.com/Ali-ahsan35/vacation-rental-A7/models"
	"github.com/Ali-ahsan35/vacation-rental-A7/services"
)

func handleLocationError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
	} else {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func GetLocations(c *gin.Context) {
	var locations []models.Location
	if err := database.DB.Order("name ASC").Find(&locations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, locations)
}

func GetLocation(c *gin.Context) {
	id := c.Param("id")
	var location models.Location
	if err := database.DB.First(&location, id).Error; err != nil {
		handleLocationError(c, err)
		return
	}
	c.JSON(http.StatusOK, location)
}

// AutocompleteLocations answers GET /api/locations/autocomplete/?q=mia with
// the top matching locations. Fragments under two characters return an empty
// list, never an error.
func AutocompleteLocations(c *gin.Context) {
	cfg := config.LoadConfig()

	locations, err := services.AutocompleteLocations(database.DB, c.Query("q"), cfg.AutocompleteLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, locations)
}

func CreateLocation(c *gin.Context) {
	var input models.Location
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Country == "" {
		input.Country = "USA"
	}

	// Check for existing location with the same natural key
	var existing models.Location
	err := database.DB.Where(
		"LOWER(name) = ? AND LOWER(city) = ?",
		strings.ToLower(input.Name),
		strings.ToLower(input.City),
	).First(&existing).Error

	if err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"error": "Location with this name already exists in this city",
		})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Create(&input).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	services.FlushAutocompleteCache()

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Location created successfully",
		"location": input,
	})
}

func UpdateLocation(c *gin.Context) {
	id := c.Param("id")
	var location models.Location
	if err := database.DB.First(&location, id).Error; err != nil {
		handleLocationError(c, err)
		return
	}

	var input models.Location
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Check for name conflict when the natural key changes
	if input.Name != location.Name || input.City != location.City {
		var existing models.Location
		err := database.DB.Where(
			"LOWER(name) = ? AND LOWER(city) = ? AND id != ?",
			strings.ToLower(input.Name),
			strings.ToLower(input.City),
			location.ID,
		).First(&existing).Error

		if err == nil {
			c.JSON(http.StatusConflict, gin.H{
				"error": "Location with this name already exists in this city",
			})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	location.Name = input.Name
	location.City = input.City
	location.State = input.State
	if input.Country != "" {
		location.Country = input.Country
	}
	location.Description = input.Description

	if err := database.DB.Save(&location).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	services.FlushAutocompleteCache()

	c.JSON(http.StatusOK, location)
}

// DeleteLocation removes a location; its properties survive with their
// location reference nulled out.
func DeleteLocation(c *gin.Context) {
	id := c.Param("id")
	var location models.Location
	if err := database.DB.First(&location, id).Error; err != nil {
		handleLocationError(c, err)
		return
	}

	tx := database.DB.Begin()

	if err := tx.Model(&models.Property{}).
		Where("location_id = ?", location.ID).
		Update("location_id", gorm.Expr("NULL")).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := tx.Delete(&location).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	tx.Commit()

	services.FlushAutocompleteCache()

	c.JSON(http.StatusOK, gin.H{"message": "Location deleted successfully"})
}
