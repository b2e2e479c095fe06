package controllers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/Ali-ahsan35/vacation-rental-A7/config"
	"github.com/Ali-ahsan35/vacation-rental-A7/database"
	"github.com/Ali-ahsan35/vacation-rental-A7/models"
	"github.com/Ali-ahsan35/vacation-rental-A7/services"
)

func handleImageError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
	} else {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// UploadPropertyImage stores a multipart "image" file under the media
// directory with a generated name and records it against the property.
// Marking it primary demotes the property's previous primary image.
func UploadPropertyImage(c *gin.Context) {
	id := c.Param("id")
	var property models.Property
	if err := database.DB.First(&property, id).Error; err != nil {
		handlePropertyError(c, err)
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	isPrimary := false
	if raw := c.PostForm("is_primary"); raw != "" {
		isPrimary, err = strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "is_primary must be true or false"})
			return
		}
	}

	cfg := config.LoadConfig()
	dir := filepath.Join(cfg.MediaDir, "property_images")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := uuid.New().String() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	image := models.PropertyImage{
		PropertyID: property.ID,
		Image:      "/media/property_images/" + filename,
		Caption:    c.PostForm("caption"),
		UploadedAt: time.Now(),
	}

	if err := database.DB.Create(&image).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if isPrimary {
		if err := services.MarkImagePrimary(database.DB, &image); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Image uploaded successfully",
		"image":   image,
	})
}

// SetPrimaryImage makes one image the property's cover image.
func SetPrimaryImage(c *gin.Context) {
	id := c.Param("id")
	var image models.PropertyImage
	if err := database.DB.First(&image, id).Error; err != nil {
		handleImageError(c, err)
		return
	}

	if err := services.MarkImagePrimary(database.DB, &image); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, image)
}

func DeleteImage(c *gin.Context) {
	id := c.Param("id")
	var image models.PropertyImage
	if err := database.DB.First(&image, id).Error; err != nil {
		handleImageError(c, err)
		return
	}

	if err := database.DB.Delete(&image).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// best effort: the record is gone either way
	cfg := config.LoadConfig()
	os.Remove(filepath.Join(cfg.MediaDir, "property_images", filepath.Base(image.Image)))

	c.JSON(http.StatusOK, gin.H{"message": "Image deleted successfully"})
}
