package database

import (
	"fmt"
	"log"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"

	"github.com/Ali-ahsan35/vacation-rental-A7/config"
	"github.com/Ali-ahsan35/vacation-rental-A7/models"
)

var DB *gorm.DB

func ConnectDatabase() {
	cfg := config.LoadConfig()
	connectionString := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBName, cfg.DBPassword)

	var err error
	DB, err = gorm.Open("postgres", connectionString)
	if err != nil {
		log.Fatal("Failed to connect to database", err)
	}

	//migrations
	DB.AutoMigrate(&models.Location{}, &models.Property{}, &models.PropertyImage{}, &models.User{})
}
