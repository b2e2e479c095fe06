package models

import "time"

// User is a staff account for the protected admin endpoints.
type User struct {
	ID        uint      `json:"id" gorm:"primary_key"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email" binding:"required" gorm:"unique;not null"`
	Password  string    `json:"password" binding:"required" gorm:"not null"`
	Role      string    `json:"role" gorm:"default:'admin'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
