package models

import "time"

type Location struct {
	ID          uint      `json:"id" gorm:"primary_key"`
	Name        string    `json:"name" binding:"required" gorm:"not null;index"`
	City        string    `json:"city" binding:"required" gorm:"not null"`
	State       string    `json:"state" gorm:"not null"`
	Country     string    `json:"country" gorm:"default:'USA'"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Properties []*Property `json:"-" gorm:"foreignkey:LocationID"`
}
