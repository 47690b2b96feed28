// Package models contains data models for the todo service.
package models

import "time"

// User represents an authenticated user in the system.
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Email        *string   `json:"email" gorm:"uniqueIndex"`
	FirstName    *string   `json:"first_name"`
	LastName     *string   `json:"last_name"`
	PhoneNumber  *string   `json:"phone_number"`
	Admin        bool      `json:"admin" gorm:"not null;default:false"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "users"
}
