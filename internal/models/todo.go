// Package models contains data models for the todo service.
package models

import "time"

// Todo represents a single task owned by a user.
type Todo struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Priority    int       `json:"priority" gorm:"not null"`
	Complete    bool      `json:"complete" gorm:"default:false"`
	OwnerID     int64     `json:"owner_id" gorm:"not null;index"`
	Owner       User      `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the database table name for the Todo model.
func (Todo) TableName() string {
	return "todos"
}
