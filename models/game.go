package models

import (
	"time"

	"gorm.io/gorm"
)

type Game struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"user_id" gorm:"not null;index"`
	MenuID    uint           `json:"menu_id" gorm:"not null"`
	Score     int            `json:"score" gorm:"not null;default:0;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	User User `json:"-"`
	Menu Menu `json:"-"`
}

// GameSummary is a game row joined with the owner's display name.
type GameSummary struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	MenuID    uint      `json:"menu_id"`
	Score     int       `json:"score"`
	UserName  string    `json:"user_name"`
	CreatedAt time.Time `json:"created_at"`
}
