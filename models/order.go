package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCorrect   OrderStatus = "correct"
	OrderIncorrect OrderStatus = "incorrect"
)

type ToppingChoice struct {
	Group string   `json:"group"`
	Item  MenuItem `json:"item"`
}

// Selection is one random draw from a menu. Topping is nil when no group
// contributed, never an empty slice.
type Selection struct {
	Category string          `json:"category"`
	Item     MenuItem        `json:"item"`
	Topping  []ToppingChoice `json:"topping"`
}

type Order struct {
	ID              uint                          `json:"id" gorm:"primaryKey"`
	MenuID          uint                          `json:"menu_id" gorm:"not null"`
	GameID          uint                          `json:"game_id" gorm:"not null;index"`
	MenuName        string                        `json:"menu_name"`
	MenuDescription string                        `json:"menu_description"`
	Level           *int                          `json:"level"`
	Selection       datatypes.JSONType[Selection] `json:"selection" gorm:"type:jsonb;not null"`
	Status          OrderStatus                   `json:"status" gorm:"type:varchar(16);not null;default:'pending';index"`
	IsCorrect       bool                          `json:"is_correct" gorm:"not null;default:false"`
	ScoredAt        *time.Time                    `json:"scored_at"`
	CreatedAt       time.Time                     `json:"created_at"`
	UpdatedAt       time.Time                     `json:"updated_at"`
	DeletedAt       gorm.DeletedAt                `json:"-" gorm:"index"`
}

// LevelValue is the snapshotted difficulty, zero when the menu had none.
func (o *Order) LevelValue() int {
	if o.Level == nil {
		return 0
	}
	return *o.Level
}

func (o *Order) Terminal() bool {
	return o.Status != "" && o.Status != OrderPending
}
