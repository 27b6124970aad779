package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MenuItem struct {
	Img  string `json:"img"`
	Name string `json:"name" binding:"required"`
}

type ToppingGroup struct {
	Name  string     `json:"name" binding:"required"`
	Items []MenuItem `json:"items"`
}

// Category keeps the catalog's original JSON keys (kategorie, menus, toping).
type Category struct {
	Kategorie string         `json:"kategorie" binding:"required"`
	Menus     []MenuItem     `json:"menus"`
	Toping    []ToppingGroup `json:"toping"`
}

type Menu struct {
	ID          uint                           `json:"id" gorm:"primaryKey"`
	Name        string                         `json:"name" gorm:"not null"`
	Description string                         `json:"description"`
	Level       int                            `json:"level" gorm:"not null;default:0"`
	Data        datatypes.JSONType[[]Category] `json:"data" gorm:"type:jsonb;not null"`
	CreatedAt   time.Time                      `json:"created_at"`
	UpdatedAt   time.Time                      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt                 `json:"-" gorm:"index"`
}

// Categories returns the decoded catalog.
func (m *Menu) Categories() []Category {
	return m.Data.Data()
}

type MenuSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
