package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Dish struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Ingredients string          `json:"ingredients"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`

	RestaurantID uint       `gorm:"index;not null" json:"restaurant"`
	Restaurant   Restaurant `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
