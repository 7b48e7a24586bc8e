package entity

import (
	"strings"
	"time"

	"github.com/samber/lo"
)

type Address struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Address    string `gorm:"not null" json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`

	UserID uint `gorm:"index;not null" json:"-"`
	User   User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// Formatted joins the non-empty address components into the single
// delivery address string emitted on orders.
func (a *Address) Formatted() string {
	parts := lo.Filter([]string{a.Address, a.City, a.State, a.PostalCode, a.Country},
		func(s string, _ int) bool { return strings.TrimSpace(s) != "" })
	return strings.Join(parts, ", ")
}
