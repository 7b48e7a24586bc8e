package entity

import "time"

// Customer owns exactly one User account.
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	DateOfBirth    string `json:"date_of_birth"`
	City           string `json:"city"`
	State          string `json:"state"`
	Country        string `json:"country"`
	Phone          string `json:"phone"`
	ProfilePicture string `json:"profile_picture"`

	UserID uint `gorm:"uniqueIndex;not null" json:"-"`
	User   User `gorm:"constraint:OnDelete:CASCADE" json:"user"`
}

func (c *Customer) AccountID() uint      { return c.UserID }
func (c *Customer) SetAccountID(id uint) { c.UserID = id }
