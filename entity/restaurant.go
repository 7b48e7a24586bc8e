package entity

import "time"

// Restaurant owns exactly one User account, like Customer.
type Restaurant struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Name           string `gorm:"not null" json:"name"`
	Address        string `json:"address"`
	Description    string `json:"description"`
	CuisineType    string `json:"cuisine_type"`
	ProfilePicture string `json:"profile_picture"`

	UserID uint `gorm:"uniqueIndex;not null" json:"-"`
	User   User `gorm:"constraint:OnDelete:CASCADE" json:"user"`

	Dishes []Dish `json:"-"`
}

func (r *Restaurant) AccountID() uint      { return r.UserID }
func (r *Restaurant) SetAccountID(id uint) { r.UserID = id }
