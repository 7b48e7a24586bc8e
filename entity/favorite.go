package entity

import "time"

// Favorite links a user to a restaurant. One row per (user, restaurant)
// pair; deleting either side deletes the favorite.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`

	UserID uint `gorm:"not null;uniqueIndex:idx_favorite_user_restaurant" json:"user"`
	User   User `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	RestaurantID uint       `gorm:"not null;uniqueIndex:idx_favorite_user_restaurant" json:"restaurant"`
	Restaurant   Restaurant `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
