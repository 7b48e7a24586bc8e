package entity

import "time"

// CartItem is one line of a user's open cart. Dish name, price and
// restaurant name are derived through the Dish relation at read time,
// never stored here.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	UserID uint `gorm:"not null;uniqueIndex:idx_cart_user_dish" json:"-"`
	User   User `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	DishID uint `gorm:"not null;uniqueIndex:idx_cart_user_dish" json:"dish"`
	Dish   Dish `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Quantity int `gorm:"not null" json:"quantity"`
}
