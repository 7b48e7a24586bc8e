package entity

import "time"

const (
	RoleCustomer   = "customer"
	RoleRestaurant = "restaurant"
)

// User is the account record shared by customer and restaurant profiles.
// Password holds the bcrypt hash and never leaves the API.
// Rows are hard-deleted so FK cascades take out the owning profile,
// cart lines and favorites.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null;default:customer" json:"role"`
}
