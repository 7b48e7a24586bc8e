package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

const (
	DeliveryOptionDelivery = "delivery"
	DeliveryOptionPickup   = "pickup"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

const (
	DeliveryStatusPending   = "pending"
	DeliveryStatusOnTheWay  = "on_the_way"
	DeliveryStatusDelivered = "delivered"
)

// OrderedItem is one line of the snapshot taken at order-creation time.
// Price is the fixed-point unit price the customer saw; later dish edits
// never touch it.
type OrderedItem struct {
	DishID         uint   `json:"dish_id"`
	DishName       string `json:"dish_name"`
	RestaurantName string `json:"restaurant_name"`
	Quantity       int    `json:"quantity"`
	Price          string `json:"price"`
}

// OrderedItems is stored as a JSON column on orders.
type OrderedItems []OrderedItem

func (i OrderedItems) Value() (driver.Value, error) {
	if i == nil {
		i = OrderedItems{}
	}
	b, err := json.Marshal(i)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (i *OrderedItems) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*i = OrderedItems{}
		return nil
	case []byte:
		return json.Unmarshal(v, i)
	case string:
		return json.Unmarshal([]byte(v), i)
	default:
		return fmt.Errorf("unsupported ordered items column type %T", src)
	}
}

type Order struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	TotalPrice          decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_price"`
	OrderStatus         string          `gorm:"not null;default:pending" json:"order_status"`
	DeliveryOption      string          `gorm:"not null;default:delivery" json:"delivery_option"`
	OrderDeliveryStatus string          `gorm:"not null;default:pending" json:"order_delivery_status"`
	Items               OrderedItems    `gorm:"type:text" json:"ordered_items"`

	UserID uint `gorm:"index;not null" json:"-"`
	User   User `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	RestaurantID uint       `gorm:"index;not null" json:"-"`
	Restaurant   Restaurant `json:"-"`

	DeliveryAddressID *uint    `json:"-"`
	DeliveryAddress   *Address `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}

// RestaurantNames returns the unique restaurant names recorded in the
// line-item snapshot, in first-seen order. Old rows written before carts
// were locked to one restaurant can span several.
func (o *Order) RestaurantNames() []string {
	return lo.Uniq(lo.Map(o.Items, func(it OrderedItem, _ int) string { return it.RestaurantName }))
}

// DeliveryAddressText is nil for pickup orders regardless of any stored
// address reference; for delivery orders it is the formatted address, or
// nil when no address was recorded.
func (o *Order) DeliveryAddressText() *string {
	if o.DeliveryOption == DeliveryOptionPickup {
		return nil
	}
	if o.DeliveryAddress == nil {
		return nil
	}
	s := o.DeliveryAddress.Formatted()
	return &s
}
