package services

import (
	"errors"
	"time"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

var ErrForbidden = errors.New("forbidden")

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	CartRepo    *repository.CartRepository
	AddressRepo *repository.AddressRepository
	RestRepo    *repository.RestaurantRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	addressRepo *repository.AddressRepository,
	restRepo *repository.RestaurantRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, AddressRepo: addressRepo, RestRepo: restRepo}
}

type CheckoutIn struct {
	DeliveryOption    string `json:"delivery_option" binding:"required,oneof=delivery pickup"`
	DeliveryAddressID *uint  `json:"delivery_address"`
}

// OrderView is the read-only order projection. ordered_items is the stored
// snapshot verbatim; delivery_address is null for pickup orders no matter
// what reference is stored.
type OrderView struct {
	ID                  uint                `json:"id"`
	CreatedAt           time.Time           `json:"created_at"`
	TotalPrice          string              `json:"total_price"`
	RestaurantName      string              `json:"restaurant_name"`
	DeliveryAddress     *string             `json:"delivery_address"`
	OrderedItems        entity.OrderedItems `json:"ordered_items"`
	OrderStatus         string              `json:"order_status"`
	DeliveryOption      string              `json:"delivery_option"`
	OrderDeliveryStatus string              `json:"order_delivery_status"`
}

func NewOrderView(o *entity.Order) OrderView {
	name := o.Restaurant.Name
	if name == "" {
		// old rows may predate the restaurant FK; fall back to the snapshot
		if names := o.RestaurantNames(); len(names) > 0 {
			name = names[0]
		}
	}
	return OrderView{
		ID:                  o.ID,
		CreatedAt:           o.CreatedAt,
		TotalPrice:          o.TotalPrice.StringFixed(2),
		RestaurantName:      name,
		DeliveryAddress:     o.DeliveryAddressText(),
		OrderedItems:        o.Items,
		OrderStatus:         o.OrderStatus,
		DeliveryOption:      o.DeliveryOption,
		OrderDeliveryStatus: o.OrderDeliveryStatus,
	}
}

// CreateFromCart turns the user's cart into an order in one transaction:
// snapshot the lines as they are priced right now, compute the total,
// create the order, clear the cart. Nothing is written if any step fails.
func (s *OrderService) CreateFromCart(userID uint, in *CheckoutIn) (*OrderView, error) {
	lines, err := s.CartRepo.ListForUser(userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, apperr.Validation("cart", "cart is empty")
	}

	restIDs := lo.Uniq(lo.Map(lines, func(l entity.CartItem, _ int) uint { return l.Dish.RestaurantID }))
	if len(restIDs) != 1 {
		return nil, apperr.Validation("cart", "cart spans multiple restaurants")
	}

	var addressID *uint
	if in.DeliveryOption == entity.DeliveryOptionDelivery {
		if in.DeliveryAddressID == nil {
			return nil, apperr.Validation("delivery_address", "required for delivery orders")
		}
		if _, err := s.AddressRepo.FindForUser(userID, *in.DeliveryAddressID); err != nil {
			return nil, apperr.Validation("delivery_address", "address not found")
		}
		addressID = in.DeliveryAddressID
	}

	total := decimal.Zero
	items := make(entity.OrderedItems, 0, len(lines))
	for _, l := range lines {
		total = total.Add(l.Dish.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
		items = append(items, entity.OrderedItem{
			DishID:         l.DishID,
			DishName:       l.Dish.Name,
			RestaurantName: l.Dish.Restaurant.Name,
			Quantity:       l.Quantity,
			Price:          l.Dish.Price.StringFixed(2),
		})
	}

	order := entity.Order{
		TotalPrice:          total,
		OrderStatus:         entity.OrderStatusPending,
		DeliveryOption:      in.DeliveryOption,
		OrderDeliveryStatus: entity.DeliveryStatusPending,
		Items:               items,
		UserID:              userID,
		RestaurantID:        restIDs[0],
		DeliveryAddressID:   addressID,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}
		return s.CartRepo.Clear(tx, userID)
	})
	if err != nil {
		return nil, err
	}

	created, err := s.Repo.GetForUser(userID, order.ID)
	if err != nil {
		return nil, err
	}
	v := NewOrderView(created)
	return &v, nil
}

func (s *OrderService) ListForUser(userID uint, limit int) ([]OrderView, error) {
	rows, err := s.Repo.ListForUser(userID, limit)
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(o entity.Order, _ int) OrderView { return NewOrderView(&o) }), nil
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderView, error) {
	o, err := s.Repo.GetForUser(userID, orderID)
	if err != nil {
		return nil, err
	}
	v := NewOrderView(o)
	return &v, nil
}

func (s *OrderService) ListForOwner(ownerUserID uint, limit int) ([]OrderView, error) {
	rest, err := s.RestRepo.FindByUserID(ownerUserID)
	if err != nil {
		return nil, err
	}
	rows, err := s.Repo.ListForRestaurant(rest.ID, limit)
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(o entity.Order, _ int) OrderView { return NewOrderView(&o) }), nil
}

// orderTransitions is the allowed forward edge set for order_status.
var orderTransitions = map[string][]string{
	entity.OrderStatusPending:   {entity.OrderStatusConfirmed, entity.OrderStatusCancelled},
	entity.OrderStatusConfirmed: {entity.OrderStatusCompleted, entity.OrderStatusCancelled},
}

// UpdateStatus moves an order of the owner's restaurant along the allowed
// transitions. The flip is guarded on the current status so a concurrent
// update cannot double-apply.
func (s *OrderService) UpdateStatus(ownerUserID, orderID uint, to string) error {
	rest, err := s.RestRepo.FindByUserID(ownerUserID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetForRestaurant(rest.ID, orderID)
		if err != nil {
			return err
		}
		if !lo.Contains(orderTransitions[o.OrderStatus], to) {
			return apperr.Validation("order_status",
				"cannot move from "+o.OrderStatus+" to "+to)
		}
		ok, err := s.Repo.UpdateStatusFromTo(tx, o.ID, o.OrderStatus, to)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.Validation("order_status", "status changed concurrently, retry")
		}
		return nil
	})
}

var deliveryTransitions = map[string][]string{
	entity.DeliveryStatusPending:  {entity.DeliveryStatusOnTheWay},
	entity.DeliveryStatusOnTheWay: {entity.DeliveryStatusDelivered},
}

func (s *OrderService) UpdateDeliveryStatus(ownerUserID, orderID uint, to string) error {
	rest, err := s.RestRepo.FindByUserID(ownerUserID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetForRestaurant(rest.ID, orderID)
		if err != nil {
			return err
		}
		if o.DeliveryOption == entity.DeliveryOptionPickup {
			return apperr.Validation("order_delivery_status", "pickup orders have no delivery flow")
		}
		if !lo.Contains(deliveryTransitions[o.OrderDeliveryStatus], to) {
			return apperr.Validation("order_delivery_status",
				"cannot move from "+o.OrderDeliveryStatus+" to "+to)
		}
		ok, err := s.Repo.UpdateDeliveryStatusFromTo(tx, o.ID, o.OrderDeliveryStatus, to)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.Validation("order_delivery_status", "status changed concurrently, retry")
		}
		return nil
	})
}

// ExportXLSX writes the restaurant's recent orders into a spreadsheet for
// the owner to download.
func (s *OrderService) ExportXLSX(ownerUserID uint, limit int) (*excelize.File, error) {
	views, err := s.ListForOwner(ownerUserID, limit)
	if err != nil {
		return nil, err
	}

	xl := excelize.NewFile()
	sheet := xl.GetSheetName(0)
	headers := []string{"ID", "Created", "Total", "Status", "Delivery option", "Delivery status", "Items"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		xl.SetCellValue(sheet, cell, h)
	}

	for row, v := range views {
		itemCount := 0
		for _, it := range v.OrderedItems {
			itemCount += it.Quantity
		}
		values := []any{
			v.ID,
			v.CreatedAt.Format(time.RFC3339),
			v.TotalPrice,
			v.OrderStatus,
			v.DeliveryOption,
			v.OrderDeliveryStatus,
			itemCount,
		}
		for col, val := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			xl.SetCellValue(sheet, cell, val)
		}
	}
	return xl, nil
}
