package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Omit("User", "Restaurant", "DeliveryAddress").Create(o).Error
}

func (r *OrderRepository) ListForUser(userID uint, limit int) ([]entity.Order, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []entity.Order
	err := r.DB.Where("user_id = ?", userID).
		Preload("Restaurant").
		Preload("DeliveryAddress").
		Order("id DESC").Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *OrderRepository) GetForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).
		Preload("Restaurant").
		Preload("DeliveryAddress").
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListForRestaurant(restID uint, limit int) ([]entity.Order, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []entity.Order
	err := r.DB.Where("restaurant_id = ?", restID).
		Preload("Restaurant").
		Preload("DeliveryAddress").
		Order("id DESC").Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *OrderRepository) GetForRestaurant(restID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("id = ? AND restaurant_id = ?", orderID, restID).
		Preload("Restaurant").
		Preload("DeliveryAddress").
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateStatusFromTo flips order_status only when the current value still
// matches from, so two concurrent transitions cannot both win.
func (r *OrderRepository) UpdateStatusFromTo(tx *gorm.DB, orderID uint, from, to string) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND order_status = ?", orderID, from).
		Update("order_status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *OrderRepository) UpdateDeliveryStatusFromTo(tx *gorm.DB, orderID uint, from, to string) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND order_delivery_status = ?", orderID, from).
		Update("order_delivery_status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
