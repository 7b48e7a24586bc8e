package repository

import (
	"errors"

	"backend/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// ListForUser loads the cart lines with the dish and its restaurant, which
// the projection reads names and prices from.
func (r *CartRepository) ListForUser(userID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := r.DB.Where("user_id = ?", userID).
		Preload("Dish").
		Preload("Dish.Restaurant").
		Order("id").
		Find(&items).Error
	return items, err
}

// Upsert merges into an existing line for the same dish, else creates one.
func (r *CartRepository) Upsert(tx *gorm.DB, userID, dishID uint, qty int) error {
	var line entity.CartItem
	err := tx.Where("user_id = ? AND dish_id = ?", userID, dishID).First(&line).Error
	if err == nil {
		line.Quantity += qty
		return tx.Omit("User", "Dish").Save(&line).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	line = entity.CartItem{UserID: userID, DishID: dishID, Quantity: qty}
	return tx.Create(&line).Error
}

func (r *CartRepository) UpdateQty(tx *gorm.DB, userID, itemID uint, qty int) error {
	if qty <= 0 {
		return r.Remove(tx, userID, itemID)
	}
	return tx.Model(&entity.CartItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("quantity", qty).Error
}

func (r *CartRepository) Remove(tx *gorm.DB, userID, itemID uint) error {
	return tx.Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) Clear(tx *gorm.DB, userID uint) error {
	return tx.Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
}
