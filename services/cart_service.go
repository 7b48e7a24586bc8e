package services

import (
	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

type CartService struct {
	DB     *gorm.DB
	Repo   *repository.CartRepository
	Dishes *repository.DishRepository
}

func NewCartService(db *gorm.DB, repo *repository.CartRepository, dishes *repository.DishRepository) *CartService {
	return &CartService{DB: db, Repo: repo, Dishes: dishes}
}

// CartItemView derives dish name, price and restaurant name through the
// Dish relation at read time; none of that is stored on the line.
type CartItemView struct {
	ID             uint   `json:"id"`
	DishName       string `json:"dish_name"`
	Price          string `json:"price"`
	Quantity       int    `json:"quantity"`
	RestaurantName string `json:"restaurant_name"`
}

func NewCartItemView(it *entity.CartItem) CartItemView {
	return CartItemView{
		ID:             it.ID,
		DishName:       it.Dish.Name,
		Price:          it.Dish.Price.StringFixed(2),
		Quantity:       it.Quantity,
		RestaurantName: it.Dish.Restaurant.Name,
	}
}

func (s *CartService) List(userID uint) ([]CartItemView, error) {
	items, err := s.Repo.ListForUser(userID)
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(it entity.CartItem, _ int) CartItemView {
		return NewCartItemView(&it)
	}), nil
}

type AddToCartIn struct {
	DishID   uint `json:"dish" binding:"required"`
	Quantity int  `json:"quantity" binding:"omitempty,min=1"`
}

// Add merges into an existing line for the same dish.
func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	if in.Quantity <= 0 {
		in.Quantity = 1
	}
	if _, err := s.Dishes.FindByID(in.DishID); err != nil {
		return apperr.Validation("dish", "dish not found")
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Upsert(tx, userID, in.DishID, in.Quantity)
	})
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (s *CartService) UpdateQuantity(userID, itemID uint, qty int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.UpdateQty(tx, userID, itemID, qty)
	})
}

func (s *CartService) Remove(userID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Remove(tx, userID, itemID)
	})
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Clear(tx, userID)
	})
}
