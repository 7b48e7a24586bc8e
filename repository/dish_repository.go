package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type DishRepository struct{ DB *gorm.DB }

func NewDishRepository(db *gorm.DB) *DishRepository { return &DishRepository{DB: db} }

func (r *DishRepository) Create(tx *gorm.DB, d *entity.Dish) error {
	return tx.Create(d).Error
}

func (r *DishRepository) Save(tx *gorm.DB, d *entity.Dish) error {
	return tx.Omit("Restaurant").Save(d).Error
}

func (r *DishRepository) FindByID(id uint) (*entity.Dish, error) {
	var d entity.Dish
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DishRepository) ListByRestaurant(restID uint) ([]entity.Dish, error) {
	var out []entity.Dish
	err := r.DB.Where("restaurant_id = ?", restID).Order("id").Find(&out).Error
	return out, err
}

func (r *DishRepository) Delete(dishID, restID uint) (int64, error) {
	res := r.DB.Where("id = ? AND restaurant_id = ?", dishID, restID).Delete(&entity.Dish{})
	return res.RowsAffected, res.Error
}
