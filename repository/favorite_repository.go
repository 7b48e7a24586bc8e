package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type FavoriteRepository struct{ DB *gorm.DB }

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository { return &FavoriteRepository{DB: db} }

func (r *FavoriteRepository) Create(f *entity.Favorite) error {
	return r.DB.Create(f).Error
}

func (r *FavoriteRepository) Exists(userID, restID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Favorite{}).
		Where("user_id = ? AND restaurant_id = ?", userID, restID).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *FavoriteRepository) ListForUser(userID uint) ([]entity.Favorite, error) {
	var out []entity.Favorite
	err := r.DB.Where("user_id = ?", userID).
		Preload("Restaurant").
		Order("id").
		Find(&out).Error
	return out, err
}

func (r *FavoriteRepository) Delete(userID, restID uint) (int64, error) {
	res := r.DB.Where("user_id = ? AND restaurant_id = ?", userID, restID).
		Delete(&entity.Favorite{})
	return res.RowsAffected, res.Error
}
