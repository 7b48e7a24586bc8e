package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type AddressRepository struct{ DB *gorm.DB }

func NewAddressRepository(db *gorm.DB) *AddressRepository { return &AddressRepository{DB: db} }

func (r *AddressRepository) Create(a *entity.Address) error {
	return r.DB.Create(a).Error
}

func (r *AddressRepository) Save(a *entity.Address) error {
	return r.DB.Omit("User").Save(a).Error
}

func (r *AddressRepository) FindForUser(userID, addressID uint) (*entity.Address, error) {
	var a entity.Address
	if err := r.DB.Where("id = ? AND user_id = ?", addressID, userID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AddressRepository) ListForUser(userID uint) ([]entity.Address, error) {
	var out []entity.Address
	err := r.DB.Where("user_id = ?", userID).Order("id").Find(&out).Error
	return out, err
}

func (r *AddressRepository) Delete(userID, addressID uint) (int64, error) {
	res := r.DB.Where("id = ? AND user_id = ?", addressID, userID).Delete(&entity.Address{})
	return res.RowsAffected, res.Error
}
