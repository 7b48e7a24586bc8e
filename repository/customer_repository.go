package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type CustomerRepository struct{ DB *gorm.DB }

func NewCustomerRepository(db *gorm.DB) *CustomerRepository { return &CustomerRepository{DB: db} }

func (r *CustomerRepository) FindByID(id uint) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.DB.Preload("User").First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) FindByUserID(userID uint) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.DB.Preload("User").Where("user_id = ?", userID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
