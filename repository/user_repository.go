package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByLogin matches username or email, for login.
func (r *UserRepository) FindByLogin(login string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("username = ? OR email = ?", login, login).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// UsernameTaken reports whether another account already uses username.
// excludeID skips the account being updated.
func (r *UserRepository) UsernameTaken(tx *gorm.DB, username string, excludeID uint) (bool, error) {
	var cnt int64
	err := tx.Model(&entity.User{}).
		Where("username = ? AND id <> ?", username, excludeID).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *UserRepository) EmailTaken(tx *gorm.DB, email string, excludeID uint) (bool, error) {
	var cnt int64
	err := tx.Model(&entity.User{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *UserRepository) Update(tx *gorm.DB, id uint, updates map[string]any) error {
	return tx.Model(&entity.User{}).Where("id = ?", id).Updates(updates).Error
}

// Delete hard-deletes the account; FK cascades remove the owning profile,
// cart lines and favorites.
func (r *UserRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.User{}, id).Error
}
