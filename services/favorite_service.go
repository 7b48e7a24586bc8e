package services

import (
	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

type FavoriteService struct {
	Repo        *repository.FavoriteRepository
	Restaurants *repository.RestaurantRepository
}

func NewFavoriteService(repo *repository.FavoriteRepository, restaurants *repository.RestaurantRepository) *FavoriteService {
	return &FavoriteService{Repo: repo, Restaurants: restaurants}
}

type FavoriteView struct {
	ID             uint   `json:"id"`
	Restaurant     uint   `json:"restaurant"`
	RestaurantName string `json:"restaurant_name"`
}

func NewFavoriteView(f *entity.Favorite) FavoriteView {
	return FavoriteView{
		ID:             f.ID,
		Restaurant:     f.RestaurantID,
		RestaurantName: f.Restaurant.Name,
	}
}

// Add favorites a restaurant for the user. One row per pair; a second add
// is rejected, backed up by the unique index.
func (s *FavoriteService) Add(userID, restID uint) (*FavoriteView, error) {
	ok, err := s.Restaurants.Exists(restID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Validation("restaurant", "restaurant not found")
	}

	exists, err := s.Repo.Exists(userID, restID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Validation("restaurant", "already favorited")
	}

	f := &entity.Favorite{UserID: userID, RestaurantID: restID}
	if err := s.Repo.Create(f); err != nil {
		return nil, err
	}

	rest, err := s.Restaurants.FindByID(restID)
	if err != nil {
		return nil, err
	}
	f.Restaurant = *rest
	v := NewFavoriteView(f)
	return &v, nil
}

func (s *FavoriteService) Remove(userID, restID uint) error {
	affected, err := s.Repo.Delete(userID, restID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *FavoriteService) List(userID uint) ([]FavoriteView, error) {
	rows, err := s.Repo.ListForUser(userID)
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(f entity.Favorite, _ int) FavoriteView { return NewFavoriteView(&f) }), nil
}
