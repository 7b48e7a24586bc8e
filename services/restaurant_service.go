package services

import (
	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type RestaurantService struct {
	DB       *gorm.DB
	Repo     *repository.RestaurantRepository
	Profiles *ProfileService[*entity.Restaurant]
}

func NewRestaurantService(db *gorm.DB, repo *repository.RestaurantRepository, users *repository.UserRepository) *RestaurantService {
	return &RestaurantService{
		DB:       db,
		Repo:     repo,
		Profiles: NewProfileService[*entity.Restaurant](db, users, entity.RoleRestaurant),
	}
}

type RestaurantRegisterIn struct {
	Account        AccountIn `json:"user" binding:"required"`
	Name           string    `json:"name" binding:"required"`
	Address        string    `json:"address"`
	Description    string    `json:"description"`
	CuisineType    string    `json:"cuisine_type"`
	ProfilePicture string    `json:"profile_picture"`
}

type RestaurantUpdateIn struct {
	Account        *AccountPatch `json:"user"`
	Name           *string       `json:"name"`
	Address        *string       `json:"address"`
	Description    *string       `json:"description"`
	CuisineType    *string       `json:"cuisine_type"`
	ProfilePicture *string       `json:"profile_picture"`
}

type RestaurantView struct {
	ID             uint        `json:"id"`
	User           AccountView `json:"user"`
	Name           string      `json:"name"`
	Address        string      `json:"address"`
	Description    string      `json:"description"`
	CuisineType    string      `json:"cuisine_type"`
	ProfilePicture string      `json:"profile_picture"`
}

func NewRestaurantView(r *entity.Restaurant) RestaurantView {
	return RestaurantView{
		ID:             r.ID,
		User:           NewAccountView(&r.User),
		Name:           r.Name,
		Address:        r.Address,
		Description:    r.Description,
		CuisineType:    r.CuisineType,
		ProfilePicture: r.ProfilePicture,
	}
}

func (s *RestaurantService) Register(in *RestaurantRegisterIn) (*RestaurantView, error) {
	r := &entity.Restaurant{
		Name:           in.Name,
		Address:        in.Address,
		Description:    in.Description,
		CuisineType:    in.CuisineType,
		ProfilePicture: in.ProfilePicture,
	}
	if err := s.Profiles.Register(r, in.Account); err != nil {
		return nil, err
	}
	created, err := s.Repo.FindByID(r.ID)
	if err != nil {
		return nil, err
	}
	v := NewRestaurantView(created)
	return &v, nil
}

func (s *RestaurantService) Update(userID uint, in *RestaurantUpdateIn) (*RestaurantView, error) {
	r, err := s.Repo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	err = s.Profiles.Update(r, in.Account, func() {
		if in.Name != nil {
			r.Name = *in.Name
		}
		if in.Address != nil {
			r.Address = *in.Address
		}
		if in.Description != nil {
			r.Description = *in.Description
		}
		if in.CuisineType != nil {
			r.CuisineType = *in.CuisineType
		}
		if in.ProfilePicture != nil {
			r.ProfilePicture = *in.ProfilePicture
		}
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.Repo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	v := NewRestaurantView(updated)
	return &v, nil
}

func (s *RestaurantService) GetByUserID(userID uint) (*RestaurantView, error) {
	r, err := s.Repo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	v := NewRestaurantView(r)
	return &v, nil
}

func (s *RestaurantService) Get(id uint) (*RestaurantView, error) {
	r, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	v := NewRestaurantView(r)
	return &v, nil
}

func (s *RestaurantService) List(limit int) ([]RestaurantView, error) {
	rows, err := s.Repo.List(limit)
	if err != nil {
		return nil, err
	}
	out := make([]RestaurantView, 0, len(rows))
	for i := range rows {
		out = append(out, NewRestaurantView(&rows[i]))
	}
	return out, nil
}
