package services

import (
	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type CustomerService struct {
	DB       *gorm.DB
	Repo     *repository.CustomerRepository
	Profiles *ProfileService[*entity.Customer]
}

func NewCustomerService(db *gorm.DB, repo *repository.CustomerRepository, users *repository.UserRepository) *CustomerService {
	return &CustomerService{
		DB:       db,
		Repo:     repo,
		Profiles: NewProfileService[*entity.Customer](db, users, entity.RoleCustomer),
	}
}

type CustomerRegisterIn struct {
	Account        AccountIn `json:"user" binding:"required"`
	DateOfBirth    string    `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
	City           string    `json:"city"`
	State          string    `json:"state"`
	Country        string    `json:"country"`
	Phone          string    `json:"phone"`
	ProfilePicture string    `json:"profile_picture"`
}

type CustomerUpdateIn struct {
	Account        *AccountPatch `json:"user"`
	DateOfBirth    *string       `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
	City           *string       `json:"city"`
	State          *string       `json:"state"`
	Country        *string       `json:"country"`
	Phone          *string       `json:"phone"`
	ProfilePicture *string       `json:"profile_picture"`
}

type CustomerView struct {
	ID             uint        `json:"id"`
	User           AccountView `json:"user"`
	DateOfBirth    string      `json:"date_of_birth"`
	City           string      `json:"city"`
	State          string      `json:"state"`
	Country        string      `json:"country"`
	Phone          string      `json:"phone"`
	ProfilePicture string      `json:"profile_picture"`
}

func NewCustomerView(c *entity.Customer) CustomerView {
	return CustomerView{
		ID:             c.ID,
		User:           NewAccountView(&c.User),
		DateOfBirth:    c.DateOfBirth,
		City:           c.City,
		State:          c.State,
		Country:        c.Country,
		Phone:          c.Phone,
		ProfilePicture: c.ProfilePicture,
	}
}

func (s *CustomerService) Register(in *CustomerRegisterIn) (*CustomerView, error) {
	c := &entity.Customer{
		DateOfBirth:    in.DateOfBirth,
		City:           in.City,
		State:          in.State,
		Country:        in.Country,
		Phone:          in.Phone,
		ProfilePicture: in.ProfilePicture,
	}
	if err := s.Profiles.Register(c, in.Account); err != nil {
		return nil, err
	}
	created, err := s.Repo.FindByID(c.ID)
	if err != nil {
		return nil, err
	}
	v := NewCustomerView(created)
	return &v, nil
}

// Update overwrites only the supplied fields. The nested account patch, if
// present, is validated and applied first; any failure there rejects the
// whole update.
func (s *CustomerService) Update(userID uint, in *CustomerUpdateIn) (*CustomerView, error) {
	c, err := s.Repo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	err = s.Profiles.Update(c, in.Account, func() {
		if in.DateOfBirth != nil {
			c.DateOfBirth = *in.DateOfBirth
		}
		if in.City != nil {
			c.City = *in.City
		}
		if in.State != nil {
			c.State = *in.State
		}
		if in.Country != nil {
			c.Country = *in.Country
		}
		if in.Phone != nil {
			c.Phone = *in.Phone
		}
		if in.ProfilePicture != nil {
			c.ProfilePicture = *in.ProfilePicture
		}
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.Repo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	v := NewCustomerView(updated)
	return &v, nil
}

func (s *CustomerService) GetByUserID(userID uint) (*CustomerView, error) {
	c, err := s.Repo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	v := NewCustomerView(c)
	return &v, nil
}
