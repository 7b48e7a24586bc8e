package services

import (
	"backend/entity"
	"backend/repository"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

type AddressService struct {
	Repo *repository.AddressRepository
}

func NewAddressService(repo *repository.AddressRepository) *AddressService {
	return &AddressService{Repo: repo}
}

type AddressIn struct {
	Address    string `json:"address" binding:"required"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type AddressUpdateIn struct {
	Address    *string `json:"address"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	PostalCode *string `json:"postal_code"`
	Country    *string `json:"country"`
}

func (s *AddressService) Create(userID uint, in *AddressIn) (*entity.Address, error) {
	a := &entity.Address{
		Address:    in.Address,
		City:       in.City,
		State:      in.State,
		PostalCode: in.PostalCode,
		Country:    in.Country,
		UserID:     userID,
	}
	if err := s.Repo.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AddressService) Update(userID, addressID uint, in *AddressUpdateIn) (*entity.Address, error) {
	a, err := s.Repo.FindForUser(userID, addressID)
	if err != nil {
		return nil, err
	}
	if in.Address != nil {
		a.Address = *in.Address
	}
	if in.City != nil {
		a.City = *in.City
	}
	if in.State != nil {
		a.State = *in.State
	}
	if in.PostalCode != nil {
		a.PostalCode = *in.PostalCode
	}
	if in.Country != nil {
		a.Country = *in.Country
	}
	if err := s.Repo.Save(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AddressService) List(userID uint) ([]entity.Address, error) {
	return s.Repo.ListForUser(userID)
}

func (s *AddressService) Get(userID, addressID uint) (*entity.Address, error) {
	return s.Repo.FindForUser(userID, addressID)
}

func (s *AddressService) Delete(userID, addressID uint) error {
	affected, err := s.Repo.Delete(userID, addressID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Formatted helps callers that only need the display strings.
func (s *AddressService) Formatted(userID uint) ([]string, error) {
	rows, err := s.Repo.ListForUser(userID)
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(a entity.Address, _ int) string { return a.Formatted() }), nil
}
