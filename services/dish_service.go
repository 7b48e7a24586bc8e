package services

import (
	"fmt"
	"io"
	"strings"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type DishService struct {
	DB          *gorm.DB
	Repo        *repository.DishRepository
	Restaurants *repository.RestaurantRepository
}

func NewDishService(db *gorm.DB, repo *repository.DishRepository, restaurants *repository.RestaurantRepository) *DishService {
	return &DishService{DB: db, Repo: repo, Restaurants: restaurants}
}

type DishIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       string `json:"price" binding:"required"`
	Ingredients string `json:"ingredients"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}

type DishUpdateIn struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	Ingredients *string `json:"ingredients"`
	Image       *string `json:"image"`
	Category    *string `json:"category"`
}

type DishView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Ingredients string `json:"ingredients"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Restaurant  uint   `json:"restaurant"`
}

func NewDishView(d *entity.Dish) DishView {
	return DishView{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price.StringFixed(2),
		Ingredients: d.Ingredients,
		Image:       d.Image,
		Category:    d.Category,
		Restaurant:  d.RestaurantID,
	}
}

// ParsePrice accepts a non-negative decimal worth at most 2 fractional
// digits. "10.100" is fine (it equals 10.10); "10.105" is not.
func ParsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, apperr.Validation("price", "must be a decimal number")
	}
	if d.IsNegative() {
		return decimal.Zero, apperr.Validation("price", "must not be negative")
	}
	if !d.Equal(d.Round(2)) {
		return decimal.Zero, apperr.Validation("price", "must have at most 2 decimal places")
	}
	return d.Round(2), nil
}

// Create adds a dish to the restaurant owned by ownerUserID.
func (s *DishService) Create(ownerUserID uint, in *DishIn) (*DishView, error) {
	rest, err := s.Restaurants.FindByUserID(ownerUserID)
	if err != nil {
		return nil, err
	}

	price, err := ParsePrice(in.Price)
	if err != nil {
		return nil, err
	}

	d := &entity.Dish{
		Name:         in.Name,
		Description:  in.Description,
		Price:        price,
		Ingredients:  in.Ingredients,
		Image:        in.Image,
		Category:     in.Category,
		RestaurantID: rest.ID,
	}
	if err := s.Repo.Create(s.DB, d); err != nil {
		return nil, err
	}
	v := NewDishView(d)
	return &v, nil
}

// Update overwrites only the supplied fields, owner-checked.
func (s *DishService) Update(ownerUserID, dishID uint, in *DishUpdateIn) (*DishView, error) {
	rest, err := s.Restaurants.FindByUserID(ownerUserID)
	if err != nil {
		return nil, err
	}
	d, err := s.Repo.FindByID(dishID)
	if err != nil {
		return nil, err
	}
	if d.RestaurantID != rest.ID {
		return nil, apperr.Validation("id", "dish does not belong to this restaurant")
	}

	if in.Name != nil {
		d.Name = *in.Name
	}
	if in.Description != nil {
		d.Description = *in.Description
	}
	if in.Price != nil {
		price, err := ParsePrice(*in.Price)
		if err != nil {
			return nil, err
		}
		d.Price = price
	}
	if in.Ingredients != nil {
		d.Ingredients = *in.Ingredients
	}
	if in.Image != nil {
		d.Image = *in.Image
	}
	if in.Category != nil {
		d.Category = *in.Category
	}

	if err := s.Repo.Save(s.DB, d); err != nil {
		return nil, err
	}
	v := NewDishView(d)
	return &v, nil
}

func (s *DishService) Delete(ownerUserID, dishID uint) error {
	rest, err := s.Restaurants.FindByUserID(ownerUserID)
	if err != nil {
		return err
	}
	affected, err := s.Repo.Delete(dishID, rest.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *DishService) ListByRestaurant(restID uint) ([]DishView, error) {
	rows, err := s.Repo.ListByRestaurant(restID)
	if err != nil {
		return nil, err
	}
	out := make([]DishView, 0, len(rows))
	for i := range rows {
		out = append(out, NewDishView(&rows[i]))
	}
	return out, nil
}

// ImportXLSX bulk-creates dishes from a spreadsheet: one row per dish,
// columns name | price | description | category | ingredients, first row is
// the header. Rows that fail validation are skipped and reported back.
func (s *DishService) ImportXLSX(ownerUserID uint, src io.Reader) (imported int, skipped []string, err error) {
	rest, err := s.Restaurants.FindByUserID(ownerUserID)
	if err != nil {
		return 0, nil, err
	}

	xl, err := excelize.OpenReader(src)
	if err != nil {
		return 0, nil, apperr.Validation("file", "cannot parse xlsx file")
	}
	defer xl.Close()

	rows, err := xl.GetRows(xl.GetSheetName(0))
	if err != nil || len(rows) < 2 {
		return 0, nil, apperr.Validation("file", "sheet must have a header row and at least one dish")
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for i, row := range rows[1:] {
			rowNo := i + 2
			if len(row) < 2 || strings.TrimSpace(row[0]) == "" {
				skipped = append(skipped, fmt.Sprintf("row %d: missing name or price", rowNo))
				continue
			}
			price, perr := ParsePrice(row[1])
			if perr != nil {
				skipped = append(skipped, fmt.Sprintf("row %d: invalid price %q", rowNo, row[1]))
				continue
			}
			d := entity.Dish{
				Name:         strings.TrimSpace(row[0]),
				Price:        price,
				RestaurantID: rest.ID,
			}
			if len(row) > 2 {
				d.Description = row[2]
			}
			if len(row) > 3 {
				d.Category = row[3]
			}
			if len(row) > 4 {
				d.Ingredients = row[4]
			}
			if err := s.Repo.Create(tx, &d); err != nil {
				return err
			}
			imported++
		}
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	return imported, skipped, nil
}
