package services

import (
	"path/filepath"
	"testing"
	"time"

	"backend/configs"
	"backend/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testTTL = time.Hour

// newTestDB opens a throwaway sqlite database with the full schema applied.
// foreign_keys must be on or the cascade assertions test nothing.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=1"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, configs.Migrate(db))
	return db
}

type testEnv struct {
	DB          *gorm.DB
	Users       *repository.UserRepository
	Customers   *CustomerService
	Restaurants *RestaurantService
	Dishes      *DishService
	Cart        *CartService
	Orders      *OrderService
	Addresses   *AddressService
	Favorites   *FavoriteService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)

	users := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	dishRepo := repository.NewDishRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	return &testEnv{
		DB:          db,
		Users:       users,
		Customers:   NewCustomerService(db, customerRepo, users),
		Restaurants: NewRestaurantService(db, restaurantRepo, users),
		Dishes:      NewDishService(db, dishRepo, restaurantRepo),
		Cart:        NewCartService(db, cartRepo, dishRepo),
		Orders:      NewOrderService(db, orderRepo, cartRepo, addressRepo, restaurantRepo),
		Addresses:   NewAddressService(addressRepo),
		Favorites:   NewFavoriteService(favoriteRepo, restaurantRepo),
	}
}

func (e *testEnv) registerCustomer(t *testing.T, username string) *CustomerView {
	t.Helper()
	v, err := e.Customers.Register(&CustomerRegisterIn{
		Account: AccountIn{Username: username, Email: username + "@example.com", Password: "secret1"},
		City:    "Lisbon",
		Country: "PT",
	})
	require.NoError(t, err)
	return v
}

func (e *testEnv) registerRestaurant(t *testing.T, username, name string) *RestaurantView {
	t.Helper()
	v, err := e.Restaurants.Register(&RestaurantRegisterIn{
		Account:     AccountIn{Username: username, Email: username + "@example.com", Password: "secret1"},
		Name:        name,
		Address:     "1 Main St",
		CuisineType: "italian",
	})
	require.NoError(t, err)
	return v
}

func (e *testEnv) addDish(t *testing.T, ownerUserID uint, name, price string) *DishView {
	t.Helper()
	v, err := e.Dishes.Create(ownerUserID, &DishIn{Name: name, Price: price, Category: "main"})
	require.NoError(t, err)
	return v
}
