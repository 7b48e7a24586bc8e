package services

import (
	"encoding/json"
	"testing"

	"backend/entity"
	"backend/pkg/apperr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type checkoutFixture struct {
	env      *testEnv
	customer *CustomerView
	owner    *RestaurantView
	dish     *DishView
	address  *entity.Address
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()
	env := newTestEnv(t)
	owner := env.registerRestaurant(t, "trattoria", "La Trattoria")
	customer := env.registerCustomer(t, "alice")
	dish := env.addDish(t, owner.User.ID, "Margherita", "9.50")

	addr, err := env.Addresses.Create(customer.User.ID, &AddressIn{
		Address:    "12 Rua Nova",
		City:       "Lisbon",
		PostalCode: "1000-001",
	})
	require.NoError(t, err)

	return &checkoutFixture{env: env, customer: customer, owner: owner, dish: dish, address: addr}
}

func TestCheckoutDeliveryOrder(t *testing.T) {
	f := newCheckoutFixture(t)
	require.NoError(t, f.env.Cart.Add(f.customer.User.ID, &AddToCartIn{DishID: f.dish.ID, Quantity: 3}))

	v, err := f.env.Orders.CreateFromCart(f.customer.User.ID, &CheckoutIn{
		DeliveryOption:    entity.DeliveryOptionDelivery,
		DeliveryAddressID: &f.address.ID,
	})
	require.NoError(t, err)

	require.Equal(t, "28.50", v.TotalPrice)
	require.Equal(t, "La Trattoria", v.RestaurantName)
	require.Equal(t, entity.OrderStatusPending, v.OrderStatus)
	require.Equal(t, entity.DeliveryStatusPending, v.OrderDeliveryStatus)
	require.NotNil(t, v.DeliveryAddress)
	require.Equal(t, "12 Rua Nova, Lisbon, 1000-001", *v.DeliveryAddress)

	require.Len(t, v.OrderedItems, 1)
	require.Equal(t, "Margherita", v.OrderedItems[0].DishName)
	require.Equal(t, "9.50", v.OrderedItems[0].Price)
	require.Equal(t, 3, v.OrderedItems[0].Quantity)
	require.Equal(t, "La Trattoria", v.OrderedItems[0].RestaurantName)

	// checkout empties the cart
	items, err := f.env.Cart.List(f.customer.User.ID)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestCheckoutWireFieldNames(t *testing.T) {
	f := newCheckoutFixture(t)
	require.NoError(t, f.env.Cart.Add(f.customer.User.ID, &AddToCartIn{DishID: f.dish.ID}))

	v, err := f.env.Orders.CreateFromCart(f.customer.User.ID, &CheckoutIn{
		DeliveryOption:    entity.DeliveryOptionDelivery,
		DeliveryAddressID: &f.address.ID,
	})
	require.NoError(t, err)

	b, err := json.Marshal(v)
	require.NoError(t, err)
	require.Equal(t, "9.50", gjson.GetBytes(b, "total_price").String())
	require.Equal(t, "La Trattoria", gjson.GetBytes(b, "restaurant_name").String())
	require.Equal(t, "pending", gjson.GetBytes(b, "order_delivery_status").String())
	require.Equal(t, "Margherita", gjson.GetBytes(b, "ordered_items.0.dish_name").String())
	require.True(t, gjson.GetBytes(b, "delivery_address").Exists())
}

func TestPickupOrderHasNullDeliveryAddress(t *testing.T) {
	f := newCheckoutFixture(t)

	// even with an address reference on the row, pickup projects null
	addrID := f.address.ID
	o := entity.Order{
		TotalPrice:          decimal.RequireFromString("9.50"),
		OrderStatus:         entity.OrderStatusPending,
		DeliveryOption:      entity.DeliveryOptionPickup,
		OrderDeliveryStatus: entity.DeliveryStatusPending,
		Items: entity.OrderedItems{
			{DishID: f.dish.ID, DishName: "Margherita", RestaurantName: "La Trattoria", Quantity: 1, Price: "9.50"},
		},
		UserID:            f.customer.User.ID,
		RestaurantID:      f.owner.ID,
		DeliveryAddressID: &addrID,
	}
	require.NoError(t, f.env.DB.Omit("User", "Restaurant", "DeliveryAddress").Create(&o).Error)

	v, err := f.env.Orders.DetailForUser(f.customer.User.ID, o.ID)
	require.NoError(t, err)
	require.Nil(t, v.DeliveryAddress)

	b, err := json.Marshal(v)
	require.NoError(t, err)
	require.Equal(t, gjson.Null, gjson.GetBytes(b, "delivery_address").Type)
}

func TestCheckoutValidation(t *testing.T) {
	f := newCheckoutFixture(t)

	// empty cart
	_, err := f.env.Orders.CreateFromCart(f.customer.User.ID, &CheckoutIn{DeliveryOption: entity.DeliveryOptionPickup})
	require.Error(t, err)
	ve, ok := apperr.AsValidation(err)
	require.True(t, ok)
	require.Contains(t, ve.Fields, "cart")

	require.NoError(t, f.env.Cart.Add(f.customer.User.ID, &AddToCartIn{DishID: f.dish.ID}))

	// delivery without an address
	_, err = f.env.Orders.CreateFromCart(f.customer.User.ID, &CheckoutIn{DeliveryOption: entity.DeliveryOptionDelivery})
	require.Error(t, err)
	ve, ok = apperr.AsValidation(err)
	require.True(t, ok)
	require.Contains(t, ve.Fields, "delivery_address")

	// someone else's address
	other := f.env.registerCustomer(t, "bob")
	theirs, err := f.env.Addresses.Create(other.User.ID, &AddressIn{Address: "9 Other St"})
	require.NoError(t, err)
	_, err = f.env.Orders.CreateFromCart(f.customer.User.ID, &CheckoutIn{
		DeliveryOption:    entity.DeliveryOptionDelivery,
		DeliveryAddressID: &theirs.ID,
	})
	require.Error(t, err)

	// nothing written along the way
	orders, err := f.env.Orders.ListForUser(f.customer.User.ID, 0)
	require.NoError(t, err)
	require.Empty(t, orders)
}

func TestCheckoutRejectsMultiRestaurantCart(t *testing.T) {
	f := newCheckoutFixture(t)
	other := f.env.registerRestaurant(t, "sushiya", "Sushi-Ya")
	roll := f.env.addDish(t, other.User.ID, "Maki", "4.00")

	require.NoError(t, f.env.Cart.Add(f.customer.User.ID, &AddToCartIn{DishID: f.dish.ID}))
	require.NoError(t, f.env.Cart.Add(f.customer.User.ID, &AddToCartIn{DishID: roll.ID}))

	_, err := f.env.Orders.CreateFromCart(f.customer.User.ID, &CheckoutIn{DeliveryOption: entity.DeliveryOptionPickup})
	require.Error(t, err)
	ve, ok := apperr.AsValidation(err)
	require.True(t, ok)
	require.Contains(t, ve.Fields, "cart")

	// the cart survives the rejected checkout
	items, err := f.env.Cart.List(f.customer.User.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestOrderSnapshotSurvivesDishEdits(t *testing.T) {
	f := newCheckoutFixture(t)
	require.NoError(t, f.env.Cart.Add(f.customer.User.ID, &AddToCartIn{DishID: f.dish.ID, Quantity: 2}))

	v, err := f.env.Orders.CreateFromCart(f.customer.User.ID, &CheckoutIn{DeliveryOption: entity.DeliveryOptionPickup})
	require.NoError(t, err)

	newName := "Margherita Speciale"
	newPrice := "14.00"
	_, err = f.env.Dishes.Update(f.owner.User.ID, f.dish.ID, &DishUpdateIn{Name: &newName, Price: &newPrice})
	require.NoError(t, err)

	got, err := f.env.Orders.DetailForUser(f.customer.User.ID, v.ID)
	require.NoError(t, err)
	require.Equal(t, "Margherita", got.OrderedItems[0].DishName)
	require.Equal(t, "9.50", got.OrderedItems[0].Price)
	require.Equal(t, "19.00", got.TotalPrice)
}

func TestOrderStatusTransitions(t *testing.T) {
	f := newCheckoutFixture(t)
	require.NoError(t, f.env.Cart.Add(f.customer.User.ID, &AddToCartIn{DishID: f.dish.ID}))
	v, err := f.env.Orders.CreateFromCart(f.customer.User.ID, &CheckoutIn{
		DeliveryOption:    entity.DeliveryOptionDelivery,
		DeliveryAddressID: &f.address.ID,
	})
	require.NoError(t, err)

	ownerID := f.owner.User.ID

	// pending -> completed is not an edge
	err = f.env.Orders.UpdateStatus(ownerID, v.ID, entity.OrderStatusCompleted)
	require.Error(t, err)

	require.NoError(t, f.env.Orders.UpdateStatus(ownerID, v.ID, entity.OrderStatusConfirmed))
	require.NoError(t, f.env.Orders.UpdateStatus(ownerID, v.ID, entity.OrderStatusCompleted))

	// completed is terminal
	err = f.env.Orders.UpdateStatus(ownerID, v.ID, entity.OrderStatusCancelled)
	require.Error(t, err)

	got, err := f.env.Orders.DetailForUser(f.customer.User.ID, v.ID)
	require.NoError(t, err)
	require.Equal(t, entity.OrderStatusCompleted, got.OrderStatus)
}

func TestDeliveryStatusTransitions(t *testing.T) {
	f := newCheckoutFixture(t)
	require.NoError(t, f.env.Cart.Add(f.customer.User.ID, &AddToCartIn{DishID: f.dish.ID}))
	v, err := f.env.Orders.CreateFromCart(f.customer.User.ID, &CheckoutIn{
		DeliveryOption:    entity.DeliveryOptionDelivery,
		DeliveryAddressID: &f.address.ID,
	})
	require.NoError(t, err)

	ownerID := f.owner.User.ID

	// cannot skip on_the_way
	err = f.env.Orders.UpdateDeliveryStatus(ownerID, v.ID, entity.DeliveryStatusDelivered)
	require.Error(t, err)

	require.NoError(t, f.env.Orders.UpdateDeliveryStatus(ownerID, v.ID, entity.DeliveryStatusOnTheWay))
	require.NoError(t, f.env.Orders.UpdateDeliveryStatus(ownerID, v.ID, entity.DeliveryStatusDelivered))
}

func TestPickupOrdersHaveNoDeliveryFlow(t *testing.T) {
	f := newCheckoutFixture(t)
	require.NoError(t, f.env.Cart.Add(f.customer.User.ID, &AddToCartIn{DishID: f.dish.ID}))
	v, err := f.env.Orders.CreateFromCart(f.customer.User.ID, &CheckoutIn{DeliveryOption: entity.DeliveryOptionPickup})
	require.NoError(t, err)

	err = f.env.Orders.UpdateDeliveryStatus(f.owner.User.ID, v.ID, entity.DeliveryStatusOnTheWay)
	require.Error(t, err)
	ve, ok := apperr.AsValidation(err)
	require.True(t, ok)
	require.Contains(t, ve.Fields, "order_delivery_status")
}

func TestOrderStatusUpdateIsOwnerScoped(t *testing.T) {
	f := newCheckoutFixture(t)
	other := f.env.registerRestaurant(t, "sushiya", "Sushi-Ya")

	require.NoError(t, f.env.Cart.Add(f.customer.User.ID, &AddToCartIn{DishID: f.dish.ID}))
	v, err := f.env.Orders.CreateFromCart(f.customer.User.ID, &CheckoutIn{DeliveryOption: entity.DeliveryOptionPickup})
	require.NoError(t, err)

	err = f.env.Orders.UpdateStatus(other.User.ID, v.ID, entity.OrderStatusConfirmed)
	require.Error(t, err)
}

func TestOrderListsArePerUserAndPerRestaurant(t *testing.T) {
	f := newCheckoutFixture(t)
	require.NoError(t, f.env.Cart.Add(f.customer.User.ID, &AddToCartIn{DishID: f.dish.ID}))
	_, err := f.env.Orders.CreateFromCart(f.customer.User.ID, &CheckoutIn{DeliveryOption: entity.DeliveryOptionPickup})
	require.NoError(t, err)

	mine, err := f.env.Orders.ListForUser(f.customer.User.ID, 0)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	theirs, err := f.env.Orders.ListForOwner(f.owner.User.ID, 0)
	require.NoError(t, err)
	require.Len(t, theirs, 1)

	other := f.env.registerCustomer(t, "bob")
	none, err := f.env.Orders.ListForUser(other.User.ID, 0)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestExportXLSX(t *testing.T) {
	f := newCheckoutFixture(t)
	require.NoError(t, f.env.Cart.Add(f.customer.User.ID, &AddToCartIn{DishID: f.dish.ID, Quantity: 2}))
	_, err := f.env.Orders.CreateFromCart(f.customer.User.ID, &CheckoutIn{DeliveryOption: entity.DeliveryOptionPickup})
	require.NoError(t, err)

	xl, err := f.env.Orders.ExportXLSX(f.owner.User.ID, 0)
	require.NoError(t, err)
	defer xl.Close()

	rows, err := xl.GetRows(xl.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 2, "header plus one order")
	require.Equal(t, "ID", rows[0][0])
	require.Equal(t, "19.00", rows[1][2])
}
