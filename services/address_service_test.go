package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAddressCRUDIsUserScoped(t *testing.T) {
	env := newTestEnv(t)
	alice := env.registerCustomer(t, "alice")
	bob := env.registerCustomer(t, "bob")

	a, err := env.Addresses.Create(alice.User.ID, &AddressIn{
		Address:    "12 Rua Nova",
		City:       "Lisbon",
		PostalCode: "1000-001",
		Country:    "PT",
	})
	require.NoError(t, err)

	_, err = env.Addresses.Get(bob.User.ID, a.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = env.Addresses.Delete(bob.User.ID, a.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	city := "Porto"
	updated, err := env.Addresses.Update(alice.User.ID, a.ID, &AddressUpdateIn{City: &city})
	require.NoError(t, err)
	require.Equal(t, "Porto", updated.City)
	require.Equal(t, "12 Rua Nova", updated.Address, "unsupplied fields keep their value")

	list, err := env.Addresses.List(alice.User.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, env.Addresses.Delete(alice.User.ID, a.ID))
	list, err = env.Addresses.List(alice.User.ID)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestAddressFormattedList(t *testing.T) {
	env := newTestEnv(t)
	alice := env.registerCustomer(t, "alice")

	_, err := env.Addresses.Create(alice.User.ID, &AddressIn{Address: "12 Rua Nova", City: "Lisbon"})
	require.NoError(t, err)

	got, err := env.Addresses.Formatted(alice.User.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"12 Rua Nova, Lisbon"}, got)
}
