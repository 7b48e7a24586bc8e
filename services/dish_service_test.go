package services

import (
	"bytes"
	"testing"

	"backend/pkg/apperr"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "10", want: "10.00"},
		{in: "9.5", want: "9.50"},
		{in: "9.99", want: "9.99"},
		{in: "10.100", want: "10.10"}, // trailing zeros are fine, it still equals 10.10
		{in: " 7.25 ", want: "7.25"},
		{in: "0", want: "0.00"},
		{in: "10.105", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "-0.01", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := ParsePrice(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				_, ok := apperr.AsValidation(err)
				require.True(t, ok)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, d.StringFixed(2))
		})
	}
}

func TestDishCreateRendersFixedPointPrice(t *testing.T) {
	env := newTestEnv(t)
	owner := env.registerRestaurant(t, "trattoria", "La Trattoria")

	v, err := env.Dishes.Create(owner.User.ID, &DishIn{Name: "Margherita", Price: "9.5", Category: "pizza"})
	require.NoError(t, err)
	require.Equal(t, "9.50", v.Price)
	require.Equal(t, owner.ID, v.Restaurant)

	got, err := env.Dishes.ListByRestaurant(owner.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "9.50", got[0].Price)
}

func TestDishUpdateIsOwnerScoped(t *testing.T) {
	env := newTestEnv(t)
	owner := env.registerRestaurant(t, "trattoria", "La Trattoria")
	other := env.registerRestaurant(t, "sushiya", "Sushi-Ya")
	dish := env.addDish(t, owner.User.ID, "Margherita", "9.50")

	newName := "Marinara"
	_, err := env.Dishes.Update(other.User.ID, dish.ID, &DishUpdateIn{Name: &newName})
	require.Error(t, err)

	badPrice := "9.999"
	_, err = env.Dishes.Update(owner.User.ID, dish.ID, &DishUpdateIn{Price: &badPrice})
	require.Error(t, err)

	goodPrice := "11.00"
	updated, err := env.Dishes.Update(owner.User.ID, dish.ID, &DishUpdateIn{Name: &newName, Price: &goodPrice})
	require.NoError(t, err)
	require.Equal(t, "Marinara", updated.Name)
	require.Equal(t, "11.00", updated.Price)
}

func TestDishDeleteIsOwnerScoped(t *testing.T) {
	env := newTestEnv(t)
	owner := env.registerRestaurant(t, "trattoria", "La Trattoria")
	other := env.registerRestaurant(t, "sushiya", "Sushi-Ya")
	dish := env.addDish(t, owner.User.ID, "Margherita", "9.50")

	err := env.Dishes.Delete(other.User.ID, dish.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, env.Dishes.Delete(owner.User.ID, dish.ID))
	got, err := env.Dishes.ListByRestaurant(owner.ID)
	require.NoError(t, err)
	require.Empty(t, got)
}

func importSheet(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	xl := excelize.NewFile()
	sheet := xl.GetSheetName(0)
	for r, row := range rows {
		for c, val := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, xl.SetCellValue(sheet, cell, val))
		}
	}
	buf := &bytes.Buffer{}
	require.NoError(t, xl.Write(buf))
	return buf
}

func TestImportXLSXSkipsBadRows(t *testing.T) {
	env := newTestEnv(t)
	owner := env.registerRestaurant(t, "trattoria", "La Trattoria")

	buf := importSheet(t, [][]any{
		{"name", "price", "description", "category", "ingredients"},
		{"Margherita", "9.50", "classic", "pizza", "tomato, mozzarella"},
		{"", "5.00"},                // no name
		{"Mystery", "not-a-price"}, // bad price
		{"Tiramisu", "4.25", "", "dessert"},
	})

	imported, skipped, err := env.Dishes.ImportXLSX(owner.User.ID, buf)
	require.NoError(t, err)
	require.Equal(t, 2, imported)
	require.Len(t, skipped, 2)

	got, err := env.Dishes.ListByRestaurant(owner.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestImportXLSXRejectsEmptySheet(t *testing.T) {
	env := newTestEnv(t)
	owner := env.registerRestaurant(t, "trattoria", "La Trattoria")

	buf := importSheet(t, [][]any{{"name", "price"}})
	_, _, err := env.Dishes.ImportXLSX(owner.User.ID, buf)
	require.Error(t, err)
	_, ok := apperr.AsValidation(err)
	require.True(t, ok)
}
