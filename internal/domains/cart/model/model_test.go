package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	amenityModel "resort/internal/domains/amenity/model"
	"resort/internal/domains/cart/model"
)

func TestApplyDiscount(t *testing.T) {
	tests := []struct {
		name  string
		price int64
		want  int64
	}{
		{name: "pool villa", price: 450000, want: 360000},
		{name: "kayak rental", price: 50000, want: 40000},
		{name: "rounds half up", price: 3, want: 2},
		{name: "zero", price: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.ApplyDiscount(tt.price))
		})
	}
}

func TestCart_AddItem(t *testing.T) {
	poolVilla := amenityModel.Amenity{ID: "a-1", Name: "Pool Villa", PriceCents: 450000}

	t.Run("locks discounted price on first add", func(t *testing.T) {
		cart := model.Cart{UserID: "u-1"}
		cart.AddItem(poolVilla, 1)

		assert.Len(t, cart.Items, 1)
		assert.Equal(t, int64(360000), cart.Items[0].PriceCents)
		assert.Equal(t, int64(450000), cart.Items[0].OriginalPriceCents)
	})

	t.Run("same name bumps quantity and keeps locked price", func(t *testing.T) {
		cart := model.Cart{UserID: "u-1"}
		cart.AddItem(poolVilla, 1)

		// Catalog price changed after the first add.
		repriced := poolVilla
		repriced.PriceCents = 600000
		cart.AddItem(repriced, 2)

		assert.Len(t, cart.Items, 1)
		assert.Equal(t, 3, cart.Items[0].Quantity)
		assert.Equal(t, int64(360000), cart.Items[0].PriceCents)
	})

	t.Run("quantity below one clamps to one", func(t *testing.T) {
		cart := model.Cart{UserID: "u-1"}
		cart.AddItem(poolVilla, 0)

		assert.Equal(t, 1, cart.Items[0].Quantity)
	})
}

func TestCart_SetQuantity(t *testing.T) {
	amenity := amenityModel.Amenity{ID: "a-2", Name: "Spa Treatment", PriceCents: 80000}

	t.Run("updates quantity", func(t *testing.T) {
		cart := model.Cart{UserID: "u-1"}
		cart.AddItem(amenity, 1)

		assert.True(t, cart.SetQuantity("Spa Treatment", 4))
		assert.Equal(t, 4, cart.Items[0].Quantity)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		cart := model.Cart{UserID: "u-1"}
		cart.AddItem(amenity, 2)

		assert.True(t, cart.SetQuantity("Spa Treatment", 0))
		assert.True(t, cart.IsEmpty())
	})

	t.Run("unknown name", func(t *testing.T) {
		cart := model.Cart{UserID: "u-1"}

		assert.False(t, cart.SetQuantity("Helipad", 2))
	})
}

func TestCart_RemoveItem(t *testing.T) {
	cart := model.Cart{UserID: "u-1"}
	cart.AddItem(amenityModel.Amenity{ID: "a-1", Name: "Pool Villa", PriceCents: 450000}, 1)
	cart.AddItem(amenityModel.Amenity{ID: "a-2", Name: "Spa Treatment", PriceCents: 80000}, 1)

	assert.True(t, cart.RemoveItem("Pool Villa"))
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "Spa Treatment", cart.Items[0].Name)

	assert.False(t, cart.RemoveItem("Pool Villa"))
}

func TestCart_Totals(t *testing.T) {
	cart := model.Cart{UserID: "u-1"}
	cart.AddItem(amenityModel.Amenity{ID: "a-1", Name: "Pool Villa", PriceCents: 450000}, 2)
	cart.AddItem(amenityModel.Amenity{ID: "a-2", Name: "Kayak Rental", PriceCents: 50000}, 1)

	assert.Equal(t, int64(760000), cart.TotalCents())
	assert.Equal(t, int64(950000), cart.OriginalTotalCents())
	assert.Equal(t, int64(190000), cart.DiscountCents())
	assert.Equal(t, 3, cart.ItemCount())

	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, int64(0), cart.TotalCents())
}

func TestCart_TotalsWithoutOriginalPrice(t *testing.T) {
	// Stored carts written before original prices were recorded carry only
	// the discounted price per line.
	raw := `{"items":[{"name":"Pool Villa","price_cents":360000,"quantity":1}]}`

	var cart model.Cart
	assert.NoError(t, json.Unmarshal([]byte(raw), &cart))

	assert.Equal(t, int64(360000), cart.TotalCents())
	assert.Equal(t, int64(360000), cart.OriginalTotalCents())
	assert.Equal(t, int64(0), cart.DiscountCents())
	assert.GreaterOrEqual(t, cart.DiscountCents(), int64(0))
}
