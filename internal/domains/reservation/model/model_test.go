package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	cartModel "resort/internal/domains/cart/model"
	"resort/internal/domains/reservation/model"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input string
		want  model.Status
		known bool
	}{
		{input: "Pending", want: model.StatusPending, known: true},
		{input: "Confirmed", want: model.StatusConfirmed, known: true},
		{input: "Cancelled", want: model.StatusCancelled, known: true},
		{input: "Completed", want: model.StatusCompleted, known: true},
		{input: "Bogus", known: false},
		{input: "pending", known: false},
		{input: "", known: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, known := model.ParseStatus(tt.input)

			assert.Equal(t, tt.known, known)
			if tt.known {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestStatus_CanTransition(t *testing.T) {
	tests := []struct {
		name string
		from model.Status
		to   model.Status
		want bool
	}{
		{name: "pending to confirmed", from: model.StatusPending, to: model.StatusConfirmed, want: true},
		{name: "pending to cancelled", from: model.StatusPending, to: model.StatusCancelled, want: true},
		{name: "pending to completed", from: model.StatusPending, to: model.StatusCompleted, want: false},
		{name: "confirmed to completed", from: model.StatusConfirmed, to: model.StatusCompleted, want: true},
		{name: "confirmed to cancelled", from: model.StatusConfirmed, to: model.StatusCancelled, want: false},
		{name: "cancelled is terminal", from: model.StatusCancelled, to: model.StatusPending, want: false},
		{name: "completed is terminal", from: model.StatusCompleted, to: model.StatusConfirmed, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}

func TestStatus_Cancellable(t *testing.T) {
	assert.True(t, model.StatusPending.Cancellable())
	assert.False(t, model.StatusConfirmed.Cancellable())
	assert.False(t, model.StatusCancelled.Cancellable())
	assert.False(t, model.StatusCompleted.Cancellable())
}

func TestLineItems_ScanValue(t *testing.T) {
	items := model.LineItems{
		{AmenityID: "a-1", Name: "Private Pool Villa", PriceCents: 360000, OriginalPriceCents: 450000, Quantity: 1},
	}

	raw, err := items.Value()
	assert.NoError(t, err)

	var scanned model.LineItems
	assert.NoError(t, scanned.Scan(raw))
	assert.Equal(t, items, scanned)

	var fromNil model.LineItems
	assert.NoError(t, fromNil.Scan(nil))
	assert.Nil(t, fromNil)

	assert.Error(t, scanned.Scan(42))
}

func TestLineItems_FromCart(t *testing.T) {
	var items model.LineItems = []cartModel.LineItem{
		{Name: "Spa Treatment", PriceCents: 64000, Quantity: 2},
	}

	assert.Len(t, items, 1)
	assert.Equal(t, "Spa Treatment", items[0].Name)
}
