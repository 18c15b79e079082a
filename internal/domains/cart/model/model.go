package model

import (
	"time"

	amenityModel "resort/internal/domains/amenity/model"
)

const (
	EntityName = "cart"

	// DiscountRatePercent is the storefront-wide booking discount. It is
	// applied once, when a line is added, and the discounted price stays
	// locked on the line even if the catalog price changes later.
	DiscountRatePercent = 20
)

// ApplyDiscount returns the discounted price in centavos, rounded half up.
func ApplyDiscount(priceCents int64) int64 {
	return (priceCents*(100-DiscountRatePercent) + 50) / 100
}

type LineItem struct {
	AmenityID          string `json:"amenity_id"`
	Name               string `json:"name"`
	Type               string `json:"type"`
	Image              string `json:"image"`
	PriceCents         int64  `json:"price_cents"`
	OriginalPriceCents int64  `json:"original_price_cents"`
	Quantity           int    `json:"quantity"`
}

type Cart struct {
	UserID    string     `json:"user_id"`
	Items     []LineItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// AddItem queues an amenity. Adding a name already in the cart bumps its
// quantity; the discounted price recorded on first add is kept.
func (c *Cart) AddItem(amenity amenityModel.Amenity, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	for i := range c.Items {
		if c.Items[i].Name == amenity.Name {
			c.Items[i].Quantity += quantity

			return
		}
	}

	c.Items = append(c.Items, LineItem{
		AmenityID:          amenity.ID,
		Name:               amenity.Name,
		Type:               amenity.Type,
		Image:              amenity.Image,
		PriceCents:         ApplyDiscount(amenity.PriceCents),
		OriginalPriceCents: amenity.PriceCents,
		Quantity:           quantity,
	})
}

// SetQuantity updates the line with the given name. A quantity of zero
// removes the line. Returns false when no such line exists.
func (c *Cart) SetQuantity(name string, quantity int) bool {
	for i := range c.Items {
		if c.Items[i].Name == name {
			if quantity == 0 {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)

				return true
			}

			c.Items[i].Quantity = quantity

			return true
		}
	}

	return false
}

// RemoveItem drops the line with the given name. Returns false when no such
// line exists.
func (c *Cart) RemoveItem(name string) bool {
	for i := range c.Items {
		if c.Items[i].Name == name {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)

			return true
		}
	}

	return false
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// TotalCents is the payable total, summed over locked discounted prices.
func (c *Cart) TotalCents() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.PriceCents * int64(item.Quantity)
	}

	return total
}

// OriginalTotalCents is what the cart would cost without the discount.
// A stored line missing its original price falls back to the discounted
// price so the total never undercuts what is actually payable.
func (c *Cart) OriginalTotalCents() int64 {
	var total int64
	for _, item := range c.Items {
		original := item.OriginalPriceCents
		if original == 0 {
			original = item.PriceCents
		}

		total += original * int64(item.Quantity)
	}

	return total
}

// DiscountCents is never negative: the original total falls back to the
// discounted price for lines that carry no original price.
func (c *Cart) DiscountCents() int64 {
	return c.OriginalTotalCents() - c.TotalCents()
}

func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}

	return count
}
