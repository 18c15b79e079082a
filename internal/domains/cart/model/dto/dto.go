package dto

import (
	"resort/internal/domains/cart/model"
)

type AddItemRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Quantity int    `json:"quantity" validate:"omitempty,min=1"`
}

type UpdateQuantityRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Quantity int    `json:"quantity"`
}

type LineItemResponse struct {
	AmenityID          string `json:"amenity_id"`
	Name               string `json:"name"`
	Type               string `json:"type"`
	Image              string `json:"image"`
	PriceCents         int64  `json:"price_cents"`
	OriginalPriceCents int64  `json:"original_price_cents"`
	Quantity           int    `json:"quantity"`
	SubtotalCents      int64  `json:"subtotal_cents"`
}

type CartResponse struct {
	Items              []LineItemResponse `json:"items"`
	ItemCount          int                `json:"item_count"`
	TotalCents         int64              `json:"total_cents"`
	OriginalTotalCents int64              `json:"original_total_cents"`
	DiscountCents      int64              `json:"discount_cents"`
}

func (r *CartResponse) FromModel(cart model.Cart) {
	r.Items = make([]LineItemResponse, len(cart.Items))
	for i, item := range cart.Items {
		r.Items[i] = LineItemResponse{
			AmenityID:          item.AmenityID,
			Name:               item.Name,
			Type:               item.Type,
			Image:              item.Image,
			PriceCents:         item.PriceCents,
			OriginalPriceCents: item.OriginalPriceCents,
			Quantity:           item.Quantity,
			SubtotalCents:      item.PriceCents * int64(item.Quantity),
		}
	}

	r.ItemCount = cart.ItemCount()
	r.TotalCents = cart.TotalCents()
	r.OriginalTotalCents = cart.OriginalTotalCents()
	r.DiscountCents = cart.DiscountCents()
}
