package model

import "resort/shared/model"

const (
	TableName  = "amenities"
	EntityName = "amenity"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldCapacity    = "capacity"
	FieldPriceCents  = "price_cents"
	FieldAvailable   = "available"
	FieldType        = "type"
	FieldImage       = "image"
)

// Amenity is a bookable resort facility. Name is unique and doubles as the
// cart-matching key.
type Amenity struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Capacity    int    `db:"capacity"`
	PriceCents  int64  `db:"price_cents"`
	Available   bool   `db:"available"`
	Type        string `db:"type"`
	Image       string `db:"image"`
	model.Metadata
}

// Defaults is the fixed amenity list the storefront falls back to when the
// catalog cannot be read. Prices are in centavos.
func Defaults() []Amenity {
	return []Amenity{
		{Name: "Small Kubo 1", Description: "Small open hut for guests", Capacity: 5, PriceCents: 50000, Available: true, Type: "Kubo"},
		{Name: "Small Kubo 2", Description: "Small open hut for guests", Capacity: 5, PriceCents: 50000, Available: true, Type: "Kubo"},
		{Name: "Large Kubo 1", Description: "Large hut for families", Capacity: 10, PriceCents: 80000, Available: true, Type: "Kubo"},
		{Name: "Adults Swimming Pool", Description: "Large swimming pool for adults", Capacity: 20, PriceCents: 240000, Available: true, Type: "Pool"},
		{Name: "Kids Swimming Pool", Description: "Safe swimming area for children", Capacity: 15, PriceCents: 120000, Available: true, Type: "Pool"},
		{Name: "Private Pool Villa", Description: "Luxury villa with private pool", Capacity: 8, PriceCents: 450000, Available: true, Type: "Villa"},
	}
}
