package dto

import (
	"mime/multipart"

	"resort/internal/domains/amenity/model"
	"resort/shared"
	gDto "resort/shared/dto"
	gModel "resort/shared/model"
	"resort/shared/timezone"

	"github.com/google/uuid"
)

type CreateAmenityRequest struct {
	Name        string                `json:"name"        validate:"required,max=100"`
	Description string                `json:"description" validate:"omitempty,max=500"`
	Capacity    int                   `json:"capacity"    validate:"required,min=1"`
	PriceCents  int64                 `json:"price_cents" validate:"min=0"`
	Type        string                `json:"type"        validate:"omitempty,max=50"`
	Image       *multipart.FileHeader `json:"image"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile   multipart.File        `json:"-"`
	Available   *bool                 `json:"available"   validate:"omitempty"`
}

func (c *CreateAmenityRequest) ToModel(user string, imageURL string) model.Amenity {
	available := true
	if c.Available != nil {
		available = *c.Available
	}

	return model.Amenity{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		Capacity:    c.Capacity,
		PriceCents:  c.PriceCents,
		Available:   available,
		Type:        c.Type,
		Image:       imageURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateAmenityRequest struct {
	Name        *string               `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description *string               `db:"description" json:"description" validate:"omitempty,max=500"`
	Capacity    *int                  `db:"capacity"    json:"capacity"    validate:"omitempty,min=1"`
	PriceCents  *int64                `db:"price_cents" json:"price_cents" validate:"omitempty,min=0"`
	Type        *string               `db:"type"        json:"type"        validate:"omitempty,max=50"`
	Image       *multipart.FileHeader `json:"image"     validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile   multipart.File        `json:"-"`
	Available   *bool                 `db:"available"   json:"available"   validate:"omitempty"`
}

type AmenityResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
	PriceCents  int64  `json:"price_cents"`
	Available   bool   `json:"available"`
	Type        string `json:"type"`
	Image       string `json:"image"`
	gDto.Metadata
}

func (r *AmenityResponse) FromModel(model model.Amenity) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Capacity = model.Capacity
	r.PriceCents = model.PriceCents
	r.Available = model.Available
	r.Type = model.Type
	r.Image = model.Image
	r.Metadata.FromModel(model.Metadata)
}

type GetAmenitiesResponse struct {
	Amenities []AmenityResponse `json:"amenities"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`

	// Fallback marks a response assembled from the built-in default list
	// because the catalog could not be read.
	Fallback bool `json:"fallback,omitempty"`
}

func (r *GetAmenitiesResponse) FromModels(models []model.Amenity, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Amenities = make([]AmenityResponse, len(models))
	for i, mod := range models {
		r.Amenities[i].FromModel(mod)
	}
}
