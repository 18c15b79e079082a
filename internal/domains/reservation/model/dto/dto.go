package dto

import (
	"mime/multipart"
	"time"

	"github.com/google/uuid"

	cartModel "resort/internal/domains/cart/model"
	"resort/internal/domains/reservation/model"
	"resort/shared"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	gModel "resort/shared/model"
	"resort/shared/timezone"
)

// SubmitReservationRequest carries the reservation form. Required-field
// checks are aggregated in the service so the guest gets a single message
// instead of one error per field.
type SubmitReservationRequest struct {
	FullName       string `json:"full_name"       validate:"omitempty,max=100"`
	Email          string `json:"email"           validate:"omitempty,email,max=100"`
	Phone          string `json:"phone"           validate:"omitempty,max=20"`
	CheckIn        string `json:"check_in"        validate:"omitempty"`
	CheckOut       string `json:"check_out"       validate:"omitempty"`
	Guests         int    `json:"guests"          validate:"omitempty,min=1"`
	PaymentMethod  string `json:"payment_method"  validate:"omitempty,oneof=Cash GCash"`
	SpecialRequest string `json:"special_request" validate:"omitempty,max=5000"`
	EvidenceURL    string `json:"evidence_url"    validate:"omitempty,max=500"`
}

// MissingRequired lists the empty required fields. Special request and
// payment evidence are the only optional inputs.
func (r *SubmitReservationRequest) MissingRequired() []string {
	var missing []string

	if r.FullName == "" {
		missing = append(missing, "full_name")
	}

	if r.Email == "" {
		missing = append(missing, "email")
	}

	if r.Phone == "" {
		missing = append(missing, "phone")
	}

	if r.CheckIn == "" {
		missing = append(missing, "check_in")
	}

	if r.CheckOut == "" {
		missing = append(missing, "check_out")
	}

	if r.Guests < 1 {
		missing = append(missing, "guests")
	}

	if r.PaymentMethod == "" {
		missing = append(missing, "payment_method")
	}

	return missing
}

func (r *SubmitReservationRequest) ToModel(userID string, cart cartModel.Cart) (model.Reservation, error) {
	checkIn, err := time.Parse(constant.BookingDateFormat, r.CheckIn)
	if err != nil {
		return model.Reservation{}, err
	}

	checkOut, err := time.Parse(constant.BookingDateFormat, r.CheckOut)
	if err != nil {
		return model.Reservation{}, err
	}

	return model.Reservation{
		ID:                 uuid.NewString(),
		UserID:             userID,
		FullName:           r.FullName,
		Email:              r.Email,
		Phone:              r.Phone,
		CheckIn:            checkIn,
		CheckOut:           checkOut,
		Guests:             r.Guests,
		PaymentMethod:      model.PaymentMethod(r.PaymentMethod),
		SpecialRequest:     r.SpecialRequest,
		EvidenceURL:        r.EvidenceURL,
		Status:             model.StatusPending,
		Items:              model.LineItems(cart.Items),
		TotalCents:         cart.TotalCents(),
		OriginalTotalCents: cart.OriginalTotalCents(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}, nil
}

type UploadEvidenceRequest struct {
	Screenshot     *multipart.FileHeader `json:"screenshot" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	ScreenshotFile multipart.File        `json:"-"`
}

type UploadEvidenceResponse struct {
	URL string `json:"url"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Confirmed Cancelled Completed"`
}

type LineItemResponse struct {
	AmenityID          string `json:"amenity_id"`
	Name               string `json:"name"`
	Type               string `json:"type"`
	Image              string `json:"image"`
	PriceCents         int64  `json:"price_cents"`
	OriginalPriceCents int64  `json:"original_price_cents"`
	Quantity           int    `json:"quantity"`
}

type ReservationResponse struct {
	ID                 string             `json:"id"`
	UserID             string             `json:"user_id"`
	FullName           string             `json:"full_name"`
	Email              string             `json:"email"`
	Phone              string             `json:"phone"`
	CheckIn            string             `json:"check_in"`
	CheckOut           string             `json:"check_out"`
	Guests             int                `json:"guests"`
	PaymentMethod      string             `json:"payment_method"`
	SpecialRequest     string             `json:"special_request"`
	EvidenceURL        string             `json:"evidence_url"`
	Status             string             `json:"status"`
	Items              []LineItemResponse `json:"items"`
	TotalCents         int64              `json:"total_cents"`
	OriginalTotalCents int64              `json:"original_total_cents"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(res model.Reservation) {
	r.ID = res.ID
	r.UserID = res.UserID
	r.FullName = res.FullName
	r.Email = res.Email
	r.Phone = res.Phone
	r.CheckIn = res.CheckIn.Format(constant.BookingDateFormat)
	r.CheckOut = res.CheckOut.Format(constant.BookingDateFormat)
	r.Guests = res.Guests
	r.PaymentMethod = string(res.PaymentMethod)
	r.SpecialRequest = res.SpecialRequest
	r.EvidenceURL = res.EvidenceURL
	r.Status = string(res.Status)

	r.Items = make([]LineItemResponse, len(res.Items))
	for i, item := range res.Items {
		r.Items[i] = LineItemResponse{
			AmenityID:          item.AmenityID,
			Name:               item.Name,
			Type:               item.Type,
			Image:              item.Image,
			PriceCents:         item.PriceCents,
			OriginalPriceCents: item.OriginalPriceCents,
			Quantity:           item.Quantity,
		}
	}

	r.TotalCents = res.TotalCents
	r.OriginalTotalCents = res.OriginalTotalCents
	r.Metadata.FromModel(res.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

// CancelResponse reports the two step cancel flow. Confirm is true after the
// first request: the reservation is not cancelled until the guest confirms.
type CancelResponse struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	AwaitsConfirm bool   `json:"awaits_confirm"`
}
