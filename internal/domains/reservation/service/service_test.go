package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"resort/config"
	kafkaMocks "resort/infras/kafka/mocks"
	"resort/infras/otel/mocks"
	s3Mocks "resort/infras/s3/mocks"
	amenityModel "resort/internal/domains/amenity/model"
	cartMocks "resort/internal/domains/cart/mocks"
	cartModel "resort/internal/domains/cart/model"
	"resort/internal/domains/notification/center"
	notificationModel "resort/internal/domains/notification/model"
	reservationMocks "resort/internal/domains/reservation/mocks"
	"resort/internal/domains/reservation/model"
	"resort/internal/domains/reservation/model/dto"
	"resort/internal/domains/reservation/service"
	gDto "resort/shared/dto"
	"resort/shared/failure"
	gModel "resort/shared/model"
)

const testUserID = "u-1"

type fixture struct {
	svc           service.Reservation
	repo          *reservationMocks.MockReservation
	intents       *reservationMocks.MockCancelIntent
	carts         *cartMocks.MockCart
	producer      *kafkaMocks.MockClient
	notifications center.Center
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:          reservationMocks.NewMockReservation(ctrl),
		intents:       reservationMocks.NewMockCancelIntent(ctrl),
		carts:         cartMocks.NewMockCart(ctrl),
		producer:      kafkaMocks.NewMockClient(ctrl),
		notifications: center.NewWithTTL(time.Minute),
	}

	cfg := &config.Config{}
	cfg.Reservation.CancelWindowSeconds = 30
	cfg.Kafka.Topics.ReservationEvents = "reservation-events"
	cfg.External.S3.BucketName = "resort-media"

	f.svc = service.New(f.repo, f.intents, f.carts, f.notifications, f.producer, s3Mocks.NewMockS3(gomock.NewController(t)), cfg, mocks.NewOtel())

	return f
}

func validSubmit() dto.SubmitReservationRequest {
	return dto.SubmitReservationRequest{
		FullName:      "Maria Santos",
		Email:         "maria@example.com",
		Phone:         "+63 912 345 6789",
		CheckIn:       "2026-10-01",
		CheckOut:      "2026-10-03",
		Guests:        4,
		PaymentMethod: "Cash",
	}
}

func cartWithVilla() cartModel.Cart {
	cart := cartModel.Cart{UserID: testUserID}
	cart.AddItem(amenityModel.Amenity{ID: "a-1", Name: "Private Pool Villa", PriceCents: 450000}, 1)

	return cart
}

func TestReservationService_Submit(t *testing.T) {
	t.Run("snapshots discounted cart and clears it", func(t *testing.T) {
		f := newFixture(t)

		f.carts.EXPECT().
			Get(gomock.Any(), testUserID).
			Return(cartWithVilla(), nil)

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r model.Reservation) error {
				assert.Equal(t, model.StatusPending, r.Status)
				assert.Equal(t, int64(360000), r.TotalCents)
				assert.Equal(t, int64(450000), r.OriginalTotalCents)
				assert.Len(t, r.Items, 1)

				return nil
			})

		f.carts.EXPECT().
			Delete(gomock.Any(), testUserID).
			Return(nil)

		f.producer.EXPECT().
			SendMessages(gomock.Any(), "reservation-events", gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := f.svc.Submit(context.Background(), testUserID, validSubmit())

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, string(model.StatusPending), res.Status)
		assert.Equal(t, int64(360000), res.TotalCents)

		pushed := f.notifications.List(testUserID)
		assert.Len(t, pushed, 1)
		assert.Equal(t, notificationModel.SeveritySuccess, pushed[0].Severity)
	})

	t.Run("missing fields aggregate into one error", func(t *testing.T) {
		f := newFixture(t)

		req := validSubmit()
		req.Email = ""
		req.Phone = ""

		_, err := f.svc.Submit(context.Background(), testUserID, req)

		assert.EqualError(t, err, "Please fill in all required fields")
		assert.Equal(t, 400, failure.GetCode(err))

		pushed := f.notifications.List(testUserID)
		assert.Len(t, pushed, 1)
		assert.Equal(t, notificationModel.SeverityError, pushed[0].Severity)
	})

	t.Run("gcash without screenshot is rejected", func(t *testing.T) {
		f := newFixture(t)

		req := validSubmit()
		req.PaymentMethod = "GCash"

		_, err := f.svc.Submit(context.Background(), testUserID, req)

		assert.EqualError(t, err, "Please upload a screenshot of your GCash payment")
	})

	t.Run("gcash with screenshot goes through", func(t *testing.T) {
		f := newFixture(t)

		req := validSubmit()
		req.PaymentMethod = "GCash"
		req.EvidenceURL = "https://cdn.example.com/evidence/abc.png"

		f.carts.EXPECT().
			Get(gomock.Any(), testUserID).
			Return(cartWithVilla(), nil)

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		f.carts.EXPECT().
			Delete(gomock.Any(), testUserID).
			Return(nil)

		f.producer.EXPECT().
			SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		_, err := f.svc.Submit(context.Background(), testUserID, req)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("empty cart is rejected", func(t *testing.T) {
		f := newFixture(t)

		f.carts.EXPECT().
			Get(gomock.Any(), testUserID).
			Return(cartModel.Cart{UserID: testUserID}, nil)

		_, err := f.svc.Submit(context.Background(), testUserID, validSubmit())

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestReservationService_GetAll(t *testing.T) {
	rows := []model.Reservation{
		{ID: "r-1", UserID: testUserID, Status: model.StatusPending},
		{ID: "r-2", UserID: testUserID, Status: model.StatusConfirmed},
		{ID: "r-3", UserID: testUserID, Status: model.Status("Bogus")},
	}

	t.Run("hides unclassifiable statuses", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(3, nil)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(rows, nil)

		res, err := f.svc.GetAll(context.Background(), testUserID, "all", gDtoParams())

		assert.NoError(t, err)
		assert.Len(t, res.Reservations, 2)
		assert.Equal(t, 2, res.TotalData)
	})

	t.Run("unknown status filter is rejected", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.GetAll(context.Background(), testUserID, "Bogus", gDtoParams())

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("exact status filter", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(rows[:1], nil)

		res, err := f.svc.GetAll(context.Background(), testUserID, "Pending", gDtoParams())

		assert.NoError(t, err)
		assert.Len(t, res.Reservations, 1)
	})
}

func TestReservationService_TwoStepCancel(t *testing.T) {
	pending := model.Reservation{
		ID:     "r-1",
		UserID: testUserID,
		Status: model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedBy: testUserID,
		},
	}

	t.Run("request marks intent without cancelling", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(pending, nil)

		f.intents.EXPECT().
			Mark(gomock.Any(), testUserID, "r-1", 30*time.Second).
			Return(nil)

		res, err := f.svc.RequestCancel(context.Background(), testUserID, "r-1")

		assert.NoError(t, err)
		assert.True(t, res.AwaitsConfirm)
		assert.Equal(t, string(model.StatusPending), res.Status)
	})

	t.Run("confirm without a live intent is rejected", func(t *testing.T) {
		f := newFixture(t)

		f.intents.EXPECT().
			Take(gomock.Any(), testUserID, "r-1").
			Return(false, nil)

		_, err := f.svc.ConfirmCancel(context.Background(), testUserID, "r-1")

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("confirm with intent cancels", func(t *testing.T) {
		f := newFixture(t)

		f.intents.EXPECT().
			Take(gomock.Any(), testUserID, "r-1").
			Return(true, nil)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(pending, nil)

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		f.producer.EXPECT().
			SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := f.svc.ConfirmCancel(context.Background(), testUserID, "r-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, string(model.StatusCancelled), res.Status)
		assert.Len(t, f.notifications.List(testUserID), 1)
	})

	t.Run("confirmed reservation cannot start a cancel", func(t *testing.T) {
		f := newFixture(t)

		confirmed := pending
		confirmed.Status = model.StatusConfirmed

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(confirmed, nil)

		_, err := f.svc.RequestCancel(context.Background(), testUserID, "r-1")

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("someone else's reservation is invisible", func(t *testing.T) {
		f := newFixture(t)

		other := pending
		other.UserID = "u-2"

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(other, nil)

		_, err := f.svc.RequestCancel(context.Background(), testUserID, "r-1")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestReservationService_UpdateStatus(t *testing.T) {
	pending := model.Reservation{ID: "r-1", UserID: testUserID, Status: model.StatusPending}

	t.Run("pending to confirmed", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(pending, nil)

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		f.producer.EXPECT().
			SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := f.svc.UpdateStatus(context.Background(), "r-1", dto.UpdateStatusRequest{Status: "Confirmed"})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("confirmed to cancelled is forbidden", func(t *testing.T) {
		f := newFixture(t)

		confirmed := pending
		confirmed.Status = model.StatusConfirmed

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(confirmed, nil)

		err := f.svc.UpdateStatus(context.Background(), "r-1", dto.UpdateStatusRequest{Status: "Cancelled"})

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("unknown target status", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.UpdateStatus(context.Background(), "r-1", dto.UpdateStatusRequest{Status: "Bogus"})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("missing reservation", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Reservation{}, nil)

		err := f.svc.UpdateStatus(context.Background(), "r-1", dto.UpdateStatusRequest{Status: "Confirmed"})

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func gDtoParams() gDto.QueryParams {
	return gDto.QueryParams{Page: 1, Limit: 10}
}
