package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"resort/config"
	"resort/infras/kafka"
	"resort/infras/otel"
	"resort/infras/s3"
	cartRepository "resort/internal/domains/cart/repository"
	"resort/internal/domains/notification/center"
	notificationModel "resort/internal/domains/notification/model"
	"resort/internal/domains/reservation/model"
	"resort/internal/domains/reservation/model/dto"
	"resort/internal/domains/reservation/repository"
	"resort/shared"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
	"resort/shared/timezone"
)

const (
	msgMissingFields   = "Please fill in all required fields"
	msgMissingEvidence = "Please upload a screenshot of your GCash payment"
	msgSubmitted       = "Reservation submitted. We will confirm it shortly"
	msgCancelled       = "Your reservation has been cancelled"
)

type Reservation interface {
	Submit(ctx context.Context, userID string, req dto.SubmitReservationRequest) (dto.ReservationResponse, error)
	UploadEvidence(ctx context.Context, userID string, req dto.UploadEvidenceRequest) (dto.UploadEvidenceResponse, error)
	Get(ctx context.Context, userID, id string) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, userID, status string, params gDto.QueryParams) (dto.GetReservationsResponse, error)
	RequestCancel(ctx context.Context, userID, id string) (dto.CancelResponse, error)
	ConfirmCancel(ctx context.Context, userID, id string) (dto.CancelResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) error
}

type serviceImpl struct {
	repo          repository.Reservation
	intents       repository.CancelIntent
	carts         cartRepository.Cart
	notifications center.Center
	producer      kafka.Client
	s3            s3.S3
	cfg           *config.Config
	otel          otel.Otel
}

func New(
	repo repository.Reservation,
	intents repository.CancelIntent,
	carts cartRepository.Cart,
	notifications center.Center,
	producer kafka.Client,
	s3 s3.S3,
	cfg *config.Config,
	ot otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:          repo,
		intents:       intents,
		carts:         carts,
		notifications: notifications,
		producer:      producer,
		s3:            s3,
		cfg:           cfg,
		otel:          ot,
	}
}

// Submit turns the user's cart into a pending reservation. The cart snapshot
// is frozen on the reservation row and the cart is emptied afterwards.
func (s *serviceImpl) Submit(ctx context.Context, userID string, req dto.SubmitReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SubmitReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	if missing := req.MissingRequired(); len(missing) > 0 {
		log.Warn().Strs("missing", missing).Msg("reservation form incomplete")
		s.notifications.Push(userID, msgMissingFields, notificationModel.SeverityError)

		return res, failure.BadRequestFromString(msgMissingFields) // nolint:wrapcheck
	}

	if req.PaymentMethod == string(model.PaymentMethodGCash) && req.EvidenceURL == "" {
		s.notifications.Push(userID, msgMissingEvidence, notificationModel.SeverityError)

		return res, failure.BadRequestFromString(msgMissingEvidence) // nolint:wrapcheck
	}

	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return res, fmt.Errorf("failed to get cart: %w", err)
	}

	if cart.IsEmpty() {
		return res, failure.BadRequestFromString("your cart is empty") // nolint:wrapcheck
	}

	reservation, err := req.ToModel(userID, cart)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, reservation); err != nil {
		log.Error().Err(err).Msg("failed to insert reservation")

		return res, fmt.Errorf("failed to insert reservation: %w", err)
	}

	if err = s.carts.Delete(ctx, userID); err != nil {
		// The reservation is already stored. A stale cart is an
		// inconvenience, not a failure.
		log.Error().Err(err).Str("userID", userID).Msg("failed to clear cart after submit")
		err = nil
	}

	s.notifications.Push(userID, msgSubmitted, notificationModel.SeveritySuccess)
	s.publishEvent(ctx, model.EventTypeSubmitted, reservation)

	res.FromModel(reservation)

	return res, nil
}

// UploadEvidence stores a GCash payment screenshot and returns its URL for
// the submit call.
func (s *serviceImpl) UploadEvidence(ctx context.Context, userID string, req dto.UploadEvidenceRequest) (res dto.UploadEvidenceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadEvidence")
	defer scope.End()
	defer scope.TraceIfError(err)

	filename := uuid.NewString()

	parts := strings.Split(req.Screenshot.Filename, ".")
	if len(parts) > 1 {
		filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
	}

	directory := s.cfg.External.S3.EvidenceDir
	if directory == constant.Empty {
		directory = model.EntityName
	}

	url, err := s.s3.UploadFile(ctx, s.cfg.External.S3.BucketName, directory, req.ScreenshotFile, req.Screenshot, filename)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("failed to upload payment evidence")

		return res, fmt.Errorf("failed to upload payment evidence: %w", err)
	}

	res.URL = url

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, userID, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.ownedReservation(ctx, userID, id)
	if err != nil {
		return res, err
	}

	res.FromModel(reservation)

	return res, nil
}

// GetAll lists the user's reservations, optionally narrowed to one status.
// "all" (or empty) returns everything. Rows carrying a status outside the
// lifecycle are dropped rather than shown raw.
func (s *serviceImpl) GetAll(ctx context.Context, userID, status string, params gDto.QueryParams) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllReservations")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	}

	if status != "" && status != "all" {
		parsed, known := model.ParseStatus(status)
		if !known {
			return res, failure.BadRequestFromString("unknown reservation status") // nolint:wrapcheck
		}

		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    string(parsed),
			Table:    model.TableName,
		})
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	reservations, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	classified := make([]model.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if _, known := model.ParseStatus(string(r.Status)); known {
			classified = append(classified, r)
		}
	}

	if dropped := len(reservations) - len(classified); dropped > 0 {
		log.Warn().Int("dropped", dropped).Msg("reservations with unclassifiable status hidden from listing")
		total -= dropped
	}

	res.FromModels(classified, total, params.Limit)

	return res, nil
}

// RequestCancel starts the two step cancel flow. The reservation stays
// Pending until the guest confirms within the cancel window.
func (s *serviceImpl) RequestCancel(ctx context.Context, userID, id string) (res dto.CancelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RequestCancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.ownedReservation(ctx, userID, id)
	if err != nil {
		return res, err
	}

	if !reservation.Status.Cancellable() {
		return res, failure.Conflict("only pending reservations can be cancelled") // nolint:wrapcheck
	}

	window := time.Duration(s.cfg.Reservation.CancelWindowSeconds) * time.Second

	if err = s.intents.Mark(ctx, userID, id, window); err != nil {
		return res, fmt.Errorf("failed to mark cancel intent: %w", err)
	}

	return dto.CancelResponse{
		ID:            id,
		Status:        string(reservation.Status),
		AwaitsConfirm: true,
	}, nil
}

// ConfirmCancel completes the flow. Without a live intent marker the call is
// rejected, so a stray confirm can never cancel on its own.
func (s *serviceImpl) ConfirmCancel(ctx context.Context, userID, id string) (res dto.CancelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConfirmCancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	found, err := s.intents.Take(ctx, userID, id)
	if err != nil {
		return res, fmt.Errorf("failed to take cancel intent: %w", err)
	}

	if !found {
		return res, failure.Conflict("no pending cancellation for this reservation") // nolint:wrapcheck
	}

	reservation, err := s.ownedReservation(ctx, userID, id)
	if err != nil {
		return res, err
	}

	if !reservation.Status.CanTransition(model.StatusCancelled) {
		return res, failure.Conflict("only pending reservations can be cancelled") // nolint:wrapcheck
	}

	if err = s.transition(ctx, &reservation, model.StatusCancelled, userID); err != nil {
		return res, err
	}

	s.notifications.Push(userID, msgCancelled, notificationModel.SeverityInfo)
	s.publishEvent(ctx, model.EventTypeCancelled, reservation)

	return dto.CancelResponse{
		ID:     id,
		Status: string(model.StatusCancelled),
	}, nil
}

// UpdateStatus is the staff-side transition: confirming a pending
// reservation or completing a confirmed one.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	target, known := model.ParseStatus(req.Status)
	if !known {
		return failure.BadRequestFromString("unknown reservation status") // nolint:wrapcheck
	}

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if !reservation.Status.CanTransition(target) {
		return failure.Conflict(fmt.Sprintf("cannot move reservation from %s to %s", reservation.Status, target)) // nolint:wrapcheck
	}

	if err = s.transition(ctx, &reservation, target, user); err != nil {
		return err
	}

	s.notifications.Push(reservation.UserID, fmt.Sprintf("Your reservation is now %s", target), notificationModel.SeverityInfo)
	s.publishEvent(ctx, model.EventTypeStatusChanged, reservation)

	return nil
}

func (s *serviceImpl) ownedReservation(ctx context.Context, userID, id string) (model.Reservation, error) {
	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return reservation, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty || reservation.UserID != userID {
		return reservation, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	return reservation, nil
}

func (s *serviceImpl) transition(ctx context.Context, reservation *model.Reservation, to model.Status, user string) error {
	updated := map[string]any{
		model.FieldStatus: string(to),
		"modified_at":     timezone.Now(),
		"modified_by":     user,
	}

	if err := s.repo.Update(ctx, updated, shared.FilterByID(reservation.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update reservation status")

		return fmt.Errorf("failed to update reservation status: %w", err)
	}

	reservation.Status = to

	return nil
}

func (s *serviceImpl) publishEvent(ctx context.Context, eventType string, reservation model.Reservation) {
	event := model.Event{
		Type:          eventType,
		ReservationID: reservation.ID,
		UserID:        reservation.UserID,
		Status:        reservation.Status,
		TotalCents:    reservation.TotalCents,
		OccurredAt:    timezone.Now(),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		err := s.producer.SendMessages(c, s.cfg.Kafka.Topics.ReservationEvents, kafka.Message{
			Key:   reservation.ID,
			Value: event,
		})
		if err != nil {
			log.Error().Err(err).Str("type", eventType).Msg("failed to publish reservation event")
		}
	}()
}
