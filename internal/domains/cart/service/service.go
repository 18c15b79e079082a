package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"resort/infras/otel"
	amenityService "resort/internal/domains/amenity/service"
	"resort/internal/domains/cart/model"
	"resort/internal/domains/cart/model/dto"
	"resort/internal/domains/cart/repository"
	"resort/internal/domains/notification/center"
	notificationModel "resort/internal/domains/notification/model"
	"resort/shared/constant"
	"resort/shared/failure"
)

type Cart interface {
	Get(ctx context.Context, userID string) (dto.CartResponse, error)
	AddItem(ctx context.Context, userID string, req dto.AddItemRequest) (dto.CartResponse, error)
	UpdateQuantity(ctx context.Context, userID string, req dto.UpdateQuantityRequest) (dto.CartResponse, error)
	RemoveItem(ctx context.Context, userID, name string) (dto.CartResponse, error)
	Clear(ctx context.Context, userID string) error
}

type serviceImpl struct {
	repo          repository.Cart
	amenities     amenityService.Amenity
	notifications center.Center
	otel          otel.Otel
}

func New(repo repository.Cart, amenities amenityService.Amenity, notifications center.Center, ot otel.Otel) Cart {
	return &serviceImpl{
		repo:          repo,
		amenities:     amenities,
		notifications: notifications,
		otel:          ot,
	}
}

func (s *serviceImpl) Get(ctx context.Context, userID string) (res dto.CartResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCart")
	defer scope.End()
	defer scope.TraceIfError(err)

	cart, err := s.repo.Get(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cart")

		return res, fmt.Errorf("failed to get cart: %w", err)
	}

	res.FromModel(cart)

	return res, nil
}

// AddItem queues an amenity by name, locking the discounted price at this
// point in time.
func (s *serviceImpl) AddItem(ctx context.Context, userID string, req dto.AddItemRequest) (res dto.CartResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddCartItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	amenity, err := s.amenities.GetByName(ctx, req.Name)
	if err != nil {
		s.notifications.Push(userID, fmt.Sprintf("%s is not available right now", req.Name), notificationModel.SeverityError)

		return res, err
	}

	cart, err := s.repo.Get(ctx, userID)
	if err != nil {
		return res, fmt.Errorf("failed to get cart: %w", err)
	}

	cart.AddItem(amenity, req.Quantity)

	if err = s.repo.Save(ctx, cart); err != nil {
		return res, fmt.Errorf("failed to save cart: %w", err)
	}

	s.notifications.Push(userID, fmt.Sprintf("Added %s to cart with %d%% discount!", amenity.Name, model.DiscountRatePercent), notificationModel.SeveritySuccess)

	res.FromModel(cart)

	return res, nil
}

func (s *serviceImpl) UpdateQuantity(ctx context.Context, userID string, req dto.UpdateQuantityRequest) (res dto.CartResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateCartQuantity")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Quantity < 0 {
		return res, failure.BadRequestFromString("quantity cannot be negative") // nolint:wrapcheck
	}

	cart, err := s.repo.Get(ctx, userID)
	if err != nil {
		return res, fmt.Errorf("failed to get cart: %w", err)
	}

	if ok := cart.SetQuantity(req.Name, req.Quantity); !ok {
		// Setting an absent line to zero is a remove, and removing what is
		// not there is a no-op.
		if req.Quantity == 0 {
			res.FromModel(cart)

			return res, nil
		}

		return res, failure.NotFound("cart item") // nolint:wrapcheck
	}

	if err = s.repo.Save(ctx, cart); err != nil {
		return res, fmt.Errorf("failed to save cart: %w", err)
	}

	res.FromModel(cart)

	return res, nil
}

func (s *serviceImpl) RemoveItem(ctx context.Context, userID, name string) (res dto.CartResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RemoveCartItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	cart, err := s.repo.Get(ctx, userID)
	if err != nil {
		return res, fmt.Errorf("failed to get cart: %w", err)
	}

	// Removing a line that is not in the cart is a no-op.
	if ok := cart.RemoveItem(name); !ok {
		res.FromModel(cart)

		return res, nil
	}

	if err = s.repo.Save(ctx, cart); err != nil {
		return res, fmt.Errorf("failed to save cart: %w", err)
	}

	s.notifications.Push(userID, fmt.Sprintf("%s removed from your cart", name), notificationModel.SeverityInfo)

	res.FromModel(cart)

	return res, nil
}

func (s *serviceImpl) Clear(ctx context.Context, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ClearCart")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}
