package cart

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"resort/infras/otel"
	"resort/internal/domains/cart/model/dto"
	"resort/internal/domains/cart/service"
	"resort/shared/constant"
	"resort/shared/failure"
	"resort/shared/validator"
	"resort/transport/http/response"
)

type Handler struct {
	service service.Cart
	otel    otel.Otel
}

func New(service service.Cart, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/cart", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCart)
		routerGroup.Post("/items", handler.AddItem)
		routerGroup.Patch("/items", handler.UpdateQuantity)
		routerGroup.Delete("/items/{name}", handler.RemoveItem)
		routerGroup.Delete("/", handler.ClearCart)
	})
}

// GetCart returns the caller's cart.
// @Summary Get the current cart
// @Description Retrieve the caller's cart with line items and totals.
// @Tags Cart
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.CartResponse] "Cart contents"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cart [get]
// @Security BearerAuth
func (handler *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCart")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		scope.TraceError(nil)
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	cart, err := handler.service.Get(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cart")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, cart)
}

// AddItem adds an amenity to the caller's cart by name.
// @Summary Add an item to the cart
// @Description Add an amenity to the cart by name. The discounted price is locked in when the item is added.
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body dto.AddItemRequest true "Item to add"
// @Success 200 {object} response.Data[dto.CartResponse] "Updated cart"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/cart/items [post]
// @Security BearerAuth
func (handler *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddItem")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		scope.TraceError(nil)
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	req := dto.AddItemRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	cart, err := handler.service.AddItem(ctx, userID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add item to cart")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, cart)
}

// UpdateQuantity changes the quantity of a cart line item.
// @Summary Update a cart item quantity
// @Description Set the quantity of a cart line item. A quantity of zero removes the item.
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body dto.UpdateQuantityRequest true "Item and new quantity"
// @Success 200 {object} response.Data[dto.CartResponse] "Updated cart"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/cart/items [patch]
// @Security BearerAuth
func (handler *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateQuantity")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		scope.TraceError(nil)
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	req := dto.UpdateQuantityRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	cart, err := handler.service.UpdateQuantity(ctx, userID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update cart item quantity")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, cart)
}

// RemoveItem removes a line item from the caller's cart.
// @Summary Remove an item from the cart
// @Description Remove a cart line item by amenity name.
// @Tags Cart
// @Accept json
// @Produce json
// @Param name path string true "Amenity name"
// @Success 200 {object} response.Data[dto.CartResponse] "Updated cart"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/cart/items/{name} [delete]
// @Security BearerAuth
func (handler *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveItem")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		scope.TraceError(nil)
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	name := chi.URLParam(r, "name")

	cart, err := handler.service.RemoveItem(ctx, userID, name)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove item from cart")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, cart)
}

// ClearCart empties the caller's cart.
// @Summary Clear the cart
// @Description Remove all items from the caller's cart.
// @Tags Cart
// @Accept json
// @Produce json
// @Success 200 {object} response.Message "Cart cleared"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cart [delete]
// @Security BearerAuth
func (handler *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ClearCart")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		scope.TraceError(nil)
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	if err := handler.service.Clear(ctx, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to clear cart")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Cart cleared")
}
