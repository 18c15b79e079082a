package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"resort/infras/otel"
	"resort/internal/domains/cart/model"
	"resort/shared/constant"
	"resort/shared/timezone"
)

const cartKeyPrefix = "reservationCart"

type Cart interface {
	Get(ctx context.Context, userID string) (model.Cart, error)
	Save(ctx context.Context, cart model.Cart) error
	Delete(ctx context.Context, userID string) error
}

type repositoryImpl struct {
	client *redis.Client
	otel   otel.Otel
}

func New(client *redis.Client, ot otel.Otel) Cart {
	return &repositoryImpl{
		client: client,
		otel:   ot,
	}
}

func cartKey(userID string) string {
	return fmt.Sprintf("%s:%s", cartKeyPrefix, userID)
}

// Get loads the user's cart. A missing key or an unreadable payload yields
// an empty cart, never an error: a corrupt cart must not lock the user out
// of the storefront.
func (r *repositoryImpl) Get(ctx context.Context, userID string) (res model.Cart, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetCart")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.UserID = userID

	raw, err := r.client.Get(ctx, cartKey(userID)).Result()
	if err == redis.Nil {
		return res, nil
	}

	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("failed to get cart")

		return res, fmt.Errorf("failed to get cart: %w", err)
	}

	cart, ok := decodeCart(raw, userID)
	if !ok {
		scope.AddEvent("Corrupt cart payload discarded")
	}

	return cart, nil
}

// decodeCart parses a stored cart payload. An unreadable payload yields an
// empty cart and ok=false: a corrupt cart must not lock the user out of the
// storefront.
func decodeCart(raw, userID string) (model.Cart, bool) {
	var cart model.Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		log.Warn().Err(err).Str("userID", userID).Msg("corrupt cart payload, resetting to empty cart")

		return model.Cart{UserID: userID}, false
	}

	cart.UserID = userID

	return cart, true
}

func (r *repositoryImpl) Save(ctx context.Context, cart model.Cart) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".SaveCart")
	defer scope.End()
	defer scope.TraceIfError(err)

	cart.UpdatedAt = timezone.Now()

	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	if err = r.client.Set(ctx, cartKey(cart.UserID), raw, 0).Err(); err != nil {
		log.Error().Err(err).Str("userID", cart.UserID).Msg("failed to save cart")

		return fmt.Errorf("failed to save cart: %w", err)
	}

	return nil
}

func (r *repositoryImpl) Delete(ctx context.Context, userID string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".DeleteCart")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("failed to delete cart")

		return fmt.Errorf("failed to delete cart: %w", err)
	}

	return nil
}
