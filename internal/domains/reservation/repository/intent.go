package repository

//go:generate go run go.uber.org/mock/mockgen -source=./intent.go -destination=../mocks/intent_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"resort/infras/otel"
	"resort/shared/constant"
)

const cancelIntentPrefix = "reservationCancelIntent"

// CancelIntent holds the first step of the two step cancel flow. A marker is
// set when the guest asks to cancel and consumed when they confirm. Markers
// expire on their own, so an abandoned dialog leaves no trace.
type CancelIntent interface {
	Mark(ctx context.Context, userID, reservationID string, ttl time.Duration) error
	Take(ctx context.Context, userID, reservationID string) (bool, error)
}

type cancelIntentImpl struct {
	client *redis.Client
	otel   otel.Otel
}

func NewCancelIntent(client *redis.Client, ot otel.Otel) CancelIntent {
	return &cancelIntentImpl{
		client: client,
		otel:   ot,
	}
}

func intentKey(userID, reservationID string) string {
	return fmt.Sprintf("%s:%s:%s", cancelIntentPrefix, userID, reservationID)
}

func (r *cancelIntentImpl) Mark(ctx context.Context, userID, reservationID string, ttl time.Duration) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".MarkCancelIntent")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Set(ctx, intentKey(userID, reservationID), "1", ttl).Err(); err != nil {
		log.Error().Err(err).Str("reservationID", reservationID).Msg("failed to mark cancel intent")

		return fmt.Errorf("failed to mark cancel intent: %w", err)
	}

	return nil
}

// Take consumes the marker. It returns false when no live marker exists,
// which means the guest never asked to cancel or waited too long.
func (r *cancelIntentImpl) Take(ctx context.Context, userID, reservationID string) (found bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".TakeCancelIntent")
	defer scope.End()
	defer scope.TraceIfError(err)

	deleted, err := r.client.Del(ctx, intentKey(userID, reservationID)).Result()
	if err != nil {
		log.Error().Err(err).Str("reservationID", reservationID).Msg("failed to take cancel intent")

		return false, fmt.Errorf("failed to take cancel intent: %w", err)
	}

	return deleted > 0, nil
}
