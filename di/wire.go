//go:build wireinject
// +build wireinject

package di

import (
	"resort/config"
	"resort/infras/jwt"
	"resort/infras/kafka"
	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/infras/redis"
	"resort/infras/s3"
	"resort/permissions"
	"resort/shared/cache"
	"resort/transport/http"
	"resort/transport/http/middleware"
	"resort/transport/http/router"

	amenityRepository "resort/internal/domains/amenity/repository"
	amenityService "resort/internal/domains/amenity/service"
	authService "resort/internal/domains/auth/service"
	cartRepository "resort/internal/domains/cart/repository"
	cartService "resort/internal/domains/cart/service"
	notificationCenter "resort/internal/domains/notification/center"
	reservationRepository "resort/internal/domains/reservation/repository"
	reservationService "resort/internal/domains/reservation/service"
	userRepository "resort/internal/domains/user/repository"
	userService "resort/internal/domains/user/service"

	amenityHandler "resort/internal/handlers/amenity"
	authHandler "resort/internal/handlers/auth"
	cartHandler "resort/internal/handlers/cart"
	healthHandler "resort/internal/handlers/health"
	notificationHandler "resort/internal/handlers/notification"
	reservationHandler "resort/internal/handlers/reservation"
	userHandler "resort/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var notificationDomain = wire.NewSet(
	notificationCenter.New,
)

var amenityDomain = wire.NewSet(
	amenityRepository.New,
	amenityService.New,
)

var cartDomain = wire.NewSet(
	cartRepository.New,
	cartService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationRepository.NewCancelIntent,
	reservationService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var userDomain = wire.NewSet(
	userService.New,
)

var domains = wire.NewSet(
	notificationDomain,
	amenityDomain,
	cartDomain,
	reservationDomain,
	authDomain,
	userDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	amenityHandler.New,
	authHandler.New,
	cartHandler.New,
	healthHandler.New,
	notificationHandler.New,
	reservationHandler.New,
	userHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
