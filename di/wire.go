//go:build wireinject
// +build wireinject

package di

import (
	"tablebook/config"
	"tablebook/infras/jwt"
	"tablebook/infras/kafka"
	"tablebook/infras/otel"
	"tablebook/infras/postgres"
	"tablebook/infras/redis"
	"tablebook/infras/s3"
	"tablebook/permissions"
	"tablebook/shared/cache"
	"tablebook/transport/http"
	"tablebook/transport/http/middleware"
	"tablebook/transport/http/router"

	availabilityService "tablebook/internal/domains/availability/service"
	reservationRepository "tablebook/internal/domains/reservation/repository"
	reservationService "tablebook/internal/domains/reservation/service"
	restaurantRepository "tablebook/internal/domains/restaurant/repository"
	restaurantService "tablebook/internal/domains/restaurant/service"
	userRepository "tablebook/internal/domains/user/repository"
	userService "tablebook/internal/domains/user/service"
	reservationHandler "tablebook/internal/handlers/reservation"
	restaurantHandler "tablebook/internal/handlers/restaurant"

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

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var restaurantDomain = wire.NewSet(
	restaurantRepository.New,
	restaurantService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
	availabilityService.New,
)

var domains = wire.NewSet(
	userDomain,
	restaurantDomain,
	reservationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	restaurantHandler.New,
	reservationHandler.New,
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

// InitializeUserService backs the token command, which needs no HTTP stack.
func InitializeUserService() userService.User {
	wire.Build(
		config.Get,
		postgres.New,
		otel.New,
		redis.New,
		jwt.New,
		sharedHelpers,
		userDomain,
	)

	return nil
}
