//go:build wireinject
// +build wireinject

package di

import (
	"mykuliah/config"
	"mykuliah/infras/gemini"
	"mykuliah/infras/jwt"
	"mykuliah/infras/otel"
	"mykuliah/infras/redis"
	"mykuliah/permissions"
	"mykuliah/shared/cache"
	"mykuliah/transport/http"
	"mykuliah/transport/http/middleware"
	"mykuliah/transport/http/router"

	"github.com/google/wire"

	assistantService "mykuliah/internal/domains/assistant/service"
	authService "mykuliah/internal/domains/auth/service"
	bookingRepository "mykuliah/internal/domains/booking/repository"
	"mykuliah/internal/domains/booking/rules"
	bookingService "mykuliah/internal/domains/booking/service"
	roomRepository "mykuliah/internal/domains/room/repository"
	roomService "mykuliah/internal/domains/room/service"
	statsService "mykuliah/internal/domains/stats/service"
	userRepository "mykuliah/internal/domains/user/repository"
	assistantHandler "mykuliah/internal/handlers/assistant"
	authHandler "mykuliah/internal/handlers/auth"
	bookingHandler "mykuliah/internal/handlers/booking"
	roomHandler "mykuliah/internal/handlers/room"
	statsHandler "mykuliah/internal/handlers/stats"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
	rules.HoursFromConfig,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	jwt.New,
	gemini.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.DefaultCatalog,
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.DefaultSeed,
	bookingRepository.New,
	bookingService.New,
)

var authDomain = wire.NewSet(
	userRepository.DefaultDirectory,
	userRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
	authDomain,
	statsService.New,
	assistantService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	bookingHandler.New,
	statsHandler.New,
	assistantHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}
