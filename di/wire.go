//go:build wireinject
// +build wireinject

package di

import (
	"voyago/config"
	"voyago/infras/jwt"
	"voyago/infras/kafka"
	"voyago/infras/mail"
	"voyago/infras/otel"
	"voyago/infras/postgres"
	"voyago/infras/redis"
	"voyago/infras/s3"
	"voyago/shared/cache"
	"voyago/transport/http"
	"voyago/transport/http/middleware"
	"voyago/transport/http/router"

	bookingRepository "voyago/internal/domains/booking/repository"
	bookingService "voyago/internal/domains/booking/service"
	draftRepository "voyago/internal/domains/draft/repository"
	draftService "voyago/internal/domains/draft/service"
	pricingService "voyago/internal/domains/pricing/service"
	verificationRepository "voyago/internal/domains/verification/repository"
	verificationService "voyago/internal/domains/verification/service"

	bookingHandler "voyago/internal/handlers/booking"
	draftHandler "voyago/internal/handlers/draft"
	pricingHandler "voyago/internal/handlers/pricing"
	verificationHandler "voyago/internal/handlers/verification"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	mail.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var pricingDomain = wire.NewSet(
	pricingService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var draftDomain = wire.NewSet(
	draftRepository.New,
	draftService.New,
)

var verificationDomain = wire.NewSet(
	verificationRepository.New,
	verificationService.New,
)

var domains = wire.NewSet(
	pricingDomain,
	bookingDomain,
	draftDomain,
	verificationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	draftHandler.New,
	bookingHandler.New,
	pricingHandler.New,
	verificationHandler.New,
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
