//go:build wireinject
// +build wireinject

package di

import (
	"hms/config"
	"hms/infras/jwt"
	"hms/infras/kafka"
	"hms/infras/otel"
	"hms/infras/postgres"
	"hms/infras/redis"
	"hms/infras/s3"
	"hms/shared/cache"
	"hms/transport/http"
	"hms/transport/http/middleware"
	"hms/transport/http/router"

	"github.com/google/wire"

	auditRepository "hms/internal/domains/audit/repository"
	auditService "hms/internal/domains/audit/service"
	authService "hms/internal/domains/auth/service"
	availabilityService "hms/internal/domains/availability/service"
	bookingRepository "hms/internal/domains/booking/repository"
	bookingService "hms/internal/domains/booking/service"
	folioRepository "hms/internal/domains/folio/repository"
	folioService "hms/internal/domains/folio/service"
	guestRepository "hms/internal/domains/guest/repository"
	guestService "hms/internal/domains/guest/service"
	paymentRepository "hms/internal/domains/payment/repository"
	paymentService "hms/internal/domains/payment/service"
	reportRepository "hms/internal/domains/report/repository"
	reportService "hms/internal/domains/report/service"
	roomRepository "hms/internal/domains/room/repository"
	roomService "hms/internal/domains/room/service"
	roomtypeRepository "hms/internal/domains/roomtype/repository"
	roomtypeService "hms/internal/domains/roomtype/service"
	userRepository "hms/internal/domains/user/repository"

	auditHandler "hms/internal/handlers/audit"
	authHandler "hms/internal/handlers/auth"
	availabilityHandler "hms/internal/handlers/availability"
	bookingHandler "hms/internal/handlers/booking"
	folioHandler "hms/internal/handlers/folio"
	guestHandler "hms/internal/handlers/guest"
	paymentHandler "hms/internal/handlers/payment"
	reportHandler "hms/internal/handlers/report"
	roomHandler "hms/internal/handlers/room"
	roomtypeHandler "hms/internal/handlers/roomtype"
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
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var auditDomain = wire.NewSet(
	auditRepository.New,
	auditService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var roomtypeDomain = wire.NewSet(
	roomtypeRepository.New,
	roomtypeService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var folioDomain = wire.NewSet(
	folioRepository.New,
	folioService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var reportDomain = wire.NewSet(
	reportRepository.New,
	reportService.New,
)

var domains = wire.NewSet(
	auditDomain,
	authDomain,
	roomtypeDomain,
	roomDomain,
	guestDomain,
	availabilityDomain,
	bookingDomain,
	folioDomain,
	paymentDomain,
	reportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	auditHandler.New,
	authHandler.New,
	availabilityHandler.New,
	bookingHandler.New,
	folioHandler.New,
	guestHandler.New,
	paymentHandler.New,
	reportHandler.New,
	roomHandler.New,
	roomtypeHandler.New,
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
