//go:build wireinject
// +build wireinject

package di

import (
	"hotel/config"
	"hotel/infras/jwt"
	"hotel/infras/kafka"
	"hotel/infras/mailer"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/infras/redis"
	"hotel/infras/s3"
	"hotel/permissions"
	"hotel/shared/cache"
	gRepo "hotel/shared/repository"
	"hotel/transport/consumer"
	"hotel/transport/http"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"
	"hotel/transport/scheduler"

	"github.com/google/wire"

	authService "hotel/internal/domains/auth/service"
	bookingService "hotel/internal/domains/booking/service"
	customerRepository "hotel/internal/domains/customer/repository"
	customerService "hotel/internal/domains/customer/service"
	hotelRepository "hotel/internal/domains/hotel/repository"
	hotelService "hotel/internal/domains/hotel/service"
	notificationService "hotel/internal/domains/notification/service"
	orderRepository "hotel/internal/domains/order/repository"
	orderService "hotel/internal/domains/order/service"
	reportRepository "hotel/internal/domains/report/repository"
	reportService "hotel/internal/domains/report/service"
	reviewRepository "hotel/internal/domains/review/repository"
	reviewService "hotel/internal/domains/review/service"
	roomRepository "hotel/internal/domains/room/repository"
	roomService "hotel/internal/domains/room/service"
	userRepository "hotel/internal/domains/user/repository"
	userService "hotel/internal/domains/user/service"

	authHandler "hotel/internal/handlers/auth"
	bookingHandler "hotel/internal/handlers/booking"
	customerHandler "hotel/internal/handlers/customer"
	hotelHandler "hotel/internal/handlers/hotel"
	orderHandler "hotel/internal/handlers/order"
	reportHandler "hotel/internal/handlers/report"
	reviewHandler "hotel/internal/handlers/review"
	roomHandler "hotel/internal/handlers/room"
	userHandler "hotel/internal/handlers/user"
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
	mailer.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	gRepo.NewTransactor,
)

var notificationDomain = wire.NewSet(
	notificationService.NewPublisher,
	notificationService.NewNotifier,
)

var inventoryDomain = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
	customerService.NewResolver,
	orderRepository.New,
	orderService.New,
	bookingService.New,
)

var feedbackDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
	reportRepository.New,
	reportService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var domains = wire.NewSet(
	notificationDomain,
	inventoryDomain,
	bookingDomain,
	feedbackDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	hotelHandler.New,
	roomHandler.New,
	customerHandler.New,
	orderHandler.New,
	reviewHandler.New,
	reportHandler.New,
	userHandler.New,
	router.New,
)

var workers = wire.NewSet(
	scheduler.New,
	consumer.New,
)

func InitializeService() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		workers,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
