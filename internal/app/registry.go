package app

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Vectus-Drive/backend/internal/auth"
	"github.com/Vectus-Drive/backend/internal/booking"
	"github.com/Vectus-Drive/backend/internal/car"
	"github.com/Vectus-Drive/backend/internal/carservice"
	"github.com/Vectus-Drive/backend/internal/customer"
	"github.com/Vectus-Drive/backend/internal/employee"
	"github.com/Vectus-Drive/backend/internal/messaging/kafka"
	"github.com/Vectus-Drive/backend/internal/notification"
	"github.com/Vectus-Drive/backend/internal/otp"
	"github.com/Vectus-Drive/backend/internal/rbac"
	"github.com/Vectus-Drive/backend/internal/review"
	"github.com/Vectus-Drive/backend/internal/token"
	"github.com/Vectus-Drive/backend/internal/transaction"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	bookingRepo := booking.NewRepository(gormDB)
	carRepo := car.NewRepository(gormDB)
	carserviceRepo := carservice.NewRepository(gormDB)
	customerRepo := customer.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)
	reviewRepo := review.NewRepository(gormDB)
	tokenRepo := token.NewRepository(gormDB)
	transactionRepo := transaction.NewRepository(gormDB)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	// --- Services ---
	tokenManager := auth.NewTokenManagerFromEnv()
	authService := auth.NewService(gormDB, authRepo, customerRepo, employeeRepo, tokenRepo, tokenManager)
	bookingService := booking.NewService(gormDB, bookingRepo, customerRepo, carRepo, outboxRepo)
	carService := car.NewService(carRepo, rdb)
	carserviceService := carservice.NewService(carserviceRepo, carRepo)
	customerService := customer.NewService(customerRepo)
	employeeService := employee.NewService(employeeRepo)
	notificationService := notification.NewService(notificationRepo)
	otpService := otp.NewService(rdb, otp.NewSMTPMailerFromEnv(), otp.DefaultConfig())
	reviewService := review.NewService(reviewRepo, customerRepo)
	transactionService := transaction.NewService(transactionRepo, bookingRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, tokenManager)
	bookingHandler := booking.NewHandlerWithRedis(bookingService, rdb)
	carHandler := car.NewHandler(carService)
	carserviceHandler := carservice.NewHandler(carserviceService)
	customerHandler := customer.NewHandler(customerService)
	employeeHandler := employee.NewHandler(employeeService)
	notificationHandler := notification.NewHandler(notificationService)
	otpHandler := otp.NewHandler(otpService)
	reviewHandler := review.NewHandler(reviewService)
	transactionHandler := transaction.NewHandlerWithRedis(transactionService, rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		otp.RegisterRoutes(api, otpHandler)
		booking.RegisterRoutes(api, bookingHandler, rbacService, rdb)
		car.RegisterRoutes(api, carHandler, rbacService)
		carservice.RegisterRoutes(api, carserviceHandler, rbacService)
		customer.RegisterRoutes(api, customerHandler)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		notification.RegisterRoutes(api, notificationHandler, rbacService)
		review.RegisterRoutes(api, reviewHandler, rbacService)
		transaction.RegisterRoutes(api, transactionHandler, rbacService, rdb)
	}

	return nil
}
