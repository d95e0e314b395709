package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctorportal-service/internal/app/config"
	"doctorportal-service/internal/app/delivery/http/middlewares"
	"doctorportal-service/internal/app/delivery/http/routers"
	"doctorportal-service/internal/app/drivers/database"
	"doctorportal-service/internal/app/drivers/logger"
	"doctorportal-service/internal/app/drivers/messaging"
	"doctorportal-service/internal/app/drivers/storage"
	"doctorportal-service/internal/app/services/core/appointments"
	"doctorportal-service/internal/app/services/core/auth"
	"doctorportal-service/internal/app/services/core/bookings"
	"doctorportal-service/internal/app/services/core/doctors"
	"doctorportal-service/internal/app/services/core/users"
	"doctorportal-service/internal/app/services/shared/mailqueue"
	"doctorportal-service/internal/app/services/shared/ratelimiter"
	"doctorportal-service/internal/app/services/shared/redis"
	sharedStorage "doctorportal-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig, log)
	redisClient := database.NewRedisClient(driverConfig, log)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig, log)
	minioClient := storage.NewMinio(driverConfig, log)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	err := bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatalf("Failed to bootstrap the application: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()
	log.Printf("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Failed to release application resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) error {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	minioStorage := sharedStorage.NewMinioStorage(bootstrap.Minio)
	mailQueueService, err := mailqueue.NewService(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.Mailer.BookingConfirmationQueue,
	)
	if err != nil {
		return err
	}
	bookingLimiter := ratelimiter.NewBookingRateLimiter(redisRepository, bootstrap.Logger, bootstrap.InternalConfig)

	// User
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	userUsecase := users.NewUserUsecase(userMongoRepository)
	userController := users.NewUserController(bootstrap.Logger, userUsecase)

	// Auth
	authUsecase := auth.NewAuthUsecase(userMongoRepository, bootstrap.InternalConfig)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// Booking
	bookingMongoRepository := bookings.NewBookingMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	bookingUsecase := bookings.NewBookingUsecase(bootstrap.Logger, bookingMongoRepository, mailQueueService)
	bookingController := bookings.NewBookingController(bootstrap.Logger, bookingUsecase)

	// Appointment
	appointmentOptionMongoRepository := appointments.NewAppointmentOptionMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentOptionMongoRepository, bookingMongoRepository)
	appointmentController := appointments.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// Doctor
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	doctorUsecase := doctors.NewDoctorUsecase(doctorMongoRepository, minioStorage, bootstrap.DriverConfig)
	doctorController := doctors.NewDoctorController(bootstrap.Logger, doctorUsecase, bootstrap.InternalConfig)

	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, userMongoRepository, bookingLimiter, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		appointmentController,
		bookingController,
		authController,
		userController,
		doctorController,
	)
	return nil
}
