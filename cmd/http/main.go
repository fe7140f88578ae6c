package main

import (
	"context"
	"errors"
	"mamacare-service/internal/app/config"
	"mamacare-service/internal/app/delivery/http/controllers"
	"mamacare-service/internal/app/delivery/http/middlewares"
	"mamacare-service/internal/app/delivery/http/routers"
	"mamacare-service/internal/app/drivers/database"
	"mamacare-service/internal/app/drivers/logger"
	"mamacare-service/internal/app/drivers/messaging"
	"mamacare-service/internal/app/drivers/storage"
	"mamacare-service/internal/app/services/core/appointments"
	"mamacare-service/internal/app/services/core/articles"
	"mamacare-service/internal/app/services/core/children"
	"mamacare-service/internal/app/services/core/notifications"
	"mamacare-service/internal/app/services/core/session"
	"mamacare-service/internal/app/services/core/users"
	"mamacare-service/internal/app/services/shared/eventbus"
	"mamacare-service/internal/app/services/shared/locker"
	"mamacare-service/internal/app/services/shared/ratelimiter"
	"mamacare-service/internal/app/services/shared/realtime"
	"mamacare-service/internal/app/services/shared/redis"
	minioStorage "mamacare-service/internal/app/services/shared/storage"
	"mamacare-service/internal/pkg/exceptions"
	"mamacare-service/internal/pkg/utils"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	utils.ExposeDevMessages(!internalConfig.App.IsProduction())

	mongoDB := database.NewMongoDB(driverConfig, log)
	redisClient := database.NewRedisClient(driverConfig, log)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig, log)
	minioClient := storage.NewMinio(driverConfig, internalConfig, log)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if err := bootstrapingTheApp(bootstrap); err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server started", zap.String("port", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	// Shutdown the server
	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to release resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	cfg := bootstrap.InternalConfig
	dbName := bootstrap.DriverConfig.MongoDB.DbName
	log := bootstrap.Logger

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, log)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, log)
	sessionService := session.NewSessionService(redisRepository, cfg.JWT.Secret, cfg.JWT.ExpiryInHours, log)

	// Object storage
	pictureStorage := minioStorage.NewMinioStorage(bootstrap.Minio, cfg.Minio.BucketName, cfg.Minio.PublicBaseURL, log)

	// Event bus
	publisherChannel, err := bootstrap.RabbitMQ.Channel()
	if err != nil {
		return exceptions.ErrRabbitMQOpenChannel(err)
	}
	eventPublisher, err := eventbus.NewRabbitMQPublisher(publisherChannel, cfg.RabbitMQ.EventExchange, log)
	if err != nil {
		return err
	}

	// Repositories
	userRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	childRepository := children.NewChildMongoRepository(bootstrap.MongoDB, dbName)
	articleRepository := articles.NewArticleMongoRepository(bootstrap.MongoDB, dbName)
	notificationRepository := notifications.NewNotificationMongoRepository(bootstrap.MongoDB, dbName)
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)

	// Usecases
	userUsecase := users.NewUserUsecase(
		userRepository,
		childRepository,
		sessionService,
		pictureStorage,
		resourceLimiter,
		users.LoginLimit{
			MaxAttempts:     cfg.App.LoginMaxAttempts,
			WindowInSeconds: cfg.App.LoginWindowInSeconds,
		},
		cfg.Minio.ProfilePictureFolder,
		log,
	)
	doctorUsecase := users.NewDoctorUsecase(userRepository, log)
	childUsecase := children.NewChildUsecase(childRepository, log)
	articleUsecase := articles.NewArticleUsecase(articleRepository, log)
	notificationUsecase := notifications.NewNotificationUsecase(notificationRepository, log)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentRepository,
		userRepository,
		childRepository,
		lockService,
		eventPublisher,
		cfg,
		log,
	)

	// Workers
	notificationChannel, err := bootstrap.RabbitMQ.Channel()
	if err != nil {
		return exceptions.ErrRabbitMQOpenChannel(err)
	}
	notificationSubscriber := eventbus.NewRabbitMQSubscriber(notificationChannel, cfg.RabbitMQ.EventExchange, eventbus.QueueOptions{
		Name: cfg.RabbitMQ.NotificationQueue,
	}, log)
	notificationWorker := notifications.NewWorker(log, notificationSubscriber, notificationUsecase)
	stopNotificationWorker, err := notificationWorker.Start(context.Background())
	if err != nil {
		return err
	}
	bootstrap.WorkerStops = append(bootstrap.WorkerStops, stopNotificationWorker)

	hub := realtime.NewHub(log)
	relayChannel, err := bootstrap.RabbitMQ.Channel()
	if err != nil {
		return exceptions.ErrRabbitMQOpenChannel(err)
	}
	relaySubscriber := eventbus.NewRabbitMQSubscriber(relayChannel, cfg.RabbitMQ.EventExchange, eventbus.QueueOptions{
		Exclusive: true,
	}, log)
	stopRelay, err := realtime.NewRelay(relaySubscriber, hub, log).Start(context.Background())
	if err != nil {
		return err
	}
	bootstrap.WorkerStops = append(bootstrap.WorkerStops, stopRelay)

	// Middlewares
	middlewareInstance := middlewares.NewMiddlewares(log, sessionService, cfg)

	// Controllers
	ctrls := routers.Controllers{
		User:         controllers.NewUserController(log, userUsecase, childUsecase),
		Doctor:       controllers.NewDoctorController(log, doctorUsecase),
		Article:      controllers.NewArticleController(log, articleUsecase),
		Notification: controllers.NewNotificationController(log, notificationUsecase),
		Appointment:  controllers.NewAppointmentController(log, appointmentUsecase),
	}
	websocketHandler := realtime.NewHandler(hub, sessionService, cfg.JWT.Secret, cfg.App.CORSAllowedOrigins, log)

	routers.SetupRoutes(bootstrap.Router, cfg, middlewareInstance, ctrls, websocketHandler)
	return nil
}
